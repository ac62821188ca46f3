package blackrook

import "testing"

func TestRookAttacksStopsAtBlocker(t *testing.T) {
	occ := D1 | D8 | A4 | H4
	got := RookAttacks(SD4, occ)
	want := (D1 | D2 | D3) | (D5 | D6 | D7 | D8) | (A4 | B4 | C4) | (E4 | F4 | G4 | H4)
	if got != want {
		t.Fatalf("RookAttacks(d4) = %#x, want %#x", got, want)
	}
}

func TestBishopAttacksStopsAtBlocker(t *testing.T) {
	occ := B2 | F6
	got := BishopAttacks(SD4, occ)
	want := (C3 | B2) | (C5 | B6 | A7) | (E5 | F6) | (E3 | F2 | G1)
	if got != want {
		t.Fatalf("BishopAttacks(d4) = %#x, want %#x", got, want)
	}
}

func TestAttacksToFindsSlidingAttacker(t *testing.T) {
	p := ParseFEN("8/8/8/8/8/8/8/R3K2R w - - 0 1")
	attackers := p.AttacksTo(SD1, ColorWhite)
	if attackers&A1 == 0 {
		t.Fatal("the rook on a1 should attack d1 along the first rank")
	}
}

func TestPinsDetectsRookPin(t *testing.T) {
	p := ParseFEN("4r3/8/8/8/8/8/4N3/4K3 w - - 0 1")
	pinned := p.Pins(ColorWhite, SE1)
	if pinned != E2 {
		t.Fatalf("expected only the e2 knight pinned, got %#x", pinned)
	}
}

func TestPinsEmptyWhenNoPinner(t *testing.T) {
	p := ParseFEN("4r3/8/8/8/8/3N4/8/4K3 w - - 0 1")
	pinned := p.Pins(ColorWhite, SE1)
	if pinned != 0 {
		t.Fatalf("knight off the e-file pin line must not be pinned, got %#x", pinned)
	}
}

func TestPinsAccumulatesAcrossBothSliderKinds(t *testing.T) {
	// A rook pin on the e-file (e8 rook, e2 knight, e1 king) and a bishop
	// pin on the a5-e1 diagonal (a5 bishop, d2 knight) at once: both pinned
	// pieces must survive in the result — the shadowed-accumulator bug
	// named in DESIGN.md silently drops whichever loop runs first.
	p := ParseFEN("4r3/8/8/b7/8/8/3NN3/4K3 w - - 0 1")
	pinned := p.Pins(ColorWhite, SE1)
	if pinned&D2 == 0 {
		t.Fatal("the bishop-pinned knight on d2 must be reported pinned")
	}
	if pinned&E2 == 0 {
		t.Fatal("the rook-pinned knight on e2 must be reported pinned")
	}
}

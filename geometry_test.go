package blackrook

import "testing"

func TestRayTablesReachBoardEdge(t *testing.T) {
	if RAY[North][SA1] != (A2 | A3 | A4 | A5 | A6 | A7 | A8) {
		t.Fatalf("RAY[North][a1] = %#x, want the full a-file above a1", RAY[North][SA1])
	}
	if RAY[East][SA1] != (B1 | C1 | D1 | E1 | F1 | G1 | H1) {
		t.Fatalf("RAY[East][a1] = %#x, want the full rank east of a1", RAY[East][SA1])
	}
	if RAY[North][SH8] != 0 {
		t.Fatal("RAY[North][h8] must be empty, h8 is the board's corner")
	}
}

func TestKnightTargets(t *testing.T) {
	want := A4 | C4 | D3 | D1
	if KNIGHT[SB2] != want {
		t.Fatalf("KNIGHT[b2] = %#x, want %#x", KNIGHT[SB2], want)
	}
}

func TestKingTargets(t *testing.T) {
	want := D4 | F4 | D5 | F5 | D6 | E4 | E6 | F6
	if KING[SE5] != want {
		t.Fatalf("KING[e5] = %#x, want %#x", KING[SE5], want)
	}
}

func TestPawnTargets(t *testing.T) {
	if PAWN[ColorWhite][SE4] != (D5 | F5) {
		t.Fatalf("white PAWN[e4] = %#x, want d5|f5", PAWN[ColorWhite][SE4])
	}
	if PAWN[ColorBlack][SE4] != (D3 | F3) {
		t.Fatalf("black PAWN[e4] = %#x, want d3|f3", PAWN[ColorBlack][SE4])
	}
}

func TestInBetween(t *testing.T) {
	if IN_BETWEEN[SA1][SA4] != (A2 | A3) {
		t.Fatalf("IN_BETWEEN[a1][a4] = %#x, want a2|a3", IN_BETWEEN[SA1][SA4])
	}
	if IN_BETWEEN[SA1][SB3] != 0 {
		t.Fatal("a1 and b3 are not ray-aligned, IN_BETWEEN must be empty")
	}
	if IN_BETWEEN[SA1][SD4] != (B2 | C3) {
		t.Fatalf("IN_BETWEEN[a1][d4] = %#x, want b2|c3", IN_BETWEEN[SA1][SD4])
	}
}

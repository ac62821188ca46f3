package blackrook

import "testing"

func TestPopCount(t *testing.T) {
	testcases := []struct {
		bb       Bitset
		expected int
	}{
		{0, 0},
		{1, 1},
		{0xFF, 8},
		{0xFFFFFFFFFFFFFFFF, 64},
	}
	for _, tc := range testcases {
		if got := PopCount(tc.bb); got != tc.expected {
			t.Fatalf("PopCount(%#x) = %d, want %d", tc.bb, got, tc.expected)
		}
	}
}

func TestBitScan(t *testing.T) {
	if got := BitScan(0b1000); got != 3 {
		t.Fatalf("BitScan(0b1000) = %d, want 3", got)
	}
	if got := BitScan(A1 | D4); got != SA1 {
		t.Fatalf("BitScan(A1|D4) = %d, want %d", got, SA1)
	}
}

func TestBitScanReverse(t *testing.T) {
	if got := BitScanReverse(0b1000); got != 3 {
		t.Fatalf("BitScanReverse(0b1000) = %d, want 3", got)
	}
	if got := BitScanReverse(A1 | D4); got != SD4 {
		t.Fatalf("BitScanReverse(A1|D4) = %d, want %d", got, SD4)
	}
}

func TestPopLSB(t *testing.T) {
	bb := Bitset(0b1010)
	sq := PopLSB(&bb)
	if sq != 1 {
		t.Fatalf("expected square 1, got %d", sq)
	}
	if bb != 0b1000 {
		t.Fatalf("expected remaining bitset 0b1000, got %#b", bb)
	}
}

func TestForEach(t *testing.T) {
	var got []int
	ForEach(A1|C1|H8, func(sq int) { got = append(got, sq) })
	want := []int{SA1, SC1, SH8}
	if len(got) != len(want) {
		t.Fatalf("expected %d squares, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestShiftsStopAtEdge(t *testing.T) {
	if shiftEast(H1) != 0 {
		t.Fatal("shiftEast off the h-file must wrap to zero")
	}
	if shiftWest(A1) != 0 {
		t.Fatal("shiftWest off the a-file must wrap to zero")
	}
	if shiftNorth(A8) != 0 {
		t.Fatal("shiftNorth off the 8th rank must overflow to zero")
	}
	if shiftSouth(A1) != 0 {
		t.Fatal("shiftSouth off the 1st rank must underflow to zero")
	}
}

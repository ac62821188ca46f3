package blackrook

import "testing"

func TestParseBitboards(t *testing.T) {
	testcases := []struct {
		name     string
		fen      string
		expected [15]Bitset
	}{
		{
			"initial position",
			"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
			[15]Bitset{
				0xFF00, 0xFF000000000000, 0x42, 0x4200000000000000,
				0x24, 0x2400000000000000, 0x81, 0x8100000000000000,
				0x8, 0x800000000000000, 0x10, 0x1000000000000000,
				0xFFFF, 0xFFFF000000000000, 0xFFFF00000000FFFF,
			},
		},
		{
			"two rooks, two pawns",
			"8/4p3/1PR5/8/4R3/8/4p3/8",
			[15]Bitset{
				0x20000000000, 0x10000000001000, 0x0, 0x0, 0x0, 0x0,
				0x40010000000, 0x0, 0x0, 0x0, 0x0, 0x0,
				0x60010000000, 0x10000000001000, 0x10060010001000,
			},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseBitboards(tc.fen)
			if got != tc.expected {
				t.Fatalf("expected %v\ngot %v", tc.expected, got)
			}
		})
	}
}

func TestSerializeBitboards(t *testing.T) {
	testcases := []struct {
		name      string
		bitboards [15]Bitset
		expected  string
	}{
		{
			"initial position",
			[15]Bitset{
				0xFF00, 0xFF000000000000, 0x42, 0x4200000000000000,
				0x24, 0x2400000000000000, 0x81, 0x8100000000000000,
				0x8, 0x800000000000000, 0x10, 0x1000000000000000,
			},
			"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			got := SerializeBitboards(tc.bitboards)
			if got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestParseFENRoundTrip(t *testing.T) {
	fens := []string{
		startFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		"8/8/8/8/8/8/8/R3K2R w KQ - 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			p := ParseFEN(fen)
			got := SerializeFEN(p)
			if got != fen {
				t.Fatalf("round trip: expected %q, got %q", fen, got)
			}
		})
	}
}

func TestParseFENNoEnPassant(t *testing.T) {
	p := ParseFEN(startFEN)
	if p.EPTarget != NoEnPassant {
		t.Fatalf("expected no en-passant target, got %d", p.EPTarget)
	}
}

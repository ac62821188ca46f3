/*
fen.go converts between Forsyth-Edwards Notation strings and Position values
(§1's one explicitly-kept serialization format). Grounded on
treepeck-chego/fen.go, adapted to the new slot layout and to an explicit
NoEnPassant sentinel rather than the teacher's overloaded "zero means a1 or
none" square index.

Functions here expect well-formed input and panic otherwise, matching the
teacher's documented FEN contract.
*/

package blackrook

import (
	"strconv"
	"strings"
)

// ParseFEN parses a FEN string into a Position. The caller is responsible
// for passing a well-formed string; malformed input panics.
func ParseFEN(fen string) Position {
	var p Position

	fields := strings.SplitN(fen, " ", 6)
	if len(fields) != 6 {
		panic("fen: expected six space-separated fields")
	}

	p.Bitboards = ParseBitboards(fields[0])

	if fields[1] == "b" {
		p.ActiveColor = ColorBlack
	}

	for i := 0; i < len(fields[2]); i++ {
		switch fields[2][i] {
		case 'K':
			p.CastlingRights |= CastlingWhiteKing
		case 'Q':
			p.CastlingRights |= CastlingWhiteQueen
		case 'k':
			p.CastlingRights |= CastlingBlackKing
		case 'q':
			p.CastlingRights |= CastlingBlackQueen
		}
	}

	p.EPTarget = parseSquare(fields[3])

	var err error
	p.HalfmoveClock, err = strconv.Atoi(fields[4])
	if err != nil {
		panic("fen: cannot parse halfmove clock: " + err.Error())
	}
	p.FullmoveNumber, err = strconv.Atoi(fields[5])
	if err != nil {
		panic("fen: cannot parse fullmove number: " + err.Error())
	}

	return p
}

// SerializeFEN renders a Position back into its FEN string.
func SerializeFEN(p Position) string {
	var fen strings.Builder
	fen.Grow(64)

	fen.WriteString(SerializeBitboards(p.Bitboards))

	if p.ActiveColor == ColorWhite {
		fen.WriteString(" w ")
	} else {
		fen.WriteString(" b ")
	}

	before := fen.Len()
	if p.CastlingRights&CastlingWhiteKing != 0 {
		fen.WriteByte('K')
	}
	if p.CastlingRights&CastlingWhiteQueen != 0 {
		fen.WriteByte('Q')
	}
	if p.CastlingRights&CastlingBlackKing != 0 {
		fen.WriteByte('k')
	}
	if p.CastlingRights&CastlingBlackQueen != 0 {
		fen.WriteByte('q')
	}
	if fen.Len() == before {
		fen.WriteByte('-')
	}
	fen.WriteByte(' ')

	if p.EPTarget == NoEnPassant {
		fen.WriteString("- ")
	} else {
		fen.WriteString(SquareNames[p.EPTarget])
		fen.WriteByte(' ')
	}

	fen.WriteString(strconv.Itoa(p.HalfmoveClock))
	fen.WriteByte(' ')
	fen.WriteString(strconv.Itoa(p.FullmoveNumber))

	return fen.String()
}

/*
ParseBitboards converts the piece-placement field of a FEN string into the
[15]Bitset layout (§3.4). Ranks are listed eighth-to-first in FEN, files
a-to-h within a rank.
*/
func ParseBitboards(piecePlacement string) [15]Bitset {
	var bitboards [15]Bitset
	sq := 56 // Rank 8, file a; FEN starts at the top-left of the board.

	for i := 0; i < len(piecePlacement); i++ {
		c := piecePlacement[i]
		switch {
		case c == '/':
			sq -= 16
		case c >= '1' && c <= '8':
			sq += int(c - '0')
		default:
			slot := pieceSlotFromFENChar(c)
			bb := square(sq)
			bitboards[slot] |= bb
			if slot%2 == int(ColorWhite) {
				bitboards[whiteOccupancy] |= bb
			} else {
				bitboards[blackOccupancy] |= bb
			}
			bitboards[allOccupancy] |= bb
			sq++
		}
	}

	return bitboards
}

func pieceSlotFromFENChar(c byte) int {
	switch c {
	case 'P':
		return PieceWPawn
	case 'p':
		return PieceBPawn
	case 'N':
		return PieceWKnight
	case 'n':
		return PieceBKnight
	case 'B':
		return PieceWBishop
	case 'b':
		return PieceBBishop
	case 'R':
		return PieceWRook
	case 'r':
		return PieceBRook
	case 'Q':
		return PieceWQueen
	case 'q':
		return PieceBQueen
	case 'K':
		return PieceWKing
	case 'k':
		return PieceBKing
	default:
		panic("fen: unrecognized piece character '" + string(c) + "'")
	}
}

// SerializeBitboards renders the piece-placement field of a FEN string.
func SerializeBitboards(bitboards [15]Bitset) string {
	var board [64]byte

	for slot := 0; slot <= PieceBKing; slot++ {
		bb := bitboards[slot]
		ForEach(bb, func(sq int) {
			board[sq] = PieceSymbols[slot]
		})
	}

	b := strings.Builder{}
	b.Grow(72)

	for rank := 7; rank >= 0; rank-- {
		empty := byte(0)
		for file := 0; file < 8; file++ {
			sq := 8*rank + file
			if ch := board[sq]; ch == 0 {
				empty++
			} else {
				if empty > 0 {
					b.WriteByte('0' + empty)
					empty = 0
				}
				b.WriteByte(ch)
			}
		}
		if empty > 0 {
			b.WriteByte('0' + empty)
		}
		if rank != 0 {
			b.WriteByte('/')
		}
	}

	return b.String()
}

// parseSquare parses an algebraic square name, or "-" as NoEnPassant.
func parseSquare(s string) int {
	if s == "-" {
		return NoEnPassant
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	return rank*8 + file
}

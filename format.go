/*
format.go renders bitboards and positions as human-readable text, grounded
on treepeck-chego/cli/cli.go's FormatBitboard/FormatPosition.
*/

package blackrook

import "strings"

// pieceGlyphs maps a colored bitboard slot to its Unicode chess glyph.
var pieceGlyphs = [12]rune{
	PieceWPawn: '♙', PieceBPawn: '♟',
	PieceWKnight: '♘', PieceBKnight: '♞',
	PieceWBishop: '♗', PieceBBishop: '♝',
	PieceWRook: '♖', PieceBRook: '♜',
	PieceWQueen: '♕', PieceBQueen: '♛',
	PieceWKing: '♔', PieceBKing: '♚',
}

// FormatBitboard renders a single bitboard, marking every member square
// with the glyph for the given colored slot and every other square with ".".
func FormatBitboard(bb Bitset, slot int) string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte(rank) + '1')
		sb.WriteString("  ")
		for file := 0; file < 8; file++ {
			sq := 8*rank + file
			symbol := pieceGlyphs[slot]
			if bb&square(sq) == 0 {
				symbol = '.'
			}
			sb.WriteRune(symbol)
			sb.WriteString("  ")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a  b  c  d  e  f  g  h\n")

	return sb.String()
}

// FormatPosition renders a full position: the board, side to move, the
// en-passant target, and castling rights.
func FormatPosition(p Position) string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte(rank) + '1')
		sb.WriteString("  ")
		for file := 0; file < 8; file++ {
			sq := 8*rank + file
			symbol := rune('.')
			for slot := 0; slot <= PieceBKing; slot++ {
				if p.Bitboards[slot]&square(sq) != 0 {
					symbol = pieceGlyphs[slot]
					break
				}
			}
			sb.WriteRune(symbol)
			sb.WriteString("  ")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a  b  c  d  e  f  g  h\nActive color: ")

	if p.ActiveColor == ColorWhite {
		sb.WriteString("white\nEn passant: ")
	} else {
		sb.WriteString("black\nEn passant: ")
	}

	if p.EPTarget == NoEnPassant {
		sb.WriteString("none\nCastling rights: ")
	} else {
		sb.WriteString(SquareNames[p.EPTarget])
		sb.WriteString("\nCastling rights: ")
	}

	if p.CastlingRights&CastlingWhiteKing != 0 {
		sb.WriteByte('K')
	}
	if p.CastlingRights&CastlingWhiteQueen != 0 {
		sb.WriteByte('Q')
	}
	if p.CastlingRights&CastlingBlackKing != 0 {
		sb.WriteByte('k')
	}
	if p.CastlingRights&CastlingBlackQueen != 0 {
		sb.WriteByte('q')
	}
	sb.WriteByte('\n')

	return sb.String()
}

/*
types.go declares the core value types: colors, piece kinds, the packed Move
word, and the preallocated MoveList buffer moves are generated into.
*/

package blackrook

// Color is one of the two sides.
type Color int

const (
	ColorWhite Color = iota
	ColorBlack
)

// Opposite returns the other color.
func (c Color) Opposite() Color { return c ^ 1 }

// PieceType is the six color-agnostic piece kinds (§3.1).
type PieceType int

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

/*
Colored piece-bitboard slot indices.  Pieces are stored interleaved by color
so that "PieceWPawn+Color" addresses the matching colored slot directly,
grounded on treepeck-chego/types.go and treepeck-chego/movegen.go's
"PieceWKnight+c" indexing idiom.
*/
const (
	PieceWPawn = iota
	PieceBPawn
	PieceWKnight
	PieceBKnight
	PieceWBishop
	PieceBBishop
	PieceWRook
	PieceBRook
	PieceWQueen
	PieceBQueen
	PieceWKing
	PieceBKing
	// PieceNone marks an empty square; never a valid bitboard slot index.
	PieceNone = -1
)

// Index of the White/Black occupancy slot and the total-occupancy slot in
// Position.Bitboards.
const (
	whiteOccupancy = 12
	blackOccupancy = 13
	allOccupancy   = 14
)

// slotOf returns the colored bitboard slot index for a kind and color.
func slotOf(pt PieceType, c Color) int { return int(pt)*2 + int(c) }

/*
MoveFlag is the 4-bit move-type tag packed into bits 12-15 of a Move,
matching §3.5's table exactly.
*/
type MoveFlag int

const (
	FlagQuiet MoveFlag = iota
	FlagDoublePush
	FlagCastleKing
	FlagCastleQueen
	FlagCapture
	FlagEnPassant
	_ // 6, 7: unused
	_
	FlagPromoKnight
	FlagPromoBishop
	FlagPromoRook
	FlagPromoQueen
	FlagPromoKnightCapture
	FlagPromoBishopCapture
	FlagPromoRookCapture
	FlagPromoQueenCapture
)

/*
Move packs a chess move into a 16-bit word (§3.5):

	0-5:   to square
	6-11:  from square
	12-15: flag
*/
type Move uint16

// NewMove builds a move with an explicit flag.
func NewMove(from, to int, flag MoveFlag) Move {
	return Move(to | (from << 6) | (int(flag) << 12))
}

func (m Move) From() int      { return int(m>>6) & 0x3F }
func (m Move) To() int        { return int(m) & 0x3F }
func (m Move) Flag() MoveFlag { return MoveFlag(m>>12) & 0xF }

/*
IsCapture is explicitly the disjunction of the capture-bearing flag codes,
not a bitwise "&4" test — see DESIGN.md for why the original source's
shortcut (correct only by coincidence of which codes share bit 2) is not
reproduced here.
*/
func (m Move) IsCapture() bool {
	switch m.Flag() {
	case FlagCapture, FlagEnPassant,
		FlagPromoKnightCapture, FlagPromoBishopCapture,
		FlagPromoRookCapture, FlagPromoQueenCapture:
		return true
	default:
		return false
	}
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool { return m.Flag() >= FlagPromoKnight }

// IsCastle reports whether the move is a king- or queen-side castle.
func (m Move) IsCastle() bool {
	return m.Flag() == FlagCastleKing || m.Flag() == FlagCastleQueen
}

/*
PromotionPiece returns the piece type a promoting move produces.  Only
meaningful when IsPromotion() is true.
*/
func (m Move) PromotionPiece() PieceType {
	return PieceType(m.Flag()&0x3) + Knight
}

/*
MoveList is a preallocated move buffer.  218 is the chess-theoretic maximum
number of legal moves in any position, so a fixed array avoids allocation in
the generator's hot path, matching treepeck-chego/types.go's MoveList.
*/
type MoveList struct {
	Moves []Move
	buf   [218]Move
}

func (l *MoveList) reset() {
	l.Moves = l.buf[:0]
}

// Push appends a move to the list.
func (l *MoveList) Push(m Move) {
	l.Moves = append(l.Moves, m)
}

// Len returns the number of moves currently stored.
func (l *MoveList) Len() int { return len(l.Moves) }

// CastlingRights packs the four castling flags (§3.4).
type CastlingRights uint8

const (
	CastlingWhiteKing CastlingRights = 1 << iota
	CastlingWhiteQueen
	CastlingBlackKing
	CastlingBlackQueen
)

// NoEnPassant marks the absence of an en-passant target square.
const NoEnPassant = -1

// PieceSymbols maps a colored bitboard slot to its FEN/printable letter.
var PieceSymbols = [12]byte{
	PieceWPawn: 'P', PieceBPawn: 'p',
	PieceWKnight: 'N', PieceBKnight: 'n',
	PieceWBishop: 'B', PieceBBishop: 'b',
	PieceWRook: 'R', PieceBRook: 'r',
	PieceWQueen: 'Q', PieceBQueen: 'q',
	PieceWKing: 'K', PieceBKing: 'k',
}

// SquareNames maps a square index to its algebraic name, e.g. square 0 -> "a1".
var SquareNames = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// Square bitboard constants, used throughout the tests.
const (
	A1 Bitset = 1 << iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// Square indices, used throughout the tests and move construction.
const (
	SA1 = iota
	SB1
	SC1
	SD1
	SE1
	SF1
	SG1
	SH1
	SA2
	SB2
	SC2
	SD2
	SE2
	SF2
	SG2
	SH2
	SA3
	SB3
	SC3
	SD3
	SE3
	SF3
	SG3
	SH3
	SA4
	SB4
	SC4
	SD4
	SE4
	SF4
	SG4
	SH4
	SA5
	SB5
	SC5
	SD5
	SE5
	SF5
	SG5
	SH5
	SA6
	SB6
	SC6
	SD6
	SE6
	SF6
	SG6
	SH6
	SA7
	SB7
	SC7
	SD7
	SE7
	SF7
	SG7
	SH7
	SA8
	SB8
	SC8
	SD8
	SE8
	SF8
	SG8
	SH8
)

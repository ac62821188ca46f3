/*
position.go defines Position, the full board-state value type (§3.4): piece
placement, side to move, castling rights, en-passant target, and the
halfmove clock. Positions are mutated only through Apply.
*/

package blackrook

import "fmt"

/*
Position represents a chessboard state. Bitboards holds 12 colored-piece
slots (see slotOf), two color-occupancy slots, and one total-occupancy slot,
grounded on treepeck-chego/position.go's [15]uint64 layout.
*/
type Position struct {
	Bitboards      [15]Bitset
	ActiveColor    Color
	CastlingRights CastlingRights
	// EPTarget is the square a double-pushed pawn skipped over — the square
	// an en-passant capture lands on, not the captured pawn's own square —
	// or NoEnPassant.
	EPTarget       int
	HalfmoveClock  int
	FullmoveNumber int
}

// Occupant is a (piece type, color) pair describing a square's content,
// used by FromPieceList/ToPieceList (§6).
type Occupant struct {
	Piece PieceType
	Color Color
}

// InvalidPositionError is the one recoverable error in the core (§4.6, §7):
// FromPieceList was given a list that fails a §3.4 invariant.
type InvalidPositionError struct {
	Reason string
}

func (e *InvalidPositionError) Error() string {
	return "invalid position: " + e.Reason
}

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() Position {
	return ParseFEN(startFEN)
}

// Pieces returns the color-agnostic bitset of squares occupied by piece.
func (p *Position) Pieces(piece PieceType) Bitset {
	return p.Bitboards[slotOf(piece, ColorWhite)] | p.Bitboards[slotOf(piece, ColorBlack)]
}

// ColorPieces returns every square occupied by c's pieces.
func (p *Position) ColorPieces(c Color) Bitset {
	return p.Bitboards[whiteOccupancy+int(c)]
}

// Occupied returns every occupied square.
func (p *Position) Occupied() Bitset { return p.Bitboards[allOccupancy] }

// Empty returns every unoccupied square.
func (p *Position) Empty() Bitset { return ^p.Bitboards[allOccupancy] }

/*
PieceOn returns the piece standing on sq, consulting the color bitboards
first to find the occupying color (or reporting empty), per §4.3.
*/
func (p *Position) PieceOn(sq int) (Occupant, bool) {
	bb := square(sq)
	var c Color
	switch {
	case p.Bitboards[whiteOccupancy]&bb != 0:
		c = ColorWhite
	case p.Bitboards[blackOccupancy]&bb != 0:
		c = ColorBlack
	default:
		return Occupant{}, false
	}
	for pt := Pawn; pt <= King; pt++ {
		if p.Bitboards[slotOf(pt, c)]&bb != 0 {
			return Occupant{Piece: pt, Color: c}, true
		}
	}
	// Unreachable if the occupancy invariants (§3.4.3) hold.
	panic(fmt.Sprintf("square %d marked occupied but no piece type matches", sq))
}

// placePiece sets piece on square, updating the color and occupancy bitsets.
func (p *Position) placePiece(pt PieceType, c Color, sq int) {
	bb := square(sq)
	p.Bitboards[slotOf(pt, c)] |= bb
	p.Bitboards[whiteOccupancy+int(c)] |= bb
	p.Bitboards[allOccupancy] |= bb
}

// removePiece clears piece from square, updating the color and occupancy
// bitsets. The caller must know a piece of this type/color is present.
func (p *Position) removePiece(pt PieceType, c Color, sq int) {
	bb := square(sq)
	p.Bitboards[slotOf(pt, c)] &^= bb
	p.Bitboards[whiteOccupancy+int(c)] &^= bb
	p.Bitboards[allOccupancy] &^= bb
}

/*
FromPieceList builds a Position from an external square-indexed array
(index 0 = a1, index 63 = h8), validating every §3.4 invariant before
returning it (§4.6).
*/
func FromPieceList(list [64]*Occupant, side Color, castling CastlingRights,
	epSquare int, halfmoveClock int) (Position, error) {

	var p Position
	p.ActiveColor = side
	p.CastlingRights = castling
	p.EPTarget = epSquare
	p.HalfmoveClock = halfmoveClock
	p.FullmoveNumber = 1

	for sq, occ := range list {
		if occ == nil {
			continue
		}
		p.placePiece(occ.Piece, occ.Color, sq)
	}

	if err := p.validate(); err != nil {
		return Position{}, err
	}
	return p, nil
}

// ToPieceList is the inverse of FromPieceList (§6), used for state export.
func (p *Position) ToPieceList() [64]*Occupant {
	var list [64]*Occupant
	for sq := 0; sq < 64; sq++ {
		if occ, ok := p.PieceOn(sq); ok {
			o := occ
			list[sq] = &o
		}
	}
	return list
}

// validate checks every invariant listed in §3.4.
func (p *Position) validate() error {
	if p.Bitboards[whiteOccupancy]&p.Bitboards[blackOccupancy] != 0 {
		return &InvalidPositionError{Reason: "a square holds both colors"}
	}

	var seen Bitset
	for pt := Pawn; pt <= King; pt++ {
		all := p.Bitboards[slotOf(pt, ColorWhite)] | p.Bitboards[slotOf(pt, ColorBlack)]
		if seen&all != 0 {
			return &InvalidPositionError{Reason: "a square holds two piece types"}
		}
		seen |= all
	}

	occupied := p.Bitboards[whiteOccupancy] | p.Bitboards[blackOccupancy]
	if occupied != p.Bitboards[allOccupancy] {
		return &InvalidPositionError{Reason: "occupied_bb does not equal the union of both colors"}
	}
	if seen != occupied {
		return &InvalidPositionError{Reason: "piece bitboards do not cover occupied_bb"}
	}

	if PopCount(p.Bitboards[slotOf(King, ColorWhite)]) != 1 {
		return &InvalidPositionError{Reason: "white does not have exactly one king"}
	}
	if PopCount(p.Bitboards[slotOf(King, ColorBlack)]) != 1 {
		return &InvalidPositionError{Reason: "black does not have exactly one king"}
	}

	if p.Pieces(Pawn)&(rank1|rank8) != 0 {
		return &InvalidPositionError{Reason: "a pawn stands on rank 1 or rank 8"}
	}

	if p.EPTarget != NoEnPassant {
		// EPTarget is the skipped square: rank 3 after a White double push,
		// rank 6 after a Black one.
		const rank3, rank6 Bitset = 0xFF0000, 0xFF0000000000
		epBB := square(p.EPTarget)
		if epBB&(rank3|rank6) == 0 {
			return &InvalidPositionError{Reason: "en-passant target is not on rank 3 or rank 6"}
		}
	}

	if p.CastlingRights&CastlingWhiteKing != 0 &&
		(p.Bitboards[slotOf(King, ColorWhite)]&E1 == 0 || p.Bitboards[slotOf(Rook, ColorWhite)]&H1 == 0) {
		return &InvalidPositionError{Reason: "white king-side castling right without king/rook on home squares"}
	}
	if p.CastlingRights&CastlingWhiteQueen != 0 &&
		(p.Bitboards[slotOf(King, ColorWhite)]&E1 == 0 || p.Bitboards[slotOf(Rook, ColorWhite)]&A1 == 0) {
		return &InvalidPositionError{Reason: "white queen-side castling right without king/rook on home squares"}
	}
	if p.CastlingRights&CastlingBlackKing != 0 &&
		(p.Bitboards[slotOf(King, ColorBlack)]&E8 == 0 || p.Bitboards[slotOf(Rook, ColorBlack)]&H8 == 0) {
		return &InvalidPositionError{Reason: "black king-side castling right without king/rook on home squares"}
	}
	if p.CastlingRights&CastlingBlackQueen != 0 &&
		(p.Bitboards[slotOf(King, ColorBlack)]&E8 == 0 || p.Bitboards[slotOf(Rook, ColorBlack)]&A8 == 0) {
		return &InvalidPositionError{Reason: "black queen-side castling right without king/rook on home squares"}
	}

	return nil
}

/*
Apply destructively updates the position by performing move m (§4.5
"apply(move)"). The caller must guarantee m was produced by GenerateMoves
from this same position; behavior on an arbitrary move is undefined.
*/
func (p *Position) Apply(m Move) {
	from, to := m.From(), m.To()
	occ, _ := p.PieceOn(from)
	mover, color := occ.Piece, occ.Color

	prevEP := p.EPTarget
	p.EPTarget = NoEnPassant

	switch m.Flag() {
	case FlagCastleKing, FlagCastleQueen:
		p.removePiece(King, color, from)
		p.placePiece(King, color, to)
		rf, rt := castlingRookSquares(color, m.Flag())
		p.removePiece(Rook, color, rf)
		p.placePiece(Rook, color, rt)
		p.HalfmoveClock++
		clearCastlingRights(p, color)

	case FlagEnPassant:
		p.removePiece(Pawn, color, from)
		p.placePiece(Pawn, color, to)
		// prevEP is the square the capturing pawn lands on (the square the
		// double-pusher skipped over); the captured pawn itself sits one
		// rank further along the double-pusher's direction of travel.
		var capturedSq int
		if color == ColorWhite {
			capturedSq = prevEP - 8
		} else {
			capturedSq = prevEP + 8
		}
		p.removePiece(Pawn, color.Opposite(), capturedSq)
		p.HalfmoveClock = 0

	case FlagCapture:
		capOcc, _ := p.PieceOn(to)
		p.removePiece(capOcc.Piece, capOcc.Color, to)
		p.removePiece(mover, color, from)
		p.placePiece(mover, color, to)
		p.HalfmoveClock = 0

	case FlagDoublePush:
		p.removePiece(Pawn, color, from)
		p.placePiece(Pawn, color, to)
		if color == ColorWhite {
			p.EPTarget = from + 8
		} else {
			p.EPTarget = from - 8
		}
		p.HalfmoveClock = 0

	case FlagQuiet:
		p.removePiece(mover, color, from)
		p.placePiece(mover, color, to)
		if mover == Pawn {
			p.HalfmoveClock = 0
		} else {
			p.HalfmoveClock++
		}

	default: // Promotion, with or without capture.
		if m.IsCapture() {
			capOcc, _ := p.PieceOn(to)
			p.removePiece(capOcc.Piece, capOcc.Color, to)
		}
		p.removePiece(Pawn, color, from)
		p.placePiece(m.PromotionPiece(), color, to)
		p.HalfmoveClock = 0
	}

	if mover == King {
		clearCastlingRights(p, color)
	}
	if mover == Rook {
		clearRookCastlingRight(p, color, from)
	}
	// A rook captured on its home square also forfeits that right.
	if m.IsCapture() && m.Flag() != FlagEnPassant {
		clearRookCastlingRight(p, color.Opposite(), to)
	}

	if p.ActiveColor == ColorBlack {
		p.FullmoveNumber++
	}
	p.ActiveColor = p.ActiveColor.Opposite()
}

// castlingRookSquares returns the rook's from/to squares for a castle move,
// per the authoritative mapping in spec §9: WK h1<->f1, WQ a1<->d1,
// BK h8<->f8, BQ a8<->d8.
func castlingRookSquares(c Color, flag MoveFlag) (from, to int) {
	switch {
	case c == ColorWhite && flag == FlagCastleKing:
		return SH1, SF1
	case c == ColorWhite && flag == FlagCastleQueen:
		return SA1, SD1
	case c == ColorBlack && flag == FlagCastleKing:
		return SH8, SF8
	default: // Black, queen-side.
		return SA8, SD8
	}
}

func clearCastlingRights(p *Position, c Color) {
	if c == ColorWhite {
		p.CastlingRights &^= CastlingWhiteKing | CastlingWhiteQueen
	} else {
		p.CastlingRights &^= CastlingBlackKing | CastlingBlackQueen
	}
}

func clearRookCastlingRight(p *Position, c Color, rookSquare int) {
	switch {
	case c == ColorWhite && rookSquare == SH1:
		p.CastlingRights &^= CastlingWhiteKing
	case c == ColorWhite && rookSquare == SA1:
		p.CastlingRights &^= CastlingWhiteQueen
	case c == ColorBlack && rookSquare == SH8:
		p.CastlingRights &^= CastlingBlackKing
	case c == ColorBlack && rookSquare == SA8:
		p.CastlingRights &^= CastlingBlackQueen
	}
}

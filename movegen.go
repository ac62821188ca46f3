/*
movegen.go implements legal move generation (§4.5): check detection via
attacks_to, pin-constrained pseudo-legal enumeration when not in check, and
the dedicated out-of-check path (king moves, checker capture, interposition,
en-passant-of-checker) when in check.

Grounded on original_source/src/chess/board.rs's generate_moves/
out_of_check_moves/generate_piece_moves/generate_pawn_moves/ep_moves/
castle_moves, fixing every bug named in spec §9: explicit is_capture
disjunction (in types.go), correct en-passant NW/NE assignment per color,
correct castling rook squares (in position.go), and correct queen-side
castling rights masks/attacked-square checks for both colors (the source's
castle_moves tests the wrong mask and the wrong squares for Black).
*/

package blackrook

// GenerateMoves returns every legal move for the side to move in p.
func GenerateMoves(p *Position) MoveList {
	var list MoveList
	list.reset()

	if p.HalfmoveClock >= 100 {
		return list
	}

	color := p.ActiveColor
	enemy := color.Opposite()
	kingSq := BitScan(p.Bitboards[slotOf(King, color)])
	checkers := p.AttacksTo(kingSq, enemy)
	notPinned := ^p.Pins(color, kingSq)

	if checkers != 0 {
		p.generateOutOfCheck(&list, color, kingSq, checkers, notPinned)
		return list
	}

	p.generatePawnMoves(&list, color, kingSq, notPinned)
	p.generatePieceMoves(&list, Knight, color, kingSq, notPinned)
	p.generatePieceMoves(&list, Bishop, color, kingSq, notPinned)
	p.generatePieceMoves(&list, Rook, color, kingSq, notPinned)
	p.generatePieceMoves(&list, Queen, color, kingSq, notPinned)
	p.generateKingMoves(&list, color, kingSq)
	p.generateCastling(&list, color, kingSq)

	return list
}

// attackedWithOccupancy reports whether byColor attacks sq given an
// arbitrary occupancy bitset, used to test squares with the king
// provisionally removed from the board (§4.5's "sliding attackers still
// project through the king's old square"). Pieces of byColor outside occ
// are treated as removed, so a pawn taken en passant no longer attacks.
func (p *Position) attackedWithOccupancy(sq int, byColor Color, occ Bitset) bool {
	pawns := p.Bitboards[slotOf(Pawn, byColor)] & occ
	knights := p.Bitboards[slotOf(Knight, byColor)] & occ
	king := p.Bitboards[slotOf(King, byColor)] & occ
	bishopsQueens := (p.Bitboards[slotOf(Bishop, byColor)] | p.Bitboards[slotOf(Queen, byColor)]) & occ
	rooksQueens := (p.Bitboards[slotOf(Rook, byColor)] | p.Bitboards[slotOf(Queen, byColor)]) & occ

	if PAWN[byColor.Opposite()][sq]&pawns != 0 {
		return true
	}
	if KNIGHT[sq]&knights != 0 {
		return true
	}
	if KING[sq]&king != 0 {
		return true
	}
	if BishopAttacks(sq, occ)&bishopsQueens != 0 {
		return true
	}
	if RookAttacks(sq, occ)&rooksQueens != 0 {
		return true
	}
	return false
}

// pinDirection reports the ray direction from kingSq through sq, if any.
func pinDirection(kingSq, sq int) (Direction, bool) {
	bb := square(sq)
	for d := Direction(0); d < 8; d++ {
		if RAY[d][kingSq]&bb != 0 {
			return d, true
		}
	}
	return 0, false
}

// pinRay returns the full line through kingSq and sq (both directions,
// excluding kingSq itself). A pinned piece's legal destinations are its
// normal targets intersected with this line.
func pinRay(kingSq, sq int) Bitset {
	d, ok := pinDirection(kingSq, sq)
	if !ok {
		return 0
	}
	return RAY[d][kingSq] | RAY[d.opposite()][kingSq]
}

// restrictIfPinned intersects targets with the pin line when from is
// pinned; otherwise returns targets unchanged.
func restrictIfPinned(targets Bitset, from, kingSq int, pinned bool) Bitset {
	if !pinned {
		return targets
	}
	return targets & pinRay(kingSq, from)
}

func makeQuietOrCapture(from, to int, occupied Bitset) Move {
	if square(to)&occupied != 0 {
		return NewMove(from, to, FlagCapture)
	}
	return NewMove(from, to, FlagQuiet)
}

/*
generatePieceMoves enumerates pseudo-legal, pin-constrained moves for a
single leaper/slider piece type (§4.5 "Piece moves (not in check)").
*/
func (p *Position) generatePieceMoves(list *MoveList, pt PieceType, color Color, kingSq int, notPinned Bitset) {
	own := p.Bitboards[whiteOccupancy+int(color)]
	occ := p.Bitboards[allOccupancy]
	bb := p.Bitboards[slotOf(pt, color)]

	ForEach(bb, func(from int) {
		pinned := notPinned&square(from) == 0

		var targets Bitset
		switch pt {
		case Knight:
			targets = KNIGHT[from]
		case Bishop:
			targets = BishopAttacks(from, occ)
		case Rook:
			targets = RookAttacks(from, occ)
		case Queen:
			targets = QueenAttacks(from, occ)
		}
		targets &^= own
		targets = restrictIfPinned(targets, from, kingSq, pinned)

		ForEach(targets, func(to int) {
			list.Push(makeQuietOrCapture(from, to, occ))
		})
	})
}

// generateKingMoves enumerates king moves when not currently in check
// (§4.5's "King moves (not in check)"): as out-of-check, but the king is
// removed from occupancy before testing each destination for safety.
func (p *Position) generateKingMoves(list *MoveList, color Color, kingSq int) {
	enemy := color.Opposite()
	own := p.Bitboards[whiteOccupancy+int(color)]
	occWithoutKing := p.Bitboards[allOccupancy] &^ square(kingSq)

	targets := KING[kingSq] &^ own
	ForEach(targets, func(to int) {
		if p.attackedWithOccupancy(to, enemy, occWithoutKing) {
			return
		}
		list.Push(makeQuietOrCapture(kingSq, to, p.Bitboards[allOccupancy]))
	})
}

var promoFlags = [4]MoveFlag{FlagPromoKnight, FlagPromoBishop, FlagPromoRook, FlagPromoQueen}
var promoCaptureFlags = [4]MoveFlag{FlagPromoKnightCapture, FlagPromoBishopCapture, FlagPromoRookCapture, FlagPromoQueenCapture}

// pushPromotions appends one move per promotion piece, using the capture
// flag set iff capture is true.
func pushPromotions(list *MoveList, from, to int, capture bool) {
	flags := promoFlags
	if capture {
		flags = promoCaptureFlags
	}
	for _, f := range flags {
		list.Push(NewMove(from, to, f))
	}
}

var promotionRank = [2]Bitset{ColorWhite: rank8, ColorBlack: rank1}
var dpushRank = [2]Bitset{ColorWhite: rank4, ColorBlack: rank5}

func pawnPushDir(c Color) func(Bitset) Bitset {
	if c == ColorWhite {
		return shiftNorth
	}
	return shiftSouth
}

/*
generatePawnMoves enumerates pseudo-legal, pin-constrained pawn moves plus
en-passant (§4.5 "Pawn moves (not in check)").
*/
func (p *Position) generatePawnMoves(list *MoveList, color Color, kingSq int, notPinned Bitset) {
	enemy := color.Opposite()
	empty := p.Empty()
	enemyOcc := p.Bitboards[whiteOccupancy+int(enemy)]
	push := pawnPushDir(color)
	pawns := p.Bitboards[slotOf(Pawn, color)]

	ForEach(pawns, func(from int) {
		pinned := notPinned&square(from) == 0
		line := Bitset(0)
		if pinned {
			line = pinRay(kingSq, from)
		}
		restrict := func(bb Bitset) Bitset {
			if pinned {
				return bb & line
			}
			return bb
		}

		fromBB := square(from)
		single := push(fromBB) & empty
		single = restrict(single)
		if single != 0 {
			to := BitScan(single)
			if square(to)&promotionRank[color] != 0 {
				pushPromotions(list, from, to, false)
			} else {
				list.Push(NewMove(from, to, FlagQuiet))
			}
		}

		if push(fromBB)&empty != 0 {
			double := push(push(fromBB)&empty) & empty & dpushRank[color]
			double = restrict(double)
			if double != 0 {
				to := BitScan(double)
				list.Push(NewMove(from, to, FlagDoublePush))
			}
		}

		captures := PAWN[color][from] & enemyOcc
		captures = restrict(captures)
		ForEach(captures, func(to int) {
			if square(to)&promotionRank[color] != 0 {
				pushPromotions(list, from, to, true)
			} else {
				list.Push(NewMove(from, to, FlagCapture))
			}
		})
	})

	if p.EPTarget != NoEnPassant {
		pawnsNotPinned := pawns & notPinned
		p.generateEnPassant(list, color, pawnsNotPinned, kingSq)
	}
}

/*
generateEnPassant emits the en-passant capture(s) available from pawns in
with, validating the discovered-check rule by simulated removal (§4.5): both
the capturing and captured pawn are pulled from occupancy and the king must
not then be attacked. The correct per-color NW/NE assignment (spec §9's
named bug) falls out naturally here because the destination is computed from
EPTarget, not from a hardcoded direction literal.
*/
func (p *Position) generateEnPassant(list *MoveList, color Color, with Bitset, kingSq int) {
	to := p.EPTarget
	toBB := square(to)
	enemy := color.Opposite()

	var capturedSq int
	if color == ColorWhite {
		capturedSq = to - 8
	} else {
		capturedSq = to + 8
	}

	// Candidate capturing pawns are those whose diagonal attack set reaches
	// the landing square to, the same reciprocal-attack trick AttacksTo uses.
	candidates := PAWN[enemy][to] & with

	occWithoutBoth := p.Bitboards[allOccupancy] &^ square(capturedSq)

	ForEach(candidates, func(from int) {
		simOcc := occWithoutBoth&^square(from) | toBB
		if p.attackedWithOccupancy(kingSq, enemy, simOcc) {
			return
		}
		list.Push(NewMove(from, to, FlagEnPassant))
	})
}

/*
generateOutOfCheck implements §4.5's out-of-check path: king moves are
always enumerated; double check restricts to those; single check adds
checker captures, interposition against a sliding checker, and en-passant
capture of a checking pawn.
*/
func (p *Position) generateOutOfCheck(list *MoveList, color Color, kingSq int, checkers Bitset, notPinned Bitset) {
	enemy := color.Opposite()
	own := p.Bitboards[whiteOccupancy+int(color)]
	occ := p.Bitboards[allOccupancy]
	occWithoutKing := occ &^ square(kingSq)

	kingTargets := KING[kingSq] &^ own
	ForEach(kingTargets, func(to int) {
		if p.attackedWithOccupancy(to, enemy, occWithoutKing) {
			return
		}
		list.Push(makeQuietOrCapture(kingSq, to, occ))
	})

	if PopCount(checkers) >= 2 {
		return
	}

	checkerSq := BitScan(checkers)
	kingBit := p.Bitboards[slotOf(King, color)]

	capturers := p.AttacksTo(checkerSq, color) & notPinned &^ kingBit
	ForEach(capturers, func(from int) {
		mover, _ := p.PieceOn(from)
		if mover.Piece == Pawn && square(checkerSq)&promotionRank[color] != 0 {
			pushPromotions(list, from, checkerSq, true)
		} else {
			list.Push(NewMove(from, checkerSq, FlagCapture))
		}
	})

	interposeSquares := IN_BETWEEN[checkerSq][kingSq]
	if interposeSquares != 0 {
		p.generateInterpositions(list, color, kingSq, interposeSquares, notPinned)
	}

	if p.EPTarget != NoEnPassant {
		var checkerPawnSq int
		if color == ColorWhite {
			checkerPawnSq = p.EPTarget - 8
		} else {
			checkerPawnSq = p.EPTarget + 8
		}
		if checkers&square(checkerPawnSq) != 0 {
			pawnsNotPinned := p.Bitboards[slotOf(Pawn, color)] & notPinned
			p.generateEnPassant(list, color, pawnsNotPinned, kingSq)
		}
	}
}

// generateInterpositions emits quiet moves that block a sliding checker
// along the squares in IN_BETWEEN[checker][king].
func (p *Position) generateInterpositions(list *MoveList, color Color, kingSq int, allowed Bitset, notPinned Bitset) {
	occ := p.Bitboards[allOccupancy]
	empty := p.Empty()

	for _, pt := range [4]PieceType{Knight, Bishop, Rook, Queen} {
		bb := p.Bitboards[slotOf(pt, color)] & notPinned
		ForEach(bb, func(from int) {
			var targets Bitset
			switch pt {
			case Knight:
				targets = KNIGHT[from]
			case Bishop:
				targets = BishopAttacks(from, occ)
			case Rook:
				targets = RookAttacks(from, occ)
			case Queen:
				targets = QueenAttacks(from, occ)
			}
			ForEach(targets&allowed, func(to int) {
				list.Push(NewMove(from, to, FlagQuiet))
			})
		})
	}

	push := pawnPushDir(color)
	pawns := p.Bitboards[slotOf(Pawn, color)] & notPinned
	ForEach(pawns, func(from int) {
		fromBB := square(from)
		single := push(fromBB) & empty
		if single&allowed != 0 {
			to := BitScan(single)
			if square(to)&promotionRank[color] != 0 {
				pushPromotions(list, from, to, false)
			} else {
				list.Push(NewMove(from, to, FlagQuiet))
			}
		}
		if single != 0 {
			double := push(single) & empty & dpushRank[color]
			if double&allowed != 0 {
				to := BitScan(double)
				list.Push(NewMove(from, to, FlagDoublePush))
			}
		}
	})
}

/*
generateCastling emits castling moves (§4.5 "Castling"). King-side requires
the transit squares empty and unattacked; queen-side additionally allows the
b-file square to be merely empty (not safe), per the spec's explicit
exception — the source conflates the two colors' masks and squares here.
*/
func (p *Position) generateCastling(list *MoveList, color Color, kingSq int) {
	enemy := color.Opposite()
	occ := p.Bitboards[allOccupancy]

	if color == ColorWhite {
		if p.CastlingRights&CastlingWhiteKing != 0 &&
			occ&(F1|G1) == 0 &&
			p.AttacksTo(SF1, enemy) == 0 && p.AttacksTo(SG1, enemy) == 0 {
			list.Push(NewMove(kingSq, SG1, FlagCastleKing))
		}
		if p.CastlingRights&CastlingWhiteQueen != 0 &&
			occ&(B1|C1|D1) == 0 &&
			p.AttacksTo(SD1, enemy) == 0 && p.AttacksTo(SC1, enemy) == 0 {
			list.Push(NewMove(kingSq, SC1, FlagCastleQueen))
		}
		return
	}

	if p.CastlingRights&CastlingBlackKing != 0 &&
		occ&(F8|G8) == 0 &&
		p.AttacksTo(SF8, enemy) == 0 && p.AttacksTo(SG8, enemy) == 0 {
		list.Push(NewMove(kingSq, SG8, FlagCastleKing))
	}
	if p.CastlingRights&CastlingBlackQueen != 0 &&
		occ&(B8|C8|D8) == 0 &&
		p.AttacksTo(SD8, enemy) == 0 && p.AttacksTo(SC8, enemy) == 0 {
		list.Push(NewMove(kingSq, SC8, FlagCastleQueen))
	}
}

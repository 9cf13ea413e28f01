package board

import (
	"fmt"
	"log"
)

// DebugMoveValidation makes Apply validate every successor position and
// panic on the first broken invariant.
var DebugMoveValidation = false

// Apply returns the position reached by playing m. The receiver is not
// modified.
//
// m must be a move GeneratePseudoLegalMoves could produce for p; no other
// validation is done. Apply panics if the origin square holds no piece of
// the side to move.
func (p *Position) Apply(m Move) Position {
	next := *p
	next.applyMove(m)

	if DebugMoveValidation {
		if err := next.Validate(); err != nil {
			log.Panicf("APPLY INVALID: %v after %v from %s", err, m, p.FEN())
		}
	}
	return next
}

// applyMove is the in-place transition used by Apply.
func (p *Position) applyMove(m Move) {
	us := p.SideToMove
	them := us.Other()
	from, to := m.From(), m.To()

	moved := p.pieceTypeAt(us, from)
	if moved == NoPieceType {
		panic(fmt.Sprintf("board: no %v piece on %v for move %v", us, from, m))
	}

	p.clearPiece(us, moved, from)

	// Captures read the position before the mover lands.
	captured := NoPieceType
	capturedSq := to
	if moved == Pawn && p.EnPassant.Is(to) {
		if us == White {
			capturedSq = to - 8
		} else {
			capturedSq = to + 8
		}
		captured = Pawn
		p.clearPiece(them, Pawn, capturedSq)
	} else if captured = p.pieceTypeAt(them, to); captured != NoPieceType {
		p.clearPiece(them, captured, to)
	}

	placed := moved
	if promo, ok := m.Promotion(); ok {
		placed = promo
	}
	p.setPiece(us, placed, to)

	// Castling: the rook jumps to the square the king passed over.
	if moved == King && abs(int(to)-int(from)) == 2 {
		var rookFrom, rookTo Square
		if to > from {
			rookFrom = NewSquare(7, from.Rank())
			rookTo = from + 1
		} else {
			rookFrom = NewSquare(0, from.Rank())
			rookTo = from - 1
		}
		p.clearPiece(us, Rook, rookFrom)
		p.setPiece(us, Rook, rookTo)
	}

	// Castling rights only ever shrink.
	if moved == King {
		p.CastlingRights &^= colorRights(us)
	}
	if moved == Rook {
		p.CastlingRights &^= cornerRights[from] & colorRights(us)
	}
	if captured == Rook {
		p.CastlingRights &^= cornerRights[capturedSq] & colorRights(them)
	}

	p.EnPassant = NoSquare
	if moved == Pawn && abs(int(to)-int(from)) == 16 {
		p.EnPassant = SomeSquare(Square((int(from) + int(to)) / 2))
	}

	if moved == Pawn || captured != NoPieceType {
		p.HalfMoveClock = 0
	} else {
		p.HalfMoveClock++
	}

	if us == Black {
		p.FullMoveNumber++
	}

	p.SideToMove = them
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

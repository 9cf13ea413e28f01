package board

import "fmt"

// GenerateLegalMoves generates all legal moves for the side to move.
//
// Every pseudo-legal move is tried on a copy of the position and kept only
// if the mover's king is not attacked afterwards. The order is the
// pseudo-legal order with illegal moves removed.
func (p *Position) GenerateLegalMoves() *MoveList {
	pseudo := p.GeneratePseudoLegalMoves()
	legal := &MoveList{}
	us := p.SideToMove

	for _, m := range pseudo.Slice() {
		next := p.Apply(m)
		if !next.IsInCheck(us) {
			legal.Add(m)
		}
	}
	return legal
}

// GeneratePseudoLegalMoves generates every move that follows the piece
// movement rules, including moves that leave the mover's king in check.
func (p *Position) GeneratePseudoLegalMoves() *MoveList {
	ml := &MoveList{}
	us := p.SideToMove
	own := p.ColorOccupancy(us)
	occupied := p.Occupied

	p.generatePawnMoves(ml, us)

	knights := p.Pieces[us][Knight]
	for knights != 0 {
		from := knights.PopLSB()
		addTargets(ml, from, KnightAttacks(from)&^own)
	}

	bishops := p.Pieces[us][Bishop]
	for bishops != 0 {
		from := bishops.PopLSB()
		addTargets(ml, from, BishopAttacks(from, occupied)&^own)
	}

	rooks := p.Pieces[us][Rook]
	for rooks != 0 {
		from := rooks.PopLSB()
		addTargets(ml, from, RookAttacks(from, occupied)&^own)
	}

	queens := p.Pieces[us][Queen]
	for queens != 0 {
		from := queens.PopLSB()
		addTargets(ml, from, QueenAttacks(from, occupied)&^own)
	}

	ksq := p.KingSquare(us)
	addTargets(ml, ksq, KingAttacks(ksq)&^own)

	p.generateCastlingMoves(ml, us, ksq)

	return ml
}

// addTargets adds one move from sq to every square in targets.
func addTargets(ml *MoveList, from Square, targets Bitboard) {
	for targets != 0 {
		ml.Add(NewMove(from, targets.PopLSB()))
	}
}

// generatePawnMoves generates pushes, double pushes, captures (including
// en passant) and promotions for the pawns of color us.
func (p *Position) generatePawnMoves(ml *MoveList, us Color) {
	pawns := p.Pieces[us][Pawn]
	empty := ^p.Occupied
	targets := p.ColorOccupancy(us.Other())
	if sq, ok := p.EnPassant.Get(); ok {
		targets |= SquareBB(sq)
	}

	var push1, push2, attackL, attackR Bitboard
	var promotionRank Bitboard
	var pushDir int

	if us == White {
		push1 = pawns.North() & empty
		push2 = (push1 & Rank3).North() & empty
		attackL = pawns.NorthWest() & targets
		attackR = pawns.NorthEast() & targets
		promotionRank = Rank8
		pushDir = 8
	} else {
		push1 = pawns.South() & empty
		push2 = (push1 & Rank6).South() & empty
		attackL = pawns.SouthWest() & targets
		attackR = pawns.SouthEast() & targets
		promotionRank = Rank1
		pushDir = -8
	}

	for push1 != 0 {
		to := push1.PopLSB()
		addPawnMove(ml, Square(int(to)-pushDir), to, promotionRank)
	}

	for push2 != 0 {
		to := push2.PopLSB()
		ml.Add(NewMove(Square(int(to)-2*pushDir), to))
	}

	// attackL moves one file toward a, so the origin is one file toward h.
	for attackL != 0 {
		to := attackL.PopLSB()
		addPawnMove(ml, Square(int(to)-pushDir+1), to, promotionRank)
	}

	for attackR != 0 {
		to := attackR.PopLSB()
		addPawnMove(ml, Square(int(to)-pushDir-1), to, promotionRank)
	}
}

// addPawnMove adds a plain pawn move, or all four promotions when the
// destination is on the promotion rank.
func addPawnMove(ml *MoveList, from, to Square, promotionRank Bitboard) {
	if !promotionRank.IsSet(to) {
		ml.Add(NewMove(from, to))
		return
	}
	for _, promo := range promotionTypes {
		ml.Add(NewPromotion(from, to, promo))
	}
}

// castlePath describes one castling option for one color.
type castlePath struct {
	kingSide bool
	king     Square   // king home square
	rook     Square   // rook home square
	between  Bitboard // squares strictly between king and rook
	transit  Square   // square the king passes over
	target   Square   // king destination
}

var castlePaths = [2][2]castlePath{
	White: {
		{kingSide: true, king: E1, rook: H1, between: SquareBB(F1) | SquareBB(G1), transit: F1, target: G1},
		{kingSide: false, king: E1, rook: A1, between: SquareBB(B1) | SquareBB(C1) | SquareBB(D1), transit: D1, target: C1},
	},
	Black: {
		{kingSide: true, king: E8, rook: H8, between: SquareBB(F8) | SquareBB(G8), transit: F8, target: G8},
		{kingSide: false, king: E8, rook: A8, between: SquareBB(B8) | SquareBB(C8) | SquareBB(D8), transit: D8, target: C8},
	},
}

// generateCastlingMoves generates castling moves as two-square king steps.
//
// Castling requires the right, an empty path between king and rook, a king
// that is not in check and an unattacked transit square. The destination
// square is left to the legality filter.
func (p *Position) generateCastlingMoves(ml *MoveList, us Color, ksq Square) {
	if p.CastlingRights&colorRights(us) == 0 {
		return
	}
	them := us.Other()
	if p.IsSquareAttacked(ksq, them) {
		return
	}

	for _, cp := range castlePaths[us] {
		if !p.CastlingRights.CanCastle(us, cp.kingSide) {
			continue
		}
		if ksq != cp.king || !p.Pieces[us][Rook].IsSet(cp.rook) {
			continue
		}
		if p.Occupied&cp.between != 0 {
			continue
		}
		if p.IsSquareAttacked(cp.transit, them) {
			continue
		}
		ml.Add(NewMove(cp.king, cp.target))
	}
}

// FindMove resolves coordinate move text against the legal moves of the
// position.
func (p *Position) FindMove(s string) (Move, error) {
	m, err := ParseMove(s)
	if err != nil {
		return NoMove, err
	}
	if !p.GenerateLegalMoves().Contains(m) {
		return NoMove, fmt.Errorf("illegal move %s in %s", s, p.FEN())
	}
	return m, nil
}

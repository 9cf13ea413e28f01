package board

// Pre-computed attack tables for non-sliding pieces.
// Written once by init and read-only afterwards.
var (
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard
)

// offset is a (file, rank) step on the board.
type offset struct{ df, dr int }

var knightOffsets = [8]offset{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = [8]offset{
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

func init() {
	for sq := A1; sq <= H8; sq++ {
		knightAttacks[sq] = leaperAttacks(sq, knightOffsets[:])
		kingAttacks[sq] = leaperAttacks(sq, kingOffsets[:])
	}
}

// leaperAttacks collects every in-board target of the given offsets.
// Offsets that would leave the board (and so wrap a file or rank in the
// linear index) are dropped.
func leaperAttacks(sq Square, offsets []offset) Bitboard {
	var attacks Bitboard
	for _, o := range offsets {
		f, r := sq.File()+o.df, sq.Rank()+o.dr
		if f < 0 || f > 7 || r < 0 || r > 7 {
			continue
		}
		attacks |= SquareBB(NewSquare(f, r))
	}
	return attacks
}

// KnightAttacks returns the knight attack bitboard for a square.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the king attack bitboard for a square.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}

// pawnAttackOrigins returns the squares from which a pawn of color c would
// capture onto sq, i.e. the capture steps projected backwards from sq.
func pawnAttackOrigins(sq Square, c Color) Bitboard {
	bb := SquareBB(sq)
	if c == White {
		return bb.SouthWest() | bb.SouthEast()
	}
	return bb.NorthWest() | bb.NorthEast()
}

// IsSquareAttacked returns true if the square is attacked by the given color.
func (p *Position) IsSquareAttacked(sq Square, byColor Color) bool {
	them := &p.Pieces[byColor]

	if pawnAttackOrigins(sq, byColor)&them[Pawn] != 0 {
		return true
	}
	if knightAttacks[sq]&them[Knight] != 0 {
		return true
	}
	if kingAttacks[sq]&them[King] != 0 {
		return true
	}
	if BishopAttacks(sq, p.Occupied)&(them[Bishop]|them[Queen]) != 0 {
		return true
	}
	if RookAttacks(sq, p.Occupied)&(them[Rook]|them[Queen]) != 0 {
		return true
	}
	return false
}

// KingSquare returns the square of the king of color c.
// It panics unless exactly one king of that color is on the board.
func (p *Position) KingSquare(c Color) Square {
	kings := p.Pieces[c][King]
	if kings.PopCount() != 1 {
		panic(&KingCountError{Color: c, Count: kings.PopCount()})
	}
	return kings.LSB()
}

// IsInCheck returns true if the king of color c is attacked by the opponent.
func (p *Position) IsInCheck(c Color) bool {
	return p.IsSquareAttacked(p.KingSquare(c), c.Other())
}

// InCheck returns true if the side to move is in check.
func (p *Position) InCheck() bool {
	return p.IsInCheck(p.SideToMove)
}

package board

// Sliding piece attacks are computed by walking rays square by square.
// Each line family is a pair of opposite steps in the linear square index.
const (
	stepFile     = 8 // north / south
	stepRank     = 1 // east / west
	stepDiagonal = 9 // north-east / south-west
	stepAnti     = 7 // north-west / south-east
)

// rayAttacks walks from sq by step until it leaves the board, wraps
// around a board edge, or hits an occupied square. The blocking square is
// included in the result.
func rayAttacks(sq Square, step int, occupied Bitboard) Bitboard {
	var attacks Bitboard
	cur := int(sq)
	for {
		prevFile := cur & 7
		cur += step
		if cur < 0 || cur > 63 {
			break
		}
		// A horizontal or diagonal step changes the file by at most one,
		// so a larger jump means the index wrapped to the other edge.
		if d := cur&7 - prevFile; d > 2 || d < -2 {
			break
		}
		bb := SquareBB(Square(cur))
		attacks |= bb
		if occupied&bb != 0 {
			break
		}
	}
	return attacks
}

// lineAttacks returns the attacks along both directions of one line family.
func lineAttacks(sq Square, step int, occupied Bitboard) Bitboard {
	return rayAttacks(sq, step, occupied) | rayAttacks(sq, -step, occupied)
}

// FileAttacks returns the attacks along the file through sq.
func FileAttacks(sq Square, occupied Bitboard) Bitboard {
	return lineAttacks(sq, stepFile, occupied)
}

// RankAttacks returns the attacks along the rank through sq.
func RankAttacks(sq Square, occupied Bitboard) Bitboard {
	return lineAttacks(sq, stepRank, occupied)
}

// DiagonalAttacks returns the attacks along the a1-h8 direction through sq.
func DiagonalAttacks(sq Square, occupied Bitboard) Bitboard {
	return lineAttacks(sq, stepDiagonal, occupied)
}

// AntiDiagonalAttacks returns the attacks along the h1-a8 direction through sq.
func AntiDiagonalAttacks(sq Square, occupied Bitboard) Bitboard {
	return lineAttacks(sq, stepAnti, occupied)
}

// BishopAttacks returns the bishop attack bitboard for a square with given occupancy.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	return DiagonalAttacks(sq, occupied) | AntiDiagonalAttacks(sq, occupied)
}

// RookAttacks returns the rook attack bitboard for a square with given occupancy.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	return FileAttacks(sq, occupied) | RankAttacks(sq, occupied)
}

// QueenAttacks returns the queen attack bitboard for a square with given occupancy.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return BishopAttacks(sq, occupied) | RookAttacks(sq, occupied)
}

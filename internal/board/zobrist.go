package board

// Zobrist keys for position fingerprints.
// Uses PRNG with fixed seed for reproducibility.
var (
	zobristPiece      [2][6][64]uint64 // [Color][PieceType][Square]
	zobristEnPassant  [8]uint64        // One per file
	zobristCastling   [16]uint64       // All 16 castling combinations
	zobristSideToMove uint64           // XOR when black to move
)

func init() {
	initZobrist()
}

// Simple PRNG for reproducible Zobrist keys
type prng struct {
	state uint64
}

// xorshift64* algorithm
func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

func initZobrist() {
	rng := &prng{state: 0x98F107A2BEEF1234}

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := A1; sq <= H8; sq++ {
				zobristPiece[c][pt][sq] = rng.next()
			}
		}
	}

	for file := 0; file < 8; file++ {
		zobristEnPassant[file] = rng.next()
	}

	for i := range zobristCastling {
		zobristCastling[i] = rng.next()
	}

	zobristSideToMove = rng.next()
}

// Fingerprint computes the Zobrist key of the position from scratch.
// Two positions with the same pieces, side to move, castling rights and
// en passant file share a fingerprint; the move counters are ignored.
func (p *Position) Fingerprint() uint64 {
	var hash uint64

	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := p.Pieces[c][pt]
			for bb != 0 {
				hash ^= zobristPiece[c][pt][bb.PopLSB()]
			}
		}
	}

	if p.SideToMove == Black {
		hash ^= zobristSideToMove
	}

	hash ^= zobristCastling[p.CastlingRights]

	if sq, ok := p.EnPassant.Get(); ok {
		hash ^= zobristEnPassant[sq.File()]
	}

	return hash
}

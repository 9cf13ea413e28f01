package board

import "fmt"

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// CanCastle returns true if the given side can castle in the given direction.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	return cr&castleRight(c, kingSide) != 0
}

// colorRights returns both castling rights of color c.
func colorRights(c Color) CastlingRights {
	if c == White {
		return WhiteKingSideCastle | WhiteQueenSideCastle
	}
	return BlackKingSideCastle | BlackQueenSideCastle
}

func castleRight(c Color, kingSide bool) CastlingRights {
	switch {
	case c == White && kingSide:
		return WhiteKingSideCastle
	case c == White:
		return WhiteQueenSideCastle
	case kingSide:
		return BlackKingSideCastle
	default:
		return BlackQueenSideCastle
	}
}

// cornerRights maps each rook home corner to the right it guards.
var cornerRights = [64]CastlingRights{
	A1: WhiteQueenSideCastle,
	H1: WhiteKingSideCastle,
	A8: BlackQueenSideCastle,
	H8: BlackKingSideCastle,
}

// Position is a complete chess position.
//
// Position is a plain value: assigning it copies every bitboard, so a copy
// can be modified without affecting the original.
type Position struct {
	// Piece bitboards: [Color][PieceType]
	Pieces [2][6]Bitboard

	// Union of all twelve piece bitboards
	Occupied Bitboard

	SideToMove     Color
	CastlingRights CastlingRights
	EnPassant      SquareOpt // Square a pawn may capture onto en passant
	HalfMoveClock  int       // Plies since last pawn move or capture
	FullMoveNumber int       // Starts at 1, incremented after Black moves

	// Hash is reserved for a position fingerprint. It is not maintained by
	// Apply; use Fingerprint to compute one.
	Hash uint64
}

// KingCountError is the panic value raised when a king lookup finds zero or
// several kings of one color.
type KingCountError struct {
	Color Color
	Count int
}

func (e *KingCountError) Error() string {
	return fmt.Sprintf("board: %v has %d kings, want exactly 1", e.Color, e.Count)
}

// NewPosition creates the starting position.
func NewPosition() Position {
	pos, err := ParseFEN(StartFEN)
	if err != nil {
		panic(err)
	}
	return pos
}

// ColorOccupancy returns all squares occupied by pieces of color c.
func (p *Position) ColorOccupancy(c Color) Bitboard {
	pieces := &p.Pieces[c]
	return pieces[Pawn] | pieces[Knight] | pieces[Bishop] | pieces[Rook] | pieces[Queen] | pieces[King]
}

// PieceAt returns the piece type and color on sq.
// The type is NoPieceType when the square is empty.
func (p *Position) PieceAt(sq Square) (PieceType, Color) {
	if !p.Occupied.IsSet(sq) {
		return NoPieceType, White
	}
	for c := White; c <= Black; c++ {
		if pt := p.pieceTypeAt(c, sq); pt != NoPieceType {
			return pt, c
		}
	}
	return NoPieceType, White
}

// pieceTypeAt scans the six bitboards of color c in fixed order
// (pawn to king) and returns the type holding sq, or NoPieceType.
func (p *Position) pieceTypeAt(c Color, sq Square) PieceType {
	bb := SquareBB(sq)
	for pt := Pawn; pt <= King; pt++ {
		if p.Pieces[c][pt]&bb != 0 {
			return pt
		}
	}
	return NoPieceType
}

// IsEmpty returns true if the square is empty.
func (p *Position) IsEmpty(sq Square) bool {
	return !p.Occupied.IsSet(sq)
}

// setPiece places a piece on an empty square.
func (p *Position) setPiece(c Color, pt PieceType, sq Square) {
	bb := SquareBB(sq)
	p.Pieces[c][pt] |= bb
	p.Occupied |= bb
}

// clearPiece removes a piece of known color and type from a square.
func (p *Position) clearPiece(c Color, pt PieceType, sq Square) {
	bb := SquareBB(sq)
	p.Pieces[c][pt] &^= bb
	p.Occupied &^= bb
}

// Validate checks the structural invariants of the position, including
// exactly one king per color.
func (p *Position) Validate() error {
	return p.validate(true)
}

// validate checks the invariants. With requireKings unset a color may have
// no king, which ParseFEN accepts for partial diagrams.
func (p *Position) validate(requireKings bool) error {
	var union Bitboard
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			bb := p.Pieces[c][pt]
			if union&bb != 0 {
				return fmt.Errorf("%v %v overlaps another piece on %v", c, pt, (union & bb).LSB())
			}
			union |= bb
		}
	}
	if union != p.Occupied {
		return fmt.Errorf("occupancy %#x does not match pieces %#x", uint64(p.Occupied), uint64(union))
	}

	for c := White; c <= Black; c++ {
		n := p.Pieces[c][King].PopCount()
		if n > 1 || requireKings && n == 0 {
			return fmt.Errorf("%v must have exactly one king, has %d", c, n)
		}
	}

	// Check that pawns are not on rank 1 or 8
	if (p.Pieces[White][Pawn]|p.Pieces[Black][Pawn])&(Rank1|Rank8) != 0 {
		return fmt.Errorf("pawns cannot be on rank 1 or 8")
	}

	if sq, ok := p.EnPassant.Get(); ok {
		// The target lies behind a pawn of the side that just moved.
		if p.SideToMove == White && sq.Rank() != 5 || p.SideToMove == Black && sq.Rank() != 2 {
			return fmt.Errorf("en passant square %v is on the wrong rank", sq)
		}
	}

	if p.HalfMoveClock < 0 || p.FullMoveNumber < 1 {
		return fmt.Errorf("invalid move counters %d/%d", p.HalfMoveClock, p.FullMoveNumber)
	}

	return nil
}

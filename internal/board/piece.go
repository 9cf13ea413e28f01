package board

// Color represents the side a piece belongs to.
type Color uint8

const (
	White Color = iota
	Black
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PieceType represents the kind of a chess piece.
// The order is also the fixed scan order used to locate a piece on a square.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType
)

// promotionTypes lists the promotion choices in generation order.
var promotionTypes = [4]PieceType{Queen, Rook, Bishop, Knight}

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the lowercase FEN character for the piece type.
func (pt PieceType) Char() byte {
	if pt >= NoPieceType {
		return ' '
	}
	return "pnbrqk"[pt]
}

// Letter returns the uppercase piece letter used in move text,
// or "" for pawns.
func (pt PieceType) Letter() string {
	switch pt {
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return ""
	}
}

// pieceFromChar converts a FEN character to its color and type.
func pieceFromChar(c byte) (Color, PieceType, bool) {
	switch c {
	case 'P':
		return White, Pawn, true
	case 'N':
		return White, Knight, true
	case 'B':
		return White, Bishop, true
	case 'R':
		return White, Rook, true
	case 'Q':
		return White, Queen, true
	case 'K':
		return White, King, true
	case 'p':
		return Black, Pawn, true
	case 'n':
		return Black, Knight, true
	case 'b':
		return Black, Bishop, true
	case 'r':
		return Black, Rook, true
	case 'q':
		return Black, Queen, true
	case 'k':
		return Black, King, true
	}
	return White, NoPieceType, false
}

// pieceChar returns the FEN character for a colored piece.
// Uppercase for white, lowercase for black.
func pieceChar(c Color, pt PieceType) byte {
	ch := pt.Char()
	if c == White {
		return ch - 'a' + 'A'
	}
	return ch
}

// Package board implements the bitboard position model, attack detection,
// move generation and the move-application transition for standard chess.
package board

import "fmt"

// Square represents a square on the chess board (0-63).
// Uses Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56, H8=63.
type Square uint8

// Square constants for all 64 squares.
const (
	A1 Square = iota
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

// File returns the file (column) of the square (0-7, where 0=a, 7=h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank (row) of the square (0-7, where 0=1, 7=8).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if sq > H8 {
		return "??"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// NewSquare creates a square from file and rank (0-indexed).
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid square: %q", s)
	}

	file := int(s[0]) - 'a'
	rank := int(s[1]) - '1'

	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return 0, fmt.Errorf("invalid square: %q", s)
	}

	return NewSquare(file, rank), nil
}

// SquareOpt is a square that may be absent, such as the en passant target.
// The zero value is absent.
type SquareOpt struct {
	sq  Square
	set bool
}

// NoSquare is the absent SquareOpt.
var NoSquare = SquareOpt{}

// SomeSquare returns a SquareOpt holding sq.
func SomeSquare(sq Square) SquareOpt {
	return SquareOpt{sq: sq, set: true}
}

// Get returns the square and whether it is present.
func (o SquareOpt) Get() (Square, bool) {
	return o.sq, o.set
}

// IsSet reports whether a square is present.
func (o SquareOpt) IsSet() bool {
	return o.set
}

// Is reports whether the option holds exactly sq.
func (o SquareOpt) Is(sq Square) bool {
	return o.set && o.sq == sq
}

// String returns the square in algebraic notation, or "-" when absent.
func (o SquareOpt) String() string {
	if !o.set {
		return "-"
	}
	return o.sq.String()
}

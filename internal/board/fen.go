package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrInvalidFEN is wrapped by every error returned from ParseFEN.
var ErrInvalidFEN = errors.New("invalid FEN")

// ParseFEN parses a FEN string and returns the position it describes.
// The half-move clock and full-move number fields are optional.
//
// A diagram without a king for one color is accepted so that the other
// side's moves can still be examined; any king lookup for the missing
// color panics.
func ParseFEN(fen string) (Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 || len(parts) > 6 {
		return Position{}, fmt.Errorf("%w: need 4 to 6 fields, got %d", ErrInvalidFEN, len(parts))
	}

	pos := Position{FullMoveNumber: 1}

	if err := parsePiecePlacement(&pos, parts[0]); err != nil {
		return Position{}, err
	}

	switch parts[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return Position{}, fmt.Errorf("%w: invalid side to move %q", ErrInvalidFEN, parts[1])
	}

	if err := parseCastlingRights(&pos, parts[2]); err != nil {
		return Position{}, err
	}

	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return Position{}, fmt.Errorf("%w: en passant: %v", ErrInvalidFEN, err)
		}
		pos.EnPassant = SomeSquare(sq)
	}

	if len(parts) > 4 {
		hmc, err := strconv.Atoi(parts[4])
		if err != nil {
			return Position{}, fmt.Errorf("%w: invalid half-move clock %q", ErrInvalidFEN, parts[4])
		}
		pos.HalfMoveClock = hmc
	}

	if len(parts) > 5 {
		fmn, err := strconv.Atoi(parts[5])
		if err != nil {
			return Position{}, fmt.Errorf("%w: invalid full-move number %q", ErrInvalidFEN, parts[5])
		}
		pos.FullMoveNumber = fmn
	}

	if err := pos.validate(false); err != nil {
		return Position{}, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}

	return pos, nil
}

// parsePiecePlacement parses the piece placement section of a FEN string.
func parsePiecePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: need 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i // FEN starts from rank 8
		file := 0

		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if file > 7 {
				return fmt.Errorf("%w: too many squares in rank %d", ErrInvalidFEN, rank+1)
			}

			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}

			color, pt, ok := pieceFromChar(c)
			if !ok {
				return fmt.Errorf("%w: invalid piece character %q", ErrInvalidFEN, c)
			}
			pos.setPiece(color, pt, NewSquare(file, rank))
			file++
		}

		if file != 8 {
			return fmt.Errorf("%w: rank %d has %d squares", ErrInvalidFEN, rank+1, file)
		}
	}

	return nil
}

// parseCastlingRights parses the castling rights section of a FEN string.
func parseCastlingRights(pos *Position, castling string) error {
	if castling == "-" {
		pos.CastlingRights = NoCastling
		return nil
	}

	for _, c := range castling {
		switch c {
		case 'K':
			pos.CastlingRights |= WhiteKingSideCastle
		case 'Q':
			pos.CastlingRights |= WhiteQueenSideCastle
		case 'k':
			pos.CastlingRights |= BlackKingSideCastle
		case 'q':
			pos.CastlingRights |= BlackQueenSideCastle
		default:
			return fmt.Errorf("%w: invalid castling character %q", ErrInvalidFEN, c)
		}
	}

	return nil
}

// FEN returns the FEN representation of the position.
func (p *Position) FEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			pt, c := p.PieceAt(NewSquare(file, rank))
			if pt == NoPieceType {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(pieceChar(c, pt))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(p.CastlingRights.String())

	sb.WriteByte(' ')
	sb.WriteString(p.EnPassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.FullMoveNumber))

	return sb.String()
}

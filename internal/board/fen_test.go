package board

import (
	"errors"
	"testing"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/8/8/8/k2Pp2R/8/8/4K3 b - d3 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"3K4/8/8/8/8/8/7P/8 w - - 0 1",
	}
	for _, fen := range fens {
		t.Run("", func(t *testing.T) {
			pos := mustParseFEN(t, fen)
			if got := pos.FEN(); got != fen {
				t.Errorf("FEN() = %q, want %q", got, fen)
			}
		})
	}
}

func TestParseFENDefaultsCounters(t *testing.T) {
	pos := mustParseFEN(t, "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - -")
	if pos.HalfMoveClock != 0 || pos.FullMoveNumber != 1 {
		t.Errorf("counters = %d/%d, want 0/1", pos.HalfMoveClock, pos.FullMoveNumber)
	}
}

func TestParseFENFields(t *testing.T) {
	pos := mustParseFEN(t, "r3k2r/8/8/3pP3/8/8/8/R3K2R w Kq d6 3 17")

	if pos.SideToMove != White {
		t.Errorf("side to move = %v", pos.SideToMove)
	}
	if pos.CastlingRights != WhiteKingSideCastle|BlackQueenSideCastle {
		t.Errorf("castling = %v, want Kq", pos.CastlingRights)
	}
	if !pos.EnPassant.Is(D6) {
		t.Errorf("en passant = %v, want d6", pos.EnPassant)
	}
	if pos.HalfMoveClock != 3 || pos.FullMoveNumber != 17 {
		t.Errorf("counters = %d/%d, want 3/17", pos.HalfMoveClock, pos.FullMoveNumber)
	}
	if pt, c := pos.PieceAt(E5); pt != Pawn || c != White {
		t.Errorf("e5 holds %v %v", c, pt)
	}
	if pt, c := pos.PieceAt(A8); pt != Rook || c != Black {
		t.Errorf("a8 holds %v %v", c, pt)
	}
	if pos.Occupied.PopCount() != 8 {
		t.Errorf("occupied count = %d, want 8", pos.Occupied.PopCount())
	}
}

func TestParseFENErrors(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNRR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBXKBNR w KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQxq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e9 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e3 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 extra",
		"rnbqkknr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"P3k3/8/8/8/8/8/8/4K3 w - - 0 1",
	}
	for _, fen := range bad {
		t.Run("", func(t *testing.T) {
			_, err := ParseFEN(fen)
			if err == nil {
				t.Fatalf("ParseFEN(%q) succeeded", fen)
			}
			if !errors.Is(err, ErrInvalidFEN) {
				t.Errorf("ParseFEN(%q) error %v does not wrap ErrInvalidFEN", fen, err)
			}
		})
	}
}

func TestValidateRequiresKings(t *testing.T) {
	pos := mustParseFEN(t, "3K4/8/8/8/8/8/7P/8 w - - 0 1")
	if err := pos.Validate(); err == nil {
		t.Error("Validate accepted a position without a black king")
	}

	start := NewPosition()
	if err := start.Validate(); err != nil {
		t.Errorf("Validate(start) = %v", err)
	}
}

func TestFingerprint(t *testing.T) {
	a := NewPosition()
	b := mustParseFEN(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 7 30")
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("move counters should not affect the fingerprint")
	}

	c := mustParseFEN(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1")
	d := mustParseFEN(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w Kkq - 0 1")
	for name, p := range map[string]Position{"side": c, "castling": d} {
		if p.Fingerprint() == a.Fingerprint() {
			t.Errorf("%s change kept the fingerprint", name)
		}
	}

	// Transpositions reach the same fingerprint.
	x := playMoves(t, a, "g1f3", "g8f6", "b1c3")
	y := playMoves(t, a, "b1c3", "g8f6", "g1f3")
	if x.Fingerprint() != y.Fingerprint() {
		t.Error("transposed move orders gave different fingerprints")
	}
}

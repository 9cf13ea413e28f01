package board

import "testing"

// movesFrom returns the legal moves of pos that start on sq.
func movesFrom(pos *Position, sq Square) []Move {
	var out []Move
	for _, m := range pos.GenerateLegalMoves().Slice() {
		if m.From() == sq {
			out = append(out, m)
		}
	}
	return out
}

func playMoves(t *testing.T, pos Position, moves ...string) Position {
	t.Helper()
	for _, s := range moves {
		m, err := pos.FindMove(s)
		if err != nil {
			t.Fatalf("FindMove(%q): %v", s, err)
		}
		pos = pos.Apply(m)
	}
	return pos
}

func TestPawnPushesFromPartialDiagram(t *testing.T) {
	// No black king: only White's moves are examined.
	pos := mustParseFEN(t, "3K4/8/8/8/8/8/7P/8 w - - 0 1")

	got := movesFrom(&pos, H2)
	if len(got) != 2 {
		t.Fatalf("h2 pawn has %d moves, want 2: %v", len(got), got)
	}
	for _, m := range []Move{NewMove(H2, H3), NewMove(H2, H4)} {
		if !pos.GenerateLegalMoves().Contains(m) {
			t.Errorf("missing %v", m)
		}
	}
}

func TestPromotionYieldsFourMoves(t *testing.T) {
	// The pawn walks up while the black king shuffles in the corner.
	pos := mustParseFEN(t, "3K4/8/8/8/8/8/7P/k7 w - - 0 1")
	pos = playMoves(t, pos,
		"h2h4", "a1b1",
		"h4h5", "b1a1",
		"h5h6", "a1b1",
		"h6h7", "b1a1",
	)

	got := movesFrom(&pos, H7)
	if len(got) != 4 {
		t.Fatalf("h7 pawn has %d moves, want 4: %v", len(got), got)
	}
	seen := make(map[PieceType]bool)
	for _, m := range got {
		promo, ok := m.Promotion()
		if !ok || m.To() != H8 {
			t.Errorf("unexpected move %v", m)
			continue
		}
		seen[promo] = true
	}
	for _, pt := range []PieceType{Knight, Bishop, Rook, Queen} {
		if !seen[pt] {
			t.Errorf("missing promotion to %v", pt)
		}
	}

	next := pos.Apply(NewPromotion(H7, H8, Knight))
	if pt, c := next.PieceAt(H8); pt != Knight || c != White {
		t.Errorf("h8 holds %v %v, want white knight", c, pt)
	}
	if next.Pieces[White][Pawn] != 0 {
		t.Error("promoted pawn still on the board")
	}
}

func TestCapturePromotion(t *testing.T) {
	pos := mustParseFEN(t, "1r2k3/P7/8/8/8/8/8/4K3 w - - 0 1")

	got := movesFrom(&pos, A7)
	// a8 push and b8 capture, four promotions each.
	if len(got) != 8 {
		t.Fatalf("a7 pawn has %d moves, want 8: %v", len(got), got)
	}

	next := pos.Apply(NewPromotion(A7, B8, Queen))
	if pt, c := next.PieceAt(B8); pt != Queen || c != White {
		t.Errorf("b8 holds %v %v, want white queen", c, pt)
	}
	if next.Pieces[Black][Rook] != 0 {
		t.Error("captured rook still on the board")
	}
	if next.HalfMoveClock != 0 {
		t.Errorf("half-move clock = %d, want 0", next.HalfMoveClock)
	}
}

func TestEnPassantCapture(t *testing.T) {
	pos := mustParseFEN(t, "8/8/8/3pP3/8/8/8/3K4 w - d6 0 1")

	ep := NewMove(E5, D6)
	if !pos.GenerateLegalMoves().Contains(ep) {
		t.Fatalf("e5d6 missing from %v", pos.GenerateLegalMoves().Slice())
	}

	next := pos.Apply(ep)
	if !next.IsEmpty(D5) {
		t.Error("captured pawn still on d5")
	}
	if pt, c := next.PieceAt(D6); pt != Pawn || c != White {
		t.Errorf("d6 holds %v %v, want white pawn", c, pt)
	}
	if next.EnPassant.IsSet() {
		t.Errorf("en passant square = %v, want none", next.EnPassant)
	}
	if next.Pieces[Black][Pawn] != 0 {
		t.Error("black still has pawns")
	}
}

func TestEnPassantOnlyImmediatelyAfterDoublePush(t *testing.T) {
	pos := mustParseFEN(t, "4k3/3p4/8/4P3/8/8/8/4K3 b - - 0 1")

	pos = playMoves(t, pos, "d7d5")
	if !pos.EnPassant.Is(D6) {
		t.Fatalf("en passant square = %v, want d6", pos.EnPassant)
	}
	if !pos.GenerateLegalMoves().Contains(NewMove(E5, D6)) {
		t.Fatal("e5d6 should be available right after d7d5")
	}

	pos = playMoves(t, pos, "e1e2", "e8e7", "e2e1")
	if pos.GenerateLegalMoves().Contains(NewMove(E5, D6)) {
		t.Error("e5d6 should no longer be available")
	}
}

func TestCastlingGeneration(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		kingSide  bool
		queenSide bool
	}{
		{"both available", "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", true, true},
		{"no rights", "4k3/8/8/8/8/8/8/R3K2R w - - 0 1", false, false},
		{"king in check", "4k3/8/8/4r3/8/8/8/R3K2R w KQ - 0 1", false, false},
		{"f1 attacked", "4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1", false, true},
		{"g1 attacked", "4k1r1/8/8/8/8/8/8/R3K2R w KQ - 0 1", false, true},
		{"d1 attacked", "3rk3/8/8/8/8/8/8/R3K2R w KQ - 0 1", true, false},
		{"b1 attacked only", "1r2k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", true, true},
		{"b1 occupied", "4k3/8/8/8/8/8/8/RN2K2R w KQ - 0 1", true, false},
		{"g1 occupied", "4k3/8/8/8/8/8/8/R3K1NR w KQ - 0 1", false, true},
		{"black both", "r3k2r/8/8/8/8/8/8/4K3 b kq - 0 1", true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := mustParseFEN(t, tc.fen)
			legal := pos.GenerateLegalMoves()

			home := E1
			if pos.SideToMove == Black {
				home = E8
			}
			if got := legal.Contains(NewMove(home, home+2)); got != tc.kingSide {
				t.Errorf("king side castling = %v, want %v", got, tc.kingSide)
			}
			if got := legal.Contains(NewMove(home, home-2)); got != tc.queenSide {
				t.Errorf("queen side castling = %v, want %v", got, tc.queenSide)
			}
		})
	}
}

// TestCastlingThroughAttackedSquareIsRejected pins down that the king may
// not pass over an attacked square, even when its destination is safe.
func TestCastlingThroughAttackedSquareIsRejected(t *testing.T) {
	pos := mustParseFEN(t, "4kr2/8/8/8/8/8/8/R3K2R w KQ - 0 1")

	if pos.GeneratePseudoLegalMoves().Contains(NewMove(E1, G1)) {
		t.Error("e1g1 generated although f1 is attacked")
	}
}

func TestCastlingIntoCheckIsFiltered(t *testing.T) {
	pos := mustParseFEN(t, "4k1r1/8/8/8/8/8/8/R3K2R w KQ - 0 1")

	if !pos.GeneratePseudoLegalMoves().Contains(NewMove(E1, G1)) {
		t.Error("e1g1 should be pseudo-legal")
	}
	if pos.GenerateLegalMoves().Contains(NewMove(E1, G1)) {
		t.Error("e1g1 should be rejected by the legality filter")
	}
}

func TestPinnedPieceCannotMove(t *testing.T) {
	// The knight on e2 shields its king from the rook on e8.
	pos := mustParseFEN(t, "4r1k1/8/8/8/8/8/4N3/4K3 w - - 0 1")

	if got := movesFrom(&pos, E2); len(got) != 0 {
		t.Errorf("pinned knight has moves %v", got)
	}
	if got := len(pos.GeneratePseudoLegalMoves().Slice()) - pos.GenerateLegalMoves().Len(); got != 6 {
		t.Errorf("filter removed %d moves, want 6", got)
	}
}

func TestCheckEvasions(t *testing.T) {
	pos := mustParseFEN(t, "4k3/8/8/8/8/8/3q4/4K3 w - - 0 1")
	if !pos.InCheck() {
		t.Fatal("white should be in check")
	}

	// d1, e2 and f2 are covered by the queen.
	legal := pos.GenerateLegalMoves()
	if legal.Len() != 2 || !legal.Contains(NewMove(E1, D2)) || !legal.Contains(NewMove(E1, F1)) {
		t.Errorf("legal moves = %v, want e1d2 and e1f1", legal.Slice())
	}
}

func TestNoLegalMoves(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		inCheck bool
	}{
		{"back rank mate", "R6k/6pp/8/8/8/8/8/K7 b - - 0 1", true},
		{"stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := mustParseFEN(t, tc.fen)
			if n := pos.GenerateLegalMoves().Len(); n != 0 {
				t.Errorf("got %d legal moves, want 0", n)
			}
			if pos.InCheck() != tc.inCheck {
				t.Errorf("InCheck() = %v, want %v", pos.InCheck(), tc.inCheck)
			}
		})
	}
}

func TestFindMove(t *testing.T) {
	pos := NewPosition()

	if _, err := pos.FindMove("e2e4"); err != nil {
		t.Errorf("FindMove(e2e4): %v", err)
	}
	for _, s := range []string{"e2e5", "e7e5", "e2", "z9e4", "e2e4x"} {
		if _, err := pos.FindMove(s); err == nil {
			t.Errorf("FindMove(%q) succeeded", s)
		}
	}
}

package main

import (
	"errors"
	"testing"

	"github.com/hailam/chesscore/internal/board"
)

func TestSetupPosition(t *testing.T) {
	pos, err := setupPosition(board.StartFEN, "e2e4 e7e5 g1f3")
	if err != nil {
		t.Fatalf("setupPosition failed: %v", err)
	}
	want := "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2"
	if got := pos.FEN(); got != want {
		t.Errorf("FEN = %q, want %q", got, want)
	}

	if _, err := setupPosition(board.StartFEN, "e2e5"); err == nil {
		t.Error("illegal move accepted")
	}
	if _, err := setupPosition("not a fen", ""); !errors.Is(err, board.ErrInvalidFEN) {
		t.Errorf("err = %v, want ErrInvalidFEN", err)
	}
	if _, err := setupPosition("3K4/8/8/8/8/8/7P/8 w - - 0 1", ""); err == nil {
		t.Error("position without a black king accepted")
	}
}

func TestOpenStore(t *testing.T) {
	t.Setenv(envCache, "")
	store, err := openStore("")
	if err != nil || store != nil {
		t.Fatalf("openStore(\"\") = %v, %v; want nil, nil", store, err)
	}

	store, err = openStore(t.TempDir())
	if err != nil {
		t.Fatalf("openStore failed: %v", err)
	}
	defer store.Close()

	if err := store.Put("k7/8/8/8/8/8/8/K7 w - -", 1, 3); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
}

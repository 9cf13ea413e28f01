// Package perft enumerates move paths of the legal move tree.
//
// Perft ("performance test") counts the leaf nodes reachable in exactly n
// plies. The counts are known for many positions, which makes them the
// usual way to check a move generator.
package perft

import (
	"github.com/hailam/chesscore/internal/board"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Count returns the number of leaf nodes at the given depth.
func Count(pos *board.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	moves := pos.GenerateLegalMoves()
	if depth == 1 {
		return uint64(moves.Len())
	}

	var nodes uint64
	for i := 0; i < moves.Len(); i++ {
		next := pos.Apply(moves.Get(i))
		nodes += Count(&next, depth-1)
	}
	return nodes
}

// Result is a perft count split by root move.
type Result struct {
	Depth int
	Moves map[string]uint64 // Root move in coordinate notation -> leaf count
	Total uint64
}

// MoveCount is one line of a divide listing.
type MoveCount struct {
	Move  string
	Nodes uint64
}

func newResult(depth int) *Result {
	return &Result{Depth: depth, Moves: make(map[string]uint64)}
}

func (r *Result) add(m board.Move, nodes uint64) {
	r.Moves[m.String()] = nodes
	r.Total += nodes
}

// Sorted returns the root moves ordered by move text.
func (r *Result) Sorted() []MoveCount {
	keys := maps.Keys(r.Moves)
	slices.Sort(keys)

	out := make([]MoveCount, len(keys))
	for i, k := range keys {
		out[i] = MoveCount{Move: k, Nodes: r.Moves[k]}
	}
	return out
}

// Divide counts the leaves below each legal root move. Depth must be at
// least 1.
func Divide(pos *board.Position, depth int) *Result {
	res := newResult(depth)
	for _, m := range pos.GenerateLegalMoves().Slice() {
		next := pos.Apply(m)
		res.add(m, Count(&next, depth-1))
	}
	return res
}

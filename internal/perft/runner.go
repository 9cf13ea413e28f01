package perft

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/storage"
)

// Store persists perft totals across runs. storage.PerftStore implements
// it; Get reports a miss with storage.ErrNotFound.
type Store interface {
	Get(fen string, depth int) (uint64, error)
	Put(fen string, depth int, nodes uint64) error
}

// Runner computes perft totals and splits, optionally backed by a shared
// Table and a persistent Store. The zero value splits the root moves over
// GOMAXPROCS goroutines with no caching.
type Runner struct {
	Table   *Table
	Store   Store
	Workers int
}

// storeKey drops the move counters, which do not change the move tree.
func storeKey(pos *board.Position) string {
	fields := strings.Fields(pos.FEN())
	return strings.Join(fields[:4], " ")
}

func (r *Runner) count(pos *board.Position, depth int) uint64 {
	if r.Table != nil {
		return CountWithTable(pos, depth, r.Table)
	}
	return Count(pos, depth)
}

// lookup returns a stored total, treating every store failure as a miss.
func (r *Runner) lookup(key string, depth int) (uint64, bool) {
	if r.Store == nil {
		return 0, false
	}
	nodes, err := r.Store.Get(key, depth)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			log.Printf("perft: store lookup %q depth %d: %v", key, depth, err)
		}
		return 0, false
	}
	return nodes, true
}

func (r *Runner) save(key string, depth int, nodes uint64) {
	if r.Store == nil {
		return
	}
	if err := r.Store.Put(key, depth, nodes); err != nil {
		log.Printf("perft: store save %q depth %d: %v", key, depth, err)
	}
}

// Count returns the leaf count at depth. cached reports whether the total
// came from the Store.
func (r *Runner) Count(ctx context.Context, pos *board.Position, depth int) (nodes uint64, cached bool, err error) {
	key := storeKey(pos)
	if nodes, ok := r.lookup(key, depth); ok {
		return nodes, true, nil
	}

	if depth < 2 || r.Workers == 1 {
		nodes = r.count(pos, depth)
	} else {
		res, err := divideParallel(ctx, pos, depth, r.Workers, r.count)
		if err != nil {
			return 0, false, err
		}
		nodes = res.Total
	}

	r.save(key, depth, nodes)
	return nodes, false, nil
}

// Divide returns the per-move split at depth, which must be at least 1.
// The total is saved to the Store; splits are always recomputed.
func (r *Runner) Divide(ctx context.Context, pos *board.Position, depth int) (*Result, error) {
	res, err := divideParallel(ctx, pos, depth, r.Workers, r.count)
	if err != nil {
		return nil, err
	}
	r.save(storeKey(pos), depth, res.Total)
	return res, nil
}

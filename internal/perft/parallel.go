package perft

import (
	"context"
	"runtime"

	"github.com/hailam/chesscore/internal/board"
	"golang.org/x/sync/errgroup"
)

// DivideParallel is Divide with the root moves spread over up to workers
// goroutines. A workers value below 1 means GOMAXPROCS.
//
// Root moves not yet started when ctx is cancelled are skipped and the
// context error is returned.
func DivideParallel(ctx context.Context, pos *board.Position, depth, workers int) (*Result, error) {
	return divideParallel(ctx, pos, depth, workers, Count)
}

// divideParallel runs count for each root move. count must be safe for
// concurrent use.
func divideParallel(ctx context.Context, pos *board.Position, depth, workers int,
	count func(*board.Position, int) uint64) (*Result, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	moves := pos.GenerateLegalMoves().Slice()
	counts := make([]uint64, len(moves))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, m := range moves {
		if gctx.Err() != nil {
			break
		}
		i, m := i, m
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			next := pos.Apply(m)
			counts[i] = count(&next, depth-1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := newResult(depth)
	for i, m := range moves {
		res.add(m, counts[i])
	}
	return res, nil
}

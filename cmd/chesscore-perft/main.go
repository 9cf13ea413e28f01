package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/hailam/chesscore/internal/board"
	"github.com/hailam/chesscore/internal/perft"
	"github.com/hailam/chesscore/internal/storage"
)

var (
	fen        = flag.String("fen", board.StartFEN, "position to count from")
	moves      = flag.String("moves", "", "space separated moves to play first, e.g. \"e2e4 e7e5\"")
	depth      = flag.Int("depth", 5, "perft depth in plies")
	divide     = flag.Bool("divide", false, "print the count below each root move")
	workers    = flag.Int("workers", 0, "goroutines for the root moves (0 = GOMAXPROCS)")
	hashMB     = flag.Int("hash", 64, "perft hash table size in MB (0 disables)")
	cacheDir   = flag.String("cache", "", "badger directory for stored results, \"default\" for the data dir")
	list       = flag.Bool("list", false, "list stored results for the position and exit")
	validate   = flag.Bool("validate", false, "check position invariants after every move (slow)")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()
	log.SetFlags(0)

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Start CPU profiling if requested (via flag or environment variable)
	profilePath := *cpuprofile
	if profilePath == "" {
		profilePath = os.Getenv("CPUPROFILE")
	}
	if profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
		log.Printf("CPU profiling enabled, writing to %s", profilePath)
	}

	board.DebugMoveValidation = *validate

	pos, err := setupPosition(*fen, *moves)
	if err != nil {
		return err
	}
	if *depth < 1 {
		return fmt.Errorf("depth must be at least 1, got %d", *depth)
	}

	store, err := openStore(*cacheDir)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close()
	}

	if *list {
		if store == nil {
			return fmt.Errorf("-list needs -cache or %s", envCache)
		}
		return listRecords(store, &pos)
	}

	runner := &perft.Runner{Workers: *workers}
	if *hashMB > 0 {
		runner.Table = perft.NewTable(*hashMB)
	}
	if store != nil {
		runner.Store = store
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println(pos.FEN())
	start := time.Now()

	var nodes uint64
	cached := false
	if *divide {
		res, err := runner.Divide(ctx, &pos, *depth)
		if err != nil {
			return err
		}
		for _, mc := range res.Sorted() {
			m, _ := board.ParseMove(mc.Move)
			fmt.Printf("%-7s %-8s %d\n", mc.Move, pos.LongAlgebraic(m), mc.Nodes)
		}
		fmt.Println()
		nodes = res.Total
	} else {
		nodes, cached, err = runner.Count(ctx, &pos, *depth)
		if err != nil {
			return err
		}
	}

	elapsed := time.Since(start)
	nps := uint64(0)
	if elapsed > 0 {
		nps = uint64(float64(nodes) / elapsed.Seconds())
	}

	fmt.Printf("depth %d nodes %d time %v nps %d", *depth, nodes, elapsed.Round(time.Millisecond), nps)
	if cached {
		fmt.Print(" (stored)")
	}
	fmt.Println()
	if runner.Table != nil {
		log.Printf("hash hit rate %.1f%%", runner.Table.HitRate())
	}
	return nil
}

// setupPosition parses the FEN and plays the given moves on it.
func setupPosition(fen, moves string) (board.Position, error) {
	pos, err := board.ParseFEN(fen)
	if err != nil {
		return board.Position{}, err
	}
	for _, s := range strings.Fields(moves) {
		m, err := pos.FindMove(s)
		if err != nil {
			return board.Position{}, err
		}
		pos = pos.Apply(m)
	}
	if err := pos.Validate(); err != nil {
		return board.Position{}, fmt.Errorf("position: %w", err)
	}
	return pos, nil
}

// envCache is consulted when -cache is not given.
const envCache = "CHESSCORE_CACHE"

// openStore opens the result store named by dir, or by $CHESSCORE_CACHE.
// It returns nil if neither is set.
func openStore(dir string) (*storage.PerftStore, error) {
	if dir == "" {
		dir = os.Getenv(envCache)
	}
	switch dir {
	case "":
		return nil, nil
	case "default":
		return storage.OpenDefault()
	default:
		return storage.Open(dir)
	}
}

func listRecords(store *storage.PerftStore, pos *board.Position) error {
	fields := strings.Fields(pos.FEN())
	records, err := store.Records(strings.Join(fields[:4], " "))
	if err != nil {
		return err
	}
	for _, rec := range records {
		fmt.Printf("depth %d nodes %d computed %s\n", rec.Depth, rec.Nodes, rec.ComputedAt.Format(time.RFC3339))
	}
	if len(records) == 0 {
		fmt.Println("no stored results")
	}
	return nil
}

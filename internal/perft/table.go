package perft

import (
	"sync"
	"sync/atomic"

	"github.com/hailam/chesscore/internal/board"
)

// Number of shards for table locking (power of 2 for fast modulo)
const tableShardCount = 256
const tableShardMask = tableShardCount - 1

// tableEntry is one slot of the perft table.
type tableEntry struct {
	Key   uint64 // Full fingerprint for verification
	Nodes uint64 // Leaf count below the position
	Depth int32  // Remaining depth the count was taken at, 0 means empty
}

// Table caches subtree leaf counts by position fingerprint and depth.
// Uses sharded locking so DivideParallel workers can share one table.
type Table struct {
	entries []tableEntry
	shards  [tableShardCount]sync.RWMutex
	size    uint64
	mask    uint64

	// Statistics (atomic for thread-safety)
	hits   atomic.Uint64
	probes atomic.Uint64
}

// NewTable creates a perft table with the given size in MB.
func NewTable(sizeMB int) *Table {
	entrySize := uint64(24)
	numEntries := (uint64(sizeMB) * 1024 * 1024) / entrySize
	if numEntries < tableShardCount {
		numEntries = tableShardCount
	}

	// Round down to power of 2 for fast modulo
	numEntries = roundDownToPowerOf2(numEntries)

	return &Table{
		entries: make([]tableEntry, numEntries),
		size:    numEntries,
		mask:    numEntries - 1,
	}
}

// roundDownToPowerOf2 rounds n down to the nearest power of 2.
func roundDownToPowerOf2(n uint64) uint64 {
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return (n + 1) >> 1
}

// index mixes the depth into the slot so one position can be cached at
// several depths.
func (t *Table) index(key uint64, depth int) uint64 {
	return (key ^ uint64(depth)*0x9E3779B97F4A7C15) & t.mask
}

// Probe looks up the leaf count of a position at the given depth.
func (t *Table) Probe(key uint64, depth int) (uint64, bool) {
	t.probes.Add(1)

	idx := t.index(key, depth)
	shard := idx & tableShardMask

	t.shards[shard].RLock()
	entry := t.entries[idx]
	t.shards[shard].RUnlock()

	if entry.Key == key && entry.Depth == int32(depth) && depth > 0 {
		t.hits.Add(1)
		return entry.Nodes, true
	}
	return 0, false
}

// Store saves the leaf count of a position. Slots are always replaced.
func (t *Table) Store(key uint64, depth int, nodes uint64) {
	idx := t.index(key, depth)
	shard := idx & tableShardMask

	t.shards[shard].Lock()
	t.entries[idx] = tableEntry{Key: key, Nodes: nodes, Depth: int32(depth)}
	t.shards[shard].Unlock()
}

// Clear empties the table and resets the statistics.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = tableEntry{}
	}
	t.hits.Store(0)
	t.probes.Store(0)
}

// HitRate returns the cache hit rate as a percentage.
func (t *Table) HitRate() float64 {
	probes := t.probes.Load()
	if probes == 0 {
		return 0
	}
	return float64(t.hits.Load()) / float64(probes) * 100
}

// Size returns the number of entries in the table.
func (t *Table) Size() uint64 {
	return t.size
}

// CountWithTable is Count backed by t. Depths 0 and 1 are never cached.
func CountWithTable(pos *board.Position, depth int, t *Table) uint64 {
	if depth <= 1 {
		return Count(pos, depth)
	}

	key := pos.Fingerprint()
	if nodes, ok := t.Probe(key, depth); ok {
		return nodes
	}

	var nodes uint64
	for _, m := range pos.GenerateLegalMoves().Slice() {
		next := pos.Apply(m)
		nodes += CountWithTable(&next, depth-1, t)
	}

	t.Store(key, depth, nodes)
	return nodes
}

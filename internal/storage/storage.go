package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Key prefix for perft records
const keyPerftPrefix = "perft:"

// ErrNotFound is returned by Get when no record exists.
var ErrNotFound = errors.New("storage: perft record not found")

// PerftRecord is the stored form of one perft total.
type PerftRecord struct {
	FEN        string    `json:"fen"`
	Depth      int       `json:"depth"`
	Nodes      uint64    `json:"nodes"`
	ComputedAt time.Time `json:"computed_at"`
}

// PerftStore wraps BadgerDB for persistent perft results
type PerftStore struct {
	db *badger.DB
}

// Open opens (creating if needed) a perft store in dir.
func Open(dir string) (*PerftStore, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	return open(opts)
}

// OpenDefault opens the store in the platform database directory.
func OpenDefault() (*PerftStore, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return Open(dbDir)
}

// OpenInMemory opens a store that lives only as long as the process.
func OpenInMemory() (*PerftStore, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil

	return open(opts)
}

func open(opts badger.Options) (*PerftStore, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("storage: open: %w", err)
	}
	return &PerftStore{db: db}, nil
}

// Close closes the database
func (s *PerftStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// perftKey is "perft:<depth>:<fen>".
func perftKey(fen string, depth int) []byte {
	return []byte(keyPerftPrefix + strconv.Itoa(depth) + ":" + fen)
}

// Get returns the stored node count for fen at depth.
func (s *PerftStore) Get(fen string, depth int) (uint64, error) {
	var rec PerftRecord

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(perftKey(fen, depth))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return 0, err
	}

	return rec.Nodes, nil
}

// Put saves the node count for fen at depth, replacing any older record.
func (s *PerftStore) Put(fen string, depth int, nodes uint64) error {
	data, err := json.Marshal(PerftRecord{
		FEN:        fen,
		Depth:      depth,
		Nodes:      nodes,
		ComputedAt: time.Now(),
	})
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(perftKey(fen, depth), data)
	})
}

// Records returns every stored record whose FEN starts with fenPrefix,
// in key order.
func (s *PerftStore) Records(fenPrefix string) ([]PerftRecord, error) {
	var out []PerftRecord

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(keyPerftPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rec PerftRecord
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			}); err != nil {
				return err
			}
			if strings.HasPrefix(rec.FEN, fenPrefix) {
				out = append(out, rec)
			}
		}
		return nil
	})

	return out, err
}

// Package store persists per-position analysis reports in BadgerDB, keyed by
// FEN. The detectors are cheap, but the annotate tool replays whole game
// collections and revisits the same positions constantly; the cache makes
// reruns free.
package store

import (
	"encoding/json"
	"errors"

	"github.com/dgraph-io/badger/v4"

	"tactics-engine/tactics"
)

const keyPrefix = "analysis/"

// MoveAnalysis is one ordered candidate move with its tactical breakdown.
type MoveAnalysis struct {
	Move   string         `json:"move"`
	Score  int            `json:"score"`
	Report tactics.Report `json:"report"`
}

// PositionAnalysis is the cached record for one position.
type PositionAnalysis struct {
	FEN   string         `json:"fen"`
	Moves []MoveAnalysis `json:"moves"`
}

// Store wraps BadgerDB for persistent analysis storage.
type Store struct {
	db *badger.DB
}

// Open opens (creating if needed) the analysis database in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Put stores the analysis for its FEN, replacing any previous record.
func (s *Store) Put(analysis *PositionAnalysis) error {
	data, err := json.Marshal(analysis)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+analysis.FEN), data)
	})
}

// Get loads the analysis for a FEN. found is false on a cache miss.
func (s *Store) Get(fen string) (analysis *PositionAnalysis, found bool, err error) {
	analysis = &PositionAnalysis{}
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + fen))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil // miss
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, analysis)
		})
	})
	if err != nil || !found {
		return nil, false, err
	}
	return analysis, true, nil
}

// Len counts the cached positions.
func (s *Store) Len() (int, error) {
	var n int
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: []byte(keyPrefix)})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	return n, err
}

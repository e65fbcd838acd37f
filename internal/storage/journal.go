// Package storage keeps saved games in a BadgerDB journal.
package storage

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/lgbarn/thoth-go/internal/errors"
)

const gamePrefix = "game/"

// GameRecord is a saved game: the move texts played from the standard
// initial position and the settings of the session that played them.
type GameRecord struct {
	Name     string    `json:"name"`
	Moves    []string  `json:"moves"`
	Outcome  string    `json:"outcome"`
	Mode     string    `json:"mode"`
	UserSide string    `json:"user_side"`
	SavedAt  time.Time `json:"saved_at"`
}

// Journal wraps BadgerDB for saved games.
type Journal struct {
	db *badger.DB
}

// Open opens (or creates) a journal in dir.
func Open(dir string) (*Journal, error) {
	if dir == "" {
		return nil, fmt.Errorf("journal directory not set: %w", errors.ErrInvalidConfig)
	}
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging
	return open(opts)
}

// OpenInMemory opens a journal that is discarded on Close.
func OpenInMemory() (*Journal, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	return open(opts)
}

func open(opts badger.Options) (*Journal, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "opening journal")
	}
	return &Journal{db: db}, nil
}

// Close closes the database.
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// SaveGame stores the record under its name, replacing any earlier save.
func (j *Journal) SaveGame(rec *GameRecord) error {
	name := strings.TrimSpace(rec.Name)
	if name == "" {
		return fmt.Errorf("saving game: empty name: %w", errors.ErrInvalidConfig)
	}
	rec.Name = name
	if rec.SavedAt.IsZero() {
		rec.SavedAt = time.Now()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return j.db.Update(func(txn *badger.Txn) error {
		return txn.Set(gameKey(name), data)
	})
}

// LoadGame returns the record saved under name, or an error wrapping
// errors.ErrGameNotFound.
func (j *Journal) LoadGame(name string) (*GameRecord, error) {
	rec := &GameRecord{}
	err := j.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gameKey(name))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("game %q: %w", name, errors.ErrGameNotFound)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, rec)
		})
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ListGames returns the names of all saved games in key order.
func (j *Journal) ListGames() ([]string, error) {
	var names []string
	err := j.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(gamePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := string(it.Item().Key())
			names = append(names, strings.TrimPrefix(key, gamePrefix))
		}
		return nil
	})
	return names, err
}

// DeleteGame removes a saved game. Deleting a missing game is an error
// wrapping errors.ErrGameNotFound.
func (j *Journal) DeleteGame(name string) error {
	return j.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(gameKey(name)); err != nil {
			if stderrors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("game %q: %w", name, errors.ErrGameNotFound)
			}
			return err
		}
		return txn.Delete(gameKey(name))
	})
}

func gameKey(name string) []byte {
	return []byte(gamePrefix + name)
}

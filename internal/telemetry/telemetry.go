// Package telemetry persists one record per completed search to an
// embedded database: the loaded position size, the chosen move, and
// search statistics. It is pure bookkeeping — the search driver never
// reads it back, so it cannot become an undeclared transposition table.
package telemetry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const keySessionPrefix = "session:"

// SessionRecord is one completed search invocation.
type SessionRecord struct {
	ID        string        `json:"id"`
	Records   int           `json:"records"`    // number of cells the loaded position set
	MoveToken string        `json:"move_token"` // the emitted YXYX or 0000 token
	Nodes     uint64        `json:"nodes"`
	Depth     int           `json:"depth"`
	Elapsed   time.Duration `json:"elapsed"`
	When      time.Time     `json:"when"`
}

// Store wraps a BadgerDB instance for persisting session records.
type Store struct {
	db *badger.DB
}

// Open opens (creating if necessary) the telemetry database at dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

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

// Record persists one completed search.
func (s *Store) Record(rec SessionRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keySessionPrefix+rec.ID), data)
	})
}

// Load loads a previously persisted session record by id.
func (s *Store) Load(id string) (*SessionRecord, error) {
	var rec SessionRecord
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keySessionPrefix + id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("telemetry: load session %s: %v", id, err)
	}
	return &rec, nil
}

// Count returns the number of session records stored.
func (s *Store) Count() (int, error) {
	n := 0
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(keySessionPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			n++
		}
		return nil
	})
	return n, err
}

const appName = "chess75"

// DefaultDir returns the platform-specific directory this package's
// BadgerDB database should live in by default, creating it if needed:
// - macOS: ~/Library/Application Support/chess75/db/
// - Linux: ~/.local/share/chess75/db/ (or $XDG_DATA_HOME/chess75/db/)
// - Windows: %APPDATA%/chess75/db/
// A host driver that wants to place the database elsewhere (an explicit
// -telemetry-path flag, a test's temp dir) bypasses this and calls Open
// directly; DefaultDir only resolves the no-configuration case.
func DefaultDir() (string, error) {
	appDir, err := appDataDir()
	if err != nil {
		return "", err
	}
	dbDir := filepath.Join(appDir, "db")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}
	return dbDir, nil
}

func appDataDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	dir := filepath.Join(baseDir, appName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

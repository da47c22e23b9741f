// Package store provides persistence for the ledger snapshot and the
// account/category catalog.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/moktak128bit/gagyebu/internal/logging"
	"github.com/moktak128bit/gagyebu/internal/models"
)

// LedgerStore supplies read-only history snapshots and accepts whole-snapshot
// replacements. Replace is atomic: concurrent generator runs can both decide
// to insert, but only complete snapshots ever land on disk, and the second
// run re-reads a history that already contains the first run's entries.
type LedgerStore interface {
	Load() ([]models.Entry, error)
	Replace(entries []models.Entry) error
}

// FileStore is a LedgerStore backed by a single JSON snapshot file, the same
// shape the web client writes as a backup.
type FileStore struct {
	path   string
	mu     sync.Mutex
	logger logging.Logger
}

// NewFileStore creates a FileStore for the given snapshot path.
func NewFileStore(path string, logger logging.Logger) *FileStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &FileStore{path: path, logger: logger}
}

// Load reads the current snapshot. A missing file is an empty ledger, not an
// error: first run starts from nothing.
func (s *FileStore) Load() ([]models.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading ledger snapshot: %w", err)
	}
	var entries []models.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("error parsing ledger snapshot %s: %w", s.path, err)
	}

	s.logger.Debug("Loaded ledger snapshot",
		logging.Field{Key: logging.FieldFile, Value: s.path},
		logging.Field{Key: logging.FieldCount, Value: len(entries)},
	)
	return entries, nil
}

// Replace writes a complete new snapshot. The write goes to a temp file in
// the same directory followed by a rename, so readers never observe a
// half-written snapshot.
func (s *FileStore) Replace(entries []models.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding ledger snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("error creating ledger directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".ledger-*.json")
	if err != nil {
		return fmt.Errorf("error creating temp snapshot: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("error writing temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("error closing temp snapshot: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("error replacing ledger snapshot: %w", err)
	}

	s.logger.Debug("Replaced ledger snapshot",
		logging.Field{Key: logging.FieldFile, Value: s.path},
		logging.Field{Key: logging.FieldCount, Value: len(entries)},
	)
	return nil
}

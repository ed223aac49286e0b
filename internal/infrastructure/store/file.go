package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/younwookim/wizzy/internal/application/state"
)

// FileStore keeps the encoded GameState in a single file
type FileStore struct {
	Path string

	// NewState builds the state used when no file exists yet.
	// Defaults to state.Default.
	NewState func() *state.GameState
}

// NewFileStore creates a store for path
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the saved state. A missing file is not an error: it yields a
// fresh state and exists == false.
func (s *FileStore) Load() (st *state.GameState, exists bool, err error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return s.fresh(), false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read state: %w", err)
	}

	st, err = UnmarshalWith(data, s.fresh)
	if err != nil {
		return nil, true, fmt.Errorf("failed to decode state %s: %w", s.Path, err)
	}
	return st, true, nil
}

// Save writes st, replacing the previous file only once the new one is
// fully written.
func (s *FileStore) Save(st *state.GameState) error {
	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(Marshal(st)); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close state: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("failed to replace state: %w", err)
	}
	return nil
}

func (s *FileStore) fresh() *state.GameState {
	if s.NewState != nil {
		return s.NewState()
	}
	return state.Default()
}

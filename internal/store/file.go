package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jobflow/jobflow/internal/schemas"
)

// FileStore persists state as a JSON file. Loads are validated against the
// state schema so a hand-edited or corrupted file fails loudly instead of
// feeding garbage into the pipeline.
type FileStore struct {
	path       string
	schemaPath string
}

// FileOption configures a FileStore.
type FileOption func(*FileStore)

// WithSchemaPath overrides the schema file used for load validation.
func WithSchemaPath(path string) FileOption {
	return func(s *FileStore) {
		s.schemaPath = path
	}
}

// NewFileStore creates a file-backed store at the given path.
func NewFileStore(path string, opts ...FileOption) *FileStore {
	s := &FileStore{
		path:       path,
		schemaPath: schemas.ResolvePath(schemas.StateSchemaPath),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load implements Store. A missing file yields a fresh empty state.
func (s *FileStore) Load(_ context.Context) (*State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewState(), nil
		}
		return nil, fmt.Errorf("failed to read state file %s: %w", s.path, err)
	}

	if s.schemaPath != "" {
		if err := schemas.ValidateFile(s.schemaPath, data); err != nil {
			return nil, fmt.Errorf("state file %s is invalid: %w", s.path, err)
		}
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse state file %s: %w", s.path, err)
	}
	return &state, nil
}

// Save implements Store. The write goes through a temp file and rename so a
// crash mid-write cannot truncate the previous state.
func (s *FileStore) Save(_ context.Context, state *State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create state directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".state-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp state file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace state file %s: %w", s.path, err)
	}
	return nil
}

// Close implements Store. The file store holds no resources.
func (s *FileStore) Close() {}

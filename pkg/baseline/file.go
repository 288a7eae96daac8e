package baseline

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bigkevmcd/store-polling-operator/pkg/revision"
)

// FileStore keeps the baseline for a single repository in a YAML file.
type FileStore struct {
	path string
}

// NewFileStore creates and returns a FileStore that reads and writes path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load returns the stored baseline, or nil if nothing has been stored yet.
func (f *FileStore) Load() (*revision.State, error) {
	b, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read baseline %s: %w", f.path, err)
	}
	s := &revision.State{}
	if err := yaml.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("failed to decode baseline %s: %w", f.path, err)
	}
	return s, nil
}

// Save replaces the stored baseline.
//
// The file is written next to the target and renamed, so a reader never sees
// a partially written baseline.
func (f *FileStore) Save(s *revision.State) error {
	if s == nil {
		return errors.New("no baseline to save")
	}
	b, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode baseline: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.path), "."+filepath.Base(f.path)+"-*")
	if err != nil {
		return fmt.Errorf("failed to save baseline %s: %w", f.path, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to save baseline %s: %w", f.path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to save baseline %s: %w", f.path, err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("failed to save baseline %s: %w", f.path, err)
	}
	return nil
}

package baseline

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bigkevmcd/store-polling-operator/pkg/revision"
)

func TestLoadWithMissingFile(t *testing.T) {
	f := NewFileStore(filepath.Join(t.TempDir(), "baseline.yaml"))

	s, err := f.Load()
	if err != nil {
		t.Fatal(err)
	}
	if s != nil {
		t.Fatalf("Load() got %#v, want nil", s)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseline.yaml")
	f := NewFileStore(path)
	state := revision.Parse("Store-Base\t8.3 - 12\tDevelopment\nGlorp\t4\tWork In Progress\n")

	if err := f.Save(state); err != nil {
		t.Fatal(err)
	}
	loaded, err := f.Load()
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(state, loaded); diff != "" {
		t.Fatalf("Load() incorrect:\n%s", diff)
	}
	if !loaded.Equal(state) {
		t.Fatal("loaded baseline is not equal to the saved one")
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected only the baseline file, got %d entries", len(entries))
	}
}

func TestSaveEmptyState(t *testing.T) {
	f := NewFileStore(filepath.Join(t.TempDir(), "baseline.yaml"))
	empty := revision.Parse("")

	if err := f.Save(empty); err != nil {
		t.Fatal(err)
	}
	loaded, err := f.Load()
	if err != nil {
		t.Fatal(err)
	}

	if loaded == nil {
		t.Fatal("an empty baseline should load as a baseline")
	}
	if loaded.Digest != empty.Digest {
		t.Fatalf("Load() digest got %s, want %s", loaded.Digest, empty.Digest)
	}
}

func TestSaveNil(t *testing.T) {
	f := NewFileStore(filepath.Join(t.TempDir(), "baseline.yaml"))

	if err := f.Save(nil); !matchError(t, "no baseline to save", err) {
		t.Fatal(err)
	}
}

func TestLoadWithInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseline.yaml")
	if err := os.WriteFile(path, []byte("versions: {"), 0600); err != nil {
		t.Fatal(err)
	}

	_, err := NewFileStore(path).Load()
	if !matchError(t, "failed to decode baseline", err) {
		t.Fatal(err)
	}
}

func matchError(t *testing.T, s string, e error) bool {
	t.Helper()
	if e == nil {
		return false
	}
	match, err := regexp.MatchString(s, e.Error())
	if err != nil {
		t.Fatal(err)
	}
	return match
}

package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// DefaultMaxValueBytes caps a single stored value at ~5MB.
const DefaultMaxValueBytes = 5 << 20

// File stores each key as a JSON document in its own file under a data
// directory. Writes go through a temp file and rename, so a crash mid-write
// never leaves a torn value behind.
type File struct {
	dir      string
	maxBytes int
	mu       sync.Mutex
}

// NewFile opens (creating if necessary) a file store rooted at dir.
// maxBytes <= 0 selects DefaultMaxValueBytes.
func NewFile(dir string, maxBytes int) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxValueBytes
	}
	return &File{dir: dir, maxBytes: maxBytes}, nil
}

func (f *File) path(key string) string {
	// Keys are collection names chosen by this codebase, but guard against
	// separators anyway.
	safe := strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(f.dir, safe+".json")
}

func (f *File) Get(key string, v any) error {
	f.mu.Lock()
	raw, err := os.ReadFile(f.path(key))
	f.mu.Unlock()
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return json.Unmarshal(raw, v)
}

func (f *File) Put(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if len(raw) > f.maxBytes {
		return fmt.Errorf("%w: %d bytes at %q", ErrQuotaExceeded, len(raw), key)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	tmp, err := os.CreateTemp(f.dir, "."+key+"-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.path(key))
}

func (f *File) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	err := os.Remove(f.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (f *File) Keys() ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, err
	}
	var keys []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".json") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, ".json"))
	}
	return keys, nil
}

var _ Store = (*File)(nil)

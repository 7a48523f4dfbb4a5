// Package cache persists color assignments as a single JSON object mapping
// project keys to hex colors.
//
// The cache file is shared by every concurrently running invocation, so all
// writes go through an atomic temp-file-and-rename, and all reads defend
// against symlinked, oversized, or corrupt files. Corruption never surfaces
// as an error to callers; it only forgoes the caching benefit.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Sentinel errors returned by Save.
var (
	// ErrSymlink is returned when the destination path is a symbolic link.
	// Writing through a symlink could redirect the cache into an
	// unintended file, so the write is refused outright.
	ErrSymlink = errors.New("cache path is a symlink")
)

// DefaultMaxSize bounds how large a cache or settings file may be before
// reads reject it. Guards against resource exhaustion from a tampered file.
const DefaultMaxSize = 1 << 20 // 1MB

// Store reads and writes a key-to-color cache at an explicit path.
// The path and size bound are injected rather than global so tests can
// point the store at temporary files.
type Store struct {
	path    string
	maxSize int64
}

// NewStore creates a Store for the cache file at path.
// A maxSize of 0 or less falls back to DefaultMaxSize.
func NewStore(path string, maxSize int64) *Store {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return &Store{path: path, maxSize: maxSize}
}

// Path returns the cache file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the cache file and returns its contents.
// It never fails: an absent, symlinked, oversized, or malformed file all
// yield an empty map. Values are not validated here; consumers re-validate
// each entry and treat failures as cache misses.
func (s *Store) Load() map[string]string {
	raw, ok := ReadFileGuarded(s.path, s.maxSize)
	if !ok {
		return map[string]string{}
	}

	var entries map[string]string
	if err := json.Unmarshal(raw, &entries); err != nil || entries == nil {
		return map[string]string{}
	}
	return entries
}

// Save writes the cache atomically: serialize to a temp file in the same
// directory, restrict permissions to owner-only, then rename over the
// destination. Concurrent readers always observe either the prior or the
// fully written content, never a partial file.
//
// Returns ErrSymlink without writing if the destination already exists as
// a symbolic link.
func (s *Store) Save(entries map[string]string) error {
	if info, err := os.Lstat(s.path); err == nil && info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("%w: %s", ErrSymlink, s.path)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal cache: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmux-peacock-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if err := writeAndClose(tmp, data); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename cache: %w", err)
	}
	return nil
}

func writeAndClose(f *os.File, data []byte) error {
	if err := f.Chmod(0o600); err != nil {
		_ = f.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	return nil
}

// ReadFileGuarded reads a file with symlink and size checks.
// Returns ok=false if the path is a symlink, does not exist, exceeds
// maxSize, or cannot be read. Shared by the cache and external settings
// readers so every untrusted file goes through the same guards.
func ReadFileGuarded(path string, maxSize int64) ([]byte, bool) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, false
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return nil, false
	}
	if !info.Mode().IsRegular() || info.Size() > maxSize {
		return nil, false
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return raw, true
}

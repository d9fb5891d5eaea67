package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Saver persists an encoded file and returns where it went.
type Saver interface {
	Save(ctx context.Context, filename string, data []byte) (string, error)
}

// DirSaver writes files into a directory, creating it when missing.
type DirSaver struct {
	Dir string
}

// Save writes data to Dir/filename, replacing an existing file.
func (s DirSaver) Save(ctx context.Context, filename string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if filename == "" || filepath.Base(filename) != filename {
		return "", fmt.Errorf("export: invalid filename %q", filename)
	}
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("export: create dir: %w", err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("export: write %s: %w", path, err)
	}
	return path, nil
}

// MemorySaver keeps saved files in memory. It is safe for concurrent use.
type MemorySaver struct {
	mu    sync.RWMutex
	files map[string][]byte
	last  string
}

// NewMemorySaver creates an empty in-memory saver.
func NewMemorySaver() *MemorySaver {
	return &MemorySaver{files: make(map[string][]byte)}
}

// Save stores a copy of data under filename.
func (s *MemorySaver) Save(ctx context.Context, filename string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if filename == "" {
		return "", errors.New("export: filename is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[filename] = append([]byte(nil), data...)
	s.last = filename
	return "memory://" + filename, nil
}

// File returns a saved file.
func (s *MemorySaver) File(filename string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.files[filename]
	return data, ok
}

// Last returns the most recently saved file name.
func (s *MemorySaver) Last() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.last
}

// Names lists saved file names in sorted order.
func (s *MemorySaver) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.files))
	for name := range s.files {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

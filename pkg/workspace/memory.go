package workspace

import (
	"context"
	"os"
	"sort"
	"sync"

	"gitlab.com/tozd/go/errors"
)

var _ Files = (*Memory)(nil)

// Memory is an in-memory Files, keyed by path. Failures can be injected per
// path with FailRead and FailWrite.
type Memory struct {
	mu        sync.RWMutex
	files     map[string][]byte
	readErrs  map[string]error
	writeErrs map[string]error
	writes    []string
}

// NewMemory creates a Memory holding a copy of files
func NewMemory(files map[string]string) *Memory {
	m := &Memory{
		files:     make(map[string][]byte, len(files)),
		readErrs:  make(map[string]error),
		writeErrs: make(map[string]error),
	}
	for path, content := range files {
		m.files[path] = []byte(content)
	}
	return m
}

// FailRead makes every ReadFile of path return err
func (m *Memory) FailRead(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readErrs[path] = err
}

// FailWrite makes every WriteFile of path return err
func (m *Memory) FailWrite(path string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writeErrs[path] = err
}

func (m *Memory) Exists(ctx context.Context, path string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.files[path]
	return ok, nil
}

func (m *Memory) ReadFile(ctx context.Context, path string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.readErrs[path]; err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	content, ok := m.files[path]
	if !ok {
		return nil, errors.Errorf("reading file: %w", os.ErrNotExist)
	}
	return append([]byte(nil), content...), nil
}

func (m *Memory) WriteFile(ctx context.Context, path string, content []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.writeErrs[path]; err != nil {
		return errors.Errorf("writing file: %w", err)
	}
	m.files[path] = append([]byte(nil), content...)
	m.writes = append(m.writes, path)
	return nil
}

// Content returns the current content at path
func (m *Memory) Content(path string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	content, ok := m.files[path]
	return string(content), ok
}

// Paths returns every path held, sorted
func (m *Memory) Paths() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	paths := make([]string, 0, len(m.files))
	for path := range m.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Writes returns the paths written so far, in write order
func (m *Memory) Writes() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]string(nil), m.writes...)
}

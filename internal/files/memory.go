package files

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// MemoryProvider implements Provider for in-memory testing.
// Safe for concurrent use by multiple goroutines.
type MemoryProvider struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemoryProvider creates an empty in-memory provider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{files: make(map[string][]byte)}
}

// AddFile adds or replaces a file. The path is normalized to forward slashes.
func (m *MemoryProvider) AddFile(filePath string, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[normalize(filePath)] = []byte(content)
}

// ReadFile implements Provider.ReadFile.
func (m *MemoryProvider) ReadFile(filePath string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	content, ok := m.files[normalize(filePath)]
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: filePath, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(content))
	copy(out, content)
	return out, nil
}

// Glob implements Provider.Glob.
func (m *MemoryProvider) Glob(pattern string) ([]string, error) {
	pattern = normalize(pattern)
	if _, err := path.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []string
	for p := range m.files {
		if ok, _ := path.Match(pattern, p); ok {
			result = append(result, p)
		}
	}
	sort.Strings(result)
	return result, nil
}

// normalize converts a path to the virtual filesystem convention:
// forward slashes, cleaned, no leading "./".
func normalize(p string) string {
	p = filepath.ToSlash(p)
	p = path.Clean(p)
	return strings.TrimPrefix(p, "./")
}

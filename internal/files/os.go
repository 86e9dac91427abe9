package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// OSProvider implements Provider for the OS filesystem.
type OSProvider struct{}

// NewOSProvider creates a new OS filesystem provider.
func NewOSProvider() *OSProvider {
	return &OSProvider{}
}

// ReadFile implements Provider.ReadFile.
func (p *OSProvider) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(filepath.FromSlash(path))
}

// Glob implements Provider.Glob. Directories are skipped.
func (p *OSProvider) Glob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.FromSlash(pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	result := make([]string, 0, len(matches))
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", m, err)
		}
		if info.IsDir() {
			continue
		}
		result = append(result, filepath.ToSlash(m))
	}
	sort.Strings(result)
	return result, nil
}

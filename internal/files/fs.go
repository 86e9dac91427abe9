package files

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// FSProvider implements Provider on top of an fs.FS such as embed.FS.
// Paths are interpreted relative to the root of the wrapped filesystem.
type FSProvider struct {
	fsys fs.FS
}

// NewFSProvider wraps fsys.
func NewFSProvider(fsys fs.FS) *FSProvider {
	return &FSProvider{fsys: fsys}
}

// ReadFile implements Provider.ReadFile.
func (p *FSProvider) ReadFile(name string) ([]byte, error) {
	return fs.ReadFile(p.fsys, cleanFSPath(name))
}

// Glob implements Provider.Glob. Directories are skipped.
func (p *FSProvider) Glob(pattern string) ([]string, error) {
	matches, err := fs.Glob(p.fsys, cleanFSPath(pattern))
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	result := make([]string, 0, len(matches))
	for _, m := range matches {
		info, err := fs.Stat(p.fsys, m)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", m, err)
		}
		if !info.IsDir() {
			result = append(result, m)
		}
	}
	sort.Strings(result)
	return result, nil
}

// cleanFSPath converts a path to the unrooted form io/fs requires.
func cleanFSPath(p string) string {
	p = path.Clean(strings.ReplaceAll(p, "\\", "/"))
	return strings.TrimPrefix(p, "/")
}

package schema

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/vvka-141/metaqa/internal/files"
	"github.com/vvka-141/metaqa/pkg/metaqa"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Provider returns the schema describing a record kind.
type Provider interface {
	Schema(kind string) (*Schema, error)
}

// FileProvider loads "<dir>/<kind>.yaml" schemas through a files.Provider and
// caches them. Kinds it cannot find are delegated to the fallback provider.
// Safe for concurrent use by multiple goroutines.
type FileProvider struct {
	files    files.Provider
	dir      string
	fallback Provider

	mu    sync.Mutex
	cache map[string]*Schema
}

// NewFileProvider creates a provider reading schemas from dir.
// fallback may be nil.
func NewFileProvider(p files.Provider, dir string, fallback Provider) *FileProvider {
	return &FileProvider{
		files:    p,
		dir:      dir,
		fallback: fallback,
		cache:    make(map[string]*Schema),
	}
}

// Builtin returns a provider over the schemas embedded in the binary.
func Builtin() *FileProvider {
	return NewFileProvider(files.NewFSProvider(builtinFS), "builtin", nil)
}

// Schema implements Provider.
func (p *FileProvider) Schema(kind string) (*Schema, error) {
	kind = strings.ToLower(strings.TrimSpace(kind))

	p.mu.Lock()
	defer p.mu.Unlock()

	if s, ok := p.cache[kind]; ok {
		return s, nil
	}

	file := path.Join(p.dir, kind+".yaml")
	content, err := p.files.ReadFile(file)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read schema %s: %w", file, err)
		}
		if p.fallback != nil {
			return p.fallback.Schema(kind)
		}
		return nil, fmt.Errorf("no schema for kind %q in %s: %w", kind, p.dir, metaqa.ErrSchemaNotFound)
	}

	s, err := Parse(content, file)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(s.Kind, kind) {
		return nil, fmt.Errorf("%s declares kind %q, expected %q: %w", file, s.Kind, kind, metaqa.ErrInvalidSchema)
	}

	p.cache[kind] = s
	return s, nil
}

// Kinds lists the kinds available in dir, sorted, without the fallback's.
func (p *FileProvider) Kinds() ([]string, error) {
	matches, err := p.files.Glob(path.Join(p.dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	kinds := make([]string, 0, len(matches))
	for _, m := range matches {
		kinds = append(kinds, strings.TrimSuffix(path.Base(m), ".yaml"))
	}
	sort.Strings(kinds)
	return kinds, nil
}

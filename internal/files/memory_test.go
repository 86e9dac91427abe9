package files

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryProvider_ReadFile(t *testing.T) {
	m := NewMemoryProvider()
	m.AddFile("./data/study.json", `{"accession":"phs000001"}`)

	content, err := m.ReadFile("data/study.json")
	require.NoError(t, err)
	assert.Equal(t, `{"accession":"phs000001"}`, string(content))

	_, err = m.ReadFile("data/missing.json")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryProvider_GlobSorted(t *testing.T) {
	m := NewMemoryProvider()
	m.AddFile("files/b.json", "{}")
	m.AddFile("files/a.json", "{}")
	m.AddFile("files/notes.txt", "")
	m.AddFile("other/c.json", "{}")

	matches, err := m.Glob("files/*.json")
	require.NoError(t, err)
	assert.Equal(t, []string{"files/a.json", "files/b.json"}, matches)

	_, err = m.Glob("files/[")
	assert.Error(t, err)
}

func TestFSProvider_SkipsDirectories(t *testing.T) {
	fsys := fstest.MapFS{
		"builtin/study.yaml":    {Data: []byte("kind: study")},
		"builtin/datafile.yaml": {Data: []byte("kind: datafile")},
		"builtin/nested/x.yaml": {Data: []byte("kind: x")},
	}
	p := NewFSProvider(fsys)

	matches, err := p.Glob("builtin/*")
	require.NoError(t, err)
	assert.Equal(t, []string{"builtin/datafile.yaml", "builtin/study.yaml"}, matches)

	content, err := p.ReadFile("/builtin/study.yaml")
	require.NoError(t, err)
	assert.Equal(t, "kind: study", string(content))
}

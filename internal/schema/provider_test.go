package schema

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/metaqa/internal/files"
	"github.com/vvka-141/metaqa/pkg/metaqa"
)

func TestBuiltin_AllKindsLoad(t *testing.T) {
	p := Builtin()

	kinds, err := p.Kinds()
	require.NoError(t, err)
	assert.Equal(t, []string{"datafile", "study", "variable"}, kinds)

	for _, kind := range kinds {
		s, err := p.Schema(kind)
		require.NoError(t, err, kind)
		assert.Equal(t, kind, s.Kind)
		assert.NotEmpty(t, NewNavigator(s).Leaves())
	}
}

func TestBuiltin_UnknownKind(t *testing.T) {
	_, err := Builtin().Schema("instrument")
	assert.True(t, errors.Is(err, metaqa.ErrSchemaNotFound))
}

func TestFileProvider_OverridesAndFallsBack(t *testing.T) {
	mem := files.NewMemoryProvider()
	mem.AddFile("schemas/study.yaml", "kind: study\nfields:\n  - name: accession\n    tier: required\n")

	p := NewFileProvider(mem, "schemas", Builtin())

	study, err := p.Schema("Study")
	require.NoError(t, err)
	assert.Len(t, study.Fields, 1, "directory schema overrides the builtin one")

	again, err := p.Schema("study")
	require.NoError(t, err)
	assert.Same(t, study, again, "schemas are cached")

	variable, err := p.Schema("variable")
	require.NoError(t, err)
	assert.Equal(t, "variable", variable.Kind)
}

func TestFileProvider_KindMismatch(t *testing.T) {
	mem := files.NewMemoryProvider()
	mem.AddFile("schemas/study.yaml", "kind: datafile\nfields:\n  - name: a\n    tier: required\n")

	_, err := NewFileProvider(mem, "schemas", nil).Schema("study")
	assert.True(t, errors.Is(err, metaqa.ErrInvalidSchema))
}

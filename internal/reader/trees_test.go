package reader

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/metaqa/internal/files"
	"github.com/vvka-141/metaqa/internal/record"
	"github.com/vvka-141/metaqa/internal/schema"
	"github.com/vvka-141/metaqa/pkg/metaqa"
)

const studyJSON = `{
  "title": "Soil carbon",
  "accession": "X123",
  "license": null,
  "keywords": ["soil", "carbon"],
  "funder": {"identifier": "", "label": "NSF"},
  "contributors": [
    {"name": "Ada Lovelace", "role": {"literal": "PI"}},
    {"name": "Alan Turing"}
  ],
  "citation": {"accession": "P1", "title": "Parent"}
}`

func entryMap(r record.Record) map[string]record.Value {
	out := make(map[string]record.Value)
	for _, e := range r.Entries() {
		out[e.Pointer] = e.Value
	}
	return out
}

func TestTrees_JSONObject(t *testing.T) {
	mem := files.NewMemoryProvider()
	mem.AddFile("studies/s1.json", studyJSON)

	records, err := NewTrees(mem).Read("studies/s1.json")
	require.NoError(t, err)
	require.Len(t, records, 1)

	tree := records[0].(*record.Tree)
	assert.Equal(t, "studies/s1.json", tree.ID())
	assert.Equal(t, "title", tree.Entries()[0].Name, "key order is preserved")

	entries := entryMap(tree)
	assert.Equal(t, "X123", entries["/accession"].Text())
	assert.Equal(t, record.KindNull, entries["/license"].Kind())
	assert.Equal(t, "carbon", entries["/keywords/1"].Text())
	assert.Equal(t, record.KindObject, entries["/funder"].Kind())
	assert.Equal(t, "NSF", entries["/funder"].Text())
	assert.Equal(t, "Alan Turing", entries["/contributors/1/name"].Text())
	assert.Equal(t, "PI", entries["/contributors/0/role"].Text())
	assert.Equal(t, "Parent", entries["/citation/title"].Text())

	assert.Len(t, tree.Children("contributors"), 2)
}

func TestTrees_YAMLList(t *testing.T) {
	mem := files.NewMemoryProvider()
	mem.AddFile("vars.yaml", "- name: age\n  label: Age\n- name: sex\n  units: ~\n")

	records, err := NewTrees(mem).Read("vars.yaml")
	require.NoError(t, err)
	require.Len(t, records, 2, spew.Sdump(records))

	assert.Equal(t, "vars.yaml#/1", records[1].ID())
	e, ok := record.Find(records[1], "units")
	require.True(t, ok)
	assert.Equal(t, "/1/units", e.Pointer)
	assert.False(t, e.Value.Filled())
}

func TestTrees_Errors(t *testing.T) {
	mem := files.NewMemoryProvider()
	mem.AddFile("scalar.json", `"just text"`)
	mem.AddFile("mixed.json", `[{"a": 1}, 2]`)
	mem.AddFile("broken.json", `{"a": [1, 2}`)
	mem.AddFile("empty.yaml", "")

	for _, name := range []string{"scalar.json", "mixed.json", "broken.json"} {
		_, err := NewTrees(mem).Read(name)
		var se *SourceError
		assert.True(t, errors.As(err, &se), name)
		assert.True(t, errors.Is(err, metaqa.ErrUnsupportedFormat), name)
	}

	records, err := NewTrees(mem).Read("empty.yaml")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLookupBuilder(t *testing.T) {
	mem := files.NewMemoryProvider()
	mem.AddFile("studies/a.json", `{"accession": "X1", "title": "First"}`)
	mem.AddFile("studies/b.yaml", "- accession: X1\n  title: Shadowed\n- accession: X2\n  title: Second\n- title: No key\n")

	lookup, err := NewLookupBuilder(mem).Build("studies/*", "accession", record.Matcher{})
	require.NoError(t, err)

	require.Len(t, lookup, 2)
	v, _ := lookup["X1"].(*record.Tree).Get("title")
	assert.Equal(t, "First", v.Text(), "first record wins on a repeated key")
	assert.Equal(t, "studies/b.yaml#/1", lookup["X2"].ID())

	_, err = NewLookupBuilder(mem).Build("parents/*.json", "accession", record.Matcher{})
	assert.True(t, errors.Is(err, metaqa.ErrSourceNotFound))
}

func TestLookupBuilder_ResolvesHeadersThroughClassifier(t *testing.T) {
	study, err := schema.Builtin().Schema("study")
	require.NoError(t, err)
	mem := files.NewMemoryProvider()
	mem.AddFile("studies.csv", "Accession?,Title\nX1,Soil\n")

	lookup, err := NewLookupBuilder(mem).Build("studies.csv", "accession", record.NewMatcher(schema.NewClassifier(study)))
	require.NoError(t, err)
	require.Contains(t, lookup, "X1")
	assert.Equal(t, "studies.csv#1", lookup["X1"].ID())

	literal, err := NewLookupBuilder(mem).Build("studies.csv", "accession", record.Matcher{})
	require.NoError(t, err)
	assert.Empty(t, literal)
}

func TestAuto_ReadContentParsesGivenBytes(t *testing.T) {
	mem := files.NewMemoryProvider()
	mem.AddFile("vars.csv", "name\nstale\n")
	a, err := NewAuto(mem, "")
	require.NoError(t, err)

	records, err := a.ReadContent("vars.csv", []byte("name\nfresh\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	v, _ := records[0].(*record.Row).Get("name")
	assert.Equal(t, "fresh", v.Text())

	records, err = a.ReadContent("vars.json", []byte(`{"name": "age"}`))
	require.NoError(t, err)
	assert.Equal(t, "vars.json", records[0].ID())
}

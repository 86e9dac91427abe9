package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/metaqa/internal/files"
	"github.com/vvka-141/metaqa/pkg/metaqa"
)

func TestLoad_AllFields(t *testing.T) {
	mem := files.NewMemoryProvider()
	mem.AddFile("project/metaqa.yaml", `schemas: schemas
parallel: 2
output: markdown
fail_on: error
sources:
  - path: studies/*.json
    kind: study
    nested: [contributors]
  - path: files/*.csv
    kind: datafile
    format: rows
    identity: [file_name]
    parents: studies/*.json
    parent_key: study_accession
    parent_key_path: accession
    accuracy:
      - field: study_title
        parent: title
      - field: creator
        parent: contributors/name
        compare: name
`)

	cfg, err := Load(mem, "project")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "schemas", cfg.Schemas)
	assert.Equal(t, 2, cfg.Parallel)
	assert.Equal(t, OutputMarkdown, cfg.Output)
	assert.Equal(t, FailOnError, cfg.FailOn)
	require.Len(t, cfg.Sources, 2)
	assert.Equal(t, []string{"contributors"}, cfg.Sources[0].Nested)
	assert.Equal(t, "study_accession", cfg.Sources[1].ParentKey)
	assert.Equal(t, AccuracyPair{Field: "creator", Parent: "contributors/name", Compare: "name"}, cfg.Sources[1].Accuracy[1])
	require.NoError(t, cfg.Validate())
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(files.NewMemoryProvider(), "project")
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	mem := files.NewMemoryProvider()
	mem.AddFile("metaqa.yaml", "{{invalid")

	cfg, err := LoadFile(mem, "metaqa.yaml")
	assert.True(t, errors.Is(err, metaqa.ErrInvalidConfig))
	assert.Nil(t, cfg)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Sources: []SourceConfig{
		{Path: "studies/*.json", Kind: "study"},
		{Path: "files/*.json", Kind: "datafile", Parents: "studies/*.json"},
		{Path: "x/*.csv", Kind: "instrument"},
		{Path: "v/*.csv", Kind: "variable", Identity: []string{"Variable Name"}},
	}}

	cfg.ApplyDefaults()

	assert.Equal(t, metaqa.DefaultParallel, cfg.Parallel)
	assert.Equal(t, OutputText, cfg.Output)
	assert.Equal(t, FailOnNone, cfg.FailOn)

	study := cfg.Sources[0]
	assert.Equal(t, []string{"accession"}, study.Identity)
	assert.Equal(t, []string{"contributors", "publications"}, study.Nested)
	assert.Empty(t, study.Accuracy, "no parents, no accuracy pairs")

	file := cfg.Sources[1]
	assert.Equal(t, []string{"file_name", "version"}, file.Identity)
	assert.Equal(t, "citation/accession", file.ParentKey)
	assert.Equal(t, "study", file.ParentKind)
	assert.Equal(t, "accession", file.ParentKeyPath)
	require.Len(t, file.Accuracy, 3)
	assert.Equal(t, AccuracyPair{Field: "citation/creator", Parent: "contributors/name", Compare: "name"}, file.Accuracy[2])

	assert.Empty(t, cfg.Sources[2].Identity, "unknown kinds get no table defaults")
	assert.Equal(t, []string{"Variable Name"}, cfg.Sources[3].Identity, "explicit identity is kept")
	require.NoError(t, cfg.Validate())
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{EnvParallel: "8", EnvOutput: "JSON", EnvFailOn: "warning"}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := &Config{Parallel: 2, Output: OutputText}
	require.NoError(t, cfg.applyEnv(lookup))
	assert.Equal(t, 8, cfg.Parallel)
	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, FailOnWarning, cfg.FailOn)

	env[EnvParallel] = "many"
	err := cfg.applyEnv(lookup)
	assert.True(t, errors.Is(err, metaqa.ErrInvalidConfig))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "no sources",
			cfg:     Config{},
			wantErr: "at least one source is required",
		},
		{
			name:    "negative parallel",
			cfg:     Config{Parallel: -1, Sources: []SourceConfig{{Path: "a.csv", Kind: "study"}}},
			wantErr: "parallel must not be negative",
		},
		{
			name:    "unknown output",
			cfg:     Config{Output: "xlsx", Sources: []SourceConfig{{Path: "a.csv", Kind: "study"}}},
			wantErr: `output "xlsx"`,
		},
		{
			name:    "unknown fail_on",
			cfg:     Config{FailOn: "always", Sources: []SourceConfig{{Path: "a.csv", Kind: "study"}}},
			wantErr: `fail_on "always"`,
		},
		{
			name:    "source without path and kind",
			cfg:     Config{Sources: []SourceConfig{{}}},
			wantErr: "sources[0]: path is required",
		},
		{
			name:    "bad glob",
			cfg:     Config{Sources: []SourceConfig{{Path: "a[", Kind: "study"}}},
			wantErr: "not a valid glob",
		},
		{
			name:    "accuracy without parents",
			cfg:     Config{Sources: []SourceConfig{{Path: "a.csv", Kind: "datafile", Accuracy: []AccuracyPair{{Field: "a", Parent: "b"}}}}},
			wantErr: "accuracy pairs need parents",
		},
		{
			name: "unknown comparator",
			cfg: Config{Sources: []SourceConfig{{
				Path: "a.csv", Kind: "datafile", Parents: "p.csv", ParentKey: "k", ParentKeyPath: "k",
				Accuracy: []AccuracyPair{{Field: "a", Parent: "b", Compare: "fuzzy"}},
			}}},
			wantErr: `unknown comparator "fuzzy"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, metaqa.ErrInvalidConfig))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := Config{Output: "xlsx", Sources: []SourceConfig{{Kind: "study"}, {Path: "b.csv"}}}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output")
	assert.Contains(t, err.Error(), "sources[0]: path is required")
	assert.Contains(t, err.Error(), "sources[1]: kind is required")
}

func TestGateLevel(t *testing.T) {
	_, ok := (&Config{FailOn: FailOnNone}).GateLevel()
	assert.False(t, ok)

	lvl, ok := (&Config{FailOn: FailOnWarning}).GateLevel()
	require.True(t, ok)
	assert.Equal(t, metaqa.LevelWarning, lvl)
}

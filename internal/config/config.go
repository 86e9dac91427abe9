package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/metaqa/internal/accuracy"
	"github.com/vvka-141/metaqa/internal/files"
	"github.com/vvka-141/metaqa/internal/record"
	"github.com/vvka-141/metaqa/pkg/metaqa"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Output formats.
const (
	OutputText     = "text"
	OutputMarkdown = "markdown"
	OutputJSON     = "json"
	OutputCSV      = "csv"
)

// Outputs lists the supported output formats.
var Outputs = []string{OutputText, OutputMarkdown, OutputJSON, OutputCSV}

// Quality gate levels.
const (
	FailOnNone    = "none"
	FailOnError   = "error"
	FailOnWarning = "warning"
)

// Environment variables overlaid by ApplyEnv.
const (
	EnvParallel = "METAQA_PARALLEL"
	EnvOutput   = "METAQA_OUTPUT"
	EnvFailOn   = "METAQA_FAIL_ON"
)

// AccuracyPair configures one cross-entity field comparison.
type AccuracyPair struct {
	// Field is the claimed child path, Parent the canonical parent path.
	Field   string `yaml:"field"`
	Parent  string `yaml:"parent"`
	Compare string `yaml:"compare,omitempty"`
}

// SourceConfig describes one set of input files of a single kind.
type SourceConfig struct {
	Path     string   `yaml:"path"`
	Kind     string   `yaml:"kind"`
	Format   string   `yaml:"format,omitempty"`
	Identity []string `yaml:"identity,omitempty"`
	Nested   []string `yaml:"nested,omitempty"`

	// Parents is a glob of the parent files this source cites. When set,
	// ParentKind is the schema kind of those files, ParentKey the child path
	// holding the cited key and ParentKeyPath the parent path it is matched
	// against.
	Parents       string         `yaml:"parents,omitempty"`
	ParentKind    string         `yaml:"parent_kind,omitempty"`
	ParentKey     string         `yaml:"parent_key,omitempty"`
	ParentKeyPath string         `yaml:"parent_key_path,omitempty"`
	Accuracy      []AccuracyPair `yaml:"accuracy,omitempty"`
}

// Config is the project configuration read from metaqa.yaml.
type Config struct {
	Schemas  string         `yaml:"schemas,omitempty"`
	Parallel int            `yaml:"parallel,omitempty"`
	Output   string         `yaml:"output,omitempty"`
	FailOn   string         `yaml:"fail_on,omitempty"`
	Sources  []SourceConfig `yaml:"sources"`
}

// Load reads metaqa.yaml from dir.
func Load(p files.Provider, dir string) (*Config, error) {
	return LoadFile(p, path.Join(dir, metaqa.ConfigFileName))
}

// LoadFile reads a configuration file.
func LoadFile(p files.Provider, file string) (*Config, error) {
	data, err := p.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", file, ErrConfigNotFound)
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", file, metaqa.ErrInvalidConfig, err)
	}
	return &cfg, nil
}

// ApplyDefaults fills unset settings. Per-source identity fields, nested
// elements and cross-entity settings default to the static table of the
// source's kind.
func (c *Config) ApplyDefaults() {
	if c.Parallel == 0 {
		c.Parallel = metaqa.DefaultParallel
	}
	if c.Output == "" {
		c.Output = OutputText
	}
	if c.FailOn == "" {
		c.FailOn = FailOnNone
	}

	for i := range c.Sources {
		src := &c.Sources[i]
		table, ok := record.TableFor(src.Kind)
		if !ok {
			continue
		}
		if len(src.Identity) == 0 {
			for _, name := range table.Identity {
				if a, ok := table.Accessor(name); ok {
					src.Identity = append(src.Identity, a.Path)
				}
			}
		}
		if src.Nested == nil {
			src.Nested = append([]string(nil), table.Nested...)
		}
		if src.Parents == "" {
			continue
		}
		if src.ParentKind == "" {
			src.ParentKind = table.Parents
		}
		if src.ParentKey == "" {
			src.ParentKey = table.ParentKey
		}
		if src.ParentKeyPath == "" {
			src.ParentKeyPath = table.ParentKeyPath
		}
		if len(src.Accuracy) == 0 {
			for _, pair := range table.Pairs {
				src.Accuracy = append(src.Accuracy, AccuracyPair{Field: pair.Child, Parent: pair.Parent, Compare: pair.Compare})
			}
		}
	}
}

// ApplyEnv overlays METAQA_PARALLEL, METAQA_OUTPUT and METAQA_FAIL_ON from
// the process environment.
func (c *Config) ApplyEnv() error {
	return c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvParallel); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q is not a number: %w", EnvParallel, v, metaqa.ErrInvalidConfig)
		}
		c.Parallel = n
	}
	if v, ok := lookup(EnvOutput); ok && v != "" {
		c.Output = strings.ToLower(v)
	}
	if v, ok := lookup(EnvFailOn); ok && v != "" {
		c.FailOn = strings.ToLower(v)
	}
	return nil
}

// Validate checks that the configuration is usable.
// It returns a multi-error if multiple validation failures occur.
func (c *Config) Validate() error {
	var errs []error

	if c.Parallel < 0 {
		errs = append(errs, fmt.Errorf("parallel must not be negative, got %d: %w", c.Parallel, metaqa.ErrInvalidConfig))
	}
	if c.Output != "" && !slices.Contains(Outputs, c.Output) {
		errs = append(errs, fmt.Errorf("output %q must be one of %s: %w", c.Output, strings.Join(Outputs, ", "), metaqa.ErrInvalidConfig))
	}
	switch c.FailOn {
	case "", FailOnNone, FailOnError, FailOnWarning:
	default:
		errs = append(errs, fmt.Errorf("fail_on %q must be none, error or warning: %w", c.FailOn, metaqa.ErrInvalidConfig))
	}
	if len(c.Sources) == 0 {
		errs = append(errs, fmt.Errorf("at least one source is required: %w", metaqa.ErrInvalidConfig))
	}

	for i, src := range c.Sources {
		errs = append(errs, src.validate(i)...)
	}

	return errors.Join(errs...)
}

func (s SourceConfig) validate(i int) []error {
	var errs []error
	name := fmt.Sprintf("sources[%d]", i)

	if strings.TrimSpace(s.Path) == "" {
		errs = append(errs, fmt.Errorf("%s: path is required: %w", name, metaqa.ErrInvalidConfig))
	} else if _, err := path.Match(s.Path, ""); err != nil {
		errs = append(errs, fmt.Errorf("%s: path %q is not a valid glob: %w", name, s.Path, metaqa.ErrInvalidConfig))
	}
	if strings.TrimSpace(s.Kind) == "" {
		errs = append(errs, fmt.Errorf("%s: kind is required: %w", name, metaqa.ErrInvalidConfig))
	}
	switch s.Format {
	case "", "rows", "tree":
	default:
		errs = append(errs, fmt.Errorf("%s: format %q must be rows or tree: %w", name, s.Format, metaqa.ErrInvalidConfig))
	}

	if s.Parents == "" {
		if len(s.Accuracy) > 0 {
			errs = append(errs, fmt.Errorf("%s: accuracy pairs need parents: %w", name, metaqa.ErrInvalidConfig))
		}
		return errs
	}
	if s.ParentKey == "" || s.ParentKeyPath == "" {
		errs = append(errs, fmt.Errorf("%s: parents need parent_key and parent_key_path: %w", name, metaqa.ErrInvalidConfig))
	}
	for j, pair := range s.Accuracy {
		if pair.Field == "" || pair.Parent == "" {
			errs = append(errs, fmt.Errorf("%s.accuracy[%d]: field and parent are required: %w", name, j, metaqa.ErrInvalidConfig))
		}
		if _, err := accuracy.ComparatorByName(pair.Compare); err != nil {
			errs = append(errs, fmt.Errorf("%s.accuracy[%d]: %v: %w", name, j, err, metaqa.ErrInvalidConfig))
		}
	}
	return errs
}

// GateLevel returns the finding level that fails the run, if any.
func (c *Config) GateLevel() (metaqa.IssueLevel, bool) {
	switch c.FailOn {
	case FailOnError:
		return metaqa.LevelError, true
	case FailOnWarning:
		return metaqa.LevelWarning, true
	}
	return 0, false
}

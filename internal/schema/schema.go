package schema

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/metaqa/pkg/metaqa"
)

// Field is one node of a schema tree.
// A field with children is a container; a field without children is a leaf
// and must carry exactly one tier.
type Field struct {
	Name        string      `yaml:"name"`
	Tier        metaqa.Tier `yaml:"tier,omitempty"`
	Repeatable  bool        `yaml:"repeatable,omitempty"`
	Description string      `yaml:"description,omitempty"`
	Fields      []*Field    `yaml:"fields,omitempty"`
}

// IsContainer reports whether the field has children.
func (f *Field) IsContainer() bool {
	return len(f.Fields) > 0
}

// Schema is the abstract description of one record kind.
type Schema struct {
	Kind    string   `yaml:"kind"`
	Version string   `yaml:"version,omitempty"`
	Fields  []*Field `yaml:"fields"`
}

// Parse decodes and validates a YAML schema document.
// name is only used for error messages.
func Parse(content []byte, name string) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(content, &s); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", name, metaqa.ErrInvalidSchema, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &s, nil
}

// Validate checks the tree invariants: named fields, unique sibling names,
// and exactly one tier per leaf.
// It returns a multi-error if multiple validation failures occur.
func (s *Schema) Validate() error {
	var errs []error

	if strings.TrimSpace(s.Kind) == "" {
		errs = append(errs, fmt.Errorf("kind is required: %w", metaqa.ErrInvalidSchema))
	}
	if len(s.Fields) == 0 {
		errs = append(errs, fmt.Errorf("schema %q declares no fields: %w", s.Kind, metaqa.ErrInvalidSchema))
	}
	validateFields(s.Fields, "", &errs)

	return errors.Join(errs...)
}

func validateFields(fields []*Field, prefix string, errs *[]error) {
	seen := make(map[string]struct{}, len(fields))
	for i, f := range fields {
		if f == nil {
			*errs = append(*errs, fmt.Errorf("%sfields[%d] is empty: %w", prefix, i, metaqa.ErrInvalidSchema))
			continue
		}

		name := strings.TrimSpace(f.Name)
		switch {
		case name == "":
			*errs = append(*errs, fmt.Errorf("%sfields[%d] has no name: %w", prefix, i, metaqa.ErrInvalidSchema))
			continue
		case strings.Contains(name, "/"):
			*errs = append(*errs, fmt.Errorf("field %q: name must not contain '/': %w", prefix+name, metaqa.ErrInvalidSchema))
		}

		if _, dup := seen[name]; dup {
			*errs = append(*errs, fmt.Errorf("field %q declared twice: %w", prefix+name, metaqa.ErrInvalidSchema))
		}
		seen[name] = struct{}{}

		if f.IsContainer() {
			validateFields(f.Fields, prefix+name+"/", errs)
			continue
		}
		if !f.Tier.IsValid() {
			*errs = append(*errs, fmt.Errorf("leaf %q has no tier: %w", prefix+name, metaqa.ErrInvalidSchema))
		}
	}
}

package reader

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/metaqa/internal/files"
	"github.com/vvka-141/metaqa/internal/record"
	"github.com/vvka-141/metaqa/pkg/metaqa"
)

// Trees reads JSON and YAML documents. yaml.v3 parses both and keeps
// mapping key order through yaml.Node.
type Trees struct {
	files files.Provider
}

// NewTrees creates a tree reader over p.
func NewTrees(p files.Provider) *Trees {
	return &Trees{files: p}
}

// Read implements evaluate.RecordReader.
func (r *Trees) Read(filePath string) ([]record.Record, error) {
	content, err := r.files.ReadFile(filePath)
	if err != nil {
		return nil, readError(filePath, err)
	}
	return r.ReadContent(filePath, content)
}

// ReadContent parses content already read from filePath.
func (r *Trees) ReadContent(filePath string, content []byte) ([]record.Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, &SourceError{Path: filePath, Message: err.Error(), Err: metaqa.ErrUnsupportedFormat}
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	root := resolveAlias(doc.Content[0])
	switch root.Kind {
	case yaml.MappingNode:
		t := record.NewTree(filePath)
		fill(t, root)
		return []record.Record{t}, nil
	case yaml.SequenceNode:
		out := make([]record.Record, 0, len(root.Content))
		for i, item := range root.Content {
			item = resolveAlias(item)
			if item.Kind != yaml.MappingNode {
				return nil, &SourceError{
					Path:    filePath,
					Line:    item.Line,
					Column:  item.Column,
					Message: "list item " + strconv.Itoa(i) + " is not an object",
					Err:     metaqa.ErrUnsupportedFormat,
				}
			}
			t := record.NewTreeAt(filePath, "/"+strconv.Itoa(i))
			fill(t, item)
			out = append(out, t)
		}
		return out, nil
	default:
		return nil, &SourceError{
			Path:    filePath,
			Line:    root.Line,
			Column:  root.Column,
			Message: "document is neither an object nor a list of objects",
			Err:     metaqa.ErrUnsupportedFormat,
		}
	}
}

func fill(t *record.Tree, m *yaml.Node) {
	for i := 0; i+1 < len(m.Content); i += 2 {
		key := m.Content[i].Value
		val := resolveAlias(m.Content[i+1])

		switch val.Kind {
		case yaml.ScalarNode:
			t.Set(key, scalar(val))
		case yaml.MappingNode:
			if o, ok := objectValue(val); ok {
				t.Set(key, record.ObjectValue(o))
				continue
			}
			fill(t.Group(key), val)
		case yaml.SequenceNode:
			for _, item := range val.Content {
				item = resolveAlias(item)
				switch item.Kind {
				case yaml.MappingNode:
					if o, ok := objectValue(item); ok {
						t.Append(key, record.ObjectValue(o))
						continue
					}
					fill(t.AddChild(key), item)
				case yaml.ScalarNode:
					t.Append(key, scalar(item))
				}
			}
		}
	}
}

func scalar(n *yaml.Node) record.Value {
	if n.Tag == "!!null" {
		return record.Null()
	}
	return record.Scalar(n.Value)
}

// objectValue reads a mapping made only of identifier, label and literal
// scalars as an object value.
func objectValue(m *yaml.Node) (record.Object, bool) {
	var o record.Object
	if len(m.Content) == 0 {
		return o, false
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		val := resolveAlias(m.Content[i+1])
		if val.Kind != yaml.ScalarNode {
			return o, false
		}
		text := val.Value
		if val.Tag == "!!null" {
			text = ""
		}
		switch strings.ToLower(m.Content[i].Value) {
		case "identifier":
			o.Identifier = text
		case "label":
			o.Label = text
		case "literal":
			o.Literal = text
		default:
			return o, false
		}
	}
	return o, true
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

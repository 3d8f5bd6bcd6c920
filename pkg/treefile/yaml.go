package treefile

import (
	"bytes"
	"io"

	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"

	"github.com/walteh/gotsg/pkg/tsg"
)

type yamlFile struct {
	Trees []yamlTree `yaml:"trees"`
}

// Elements stay raw nodes so null items keep their position and line.
type yamlTree struct {
	Name     string      `yaml:"name"`
	Labels   []string    `yaml:"labels,omitempty"`
	Elements []yaml.Node `yaml:"elements"`
}

// elementsFromYAML turns each node into a token (scalar) or a group (mapping
// with labels and elements).
func elementsFromYAML(nodes []yaml.Node) ([]tsg.Element, error) {
	out := make([]tsg.Element, 0, len(nodes))
	for i := range nodes {
		e, err := elementFromYAML(&nodes[i])
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func elementFromYAML(value *yaml.Node) (tsg.Element, error) {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.ShortTag() == "!!null" {
			return nil, errors.Errorf("line %d: null: %w", value.Line, ErrElement)
		}
		return tsg.Token(value.Value), nil
	case yaml.MappingNode:
		var (
			labels   []string
			elements []yaml.Node
			found    bool
		)
		for i := 0; i+1 < len(value.Content); i += 2 {
			key, val := value.Content[i], value.Content[i+1]
			switch key.Value {
			case "labels":
				if err := val.Decode(&labels); err != nil {
					return nil, errors.Errorf("line %d: labels: %w", val.Line, err)
				}
			case "elements":
				if val.Kind != yaml.SequenceNode {
					return nil, errors.Errorf("line %d: elements must be a list: %w", val.Line, ErrElement)
				}
				if err := val.Decode(&elements); err != nil {
					return nil, errors.Errorf("line %d: elements: %w", val.Line, err)
				}
				found = true
			default:
				return nil, errors.Errorf("line %d: unknown field %q: %w", key.Line, key.Value, ErrElement)
			}
		}
		if !found {
			return nil, errors.Errorf("line %d: group without elements: %w", value.Line, ErrElement)
		}

		elts, err := elementsFromYAML(elements)
		if err != nil {
			return nil, err
		}
		return tsg.Labeled(labels, elts...), nil
	default:
		return nil, errors.Errorf("line %d: %w", value.Line, ErrElement)
	}
}

func decodeYAML(data []byte) ([]*Tree, error) {
	var cfg yamlFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	trees := make([]*Tree, 0, len(cfg.Trees))
	for i, t := range cfg.Trees {
		if t.Name == "" {
			return nil, errors.Errorf("trees[%d]: %w", i, ErrTreeName)
		}
		elts, err := elementsFromYAML(t.Elements)
		if err != nil {
			return nil, errors.Errorf("tree %q: %w", t.Name, err)
		}
		trees = append(trees, &Tree{Name: t.Name, Root: tsg.Labeled(t.Labels, elts...)})
	}

	return trees, nil
}

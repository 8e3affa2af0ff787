// Package nodetree decodes htmlnode trees from YAML documents.
//
// A node is a mapping with the optional keys tag, value, props and children:
//
//	tag: div
//	props:
//	  class: container
//	children:
//	  - tag: b
//	    value: bold
//	  - value: " plain text"
//
// A mapping with a value key becomes a Leaf, one with a children key becomes a
// Parent. Props keep the order in which they appear in the document.
package nodetree

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docnode/internal/foundation"
	"git.home.luguber.info/inful/docnode/internal/foundation/errors"
	"git.home.luguber.info/inful/docnode/internal/htmlnode"
)

// Load reads and decodes the tree stored at path.
func Load(path string) (htmlnode.Node, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read node tree").
			WithContext("path", path).
			Build()
	}
	return Decode(data)
}

// Decode parses a YAML document into a node tree.
func Decode(data []byte) (htmlnode.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapError(err, errors.CategoryParse, "invalid node tree YAML").Build()
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.ParseError("empty node tree").Build()
	}
	return decodeNode(doc.Content[0], "$")
}

func decodeNode(n *yaml.Node, path string) (htmlnode.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, parseError("node must be a mapping", n, path)
	}

	var (
		tag         = foundation.None[string]()
		value       = foundation.None[string]()
		props       htmlnode.Props
		children    []htmlnode.Node
		hasValue    bool
		hasChildren bool
	)

	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		switch key.Value {
		case "tag":
			s, err := optionalScalar(val, path+".tag")
			if err != nil {
				return nil, err
			}
			tag = s
		case "value":
			s, err := optionalScalar(val, path+".value")
			if err != nil {
				return nil, err
			}
			value, hasValue = s, true
		case "props":
			p, err := decodeProps(val, path+".props")
			if err != nil {
				return nil, err
			}
			props = p
		case "children":
			hasChildren = true
			if val.Kind != yaml.SequenceNode {
				// Left nil: NewParent rejects it as not being a sequence.
				continue
			}
			children = make([]htmlnode.Node, 0, len(val.Content))
			for j, c := range val.Content {
				child, err := decodeNode(c, fmt.Sprintf("%s.children[%d]", path, j))
				if err != nil {
					return nil, err
				}
				children = append(children, child)
			}
		default:
			return nil, parseError(fmt.Sprintf("unknown field %q", key.Value), key, path)
		}
	}

	switch {
	case hasValue && hasChildren:
		return nil, errors.ValidationError("node cannot have both a value and children").
			WithContext("path", path).
			WithContext("line", n.Line).
			Build()
	case hasChildren:
		p, err := htmlnode.NewParent(tag.UnwrapOr(""), children, props)
		if err != nil {
			return nil, fmt.Errorf("%s (line %d): %w", path, n.Line, err)
		}
		return p, nil
	default:
		l, err := htmlnode.NewLeaf(tag, value, props)
		if err != nil {
			return nil, fmt.Errorf("%s (line %d): %w", path, n.Line, err)
		}
		return l, nil
	}
}

func optionalScalar(n *yaml.Node, path string) (foundation.Option[string], error) {
	if n.ShortTag() == "!!null" {
		return foundation.None[string](), nil
	}
	if n.Kind != yaml.ScalarNode {
		return foundation.None[string](), parseError("expected a scalar", n, path)
	}
	return foundation.Some(n.Value), nil
}

func decodeProps(n *yaml.Node, path string) (htmlnode.Props, error) {
	if n.ShortTag() == "!!null" {
		return htmlnode.Props{}, nil
	}
	if n.Kind != yaml.MappingNode {
		return htmlnode.Props{}, parseError("props must be a mapping", n, path)
	}
	attrs := make([]htmlnode.Attr, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return htmlnode.Props{}, parseError("prop values must be scalars", val, path+"."+key.Value)
		}
		attrs = append(attrs, htmlnode.Attr{Key: key.Value, Value: val.Value})
	}
	return htmlnode.PropsOf(attrs...), nil
}

func parseError(msg string, n *yaml.Node, path string) error {
	return errors.ParseError(msg).
		WithContext("path", path).
		WithContext("line", n.Line).
		Build()
}

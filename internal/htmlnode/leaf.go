package htmlnode

import (
	"git.home.luguber.info/inful/docnode/internal/foundation"
	"git.home.luguber.info/inful/docnode/internal/foundation/errors"
)

// Leaf is a childless node holding literal text, optionally wrapped in a tag.
type Leaf struct {
	Base
}

// NewLeaf creates a Leaf. The value must be present; an empty string is allowed.
func NewLeaf(tag, value foundation.Option[string], props Props) (*Leaf, error) {
	if value.IsNone() {
		return nil, errors.ValidationError(msgLeafValue).
			WithContext("tag", tag.String()).
			Build()
	}
	return &Leaf{Base: Base{tag: tag, value: value, props: props}}, nil
}

// Text creates an untagged Leaf that renders as value itself.
func Text(value string) *Leaf {
	return &Leaf{Base: Base{value: foundation.Some(value)}}
}

// Element creates a Leaf rendering as <tag props>value</tag>.
func Element(tag, value string, props Props) *Leaf {
	return &Leaf{Base: Base{tag: foundation.Some(tag), value: foundation.Some(value), props: props}}
}

// Render returns the value unchanged when the leaf has no tag, and
// <tag attrs>value</tag> otherwise.
func (l *Leaf) Render() (string, error) {
	if l == nil {
		return "", errors.ValidationError(msgLeafValue).Build()
	}
	value, ok := l.value.Get()
	if !ok {
		return "", errors.ValidationError(msgLeafValue).Build()
	}
	tag, ok := l.tag.Get()
	if !ok {
		return value, nil
	}
	return wrap(tag, l.props, value), nil
}

func (l *Leaf) String() string {
	if l == nil {
		return "None"
	}
	return l.describe("LeafNode")
}

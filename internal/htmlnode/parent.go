package htmlnode

import (
	"slices"
	"strings"

	"git.home.luguber.info/inful/docnode/internal/foundation"
	"git.home.luguber.info/inful/docnode/internal/foundation/errors"
)

// Parent is a node owning an ordered list of children and no text of its own.
type Parent struct {
	Base
}

// NewParent creates a Parent. tag must be non-empty and children non-nil;
// an empty children slice is valid. The slice is copied, so later changes to
// it by the caller do not affect the node.
func NewParent(tag string, children []Node, props Props) (*Parent, error) {
	if tag == "" {
		return nil, errors.ValidationError(msgParentTag).Build()
	}
	if children == nil {
		return nil, errors.ValidationError(msgParentChildren).
			WithContext("tag", tag).
			Build()
	}
	for i, c := range children {
		if isNil(c) {
			return nil, errors.ValidationError(msgNilChild).
				WithContext("tag", tag).
				WithContext("index", i).
				Build()
		}
	}
	return &Parent{Base: Base{
		tag:      foundation.Some(tag),
		children: slices.Clone(children),
		props:    props,
	}}, nil
}

// Render renders every child in order, concatenates the results without
// separators and wraps them in the parent's tag. The first child error is
// returned as is.
func (p *Parent) Render() (string, error) {
	if p == nil {
		return "", errors.ValidationError(msgParentTag).Build()
	}
	tag, ok := p.tag.Get()
	if !ok || tag == "" {
		return "", errors.ValidationError(msgParentTag).Build()
	}

	var inner strings.Builder
	for _, child := range p.children {
		html, err := child.Render()
		if err != nil {
			return "", err
		}
		inner.WriteString(html)
	}
	return wrap(tag, p.props, inner.String()), nil
}

func (p *Parent) String() string {
	if p == nil {
		return "None"
	}
	return p.describe("ParentNode")
}

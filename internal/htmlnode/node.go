// Package htmlnode is the document node model: a closed set of node variants
// that render themselves to HTML text.
//
// A tree is built bottom-up from Leaf and Parent values. Constructors validate
// the structural invariants and copy their inputs, so a node never changes
// after construction and a tree can be rendered any number of times, from any
// number of goroutines. Values and attributes are emitted verbatim; no HTML
// escaping is performed.
package htmlnode

import (
	"slices"
	"strings"

	"git.home.luguber.info/inful/docnode/internal/foundation"
	"git.home.luguber.info/inful/docnode/internal/foundation/errors"
)

const (
	msgLeafValue      = "Leaf must have a value"
	msgParentTag      = "Parent must have a tag"
	msgParentChildren = "Parent must have children as a sequence"
	msgNilChild       = "Parent children must not be nil"
	msgBaseRender     = "render must be implemented by a concrete node"
)

// Errors reported by this package. They match with errors.Is against any
// error built from the same category and message, whatever its context.
var (
	ErrLeafValue      = errors.ValidationError(msgLeafValue).Build()
	ErrParentTag      = errors.ValidationError(msgParentTag).Build()
	ErrParentChildren = errors.ValidationError(msgParentChildren).Build()
	ErrNilChild       = errors.ValidationError(msgNilChild).Build()
	ErrBaseRender     = errors.UnsupportedOperation(msgBaseRender).Build()
)

// Node is a unit of the document tree. The set of implementations is closed:
// *Base, *Leaf and *Parent.
type Node interface {
	// Render returns the node as HTML text.
	Render() (string, error)
	Tag() foundation.Option[string]
	Value() foundation.Option[string]
	Children() []Node
	Props() Props
	String() string

	node()
}

// Base holds the fields shared by every node. It is not renderable itself;
// Render always fails with an unsupported-operation error.
type Base struct {
	tag      foundation.Option[string]
	value    foundation.Option[string]
	children []Node
	props    Props
}

// NewBase creates a bare node. A nil children slice is treated as empty.
func NewBase(tag, value foundation.Option[string], children []Node, props Props) *Base {
	return &Base{
		tag:      tag,
		value:    value,
		children: slices.Clone(children),
		props:    props,
	}
}

func (*Base) node() {}

// Render fails: only Leaf and Parent know how to render.
func (b *Base) Render() (string, error) {
	return "", errors.UnsupportedOperation(msgBaseRender).Build()
}

// Tag returns the HTML element name, if any.
func (b *Base) Tag() foundation.Option[string] { return b.tag }

// Value returns the text content, if any.
func (b *Base) Value() foundation.Option[string] { return b.value }

// Children returns a copy of the child list; never nil.
func (b *Base) Children() []Node {
	if len(b.children) == 0 {
		return []Node{}
	}
	return slices.Clone(b.children)
}

// Props returns the node's attributes.
func (b *Base) Props() Props { return b.props }

// PropsToHTML serializes the node's attributes; see Props.ToHTML.
func (b *Base) PropsToHTML() string { return b.props.ToHTML() }

func (b *Base) String() string {
	if b == nil {
		return "None"
	}
	return b.describe("HTMLNode")
}

func (b *Base) describe(kind string) string {
	children := make([]string, 0, len(b.children))
	for _, c := range b.children {
		if isNil(c) {
			children = append(children, "None")
			continue
		}
		children = append(children, c.String())
	}
	var s strings.Builder
	s.WriteString(kind)
	s.WriteString("(tag=")
	s.WriteString(b.tag.String())
	s.WriteString(", value=")
	s.WriteString(b.value.String())
	s.WriteString(", children=[")
	s.WriteString(strings.Join(children, ", "))
	s.WriteString("], props=")
	s.WriteString(b.props.String())
	s.WriteString(")")
	return s.String()
}

// isNil reports whether n is a nil interface or a nil pointer to a variant.
func isNil(n Node) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Leaf:
		return v == nil
	case *Parent:
		return v == nil
	case *Base:
		return v == nil
	}
	return false
}

func wrap(tag string, props Props, inner string) string {
	attrs := props.ToHTML()
	var s strings.Builder
	s.Grow(len(tag)*2 + len(attrs) + len(inner) + 5)
	s.WriteByte('<')
	s.WriteString(tag)
	s.WriteString(attrs)
	s.WriteByte('>')
	s.WriteString(inner)
	s.WriteString("</")
	s.WriteString(tag)
	s.WriteByte('>')
	return s.String()
}

package htmlnode

import (
	"slices"
	"strings"
)

// Attr is a single HTML attribute.
type Attr struct {
	Key   string
	Value string
}

// Props is an ordered set of HTML attributes with unique keys.
// The zero value is an empty set. Props is never modified in place.
type Props struct {
	attrs []Attr
}

// PropsOf builds Props from attrs in order. A repeated key keeps the position
// of its first occurrence and the value of its last.
func PropsOf(attrs ...Attr) Props {
	var p Props
	for _, a := range attrs {
		p = p.with(a.Key, a.Value)
	}
	return p
}

// Len returns the number of attributes.
func (p Props) Len() int { return len(p.attrs) }

// Get returns the value for key.
func (p Props) Get(key string) (string, bool) {
	if i := p.index(key); i >= 0 {
		return p.attrs[i].Value, true
	}
	return "", false
}

// Attrs returns a copy of the attributes in insertion order.
func (p Props) Attrs() []Attr {
	return slices.Clone(p.attrs)
}

// With returns a copy of p with key set to value. An existing key keeps its position.
func (p Props) With(key, value string) Props {
	return p.with(key, value)
}

// Merge returns a copy of p with every attribute of other applied via With.
func (p Props) Merge(other Props) Props {
	out := p
	for _, a := range other.attrs {
		out = out.with(a.Key, a.Value)
	}
	return out
}

func (p Props) with(key, value string) Props {
	attrs := slices.Clone(p.attrs)
	if i := p.index(key); i >= 0 {
		attrs[i].Value = value
	} else {
		attrs = append(attrs, Attr{Key: key, Value: value})
	}
	return Props{attrs: attrs}
}

func (p Props) index(key string) int {
	return slices.IndexFunc(p.attrs, func(a Attr) bool { return a.Key == key })
}

// ToHTML serializes the attributes for an opening tag: empty for no
// attributes, otherwise a leading space followed by key="value" pairs joined
// by single spaces. Keys and values are written verbatim, without escaping.
func (p Props) ToHTML() string {
	if len(p.attrs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, a := range p.attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(a.Value)
		b.WriteByte('"')
	}
	return b.String()
}

// String is a debug representation, e.g. {href="https://x", target="_blank"}.
func (p Props) String() string {
	parts := make([]string, 0, len(p.attrs))
	for _, a := range p.attrs {
		parts = append(parts, a.Key+`="`+a.Value+`"`)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

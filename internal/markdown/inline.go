package markdown

import (
	"sort"

	"git.home.luguber.info/inful/docnode/internal/htmlnode"
)

// SegmentKind identifies what a Segment of inline text holds.
type SegmentKind string

const (
	SegmentText  SegmentKind = "text"
	SegmentLink  SegmentKind = "link"
	SegmentImage SegmentKind = "image"
)

// Segment is a run of inline text. Text segments carry the raw text in Text;
// link and image segments carry the parsed construct.
type Segment struct {
	Kind SegmentKind
	Text string
	Construct
}

// Located is a construct together with its byte range in the scanned text.
type Located struct {
	Kind       SegmentKind
	Start, End int
	Construct
}

// FindConstructs returns every image and every link in text ordered by start
// offset. Unlike SplitInline it keeps constructs that overlap an earlier one.
func FindConstructs(text string) []Located {
	spans := append(imageSpans(text), linkSpans(text)...)
	sort.SliceStable(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	out := make([]Located, 0, len(spans))
	for _, s := range spans {
		kind := SegmentLink
		if s.kind == spanImage {
			kind = SegmentImage
		}
		out = append(out, Located{Kind: kind, Start: s.start, End: s.end, Construct: s.Construct})
	}
	return out
}

// SplitInline splits text into plain text, link and image segments in order
// of appearance. When an image and a link overlap, the one starting first wins.
func SplitInline(text string) []Segment {
	found := FindConstructs(text)

	segments := make([]Segment, 0, len(found)*2+1)
	pos := 0
	for _, c := range found {
		if c.Start < pos {
			continue
		}
		if c.Start > pos {
			segments = append(segments, Segment{Kind: SegmentText, Text: text[pos:c.Start]})
		}
		segments = append(segments, Segment{Kind: c.Kind, Text: text[c.Start:c.End], Construct: c.Construct})
		pos = c.End
	}
	if pos < len(text) {
		segments = append(segments, Segment{Kind: SegmentText, Text: text[pos:]})
	}
	return segments
}

// InlineOptions adds attributes to generated link and image elements. They are
// applied after the built-in href, src and alt attributes and may override them.
type InlineOptions struct {
	LinkProps  htmlnode.Props
	ImageProps htmlnode.Props
}

// InlineNodes converts text into leaf nodes: raw text for plain segments,
// <a href="url">label</a> for links and an empty <img src="url" alt="label">
// element for images.
func InlineNodes(text string, opts InlineOptions) []htmlnode.Node {
	segments := SplitInline(text)
	nodes := make([]htmlnode.Node, 0, len(segments))
	for _, seg := range segments {
		switch seg.Kind {
		case SegmentLink:
			props := htmlnode.PropsOf(htmlnode.Attr{Key: "href", Value: seg.URL}).Merge(opts.LinkProps)
			nodes = append(nodes, htmlnode.Element("a", seg.Label, props))
		case SegmentImage:
			props := htmlnode.PropsOf(
				htmlnode.Attr{Key: "src", Value: seg.URL},
				htmlnode.Attr{Key: "alt", Value: seg.Label},
			).Merge(opts.ImageProps)
			nodes = append(nodes, htmlnode.Element("img", "", props))
		default:
			nodes = append(nodes, htmlnode.Text(seg.Text))
		}
	}
	return nodes
}

// InlineParent wraps the inline nodes of text in a Parent with the given tag.
func InlineParent(tag, text string, opts InlineOptions) (*htmlnode.Parent, error) {
	return htmlnode.NewParent(tag, InlineNodes(text, opts), htmlnode.Props{})
}

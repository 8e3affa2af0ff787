// Package markdown extracts inline constructs (images and links) from raw
// markdown text and turns inline text into htmlnode leaves.
//
// ExtractMarkdownImages and ExtractMarkdownLinks are plain pattern scans and
// do not understand code spans, escapes or nesting. ExtractLinks parses the
// body as CommonMark with goldmark instead and is meant for comparison and
// diagnostics.
package markdown

import (
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

type LinkKind string

const (
	LinkKindInline              LinkKind = "inline"
	LinkKindImage               LinkKind = "image"
	LinkKindAuto                LinkKind = "auto"
	LinkKindReferenceDefinition LinkKind = "reference_definition"
)

// Link is a link-like construct reported by the CommonMark parser.
type Link struct {
	Kind        LinkKind `json:"kind"`
	Label       string   `json:"label"`
	Destination string   `json:"destination"`
}

// ExtractLinks parses body as CommonMark and returns its links, images and
// autolinks in document order, followed by reference definitions sorted by label.
func ExtractLinks(body []byte) ([]Link, error) {
	md := goldmark.New()
	ctx := parser.NewContext()
	root := md.Parser().Parse(text.NewReader(body), parser.WithContext(ctx))

	links := make([]Link, 0)
	err := gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *gmast.AutoLink:
			url := string(node.URL(body))
			links = append(links, Link{Kind: LinkKindAuto, Label: url, Destination: url})
		case *gmast.Image:
			links = append(links, Link{Kind: LinkKindImage, Label: plainText(node, body), Destination: string(node.Destination)})
		case *gmast.Link:
			// Reference-style links arrive here already resolved.
			links = append(links, Link{Kind: LinkKindInline, Label: plainText(node, body), Destination: string(node.Destination)})
		}
		return gmast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	// Reference definitions live in the parse context, not in the AST.
	refs := ctx.References()
	sort.Slice(refs, func(i, j int) bool {
		return string(refs[i].Label()) < string(refs[j].Label())
	})
	for _, ref := range refs {
		links = append(links, Link{
			Kind:        LinkKindReferenceDefinition,
			Label:       string(ref.Label()),
			Destination: string(ref.Destination()),
		})
	}

	return links, nil
}

func plainText(n gmast.Node, source []byte) string {
	var b strings.Builder
	_ = gmast.Walk(n, func(c gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *gmast.Text:
			b.Write(t.Segment.Value(source))
		case *gmast.String:
			b.Write(t.Value)
		}
		return gmast.WalkContinue, nil
	})
	return b.String()
}

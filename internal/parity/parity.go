// Package parity cross-checks the pattern-based extractor against a
// CommonMark implementation.
//
// The text is rendered to HTML with goldmark, the HTML is parsed with
// golang.org/x/net/html, and every <a href> and <img src> is compared with
// the constructs found by markdown.ExtractMarkdownLinks and
// markdown.ExtractMarkdownImages. Differences are expected for inputs the
// pattern grammar deliberately ignores (nested brackets, code spans, escapes).
package parity

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/yuin/goldmark"
	"golang.org/x/net/html"

	"git.home.luguber.info/inful/docnode/internal/foundation/errors"
	"git.home.luguber.info/inful/docnode/internal/markdown"
)

// Item is one construct seen by either side.
type Item struct {
	Kind markdown.SegmentKind `json:"kind"`
	markdown.Construct
}

// Report holds the outcome of a comparison. Items keep document order.
type Report struct {
	Matched        []Item `json:"matched"`
	OnlyPattern    []Item `json:"only_pattern"`
	OnlyCommonMark []Item `json:"only_commonmark"`
}

// Consistent reports whether both sides found exactly the same constructs.
func (r *Report) Consistent() bool {
	return len(r.OnlyPattern) == 0 && len(r.OnlyCommonMark) == 0
}

// Compare runs both extractors over text and pairs up their results.
func Compare(text string) (*Report, error) {
	pattern := patternItems(text)

	commonmark, err := commonMarkItems(text)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Matched:        []Item{},
		OnlyPattern:    []Item{},
		OnlyCommonMark: []Item{},
	}
	used := make([]bool, len(commonmark))
	for _, p := range pattern {
		found := false
		for i, c := range commonmark {
			if !used[i] && c == p {
				used[i], found = true, true
				break
			}
		}
		if found {
			report.Matched = append(report.Matched, p)
		} else {
			report.OnlyPattern = append(report.OnlyPattern, p)
		}
	}
	for i, c := range commonmark {
		if !used[i] {
			report.OnlyCommonMark = append(report.OnlyCommonMark, c)
		}
	}
	return report, nil
}

func patternItems(text string) []Item {
	found := markdown.FindConstructs(text)
	items := make([]Item, 0, len(found))
	for _, c := range found {
		items = append(items, Item{Kind: c.Kind, Construct: c.Construct})
	}
	return items
}

func commonMarkItems(text string) ([]Item, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(text), &buf); err != nil {
		return nil, errors.WrapError(err, errors.CategoryParse, "failed to render markdown").Build()
	}

	doc, err := html.Parse(&buf)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryParse, "failed to parse rendered HTML").Build()
	}

	var items []Item
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "a":
				items = append(items, Item{
					Kind:      markdown.SegmentLink,
					Construct: markdown.Construct{Label: textContent(n), URL: unescapeURL(attr(n, "href"))},
				})
			case "img":
				items = append(items, Item{
					Kind:      markdown.SegmentImage,
					Construct: markdown.Construct{Label: attr(n, "alt"), URL: unescapeURL(attr(n, "src"))},
				})
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return items, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return b.String()
}

// goldmark percent-encodes destinations; compare them decoded.
func unescapeURL(s string) string {
	if u, err := url.PathUnescape(s); err == nil {
		return u
	}
	return s
}

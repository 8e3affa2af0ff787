package markdown

import "regexp"

// Construct is one markdown image or link found in raw text.
type Construct struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// The label may not contain brackets and the URL may not contain parentheses,
// so nested or unbalanced constructs never match.
var (
	imagePattern = regexp.MustCompile(`!\[([^\[\]]*)\]\(([^\(\)]*)\)`)
	linkPattern  = regexp.MustCompile(`\[([^\[\]]*)\]\(([^\(\)]*)\)`)
)

type spanKind int

const (
	spanLink spanKind = iota
	spanImage
)

// span is a matched construct with byte offsets into the scanned text.
type span struct {
	kind       spanKind
	start, end int
	Construct
}

// ExtractMarkdownImages returns every ![label](url) in text, left to right.
func ExtractMarkdownImages(text string) []Construct {
	return constructs(imageSpans(text))
}

// ExtractMarkdownLinks returns every [label](url) in text, left to right,
// skipping images. Only the single byte before the opening bracket is
// checked for '!'.
func ExtractMarkdownLinks(text string) []Construct {
	return constructs(linkSpans(text))
}

func imageSpans(text string) []span {
	matches := imagePattern.FindAllStringSubmatchIndex(text, -1)
	out := make([]span, 0, len(matches))
	for _, m := range matches {
		out = append(out, newSpan(spanImage, text, 0, m))
	}
	return out
}

func linkSpans(text string) []span {
	out := make([]span, 0)
	for pos := 0; pos < len(text); {
		m := linkPattern.FindStringSubmatchIndex(text[pos:])
		if m == nil {
			break
		}
		start := pos + m[0]
		if start > 0 && text[start-1] == '!' {
			// Resume right after the rejected bracket so a construct starting
			// inside the image is still found.
			pos = start + 1
			continue
		}
		s := newSpan(spanLink, text, pos, m)
		out = append(out, s)
		pos = s.end
	}
	return out
}

func newSpan(kind spanKind, text string, offset int, m []int) span {
	return span{
		kind:  kind,
		start: offset + m[0],
		end:   offset + m[1],
		Construct: Construct{
			Label: text[offset+m[2] : offset+m[3]],
			URL:   text[offset+m[4] : offset+m[5]],
		},
	}
}

func constructs(spans []span) []Construct {
	out := make([]Construct, 0, len(spans))
	for _, s := range spans {
		out = append(out, s.Construct)
	}
	return out
}

package htmlnode

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docnode/internal/foundation"
	"git.home.luguber.info/inful/docnode/internal/foundation/errors"
)

func TestBase_Empty(t *testing.T) {
	node := NewBase(foundation.None[string](), foundation.None[string](), nil, Props{})

	require.True(t, node.Tag().IsNone())
	require.True(t, node.Value().IsNone())
	require.Empty(t, node.Children())
	require.NotNil(t, node.Children())
	require.Equal(t, 0, node.Props().Len())
	require.Equal(t, "", node.PropsToHTML())
}

func TestBase_RenderIsUnsupported(t *testing.T) {
	node := NewBase(foundation.Some("p"), foundation.Some("x"), nil, Props{})

	out, err := node.Render()
	require.Empty(t, out)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrBaseRender)
	require.True(t, errors.HasCategory(err, errors.CategoryUnsupported))
}

func TestBase_String(t *testing.T) {
	node := NewBase(
		foundation.Some("a"),
		foundation.Some("Click here"),
		[]Node{},
		PropsOf(Attr{"href", "https://www.example.com"}),
	)

	require.Equal(t,
		`HTMLNode(tag=a, value=Click here, children=[], props={href="https://www.example.com"})`,
		node.String())
}

func TestLeaf_Render(t *testing.T) {
	tests := []struct {
		name string
		leaf *Leaf
		want string
	}{
		{"paragraph", Element("p", "Hello, world!", Props{}), "<p>Hello, world!</p>"},
		{
			"with props",
			Element("a", "Click me!", PropsOf(Attr{"href", "https://www.google.com"})),
			`<a href="https://www.google.com">Click me!</a>`,
		},
		{"no tag returns raw text", Text("Just some text."), "Just some text."},
		{"empty value", Element("b", "", Props{}), "<b></b>"},
		{"empty untagged value", Text(""), ""},
		{"value is not escaped", Element("code", "<b>&amp;</b>", Props{}), "<code><b>&amp;</b></code>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.leaf.Render()
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNewLeaf(t *testing.T) {
	t.Run("missing value fails", func(t *testing.T) {
		leaf, err := NewLeaf(foundation.Some("p"), foundation.None[string](), Props{})
		require.Nil(t, leaf)
		require.ErrorIs(t, err, ErrLeafValue)
		require.True(t, errors.HasCategory(err, errors.CategoryValidation))
	})

	t.Run("empty value is allowed", func(t *testing.T) {
		leaf, err := NewLeaf(foundation.Some("p"), foundation.Some(""), Props{})
		require.NoError(t, err)
		out, err := leaf.Render()
		require.NoError(t, err)
		require.Equal(t, "<p></p>", out)
	})

	t.Run("no children", func(t *testing.T) {
		leaf, err := NewLeaf(foundation.Some("p"), foundation.Some("No children allowed"), Props{})
		require.NoError(t, err)
		require.Empty(t, leaf.Children())
	})

	t.Run("absent tag renders raw", func(t *testing.T) {
		leaf, err := NewLeaf(foundation.None[string](), foundation.Some("raw"), PropsOf(Attr{"class", "ignored"}))
		require.NoError(t, err)
		out, err := leaf.Render()
		require.NoError(t, err)
		require.Equal(t, "raw", out)
	})
}

func TestLeaf_ZeroValueRenderFails(t *testing.T) {
	_, err := (&Leaf{}).Render()
	require.ErrorIs(t, err, ErrLeafValue)
}

func TestParent_Render(t *testing.T) {
	t.Run("one child", func(t *testing.T) {
		parent := mustParent(t, "div", []Node{Element("span", "child", Props{})}, Props{})
		requireRender(t, "<div><span>child</span></div>", parent)
	})

	t.Run("grandchildren", func(t *testing.T) {
		child := mustParent(t, "span", []Node{Element("b", "grandchild", Props{})}, Props{})
		parent := mustParent(t, "div", []Node{child}, Props{})
		requireRender(t, "<div><span><b>grandchild</b></span></div>", parent)
	})

	t.Run("multiple children keep order", func(t *testing.T) {
		node := mustParent(t, "p", []Node{
			Element("b", "Bold text", Props{}),
			Text("Normal text"),
			Element("i", "italic text", Props{}),
			Text("Normal text"),
		}, Props{})
		requireRender(t, "<p><b>Bold text</b>Normal text<i>italic text</i>Normal text</p>", node)
	})

	t.Run("props", func(t *testing.T) {
		node := mustParent(t, "div", []Node{Element("span", "child", Props{})}, PropsOf(Attr{"class", "container"}))
		requireRender(t, `<div class="container"><span>child</span></div>`, node)
	})

	t.Run("empty children", func(t *testing.T) {
		requireRender(t, "<ul></ul>", mustParent(t, "ul", []Node{}, Props{}))
	})

	t.Run("is compositional", func(t *testing.T) {
		children := []Node{
			Element("li", "one", Props{}),
			mustParent(t, "li", []Node{Text("two "), Element("em", "2", Props{})}, Props{}),
			Text("three"),
		}
		parent := mustParent(t, "ol", children, PropsOf(Attr{"start", "1"}))

		want := ""
		for _, c := range children {
			html, err := c.Render()
			require.NoError(t, err)
			want += html
		}
		requireRender(t, `<ol start="1">`+want+`</ol>`, parent)
	})
}

func TestNewParent_Validation(t *testing.T) {
	t.Run("missing tag", func(t *testing.T) {
		_, err := NewParent("", []Node{Element("span", "child", Props{})}, Props{})
		require.ErrorIs(t, err, ErrParentTag)
	})

	t.Run("nil children", func(t *testing.T) {
		_, err := NewParent("div", nil, Props{})
		require.ErrorIs(t, err, ErrParentChildren)
		require.True(t, errors.HasCategory(err, errors.CategoryValidation))
	})

	t.Run("nil child", func(t *testing.T) {
		_, err := NewParent("div", []Node{Text("a"), nil}, Props{})
		require.ErrorIs(t, err, ErrNilChild)
	})

	t.Run("typed nil child", func(t *testing.T) {
		for _, child := range []Node{(*Leaf)(nil), (*Parent)(nil), (*Base)(nil)} {
			p, err := NewParent("p", []Node{child}, Props{})
			require.ErrorIs(t, err, ErrNilChild)
			require.Nil(t, p)
		}
	})
}

func TestNilReceivers(t *testing.T) {
	var leaf *Leaf
	var parent *Parent
	var base *Base

	require.NotPanics(t, func() {
		_, err := leaf.Render()
		require.ErrorIs(t, err, ErrLeafValue)

		_, err = parent.Render()
		require.ErrorIs(t, err, ErrParentTag)

		_, err = base.Render()
		require.ErrorIs(t, err, ErrBaseRender)
	})
	require.Equal(t, "None", leaf.String())
	require.Equal(t, "None", parent.String())
	require.Equal(t, "None", base.String())
}

func TestBase_StringWithNilChild(t *testing.T) {
	b := NewBase(foundation.Some("div"), foundation.None[string](), []Node{(*Leaf)(nil), nil}, Props{})

	require.NotPanics(t, func() {
		require.Equal(t, "HTMLNode(tag=div, value=None, children=[None, None], props={})", b.String())
	})
}

func TestParent_ZeroValueRenderFails(t *testing.T) {
	_, err := (&Parent{}).Render()
	require.ErrorIs(t, err, ErrParentTag)
}

func TestParent_ChildErrorPropagates(t *testing.T) {
	parent := mustParent(t, "div", []Node{Text("ok"), &Leaf{}}, Props{})
	_, err := parent.Render()
	require.ErrorIs(t, err, ErrLeafValue)

	withBase := mustParent(t, "div", []Node{NewBase(foundation.None[string](), foundation.None[string](), nil, Props{})}, Props{})
	_, err = withBase.Render()
	require.ErrorIs(t, err, ErrBaseRender)
}

func TestParent_ChildrenAreCopied(t *testing.T) {
	children := []Node{Text("a"), Text("b")}
	parent := mustParent(t, "p", children, Props{})

	children[0] = Text("changed")
	requireRender(t, "<p>ab</p>", parent)

	got := parent.Children()
	got[1] = Text("changed")
	requireRender(t, "<p>ab</p>", parent)
}

func TestParent_String(t *testing.T) {
	parent := mustParent(t, "p", []Node{Element("b", "x", Props{})}, Props{})
	require.Equal(t,
		"ParentNode(tag=p, value=None, children=[LeafNode(tag=b, value=x, children=[], props={})], props={})",
		parent.String())
}

func TestRender_Concurrent(t *testing.T) {
	tree := mustParent(t, "div", []Node{
		mustParent(t, "span", []Node{Element("b", "x", Props{})}, Props{}),
	}, Props{})

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out, err := tree.Render()
			if err != nil {
				results[i] = fmt.Sprint(err)
				return
			}
			results[i] = out
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		require.Equal(t, "<div><span><b>x</b></span></div>", r)
	}
}

func mustParent(t *testing.T, tag string, children []Node, props Props) *Parent {
	t.Helper()
	p, err := NewParent(tag, children, props)
	require.NoError(t, err)
	return p
}

func requireRender(t *testing.T, want string, n Node) {
	t.Helper()
	got, err := n.Render()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

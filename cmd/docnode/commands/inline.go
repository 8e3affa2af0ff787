package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"git.home.luguber.info/inful/docnode/internal/logfields"
	"git.home.luguber.info/inful/docnode/internal/markdown"
)

// InlineCmd implements the 'inline' command.
type InlineCmd struct {
	Path string `arg:"" optional:"" help:"Markdown file; reads stdin when omitted or '-'"`
	Wrap string `short:"w" help:"Tag wrapping the output; defaults to inline.wrap"`
}

// Run executes the inline command.
func (i *InlineCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}

	text, err := readInput(g, i.Path)
	if err != nil {
		return err
	}

	wrap := i.Wrap
	if wrap == "" {
		wrap = cfg.Inline.Wrap
	}

	parent, err := markdown.InlineParent(wrap, strings.TrimRight(text, "\r\n"), markdown.InlineOptions{
		LinkProps:  cfg.Inline.LinkProps.Props(),
		ImageProps: cfg.Inline.ImageProps.Props(),
	})
	if err != nil {
		return err
	}

	html, err := parent.Render()
	if err != nil {
		return err
	}
	slog.Debug("Rendered inline text",
		logfields.Command("inline"),
		logfields.File(inputName(i.Path)),
		logfields.Count(len(parent.Children())))
	_, err = fmt.Fprintln(g.Stdout, html)
	return err
}

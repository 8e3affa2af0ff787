package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/docnode/internal/config"
	"git.home.luguber.info/inful/docnode/internal/logfields"
	"git.home.luguber.info/inful/docnode/internal/markdown"
)

// ExtractCmd implements the 'extract' command.
type ExtractCmd struct {
	Path       string `arg:"" optional:"" help:"Markdown file to scan; reads stdin when omitted or '-'"`
	Kind       string `short:"k" default:"all" enum:"images,links,all" help:"Which constructs to list (images, links, all)"`
	Format     string `short:"f" help:"Output format (text or json); defaults to output.format"`
	CommonMark bool   `name:"commonmark" help:"Parse as CommonMark instead of scanning for patterns"`
}

// extractResult leaves out the kinds that were not requested; a requested kind
// with no matches is an empty array.
type extractResult struct {
	Images []markdown.Construct `json:"images,omitzero"`
	Links  []markdown.Construct `json:"links,omitzero"`
}

// Run executes the extract command.
func (e *ExtractCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	format, err := resolveFormat(e.Format, cfg)
	if err != nil {
		return err
	}

	text, err := readInput(g, e.Path)
	if err != nil {
		return err
	}

	if e.CommonMark {
		return e.runCommonMark(g, text, format)
	}

	var res extractResult
	if e.Kind != "links" {
		res.Images = markdown.ExtractMarkdownImages(text)
	}
	if e.Kind != "images" {
		res.Links = markdown.ExtractMarkdownLinks(text)
	}
	slog.Debug("Extracted constructs",
		logfields.Command("extract"),
		logfields.File(inputName(e.Path)),
		logfields.Format(format),
		logfields.Kind(e.Kind),
		logfields.Count(len(res.Images)+len(res.Links)))

	if format == config.FormatJSON {
		return writeJSON(g.Stdout, res)
	}
	for _, c := range res.Images {
		if _, err := fmt.Fprintf(g.Stdout, "image\t%s\t%s\n", c.Label, c.URL); err != nil {
			return err
		}
	}
	for _, c := range res.Links {
		if _, err := fmt.Fprintf(g.Stdout, "link\t%s\t%s\n", c.Label, c.URL); err != nil {
			return err
		}
	}
	return nil
}

func (e *ExtractCmd) runCommonMark(g *Global, text, format string) error {
	links, err := markdown.ExtractLinks([]byte(text))
	if err != nil {
		return err
	}

	selected := make([]markdown.Link, 0, len(links))
	for _, l := range links {
		isImage := l.Kind == markdown.LinkKindImage
		if (e.Kind == "images" && !isImage) || (e.Kind == "links" && isImage) {
			continue
		}
		selected = append(selected, l)
	}
	slog.Debug("Extracted CommonMark links",
		logfields.Command("extract"),
		logfields.File(inputName(e.Path)),
		logfields.Format(format),
		logfields.Kind(e.Kind),
		logfields.Count(len(selected)))

	if format == config.FormatJSON {
		return writeJSON(g.Stdout, selected)
	}
	for _, l := range selected {
		if _, err := fmt.Fprintf(g.Stdout, "%s\t%s\t%s\n", l.Kind, l.Label, l.Destination); err != nil {
			return err
		}
	}
	return nil
}

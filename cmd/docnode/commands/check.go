package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/docnode/internal/config"
	"git.home.luguber.info/inful/docnode/internal/foundation/errors"
	"git.home.luguber.info/inful/docnode/internal/logfields"
	"git.home.luguber.info/inful/docnode/internal/parity"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Path   string `arg:"" optional:"" help:"Markdown file; reads stdin when omitted or '-'"`
	Format string `short:"f" help:"Output format (text or json); defaults to output.format"`
	Strict bool   `help:"Fail when the two extractors disagree"`
}

// Run executes the check command.
func (c *CheckCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	format, err := resolveFormat(c.Format, cfg)
	if err != nil {
		return err
	}

	text, err := readInput(g, c.Path)
	if err != nil {
		return err
	}

	report, err := parity.Compare(text)
	if err != nil {
		return err
	}
	slog.Debug("Parity check finished",
		logfields.Command("check"),
		logfields.File(inputName(c.Path)),
		logfields.Format(format),
		slog.Int("matched", len(report.Matched)),
		slog.Int("only_pattern", len(report.OnlyPattern)),
		slog.Int("only_commonmark", len(report.OnlyCommonMark)))

	if format == config.FormatJSON {
		err = writeJSON(g.Stdout, report)
	} else {
		err = writeReport(g, report)
	}
	if err != nil {
		return err
	}

	if c.Strict && !report.Consistent() {
		return errors.ValidationError("pattern extractor and CommonMark disagree").
			WithContext("only_pattern", len(report.OnlyPattern)).
			WithContext("only_commonmark", len(report.OnlyCommonMark)).
			Build()
	}
	return nil
}

func writeReport(g *Global, report *parity.Report) error {
	if _, err := fmt.Fprintf(g.Stdout, "matched: %d\n", len(report.Matched)); err != nil {
		return err
	}
	for _, it := range report.OnlyPattern {
		if _, err := fmt.Fprintf(g.Stdout, "only pattern\t%s\t%s\t%s\n", it.Kind, it.Label, it.URL); err != nil {
			return err
		}
	}
	for _, it := range report.OnlyCommonMark {
		if _, err := fmt.Fprintf(g.Stdout, "only commonmark\t%s\t%s\t%s\n", it.Kind, it.Label, it.URL); err != nil {
			return err
		}
	}
	return nil
}

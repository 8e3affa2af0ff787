package commands

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docnode/internal/config"
	"git.home.luguber.info/inful/docnode/internal/foundation/errors"
)

// Global carries the process streams so commands can be run from tests.
type Global struct {
	Stdout io.Writer
	Stdin  io.Reader
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (default: docnode.yaml when present)"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Extract ExtractCmd `cmd:"" help:"List markdown images and links found in a file"`
	Inline  InlineCmd  `cmd:"" help:"Render inline markdown links and images as HTML"`
	Render  RenderCmd  `cmd:"" help:"Render a YAML node tree as HTML"`
	Check   CheckCmd   `cmd:"" help:"Compare the pattern extractor with a CommonMark parser"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// LoadConfig loads the file named by --config, or the default file when present.
func (c *CLI) LoadConfig() (*config.Config, error) {
	if c.Config == "" {
		return config.LoadOrDefault(config.DefaultPath)
	}
	return config.Load(c.Config)
}

// readInput returns the contents of path, or of stdin when path is empty or "-".
func readInput(g *Global, path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(g.Stdin)
		if err != nil {
			return "", errors.WrapError(err, errors.CategoryFileSystem, "failed to read stdin").Build()
		}
		return string(data), nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", errors.WrapError(err, errors.CategoryFileSystem, "failed to read input").
			WithContext("path", path).
			Build()
	}
	return string(data), nil
}

// resolveFormat picks the flag value when set and the configured format otherwise.
func resolveFormat(flag string, cfg *config.Config) (string, error) {
	format := strings.TrimSpace(flag)
	if format == "" {
		format = cfg.Output.Format
	}
	switch format {
	case config.FormatText, config.FormatJSON:
		return format, nil
	default:
		return "", errors.ValidationError("unsupported output format").
			WithContext("format", format).
			Build()
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to encode output").Build()
	}
	return nil
}

func inputName(path string) string {
	if path == "" || path == "-" {
		return "<stdin>"
	}
	return path
}

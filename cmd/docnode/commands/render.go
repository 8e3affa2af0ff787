package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/docnode/internal/logfields"
	"git.home.luguber.info/inful/docnode/internal/nodetree"
	"git.home.luguber.info/inful/docnode/internal/watch"
)

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	Path  string `arg:"" type:"existingfile" help:"YAML file describing the node tree"`
	Watch bool   `short:"w" help:"Re-render whenever the file changes (until interrupted)"`
}

// Run executes the render command.
func (r *RenderCmd) Run(g *Global, _ *CLI) error {
	if err := r.renderOnce(g); err != nil {
		if !r.Watch {
			return err
		}
		slog.Error("Render failed", logfields.File(r.Path), logfields.Error(err))
	}
	if !r.Watch {
		return nil
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return r.watch(ctx, g)
}

func (r *RenderCmd) watch(ctx context.Context, g *Global) error {
	w, err := watch.New(r.Path, watch.DefaultDebounce, func() {
		if err := r.renderOnce(g); err != nil {
			slog.Error("Render failed", logfields.File(r.Path), logfields.Error(err))
		}
	})
	if err != nil {
		return err
	}

	slog.Info("Watching for changes", logfields.File(r.Path))
	return w.Run(ctx)
}

func (r *RenderCmd) renderOnce(g *Global) error {
	start := time.Now()

	tree, err := nodetree.Load(r.Path)
	if err != nil {
		return err
	}
	html, err := tree.Render()
	if err != nil {
		return err
	}

	slog.Debug("Rendered node tree",
		logfields.Command("render"),
		logfields.File(r.Path),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	_, err = fmt.Fprintln(g.Stdout, html)
	return err
}

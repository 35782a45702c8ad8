package main

import (
	"fmt"
	"io"
	"time"

	"github.com/lox/pidgen/cmd/pidgen/shared"
	"github.com/lox/pidgen/internal/batch"
	"github.com/lox/pidgen/internal/fileutil"
	"github.com/lox/pidgen/internal/report"
)

// BatchCmd synthesizes Count PIDs in parallel. Item i starts from a seed
// derived from the base seed and i, so output does not depend on Workers.
type BatchCmd struct {
	CriteriaFlags

	Count    int           `short:"n" default:"100" help:"Number of PIDs to synthesize"`
	Workers  int           `short:"w" help:"Worker goroutines (0 uses the config default, then NumCPU)"`
	Timeout  time.Duration `help:"Stop the run after this long"`
	Output   string        `short:"o" type:"path" help:"Write the report to this file instead of stdout"`
	Progress bool          `help:"Print a progress line to stderr"`
}

func (c *BatchCmd) Run(g *Globals, s *streams) error {
	a, err := newApp(g, s)
	if err != nil {
		return err
	}

	req, err := c.request(a)
	if err != nil {
		return err
	}
	seed, err := c.seed(a)
	if err != nil {
		return err
	}

	workers := c.Workers
	if workers == 0 {
		workers = a.cfg.Defaults.Workers
	}

	ctx, stop := shared.SetupSignalHandler(a.logger)
	defer stop()

	opts := batch.Options{
		Seed:        seed,
		Count:       c.Count,
		Workers:     workers,
		MaxAttempts: c.maxAttempts(a),
		Timeout:     c.Timeout,
		Request:     req,
		Clock:       a.clock,
		Logger:      a.logger,
	}

	var progress *progressMonitor
	if c.Progress && c.Count > 0 {
		progress = newProgressMonitor(s.Err, a.clock, c.Count)
		opts.OnItem = progress.OnItem
	}

	result, err := batch.Run(ctx, opts)
	if err != nil {
		if progress != nil {
			progress.Abort()
		}
		return err
	}

	return c.write(a, report.FromBatch(result))
}

func (c *BatchCmd) write(a *app, doc report.Document) error {
	if c.Output == "" {
		return report.Write(a.out, doc, a.format)
	}

	err := fileutil.WriteAtomic(c.Output, 0o644, func(w io.Writer) error {
		return report.Write(w, doc, a.format)
	})
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	a.logger.Info("Wrote report", "path", c.Output, "rows", len(doc.Rows))
	return nil
}

package main

import (
	"fmt"

	"github.com/lox/pidgen/internal/pid"
	"github.com/lox/pidgen/internal/report"
)

// GenerateCmd synthesizes Count PIDs one after another, each continuing the
// LCG where the previous one stopped.
type GenerateCmd struct {
	CriteriaFlags

	Count int `short:"n" default:"1" help:"Number of PIDs to synthesize"`
}

func (c *GenerateCmd) Run(g *Globals, s *streams) error {
	a, err := newApp(g, s)
	if err != nil {
		return err
	}
	if c.Count <= 0 {
		return fmt.Errorf("count must be positive, got %d", c.Count)
	}

	req, err := c.request(a)
	if err != nil {
		return err
	}
	seed, err := c.seed(a)
	if err != nil {
		return err
	}
	limit := c.maxAttempts(a)

	doc := report.Document{
		Request: report.FromRequest(req),
		Rows:    make([]report.Row, 0, c.Count),
	}

	for i := range c.Count {
		start := seed
		var rec pid.Record
		attempts := 0
		if limit == 0 {
			pid.Synthesize(&rec, &seed, req)
		} else if attempts, err = pid.SynthesizeN(&rec, &seed, req, limit); err != nil {
			return fmt.Errorf("pid %d (seed %#016x): %w", i, start, err)
		}

		a.logger.Debug("Synthesized",
			"index", i,
			"pid", fmt.Sprintf("%#08x", rec.PID),
			"gender", rec.Gender,
			"attempts", attempts)

		traits := pid.Inspect(rec.PID, req.Ratio, req.Trainer)
		doc.Rows = append(doc.Rows, report.FromTraits(i, traits, start, true, attempts))
	}

	return report.Write(a.out, doc, a.format)
}

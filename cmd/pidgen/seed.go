package main

import (
	"fmt"

	"github.com/lox/pidgen/internal/config"
	"github.com/lox/pidgen/internal/lcrng"
	"github.com/lox/pidgen/internal/report"
)

// SeedCmd jumps the LCG and prints the frames that follow
type SeedCmd struct {
	Seed    string `arg:"" help:"Seed, decimal or 0x hex"`
	Advance uint64 `help:"Jump forwards this many frames first"`
	Reverse uint64 `help:"Jump backwards this many frames first"`
	Frames  int    `short:"n" default:"10" help:"Number of frames to print"`
}

func (c *SeedCmd) Run(g *Globals, s *streams) error {
	a, err := newApp(g, s)
	if err != nil {
		return err
	}

	seed, err := config.ParseSeed(c.Seed)
	if err != nil {
		return fmt.Errorf("invalid seed %q: %w", c.Seed, err)
	}
	if c.Frames < 0 {
		return fmt.Errorf("frames must not be negative, got %d", c.Frames)
	}

	frame := int64(c.Advance) - int64(c.Reverse)
	seed = lcrng.Reverse(lcrng.Advance(seed, c.Advance), c.Reverse)

	frames := make([]report.Frame, 0, c.Frames)
	for range c.Frames {
		current := seed
		value := lcrng.NextU32(&seed)
		frames = append(frames, report.Frame{
			Frame: frame,
			Seed:  fmt.Sprintf("0x%016X", current),
			Value: fmt.Sprintf("0x%08X", value),
		})
		frame++
	}

	return report.WriteFrames(a.out, frames, a.format)
}

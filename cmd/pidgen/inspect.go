package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/pidgen/internal/pid"
	"github.com/lox/pidgen/internal/report"
)

// InspectCmd decodes PIDs. With criteria flags it also fails when a PID
// does not meet them.
type InspectCmd struct {
	PIDs []string `arg:"" name:"pid" help:"PIDs to decode, decimal or 0x hex"`

	TID     string `name:"tid" help:"Trainer ID"`
	SID     string `name:"sid" help:"Secret ID"`
	Ratio   string `short:"r" default:"1:1" help:"Gender ratio of the species"`
	Gender  string `short:"g" help:"Require this gender"`
	Ability string `short:"a" help:"Require this ability slot"`
	Shiny   string `help:"Require this rarity"`
}

func (c *InspectCmd) Run(g *Globals, s *streams) error {
	a, err := newApp(g, s)
	if err != nil {
		return err
	}

	tr, err := trainer(a, c.TID, c.SID)
	if err != nil {
		return err
	}
	ratio, err := pid.ParseRatio(c.Ratio)
	if err != nil {
		return err
	}

	var criteria pid.Criteria
	if criteria.Gender, err = pid.ParseGender(c.Gender); err != nil {
		return err
	}
	if criteria.Ability, err = pid.ParseAbility(c.Ability); err != nil {
		return err
	}
	if criteria.Shiny, err = pid.ParseShiny(c.Shiny); err != nil {
		return err
	}

	doc := report.Document{Rows: make([]report.Row, 0, len(c.PIDs))}
	var failed []string
	for i, arg := range c.PIDs {
		value, err := parsePID(arg)
		if err != nil {
			return err
		}
		traits := pid.Inspect(value, ratio, tr)
		if !traits.Satisfies(criteria) {
			failed = append(failed, fmt.Sprintf("%#08x", value))
		}
		doc.Rows = append(doc.Rows, report.FromTraits(i, traits, 0, false, 0))
	}

	if err := report.Write(a.out, doc, a.format); err != nil {
		return err
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d PID(s) do not meet the criteria: %s", len(failed), strings.Join(failed, ", "))
	}
	return nil
}

func parsePID(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid PID %q: %w", s, err)
	}
	return uint32(n), nil
}

package main

import (
	"fmt"
	"strconv"

	"github.com/lox/pidgen/internal/config"
	"github.com/lox/pidgen/internal/pid"
	"github.com/lox/pidgen/internal/randutil"
)

// CriteriaFlags select what to synthesize. Flags override the preset.
type CriteriaFlags struct {
	Preset       string `short:"p" help:"Named preset from the config file"`
	Seed         string `short:"s" help:"Starting LCG seed, decimal or 0x hex (default $PIDGEN_SEED, then the clock)"`
	TID          string `name:"tid" help:"Trainer ID (default from the config file or $PIDGEN_TID)"`
	SID          string `name:"sid" help:"Secret ID (default from the config file or $PIDGEN_SID)"`
	Ratio        string `short:"r" help:"Gender ratio (male|7:1|3:1|1:1|1:3|1:7|female|genderless|0-255)"`
	Gender       string `short:"g" help:"Required gender (any|male|female|genderless)"`
	ForcedGender string `help:"Draw the gender byte from this gender's range (male|female)"`
	Ability      string `short:"a" help:"Ability slot (either|first|second)"`
	Shiny        string `help:"Rarity (random|always|never)"`
	Adjust       bool   `help:"Apply the wild encounter parity adjustment"`
	MaxAttempts  int    `help:"Attempts per PID before giving up (0 uses the config default, -1 is unbounded)"`
}

// request builds the synthesis request for a
func (c *CriteriaFlags) request(a *app) (pid.Request, error) {
	tr, err := trainer(a, c.TID, c.SID)
	if err != nil {
		return pid.Request{}, err
	}

	req := pid.Request{Ratio: pid.Ratio1to1, Trainer: tr}
	if c.Preset != "" {
		preset, err := a.cfg.Preset(c.Preset)
		if err != nil {
			return req, err
		}
		if req, err = preset.Request(tr); err != nil {
			return req, err
		}
	}

	if c.Ratio != "" {
		if req.Ratio, err = pid.ParseRatio(c.Ratio); err != nil {
			return req, err
		}
	}
	if c.Gender != "" {
		if req.Criteria.Gender, err = pid.ParseGender(c.Gender); err != nil {
			return req, err
		}
	}
	if c.ForcedGender != "" {
		if req.Criteria.ForcedGender, err = pid.ParseGender(c.ForcedGender); err != nil {
			return req, err
		}
	}
	if c.Ability != "" {
		if req.Criteria.Ability, err = pid.ParseAbility(c.Ability); err != nil {
			return req, err
		}
	}
	if c.Shiny != "" {
		if req.Criteria.Shiny, err = pid.ParseShiny(c.Shiny); err != nil {
			return req, err
		}
	}
	req.Adjust = req.Adjust || c.Adjust

	return req, req.Check()
}

// seed resolves the starting seed: flag, then environment, then the clock
func (c *CriteriaFlags) seed(a *app) (uint64, error) {
	if c.Seed != "" {
		seed, err := config.ParseSeed(c.Seed)
		if err != nil {
			return 0, fmt.Errorf("invalid seed %q: %w", c.Seed, err)
		}
		return seed, nil
	}
	if a.env.Seed != nil {
		return *a.env.Seed, nil
	}
	seed := randutil.FromTime(a.clock.Now())
	a.logger.Info("Seeded from clock", "seed", fmt.Sprintf("%#016x", seed))
	return seed, nil
}

// maxAttempts maps the flag onto a SynthesizeN cap
func (c *CriteriaFlags) maxAttempts(a *app) int {
	switch {
	case c.MaxAttempts < 0:
		return 0
	case c.MaxAttempts > 0:
		return c.MaxAttempts
	}
	return a.cfg.Defaults.MaxAttempts
}

// trainer overrides the configured IDs with any set on the command line
func trainer(a *app, tid, sid string) (pid.Trainer, error) {
	tr := a.cfg.TrainerIDs()
	var err error
	if tid != "" {
		if tr.TID, err = parseID("tid", tid); err != nil {
			return tr, err
		}
	}
	if sid != "" {
		if tr.SID, err = parseID("sid", sid); err != nil {
			return tr, err
		}
	}
	return tr, nil
}

func parseID(name, s string) (uint16, error) {
	n, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return uint16(n), nil
}

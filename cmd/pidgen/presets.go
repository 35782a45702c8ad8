package main

import (
	"github.com/lox/pidgen/internal/report"
)

// PresetsCmd lists the presets in the config file
type PresetsCmd struct{}

func (c *PresetsCmd) Run(g *Globals, s *streams) error {
	a, err := newApp(g, s)
	if err != nil {
		return err
	}

	tr := a.cfg.TrainerIDs()
	presets := make([]report.Preset, 0, len(a.cfg.Presets))
	for _, name := range a.cfg.PresetNames() {
		p, err := a.cfg.Preset(name)
		if err != nil {
			return err
		}
		req, err := p.Request(tr)
		if err != nil {
			return err
		}
		presets = append(presets, report.Preset{Name: name, Request: report.FromRequest(req)})
	}

	return report.WritePresets(a.out, presets, a.format)
}

// Package config loads trainer settings and named criteria presets from an
// HCL file, with environment overrides for the values people change most.
package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pidgen/internal/pid"
)

// DefaultMaxAttempts caps synthesis calls unless configured otherwise
const DefaultMaxAttempts = 1 << 20

// Config is the decoded preset file
type Config struct {
	Trainer  *TrainerConfig  `hcl:"trainer,block"`
	Defaults *DefaultsConfig `hcl:"defaults,block"`
	Presets  []PresetConfig  `hcl:"preset,block"`
}

// TrainerConfig identifies the trainer PIDs are checked against
type TrainerConfig struct {
	TID int `hcl:"tid,optional"`
	SID int `hcl:"sid,optional"`
}

// DefaultsConfig holds run settings shared by every command
type DefaultsConfig struct {
	MaxAttempts int    `hcl:"max_attempts,optional"`
	Workers     int    `hcl:"workers,optional"`
	Format      string `hcl:"format,optional"`
	LogLevel    string `hcl:"log_level,optional"`
}

// PresetConfig is a named set of synthesis criteria
type PresetConfig struct {
	Name         string `hcl:"name,label"`
	Ratio        string `hcl:"ratio"`
	Gender       string `hcl:"gender,optional"`
	ForcedGender string `hcl:"forced_gender,optional"`
	Ability      string `hcl:"ability,optional"`
	Shiny        string `hcl:"shiny,optional"`
	Adjust       bool   `hcl:"adjust,optional"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads an HCL preset file. A missing file yields Default().
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	src, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source. filename is only used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Trainer == nil {
		c.Trainer = &TrainerConfig{}
	}
	if c.Defaults == nil {
		c.Defaults = &DefaultsConfig{}
	}
	if c.Defaults.MaxAttempts == 0 {
		c.Defaults.MaxAttempts = DefaultMaxAttempts
	}
	if c.Defaults.Format == "" {
		c.Defaults.Format = "text"
	}
	if c.Defaults.LogLevel == "" {
		c.Defaults.LogLevel = "info"
	}
}

func (c *Config) validate() error {
	if c.Trainer.TID < 0 || c.Trainer.TID > 0xFFFF {
		return fmt.Errorf("trainer tid %d out of range", c.Trainer.TID)
	}
	if c.Trainer.SID < 0 || c.Trainer.SID > 0xFFFF {
		return fmt.Errorf("trainer sid %d out of range", c.Trainer.SID)
	}
	if c.Defaults.Workers < 0 {
		return fmt.Errorf("workers must not be negative")
	}

	seen := make(map[string]bool)
	for _, p := range c.Presets {
		if seen[p.Name] {
			return fmt.Errorf("duplicate preset %q", p.Name)
		}
		seen[p.Name] = true

		if _, err := p.Criteria(); err != nil {
			return fmt.Errorf("preset %q: %w", p.Name, err)
		}
		if _, err := pid.ParseRatio(p.Ratio); err != nil {
			return fmt.Errorf("preset %q: %w", p.Name, err)
		}
	}
	return nil
}

// TrainerIDs returns the configured trainer
func (c *Config) TrainerIDs() pid.Trainer {
	return pid.Trainer{TID: uint16(c.Trainer.TID), SID: uint16(c.Trainer.SID)}
}

// Preset looks up a preset by name
func (c *Config) Preset(name string) (*PresetConfig, error) {
	for i := range c.Presets {
		if c.Presets[i].Name == name {
			return &c.Presets[i], nil
		}
	}
	return nil, fmt.Errorf("unknown preset %q", name)
}

// PresetNames returns preset names in sorted order
func (c *Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for _, p := range c.Presets {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

// Criteria parses the preset's criteria fields
func (p PresetConfig) Criteria() (pid.Criteria, error) {
	var c pid.Criteria
	var err error
	if c.Gender, err = pid.ParseGender(p.Gender); err != nil {
		return c, err
	}
	if c.ForcedGender, err = pid.ParseGender(p.ForcedGender); err != nil {
		return c, err
	}
	if c.Ability, err = pid.ParseAbility(p.Ability); err != nil {
		return c, err
	}
	if c.Shiny, err = pid.ParseShiny(p.Shiny); err != nil {
		return c, err
	}
	return c, nil
}

// Request builds a synthesis request for tr from the preset
func (p PresetConfig) Request(tr pid.Trainer) (pid.Request, error) {
	ratio, err := pid.ParseRatio(p.Ratio)
	if err != nil {
		return pid.Request{}, err
	}
	criteria, err := p.Criteria()
	if err != nil {
		return pid.Request{}, err
	}
	return pid.Request{
		Ratio:    ratio,
		Adjust:   p.Adjust,
		Trainer:  tr,
		Criteria: criteria,
	}, nil
}

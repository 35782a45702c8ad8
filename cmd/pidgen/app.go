package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pidgen/cmd/pidgen/shared"
	"github.com/lox/pidgen/internal/config"
	"github.com/lox/pidgen/internal/report"
)

// app is the resolved runtime state of a command
type app struct {
	cfg    *config.Config
	env    *config.Env
	logger *log.Logger
	format report.Format
	out    io.Writer
	clock  quartz.Clock
}

// newApp layers flags over the environment over the config file
func newApp(g *Globals, s *streams) (*app, error) {
	env, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	path := g.Config
	if path == "" {
		path = env.ConfigPath
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	env.Apply(cfg)

	level := cfg.Defaults.LogLevel
	if g.LogLevel != "" {
		level = g.LogLevel
	}
	logger, err := shared.NewLogger(s.Err, level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	name := cfg.Defaults.Format
	if g.Format != "" {
		name = g.Format
	}
	format, err := report.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	report.SetColor(!g.NoColor && format == report.FormatText)

	clock := s.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}

	if path != "" {
		logger.Debug("Loaded config", "path", path, "presets", len(cfg.Presets))
	}

	return &app{
		cfg:    cfg,
		env:    env,
		logger: logger,
		format: format,
		out:    s.Out,
		clock:  clock,
	}, nil
}

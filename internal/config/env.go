package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names
const (
	// EnvSeed provides the starting LCG seed (decimal or 0x-prefixed hex)
	EnvSeed = "PIDGEN_SEED"

	// EnvTID and EnvSID override the trainer from the config file
	EnvTID = "PIDGEN_TID"
	EnvSID = "PIDGEN_SID"

	// EnvConfig is the path of the HCL preset file
	EnvConfig = "PIDGEN_CONFIG"

	// EnvLogLevel overrides the configured log level
	EnvLogLevel = "PIDGEN_LOG_LEVEL"
)

// Env holds values parsed from the environment. Nil pointers were not set.
type Env struct {
	Seed       *uint64
	TID        *uint16
	SID        *uint16
	ConfigPath string
	LogLevel   string
}

// FromEnv parses the PIDGEN_* variables.
func FromEnv() (*Env, error) {
	env := &Env{
		ConfigPath: os.Getenv(EnvConfig),
		LogLevel:   os.Getenv(EnvLogLevel),
	}

	if s := os.Getenv(EnvSeed); s != "" {
		seed, err := ParseSeed(s)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value: %w", EnvSeed, err)
		}
		env.Seed = &seed
	}

	var err error
	if env.TID, err = parseID(EnvTID); err != nil {
		return nil, err
	}
	if env.SID, err = parseID(EnvSID); err != nil {
		return nil, err
	}

	return env, nil
}

func parseID(key string) (*uint16, error) {
	s := os.Getenv(key)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", key, err)
	}
	id := uint16(n)
	return &id, nil
}

// ParseSeed parses a 64-bit seed in decimal or 0x-prefixed hex.
func ParseSeed(s string) (uint64, error) {
	return strconv.ParseUint(s, 0, 64)
}

// Apply overlays environment values onto cfg.
func (e *Env) Apply(cfg *Config) {
	if e.TID != nil {
		cfg.Trainer.TID = int(*e.TID)
	}
	if e.SID != nil {
		cfg.Trainer.SID = int(*e.SID)
	}
	if e.LogLevel != "" {
		cfg.Defaults.LogLevel = e.LogLevel
	}
}

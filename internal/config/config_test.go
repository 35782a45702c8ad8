package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pidgen/internal/pid"
)

const sample = `
trainer {
  tid = 12345
  sid = 54321
}

defaults {
  workers = 4
  format  = "yaml"
}

preset "wild-female" {
  ratio  = "1:1"
  gender = "female"
  shiny  = "never"
  adjust = true
}

preset "shiny-starter" {
  ratio   = "7:1"
  ability = "first"
  shiny   = "always"
}

preset "entralink" {
  ratio         = "3:1"
  forced_gender = "male"
  ability       = "second"
}
`

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sample), "sample.hcl")
	require.NoError(t, err)

	assert.Equal(t, pid.Trainer{TID: 12345, SID: 54321}, cfg.TrainerIDs())
	assert.Equal(t, 4, cfg.Defaults.Workers)
	assert.Equal(t, "yaml", cfg.Defaults.Format)
	assert.Equal(t, DefaultMaxAttempts, cfg.Defaults.MaxAttempts)
	assert.Equal(t, "info", cfg.Defaults.LogLevel)
	assert.Equal(t, []string{"entralink", "shiny-starter", "wild-female"}, cfg.PresetNames())
}

func TestPresetRequest(t *testing.T) {
	cfg, err := Parse([]byte(sample), "sample.hcl")
	require.NoError(t, err)

	tests := []struct {
		name string
		want pid.Request
	}{
		{
			name: "wild-female",
			want: pid.Request{
				Ratio:    pid.Ratio1to1,
				Adjust:   true,
				Criteria: pid.Criteria{Gender: pid.Female, Shiny: pid.ShinyNever},
			},
		},
		{
			name: "shiny-starter",
			want: pid.Request{
				Ratio:    pid.Ratio7to1,
				Criteria: pid.Criteria{Ability: pid.AbilityFirst, Shiny: pid.ShinyAlways},
			},
		},
		{
			name: "entralink",
			want: pid.Request{
				Ratio:    pid.Ratio3to1,
				Criteria: pid.Criteria{ForcedGender: pid.Male, Ability: pid.AbilitySecond},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := cfg.Preset(tt.name)
			require.NoError(t, err)

			req, err := p.Request(cfg.TrainerIDs())
			require.NoError(t, err)

			tt.want.Trainer = cfg.TrainerIDs()
			assert.Equal(t, tt.want, req)
			assert.NoError(t, req.Check())
		})
	}

	_, err = cfg.Preset("missing")
	assert.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"syntax", `trainer {`},
		{"unknown attribute", `trainer { pid = 1 }`},
		{"tid out of range", `trainer { tid = 70000 }`},
		{"negative workers", `defaults { workers = -1 }`},
		{"missing ratio", `preset "x" { gender = "male" }`},
		{"bad ratio", `preset "x" { ratio = "2:1" }`},
		{"bad gender", "preset \"x\" {\n  ratio = \"1:1\"\n  gender = \"both\"\n}"},
		{"duplicate preset", "preset \"x\" { ratio = \"1:1\" }\npreset \"x\" { ratio = \"3:1\" }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "bad.hcl")
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("missing file gives defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("empty name gives defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "text", cfg.Defaults.Format)
		assert.Empty(t, cfg.Presets)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pidgen.hcl")
		require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Len(t, cfg.Presets, 3)
	})
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvSeed, "0x1234")
	t.Setenv(EnvTID, "100")
	t.Setenv(EnvSID, "0xFFFF")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvConfig, "/etc/pidgen.hcl")

	env, err := FromEnv()
	require.NoError(t, err)

	require.NotNil(t, env.Seed)
	assert.Equal(t, uint64(0x1234), *env.Seed)
	assert.Equal(t, "/etc/pidgen.hcl", env.ConfigPath)

	cfg := Default()
	env.Apply(cfg)
	assert.Equal(t, pid.Trainer{TID: 100, SID: 0xFFFF}, cfg.TrainerIDs())
	assert.Equal(t, "debug", cfg.Defaults.LogLevel)
}

func TestFromEnvInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{EnvSeed, "not-a-seed"},
		{EnvTID, "65536"},
		{EnvSID, "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}

func TestFromEnvUnset(t *testing.T) {
	t.Setenv(EnvSeed, "")
	t.Setenv(EnvTID, "")
	t.Setenv(EnvSID, "")

	env, err := FromEnv()
	require.NoError(t, err)
	assert.Nil(t, env.Seed)
	assert.Nil(t, env.TID)
	assert.Nil(t, env.SID)
}

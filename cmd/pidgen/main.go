package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/coder/quartz"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Generate GenerateCmd      `cmd:"" help:"Synthesize PIDs sequentially from one seed"`
	Batch    BatchCmd         `cmd:"" help:"Synthesize PIDs across a worker pool"`
	Inspect  InspectCmd       `cmd:"" help:"Decode the traits of existing PIDs"`
	Seed     SeedCmd          `cmd:"" help:"Walk the LCG forwards or backwards from a seed"`
	Presets  PresetsCmd       `cmd:"" help:"List presets from the config file"`
}

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" type:"path" help:"HCL preset file (default $PIDGEN_CONFIG)"`
	LogLevel string `help:"Log level (debug|info|warn|error)"`
	Format   string `short:"f" help:"Output format (text|json|yaml)"`
	NoColor  bool   `help:"Disable coloured output"`
}

// streams carries the process I/O into command Run methods
type streams struct {
	Out   io.Writer
	Err   io.Writer
	Clock quartz.Clock
}

func options(cli *CLI) []kong.Option {
	return []kong.Option{
		kong.Name("pidgen"),
		kong.Description("Constrained Gen 5 PID and gender synthesizer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.Bind(&cli.Globals),
	}
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, options(&cli)...)
	err := ctx.Run(&streams{
		Out:   os.Stdout,
		Err:   os.Stderr,
		Clock: quartz.NewReal(),
	})
	ctx.FatalIfErrorf(err)
}

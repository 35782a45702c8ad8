package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Frame is one step of an LCG walk
type Frame struct {
	Frame int64  `json:"frame" yaml:"frame"`
	Seed  string `json:"seed" yaml:"seed"`
	Value string `json:"value" yaml:"value"`
}

// Preset is a named request for listing
type Preset struct {
	Name    string   `json:"name" yaml:"name"`
	Request *Request `json:"request" yaml:"request"`
}

// WriteFrames prints an LCG walk
func WriteFrames(w io.Writer, frames []Frame, format Format) error {
	if format == FormatText || format == "" {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, headerStyle.Render("FRAME")+"\tSEED\tVALUE")
		for _, f := range frames {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", f.Frame, f.Seed, pidStyle.Render(f.Value))
		}
		return tw.Flush()
	}
	return encode(w, frames, format)
}

// WritePresets lists configured presets
func WritePresets(w io.Writer, presets []Preset, format Format) error {
	if format == FormatText || format == "" {
		if len(presets) == 0 {
			_, err := fmt.Fprintln(w, dimStyle.Render("no presets configured"))
			return err
		}
		var b strings.Builder
		for _, p := range presets {
			r := p.Request
			fmt.Fprintf(&b, "%s\n", headerStyle.Render(p.Name))
			fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("ratio:"), r.Ratio)
			fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("gender:"), r.Gender)
			if r.ForcedGender != "" {
				fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("forced:"), r.ForcedGender)
			}
			fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("ability:"), r.Ability)
			fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render("shiny:"), r.Shiny)
			fmt.Fprintf(&b, "  %s %t\n", labelStyle.Render("adjust:"), r.Adjust)
		}
		_, err := io.WriteString(w, b.String())
		return err
	}
	return encode(w, presets, format)
}

func encode(w io.Writer, v any, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q", format)
}

// Package report renders synthesized PIDs as styled text, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/lox/pidgen/internal/batch"
	"github.com/lox/pidgen/internal/pid"
)

// Format selects the output encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, json or yaml)", s)
}

// SetColor turns ANSI styling of text output on or off
func SetColor(enabled bool) {
	if enabled {
		lipgloss.SetColorProfile(termenv.EnvColorProfile())
	} else {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Document is everything one command prints
type Document struct {
	Run     string   `json:"run,omitempty" yaml:"run,omitempty"`
	Request *Request `json:"request,omitempty" yaml:"request,omitempty"`
	Rows    []Row    `json:"results" yaml:"results"`
	Summary *Summary `json:"summary,omitempty" yaml:"summary,omitempty"`
}

// Request echoes the criteria a document was produced with
type Request struct {
	TID          uint16 `json:"tid" yaml:"tid"`
	SID          uint16 `json:"sid" yaml:"sid"`
	Ratio        string `json:"ratio" yaml:"ratio"`
	Gender       string `json:"gender" yaml:"gender"`
	ForcedGender string `json:"forced_gender,omitempty" yaml:"forced_gender,omitempty"`
	Ability      string `json:"ability" yaml:"ability"`
	Shiny        string `json:"shiny" yaml:"shiny"`
	Adjust       bool   `json:"adjust" yaml:"adjust"`
}

// Row is one PID and its traits
type Row struct {
	Index      int    `json:"index" yaml:"index"`
	Seed       string `json:"seed,omitempty" yaml:"seed,omitempty"`
	PID        string `json:"pid" yaml:"pid"`
	Gender     string `json:"gender" yaml:"gender"`
	GenderByte uint8  `json:"gender_byte" yaml:"gender_byte"`
	Ability    uint32 `json:"ability_bit" yaml:"ability_bit"`
	ShinyXor   uint32 `json:"shiny_xor" yaml:"shiny_xor"`
	Shiny      bool   `json:"shiny" yaml:"shiny"`
	Attempts   int    `json:"attempts,omitempty" yaml:"attempts,omitempty"`
}

// Summary condenses batch statistics
type Summary struct {
	Count          int     `json:"count" yaml:"count"`
	Elapsed        string  `json:"elapsed" yaml:"elapsed"`
	MeanAttempts   float64 `json:"mean_attempts" yaml:"mean_attempts"`
	StdDevAttempts float64 `json:"stddev_attempts" yaml:"stddev_attempts"`
	MedianAttempts float64 `json:"median_attempts" yaml:"median_attempts"`
	P95Attempts    float64 `json:"p95_attempts" yaml:"p95_attempts"`
	MaxAttempts    int     `json:"max_attempts" yaml:"max_attempts"`
	Shiny          int     `json:"shiny" yaml:"shiny"`
	Male           int     `json:"male" yaml:"male"`
	Female         int     `json:"female" yaml:"female"`
	Genderless     int     `json:"genderless" yaml:"genderless"`
	AbilityFirst   int     `json:"ability_first" yaml:"ability_first"`
	AbilitySecond  int     `json:"ability_second" yaml:"ability_second"`
}

// FromRequest captures req for echoing back
func FromRequest(req pid.Request) *Request {
	r := &Request{
		TID:     req.Trainer.TID,
		SID:     req.Trainer.SID,
		Ratio:   req.Ratio.String(),
		Gender:  req.Criteria.Gender.String(),
		Ability: req.Criteria.Ability.String(),
		Shiny:   req.Criteria.Shiny.String(),
		Adjust:  req.Adjust,
	}
	if req.Criteria.ForcedGender != pid.GenderAny {
		r.ForcedGender = req.Criteria.ForcedGender.String()
	}
	return r
}

// FromTraits builds a row. seed is omitted when hasSeed is false.
func FromTraits(index int, t pid.Traits, seed uint64, hasSeed bool, attempts int) Row {
	row := Row{
		Index:      index,
		PID:        fmt.Sprintf("0x%08X", t.PID),
		Gender:     t.Gender.String(),
		GenderByte: t.GenderByte,
		Ability:    t.Ability,
		ShinyXor:   t.ShinyXor,
		Shiny:      t.Shiny,
		Attempts:   attempts,
	}
	if hasSeed {
		row.Seed = fmt.Sprintf("0x%016X", seed)
	}
	return row
}

// FromBatch converts a batch report
func FromBatch(r *batch.Report) Document {
	doc := Document{
		Run:     r.ID,
		Request: FromRequest(r.Request),
		Rows:    make([]Row, 0, len(r.Items)),
	}
	for _, item := range r.Items {
		traits := pid.Inspect(item.PID, r.Request.Ratio, r.Request.Trainer)
		doc.Rows = append(doc.Rows, FromTraits(item.Index, traits, item.Seed, true, item.Attempts))
	}

	if s := r.Stats; s != nil {
		doc.Summary = &Summary{
			Count:          s.Count,
			Elapsed:        r.Elapsed.String(),
			MeanAttempts:   s.Mean(),
			StdDevAttempts: s.StdDev(),
			MedianAttempts: s.Median(),
			P95Attempts:    s.Percentile(0.95),
			MaxAttempts:    s.MaxAttempts,
			Shiny:          s.Shiny,
			Male:           s.Genders[pid.Male],
			Female:         s.Genders[pid.Female],
			Genderless:     s.Genders[pid.Genderless],
			AbilityFirst:   s.Ability[0],
			AbilitySecond:  s.Ability[1],
		}
	}
	return doc
}

// Write encodes doc to w
func Write(w io.Writer, doc Document, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	case FormatText, "":
		return writeText(w, doc)
	}
	return fmt.Errorf("unknown format %q", format)
}

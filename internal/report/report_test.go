package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/lox/pidgen/internal/batch"
	"github.com/lox/pidgen/internal/pid"
	"github.com/lox/pidgen/internal/statistics"
)

func init() {
	SetColor(false)
}

func sampleReport() *batch.Report {
	req := pid.Request{
		Ratio:    pid.Ratio1to1,
		Trainer:  pid.Trainer{TID: 12345, SID: 54321},
		Criteria: pid.Criteria{Shiny: pid.ShinyAlways, Ability: pid.AbilityFirst},
	}
	items := []batch.Item{
		{Index: 0, Seed: 0x1234, PID: 0x963A7232, Gender: pid.Female, Shiny: true, Attempts: 1},
		{Index: 1, Seed: 0x5678, PID: 0x16BAF2B2, Gender: pid.Male, Shiny: true, Attempts: 4},
	}
	stats := &statistics.Statistics{}
	for _, item := range items {
		stats.Add(statistics.Sample{Attempts: item.Attempts, Gender: item.Gender, Shiny: item.Shiny})
	}
	return &batch.Report{
		ID:      "01h5n0et5q6mt3v7ms1234abcd",
		Request: req,
		Items:   items,
		Elapsed: 1500 * time.Millisecond,
		Stats:   stats,
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"text": FormatText, "JSON": FormatJSON, "yml": FormatYAML, "yaml": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("csv")
	assert.Error(t, err)
}

func TestFromBatch(t *testing.T) {
	doc := FromBatch(sampleReport())

	require.Len(t, doc.Rows, 2)
	assert.Equal(t, "0x963A7232", doc.Rows[0].PID)
	assert.Equal(t, "0x0000000000001234", doc.Rows[0].Seed)
	assert.Equal(t, "female", doc.Rows[0].Gender)
	assert.Equal(t, uint32(0), doc.Rows[0].ShinyXor)
	assert.Equal(t, "male", doc.Rows[1].Gender)

	require.NotNil(t, doc.Request)
	assert.Equal(t, "1:1", doc.Request.Ratio)
	assert.Equal(t, "always", doc.Request.Shiny)
	assert.Empty(t, doc.Request.ForcedGender)

	require.NotNil(t, doc.Summary)
	assert.Equal(t, 2, doc.Summary.Count)
	assert.Equal(t, 2.5, doc.Summary.MeanAttempts)
	assert.Equal(t, "1.5s", doc.Summary.Elapsed)
	assert.Equal(t, 1, doc.Summary.Female)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FromBatch(sampleReport()), FormatJSON))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "01h5n0et5q6mt3v7ms1234abcd", decoded["run"])
	assert.Len(t, decoded["results"], 2)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FromBatch(sampleReport()), FormatYAML))

	var decoded struct {
		Run     string `yaml:"run"`
		Results []Row  `yaml:"results"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "01h5n0et5q6mt3v7ms1234abcd", decoded.Run)
	require.Len(t, decoded.Results, 2)
	assert.Equal(t, "0x16BAF2B2", decoded.Results[1].PID)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FromBatch(sampleReport()), FormatText))

	out := buf.String()
	assert.Contains(t, out, "01h5n0et5q6mt3v7ms1234abcd")
	assert.Contains(t, out, "TID 12345 / SID 54321")
	assert.Contains(t, out, "0x963A7232")
	assert.Contains(t, out, "★ yes")
	assert.Contains(t, out, "mean 2.50")
	assert.NotContains(t, out, "\x1b[", "colour disabled")
}

func TestWriteTextSingleRow(t *testing.T) {
	traits := pid.Inspect(0x80000000, pid.Ratio1to1, pid.Trainer{})
	doc := Document{Rows: []Row{FromTraits(0, traits, 0, false, 0)}}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc, FormatText))

	out := buf.String()
	assert.Contains(t, out, "0x80000000")
	assert.Contains(t, out, "female (0x00)")
	assert.NotContains(t, out, "Summary")
}

func TestWriteUnknownFormat(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, Document{}, "csv"))
}

func TestWriteFramesText(t *testing.T) {
	frames := []Frame{
		{Frame: 0, Seed: "0x0000000000000000", Value: "0x00000000"},
		{Frame: 1, Seed: "0x0000000000269EC3", Value: "0x7188D00C"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteFrames(&buf, frames, FormatText))
	assert.Contains(t, buf.String(), "FRAME")
	assert.Contains(t, buf.String(), "0x7188D00C")
}

func TestWritePresetsText(t *testing.T) {
	req := pid.Request{Ratio: pid.Ratio7to1, Adjust: true, Criteria: pid.Criteria{ForcedGender: pid.Female}}

	var buf bytes.Buffer
	require.NoError(t, WritePresets(&buf, []Preset{{Name: "wild", Request: FromRequest(req)}}, FormatText))

	out := buf.String()
	assert.Contains(t, out, "wild")
	assert.Contains(t, out, "ratio: 7:1")
	assert.Contains(t, out, "forced: female")
	assert.Contains(t, out, "adjust: true")

	buf.Reset()
	require.NoError(t, WritePresets(&buf, nil, FormatText))
	assert.Contains(t, buf.String(), "no presets configured")
}

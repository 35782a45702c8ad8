package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	pidStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	shinyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func writeText(w io.Writer, doc Document) error {
	var b strings.Builder

	if doc.Run != "" {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Run:"), doc.Run)
	}
	if r := doc.Request; r != nil {
		fmt.Fprintf(&b, "%s TID %d / SID %d, ratio %s\n", labelStyle.Render("Trainer:"), r.TID, r.SID, r.Ratio)
		criteria := fmt.Sprintf("gender %s, ability %s, shiny %s", r.Gender, r.Ability, r.Shiny)
		if r.ForcedGender != "" {
			criteria += ", forced " + r.ForcedGender
		}
		if r.Adjust {
			criteria += ", adjusted"
		}
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("Criteria:"), criteria)
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}

	tw := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, headerStyle.Render("#")+"\tSEED\tPID\tGENDER\tABILITY\tXOR\tSHINY\tATTEMPTS")
	for _, row := range doc.Rows {
		seed := row.Seed
		if seed == "" {
			seed = "-"
		}
		shiny := dimStyle.Render("no")
		if row.Shiny {
			shiny = shinyStyle.Render("★ yes")
		}
		attempts := "-"
		if row.Attempts > 0 {
			attempts = fmt.Sprint(row.Attempts)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s (0x%02X)\t%d\t%d\t%s\t%s\n",
			row.Index, seed, pidStyle.Render(row.PID), row.Gender, row.GenderByte,
			row.Ability+1, row.ShinyXor, shiny, attempts)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if s := doc.Summary; s != nil {
		b.WriteString("\n")
		fmt.Fprintln(&b, headerStyle.Render("Summary"))
		fmt.Fprintf(&b, "  %s %d in %s\n", labelStyle.Render("Records:"), s.Count, s.Elapsed)
		fmt.Fprintf(&b, "  %s mean %.2f ± %.2f, median %.1f, p95 %.1f, max %d\n",
			labelStyle.Render("Attempts:"), s.MeanAttempts, s.StdDevAttempts, s.MedianAttempts, s.P95Attempts, s.MaxAttempts)
		fmt.Fprintf(&b, "  %s %d male, %d female, %d genderless\n",
			labelStyle.Render("Genders:"), s.Male, s.Female, s.Genderless)
		fmt.Fprintf(&b, "  %s %d first, %d second\n",
			labelStyle.Render("Ability:"), s.AbilityFirst, s.AbilitySecond)
		fmt.Fprintf(&b, "  %s %d\n", labelStyle.Render("Shiny:"), s.Shiny)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

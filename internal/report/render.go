// Package report renders operation summaries for humans and pipelines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/pixelveil/pixelveil/internal/region"
)

// Summary describes one completed scramble or unscramble.
type Summary struct {
	Operation string     `json:"operation"`
	Image     string     `json:"image"`
	Output    string     `json:"output"`
	Region    region.Box `json:"region"`
	KeyLength int        `json:"key_length"`
	Record    string     `json:"record,omitempty"`
	// Restored is the advisory digest verdict on unscramble: nil when no
	// record was available to compare against.
	Restored *bool         `json:"restored,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

// PrintOptions controls human-readable rendering.
type PrintOptions struct {
	NoColor bool
}

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// PrintText writes one compact line per summary plus the advisory
// restore verdict when present.
func PrintText(w io.Writer, summaries []Summary, opts PrintOptions) {
	for _, s := range summaries {
		verdict := ""
		if s.Restored != nil {
			if *s.Restored {
				verdict = "  region digest matches original"
				if !opts.NoColor {
					verdict = "  " + okStyle.Render("region digest matches original")
				}
			} else {
				verdict = "  region digest DOES NOT match original (wrong key or region?)"
				if !opts.NoColor {
					verdict = "  " + warnStyle.Render("region digest DOES NOT match original (wrong key or region?)")
				}
			}
		}
		rows := fmt.Sprintf("%d rows x %d cols", s.Region.RowSpan(), s.Region.ColSpan())
		if !opts.NoColor {
			rows = dimStyle.Render(rows)
		}
		fmt.Fprintf(w, "%-10s %s -> %s  (%s, key length %d, %.2fs)%s\n",
			s.Operation, s.Image, s.Output, rows, s.KeyLength, s.Duration.Seconds(), verdict)
		if s.Record != "" {
			fmt.Fprintf(w, "%-10s region record written to %s\n", "", s.Record)
		}
	}
}

// PrintTable renders one summary as a field/value table.
func PrintTable(w io.Writer, s Summary, opts PrintOptions) error {
	table := tablewriter.NewTable(w)
	table.Header("Field", "Value")
	rows := [][]string{
		{"Operation", s.Operation},
		{"Image", s.Image},
		{"Output", s.Output},
		{"Region", s.Region.String()},
		{"Rows", strconv.Itoa(s.Region.RowSpan())},
		{"Columns", strconv.Itoa(s.Region.ColSpan())},
		{"Key length", strconv.Itoa(s.KeyLength)},
	}
	if s.Record != "" {
		rows = append(rows, []string{"Record", s.Record})
	}
	if s.Restored != nil {
		rows = append(rows, []string{"Restored", strconv.FormatBool(*s.Restored)})
	}
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

// PrintRegion renders a bounding box as a field/value table, for the
// region subcommand.
func PrintRegion(w io.Writer, b region.Box) error {
	table := tablewriter.NewTable(w)
	table.Header("Field", "Value")
	for _, row := range [][]string{
		{"Min row", strconv.Itoa(b.MinRow)},
		{"Max row", strconv.Itoa(b.MaxRow)},
		{"Min col", strconv.Itoa(b.MinCol)},
		{"Max col", strconv.Itoa(b.MaxCol)},
		{"Row span", strconv.Itoa(b.RowSpan())},
		{"Col span", strconv.Itoa(b.ColSpan())},
	} {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

// WriteJSON pretty-prints v for machine consumers.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/RMahshie/freqplan/internal/render"
	"github.com/RMahshie/freqplan/pkg/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
)

var (
	success  = color.New(color.FgGreen).SprintFunc()
	failure  = color.New(color.FgRed).SprintFunc()
	headline = color.New(color.FgCyan, color.Bold).SprintFunc()

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTable(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(w, t.Render())
}

func writeAllocationRows(w io.Writer, rows []models.AllocationRow) {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = []string{
			r.Term,
			render.FormatHz(r.LowerFrequency),
			render.FormatHz(r.HigherFrequency),
			string(r.Status),
		}
	}
	writeTable(w, []string{"Term", "Lower (Hz)", "Upper (Hz)", "Status"}, out)
}

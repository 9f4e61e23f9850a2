package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// RunsTable renders journaled runs as a static table, newest first as given.
func RunsTable(runs []storage.Run) string {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Score", Width: 6},
		{Title: "Passed", Width: 7},
		{Title: "Ticks", Width: 8},
		{Title: "Reason", Width: 10},
		{Title: "Seed", Width: 20},
		{Title: "Date", Width: 13},
	}

	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", r.ID),
			fmt.Sprintf("%d", r.Report.Score),
			fmt.Sprintf("%d", r.Report.Passed),
			fmt.Sprintf("%d", r.Report.Ticks),
			r.Report.Reason.String(),
			fmt.Sprintf("%d", r.Report.Seed),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Nothing is selected in a static listing.
	s.Selected = s.Cell
	t.SetStyles(s)

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	var b strings.Builder
	b.WriteString(titleStyle.Render("RECENT RUNS"))
	b.WriteString("\n")
	b.WriteString(tableStyle.Render(t.View()))
	return b.String()
}

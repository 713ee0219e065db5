package errview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"shelfscore/internal/score"
)

// tableStyles returns table styles for the browser.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	return styles
}

func defaultColumns() []table.Column {
	return columnsForWidth(120)
}

// columnsForWidth splits the terminal width across the error columns,
// keeping the fixed-width pass and ratio columns readable.
func columnsForWidth(width int) []table.Column {
	flexible := width - 14
	if flexible < 40 {
		flexible = 40
	}
	rowWidth := flexible * 3 / 10
	columnWidth := flexible * 2 / 10
	valueWidth := (flexible - rowWidth - columnWidth) / 2
	return []table.Column{
		{Title: "Row", Width: rowWidth},
		{Title: "Column", Width: columnWidth},
		{Title: "Ground truth", Width: valueWidth},
		{Title: "Generated", Width: valueWidth},
		{Title: "Pass", Width: 6},
		{Title: "Ratio", Width: 6},
	}
}

// rowsForErrors converts error rows into table rows.
func rowsForErrors(errors []score.ErrorRow) []table.Row {
	rows := make([]table.Row, 0, len(errors))
	for _, row := range errors {
		ratio := "-"
		if row.MatchType != "exact" {
			ratio = fmt.Sprintf("%.3f", row.Similarity)
		}
		rows = append(rows, table.Row{
			row.RowKey,
			row.ColumnName,
			displayValue(row.GroundTruth.String()),
			displayValue(row.Generated.String()),
			row.MatchType,
			ratio,
		})
	}
	return rows
}

func displayValue(value string) string {
	if value == "" {
		return "-"
	}
	return value
}

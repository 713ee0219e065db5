package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"shelfscore/internal/runner"
	"shelfscore/internal/score"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	goodStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	badStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// Render renders the full run summary: score table, duplicate-key
// warnings, and the error table.
func Render(results runner.Results, noColor bool) string {
	sections := []string{
		renderSummary(results, noColor),
		RenderScoreTable(results.Report, noColor),
	}
	if !results.DuplicateKeys.Empty() {
		sections = append(sections, renderDuplicates(results.DuplicateKeys, noColor))
	}
	if len(results.Errors) > 0 {
		sections = append(sections, RenderErrorTable(results.Errors, noColor))
	}
	return strings.Join(sections, "\n\n")
}

// renderSummary renders the run header and row counts.
func renderSummary(results runner.Results, noColor bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", styled(headerStyle, "Run "+results.RunID, noColor))
	report := results.Report
	fmt.Fprintf(&b, "Overall accuracy %s over %d ground-truth rows\n",
		accuracyText(report.OverallAccuracyPct, noColor), report.TotalGTRows)
	fmt.Fprintf(&b, "Matched %d   Missed %d   Hallucinated %d",
		report.MatchedCount, report.UnmatchedGTCount, report.UnmatchedGenCount)
	return b.String()
}

// RenderScoreTable renders per-column accuracy as an aligned table.
func RenderScoreTable(report score.Report, noColor bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-28s %8s %7s %7s %7s %8s %10s\n",
		styled(headerStyle, "Column", noColor), "Correct", "Wrong", "Missed", "Skipped", "Scored", "Accuracy")
	for _, column := range report.PerColumn {
		scored := column.TotalScored()
		accuracy := "-"
		if scored > 0 {
			accuracy = accuracyText(column.AccuracyPct, noColor)
		}
		fmt.Fprintf(&b, "%-28s %8d %7d %7d %7d %8d %10s\n",
			truncate(column.Name, 28), column.Correct, column.Wrong, column.Missed, column.Skipped, scored, accuracy)
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderErrorTable renders the field-level error table.
func RenderErrorTable(errors []score.ErrorRow, noColor bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", styled(headerStyle, fmt.Sprintf("Errors (%d)", len(errors)), noColor))
	fmt.Fprintf(&b, "%-32s %-24s %-20s %-20s %-6s %6s\n",
		"Row", "Column", "Ground truth", "Generated", "Pass", "Ratio")
	for _, row := range errors {
		fmt.Fprintf(&b, "%-32s %-24s %-20s %-20s %-6s %6s\n",
			truncate(row.RowKey, 32),
			truncate(row.ColumnName, 24),
			truncate(formatCell(row.GroundTruth.String()), 20),
			truncate(formatCell(row.Generated.String()), 20),
			row.MatchType,
			formatSimilarity(row.MatchType, row.Similarity))
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderDuplicates renders duplicate-key warnings for both sides.
func renderDuplicates(duplicates runner.DuplicateKeyReport, noColor bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", styled(warningStyle, "Duplicate composite keys (scores may be understated)", noColor))
	writeDuplicateSide(&b, "ground truth", duplicates.GroundTruth)
	writeDuplicateSide(&b, "generated", duplicates.Generated)
	return strings.TrimRight(b.String(), "\n")
}

func writeDuplicateSide(b *strings.Builder, side string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(b, "  %s: %q x%d\n", side, key, counts[key])
	}
}

func accuracyText(pct float64, noColor bool) string {
	text := formatPct(pct)
	switch {
	case noColor:
		return text
	case pct >= 90:
		return goodStyle.Render(text)
	case pct < 60:
		return badStyle.Render(text)
	default:
		return warningStyle.Render(text)
	}
}

func styled(style lipgloss.Style, text string, noColor bool) string {
	if noColor {
		return text
	}
	return style.Render(text)
}

func truncate(text string, width int) string {
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}

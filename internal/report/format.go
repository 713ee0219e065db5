package report

import "fmt"

// formatPct returns a one-decimal percentage string.
func formatPct(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// formatSimilarity renders a match similarity for the error table.
func formatSimilarity(matchType string, similarity float64) string {
	if matchType == "exact" {
		return "-"
	}
	return fmt.Sprintf("%.3f", similarity)
}

// formatCell renders a value string for table output, marking empty as
// a dash so blank and null cells stay visible.
func formatCell(value string) string {
	if value == "" {
		return "-"
	}
	return value
}

package report

import (
	"fmt"
	"strings"

	"shelfscore/internal/runner"
)

// RenderComparison renders base and head accuracy side by side with
// per-column deltas. Columns present in only one run render a dash on
// the missing side.
func RenderComparison(base, head runner.Results) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Base %s overall %s over %d rows\n",
		base.RunID, formatPct(base.Report.OverallAccuracyPct), base.Report.TotalGTRows)
	fmt.Fprintf(&b, "Head %s overall %s over %d rows\n",
		head.RunID, formatPct(head.Report.OverallAccuracyPct), head.Report.TotalGTRows)
	fmt.Fprintf(&b, "Delta overall %+.1f%%\n\n",
		head.Report.OverallAccuracyPct-base.Report.OverallAccuracyPct)

	baseByKey := map[string]float64{}
	baseScored := map[string]bool{}
	for _, column := range base.Report.PerColumn {
		baseByKey[column.Key] = column.AccuracyPct
		baseScored[column.Key] = column.TotalScored() > 0
	}

	fmt.Fprintf(&b, "%-28s %10s %10s %8s\n", "Column", "Base", "Head", "Delta")
	headKeys := map[string]bool{}
	for _, column := range head.Report.PerColumn {
		headKeys[column.Key] = true
		headCell := "-"
		if column.TotalScored() > 0 {
			headCell = formatPct(column.AccuracyPct)
		}
		baseCell, delta := "-", "-"
		if baseScored[column.Key] {
			baseCell = formatPct(baseByKey[column.Key])
			if column.TotalScored() > 0 {
				delta = fmt.Sprintf("%+.1f%%", column.AccuracyPct-baseByKey[column.Key])
			}
		}
		fmt.Fprintf(&b, "%-28s %10s %10s %8s\n", truncate(column.Name, 28), baseCell, headCell, delta)
	}
	for _, column := range base.Report.PerColumn {
		if headKeys[column.Key] || !baseScored[column.Key] {
			continue
		}
		fmt.Fprintf(&b, "%-28s %10s %10s %8s\n",
			truncate(column.Name, 28), formatPct(column.AccuracyPct), "-", "-")
	}
	return b.String()
}

package score

import (
	"shelfscore/internal/compare"
	"shelfscore/internal/match"
	"shelfscore/internal/record"
	"shelfscore/internal/schema"
)

// ColumnScore accumulates field outcomes for one comparable column.
type ColumnScore struct {
	Key     string `json:"key"`
	Name    string `json:"display_name"`
	Correct int    `json:"correct"`
	Wrong   int    `json:"wrong"`
	// Skipped counts both-null pairs. Mutual unknown is not evidence of
	// correctness or error, so it stays out of the denominator.
	Skipped int `json:"skipped"`
	// Missed counts unmatched ground-truth rows: a wholly missing SKU is
	// a miss on every comparable column.
	Missed int `json:"missed"`
}

// TotalScored is the accuracy denominator.
func (c ColumnScore) TotalScored() int {
	return c.Correct + c.Wrong + c.Missed
}

// AccuracyPct returns the column accuracy in percent, rounded to one
// decimal place, or 0 when the column was never applicable.
func (c ColumnScore) AccuracyPct() float64 {
	total := c.TotalScored()
	if total == 0 {
		return 0
	}
	return record.Round(float64(c.Correct)/float64(total)*100, 1)
}

// Report is the full output of a scoring run. It is plain nested
// key-value data so downstream diagnostics can consume it as-is.
type Report struct {
	PerColumn []ColumnReport `json:"per_column"`
	// OverallAccuracyPct is the unweighted mean of per-column accuracy
	// over columns with a nonzero denominator. A column scored on 3 cells
	// weighs the same as one scored on 300: the question is how good the
	// pipeline is per attribute, not per cell.
	OverallAccuracyPct float64 `json:"overall_accuracy_pct"`
	MatchedCount       int     `json:"matched_count"`
	UnmatchedGTCount   int     `json:"unmatched_gt_count"`
	UnmatchedGenCount  int     `json:"unmatched_gen_count"`
	TotalGTRows        int     `json:"total_gt_rows"`
}

// ColumnReport is a ColumnScore with its derived accuracy attached.
type ColumnReport struct {
	ColumnScore
	AccuracyPct float64 `json:"accuracy_pct"`
}

// ErrorRow is one field-level disagreement on a matched pair, with
// enough context to render a human-auditable diff table.
type ErrorRow struct {
	RowKey      string       `json:"row_key"`
	ColumnName  string       `json:"column_display_name"`
	GroundTruth record.Value `json:"ground_truth_value"`
	Generated   record.Value `json:"generated_value"`
	MatchType   string       `json:"match_type"`
	Similarity  float64      `json:"similarity_score"`
}

// Score aggregates field comparisons across all matched pairs plus
// unmatched-row penalties into per-column and overall accuracy, and the
// flat error table. Unmatched generated rows (hallucinations) are counted
// but never touch column scores; inventing a row is a distinct failure
// mode from getting a field wrong on a real one.
func Score(
	matchResult match.Result,
	gtRecords, genRecords []record.Record,
	columns []schema.Column,
	policy compare.Policy,
) (Report, []ErrorRow, error) {
	scores := make([]ColumnScore, len(columns))
	for i, column := range columns {
		scores[i] = ColumnScore{Key: column.Key, Name: column.Name}
	}

	errorRows := make([]ErrorRow, 0)
	for _, pair := range matchResult.Pairs {
		gtRecord := gtRecords[pair.GT]
		genRecord := genRecords[pair.Gen]
		for i, column := range columns {
			result, err := compare.Field(gtRecord.Field(column.Key), genRecord.Field(column.Key), column, policy)
			if err != nil {
				return Report{}, nil, err
			}
			switch {
			case result.BothNull:
				scores[i].Skipped++
			case result.Match:
				scores[i].Correct++
			default:
				scores[i].Wrong++
				errorRows = append(errorRows, ErrorRow{
					RowKey:      pair.Key,
					ColumnName:  column.Name,
					GroundTruth: gtRecord.Field(column.Key),
					Generated:   genRecord.Field(column.Key),
					MatchType:   string(pair.Type),
					Similarity:  record.Round(pair.Similarity, 3),
				})
			}
		}
	}

	for range matchResult.UnmatchedGT {
		for i := range scores {
			scores[i].Missed++
		}
	}

	report := Report{
		PerColumn:         make([]ColumnReport, len(scores)),
		MatchedCount:      len(matchResult.Pairs),
		UnmatchedGTCount:  len(matchResult.UnmatchedGT),
		UnmatchedGenCount: len(matchResult.UnmatchedGen),
		TotalGTRows:       len(matchResult.Pairs) + len(matchResult.UnmatchedGT),
	}
	var accuracySum float64
	var scoredColumns int
	for i, cs := range scores {
		report.PerColumn[i] = ColumnReport{ColumnScore: cs, AccuracyPct: cs.AccuracyPct()}
		if cs.TotalScored() > 0 {
			accuracySum += cs.AccuracyPct()
			scoredColumns++
		}
	}
	if scoredColumns > 0 {
		report.OverallAccuracyPct = record.Round(accuracySum/float64(scoredColumns), 1)
	}
	return report, errorRows, nil
}

package runner

import (
	"time"

	"shelfscore/internal/score"
)

// Results is the persisted output of one scoring run.
type Results struct {
	RunID      string        `json:"run_id"`
	Inputs     InputMetadata `json:"inputs"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Report     score.Report  `json:"report"`
	// Errors is the flattened field-level error table for matched pairs.
	Errors []score.ErrorRow `json:"errors"`
	// DuplicateKeys warns when several rows on a side collapsed to the
	// same composite key before matching; scores may be understated.
	DuplicateKeys DuplicateKeyReport `json:"duplicate_keys"`
}

// InputMetadata records where the compared collections came from.
type InputMetadata struct {
	TruthPath     string `json:"truth_path,omitempty"`
	GeneratedPath string `json:"generated_path,omitempty"`
	TruthRows     int    `json:"truth_rows"`
	GeneratedRows int    `json:"generated_rows"`
}

// DuplicateKeyReport maps composite keys to occurrence counts per side,
// holding only keys that occur more than once.
type DuplicateKeyReport struct {
	GroundTruth map[string]int `json:"ground_truth,omitempty"`
	Generated   map[string]int `json:"generated,omitempty"`
}

// Empty reports whether neither side had duplicate keys.
func (d DuplicateKeyReport) Empty() bool {
	return len(d.GroundTruth) == 0 && len(d.Generated) == 0
}

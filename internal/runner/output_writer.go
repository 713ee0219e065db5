package runner

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ResultsFileName is the results file written inside each run directory.
const ResultsFileName = "results.json"

// WriteRunOutputs writes run results under outputDir/<run-id>/ and
// returns the run directory.
func WriteRunOutputs(results Results, outputDir string) (string, error) {
	if outputDir == "" {
		return "", fmt.Errorf("output directory is required")
	}
	runDir := filepath.Join(outputDir, results.RunID)
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	if err := writeJSON(filepath.Join(runDir, ResultsFileName), results); err != nil {
		return "", err
	}
	return runDir, nil
}

// writeJSON writes a Results payload as pretty JSON.
func writeJSON(path string, results Results) error {
	payload, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"shelfscore/internal/runner"
)

// LoadResults reads a stored results file.
func LoadResults(path string) (runner.Results, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return runner.Results{}, err
	}
	var results runner.Results
	if err := json.Unmarshal(data, &results); err != nil {
		return runner.Results{}, err
	}
	return results, nil
}

// ResolveRun locates a run by ID, or the most recent run when ref is
// "latest" or empty. It returns the results and the run directory.
func ResolveRun(outputDir, ref string) (runner.Results, string, error) {
	ref = strings.TrimSpace(ref)
	var runDir string
	var err error
	if ref == "" || ref == "latest" {
		runDir, err = findLatestRunDir(outputDir)
	} else {
		runDir, err = findRunByID(outputDir, ref)
	}
	if err != nil {
		return runner.Results{}, "", err
	}
	results, err := LoadResults(filepath.Join(runDir, runner.ResultsFileName))
	return results, runDir, err
}

// findLatestRunDir picks the newest run directory. Run IDs sort
// lexicographically by timestamp.
func findLatestRunDir(outputDir string) (string, error) {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return "", err
	}
	runIDs := make([]string, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			runIDs = append(runIDs, entry.Name())
		}
	}
	if len(runIDs) == 0 {
		return "", fmt.Errorf("no runs found in %s", outputDir)
	}
	sort.Strings(runIDs)
	return filepath.Join(outputDir, runIDs[len(runIDs)-1]), nil
}

func findRunByID(outputDir, runID string) (string, error) {
	runDir := filepath.Join(outputDir, runID)
	if info, err := os.Stat(runDir); err == nil && info.IsDir() {
		return runDir, nil
	}
	return "", fmt.Errorf("run %s not found", runID)
}

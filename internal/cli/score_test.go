package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shelfscore/internal/runner"
)

func writeDataFiles(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	header := "brand,product_name,packaging_size_ml,price_eur\n"
	truthPath := filepath.Join(dir, "truth.csv")
	generatedPath := filepath.Join(dir, "generated.csv")
	if err := os.WriteFile(truthPath, []byte(header+"Acme,Orange Juice,500,1.50\nBolt,Cola,330,0.99\n"), 0o644); err != nil {
		t.Fatalf("write truth: %v", err)
	}
	if err := os.WriteFile(generatedPath, []byte(header+"acme,Orange Juce,500,1.505\n"), 0o644); err != nil {
		t.Fatalf("write generated: %v", err)
	}
	return truthPath, generatedPath
}

func TestScoreMissingFlags(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run([]string{"score"}, &out, &errOut)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
	if !strings.Contains(errOut.String(), "Missing --truth or --generated") {
		t.Fatalf("expected missing flag message, got %q", errOut.String())
	}
}

func TestScoreWritesRunAndRendersReport(t *testing.T) {
	truthPath, generatedPath := writeDataFiles(t)
	outputDir := t.TempDir()

	var out, errOut bytes.Buffer
	code := Run([]string{
		"score",
		"--truth", truthPath,
		"--generated", generatedPath,
		"--output", outputDir,
		"--no-color",
	}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut.String())
	}
	output := out.String()
	if !strings.Contains(output, "Overall accuracy") {
		t.Fatalf("expected rendered report, got %q", output)
	}
	if !strings.Contains(output, "Matched 1   Missed 1   Hallucinated 0") {
		t.Fatalf("expected match counts, got %q", output)
	}

	entries, err := os.ReadDir(outputDir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one run directory, got %v (%v)", entries, err)
	}
	resultsPath := filepath.Join(outputDir, entries[0].Name(), runner.ResultsFileName)
	if _, err := os.Stat(resultsPath); err != nil {
		t.Fatalf("expected results file: %v", err)
	}
}

func TestScoreJSONOutput(t *testing.T) {
	truthPath, generatedPath := writeDataFiles(t)
	outputDir := t.TempDir()

	var out, errOut bytes.Buffer
	code := Run([]string{
		"score",
		"--truth", truthPath,
		"--generated", generatedPath,
		"--output", outputDir,
		"--json",
	}, &out, &errOut)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, errOut.String())
	}

	var results runner.Results
	if err := json.Unmarshal(out.Bytes(), &results); err != nil {
		t.Fatalf("expected JSON results, got %v\n%s", err, out.String())
	}
	if results.Report.MatchedCount != 1 || results.Report.UnmatchedGTCount != 1 {
		t.Fatalf("unexpected report: %+v", results.Report)
	}
}

func TestScoreBadInputFile(t *testing.T) {
	outputDir := t.TempDir()
	var out, errOut bytes.Buffer
	code := Run([]string{
		"score",
		"--truth", filepath.Join(outputDir, "missing.csv"),
		"--generated", filepath.Join(outputDir, "missing.csv"),
		"--output", outputDir,
	}, &out, &errOut)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(errOut.String(), "Scoring failed") {
		t.Fatalf("expected scoring failure, got %q", errOut.String())
	}
}

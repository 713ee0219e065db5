//go:build cucumber

package cucumber

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"shelfscore/internal/cli"
)

func (s *featureState) aCleanOutputDirectory() error {
	s.outputDir = filepath.Join(s.workDir, "runs")
	return os.MkdirAll(s.outputDir, 0o755)
}

func (s *featureState) aGroundTruthFileWithRows(table *godog.Table) error {
	path := filepath.Join(s.workDir, "truth.csv")
	if err := writeCSV(path, table); err != nil {
		return err
	}
	s.truthPath = path
	return nil
}

func (s *featureState) aGeneratedFileWithRows(table *godog.Table) error {
	path := filepath.Join(s.workDir, "generated.csv")
	if err := writeCSV(path, table); err != nil {
		return err
	}
	s.generatedPath = path
	return nil
}

func (s *featureState) anEmptyGeneratedFile() error {
	path := filepath.Join(s.workDir, "generated.csv")
	header := "brand,product_name,packaging_size_ml,price_eur\n"
	if err := os.WriteFile(path, []byte(header), 0o644); err != nil {
		return err
	}
	s.generatedPath = path
	return nil
}

func (s *featureState) aConfigFileContaining(content *godog.DocString) error {
	path := filepath.Join(s.workDir, "shelfscore.yml")
	if err := os.WriteFile(path, []byte(content.Content), 0o644); err != nil {
		return err
	}
	s.configPath = path
	return nil
}

func (s *featureState) iScoreTheGeneratedFile() error {
	if s.truthPath == "" || s.generatedPath == "" {
		return fmt.Errorf("scenario did not declare both input files")
	}
	s.exitCode = cli.Run([]string{
		"score",
		"--truth", s.truthPath,
		"--generated", s.generatedPath,
		"--output", s.outputDir,
		"--json",
	}, &s.stdout, &s.stderr)
	if s.exitCode != 0 {
		return fmt.Errorf("score failed with exit %d: %s", s.exitCode, s.stderr.String())
	}
	if err := json.Unmarshal(s.stdout.Bytes(), &s.results); err != nil {
		return fmt.Errorf("parse results: %w", err)
	}
	s.hasResults = true
	return nil
}

func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) > 0 && args[0] == "validate" && s.configPath != "" {
		args = append(args, "--config", s.configPath)
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

func writeCSV(path string, table *godog.Table) error {
	var b strings.Builder
	for _, row := range table.Rows {
		cells := make([]string, 0, len(row.Cells))
		for _, cell := range row.Cells {
			cells = append(cells, cell.Value)
		}
		b.WriteString(strings.Join(cells, ","))
		b.WriteString("\n")
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"shelfscore/internal/report"
	"shelfscore/internal/runner"
	"shelfscore/internal/ui/errview"
)

// executeRun is a test seam for executing a scoring run.
var executeRun = runner.Run

// launchErrview is a test seam for starting the interactive browser.
var launchErrview = func(model errview.Model) error {
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// isTerminal is a test seam for TTY detection.
var isTerminal = func(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// runScore builds the handler for the score command.
func runScore(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		truthPath := fs.String("truth", "", "Ground truth records (csv, json, or parquet)")
		generatedPath := fs.String("generated", "", "Generated records (csv, json, or parquet)")
		configPath := fs.String("config", "", "Path to shelfscore.yml (default: search upward)")
		outputDir := fs.String("output", "", "Override output directory")
		jsonOutput := fs.Bool("json", false, "Emit results as JSON")
		noColor := fs.Bool("no-color", false, "Disable colored output")
		interactive := fs.Bool("interactive", false, "Browse the error table interactively")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		if *truthPath == "" || *generatedPath == "" {
			fmt.Fprintln(stderr, "Missing --truth or --generated")
			return ExitUsage
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}

		results, err := executeRun(context.Background(), runner.Options{
			Config:        cfg,
			TruthPath:     *truthPath,
			GeneratedPath: *generatedPath,
		})
		if err != nil {
			fmt.Fprintf(stderr, "Scoring failed: %v\n", err)
			return ExitError
		}

		runsDir, err := resolveOutputDir(*outputDir, cfg)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to resolve output directory: %v\n", err)
			return ExitError
		}
		runDir, err := runner.WriteRunOutputs(results, runsDir)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to write results: %v\n", err)
			return ExitError
		}

		if *jsonOutput {
			payload, err := json.MarshalIndent(results, "", "  ")
			if err != nil {
				fmt.Fprintf(stderr, "Failed to encode results: %v\n", err)
				return ExitError
			}
			fmt.Fprintf(stdout, "%s\n", payload)
			return ExitOK
		}

		fmt.Fprintln(stdout, report.Render(results, *noColor))
		fmt.Fprintf(stdout, "\nResults: %s\n", runDir)

		if *interactive && len(results.Errors) > 0 {
			if !isTerminal(os.Stdout.Fd()) {
				fmt.Fprintln(stderr, "Interactive mode requires a terminal")
				return ExitError
			}
			model := errview.NewModel(results.Errors, errview.Options{
				RunID:   results.RunID,
				NoColor: *noColor,
			})
			if err := launchErrview(model); err != nil {
				fmt.Fprintf(stderr, "Error browser failed: %v\n", err)
				return ExitError
			}
		}
		return ExitOK
	}
}

package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"shelfscore/internal/report"
	"shelfscore/internal/ui/errview"
)

// runErrors builds the handler for the errors command.
func runErrors(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		inputDir := fs.String("input", "", "Directory containing runs")
		configPath := fs.String("config", "", "Path to shelfscore.yml (default: search upward)")
		runRef := fs.String("run", "latest", "Run id (default: latest)")
		noColor := fs.Bool("no-color", false, "Disable colored output")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		runsDir, err := resolveOutputDir(*inputDir, cfg)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to resolve input: %v\n", err)
			return ExitError
		}

		results, _, err := resolveRun(runsDir, *runRef)
		if err != nil {
			fmt.Fprintf(stderr, "Run not found: %v\n", err)
			return ExitError
		}

		if len(results.Errors) == 0 {
			fmt.Fprintf(stdout, "Run %s has no field errors\n", results.RunID)
			return ExitOK
		}

		if !isTerminal(os.Stdout.Fd()) {
			fmt.Fprintln(stdout, report.RenderErrorTable(results.Errors, true))
			return ExitOK
		}

		model := errview.NewModel(results.Errors, errview.Options{
			RunID:   results.RunID,
			NoColor: *noColor,
		})
		if err := launchErrview(model); err != nil {
			fmt.Fprintf(stderr, "Error browser failed: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

package cli

import (
	"flag"
	"fmt"
	"io"

	"shelfscore/internal/report"
)

// resolveRun is a test seam for locating runs.
var resolveRun = report.ResolveRun

// runCompare builds the handler for the compare command.
func runCompare(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		inputDir := fs.String("input", "", "Directory containing runs")
		configPath := fs.String("config", "", "Path to shelfscore.yml (default: search upward)")
		baseRef := fs.String("base", "", "Base run id")
		headRef := fs.String("head", "", "Head run id (default: latest)")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		if *baseRef == "" {
			fmt.Fprintln(stderr, "Missing --base")
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

		baseResults, _, err := resolveRun(runsDir, *baseRef)
		if err != nil {
			fmt.Fprintf(stderr, "Base run not found: %v\n", err)
			return ExitError
		}
		headResults, _, err := resolveRun(runsDir, *headRef)
		if err != nil {
			fmt.Fprintf(stderr, "Head run not found: %v\n", err)
			return ExitError
		}

		fmt.Fprint(stdout, report.RenderComparison(baseResults, headResults))
		return ExitOK
	}
}

package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"shelfscore/internal/config"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to shelfscore.yml (default: search upward)")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		path := *configPath
		if path == "" {
			found, err := config.FindConfigPath("")
			if errors.Is(err, os.ErrNotExist) {
				fmt.Fprintln(stdout, "No shelfscore.yml found; built-in defaults apply")
				return ExitOK
			}
			if err != nil {
				fmt.Fprintf(stderr, "Failed to locate config: %v\n", err)
				return ExitError
			}
			path = found
		}

		if _, err := config.Load(path); err != nil {
			var validationErr *config.ValidationError
			if errors.As(err, &validationErr) {
				fmt.Fprintf(stderr, "Config invalid: %s\n", path)
				for _, issue := range validationErr.Issues {
					fmt.Fprintf(stderr, "  %s: %s\n", issue.Field, issue.Message)
				}
				return ExitError
			}
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Config valid: %s\n", path)
		return ExitOK
	}
}

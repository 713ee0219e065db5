//go:build cucumber

package cucumber

import (
	"bytes"
	"context"
	"os"

	"github.com/cucumber/godog"

	"shelfscore/internal/runner"
)

// featureState holds scenario state for the CLI features.
type featureState struct {
	workDir       string
	outputDir     string
	truthPath     string
	generatedPath string
	configPath    string
	stdout        bytes.Buffer
	stderr        bytes.Buffer
	exitCode      int
	results       runner.Results
	hasResults    bool
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, state.reset()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a clean output directory$`, state.aCleanOutputDirectory)
	ctx.Step(`^a ground truth file with rows:$`, state.aGroundTruthFileWithRows)
	ctx.Step(`^a generated file with rows:$`, state.aGeneratedFileWithRows)
	ctx.Step(`^an empty generated file$`, state.anEmptyGeneratedFile)
	ctx.Step(`^a config file containing:$`, state.aConfigFileContaining)
	ctx.Step(`^I score the generated file$`, state.iScoreTheGeneratedFile)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the command succeeds$`, state.theCommandSucceeds)
	ctx.Step(`^the command fails$`, state.theCommandFails)
	ctx.Step(`^the output contains "([^"]+)"$`, state.theOutputContains)
	ctx.Step(`^the error output contains "([^"]+)"$`, state.theErrorOutputContains)
	ctx.Step(`^the run reports (\d+) matched, (\d+) missed, and (\d+) hallucinated rows$`, state.theRunReportsCounts)
	ctx.Step(`^the "([^"]+)" column accuracy is ([0-9.]+)%$`, state.theColumnAccuracyIs)
	ctx.Step(`^every error row has match type "([^"]+)"$`, state.everyErrorRowHasMatchType)
	ctx.Step(`^the duplicate key report counts "([^"]+)" (\d+) times on the ground truth side$`, state.theDuplicateKeyReportCounts)
}

func (s *featureState) reset() error {
	dir, err := os.MkdirTemp("", "shelfscore-cucumber-")
	if err != nil {
		return err
	}
	s.workDir = dir
	s.outputDir = ""
	s.truthPath = ""
	s.generatedPath = ""
	s.configPath = ""
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	s.results = runner.Results{}
	s.hasResults = false
	return nil
}

func (s *featureState) cleanup() {
	if s.workDir != "" {
		_ = os.RemoveAll(s.workDir)
	}
}

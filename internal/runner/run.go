package runner

import (
	"context"
	"time"

	"shelfscore/internal/config"
	"shelfscore/internal/dataset"
	"shelfscore/internal/match"
	"shelfscore/internal/record"
	"shelfscore/internal/schema"
	"shelfscore/internal/score"
	"shelfscore/internal/spec"
)

// nowFunc is a test seam for timestamps.
var nowFunc = time.Now

// Options configures one scoring run.
type Options struct {
	Config        spec.Config
	TruthPath     string
	GeneratedPath string
}

// Run loads both record collections and scores the generated one against
// the ground truth.
func Run(ctx context.Context, opts Options) (Results, error) {
	reg, err := config.Registry(opts.Config)
	if err != nil {
		return Results{}, err
	}
	gtRecords, err := dataset.Load(ctx, opts.TruthPath, reg)
	if err != nil {
		return Results{}, err
	}
	genRecords, err := dataset.Load(ctx, opts.GeneratedPath, reg)
	if err != nil {
		return Results{}, err
	}
	results, err := RunRecords(opts.Config, gtRecords, genRecords)
	if err != nil {
		return Results{}, err
	}
	results.Inputs.TruthPath = opts.TruthPath
	results.Inputs.GeneratedPath = opts.GeneratedPath
	return results, nil
}

// RunRecords scores in-memory record collections. This is the pure core
// entry point: no I/O, deterministic for identical input apart from the
// run ID and timestamps.
func RunRecords(cfg spec.Config, gtRecords, genRecords []record.Record) (Results, error) {
	reg, err := config.Registry(cfg)
	if err != nil {
		return Results{}, err
	}
	started := nowFunc()

	gtKeys := match.BuildKeys(gtRecords, cfg.Matching.IdentityFields, cfg.Matching.KeyDelimiter)
	genKeys := match.BuildKeys(genRecords, cfg.Matching.IdentityFields, cfg.Matching.KeyDelimiter)
	matchResult := match.Match(gtKeys, genKeys, *cfg.Matching.FuzzyThreshold)

	report, errorRows, err := scoreRun(matchResult, gtRecords, genRecords, reg, cfg)
	if err != nil {
		return Results{}, err
	}

	return Results{
		RunID: NewRunID(started),
		Inputs: InputMetadata{
			TruthRows:     len(gtRecords),
			GeneratedRows: len(genRecords),
		},
		StartedAt:  started,
		FinishedAt: nowFunc(),
		Report:     report,
		Errors:     errorRows,
		DuplicateKeys: DuplicateKeyReport{
			GroundTruth: matchResult.DuplicateGTKeys,
			Generated:   matchResult.DuplicateGenKeys,
		},
	}, nil
}

func scoreRun(
	matchResult match.Result,
	gtRecords, genRecords []record.Record,
	reg *schema.Registry,
	cfg spec.Config,
) (score.Report, []score.ErrorRow, error) {
	return score.Score(matchResult, gtRecords, genRecords, reg.Comparable(), config.Policy(cfg))
}

package config

import (
	"shelfscore/internal/compare"
	"shelfscore/internal/match"
	"shelfscore/internal/spec"
)

// DefaultOutputDir is where score runs are written unless configured.
const DefaultOutputDir = ".shelfscore/runs"

// Normalize fills unset config fields with their documented defaults.
func Normalize(cfg *spec.Config) {
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = DefaultOutputDir
	}
	if cfg.Matching.FuzzyThreshold == nil {
		threshold := match.DefaultFuzzyThreshold
		cfg.Matching.FuzzyThreshold = &threshold
	}
	if len(cfg.Matching.IdentityFields) == 0 {
		cfg.Matching.IdentityFields = append([]string(nil), match.DefaultIdentityFields...)
	}
	if cfg.Matching.KeyDelimiter == "" {
		cfg.Matching.KeyDelimiter = match.DefaultKeyDelimiter
	}
	defaults := compare.DefaultPolicy()
	if cfg.Comparison.PriceTolerance == nil {
		tolerance := defaults.PriceTolerance
		cfg.Comparison.PriceTolerance = &tolerance
	}
	if cfg.Comparison.PriceColumns == nil {
		for key := range defaults.PriceColumns {
			cfg.Comparison.PriceColumns = append(cfg.Comparison.PriceColumns, key)
		}
		sortStrings(cfg.Comparison.PriceColumns)
	}
	if cfg.Comparison.FloatDecimals == nil {
		decimals := defaults.FloatDecimals
		cfg.Comparison.FloatDecimals = &decimals
	}
	if cfg.Comparison.KeywordFields == nil {
		cfg.Comparison.KeywordFields = defaults.KeywordFields
	}
}

// Default returns a fully normalized config with no overrides, used when
// no config file is present.
func Default() spec.Config {
	cfg := spec.Config{Version: 1}
	Normalize(&cfg)
	return cfg
}

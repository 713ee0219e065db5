package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"shelfscore/internal/spec"
)

func validConfig() spec.Config {
	cfg := spec.Config{Version: 1}
	Normalize(&cfg)
	return cfg
}

func TestNormalizeFillsDefaults(t *testing.T) {
	cfg := spec.Config{Version: 1}
	Normalize(&cfg)

	if cfg.Output.Dir != DefaultOutputDir {
		t.Fatalf("expected default output dir, got %q", cfg.Output.Dir)
	}
	if cfg.Matching.FuzzyThreshold == nil || *cfg.Matching.FuzzyThreshold != 0.85 {
		t.Fatalf("expected default threshold 0.85, got %v", cfg.Matching.FuzzyThreshold)
	}
	if len(cfg.Matching.IdentityFields) != 3 || cfg.Matching.IdentityFields[0] != "brand" {
		t.Fatalf("unexpected identity fields: %v", cfg.Matching.IdentityFields)
	}
	if cfg.Matching.KeyDelimiter != " | " {
		t.Fatalf("unexpected delimiter %q", cfg.Matching.KeyDelimiter)
	}
	if cfg.Comparison.PriceTolerance == nil || *cfg.Comparison.PriceTolerance != 0.01 {
		t.Fatalf("unexpected tolerance: %v", cfg.Comparison.PriceTolerance)
	}
	if len(cfg.Comparison.PriceColumns) != 2 {
		t.Fatalf("unexpected price columns: %v", cfg.Comparison.PriceColumns)
	}
	if _, ok := cfg.Comparison.KeywordFields["branded_private_label"]; !ok {
		t.Fatalf("expected default keyword fields, got %v", cfg.Comparison.KeywordFields)
	}
}

func TestNormalizeKeepsOverrides(t *testing.T) {
	threshold := 0.7
	cfg := spec.Config{Version: 1}
	cfg.Matching.FuzzyThreshold = &threshold
	cfg.Matching.IdentityFields = []string{"brand"}
	Normalize(&cfg)

	if *cfg.Matching.FuzzyThreshold != 0.7 {
		t.Fatalf("expected override to survive, got %v", *cfg.Matching.FuzzyThreshold)
	}
	if len(cfg.Matching.IdentityFields) != 1 {
		t.Fatalf("expected override to survive, got %v", cfg.Matching.IdentityFields)
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	cfg := validConfig()
	if err := Validate(&cfg); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateRejectsBadVersion(t *testing.T) {
	cfg := validConfig()
	cfg.Version = 2
	expectIssue(t, &cfg, "version")
}

func TestValidateRejectsOutOfRangeThreshold(t *testing.T) {
	cfg := validConfig()
	threshold := 1.5
	cfg.Matching.FuzzyThreshold = &threshold
	expectIssue(t, &cfg, "matching.fuzzy_threshold")
}

func TestValidateRejectsUnknownIdentityField(t *testing.T) {
	cfg := validConfig()
	cfg.Matching.IdentityFields = []string{"brand", "nonexistent"}
	expectIssue(t, &cfg, "matching.identity_fields")
}

func TestValidateRejectsNonFloatPriceColumn(t *testing.T) {
	cfg := validConfig()
	cfg.Comparison.PriceColumns = []string{"brand"}
	expectIssue(t, &cfg, "comparison.price_columns")
}

func TestValidateRejectsBadSchemaColumn(t *testing.T) {
	cfg := validConfig()
	cfg.Schema.Columns = []spec.ColumnConfig{
		{Key: "brand", Name: "Brand", Type: "text", Role: "ai"},
		{Key: "brand", Name: "Brand again", Type: "text", Role: "ai"},
	}
	expectIssue(t, &cfg, "schema.columns")
}

func expectIssue(t *testing.T, cfg *spec.Config, fieldPrefix string) {
	t.Helper()
	err := Validate(cfg)
	if err == nil {
		t.Fatalf("expected validation error for %s", fieldPrefix)
	}
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	for _, issue := range validationErr.Issues {
		if issue.Field == fieldPrefix || len(issue.Field) > len(fieldPrefix) && issue.Field[:len(fieldPrefix)] == fieldPrefix {
			return
		}
	}
	t.Fatalf("expected issue on %s, got %v", fieldPrefix, validationErr.Issues)
}

func TestLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	content := "version: 1\nmatching:\n  fuzzy_threshold: 0.9\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *cfg.Matching.FuzzyThreshold != 0.9 {
		t.Fatalf("expected threshold override, got %v", *cfg.Matching.FuzzyThreshold)
	}
	if cfg.Output.Dir != DefaultOutputDir {
		t.Fatalf("expected normalized output dir, got %q", cfg.Output.Dir)
	}
}

func TestFindConfigPathSearchesUpward(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(root, ConfigFileName)
	if err := os.WriteFile(path, []byte("version: 1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	found, err := FindConfigPath(nested)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found != path {
		t.Fatalf("expected %q, got %q", path, found)
	}
}

func TestFindConfigPathMissingWrapsNotExist(t *testing.T) {
	_, err := FindConfigPath(t.TempDir())
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist, got %v", err)
	}
}

func TestRegistryAndPolicyFromConfig(t *testing.T) {
	cfg := validConfig()
	reg, err := Registry(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reg.Len() != 32 {
		t.Fatalf("expected default registry, got %d columns", reg.Len())
	}

	cfg.Schema.Columns = []spec.ColumnConfig{
		{Key: "brand", Name: "Brand", Type: "text", Role: "ai"},
	}
	reg, err = Registry(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reg.Len() != 1 {
		t.Fatalf("expected override registry, got %d columns", reg.Len())
	}

	policy := Policy(cfg)
	if policy.PriceTolerance != 0.01 || policy.FloatDecimals != 4 {
		t.Fatalf("unexpected policy: %+v", policy)
	}
	if _, ok := policy.PriceColumns["price_eur"]; !ok {
		t.Fatalf("expected price_eur in policy, got %v", policy.PriceColumns)
	}
}

package config

import (
	"fmt"
	"sort"
	"strings"

	"shelfscore/internal/schema"
	"shelfscore/internal/spec"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

// Validate checks a normalized config for correctness. Schema and policy
// mismatches are hard failures: silently defaulting would mask a real
// contract bug between the record producer and the scorer.
func Validate(cfg *spec.Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Version == 0 {
		add("version", "is required")
	} else if cfg.Version != 1 {
		add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}

	if strings.TrimSpace(cfg.Output.Dir) == "" {
		add("output.dir", "is required")
	}

	columnKeys := map[string]schema.Column{}
	if len(cfg.Schema.Columns) == 0 {
		for _, col := range schema.Default().Columns() {
			columnKeys[col.Key] = col
		}
	} else {
		seen := map[string]struct{}{}
		for i, col := range cfg.Schema.Columns {
			fieldPrefix := fmt.Sprintf("schema.columns[%d]", i)
			key := strings.TrimSpace(col.Key)
			if key == "" {
				add(fieldPrefix+".key", "is required")
			} else if _, exists := seen[key]; exists {
				add("schema.columns.key", fmt.Sprintf("duplicate key %q", key))
			} else {
				seen[key] = struct{}{}
			}
			if strings.TrimSpace(col.Name) == "" {
				add(fieldPrefix+".name", "is required")
			}
			columnType, err := schema.ParseType(col.Type)
			if err != nil {
				add(fieldPrefix+".type", err.Error())
			}
			role, err := schema.ParseRole(col.Role)
			if err != nil {
				add(fieldPrefix+".role", err.Error())
			}
			if key != "" {
				columnKeys[key] = schema.Column{Key: key, Name: col.Name, Type: columnType, Role: role}
			}
		}
	}

	if threshold := cfg.Matching.FuzzyThreshold; threshold != nil {
		if *threshold < 0 || *threshold > 1 {
			add("matching.fuzzy_threshold", "must be between 0 and 1")
		}
	}
	if len(cfg.Matching.IdentityFields) == 0 {
		add("matching.identity_fields", "must include at least one entry")
	}
	for i, field := range cfg.Matching.IdentityFields {
		field = strings.TrimSpace(field)
		if field == "" {
			add(fmt.Sprintf("matching.identity_fields[%d]", i), "is required")
			continue
		}
		if _, ok := columnKeys[field]; !ok {
			add(fmt.Sprintf("matching.identity_fields[%d]", i), fmt.Sprintf("unknown column %q", field))
		}
	}
	if cfg.Matching.KeyDelimiter == "" {
		add("matching.key_delimiter", "is required")
	}

	if tolerance := cfg.Comparison.PriceTolerance; tolerance != nil && *tolerance < 0 {
		add("comparison.price_tolerance", "must be >= 0")
	}
	if decimals := cfg.Comparison.FloatDecimals; decimals != nil && *decimals < 0 {
		add("comparison.float_decimals", "must be >= 0")
	}
	for i, key := range cfg.Comparison.PriceColumns {
		column, ok := columnKeys[key]
		if !ok {
			add(fmt.Sprintf("comparison.price_columns[%d]", i), fmt.Sprintf("unknown column %q", key))
			continue
		}
		if column.Type != schema.TypeFloat {
			add(fmt.Sprintf("comparison.price_columns[%d]", i), fmt.Sprintf("column %q is not a float column", key))
		}
	}
	keywordKeys := make([]string, 0, len(cfg.Comparison.KeywordFields))
	for key := range cfg.Comparison.KeywordFields {
		keywordKeys = append(keywordKeys, key)
	}
	sort.Strings(keywordKeys)
	for _, key := range keywordKeys {
		column, ok := columnKeys[key]
		if !ok {
			add("comparison.keyword_fields."+key, "unknown column")
			continue
		}
		if column.Type != schema.TypeText {
			add("comparison.keyword_fields."+key, "is not a text column")
		}
		for groupIndex, group := range cfg.Comparison.KeywordFields[key] {
			if len(group) == 0 {
				add(fmt.Sprintf("comparison.keyword_fields.%s[%d]", key, groupIndex), "must include at least one keyword")
			}
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

func sortStrings(values []string) {
	sort.Strings(values)
}

package config

import (
	"fmt"

	"shelfscore/internal/compare"
	"shelfscore/internal/schema"
	"shelfscore/internal/spec"
)

// Registry builds the column registry from a validated config. An empty
// schema override keeps the default shelf-analyzer columns.
func Registry(cfg spec.Config) (*schema.Registry, error) {
	if len(cfg.Schema.Columns) == 0 {
		return schema.Default(), nil
	}
	columns := make([]schema.Column, 0, len(cfg.Schema.Columns))
	for _, col := range cfg.Schema.Columns {
		columns = append(columns, schema.Column{
			Key:  col.Key,
			Name: col.Name,
			Type: schema.Type(col.Type),
			Role: schema.Role(col.Role),
		})
	}
	reg, err := schema.NewRegistry(columns)
	if err != nil {
		return nil, fmt.Errorf("build registry: %w", err)
	}
	return reg, nil
}

// Policy builds the field-comparison policy from a validated config.
func Policy(cfg spec.Config) compare.Policy {
	policy := compare.Policy{
		PriceTolerance: *cfg.Comparison.PriceTolerance,
		PriceColumns:   make(map[string]struct{}, len(cfg.Comparison.PriceColumns)),
		FloatDecimals:  *cfg.Comparison.FloatDecimals,
		KeywordFields:  cfg.Comparison.KeywordFields,
	}
	for _, key := range cfg.Comparison.PriceColumns {
		policy.PriceColumns[key] = struct{}{}
	}
	return policy
}

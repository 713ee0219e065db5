package schema

import (
	"fmt"
	"strings"
)

// Type tags the value domain of a column.
type Type string

const (
	TypeText    Type = "text"
	TypeInteger Type = "integer"
	TypeFloat   Type = "float"
)

// Role describes where a column's value comes from.
type Role string

const (
	// RoleMetadata columns are supplied by the operator (country, retailer,
	// store name). They are never scored.
	RoleMetadata Role = "metadata"
	// RoleAI columns are produced by the analysis pipeline and are scored.
	RoleAI Role = "ai"
	// RoleFormula columns are computed from other columns. Scoring them
	// would double-count errors already captured by their inputs.
	RoleFormula Role = "formula"
)

// ParseType validates a column type tag.
func ParseType(value string) (Type, error) {
	switch Type(value) {
	case TypeText, TypeInteger, TypeFloat:
		return Type(value), nil
	}
	return "", fmt.Errorf("unknown column type %q", value)
}

// ParseRole validates a column role tag.
func ParseRole(value string) (Role, error) {
	switch Role(value) {
	case RoleMetadata, RoleAI, RoleFormula:
		return Role(value), nil
	}
	return "", fmt.Errorf("unknown column role %q", value)
}

// Column defines one column of the record schema.
type Column struct {
	Key  string
	Name string
	Type Type
	Role Role
}

// Registry is the fixed set of column definitions for a comparison run.
// It is an immutable value passed into the scoring entry points.
type Registry struct {
	columns []Column
	byKey   map[string]int
}

// NewRegistry builds a registry from column definitions.
func NewRegistry(columns []Column) (*Registry, error) {
	reg := &Registry{
		columns: make([]Column, 0, len(columns)),
		byKey:   make(map[string]int, len(columns)),
	}
	for i, col := range columns {
		key := strings.TrimSpace(col.Key)
		if key == "" {
			return nil, fmt.Errorf("column %d: key is required", i)
		}
		if _, exists := reg.byKey[key]; exists {
			return nil, fmt.Errorf("column %d: duplicate key %q", i, key)
		}
		if _, err := ParseType(string(col.Type)); err != nil {
			return nil, fmt.Errorf("column %q: %w", key, err)
		}
		if _, err := ParseRole(string(col.Role)); err != nil {
			return nil, fmt.Errorf("column %q: %w", key, err)
		}
		col.Key = key
		reg.byKey[key] = len(reg.columns)
		reg.columns = append(reg.columns, col)
	}
	return reg, nil
}

// Columns returns all columns in schema order.
func (r *Registry) Columns() []Column {
	out := make([]Column, len(r.columns))
	copy(out, r.columns)
	return out
}

// Lookup finds a column definition by key.
func (r *Registry) Lookup(key string) (Column, bool) {
	idx, ok := r.byKey[key]
	if !ok {
		return Column{}, false
	}
	return r.columns[idx], true
}

// Comparable returns the columns eligible for scoring, in schema order.
// Metadata and formula columns are excluded.
func (r *Registry) Comparable() []Column {
	out := make([]Column, 0, len(r.columns))
	for _, col := range r.columns {
		if col.Role == RoleAI {
			out = append(out, col)
		}
	}
	return out
}

// Len returns the number of columns.
func (r *Registry) Len() int {
	return len(r.columns)
}

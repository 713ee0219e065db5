package match

import (
	"strings"

	"shelfscore/internal/record"
)

// DefaultIdentityFields are the columns that identify a SKU.
var DefaultIdentityFields = []string{"brand", "product_name", "packaging_size_ml"}

// DefaultKeyDelimiter separates identity fields inside a composite key.
// The surrounding spaces keep a trailing field boundary unambiguous after
// per-field trimming.
const DefaultKeyDelimiter = " | "

// BuildKey derives the normalized composite identity key for a record.
// Each identity field is trimmed and lowercased; missing or null fields
// become empty segments. The result is deterministic for identical input.
func BuildKey(rec record.Record, identityFields []string, delimiter string) string {
	parts := make([]string, 0, len(identityFields))
	for _, field := range identityFields {
		value := rec.Field(field)
		if value.IsNull() {
			parts = append(parts, "")
			continue
		}
		parts = append(parts, strings.ToLower(strings.TrimSpace(value.String())))
	}
	return strings.Join(parts, delimiter)
}

// BuildKeys derives composite keys for every record, preserving order.
func BuildKeys(records []record.Record, identityFields []string, delimiter string) []string {
	keys := make([]string, len(records))
	for i, rec := range records {
		keys[i] = BuildKey(rec, identityFields, delimiter)
	}
	return keys
}

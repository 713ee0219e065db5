package record

import (
	"math"
	"strconv"
	"strings"

	"shelfscore/internal/schema"
)

// Record maps column keys to cell values. Records are treated as
// immutable inputs; a missing key is an implicit null.
type Record map[string]Value

// Field returns the value for a column key, or null when absent.
func (r Record) Field(key string) Value {
	if r == nil {
		return Null()
	}
	value, ok := r[key]
	if !ok {
		return Null()
	}
	return value
}

// Coerce converts a raw cell value to the column's declared type.
// Unparseable numerics degrade to null; only an unknown type tag is an
// error, since that indicates a schema mismatch rather than dirty data.
func Coerce(v Value, columnType schema.Type) (Value, error) {
	switch columnType {
	case schema.TypeText:
		return coerceText(v), nil
	case schema.TypeInteger:
		return coerceInteger(v), nil
	case schema.TypeFloat:
		return coerceFloat(v), nil
	}
	_, err := schema.ParseType(string(columnType))
	return Null(), err
}

// FromCell converts a raw cell text to a typed value per the column type.
func FromCell(text string, columnType schema.Type) (Value, error) {
	if IsNullText(text) {
		return Null(), nil
	}
	return Coerce(Text(text), columnType)
}

func coerceText(v Value) Value {
	switch v.kind {
	case KindNull:
		return Null()
	case KindText:
		trimmed := strings.TrimSpace(v.text)
		if IsNullText(trimmed) {
			return Null()
		}
		return Text(trimmed)
	default:
		return Text(v.String())
	}
}

func coerceInteger(v Value) Value {
	switch v.kind {
	case KindNull:
		return Null()
	case KindInteger:
		return v
	case KindFloat:
		return Integer(int64(v.float))
	default:
		text := strings.TrimSpace(v.text)
		if IsNullText(text) {
			return Null()
		}
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return Integer(i)
		}
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return Integer(int64(f))
		}
		return Null()
	}
}

func coerceFloat(v Value) Value {
	switch v.kind {
	case KindNull:
		return Null()
	case KindFloat:
		return v
	case KindInteger:
		return Float(float64(v.integer))
	default:
		text := strings.TrimSpace(v.text)
		if IsNullText(text) {
			return Null()
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Null()
		}
		return Float(f)
	}
}

// Round rounds a float to the given number of decimal places.
func Round(f float64, decimals int) float64 {
	shift := math.Pow(10, float64(decimals))
	return math.Round(f*shift) / shift
}

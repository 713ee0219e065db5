package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the concrete type stored in a Value.
type Kind int

const (
	KindNull Kind = iota
	KindText
	KindInteger
	KindFloat
)

// Value is a closed sum over the scalar types a record cell can hold.
// Cells arrive from parsed model output or spreadsheet readers with
// varying runtime types; Value pins them down at the boundary so the
// comparison logic never does runtime type inspection.
type Value struct {
	kind    Kind
	text    string
	integer int64
	float   float64
}

// Null returns the null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Text returns a text value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Integer returns an integer value.
func Integer(i int64) Value {
	return Value{kind: KindInteger, integer: i}
}

// Float returns a float value.
func Float(f float64) Value {
	return Value{kind: KindFloat, float: f}
}

// Kind returns the value's kind.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// TextValue returns the text payload if the value is text.
func (v Value) TextValue() (string, bool) {
	return v.text, v.kind == KindText
}

// IntValue returns the integer payload if the value is an integer.
func (v Value) IntValue() (int64, bool) {
	return v.integer, v.kind == KindInteger
}

// FloatValue returns the float payload if the value is a float.
func (v Value) FloatValue() (float64, bool) {
	return v.float, v.kind == KindFloat
}

// String renders the value for display and error tables.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindInteger:
		return strconv.FormatInt(v.integer, 10)
	case KindFloat:
		return strconv.FormatFloat(v.float, 'f', -1, 64)
	default:
		return ""
	}
}

// MarshalJSON encodes the value as the underlying JSON scalar.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindText:
		return json.Marshal(v.text)
	case KindInteger:
		return json.Marshal(v.integer)
	case KindFloat:
		return json.Marshal(v.float)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes a JSON scalar into the typed representation.
func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty json value")
	}
	switch trimmed[0] {
	case 'n':
		*v = Null()
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*v = Text(s)
		return nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(trimmed, &b); err != nil {
			return err
		}
		*v = Text(strconv.FormatBool(b))
		return nil
	default:
		if !bytes.ContainsAny(trimmed, ".eE") {
			var i int64
			if err := json.Unmarshal(trimmed, &i); err == nil {
				*v = Integer(i)
				return nil
			}
		}
		var f float64
		if err := json.Unmarshal(trimmed, &f); err != nil {
			return fmt.Errorf("parse json value %q: %w", string(trimmed), err)
		}
		*v = Float(f)
		return nil
	}
}

// nullMarkers are cell texts treated as missing values, matching the
// spreadsheet reader's NA vocabulary.
var nullMarkers = map[string]struct{}{
	"":     {},
	"na":   {},
	"n/a":  {},
	"none": {},
	"null": {},
}

// IsNullText reports whether a raw cell text denotes a missing value.
func IsNullText(s string) bool {
	_, ok := nullMarkers[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

package compare

import (
	"math"
	"strings"

	"shelfscore/internal/record"
	"shelfscore/internal/schema"
)

// FieldResult is the outcome of comparing one column of a matched pair.
// BothNull implies Match: mutual unknown counts as agreement, never as
// an error.
type FieldResult struct {
	BothNull bool
	Match    bool
}

// Field normalizes both values per the column type and decides equality.
// Data-quality issues (unparseable numbers, missing cells) degrade to
// null and are absorbed into the result; only an unknown column type is
// surfaced as an error.
func Field(gt, gen record.Value, column schema.Column, policy Policy) (FieldResult, error) {
	gtNorm, err := normalize(gt, column, policy)
	if err != nil {
		return FieldResult{}, err
	}
	genNorm, err := normalize(gen, column, policy)
	if err != nil {
		return FieldResult{}, err
	}

	if gtNorm.IsNull() && genNorm.IsNull() {
		return FieldResult{BothNull: true, Match: true}, nil
	}
	if gtNorm.IsNull() || genNorm.IsNull() {
		return FieldResult{}, nil
	}

	switch column.Type {
	case schema.TypeText:
		return FieldResult{Match: textEqual(gtNorm, genNorm, column.Key, policy)}, nil
	case schema.TypeInteger:
		gtInt, _ := gtNorm.IntValue()
		genInt, _ := genNorm.IntValue()
		return FieldResult{Match: gtInt == genInt}, nil
	default:
		gtFloat, _ := gtNorm.FloatValue()
		genFloat, _ := genNorm.FloatValue()
		if policy.isPriceColumn(column.Key) {
			return FieldResult{Match: math.Abs(gtFloat-genFloat) <= policy.PriceTolerance}, nil
		}
		return FieldResult{Match: gtFloat == genFloat}, nil
	}
}

// normalize coerces a value to the column type and applies the
// type-specific cleanup used for equality decisions.
func normalize(v record.Value, column schema.Column, policy Policy) (record.Value, error) {
	coerced, err := record.Coerce(v, column.Type)
	if err != nil {
		return record.Null(), err
	}
	if coerced.IsNull() {
		return coerced, nil
	}
	switch column.Type {
	case schema.TypeText:
		text, _ := coerced.TextValue()
		text = strings.ToLower(strings.TrimSpace(text))
		if text == "" {
			return record.Null(), nil
		}
		return record.Text(text), nil
	case schema.TypeFloat:
		f, _ := coerced.FloatValue()
		return record.Float(record.Round(f, policy.FloatDecimals)), nil
	default:
		return coerced, nil
	}
}

// textEqual compares normalized text values, applying the keyword policy
// for named fields.
func textEqual(gt, gen record.Value, columnKey string, policy Policy) bool {
	gtText, _ := gt.TextValue()
	genText, _ := gen.TextValue()
	groups, ok := policy.keywordGroups(columnKey)
	if !ok {
		return gtText == genText
	}
	if gtText == genText {
		return true
	}
	for _, keywords := range groups {
		if containsAny(gtText, keywords) != containsAny(genText, keywords) {
			return false
		}
	}
	return true
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

package compare

// Policy carries the per-run comparison settings beyond generic type
// equality.
type Policy struct {
	// PriceTolerance is the absolute tolerance for price-like float
	// columns. Price representations are not bit-identical after currency
	// conversion, so exact float equality under-scores them.
	PriceTolerance float64
	// PriceColumns names the float columns compared with PriceTolerance.
	PriceColumns map[string]struct{}
	// FloatDecimals is the rounding applied to float values before
	// comparison, to strip floating-point noise.
	FloatDecimals int
	// KeywordFields maps a text column key to keyword concept groups.
	// Each group encodes one boolean condition; two free-text values
	// match when they agree on every condition. This covers fields like
	// the private-label indicator, where both sides describe the same
	// categorical concept in different words.
	KeywordFields map[string][][]string
}

// DefaultPolicy returns the comparison policy for the shelf-analyzer
// schema.
func DefaultPolicy() Policy {
	return Policy{
		PriceTolerance: 0.01,
		PriceColumns: map[string]struct{}{
			"price_local": {},
			"price_eur":   {},
		},
		FloatDecimals: 4,
		KeywordFields: map[string][][]string{
			"branded_private_label": {
				{"branded private label", "b-pl", "branded own label"},
				{"private label", "own brand", "store brand", "pl"},
			},
		},
	}
}

func (p Policy) isPriceColumn(key string) bool {
	_, ok := p.PriceColumns[key]
	return ok
}

func (p Policy) keywordGroups(key string) ([][]string, bool) {
	groups, ok := p.KeywordFields[key]
	return groups, ok
}

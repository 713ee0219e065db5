package spec

type Config struct {
	Version    int              `yaml:"version"`
	Output     OutputConfig     `yaml:"output"`
	Matching   MatchingConfig   `yaml:"matching"`
	Comparison ComparisonConfig `yaml:"comparison"`
	Schema     SchemaConfig     `yaml:"schema"`
}

type OutputConfig struct {
	Dir string `yaml:"dir"`
}

type MatchingConfig struct {
	FuzzyThreshold *float64 `yaml:"fuzzy_threshold"`
	IdentityFields []string `yaml:"identity_fields"`
	KeyDelimiter   string   `yaml:"key_delimiter"`
}

type ComparisonConfig struct {
	PriceTolerance *float64              `yaml:"price_tolerance"`
	PriceColumns   []string              `yaml:"price_columns"`
	FloatDecimals  *int                  `yaml:"float_decimals"`
	KeywordFields  map[string][][]string `yaml:"keyword_fields"`
}

// SchemaConfig overrides the built-in column registry. An empty column
// list keeps the default shelf-analyzer schema.
type SchemaConfig struct {
	Columns []ColumnConfig `yaml:"columns"`
}

type ColumnConfig struct {
	Key  string `yaml:"key"`
	Name string `yaml:"name"`
	Type string `yaml:"type"`
	Role string `yaml:"role"`
}

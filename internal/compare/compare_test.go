package compare

import (
	"testing"

	"shelfscore/internal/record"
	"shelfscore/internal/schema"
)

func textColumn(key string) schema.Column {
	return schema.Column{Key: key, Name: key, Type: schema.TypeText, Role: schema.RoleAI}
}

func floatColumn(key string) schema.Column {
	return schema.Column{Key: key, Name: key, Type: schema.TypeFloat, Role: schema.RoleAI}
}

func mustField(t *testing.T, gt, gen record.Value, column schema.Column) FieldResult {
	t.Helper()
	result, err := Field(gt, gen, column, DefaultPolicy())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return result
}

func TestFieldTextCaseAndWhitespaceInsensitive(t *testing.T) {
	result := mustField(t, record.Text("  Coca-Cola  "), record.Text("coca-cola"), textColumn("brand"))
	if !result.Match || result.BothNull {
		t.Fatalf("expected match, got %+v", result)
	}
}

func TestFieldBothNullSkipped(t *testing.T) {
	result := mustField(t, record.Null(), record.Text("  "), textColumn("flavour"))
	if !result.BothNull || !result.Match {
		t.Fatalf("expected both-null result, got %+v", result)
	}
}

func TestFieldOneNullIsWrong(t *testing.T) {
	result := mustField(t, record.Text("Cherry"), record.Null(), textColumn("flavour"))
	if result.Match || result.BothNull {
		t.Fatalf("expected mismatch, got %+v", result)
	}
}

func TestFieldIntegerCrossTypeEquality(t *testing.T) {
	column := schema.Column{Key: "facings", Name: "Facings", Type: schema.TypeInteger, Role: schema.RoleAI}
	result := mustField(t, record.Text("4"), record.Integer(4), column)
	if !result.Match {
		t.Fatalf("expected 4 == \"4\", got %+v", result)
	}
	result = mustField(t, record.Float(4.9), record.Integer(4), column)
	if !result.Match {
		t.Fatalf("expected truncated 4.9 to equal 4, got %+v", result)
	}
}

func TestFieldPriceTolerance(t *testing.T) {
	column := floatColumn("price_eur")
	result := mustField(t, record.Float(1.50), record.Float(1.505), column)
	if !result.Match {
		t.Fatalf("expected 1.50 vs 1.505 within tolerance, got %+v", result)
	}
	result = mustField(t, record.Float(1.50), record.Float(1.52), column)
	if result.Match {
		t.Fatalf("expected 1.50 vs 1.52 outside tolerance, got %+v", result)
	}
}

func TestFieldPlainFloatExactAfterRounding(t *testing.T) {
	column := floatColumn("shelf_share_pct")
	result := mustField(t, record.Float(12.34560001), record.Float(12.3456), column)
	if !result.Match {
		t.Fatalf("expected rounded floats to match, got %+v", result)
	}
	result = mustField(t, record.Float(12.3456), record.Float(12.3457), column)
	if result.Match {
		t.Fatalf("expected distinct rounded floats to differ, got %+v", result)
	}
}

func TestFieldKeywordConceptAgreement(t *testing.T) {
	column := textColumn("branded_private_label")
	result := mustField(t, record.Text("Branded Private Label"), record.Text("B-PL"), column)
	if !result.Match {
		t.Fatalf("expected concept agreement, got %+v", result)
	}
	result = mustField(t, record.Text("Branded Private Label"), record.Text("Private Label"), column)
	if result.Match {
		t.Fatalf("expected concept disagreement, got %+v", result)
	}
	result = mustField(t, record.Text("Branded"), record.Text("Yes, branded"), column)
	if !result.Match {
		t.Fatalf("expected non-keyword texts agreeing on all conditions to match, got %+v", result)
	}
}

func TestFieldUnparseableNumericDegradesToNull(t *testing.T) {
	column := floatColumn("price_eur")
	result := mustField(t, record.Text("1,49"), record.Text("not a price"), column)
	if !result.BothNull {
		t.Fatalf("expected mutual null after failed parses, got %+v", result)
	}
}

func TestFieldUnknownTypeIsError(t *testing.T) {
	column := schema.Column{Key: "x", Name: "x", Type: "varchar", Role: schema.RoleAI}
	if _, err := Field(record.Text("a"), record.Text("b"), column, DefaultPolicy()); err == nil {
		t.Fatalf("expected error for unknown column type")
	}
}

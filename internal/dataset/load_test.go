package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"shelfscore/internal/schema"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeFile(t, "truth.csv",
		"brand,product_name,packaging_size_ml,price_eur\n"+
			"Acme,Orange Juice,500,1.49\n"+
			"Bolt,Cola,330,0.99\n")

	records, err := Load(context.Background(), path, schema.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if text, _ := records[0].Field("brand").TextValue(); text != "Acme" {
		t.Fatalf("unexpected brand %v", records[0].Field("brand"))
	}
	if i, _ := records[0].Field("packaging_size_ml").IntValue(); i != 500 {
		t.Fatalf("unexpected size %v", records[0].Field("packaging_size_ml"))
	}
	if f, _ := records[0].Field("price_eur").FloatValue(); f != 1.49 {
		t.Fatalf("unexpected price %v", records[0].Field("price_eur"))
	}
}

func TestLoadCSVDisplayNameHeaders(t *testing.T) {
	reg := schema.Default()
	brand, _ := reg.Lookup("brand")
	path := writeFile(t, "truth.csv", brand.Name+"\nAcme\n")

	records, err := Load(context.Background(), path, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if text, _ := records[0].Field("brand").TextValue(); text != "Acme" {
		t.Fatalf("unexpected brand %v", records[0].Field("brand"))
	}
}

func TestLoadCSVNullMarkersAndBlankRows(t *testing.T) {
	path := writeFile(t, "truth.csv",
		"brand,flavor\n"+
			"Acme,NA\n"+
			",\n"+
			"Bolt,Cherry\n")

	records, err := Load(context.Background(), path, schema.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected blank row to be dropped, got %d records", len(records))
	}
	if !records[0].Field("flavor").IsNull() {
		t.Fatalf("expected NA to read as null, got %v", records[0].Field("flavor"))
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "generated.json",
		`[{"brand":"Acme","product_name":"Juice","packaging_size_ml":500,"price_eur":1.49}]`)

	records, err := Load(context.Background(), path, schema.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if i, _ := records[0].Field("packaging_size_ml").IntValue(); i != 500 {
		t.Fatalf("unexpected size %v", records[0].Field("packaging_size_ml"))
	}
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	path := writeFile(t, "truth.xlsx", "not a real workbook")
	if _, err := Load(context.Background(), path, schema.Default()); err == nil {
		t.Fatalf("expected unsupported format error")
	}
}

func TestLoadRejectsUnrecognizedHeaders(t *testing.T) {
	path := writeFile(t, "truth.csv", "foo,bar\n1,2\n")
	if _, err := Load(context.Background(), path, schema.Default()); err == nil {
		t.Fatalf("expected no recognisable headers error")
	}
}

package schema

import (
	"strings"
	"testing"
)

func TestNewRegistryRejectsDuplicateKeys(t *testing.T) {
	_, err := NewRegistry([]Column{
		{Key: "brand", Name: "Brand", Type: TypeText, Role: RoleAI},
		{Key: "brand", Name: "Brand again", Type: TypeText, Role: RoleAI},
	})
	if err == nil {
		t.Fatalf("expected duplicate key error")
	}
	if !strings.Contains(err.Error(), "duplicate key") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewRegistryRejectsUnknownTags(t *testing.T) {
	_, err := NewRegistry([]Column{
		{Key: "brand", Name: "Brand", Type: "varchar", Role: RoleAI},
	})
	if err == nil {
		t.Fatalf("expected unknown type error")
	}

	_, err = NewRegistry([]Column{
		{Key: "brand", Name: "Brand", Type: TypeText, Role: "derived"},
	})
	if err == nil {
		t.Fatalf("expected unknown role error")
	}
}

func TestComparableExcludesMetadataAndFormula(t *testing.T) {
	reg, err := NewRegistry([]Column{
		{Key: "country", Name: "Country", Type: TypeText, Role: RoleMetadata},
		{Key: "brand", Name: "Brand", Type: TypeText, Role: RoleAI},
		{Key: "price_per_liter_eur", Name: "Price per liter (EUR)", Type: TypeFloat, Role: RoleFormula},
		{Key: "facings", Name: "Facings", Type: TypeInteger, Role: RoleAI},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	comparable := reg.Comparable()
	if len(comparable) != 2 {
		t.Fatalf("expected 2 comparable columns, got %d", len(comparable))
	}
	if comparable[0].Key != "brand" || comparable[1].Key != "facings" {
		t.Fatalf("unexpected comparable order: %v", comparable)
	}
}

func TestDefaultRegistry(t *testing.T) {
	reg := Default()
	if reg.Len() != 32 {
		t.Fatalf("expected 32 columns, got %d", reg.Len())
	}

	col, ok := reg.Lookup("branded_private_label")
	if !ok {
		t.Fatalf("expected branded_private_label column")
	}
	if col.Role != RoleAI || col.Type != TypeText {
		t.Fatalf("unexpected column definition: %+v", col)
	}

	if col, _ := reg.Lookup("photo"); col.Role != RoleMetadata {
		t.Fatalf("expected photo to be metadata, got %s", col.Role)
	}
	if col, _ := reg.Lookup("price_per_liter_eur"); col.Role != RoleFormula {
		t.Fatalf("expected price_per_liter_eur to be formula, got %s", col.Role)
	}
}

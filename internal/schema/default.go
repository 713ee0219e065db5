package schema

// Default returns the shelf-analyzer output schema: 32 columns in the
// exact order they appear in the generated spreadsheet.
func Default() *Registry {
	reg, err := NewRegistry(defaultColumns())
	if err != nil {
		panic("schema: default registry invalid: " + err.Error())
	}
	return reg
}

func defaultColumns() []Column {
	return []Column{
		{Key: "country", Name: "Country", Type: TypeText, Role: RoleMetadata},
		{Key: "city", Name: "City", Type: TypeText, Role: RoleMetadata},
		{Key: "retailer", Name: "Retailer", Type: TypeText, Role: RoleMetadata},
		{Key: "store_format", Name: "Store Format", Type: TypeText, Role: RoleMetadata},
		{Key: "store_name", Name: "Store Name", Type: TypeText, Role: RoleMetadata},
		{Key: "photo", Name: "Photo", Type: TypeText, Role: RoleMetadata},
		{Key: "shelf_location", Name: "Shelf Location", Type: TypeText, Role: RoleMetadata},
		{Key: "shelf_levels", Name: "Shelf Levels", Type: TypeInteger, Role: RoleAI},
		{Key: "shelf_level", Name: "Shelf Level", Type: TypeText, Role: RoleAI},
		{Key: "product_type", Name: "Product Type", Type: TypeText, Role: RoleAI},
		{Key: "branded_private_label", Name: "Branded/Private Label", Type: TypeText, Role: RoleAI},
		{Key: "brand", Name: "Brand", Type: TypeText, Role: RoleAI},
		{Key: "sub_brand", Name: "Sub-brand", Type: TypeText, Role: RoleAI},
		{Key: "product_name", Name: "Product Name", Type: TypeText, Role: RoleAI},
		{Key: "flavor", Name: "Flavor", Type: TypeText, Role: RoleAI},
		{Key: "facings", Name: "Facings", Type: TypeInteger, Role: RoleAI},
		{Key: "price_local", Name: "Price (Local Currency)", Type: TypeFloat, Role: RoleAI},
		{Key: "currency", Name: "Currency", Type: TypeText, Role: RoleMetadata},
		{Key: "price_eur", Name: "Price (EUR)", Type: TypeFloat, Role: RoleAI},
		{Key: "packaging_size_ml", Name: "Packaging Size (ml)", Type: TypeInteger, Role: RoleAI},
		{Key: "price_per_liter_eur", Name: "Price per Liter (EUR)", Type: TypeFloat, Role: RoleFormula},
		{Key: "need_state", Name: "Need State", Type: TypeText, Role: RoleAI},
		{Key: "juice_extraction_method", Name: "Juice Extraction Method", Type: TypeText, Role: RoleAI},
		{Key: "processing_method", Name: "Processing Method", Type: TypeText, Role: RoleAI},
		{Key: "hpp_treatment", Name: "HPP Treatment", Type: TypeText, Role: RoleAI},
		{Key: "packaging_type", Name: "Packaging Type", Type: TypeText, Role: RoleAI},
		{Key: "claims", Name: "Claims", Type: TypeText, Role: RoleAI},
		{Key: "bonus_promotions", Name: "Bonus/Promotions", Type: TypeText, Role: RoleAI},
		{Key: "stock_status", Name: "Stock Status", Type: TypeText, Role: RoleAI},
		{Key: "est_linear_meters", Name: "Est. Linear Meters", Type: TypeFloat, Role: RoleAI},
		{Key: "fridge_number", Name: "Fridge Number", Type: TypeText, Role: RoleAI},
		{Key: "confidence_score", Name: "Confidence Score", Type: TypeInteger, Role: RoleAI},
	}
}

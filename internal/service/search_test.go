package service

import (
	"testing"

	"observatoire/internal/model"
)

func TestMergeFiltersIntentOnly(t *testing.T) {
	rental := model.Rental
	intent := model.QueryIntent{
		Budget:          int64Ptr(2_000_000),
		Bedrooms:        intPtr(3),
		City:            strPtr("Dakar"),
		PropertyType:    strPtr("Appartement"),
		TransactionType: &rental,
	}

	merged := MergeFilters(nil, intent)

	if merged.PriceMax == nil || *merged.PriceMax != 2_000_000 {
		t.Errorf("PriceMax = %v; want 2000000 (budget becomes ceiling)", merged.PriceMax)
	}
	if merged.Bedrooms == nil || *merged.Bedrooms != 3 {
		t.Errorf("Bedrooms = %v; want 3", merged.Bedrooms)
	}
	if merged.City == nil || *merged.City != "Dakar" {
		t.Errorf("City = %v; want Dakar", merged.City)
	}
	if merged.TransactionType == nil || *merged.TransactionType != model.Rental {
		t.Errorf("TransactionType = %v; want Rental", merged.TransactionType)
	}
}

func TestMergeFiltersExplicitWins(t *testing.T) {
	rental := model.Rental
	sale := model.Sale

	intent := model.QueryIntent{
		Budget:          int64Ptr(2_000_000),
		City:            strPtr("Dakar"),
		TransactionType: &rental,
	}
	explicit := &model.SearchFilters{
		City:            strPtr("Thiès"),
		PriceMax:        floatPtr(5_000_000),
		TransactionType: &sale,
		Source:          strPtr(model.SourceExpatDakar),
	}

	merged := MergeFilters(explicit, intent)

	if *merged.City != "Thiès" {
		t.Errorf("City = %q; want explicit Thiès", *merged.City)
	}
	if *merged.PriceMax != 5_000_000 {
		t.Errorf("PriceMax = %v; want explicit 5000000", *merged.PriceMax)
	}
	if *merged.TransactionType != model.Sale {
		t.Errorf("TransactionType = %v; want explicit Sale", *merged.TransactionType)
	}
	if merged.Source == nil || *merged.Source != model.SourceExpatDakar {
		t.Errorf("Source = %v; want expatdakar", merged.Source)
	}
}

func TestHasStructuredFilters(t *testing.T) {
	if hasStructuredFilters(nil) {
		t.Error("nil filters reported as structured")
	}
	if hasStructuredFilters(&model.SearchFilters{}) {
		t.Error("empty filters reported as structured")
	}

	rental := model.Rental
	if hasStructuredFilters(&model.SearchFilters{TransactionType: &rental}) {
		t.Error("transaction type alone must not count as structured")
	}
	if !hasStructuredFilters(&model.SearchFilters{City: strPtr("Dakar")}) {
		t.Error("city filter not reported as structured")
	}
}

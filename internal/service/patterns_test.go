package service

import (
	"testing"

	"observatoire/internal/model"
)

func TestCategoryWeights(t *testing.T) {
	want := map[Category]float64{
		CategoryExplicit:      10,
		CategoryTemporal:      8,
		CategoryContext:       5,
		CategoryPropertyTypes: 3,
		CategoryTransaction:   7,
		CategoryLegal:         7,
		CategoryInvestment:    2,
	}

	lib := NewPatternLibrary()
	for cat, weight := range want {
		if got := lib.Weight(cat); got != weight {
			t.Errorf("Weight(%s) = %v; want %v", cat, got, weight)
		}
	}
}

func TestWordBoundaryMatching(t *testing.T) {
	lib := NewPatternLibrary()

	// "colocation" contains "location" but the explicit rental pattern is
	// word-boundary anchored, so only the context category should fire.
	c := NewStatusClassifier(lib)
	_, breakdown := c.Classify(signalWithTitle("Colocation disponible"))

	if _, ok := breakdown.Rental[string(CategoryExplicit)]; ok {
		t.Error("explicit category fired on substring match inside 'colocation'")
	}
	if _, ok := breakdown.Rental[string(CategoryContext)]; !ok {
		t.Error("context category did not fire on 'colocation'")
	}
}

func TestCanonicalDictionaries(t *testing.T) {
	lib := NewPatternLibrary()

	if city, ok := lib.CanonicalCity("un studio a guediawaye"); !ok || city != "Guédiawaye" {
		t.Errorf("CanonicalCity = %q, %v; want Guédiawaye, true", city, ok)
	}
	if _, ok := lib.CanonicalCity("quelque part au soleil"); ok {
		t.Error("CanonicalCity matched an unknown city")
	}

	if pt, ok := lib.CanonicalPropertyType("un appart en ville"); !ok || pt != "Appartement" {
		t.Errorf("CanonicalPropertyType = %q, %v; want Appartement, true", pt, ok)
	}
}

func TestLandAndRoomSets(t *testing.T) {
	lib := NewPatternLibrary()

	for _, s := range []string{"terrain", "terrain agricole", "parcelle viabilisee", "lot", "lotissement", "land"} {
		if !lib.IsLandType(s) {
			t.Errorf("IsLandType(%q) = false; want true", s)
		}
	}
	for _, s := range []string{"villa", "studio", ""} {
		if lib.IsLandType(s) {
			t.Errorf("IsLandType(%q) = true; want false", s)
		}
	}

	if !lib.IsRoomType("chambre") || !lib.IsRoomType("room") {
		t.Error("IsRoomType missed chambre/room")
	}
	if lib.IsRoomType("appartement") {
		t.Error("IsRoomType matched appartement")
	}
}

func TestPriceTiersAscending(t *testing.T) {
	lib := NewPatternLibrary()

	prev := 0.0
	for i, tier := range lib.priceTiers {
		if tier.below <= prev {
			t.Errorf("tier %d bound %v not ascending after %v", i, tier.below, prev)
		}
		prev = tier.below
	}
}

func signalWithTitle(title string) (s model.ListingSignal) {
	s.Title = &title
	return s
}

package service

import (
	"testing"

	"observatoire/internal/model"
)

func newTestExtractor() *IntentExtractor {
	return NewIntentExtractor(NewPatternLibrary())
}

func TestExtractFullQuery(t *testing.T) {
	e := newTestExtractor()

	intent := e.Extract("Je cherche à louer un appartement 3 chambres à Dakar")

	if intent.Budget != nil {
		t.Errorf("Budget = %v; want nil", *intent.Budget)
	}
	if intent.Bedrooms == nil || *intent.Bedrooms != 3 {
		t.Errorf("Bedrooms = %v; want 3", intent.Bedrooms)
	}
	if intent.City == nil || *intent.City != "Dakar" {
		t.Errorf("City = %v; want Dakar", intent.City)
	}
	if intent.PropertyType == nil || *intent.PropertyType != "Appartement" {
		t.Errorf("PropertyType = %v; want Appartement", intent.PropertyType)
	}
	if intent.TransactionType == nil || *intent.TransactionType != model.Rental {
		t.Errorf("TransactionType = %v; want Rental", intent.TransactionType)
	}
}

func TestExtractBudget(t *testing.T) {
	e := newTestExtractor()

	tests := []struct {
		message string
		want    int64 // 0 means nil expected
	}{
		{"budget 25 millions", 25_000_000},
		{"maison à 80 million", 80_000_000},
		{"1,5 millions max", 1_500_000},
		{"autour de 2.5 millions", 2_500_000},
		{"studio à 300k", 300_000},
		{"250 mille par mois", 250_000},
		{"250 000 FCFA/mois", 250_000},
		{"250,000 FCFA", 250_000},
		{"150000 maximum", 150_000},
		{"pas de budget précis", 0},
		{"3 chambres à Dakar", 0},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			intent := e.Extract(tt.message)
			if tt.want == 0 {
				if intent.Budget != nil {
					t.Errorf("Budget = %d; want nil", *intent.Budget)
				}
				return
			}
			if intent.Budget == nil {
				t.Fatalf("Budget = nil; want %d", tt.want)
			}
			if *intent.Budget != tt.want {
				t.Errorf("Budget = %d; want %d", *intent.Budget, tt.want)
			}
		})
	}
}

func TestExtractBedrooms(t *testing.T) {
	e := newTestExtractor()

	tests := []struct {
		message string
		want    int
		none    bool
	}{
		{"appartement 3 chambres", 3, false},
		{"villa 5 ch", 5, false},
		{"4 pièces lumineux", 4, false},
		{"un F3 à Pikine", 3, false},
		{"un f4 spacieux", 4, false},
		{"studio sans précision", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			intent := e.Extract(tt.message)
			if tt.none {
				if intent.Bedrooms != nil {
					t.Errorf("Bedrooms = %d; want nil", *intent.Bedrooms)
				}
				return
			}
			if intent.Bedrooms == nil || *intent.Bedrooms != tt.want {
				t.Errorf("Bedrooms = %v; want %d", intent.Bedrooms, tt.want)
			}
		})
	}
}

func TestExtractCity(t *testing.T) {
	e := newTestExtractor()

	tests := []struct {
		message string
		want    string
		none    bool
	}{
		{"un studio à Dakar", "Dakar", false},
		{"guediawaye de préférence", "Guédiawaye", false},
		{"à Guédiawaye", "Guédiawaye", false},
		{"du côté de Thiès", "Thiès", false},
		{"vers Saint-Louis", "Saint-Louis", false},
		{"peu importe la ville", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			intent := e.Extract(tt.message)
			if tt.none {
				if intent.City != nil {
					t.Errorf("City = %q; want nil", *intent.City)
				}
				return
			}
			if intent.City == nil || *intent.City != tt.want {
				t.Errorf("City = %v; want %q", intent.City, tt.want)
			}
		})
	}
}

func TestExtractPropertyType(t *testing.T) {
	e := newTestExtractor()

	tests := []struct {
		message string
		want    string
		none    bool
	}{
		{"un appart sympa", "Appartement", false},
		{"appartement de standing", "Appartement", false},
		{"une maison avec jardin", "Villa", false},
		{"une parcelle à Diamniadio", "Terrain", false},
		{"studio meublé", "Studio", false},
		{"quelque chose de bien", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			intent := e.Extract(tt.message)
			if tt.none {
				if intent.PropertyType != nil {
					t.Errorf("PropertyType = %q; want nil", *intent.PropertyType)
				}
				return
			}
			if intent.PropertyType == nil || *intent.PropertyType != tt.want {
				t.Errorf("PropertyType = %v; want %q", intent.PropertyType, tt.want)
			}
		})
	}
}

func TestExtractTransactionType(t *testing.T) {
	e := newTestExtractor()

	rental := model.Rental
	sale := model.Sale

	tests := []struct {
		message string
		want    *model.TransactionType
	}{
		{"je veux louer un studio", &rental},
		{"loyer mensuel raisonnable", &rental},
		{"je souhaite acheter une villa", &sale},
		{"une acquisition immobilière", &sale},
		// Elided forms: the apostrophe must not glue the article onto
		// the keyword.
		{"je suis intéressé par l'achat d'un appartement à Dakar", &sale},
		{"une offre d'achat sérieuse", &sale},
		// Conflicting keywords: never guess.
		{"louer ou acheter, je ne sais pas", nil},
		{"un studio à Dakar", nil},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			intent := e.Extract(tt.message)
			if tt.want == nil {
				if intent.TransactionType != nil {
					t.Errorf("TransactionType = %v; want nil", *intent.TransactionType)
				}
				return
			}
			if intent.TransactionType == nil || *intent.TransactionType != *tt.want {
				t.Errorf("TransactionType = %v; want %v", intent.TransactionType, *tt.want)
			}
		})
	}
}

func TestExtractEmptyMessage(t *testing.T) {
	e := newTestExtractor()

	for _, msg := range []string{"", "   ", "\n\t"} {
		intent := e.Extract(msg)
		if !intent.IsEmpty() {
			t.Errorf("Extract(%q) = %+v; want empty intent", msg, intent)
		}
	}
}

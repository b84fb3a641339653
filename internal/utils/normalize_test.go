package utils

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"lowercase", "APPARTEMENT", "appartement"},
		{"accents", "éèàùôîç", "eeauoic"},
		{"accented title", "Studio meublé à Guédiawaye", "studio meuble a guediawaye"},
		{"keeps slash", "250000 FCFA/mois", "250000 fcfa/mois"},
		{"keeps hyphen", "Saint-Louis", "saint-louis"},
		{"strips punctuation", "Appartement!!! (Plateau)", "appartement plateau"},
		{"collapses whitespace", "  villa   à   vendre  ", "villa a vendre"},
		{"superscript dropped", "Terrain 500m²", "terrain 500m"},
		{"elision keeps the keyword", "l'achat d'un appartement", "l achat d un appartement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q; want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Appartement à louer Plateau",
		"Villa de standing — Almadies!",
		"टेस्ट texte mêlé 4 pièces",
		"",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestFoldKeepsPunctuation(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1,5 Millions", "1,5 millions"},
		{"250.000 FCFA", "250.000 fcfa"},
		{"300m²", "300m2"},
	}

	for _, tt := range tests {
		if got := Fold(tt.input); got != tt.want {
			t.Errorf("Fold(%q) = %q; want %q", tt.input, got, tt.want)
		}
	}
}

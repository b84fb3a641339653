package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents decomposes characters and drops combining marks, so
// "é" -> "e", "ç" -> "c", "à" -> "a".
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var (
	// Keep word characters, whitespace, slash and hyphen. Slash matters for
	// patterns like "/mois", hyphen for names like "Saint-Louis".
	noiseRegexp = regexp.MustCompile(`[^a-z0-9_\s/-]+`)
	spaceRegexp = regexp.MustCompile(`\s+`)
)

// Fold lowercases and strips accents but keeps punctuation, so numeric
// forms like "1,5 millions" or "250.000 FCFA" stay parseable. Superscript
// area markers are folded to plain digits ("300m²" -> "300m2").
func Fold(text string) string {
	s := strings.ToLower(text)
	if out, _, err := transform.String(stripAccents, s); err == nil {
		s = out
	}
	s = strings.NewReplacer("²", "2", "³", "3").Replace(s)
	return s
}

// Normalize lowercases, strips accents to ASCII, turns punctuation noise
// into spaces and collapses whitespace. Punctuation becomes a space rather
// than vanishing so elided forms keep their keywords: "l'achat" reads as
// "l achat" and word-boundary patterns still see "achat". Idempotent and
// never fails; empty input yields an empty string.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	s := strings.ToLower(text)
	if out, _, err := transform.String(stripAccents, s); err == nil {
		s = out
	}
	s = noiseRegexp.ReplaceAllString(s, " ")
	s = spaceRegexp.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

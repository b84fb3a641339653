package service

import (
	"regexp"
	"strings"

	"observatoire/internal/model"
)

// Category names a group of vocabulary patterns sharing one score weight.
// The set is closed: adding a category means adding a constant here and a
// row in categoryWeights.
type Category string

const (
	CategoryExplicit      Category = "explicit"
	CategoryTemporal      Category = "temporal"
	CategoryContext       Category = "context"
	CategoryPropertyTypes Category = "property_types"
	CategoryTransaction   Category = "transaction"
	CategoryLegal         Category = "legal"
	CategoryInvestment    Category = "investment"
)

// categoryWeights is the single weight table for all categories. A category
// contributes its weight at most once per classification.
var categoryWeights = map[Category]float64{
	CategoryExplicit:      10,
	CategoryTemporal:      8,
	CategoryContext:       5,
	CategoryPropertyTypes: 3,
	CategoryTransaction:   7,
	CategoryLegal:         7,
	CategoryInvestment:    2,
}

// categoryPatterns binds one category to its ordered regex list. The first
// matching pattern in the list is sufficient; the rest are not evaluated.
type categoryPatterns struct {
	category Category
	patterns []*regexp.Regexp
}

// priceTier maps a price band (upper bound exclusive) to score bumps.
type priceTier struct {
	below  float64
	sale   float64
	rental float64
}

// sourceBias is the fixed per-source score bump.
type sourceBias struct {
	sale   float64
	rental float64
}

// dictEntry maps a normalized mention to its canonical display form.
// Entries are ordered so lookups stay deterministic.
type dictEntry struct {
	key     string
	display string
}

// TieBreakPrice is the FCFA threshold used both by the classifier's
// tie-break and by the composer's budget-to-status suggestion.
const TieBreakPrice = 1_500_000

// PatternLibrary is the immutable vocabulary table shared by the
// classifier, the extractor and the composer. Build it once at startup
// with NewPatternLibrary; it is safe for concurrent use.
type PatternLibrary struct {
	rental []categoryPatterns
	sale   []categoryPatterns

	landKeywords map[string]struct{}
	roomKeywords map[string]struct{}

	priceTiers   []priceTier
	priceTopSale float64
	biases       map[string]sourceBias

	nativeRental map[string]struct{}
	nativeSale   map[string]struct{}

	cities        []dictEntry
	propertyTypes []dictEntry

	budgetPatterns  []budgetPattern
	bedroomPatterns []*regexp.Regexp
	rentalIntent    *regexp.Regexp
	saleIntent      *regexp.Regexp
	greeting        *regexp.Regexp
}

// budgetPattern pairs a budget regex with its FCFA multiplier.
type budgetPattern struct {
	re         *regexp.Regexp
	multiplier float64
}

// All patterns below run against normalized text: lowercase, accents
// stripped, whitespace collapsed, slash and hyphen preserved.
func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(e))
	}
	return out
}

func keywordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// NewPatternLibrary builds the full French/English real-estate vocabulary
// used across the three scraped sources.
func NewPatternLibrary() *PatternLibrary {
	return &PatternLibrary{
		rental: []categoryPatterns{
			{CategoryExplicit, compileAll(
				`\ba louer\b`, `\blouer\b`, `\blocation\b`, `\bloyer\b`,
				`\bfor rent\b`, `\bto let\b`, `\bto rent\b`,
				`\brent\b`, `\brental\b`,
			)},
			{CategoryTemporal, compileAll(
				`/mois\b`, `\bpar mois\b`, `\bmensuel(?:le)?\b`, `\bbail\b`,
				`/month\b`, `\bper month\b`, `\bmonthly\b`,
			)},
			{CategoryContext, compileAll(
				`\bmeublee?s?\b`, `\bcaution\b`, `\bavance\b`, `\bcolocation\b`,
				`\bcharges comprises\b`, `\bfurnished\b`,
			)},
			{CategoryPropertyTypes, compileAll(
				`\bstudio meuble\b`, `\bchambre meublee\b`, `\bappartement meuble\b`,
				`\bfurnished room\b`, `\bshared room\b`,
			)},
		},
		sale: []categoryPatterns{
			{CategoryExplicit, compileAll(
				`\ba vendre\b`, `\bvendre\b`, `\bvente\b`,
				`\bfor sale\b`, `\bselling\b`, `\bsale\b`, `\bsell\b`,
			)},
			{CategoryTransaction, compileAll(
				`\bacheter\b`, `\bachat\b`, `\bacquisition\b`, `\bacquerir\b`,
				`\bcession\b`, `\bbuy\b`, `\bpurchase\b`,
			)},
			{CategoryLegal, compileAll(
				`\btitre foncier\b`, `\btf\b`, `\bnotaire\b`, `\bacte de vente\b`,
				`\bacte notarie\b`, `\bdeed\b`,
			)},
			{CategoryPropertyTypes, compileAll(
				`\bterrain\b`, `\bparcelle\b`, `\bimmeuble\b`, `\bland\b`, `\bplot\b`,
			)},
			{CategoryInvestment, compileAll(
				`\binvestissement\b`, `\binvestir\b`, `\brentabilite\b`,
				`\brendement\b`, `\binvestment\b`,
			)},
		},

		landKeywords: keywordSet("terrain", "parcelle", "lot", "lotissement", "plot", "land"),
		roomKeywords: keywordSet("chambre", "room"),

		// Ascending, non-overlapping FCFA bands. Monthly rents sit far
		// below sale prices, so low bands lean rental and high bands sale.
		priceTiers: []priceTier{
			{below: 500_000, rental: 8},
			{below: 1_500_000, rental: 6},
			{below: 5_000_000, sale: 2, rental: 1},
			{below: 20_000_000, sale: 4},
			{below: 50_000_000, sale: 6},
		},
		priceTopSale: 8,

		// LogerDakar is almost exclusively a rental site; the two
		// generalist sources skew slightly toward sales.
		biases: map[string]sourceBias{
			model.SourceLogerDakar:  {rental: 1},
			model.SourceCoinAfrique: {sale: 0.5},
			model.SourceExpatDakar:  {sale: 0.5},
		},

		nativeRental: keywordSet("location", "locations", "louer", "a louer", "rent", "rental", "for rent"),
		nativeSale:   keywordSet("vente", "ventes", "vendre", "a vendre", "sale", "for sale", "achat"),

		cities: []dictEntry{
			{"dakar", "Dakar"},
			{"guediawaye", "Guédiawaye"},
			{"pikine", "Pikine"},
			{"rufisque", "Rufisque"},
			{"diamniadio", "Diamniadio"},
			{"thies", "Thiès"},
			{"saint-louis", "Saint-Louis"},
			{"saint louis", "Saint-Louis"},
			{"mbour", "Mbour"},
			{"saly", "Saly"},
			{"ziguinchor", "Ziguinchor"},
			{"kaolack", "Kaolack"},
			{"touba", "Touba"},
		},

		propertyTypes: []dictEntry{
			{"appartement", "Appartement"},
			{"appart", "Appartement"},
			{"studio", "Studio"},
			{"villa", "Villa"},
			{"maison", "Villa"},
			{"chambre", "Chambre"},
			{"terrain", "Terrain"},
			{"parcelle", "Terrain"},
			{"immeuble", "Immeuble"},
			{"bureau", "Bureau"},
		},

		budgetPatterns: []budgetPattern{
			{regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(?:millions?\b|m\b)`), 1_000_000},
			{regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(?:mille\b|k\b)`), 1_000},
			{regexp.MustCompile(`\b(\d{1,3}(?:[ .,]\d{3})+)\b`), 1},
			{regexp.MustCompile(`\b(\d{5,})\b`), 1},
		},

		bedroomPatterns: compileAll(
			`(\d+)\s*chambres?\b`,
			`(\d+)\s*ch\b`,
			`(\d+)\s*pieces?\b`,
			`\bf(\d+)\b`,
		),

		rentalIntent: regexp.MustCompile(`\b(?:louer|location|loyer|mensuel|mois|bail)\b`),
		saleIntent:   regexp.MustCompile(`\b(?:acheter|achat|vendre|vente|acquisition|acquerir)\b`),

		greeting: regexp.MustCompile(`^(?:bonjour|bonsoir|salut|slt|bjr|coucou|cc|hello|hi|hey)\b`),
	}
}

// Weight returns the score weight of a category.
func (p *PatternLibrary) Weight(c Category) float64 {
	return categoryWeights[c]
}

// IsLandType reports whether a normalized property type denotes land.
// Matching is per token so "terrain agricole" still counts.
func (p *PatternLibrary) IsLandType(normalized string) bool {
	return anyTokenIn(normalized, p.landKeywords)
}

// IsRoomType reports whether a normalized property type denotes a room.
func (p *PatternLibrary) IsRoomType(normalized string) bool {
	return anyTokenIn(normalized, p.roomKeywords)
}

func anyTokenIn(normalized string, set map[string]struct{}) bool {
	for _, tok := range strings.Fields(normalized) {
		if _, ok := set[tok]; ok {
			return true
		}
	}
	return false
}

// CanonicalCity maps a normalized free-text mention to a canonical city
// name; ok is false when no known city is mentioned.
func (p *PatternLibrary) CanonicalCity(normalized string) (string, bool) {
	for _, e := range p.cities {
		if strings.Contains(normalized, e.key) {
			return e.display, true
		}
	}
	return "", false
}

// CanonicalPropertyType maps a normalized mention to a canonical property
// type; ok is false when none is mentioned.
func (p *PatternLibrary) CanonicalPropertyType(normalized string) (string, bool) {
	for _, e := range p.propertyTypes {
		if strings.Contains(normalized, e.key) {
			return e.display, true
		}
	}
	return "", false
}

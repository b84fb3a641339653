package service

import (
	"observatoire/internal/model"
	"observatoire/internal/utils"
)

// Extra score source keys in the breakdown maps, alongside category names.
const (
	scoreKeyPrice  = "price"
	scoreKeySource = "source"
	scoreKeyRoom   = "room"
	scoreKeyNative = "native"
	scoreKeyLand   = "land"
)

const roomNudge = 3

// StatusClassifier assigns each listing a canonical transaction type from
// whatever signals the scraped sources provide. It is a pure function
// object: no state beyond the shared pattern library, safe for concurrent
// use across a batch.
type StatusClassifier struct {
	lib *PatternLibrary
}

// NewStatusClassifier creates a classifier over the given pattern library.
func NewStatusClassifier(lib *PatternLibrary) *StatusClassifier {
	return &StatusClassifier{lib: lib}
}

// Classify decides Sale or Rental for one listing. Decision order, first
// rule wins:
//  1. recognized native status
//  2. land property type forces Sale
//  3. weighted title scoring + room nudge + price tiers + source bias,
//     price tie-break at 1.5M FCFA when the totals are equal
//
// Missing or malformed fields contribute nothing; Classify never fails.
func (c *StatusClassifier) Classify(signal model.ListingSignal) (model.TransactionType, model.ScoreBreakdown) {
	b := model.ScoreBreakdown{
		Rental: map[string]float64{},
		Sale:   map[string]float64{},
	}

	// 1. Native override: trust the source when it labels the listing
	// with a recognized synonym.
	if signal.NativeStatus != nil {
		native := utils.Normalize(*signal.NativeStatus)
		if _, ok := c.lib.nativeRental[native]; ok {
			b.Rule = model.RuleNativeOverride
			b.Rental[scoreKeyNative] = 1
			b.RentalTotal = 1
			return model.Rental, b
		}
		if _, ok := c.lib.nativeSale[native]; ok {
			b.Rule = model.RuleNativeOverride
			b.Sale[scoreKeyNative] = 1
			b.SaleTotal = 1
			return model.Sale, b
		}
	}

	propType := ""
	if signal.PropertyType != nil {
		propType = utils.Normalize(*signal.PropertyType)
	}

	// 2. Land is essentially never rented: a terrain/parcelle listing is a
	// sale no matter what the title or price say.
	if propType != "" && c.lib.IsLandType(propType) {
		b.Rule = model.RuleLandOverride
		b.Sale[scoreKeyLand] = 1
		b.SaleTotal = 1
		return model.Sale, b
	}

	// 3. Weighted title scoring. Each category contributes its weight at
	// most once per side.
	if signal.Title != nil {
		title := utils.Normalize(*signal.Title)
		if title != "" {
			c.scoreTitle(title, c.lib.rental, b.Rental)
			c.scoreTitle(title, c.lib.sale, b.Sale)
		}
	}

	// 4. Room nudge: a chambre/room listing leans rental but the title may
	// still outvote it, unlike the land override.
	if propType != "" && c.lib.IsRoomType(propType) {
		b.Rental[scoreKeyRoom] += roomNudge
	}

	// 5. Price tiers.
	if signal.Price != nil && *signal.Price > 0 {
		sale, rental := c.priceContribution(*signal.Price)
		if sale > 0 {
			b.Sale[scoreKeyPrice] += sale
		}
		if rental > 0 {
			b.Rental[scoreKeyPrice] += rental
		}
	}

	// 6. Source bias.
	if signal.Source != nil {
		if bias, ok := c.lib.biases[utils.Normalize(*signal.Source)]; ok {
			if bias.sale > 0 {
				b.Sale[scoreKeySource] += bias.sale
			}
			if bias.rental > 0 {
				b.Rental[scoreKeySource] += bias.rental
			}
		}
	}

	for _, v := range b.Rental {
		b.RentalTotal += v
	}
	for _, v := range b.Sale {
		b.SaleTotal += v
	}

	// 7. Decision.
	switch {
	case b.RentalTotal > b.SaleTotal:
		b.Rule = model.RuleScored
		return model.Rental, b
	case b.SaleTotal > b.RentalTotal:
		b.Rule = model.RuleScored
		return model.Sale, b
	}

	// Exactly balanced evidence, including the no-signal case: prices at
	// or above 1.5M FCFA read as sales, everything else as rentals.
	b.Rule = model.RulePriceTieBreak
	if signal.Price != nil && *signal.Price >= TieBreakPrice {
		return model.Sale, b
	}
	return model.Rental, b
}

// scoreTitle adds each category's weight when any of its patterns matches
// the normalized title. Remaining patterns in a matched category are
// skipped.
func (c *StatusClassifier) scoreTitle(title string, cats []categoryPatterns, into map[string]float64) {
	for _, cp := range cats {
		for _, re := range cp.patterns {
			if re.MatchString(title) {
				into[string(cp.category)] += c.lib.Weight(cp.category)
				break
			}
		}
	}
}

// priceContribution returns the (sale, rental) bumps for a price. Tiers
// are ascending and non-overlapping; anything past the last tier is a
// strong sale signal.
func (c *StatusClassifier) priceContribution(price float64) (float64, float64) {
	for _, tier := range c.lib.priceTiers {
		if price < tier.below {
			return tier.sale, tier.rental
		}
	}
	return c.lib.priceTopSale, 0
}

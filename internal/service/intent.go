package service

import (
	"strconv"
	"strings"

	"observatoire/internal/model"
	"observatoire/internal/utils"
)

// IntentExtractor parses a free-text user message into structured search
// filters. Each field is extracted independently and is nil when no strong
// signal is found; conflicting signals also yield nil rather than a guess.
type IntentExtractor struct {
	lib *PatternLibrary
}

// NewIntentExtractor creates an extractor over the given pattern library.
func NewIntentExtractor(lib *PatternLibrary) *IntentExtractor {
	return &IntentExtractor{lib: lib}
}

// Extract pulls budget, bedrooms, city, property type and transaction
// intent out of a message. It never fails; an empty or unparseable message
// simply yields an empty intent.
func (e *IntentExtractor) Extract(message string) model.QueryIntent {
	var intent model.QueryIntent
	if strings.TrimSpace(message) == "" {
		return intent
	}

	normalized := utils.Normalize(message)
	// Budget parsing keeps decimal and grouping punctuation around.
	folded := utils.Fold(message)

	intent.Budget = e.extractBudget(folded)
	intent.Bedrooms = e.extractBedrooms(normalized)

	if city, ok := e.lib.CanonicalCity(normalized); ok {
		intent.City = &city
	}
	if propType, ok := e.lib.CanonicalPropertyType(normalized); ok {
		intent.PropertyType = &propType
	}

	intent.TransactionType = e.extractTransaction(normalized)
	return intent
}

// extractBudget tries the budget patterns in order (millions, thousands,
// grouped FCFA amount, plain amount); the first match wins. A matched but
// unparseable amount counts as no budget, not an error.
func (e *IntentExtractor) extractBudget(folded string) *int64 {
	for _, bp := range e.lib.budgetPatterns {
		m := bp.re.FindStringSubmatch(folded)
		if m == nil {
			continue
		}
		raw := strings.NewReplacer(" ", "", ",", ".").Replace(m[1])
		// Grouped amounts like "250.000" carry no decimal part; only the
		// multiplier forms keep a separator ("1,5 millions").
		if bp.multiplier == 1 || strings.Count(raw, ".") > 1 {
			raw = strings.ReplaceAll(raw, ".", "")
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || value <= 0 {
			return nil
		}
		budget := int64(value * bp.multiplier)
		return &budget
	}
	return nil
}

func (e *IntentExtractor) extractBedrooms(normalized string) *int {
	for _, re := range e.lib.bedroomPatterns {
		m := re.FindStringSubmatch(normalized)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 0 {
			return nil
		}
		return &n
	}
	return nil
}

// extractTransaction returns Rental or Sale only when exactly one side's
// keywords are present; both or neither yield nil.
func (e *IntentExtractor) extractTransaction(normalized string) *model.TransactionType {
	hasRental := e.lib.rentalIntent.MatchString(normalized)
	hasSale := e.lib.saleIntent.MatchString(normalized)

	switch {
	case hasRental && !hasSale:
		t := model.Rental
		return &t
	case hasSale && !hasRental:
		t := model.Sale
		return &t
	}
	return nil
}

package model

import (
	"encoding/json"
	"fmt"
)

// TransactionType is the canonical Sale/Rental classification of a listing.
// The zero value is Sale; use pointers where "not determined" is meaningful.
type TransactionType int

const (
	Sale TransactionType = iota
	Rental
)

// Locale labels shown to users. The enum is the stored/compared value,
// these two strings are the only serialized forms at the API boundary.
const (
	LabelSale   = "Vente"
	LabelRental = "Location"
)

// Label returns the user-facing locale string for the transaction type.
func (t TransactionType) Label() string {
	if t == Rental {
		return LabelRental
	}
	return LabelSale
}

func (t TransactionType) String() string {
	if t == Rental {
		return "rental"
	}
	return "sale"
}

// MarshalJSON serializes the type as its locale label ("Vente"/"Location").
func (t TransactionType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Label())
}

// UnmarshalJSON accepts the locale labels as well as the internal names.
func (t *TransactionType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case LabelSale, "sale", "vente":
		*t = Sale
	case LabelRental, "rental", "location":
		*t = Rental
	default:
		return fmt.Errorf("unknown transaction type %q", s)
	}
	return nil
}

// ListingSignal carries the raw per-listing fields that can influence
// classification. Every field is optional; a missing field only reduces
// the available evidence, it never causes an error.
type ListingSignal struct {
	Title        *string  `json:"title,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	PropertyType *string  `json:"property_type,omitempty"`
	Source       *string  `json:"source,omitempty"`
	NativeStatus *string  `json:"native_status,omitempty"`
}

// DecisionRule identifies which classification rule produced the result.
type DecisionRule string

const (
	RuleNativeOverride DecisionRule = "native_override"
	RuleLandOverride   DecisionRule = "property_type_override"
	RuleScored         DecisionRule = "scored_comparison"
	RulePriceTieBreak  DecisionRule = "price_tie_break"
)

// ScoreBreakdown records how a classification was reached: per-category
// contributions to each side, the final totals and the rule that fired.
type ScoreBreakdown struct {
	Rental      map[string]float64 `json:"rental"`
	Sale        map[string]float64 `json:"sale"`
	RentalTotal float64            `json:"rental_total"`
	SaleTotal   float64            `json:"sale_total"`
	Rule        DecisionRule       `json:"rule"`
}

package model

// QueryIntent represents structured search conditions extracted from a
// free-text message. Every field is independently optional; nil means
// "no strong signal found", never a default guess.
type QueryIntent struct {
	Budget          *int64           `json:"budget,omitempty"` // FCFA
	Bedrooms        *int             `json:"bedrooms,omitempty"`
	City            *string          `json:"city,omitempty"`
	PropertyType    *string          `json:"property_type,omitempty"`
	TransactionType *TransactionType `json:"transaction_type,omitempty"`
}

// IsEmpty reports whether no field was extracted at all.
func (q QueryIntent) IsEmpty() bool {
	return q.Budget == nil && q.Bedrooms == nil && q.City == nil &&
		q.PropertyType == nil && q.TransactionType == nil
}

// Suggestion kinds rendered as clickable chips by the conversational UI.
const (
	SuggestionStatus       = "status"
	SuggestionPropertyType = "property_type"
	SuggestionBedrooms     = "bedrooms"
	SuggestionCity         = "city"
)

// Suggestion is a UI-actionable filter proposal, not itself a filter.
type Suggestion struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// ComposedReply is the structured answer to one chat message. Message uses
// lightweight markup (*bold*, "• " bullet lines); rendering is the UI's
// responsibility. FilterPatch holds exactly the non-nil extracted fields,
// to be merged into the caller's filter state.
type ComposedReply struct {
	Message     string       `json:"message"`
	Suggestions []Suggestion `json:"suggestions"`
	FilterPatch QueryIntent  `json:"filter_patch"`
}

// ChatRequest is the body of POST /api/v1/chat.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse wraps the composed reply with the exchange id used for
// chat logging.
type ChatResponse struct {
	ChatID string `json:"chat_id"`
	ComposedReply
}

// SearchRequest represents a free-text search request.
type SearchRequest struct {
	Query   string         `json:"query" binding:"required"`
	Filters *SearchFilters `json:"filters,omitempty"`
	Limit   int            `json:"limit,omitempty"`
}

// SearchFilters represents structured search filters. Explicit filters
// take precedence over intent extracted from the query text.
type SearchFilters struct {
	Source          *string          `json:"source,omitempty"`
	City            *string          `json:"city,omitempty"`
	PropertyType    *string          `json:"property_type,omitempty"`
	Bedrooms        *int             `json:"bedrooms,omitempty"`
	PriceMin        *float64         `json:"price_min,omitempty"`
	PriceMax        *float64         `json:"price_max,omitempty"`
	TransactionType *TransactionType `json:"transaction_type,omitempty"`
}

// SearchResponse represents a search result response.
type SearchResponse struct {
	Results []ClassifiedListing `json:"results"`
	Total   int                 `json:"total"`
	Intent  *QueryIntent        `json:"intent,omitempty"`
	Took    int64               `json:"took_ms"`
}

// SourceStats holds per-source listing counts.
type SourceStats struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

// StatsResponse represents the global statistics payload.
type StatsResponse struct {
	TotalProperties int           `json:"total_properties"`
	BySource        []SourceStats `json:"by_source"`
	AveragePrice    float64       `json:"average_price"`
}

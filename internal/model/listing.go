package model

import "time"

// Known origin source tags for scraped listings.
const (
	SourceCoinAfrique = "coinafrique"
	SourceExpatDakar  = "expatdakar"
	SourceLogerDakar  = "logerdakar"
)

// KnownSources lists the origin tags in a fixed order.
var KnownSources = []string{SourceCoinAfrique, SourceExpatDakar, SourceLogerDakar}

// Listing represents one scraped property advertisement. The three source
// tables share this shape; Source carries the origin tag. Scraped fields
// are pointer-optional since every site omits something.
type Listing struct {
	ID           int64      `json:"id" db:"id"`
	Source       string     `json:"source" db:"-"`
	Title        *string    `json:"title,omitempty" db:"title"`
	Description  *string    `json:"description,omitempty" db:"description"`
	Price        *float64   `json:"price,omitempty" db:"price"`
	City         *string    `json:"city,omitempty" db:"city"`
	District     *string    `json:"district,omitempty" db:"district"`
	PropertyType *string    `json:"property_type,omitempty" db:"property_type"`
	Status       *string    `json:"status,omitempty" db:"status"`
	Bedrooms     *int       `json:"bedrooms,omitempty" db:"bedrooms"`
	URL          *string    `json:"url,omitempty" db:"url"`
	ScrapedAt    *time.Time `json:"scraped_at,omitempty" db:"scraped_at"`
}

// Signal projects the listing onto the fields the status classifier
// consumes. The stored status column is the source's native label.
func (l *Listing) Signal() ListingSignal {
	src := l.Source
	return ListingSignal{
		Title:        l.Title,
		Price:        l.Price,
		PropertyType: l.PropertyType,
		Source:       &src,
		NativeStatus: l.Status,
	}
}

// ClassifiedListing is a listing plus its canonical transaction type.
// StatusLabel is the locale string shown to users; Breakdown is included
// only when the caller asked for diagnostics.
type ClassifiedListing struct {
	Listing
	TransactionType TransactionType `json:"transaction_type"`
	StatusLabel     string          `json:"status_label"`
	Breakdown       *ScoreBreakdown `json:"breakdown,omitempty"`
}

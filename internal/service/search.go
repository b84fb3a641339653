package service

import (
	"context"
	"time"

	"observatoire/internal/model"
	"observatoire/internal/repository"
)

// SearchService handles search business logic: it turns a free-text query
// into filters, fetches matching listings from the scraped sources and
// classifies every result before returning it.
type SearchService struct {
	repo       *repository.PostgresRepository
	extractor  *IntentExtractor
	classifier *StatusClassifier
}

// NewSearchService creates a new search service.
func NewSearchService(
	repo *repository.PostgresRepository,
	extractor *IntentExtractor,
	classifier *StatusClassifier,
) *SearchService {
	return &SearchService{
		repo:       repo,
		extractor:  extractor,
		classifier: classifier,
	}
}

// Search performs a complete search: intent extraction, filter merge,
// retrieval, classification and transaction-type filtering.
func (s *SearchService) Search(ctx context.Context, req *model.SearchRequest) (*model.SearchResponse, error) {
	startTime := time.Now()

	intent := s.extractor.Extract(req.Query)
	filters := MergeFilters(req.Filters, intent)

	limit := req.Limit
	if limit <= 0 {
		limit = 20
	}

	var listings []model.Listing
	var err error
	if hasStructuredFilters(filters) {
		listings, err = s.repo.ListProperties(ctx, filters, limit)
	} else {
		// Nothing structured was extracted; fall back to plain substring
		// search over the text columns.
		listings, err = s.repo.SearchText(ctx, req.Query, limit)
	}
	if err != nil {
		return nil, err
	}

	results := s.classifyAll(listings, filters.TransactionType)

	return &model.SearchResponse{
		Results: results,
		Total:   len(results),
		Intent:  &intent,
		Took:    time.Since(startTime).Milliseconds(),
	}, nil
}

// ListProperties returns classified listings for explicit filters, the
// listing-browse path with no free-text query involved.
func (s *SearchService) ListProperties(ctx context.Context, filters *model.SearchFilters, limit int) ([]model.ClassifiedListing, error) {
	if limit <= 0 {
		limit = 20
	}
	listings, err := s.repo.ListProperties(ctx, filters, limit)
	if err != nil {
		return nil, err
	}
	var want *model.TransactionType
	if filters != nil {
		want = filters.TransactionType
	}
	return s.classifyAll(listings, want), nil
}

// GetProperty retrieves and classifies a single listing.
func (s *SearchService) GetProperty(ctx context.Context, source string, id int64) (*model.ClassifiedListing, error) {
	listing, err := s.repo.GetProperty(ctx, source, id)
	if err != nil || listing == nil {
		return nil, err
	}
	t, breakdown := s.classifier.Classify(listing.Signal())
	return &model.ClassifiedListing{
		Listing:         *listing,
		TransactionType: t,
		StatusLabel:     t.Label(),
		Breakdown:       &breakdown,
	}, nil
}

// Stats returns the global listing statistics.
func (s *SearchService) Stats(ctx context.Context) (*model.StatsResponse, error) {
	return s.repo.Stats(ctx)
}

// classifyAll classifies each listing independently and drops those not
// matching the requested transaction type. The sources' own status labels
// disagree too often to filter in SQL.
func (s *SearchService) classifyAll(listings []model.Listing, want *model.TransactionType) []model.ClassifiedListing {
	results := make([]model.ClassifiedListing, 0, len(listings))
	for _, listing := range listings {
		t, breakdown := s.classifier.Classify(listing.Signal())
		if want != nil && t != *want {
			continue
		}
		results = append(results, model.ClassifiedListing{
			Listing:         listing,
			TransactionType: t,
			StatusLabel:     t.Label(),
			Breakdown:       &breakdown,
		})
	}
	return results
}

// MergeFilters overlays explicit request filters onto filters derived from
// the extracted intent. Explicit values win; the extracted budget becomes
// a price ceiling.
func MergeFilters(explicit *model.SearchFilters, intent model.QueryIntent) *model.SearchFilters {
	merged := &model.SearchFilters{}

	if intent.Budget != nil {
		max := float64(*intent.Budget)
		merged.PriceMax = &max
	}
	merged.Bedrooms = intent.Bedrooms
	merged.City = intent.City
	merged.PropertyType = intent.PropertyType
	merged.TransactionType = intent.TransactionType

	if explicit != nil {
		if explicit.Source != nil {
			merged.Source = explicit.Source
		}
		if explicit.City != nil {
			merged.City = explicit.City
		}
		if explicit.PropertyType != nil {
			merged.PropertyType = explicit.PropertyType
		}
		if explicit.Bedrooms != nil {
			merged.Bedrooms = explicit.Bedrooms
		}
		if explicit.PriceMin != nil {
			merged.PriceMin = explicit.PriceMin
		}
		if explicit.PriceMax != nil {
			merged.PriceMax = explicit.PriceMax
		}
		if explicit.TransactionType != nil {
			merged.TransactionType = explicit.TransactionType
		}
	}

	return merged
}

// hasStructuredFilters reports whether anything column-mappable survived
// the merge; transaction type alone does not count since it is applied
// after classification.
func hasStructuredFilters(f *model.SearchFilters) bool {
	if f == nil {
		return false
	}
	return f.Source != nil || f.City != nil || f.PropertyType != nil ||
		f.Bedrooms != nil || f.PriceMin != nil || f.PriceMax != nil
}

package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"observatoire/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// sourceTables maps origin tags to their scraped tables. Each scraper
// writes its own table; the repository presents them as one collection.
var sourceTables = map[string]string{
	model.SourceCoinAfrique: "coinafrique",
	model.SourceExpatDakar:  "expat_dakar_properties",
	model.SourceLogerDakar:  "loger_dakar_properties",
}

const listingColumns = "id, title, description, price, city, district, property_type, status, bedrooms, url, scraped_at"

// PostgresRepository handles database operations over the scraped listing
// tables and the chat log.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository.
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	// Disable prepared statement caching to avoid "unnamed prepared statement does not exist" errors
	if !strings.Contains(dsn, "?") {
		dsn += "?prefer_simple_protocol=true"
	} else {
		dsn += "&prefer_simple_protocol=true"
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection.
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// Ping checks database connectivity, used by the health endpoint.
func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// selectedSources resolves a source filter to the tables to query; nil or
// unknown selects all three.
func selectedSources(source *string) []string {
	if source != nil {
		if _, ok := sourceTables[*source]; ok {
			return []string{*source}
		}
	}
	return model.KnownSources
}

// ListProperties returns listings across the selected sources, applying
// the structured filters that map directly to columns. Transaction type
// is not filtered here; callers classify and filter afterwards.
func (r *PostgresRepository) ListProperties(ctx context.Context, filters *model.SearchFilters, limit int) ([]model.Listing, error) {
	var out []model.Listing

	for _, source := range selectedSources(filterSource(filters)) {
		whereClauses := []string{"1=1"}
		args := []interface{}{}
		argIndex := 1

		if filters != nil {
			if filters.City != nil {
				whereClauses = append(whereClauses, fmt.Sprintf("city ILIKE $%d", argIndex))
				args = append(args, "%"+*filters.City+"%")
				argIndex++
			}
			if filters.PropertyType != nil {
				whereClauses = append(whereClauses, fmt.Sprintf("property_type ILIKE $%d", argIndex))
				args = append(args, "%"+*filters.PropertyType+"%")
				argIndex++
			}
			if filters.Bedrooms != nil {
				whereClauses = append(whereClauses, fmt.Sprintf("bedrooms = $%d", argIndex))
				args = append(args, *filters.Bedrooms)
				argIndex++
			}
			if filters.PriceMin != nil {
				whereClauses = append(whereClauses, fmt.Sprintf("price >= $%d", argIndex))
				args = append(args, *filters.PriceMin)
				argIndex++
			}
			if filters.PriceMax != nil {
				whereClauses = append(whereClauses, fmt.Sprintf("price <= $%d", argIndex))
				args = append(args, *filters.PriceMax)
				argIndex++
			}
		}

		query := fmt.Sprintf(
			"SELECT %s FROM %s WHERE %s ORDER BY id DESC LIMIT $%d",
			listingColumns, sourceTables[source], strings.Join(whereClauses, " AND "), argIndex,
		)
		args = append(args, limit)

		var rows []model.Listing
		if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
			return nil, fmt.Errorf("failed to query %s: %w", sourceTables[source], err)
		}
		for i := range rows {
			rows[i].Source = source
		}
		out = append(out, rows...)
	}

	return out, nil
}

// SearchText performs a case-insensitive substring search over the text
// columns of every source table.
func (r *PostgresRepository) SearchText(ctx context.Context, q string, limit int) ([]model.Listing, error) {
	var out []model.Listing
	pattern := "%" + q + "%"

	for _, source := range model.KnownSources {
		query := fmt.Sprintf(
			`SELECT %s FROM %s
			 WHERE title ILIKE $1 OR description ILIKE $1 OR city ILIKE $1 OR district ILIKE $1
			 ORDER BY id DESC LIMIT $2`,
			listingColumns, sourceTables[source],
		)

		var rows []model.Listing
		if err := r.db.SelectContext(ctx, &rows, query, pattern, limit); err != nil {
			return nil, fmt.Errorf("failed to search %s: %w", sourceTables[source], err)
		}
		for i := range rows {
			rows[i].Source = source
		}
		out = append(out, rows...)
	}

	return out, nil
}

// GetProperty fetches one listing by source and id; nil when not found.
func (r *PostgresRepository) GetProperty(ctx context.Context, source string, id int64) (*model.Listing, error) {
	table, ok := sourceTables[source]
	if !ok {
		return nil, fmt.Errorf("unknown source %q", source)
	}

	var listing model.Listing
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", listingColumns, table)
	if err := r.db.GetContext(ctx, &listing, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get listing %d from %s: %w", id, table, err)
	}
	listing.Source = source
	return &listing, nil
}

// Stats aggregates per-source counts and the global average asking price
// over positive prices.
func (r *PostgresRepository) Stats(ctx context.Context) (*model.StatsResponse, error) {
	stats := &model.StatsResponse{}
	var priceSum float64
	var priceCount int

	for _, source := range model.KnownSources {
		table := sourceTables[source]

		var count int
		if err := r.db.GetContext(ctx, &count, fmt.Sprintf("SELECT COUNT(*) FROM %s", table)); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		stats.BySource = append(stats.BySource, model.SourceStats{Source: source, Count: count})
		stats.TotalProperties += count

		var agg struct {
			Sum   sql.NullFloat64 `db:"sum"`
			Count int             `db:"count"`
		}
		query := fmt.Sprintf("SELECT COALESCE(SUM(price), 0) AS sum, COUNT(price) AS count FROM %s WHERE price > 0", table)
		if err := r.db.GetContext(ctx, &agg, query); err != nil {
			return nil, fmt.Errorf("failed to aggregate prices for %s: %w", table, err)
		}
		priceSum += agg.Sum.Float64
		priceCount += agg.Count
	}

	if priceCount > 0 {
		stats.AveragePrice = priceSum / float64(priceCount)
	}
	return stats, nil
}

// LogChat records one chat exchange with its extracted intent as JSONB.
func (r *PostgresRepository) LogChat(ctx context.Context, id, message string, intent model.QueryIntent) error {
	intentJSON, err := json.Marshal(intent)
	if err != nil {
		return fmt.Errorf("failed to marshal intent: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		"INSERT INTO chat_logs (id, message, intent, created_at) VALUES ($1, $2, $3, NOW())",
		id, message, intentJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to log chat: %w", err)
	}
	return nil
}

func filterSource(filters *model.SearchFilters) *string {
	if filters == nil {
		return nil
	}
	return filters.Source
}

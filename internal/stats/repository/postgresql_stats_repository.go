// Package repository implements data persistence for refiner usage
// statistics. Increments are atomic upserts on the (date, model) key.
package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/contenthub/backend/internal/database"
	apperrors "github.com/contenthub/backend/internal/errors"
	statsDomain "github.com/contenthub/backend/internal/stats/domain"
)

// PostgreSQLStatsRepository implements UsageStat persistence for PostgreSQL databases.
type PostgreSQLStatsRepository struct {
	db *sql.DB
}

// Increment records one refinement call: it inserts a fresh row for the
// (date, model) pair or bumps the existing counters.
func (p *PostgreSQLStatsRepository) Increment(
	ctx context.Context,
	date, model string,
	tokens int64,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO usage_stats (date, model, request_count, token_count, updated_at)
			  VALUES ($1, $2, 1, $3, $4)
			  ON CONFLICT (date, model) DO UPDATE
			  SET request_count = usage_stats.request_count + 1,
				  token_count = usage_stats.token_count + EXCLUDED.token_count,
				  updated_at = EXCLUDED.updated_at`

	_, err := querier.ExecContext(ctx, query, date, model, tokens, time.Now().UTC())
	if err != nil {
		return apperrors.Wrap(err, "failed to increment usage stat")
	}
	return nil
}

// ListRange retrieves usage stats for the inclusive date range, ordered by
// date then model.
func (p *PostgreSQLStatsRepository) ListRange(
	ctx context.Context,
	from, to string,
) ([]*statsDomain.UsageStat, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT date, model, request_count, token_count, updated_at
			  FROM usage_stats
			  WHERE date >= $1 AND date <= $2
			  ORDER BY date ASC, model ASC`

	rows, err := querier.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list usage stats")
	}
	defer rows.Close()

	return scanUsageStatRows(rows)
}

// NewPostgreSQLStatsRepository creates a new PostgreSQL UsageStat repository instance.
func NewPostgreSQLStatsRepository(db *sql.DB) *PostgreSQLStatsRepository {
	return &PostgreSQLStatsRepository{db: db}
}

// scanUsageStatRows scans a result set of usage stat rows.
func scanUsageStatRows(rows *sql.Rows) ([]*statsDomain.UsageStat, error) {
	var stats []*statsDomain.UsageStat
	for rows.Next() {
		var stat statsDomain.UsageStat
		if err := rows.Scan(
			&stat.Date,
			&stat.Model,
			&stat.RequestCount,
			&stat.TokenCount,
			&stat.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan usage stat")
		}
		stats = append(stats, &stat)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate usage stats")
	}
	return stats, nil
}

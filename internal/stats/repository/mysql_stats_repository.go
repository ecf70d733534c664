package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/contenthub/backend/internal/database"
	apperrors "github.com/contenthub/backend/internal/errors"
	statsDomain "github.com/contenthub/backend/internal/stats/domain"
)

// MySQLStatsRepository implements UsageStat persistence for MySQL databases.
type MySQLStatsRepository struct {
	db *sql.DB
}

// Increment records one refinement call: it inserts a fresh row for the
// (date, model) pair or bumps the existing counters.
func (m *MySQLStatsRepository) Increment(
	ctx context.Context,
	date, model string,
	tokens int64,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO usage_stats (date, model, request_count, token_count, updated_at)
			  VALUES (?, ?, 1, ?, ?)
			  ON DUPLICATE KEY UPDATE
			  request_count = request_count + 1,
			  token_count = token_count + VALUES(token_count),
			  updated_at = VALUES(updated_at)`

	_, err := querier.ExecContext(ctx, query, date, model, tokens, time.Now().UTC())
	if err != nil {
		return apperrors.Wrap(err, "failed to increment usage stat")
	}
	return nil
}

// ListRange retrieves usage stats for the inclusive date range, ordered by
// date then model.
func (m *MySQLStatsRepository) ListRange(
	ctx context.Context,
	from, to string,
) ([]*statsDomain.UsageStat, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT date, model, request_count, token_count, updated_at
			  FROM usage_stats
			  WHERE date >= ? AND date <= ?
			  ORDER BY date ASC, model ASC`

	rows, err := querier.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list usage stats")
	}
	defer rows.Close()

	return scanUsageStatRows(rows)
}

// NewMySQLStatsRepository creates a new MySQL UsageStat repository instance.
func NewMySQLStatsRepository(db *sql.DB) *MySQLStatsRepository {
	return &MySQLStatsRepository{db: db}
}

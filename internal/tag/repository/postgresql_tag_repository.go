// Package repository implements data persistence for the tag index.
// Usage bumps are atomic upserts on the unique tag name.
package repository

import (
	"context"
	"database/sql"

	"github.com/contenthub/backend/internal/database"
	apperrors "github.com/contenthub/backend/internal/errors"
	tagDomain "github.com/contenthub/backend/internal/tag/domain"
)

// PostgreSQLTagRepository implements Tag persistence for PostgreSQL databases.
type PostgreSQLTagRepository struct {
	db *sql.DB
}

// Create inserts a new tag into the PostgreSQL database.
func (p *PostgreSQLTagRepository) Create(ctx context.Context, tag *tagDomain.Tag) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO tags (id, name, color, usage_count, is_preset, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := querier.ExecContext(
		ctx,
		query,
		tag.ID,
		tag.Name,
		tag.Color,
		tag.UsageCount,
		tag.IsPreset,
		tag.CreatedAt,
		tag.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create tag")
	}
	return nil
}

// GetByName retrieves a tag by its unique name.
func (p *PostgreSQLTagRepository) GetByName(
	ctx context.Context,
	name string,
) (*tagDomain.Tag, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, color, usage_count, is_preset, created_at, updated_at
			  FROM tags
			  WHERE name = $1`

	var tag tagDomain.Tag
	err := querier.QueryRowContext(ctx, query, name).Scan(
		&tag.ID,
		&tag.Name,
		&tag.Color,
		&tag.UsageCount,
		&tag.IsPreset,
		&tag.CreatedAt,
		&tag.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, tagDomain.ErrTagNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get tag by name")
	}

	return &tag, nil
}

// List retrieves all tags, most used first.
func (p *PostgreSQLTagRepository) List(ctx context.Context) ([]*tagDomain.Tag, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, color, usage_count, is_preset, created_at, updated_at
			  FROM tags
			  ORDER BY usage_count DESC, name ASC`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list tags")
	}
	defer rows.Close()

	return scanTagRows(rows)
}

// IncrementUsage bumps the usage count of the named tag, registering it
// first when the index has not seen it yet.
func (p *PostgreSQLTagRepository) IncrementUsage(ctx context.Context, tag *tagDomain.Tag) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO tags (id, name, color, usage_count, is_preset, created_at, updated_at)
			  VALUES ($1, $2, $3, 1, FALSE, $4, $4)
			  ON CONFLICT (name) DO UPDATE
			  SET usage_count = tags.usage_count + 1,
				  updated_at = EXCLUDED.updated_at`

	_, err := querier.ExecContext(ctx, query, tag.ID, tag.Name, tag.Color, tag.UpdatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to increment tag usage")
	}
	return nil
}

// NewPostgreSQLTagRepository creates a new PostgreSQL Tag repository instance.
func NewPostgreSQLTagRepository(db *sql.DB) *PostgreSQLTagRepository {
	return &PostgreSQLTagRepository{db: db}
}

// scanTagRows scans a result set of tag rows.
func scanTagRows(rows *sql.Rows) ([]*tagDomain.Tag, error) {
	var tags []*tagDomain.Tag
	for rows.Next() {
		var tag tagDomain.Tag
		if err := rows.Scan(
			&tag.ID,
			&tag.Name,
			&tag.Color,
			&tag.UsageCount,
			&tag.IsPreset,
			&tag.CreatedAt,
			&tag.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan tag")
		}
		tags = append(tags, &tag)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate tags")
	}
	return tags, nil
}

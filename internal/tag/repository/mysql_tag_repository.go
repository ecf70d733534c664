package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/contenthub/backend/internal/database"
	apperrors "github.com/contenthub/backend/internal/errors"
	tagDomain "github.com/contenthub/backend/internal/tag/domain"
)

// MySQLTagRepository implements Tag persistence for MySQL databases.
type MySQLTagRepository struct {
	db *sql.DB
}

// Create inserts a new tag into the MySQL database.
func (m *MySQLTagRepository) Create(ctx context.Context, tag *tagDomain.Tag) error {
	querier := database.GetTx(ctx, m.db)

	id, err := tag.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal tag id")
	}

	query := `INSERT INTO tags (id, name, color, usage_count, is_preset, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
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
func (m *MySQLTagRepository) GetByName(
	ctx context.Context,
	name string,
) (*tagDomain.Tag, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, color, usage_count, is_preset, created_at, updated_at
			  FROM tags
			  WHERE name = ?`

	tag, err := scanTag(querier.QueryRowContext(ctx, query, name))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, tagDomain.ErrTagNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get tag by name")
	}
	return tag, nil
}

// List retrieves all tags, most used first.
func (m *MySQLTagRepository) List(ctx context.Context) ([]*tagDomain.Tag, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, color, usage_count, is_preset, created_at, updated_at
			  FROM tags
			  ORDER BY usage_count DESC, name ASC`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list tags")
	}
	defer rows.Close()

	var tags []*tagDomain.Tag
	for rows.Next() {
		var (
			tag   tagDomain.Tag
			rawID []byte
		)
		if err := rows.Scan(
			&rawID,
			&tag.Name,
			&tag.Color,
			&tag.UsageCount,
			&tag.IsPreset,
			&tag.CreatedAt,
			&tag.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan tag")
		}
		if err := tag.ID.UnmarshalBinary(rawID); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal tag id")
		}
		tags = append(tags, &tag)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate tags")
	}
	return tags, nil
}

// IncrementUsage bumps the usage count of the named tag, registering it
// first when the index has not seen it yet.
func (m *MySQLTagRepository) IncrementUsage(ctx context.Context, tag *tagDomain.Tag) error {
	querier := database.GetTx(ctx, m.db)

	id, err := tag.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal tag id")
	}

	query := `INSERT INTO tags (id, name, color, usage_count, is_preset, created_at, updated_at)
			  VALUES (?, ?, ?, 1, FALSE, ?, ?)
			  ON DUPLICATE KEY UPDATE
			  usage_count = usage_count + 1,
			  updated_at = VALUES(updated_at)`

	_, err = querier.ExecContext(ctx, query, id, tag.Name, tag.Color, tag.UpdatedAt, tag.UpdatedAt)
	if err != nil {
		return apperrors.Wrap(err, "failed to increment tag usage")
	}
	return nil
}

// NewMySQLTagRepository creates a new MySQL Tag repository instance.
func NewMySQLTagRepository(db *sql.DB) *MySQLTagRepository {
	return &MySQLTagRepository{db: db}
}

// scanTag scans a single tag row with a BINARY(16) id column.
func scanTag(row *sql.Row) (*tagDomain.Tag, error) {
	var (
		tag   tagDomain.Tag
		rawID []byte
	)
	err := row.Scan(
		&rawID,
		&tag.Name,
		&tag.Color,
		&tag.UsageCount,
		&tag.IsPreset,
		&tag.CreatedAt,
		&tag.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	var id uuid.UUID
	if err := id.UnmarshalBinary(rawID); err != nil {
		return nil, err
	}
	tag.ID = id
	return &tag, nil
}

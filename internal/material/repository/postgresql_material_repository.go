// Package repository implements data persistence for materials.
// Repositories support both PostgreSQL and MySQL with soft deletion into
// a recycle bin. Tags are stored as a JSON array column.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/contenthub/backend/internal/database"
	apperrors "github.com/contenthub/backend/internal/errors"
	materialDomain "github.com/contenthub/backend/internal/material/domain"
)

// marshalTags serializes a tag slice to its JSON column representation.
func marshalTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal tags")
	}
	return data, nil
}

// unmarshalTags deserializes the JSON tags column.
func unmarshalTags(data []byte) ([]string, error) {
	if len(data) == 0 {
		return []string{}, nil
	}
	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal tags")
	}
	return tags, nil
}

// PostgreSQLMaterialRepository implements Material persistence for PostgreSQL databases.
type PostgreSQLMaterialRepository struct {
	db *sql.DB
}

// Create inserts a new material into the PostgreSQL database.
func (p *PostgreSQLMaterialRepository) Create(
	ctx context.Context,
	material *materialDomain.Material,
) error {
	querier := database.GetTx(ctx, p.db)

	tags, err := marshalTags(material.Tags)
	if err != nil {
		return err
	}

	query := `INSERT INTO materials
			  (id, title, content, content_length, source_type, source_url, tags, created_at, updated_at, deleted_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err = querier.ExecContext(
		ctx,
		query,
		material.ID,
		material.Title,
		material.Content,
		material.ContentLength,
		string(material.SourceType),
		material.SourceURL,
		tags,
		material.CreatedAt,
		material.UpdatedAt,
		material.DeletedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create material")
	}
	return nil
}

// GetByID retrieves a material by its identifier, including soft-deleted rows.
func (p *PostgreSQLMaterialRepository) GetByID(
	ctx context.Context,
	materialID uuid.UUID,
) (*materialDomain.Material, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, title, content, content_length, source_type, source_url, tags,
			  created_at, updated_at, deleted_at
			  FROM materials
			  WHERE id = $1`

	return scanMaterialRow(querier.QueryRowContext(ctx, query, materialID))
}

// List retrieves active materials ordered by newest first, with an optional
// source type filter.
func (p *PostgreSQLMaterialRepository) List(
	ctx context.Context,
	sourceType string,
	offset, limit int,
) ([]*materialDomain.Material, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, title, content, content_length, source_type, source_url, tags,
			  created_at, updated_at, deleted_at
			  FROM materials
			  WHERE deleted_at IS NULL AND ($1 = '' OR source_type = $1)
			  ORDER BY created_at DESC
			  OFFSET $2 LIMIT $3`

	rows, err := querier.QueryContext(ctx, query, sourceType, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list materials")
	}
	defer rows.Close()

	return scanMaterialRows(rows)
}

// ListDeleted retrieves soft-deleted materials (the recycle bin) ordered by
// most recently deleted first.
func (p *PostgreSQLMaterialRepository) ListDeleted(
	ctx context.Context,
	offset, limit int,
) ([]*materialDomain.Material, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, title, content, content_length, source_type, source_url, tags,
			  created_at, updated_at, deleted_at
			  FROM materials
			  WHERE deleted_at IS NOT NULL
			  ORDER BY deleted_at DESC
			  OFFSET $1 LIMIT $2`

	rows, err := querier.QueryContext(ctx, query, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list deleted materials")
	}
	defer rows.Close()

	return scanMaterialRows(rows)
}

// UpdateTags replaces the tag list of an active material.
func (p *PostgreSQLMaterialRepository) UpdateTags(
	ctx context.Context,
	materialID uuid.UUID,
	tags []string,
	updatedAt time.Time,
) error {
	querier := database.GetTx(ctx, p.db)

	tagsJSON, err := marshalTags(tags)
	if err != nil {
		return err
	}

	query := `UPDATE materials
			  SET tags = $1, updated_at = $2
			  WHERE id = $3 AND deleted_at IS NULL`

	result, err := querier.ExecContext(ctx, query, tagsJSON, updatedAt, materialID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update material tags")
	}
	return requireRowAffected(result)
}

// SoftDelete moves an active material to the recycle bin.
func (p *PostgreSQLMaterialRepository) SoftDelete(
	ctx context.Context,
	materialID uuid.UUID,
	deletedAt time.Time,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE materials
			  SET deleted_at = $1, updated_at = $1
			  WHERE id = $2 AND deleted_at IS NULL`

	result, err := querier.ExecContext(ctx, query, deletedAt, materialID)
	if err != nil {
		return apperrors.Wrap(err, "failed to soft delete material")
	}
	return requireRowAffected(result)
}

// Restore moves a soft-deleted material back out of the recycle bin.
func (p *PostgreSQLMaterialRepository) Restore(ctx context.Context, materialID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE materials
			  SET deleted_at = NULL, updated_at = $1
			  WHERE id = $2 AND deleted_at IS NOT NULL`

	result, err := querier.ExecContext(ctx, query, time.Now().UTC(), materialID)
	if err != nil {
		return apperrors.Wrap(err, "failed to restore material")
	}
	return requireRowAffected(result)
}

// Delete permanently removes a material row.
func (p *PostgreSQLMaterialRepository) Delete(ctx context.Context, materialID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM materials WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, materialID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete material")
	}
	return requireRowAffected(result)
}

// NewPostgreSQLMaterialRepository creates a new PostgreSQL Material repository instance.
func NewPostgreSQLMaterialRepository(db *sql.DB) *PostgreSQLMaterialRepository {
	return &PostgreSQLMaterialRepository{db: db}
}

// requireRowAffected converts a zero-row update into a not-found error.
func requireRowAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return materialDomain.ErrMaterialNotFound
	}
	return nil
}

// scanMaterialRow scans a single material row.
func scanMaterialRow(row *sql.Row) (*materialDomain.Material, error) {
	var material materialDomain.Material
	var sourceType string
	var tags []byte

	err := row.Scan(
		&material.ID,
		&material.Title,
		&material.Content,
		&material.ContentLength,
		&sourceType,
		&material.SourceURL,
		&tags,
		&material.CreatedAt,
		&material.UpdatedAt,
		&material.DeletedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, materialDomain.ErrMaterialNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get material")
	}

	material.SourceType = materialDomain.SourceType(sourceType)
	material.Tags, err = unmarshalTags(tags)
	if err != nil {
		return nil, err
	}
	return &material, nil
}

// scanMaterialRows scans a result set of material rows.
func scanMaterialRows(rows *sql.Rows) ([]*materialDomain.Material, error) {
	var materials []*materialDomain.Material
	for rows.Next() {
		var material materialDomain.Material
		var sourceType string
		var tags []byte

		err := rows.Scan(
			&material.ID,
			&material.Title,
			&material.Content,
			&material.ContentLength,
			&sourceType,
			&material.SourceURL,
			&tags,
			&material.CreatedAt,
			&material.UpdatedAt,
			&material.DeletedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan material")
		}

		material.SourceType = materialDomain.SourceType(sourceType)
		material.Tags, err = unmarshalTags(tags)
		if err != nil {
			return nil, err
		}
		materials = append(materials, &material)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate materials")
	}
	return materials, nil
}

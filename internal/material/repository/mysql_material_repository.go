package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/contenthub/backend/internal/database"
	apperrors "github.com/contenthub/backend/internal/errors"
	materialDomain "github.com/contenthub/backend/internal/material/domain"
)

// MySQLMaterialRepository implements Material persistence for MySQL databases.
type MySQLMaterialRepository struct {
	db *sql.DB
}

// Create inserts a new material into the MySQL database.
func (m *MySQLMaterialRepository) Create(
	ctx context.Context,
	material *materialDomain.Material,
) error {
	querier := database.GetTx(ctx, m.db)

	tags, err := marshalTags(material.Tags)
	if err != nil {
		return err
	}

	id, err := material.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal material id")
	}

	query := `INSERT INTO materials
			  (id, title, content, content_length, source_type, source_url, tags, created_at, updated_at, deleted_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
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
func (m *MySQLMaterialRepository) GetByID(
	ctx context.Context,
	materialID uuid.UUID,
) (*materialDomain.Material, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := materialID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal material id")
	}

	query := `SELECT id, title, content, content_length, source_type, source_url, tags,
			  created_at, updated_at, deleted_at
			  FROM materials
			  WHERE id = ?`

	return scanMaterialRow(querier.QueryRowContext(ctx, query, id))
}

// List retrieves active materials ordered by newest first, with an optional
// source type filter.
func (m *MySQLMaterialRepository) List(
	ctx context.Context,
	sourceType string,
	offset, limit int,
) ([]*materialDomain.Material, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, title, content, content_length, source_type, source_url, tags,
			  created_at, updated_at, deleted_at
			  FROM materials
			  WHERE deleted_at IS NULL AND (? = '' OR source_type = ?)
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, sourceType, sourceType, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list materials")
	}
	defer rows.Close()

	return scanMaterialRows(rows)
}

// ListDeleted retrieves soft-deleted materials ordered by most recently deleted first.
func (m *MySQLMaterialRepository) ListDeleted(
	ctx context.Context,
	offset, limit int,
) ([]*materialDomain.Material, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, title, content, content_length, source_type, source_url, tags,
			  created_at, updated_at, deleted_at
			  FROM materials
			  WHERE deleted_at IS NOT NULL
			  ORDER BY deleted_at DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list deleted materials")
	}
	defer rows.Close()

	return scanMaterialRows(rows)
}

// UpdateTags replaces the tag list of an active material.
func (m *MySQLMaterialRepository) UpdateTags(
	ctx context.Context,
	materialID uuid.UUID,
	tags []string,
	updatedAt time.Time,
) error {
	querier := database.GetTx(ctx, m.db)

	id, err := materialID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal material id")
	}

	tagsJSON, err := marshalTags(tags)
	if err != nil {
		return err
	}

	query := `UPDATE materials
			  SET tags = ?, updated_at = ?
			  WHERE id = ? AND deleted_at IS NULL`

	result, err := querier.ExecContext(ctx, query, tagsJSON, updatedAt, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update material tags")
	}
	return requireRowAffected(result)
}

// SoftDelete moves an active material to the recycle bin.
func (m *MySQLMaterialRepository) SoftDelete(
	ctx context.Context,
	materialID uuid.UUID,
	deletedAt time.Time,
) error {
	querier := database.GetTx(ctx, m.db)

	id, err := materialID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal material id")
	}

	query := `UPDATE materials
			  SET deleted_at = ?, updated_at = ?
			  WHERE id = ? AND deleted_at IS NULL`

	result, err := querier.ExecContext(ctx, query, deletedAt, deletedAt, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to soft delete material")
	}
	return requireRowAffected(result)
}

// Restore moves a soft-deleted material back out of the recycle bin.
func (m *MySQLMaterialRepository) Restore(ctx context.Context, materialID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	id, err := materialID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal material id")
	}

	query := `UPDATE materials
			  SET deleted_at = NULL, updated_at = ?
			  WHERE id = ? AND deleted_at IS NOT NULL`

	result, err := querier.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return apperrors.Wrap(err, "failed to restore material")
	}
	return requireRowAffected(result)
}

// Delete permanently removes a material row.
func (m *MySQLMaterialRepository) Delete(ctx context.Context, materialID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	id, err := materialID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal material id")
	}

	query := `DELETE FROM materials WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete material")
	}
	return requireRowAffected(result)
}

// NewMySQLMaterialRepository creates a new MySQL Material repository instance.
func NewMySQLMaterialRepository(db *sql.DB) *MySQLMaterialRepository {
	return &MySQLMaterialRepository{db: db}
}

package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/contenthub/backend/internal/database"
	apperrors "github.com/contenthub/backend/internal/errors"
	topicDomain "github.com/contenthub/backend/internal/topic/domain"
)

// MySQLTopicRepository implements Topic persistence for MySQL databases.
type MySQLTopicRepository struct {
	db *sql.DB
}

// Create inserts a new topic into the MySQL database.
func (m *MySQLTopicRepository) Create(ctx context.Context, topic *topicDomain.Topic) error {
	querier := database.GetTx(ctx, m.db)

	tags, err := marshalTags(topic.Tags)
	if err != nil {
		return err
	}

	id, err := topic.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal topic id")
	}

	materialID, err := topic.MaterialID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal material id")
	}

	query := `INSERT INTO topics
			  (id, material_id, title, content, prompt_name, tags, source_type, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		materialID,
		topic.Title,
		topic.Content,
		topic.PromptName,
		tags,
		topic.SourceType,
		topic.CreatedAt,
		topic.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create topic")
	}
	return nil
}

// GetByID retrieves a topic by its identifier.
func (m *MySQLTopicRepository) GetByID(
	ctx context.Context,
	topicID uuid.UUID,
) (*topicDomain.Topic, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := topicID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal topic id")
	}

	query := `SELECT id, material_id, title, content, prompt_name, tags, source_type,
			  created_at, updated_at
			  FROM topics
			  WHERE id = ?`

	return scanTopicRow(querier.QueryRowContext(ctx, query, id))
}

// List retrieves topics ordered by newest first, optionally filtered by material.
func (m *MySQLTopicRepository) List(
	ctx context.Context,
	materialID *uuid.UUID,
	offset, limit int,
) ([]*topicDomain.Topic, error) {
	querier := database.GetTx(ctx, m.db)

	var filter []byte
	if materialID != nil {
		var err error
		filter, err = materialID.MarshalBinary()
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to marshal material id")
		}
	}

	query := `SELECT id, material_id, title, content, prompt_name, tags, source_type,
			  created_at, updated_at
			  FROM topics
			  WHERE (? IS NULL OR material_id = ?)
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, filter, filter, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list topics")
	}
	defer rows.Close()

	return scanTopicRows(rows)
}

// Update rewrites a topic's title, content and tags.
func (m *MySQLTopicRepository) Update(ctx context.Context, topic *topicDomain.Topic) error {
	querier := database.GetTx(ctx, m.db)

	tags, err := marshalTags(topic.Tags)
	if err != nil {
		return err
	}

	id, err := topic.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal topic id")
	}

	query := `UPDATE topics
			  SET title = ?, content = ?, tags = ?, updated_at = ?
			  WHERE id = ?`

	result, err := querier.ExecContext(
		ctx,
		query,
		topic.Title,
		topic.Content,
		tags,
		time.Now().UTC(),
		id,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update topic")
	}
	return requireTopicRowAffected(result)
}

// Delete removes a topic row.
func (m *MySQLTopicRepository) Delete(ctx context.Context, topicID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	id, err := topicID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal topic id")
	}

	query := `DELETE FROM topics WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete topic")
	}
	return requireTopicRowAffected(result)
}

// NewMySQLTopicRepository creates a new MySQL Topic repository instance.
func NewMySQLTopicRepository(db *sql.DB) *MySQLTopicRepository {
	return &MySQLTopicRepository{db: db}
}

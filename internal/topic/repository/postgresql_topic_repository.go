// Package repository implements data persistence for topics.
// Repositories support both PostgreSQL and MySQL. Tags are stored as a JSON
// array column.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/contenthub/backend/internal/database"
	apperrors "github.com/contenthub/backend/internal/errors"
	topicDomain "github.com/contenthub/backend/internal/topic/domain"
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

// PostgreSQLTopicRepository implements Topic persistence for PostgreSQL databases.
type PostgreSQLTopicRepository struct {
	db *sql.DB
}

// Create inserts a new topic into the PostgreSQL database.
func (p *PostgreSQLTopicRepository) Create(ctx context.Context, topic *topicDomain.Topic) error {
	querier := database.GetTx(ctx, p.db)

	tags, err := marshalTags(topic.Tags)
	if err != nil {
		return err
	}

	query := `INSERT INTO topics
			  (id, material_id, title, content, prompt_name, tags, source_type, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err = querier.ExecContext(
		ctx,
		query,
		topic.ID,
		topic.MaterialID,
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
func (p *PostgreSQLTopicRepository) GetByID(
	ctx context.Context,
	topicID uuid.UUID,
) (*topicDomain.Topic, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, material_id, title, content, prompt_name, tags, source_type,
			  created_at, updated_at
			  FROM topics
			  WHERE id = $1`

	return scanTopicRow(querier.QueryRowContext(ctx, query, topicID))
}

// List retrieves topics ordered by newest first, optionally filtered by material.
func (p *PostgreSQLTopicRepository) List(
	ctx context.Context,
	materialID *uuid.UUID,
	offset, limit int,
) ([]*topicDomain.Topic, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, material_id, title, content, prompt_name, tags, source_type,
			  created_at, updated_at
			  FROM topics
			  WHERE ($1::uuid IS NULL OR material_id = $1)
			  ORDER BY created_at DESC
			  OFFSET $2 LIMIT $3`

	rows, err := querier.QueryContext(ctx, query, materialID, offset, limit)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list topics")
	}
	defer rows.Close()

	return scanTopicRows(rows)
}

// Update rewrites a topic's title, content and tags.
func (p *PostgreSQLTopicRepository) Update(ctx context.Context, topic *topicDomain.Topic) error {
	querier := database.GetTx(ctx, p.db)

	tags, err := marshalTags(topic.Tags)
	if err != nil {
		return err
	}

	query := `UPDATE topics
			  SET title = $1, content = $2, tags = $3, updated_at = $4
			  WHERE id = $5`

	result, err := querier.ExecContext(
		ctx,
		query,
		topic.Title,
		topic.Content,
		tags,
		time.Now().UTC(),
		topic.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update topic")
	}
	return requireTopicRowAffected(result)
}

// Delete removes a topic row.
func (p *PostgreSQLTopicRepository) Delete(ctx context.Context, topicID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM topics WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, topicID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete topic")
	}
	return requireTopicRowAffected(result)
}

// NewPostgreSQLTopicRepository creates a new PostgreSQL Topic repository instance.
func NewPostgreSQLTopicRepository(db *sql.DB) *PostgreSQLTopicRepository {
	return &PostgreSQLTopicRepository{db: db}
}

// requireTopicRowAffected converts a zero-row update into a not-found error.
func requireTopicRowAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return topicDomain.ErrTopicNotFound
	}
	return nil
}

// scanTopicRow scans a single topic row.
func scanTopicRow(row *sql.Row) (*topicDomain.Topic, error) {
	var topic topicDomain.Topic
	var tags []byte

	err := row.Scan(
		&topic.ID,
		&topic.MaterialID,
		&topic.Title,
		&topic.Content,
		&topic.PromptName,
		&tags,
		&topic.SourceType,
		&topic.CreatedAt,
		&topic.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, topicDomain.ErrTopicNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get topic")
	}

	topic.Tags, err = unmarshalTags(tags)
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

// scanTopicRows scans a result set of topic rows.
func scanTopicRows(rows *sql.Rows) ([]*topicDomain.Topic, error) {
	var topics []*topicDomain.Topic
	for rows.Next() {
		var topic topicDomain.Topic
		var tags []byte

		err := rows.Scan(
			&topic.ID,
			&topic.MaterialID,
			&topic.Title,
			&topic.Content,
			&topic.PromptName,
			&tags,
			&topic.SourceType,
			&topic.CreatedAt,
			&topic.UpdatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan topic")
		}

		topic.Tags, err = unmarshalTags(tags)
		if err != nil {
			return nil, err
		}
		topics = append(topics, &topic)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate topics")
	}
	return topics, nil
}

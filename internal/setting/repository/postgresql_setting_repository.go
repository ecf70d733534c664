// Package repository implements data persistence for application settings.
// Repositories support both PostgreSQL and MySQL with key-based upserts.
package repository

import (
	"context"
	"database/sql"

	"github.com/contenthub/backend/internal/database"
	apperrors "github.com/contenthub/backend/internal/errors"
	settingDomain "github.com/contenthub/backend/internal/setting/domain"
)

// PostgreSQLSettingRepository implements Setting persistence for PostgreSQL databases.
type PostgreSQLSettingRepository struct {
	db *sql.DB
}

// Upsert inserts a setting or updates its value when the key already exists.
func (p *PostgreSQLSettingRepository) Upsert(ctx context.Context, setting *settingDomain.Setting) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO settings (key, value, created_at, updated_at)
			  VALUES ($1, $2, $3, $4)
			  ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = $4`

	_, err := querier.ExecContext(
		ctx,
		query,
		setting.Key,
		setting.Value,
		setting.CreatedAt,
		setting.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to upsert setting")
	}
	return nil
}

// GetByKey retrieves a setting by its key.
func (p *PostgreSQLSettingRepository) GetByKey(
	ctx context.Context,
	key string,
) (*settingDomain.Setting, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT key, value, created_at, updated_at
			  FROM settings
			  WHERE key = $1`

	var setting settingDomain.Setting
	err := querier.QueryRowContext(ctx, query, key).Scan(
		&setting.Key,
		&setting.Value,
		&setting.CreatedAt,
		&setting.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, settingDomain.ErrSettingNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get setting by key")
	}

	return &setting, nil
}

// List retrieves all settings ordered by key.
func (p *PostgreSQLSettingRepository) List(ctx context.Context) ([]*settingDomain.Setting, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT key, value, created_at, updated_at
			  FROM settings
			  ORDER BY key ASC`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list settings")
	}
	defer rows.Close()

	var settings []*settingDomain.Setting
	for rows.Next() {
		var setting settingDomain.Setting
		if err := rows.Scan(
			&setting.Key,
			&setting.Value,
			&setting.CreatedAt,
			&setting.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan setting")
		}
		settings = append(settings, &setting)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate settings")
	}

	return settings, nil
}

// NewPostgreSQLSettingRepository creates a new PostgreSQL Setting repository instance.
func NewPostgreSQLSettingRepository(db *sql.DB) *PostgreSQLSettingRepository {
	return &PostgreSQLSettingRepository{db: db}
}

package repository

import (
	"context"
	"database/sql"

	"github.com/contenthub/backend/internal/database"
	apperrors "github.com/contenthub/backend/internal/errors"
	settingDomain "github.com/contenthub/backend/internal/setting/domain"
)

// MySQLSettingRepository implements Setting persistence for MySQL databases.
type MySQLSettingRepository struct {
	db *sql.DB
}

// Upsert inserts a setting or updates its value when the key already exists.
func (m *MySQLSettingRepository) Upsert(ctx context.Context, setting *settingDomain.Setting) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO settings (` + "`key`" + `, value, created_at, updated_at)
			  VALUES (?, ?, ?, ?)
			  ON DUPLICATE KEY UPDATE value = VALUES(value), updated_at = VALUES(updated_at)`

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
func (m *MySQLSettingRepository) GetByKey(
	ctx context.Context,
	key string,
) (*settingDomain.Setting, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + "`key`" + `, value, created_at, updated_at
			  FROM settings
			  WHERE ` + "`key`" + ` = ?`

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
func (m *MySQLSettingRepository) List(ctx context.Context) ([]*settingDomain.Setting, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + "`key`" + `, value, created_at, updated_at
			  FROM settings
			  ORDER BY ` + "`key`" + ` ASC`

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

// NewMySQLSettingRepository creates a new MySQL Setting repository instance.
func NewMySQLSettingRepository(db *sql.DB) *MySQLSettingRepository {
	return &MySQLSettingRepository{db: db}
}

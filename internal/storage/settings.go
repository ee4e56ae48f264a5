package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tallyhq/tally/internal/model"
)

// categoriesKey is the settings key holding the serialized category catalog.
const categoriesKey = "categories"

// GetSetting returns the value for a settings key, or "" when unset.
func (s *SQLiteStorage) GetSetting(ctx context.Context, key string) (string, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}
	if err := validateString(key, "key"); err != nil {
		return "", err
	}

	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to query setting %s: %w", key, err)
	}
	return value, nil
}

// SetSetting upserts a settings key.
func (s *SQLiteStorage) SetSetting(ctx context.Context, key, value string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(key, "key"); err != nil {
		return err
	}

	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set setting %s: %w", key, err)
	}
	return nil
}

// Load returns the category catalog stored as JSON under the categories
// settings key. A missing key yields an empty list, which the catalog treats
// as a fresh install. Implements catalog.Repository.
func (s *SQLiteStorage) Load(ctx context.Context) ([]model.Category, error) {
	raw, err := s.GetSetting(ctx, categoriesKey)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	var categories []model.Category
	if err := json.Unmarshal([]byte(raw), &categories); err != nil {
		return nil, fmt.Errorf("failed to decode stored categories: %w", err)
	}

	slog.Debug("loaded category catalog", "count", len(categories))
	return categories, nil
}

// Save stores the category catalog as JSON. Implements catalog.Repository.
func (s *SQLiteStorage) Save(ctx context.Context, categories []model.Category) error {
	raw, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("failed to encode categories: %w", err)
	}
	return s.SetSetting(ctx, categoriesKey, string(raw))
}

package sqldb

import (
	"context"
	"fmt"
)

type SettingsRepository struct {
	store *Store
}

func NewSettingsRepository(store *Store) *SettingsRepository {
	return &SettingsRepository{store: store}
}

func (r *SettingsRepository) Get(ctx context.Context, key string) (string, bool, error) {
	query, err := r.store.query(`SELECT value FROM settings WHERE key = ?`)
	if err != nil {
		return "", false, fmt.Errorf("build get setting query: %w", err)
	}

	var value string
	if err := r.store.db.GetContext(ctx, &value, query, key); err != nil {
		if isNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get setting: %w", err)
	}

	return value, true, nil
}

func (r *SettingsRepository) Set(ctx context.Context, key, value string) error {
	// The explicit ON CONFLICT upsert parses identically on both backends.
	query, err := r.store.query(`INSERT INTO settings (key, value) VALUES (?, ?)
ON CONFLICT (key) DO UPDATE SET value = excluded.value`)
	if err != nil {
		return fmt.Errorf("build set setting query: %w", err)
	}

	if _, err := r.store.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("set setting: %w", err)
	}

	return nil
}

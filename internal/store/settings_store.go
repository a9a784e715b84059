package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
)

// settingsStore is the SQLite-backed implementation of [SettingsStore].
type settingsStore struct {
	*DB
	logger *logger.Logger
}

func NewSettingsStore(db *DB, log *logger.Logger) SettingsStore {
	return &settingsStore{DB: db, logger: log}
}

func (s *settingsStore) LastSyncTime(ctx context.Context, userID string) (*time.Time, error) {
	query, args, err := sb.Select("last_sync_at").
		From("sync_settings").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var lastSync sql.NullTime
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&lastSync)
	if errors.Is(err, sql.ErrNoRows) {
		// Never synced from this device.
		return nil, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "settingsStore.LastSyncTime").
			Str("user_id", userID).
			Msg("failed to read last sync time")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if !lastSync.Valid {
		return nil, nil
	}
	at := lastSync.Time
	return &at, nil
}

func (s *settingsStore) SetLastSyncTime(ctx context.Context, userID string, at time.Time) error {
	query, args, err := sb.Insert("sync_settings").
		Columns("user_id", "last_sync_at").
		Values(userID, at).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET last_sync_at = excluded.last_sync_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "settingsStore.SetLastSyncTime").
			Str("user_id", userID).
			Msg("failed to persist last sync time")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (s *settingsStore) ClearLastSyncTime(ctx context.Context, userID string) error {
	query, args, err := sb.Delete("sync_settings").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "settingsStore.ClearLastSyncTime").
			Str("user_id", userID).
			Msg("failed to clear last sync time")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

package store

import (
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
)

func newTestSettingsStore(t *testing.T, db *sql.DB) SettingsStore {
	t.Helper()
	return NewSettingsStore(newDBFromSQL(db), logger.Nop())
}

func TestSettingsStore_LastSyncTime(t *testing.T) {
	db, mock := newTestDB(t)
	ss := newTestSettingsStore(t, db)

	// ── never synced: no row, no error ────────────────────────────────────
	mock.ExpectQuery(`SELECT last_sync_at FROM sync_settings WHERE user_id = \?`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"last_sync_at"}))

	lastSync, err := ss.LastSyncTime(testContext(), "user-1")
	require.NoError(t, err)
	assert.Nil(t, lastSync)

	// ── synced before: timestamp comes back ───────────────────────────────
	at := time.Date(2026, 8, 20, 10, 30, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT last_sync_at FROM sync_settings`).
		WillReturnRows(sqlmock.NewRows([]string{"last_sync_at"}).AddRow(at))

	lastSync, err = ss.LastSyncTime(testContext(), "user-1")
	require.NoError(t, err)
	require.NotNil(t, lastSync)
	assert.True(t, at.Equal(*lastSync))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsStore_SetLastSyncTime(t *testing.T) {
	db, mock := newTestDB(t)
	ss := newTestSettingsStore(t, db)
	at := time.Now()

	mock.ExpectExec(`INSERT INTO sync_settings`).
		WithArgs("user-1", at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, ss.SetLastSyncTime(testContext(), "user-1", at))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsStore_ClearLastSyncTime(t *testing.T) {
	db, mock := newTestDB(t)
	ss := newTestSettingsStore(t, db)

	mock.ExpectExec(`DELETE FROM sync_settings WHERE user_id = \?`).
		WithArgs("user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, ss.ClearLastSyncTime(testContext(), "user-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:     db,
		logger: logger.Nop(),
	}
}

func newTestVaultStore(t *testing.T, db *sql.DB) VaultStore {
	t.Helper()
	return NewVaultStore(newDBFromSQL(db), logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func TestVaultStore_GetCiphers(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	cipher := models.Cipher{ID: "c1", Type: models.CipherTypeLogin, Name: "enc_name", RevisionDate: now}

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock, t *testing.T)
		wantErr error
		wantLen int
	}{
		{
			name: "success: two rows",
			setup: func(mock sqlmock.Sqlmock, t *testing.T) {
				other := cipher
				other.ID = "c2"
				mock.ExpectQuery(`SELECT data FROM ciphers WHERE user_id = \? ORDER BY id`).
					WithArgs("user-1").
					WillReturnRows(sqlmock.NewRows([]string{"data"}).
						AddRow(mustJSON(t, cipher)).
						AddRow(mustJSON(t, other)))
			},
			wantLen: 2,
		},
		{
			name: "error: query fails",
			setup: func(mock sqlmock.Sqlmock, t *testing.T) {
				mock.ExpectQuery(`SELECT data FROM ciphers`).
					WillReturnError(errors.New("disk i/o error"))
			},
			wantErr: ErrExecutingQuery,
		},
		{
			name: "error: corrupt stored record",
			setup: func(mock sqlmock.Sqlmock, t *testing.T) {
				mock.ExpectQuery(`SELECT data FROM ciphers`).
					WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow("{not json"))
			},
			wantErr: ErrDecodingRecord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			tt.setup(mock, t)
			vs := newTestVaultStore(t, db)

			ciphers, err := vs.GetCiphers(testContext(), "user-1")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, ciphers, tt.wantLen)
			assert.Equal(t, "c1", ciphers[0].ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestVaultStore_GetCipher(t *testing.T) {
	db, mock := newTestDB(t)
	vs := newTestVaultStore(t, db)
	cipher := models.Cipher{ID: "c1", Type: models.CipherTypeSecureNote, Name: "enc"}

	// ── found ─────────────────────────────────────────────────────────────
	mock.ExpectQuery(`SELECT data FROM ciphers WHERE id = \? AND user_id = \?`).
		WithArgs("c1", "user-1").
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow(mustJSON(t, cipher)))

	got, err := vs.GetCipher(testContext(), "user-1", "c1")
	require.NoError(t, err)
	assert.Equal(t, cipher.ID, got.ID)

	// ── not found maps to the sentinel ────────────────────────────────────
	mock.ExpectQuery(`SELECT data FROM ciphers`).
		WillReturnRows(sqlmock.NewRows([]string{"data"}))

	_, err = vs.GetCipher(testContext(), "user-1", "missing")
	require.ErrorIs(t, err, ErrRecordNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultStore_SaveCipher_SignalsObservers(t *testing.T) {
	db, mock := newTestDB(t)
	vs := newTestVaultStore(t, db)

	ctx, cancel := context.WithCancel(testContext())
	defer cancel()
	changes := vs.Observe(ctx, "user-1")

	// Initial signal arrives on subscribe.
	select {
	case <-changes:
	case <-time.After(time.Second):
		t.Fatal("no initial change signal")
	}

	mock.ExpectExec(`INSERT INTO ciphers`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	folderID := "f1"
	err := vs.SaveCipher(ctx, "user-1", models.Cipher{ID: "c1", FolderID: &folderID, RevisionDate: time.Now()})
	require.NoError(t, err)

	select {
	case <-changes:
	case <-time.After(time.Second):
		t.Fatal("no change signal after save")
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultStore_DeleteFolder_ClearsCipherReferences(t *testing.T) {
	db, mock := newTestDB(t)
	vs := newTestVaultStore(t, db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM folders WHERE id = \? AND user_id = \?`).
		WithArgs("f1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE ciphers SET folder_id = \?, data = json_set`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	err := vs.DeleteFolder(testContext(), "user-1", "f1")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultStore_DeleteFolder_RollbackOnError(t *testing.T) {
	db, mock := newTestDB(t)
	vs := newTestVaultStore(t, db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM folders`).
		WillReturnError(errors.New("locked"))
	mock.ExpectRollback()

	err := vs.DeleteFolder(testContext(), "user-1", "f1")
	require.ErrorIs(t, err, ErrExecutingQuery)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultStore_ReplaceVault(t *testing.T) {
	db, mock := newTestDB(t)
	vs := newTestVaultStore(t, db)
	now := time.Now()

	mock.ExpectBegin()
	for range []string{"ciphers", "folders", "collections", "sends", "domains", "policies"} {
		mock.ExpectExec(`DELETE FROM`).
			WithArgs("user-1").
			WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectExec(`INSERT INTO ciphers`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO folders`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO sends`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO domains`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := vs.ReplaceVault(testContext(), "user-1", VaultRecords{
		Ciphers: []models.Cipher{{ID: "c1", RevisionDate: now}},
		Folders: []models.Folder{{ID: "f1", RevisionDate: now}},
		Sends:   []models.Send{{ID: "s1", RevisionDate: now, DeletionDate: now}},
		Domains: &models.DomainsData{EquivalentDomains: [][]string{{"a.com", "b.com"}}},
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultStore_CipherCount(t *testing.T) {
	db, mock := newTestDB(t)
	vs := newTestVaultStore(t, db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM ciphers WHERE user_id = \?`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := vs.CipherCount(testContext(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 7, count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultStore_DeleteVaultData(t *testing.T) {
	db, mock := newTestDB(t)
	vs := newTestVaultStore(t, db)

	mock.ExpectBegin()
	for range []string{"ciphers", "folders", "collections", "sends", "domains", "policies"} {
		mock.ExpectExec(`DELETE FROM`).
			WithArgs("user-1").
			WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectCommit()

	err := vs.DeleteVaultData(testContext(), "user-1")
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVaultStore_GetDomains_NeverFetched(t *testing.T) {
	db, mock := newTestDB(t)
	vs := newTestVaultStore(t, db)

	mock.ExpectQuery(`SELECT data FROM domains WHERE user_id = \?`).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"data"}))

	domains, err := vs.GetDomains(testContext(), "user-1")
	require.NoError(t, err)
	assert.Nil(t, domains)
	require.NoError(t, mock.ExpectationsWereMet())
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
)

// vaultStore is the SQLite-backed implementation of [VaultStore]. Records are
// stored as JSON blobs alongside the handful of columns queries filter on
// (folder_id, organization_id, revision_date).
type vaultStore struct {
	*DB
	notifier *changeNotifier
	logger   *logger.Logger
}

// NewVaultStore constructs a [VaultStore] backed by the provided database
// connection and logger.
func NewVaultStore(db *DB, log *logger.Logger) VaultStore {
	return &vaultStore{
		DB:       db,
		notifier: newChangeNotifier(),
		logger:   log,
	}
}

func (v *vaultStore) ReplaceVault(ctx context.Context, userID string, records VaultRecords) error {
	log := logger.FromContext(ctx)

	tx, err := v.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "vaultStore.ReplaceVault").
			Str("user_id", userID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, table := range []string{"ciphers", "folders", "collections", "sends", "domains", "policies"} {
		query, args, buildErr := buildDeleteUserRecordsQuery(table, userID)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}
		if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
			log.Err(execErr).
				Str("func", "vaultStore.ReplaceVault").
				Str("user_id", userID).
				Str("table", table).
				Msg("failed to clear table for user")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
		}
	}

	for _, cipher := range records.Ciphers {
		if err = upsertCipherTx(ctx, tx, userID, cipher); err != nil {
			return err
		}
	}
	for _, folder := range records.Folders {
		if err = upsertFolderTx(ctx, tx, userID, folder); err != nil {
			return err
		}
	}
	for _, collection := range records.Collections {
		if err = upsertCollectionTx(ctx, tx, userID, collection); err != nil {
			return err
		}
	}
	for _, send := range records.Sends {
		if err = upsertSendTx(ctx, tx, userID, send); err != nil {
			return err
		}
	}
	for _, policy := range records.Policies {
		if err = upsertPolicyTx(ctx, tx, userID, policy); err != nil {
			return err
		}
	}
	if records.Domains != nil {
		if err = upsertDomainsTx(ctx, tx, userID, *records.Domains); err != nil {
			return err
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "vaultStore.ReplaceVault").
			Str("user_id", userID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, commitErr)
	}

	log.Debug().
		Str("func", "vaultStore.ReplaceVault").
		Str("user_id", userID).
		Int("ciphers", len(records.Ciphers)).
		Int("folders", len(records.Folders)).
		Int("collections", len(records.Collections)).
		Int("sends", len(records.Sends)).
		Msg("replaced local vault snapshot")

	v.notifier.notify(userID)
	return nil
}

func (v *vaultStore) GetCiphers(ctx context.Context, userID string) ([]models.Cipher, error) {
	return selectRecords[models.Cipher](ctx, v.DB, "ciphers", userID)
}

func (v *vaultStore) GetFolders(ctx context.Context, userID string) ([]models.Folder, error) {
	return selectRecords[models.Folder](ctx, v.DB, "folders", userID)
}

func (v *vaultStore) GetCollections(ctx context.Context, userID string) ([]models.Collection, error) {
	return selectRecords[models.Collection](ctx, v.DB, "collections", userID)
}

func (v *vaultStore) GetSends(ctx context.Context, userID string) ([]models.Send, error) {
	return selectRecords[models.Send](ctx, v.DB, "sends", userID)
}

func (v *vaultStore) GetDomains(ctx context.Context, userID string) (*models.DomainsData, error) {
	query, args, err := buildSelectDomainsQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var data string
	err = v.DB.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var domains models.DomainsData
	if decodeErr := json.Unmarshal([]byte(data), &domains); decodeErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingRecord, decodeErr)
	}
	return &domains, nil
}

func (v *vaultStore) GetPolicies(ctx context.Context, userID string) ([]models.Policy, error) {
	return selectRecords[models.Policy](ctx, v.DB, "policies", userID)
}

func (v *vaultStore) GetCipher(ctx context.Context, userID, cipherID string) (*models.Cipher, error) {
	return selectRecord[models.Cipher](ctx, v.DB, "ciphers", userID, cipherID)
}

func (v *vaultStore) GetFolder(ctx context.Context, userID, folderID string) (*models.Folder, error) {
	return selectRecord[models.Folder](ctx, v.DB, "folders", userID, folderID)
}

func (v *vaultStore) GetSend(ctx context.Context, userID, sendID string) (*models.Send, error) {
	return selectRecord[models.Send](ctx, v.DB, "sends", userID, sendID)
}

func (v *vaultStore) SaveCipher(ctx context.Context, userID string, cipher models.Cipher) error {
	if err := v.execWrite(ctx, "vaultStore.SaveCipher", userID, func() (string, []any, error) {
		data, err := encodeRecord(cipher)
		if err != nil {
			return "", nil, err
		}
		return buildUpsertCipherQuery(userID, cipher.ID, cipher.FolderID, cipher.OrganizationID, cipher.RevisionDate, data)
	}); err != nil {
		return err
	}
	v.notifier.notify(userID)
	return nil
}

func (v *vaultStore) SaveFolder(ctx context.Context, userID string, folder models.Folder) error {
	if err := v.execWrite(ctx, "vaultStore.SaveFolder", userID, func() (string, []any, error) {
		data, err := encodeRecord(folder)
		if err != nil {
			return "", nil, err
		}
		return buildUpsertFolderQuery(userID, folder.ID, folder.RevisionDate, data)
	}); err != nil {
		return err
	}
	v.notifier.notify(userID)
	return nil
}

func (v *vaultStore) SaveSend(ctx context.Context, userID string, send models.Send) error {
	if err := v.execWrite(ctx, "vaultStore.SaveSend", userID, func() (string, []any, error) {
		data, err := encodeRecord(send)
		if err != nil {
			return "", nil, err
		}
		return buildUpsertSendQuery(userID, send.ID, send.RevisionDate, data)
	}); err != nil {
		return err
	}
	v.notifier.notify(userID)
	return nil
}

func (v *vaultStore) DeleteCipher(ctx context.Context, userID, cipherID string) error {
	if err := v.execWrite(ctx, "vaultStore.DeleteCipher", userID, func() (string, []any, error) {
		return buildDeleteRecordQuery("ciphers", userID, cipherID)
	}); err != nil {
		return err
	}
	v.notifier.notify(userID)
	return nil
}

func (v *vaultStore) DeleteFolder(ctx context.Context, userID, folderID string) error {
	log := logger.FromContext(ctx)

	tx, err := v.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "vaultStore.DeleteFolder").
			Str("user_id", userID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildDeleteRecordQuery("folders", userID, folderID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "vaultStore.DeleteFolder").
			Str("folder_id", folderID).
			Msg("failed to delete folder")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	// Ciphers that lived in the folder move to "no folder".
	query, args, err = buildClearFolderFromCiphersQuery(userID, folderID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "vaultStore.DeleteFolder").
			Str("folder_id", folderID).
			Msg("failed to clear folder reference from ciphers")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "vaultStore.DeleteFolder").
			Str("folder_id", folderID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, commitErr)
	}

	v.notifier.notify(userID)
	return nil
}

func (v *vaultStore) DeleteSend(ctx context.Context, userID, sendID string) error {
	if err := v.execWrite(ctx, "vaultStore.DeleteSend", userID, func() (string, []any, error) {
		return buildDeleteRecordQuery("sends", userID, sendID)
	}); err != nil {
		return err
	}
	v.notifier.notify(userID)
	return nil
}

func (v *vaultStore) CipherCount(ctx context.Context, userID string) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCipherCountQuery(userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = v.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "vaultStore.CipherCount").
			Str("user_id", userID).
			Msg("failed to count ciphers")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return count, nil
}

func (v *vaultStore) DeleteVaultData(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	tx, err := v.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "vaultStore.DeleteVaultData").
			Str("user_id", userID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, table := range []string{"ciphers", "folders", "collections", "sends", "domains", "policies"} {
		query, args, buildErr := buildDeleteUserRecordsQuery(table, userID)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}
		if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
			log.Err(execErr).
				Str("func", "vaultStore.DeleteVaultData").
				Str("user_id", userID).
				Str("table", table).
				Msg("failed to clear table for user")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "vaultStore.DeleteVaultData").
			Str("user_id", userID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, commitErr)
	}

	log.Info().
		Str("func", "vaultStore.DeleteVaultData").
		Str("user_id", userID).
		Msg("deleted all local vault data for user")

	v.notifier.notify(userID)
	return nil
}

func (v *vaultStore) Observe(ctx context.Context, userID string) <-chan struct{} {
	return v.notifier.subscribe(ctx, userID)
}

func (v *vaultStore) NotifyChanged(userID string) {
	v.notifier.notify(userID)
}

// execWrite runs a single build-then-exec write with the shared logging and
// error wrapping.
func (v *vaultStore) execWrite(ctx context.Context, fn, userID string, build func() (string, []any, error)) error {
	log := logger.FromContext(ctx)

	query, args, err := build()
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Str("user_id", userID).
			Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = v.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", fn).
			Str("user_id", userID).
			Msg("failed to execute query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func selectRecords[T any](ctx context.Context, db *DB, table, userID string) ([]T, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRecordsQuery(table, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "selectRecords").
			Str("table", table).
			Str("user_id", userID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]T, 0, 50)
	for rows.Next() {
		var data string
		if scanErr := rows.Scan(&data); scanErr != nil {
			log.Err(scanErr).
				Str("func", "selectRecords").
				Str("table", table).
				Msg("failed to scan record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		var record T
		if decodeErr := json.Unmarshal([]byte(data), &record); decodeErr != nil {
			log.Err(decodeErr).
				Str("func", "selectRecords").
				Str("table", table).
				Msg("failed to decode record")
			return nil, fmt.Errorf("%w: %w", ErrDecodingRecord, decodeErr)
		}
		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "selectRecords").
			Str("table", table).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

func selectRecord[T any](ctx context.Context, db *DB, table, userID, recordID string) (*T, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRecordQuery(table, userID, recordID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var data string
	err = db.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "selectRecord").
			Str("table", table).
			Str("record_id", recordID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var record T
	if decodeErr := json.Unmarshal([]byte(data), &record); decodeErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingRecord, decodeErr)
	}
	return &record, nil
}

func encodeRecord(record any) (string, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingRecord, err)
	}
	return string(data), nil
}

func upsertCipherTx(ctx context.Context, tx *sql.Tx, userID string, cipher models.Cipher) error {
	data, err := encodeRecord(cipher)
	if err != nil {
		return err
	}
	query, args, err := buildUpsertCipherQuery(userID, cipher.ID, cipher.FolderID, cipher.OrganizationID, cipher.RevisionDate, data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func upsertFolderTx(ctx context.Context, tx *sql.Tx, userID string, folder models.Folder) error {
	data, err := encodeRecord(folder)
	if err != nil {
		return err
	}
	query, args, err := buildUpsertFolderQuery(userID, folder.ID, folder.RevisionDate, data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func upsertCollectionTx(ctx context.Context, tx *sql.Tx, userID string, collection models.Collection) error {
	data, err := encodeRecord(collection)
	if err != nil {
		return err
	}
	query, args, err := buildUpsertCollectionQuery(userID, collection.ID, data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func upsertSendTx(ctx context.Context, tx *sql.Tx, userID string, send models.Send) error {
	data, err := encodeRecord(send)
	if err != nil {
		return err
	}
	query, args, err := buildUpsertSendQuery(userID, send.ID, send.RevisionDate, data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func upsertPolicyTx(ctx context.Context, tx *sql.Tx, userID string, policy models.Policy) error {
	data, err := encodeRecord(policy)
	if err != nil {
		return err
	}
	query, args, err := buildUpsertPolicyQuery(userID, policy.ID, data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func upsertDomainsTx(ctx context.Context, tx *sql.Tx, userID string, domains models.DomainsData) error {
	data, err := encodeRecord(domains)
	if err != nil {
		return err
	}
	query, args, err := buildUpsertDomainsQuery(userID, data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
)

// authStore is the SQLite-backed implementation of [AuthStore]. The account
// state is a single JSON row; key material and organizations get their own
// tables. Pin-protected key caching is memory only.
type authStore struct {
	*DB
	logger *logger.Logger

	mu          sync.Mutex
	subs        map[int]chan models.UserState
	nextSub     int
	pinKeyCache map[string]string
}

func NewAuthStore(db *DB, log *logger.Logger) AuthStore {
	return &authStore{
		DB:          db,
		logger:      log,
		subs:        make(map[int]chan models.UserState),
		pinKeyCache: make(map[string]string),
	}
}

func (a *authStore) UserState(ctx context.Context) (models.UserState, error) {
	empty := models.UserState{Accounts: make(map[string]models.Account)}

	query, args, err := sb.Select("data").
		From("auth_state").
		Where(sq.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return empty, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var data string
	err = a.DB.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return empty, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "authStore.UserState").
			Msg("failed to read auth state")
		return empty, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var state models.UserState
	if decodeErr := json.Unmarshal([]byte(data), &state); decodeErr != nil {
		return empty, fmt.Errorf("%w: %w", ErrDecodingRecord, decodeErr)
	}
	if state.Accounts == nil {
		state.Accounts = make(map[string]models.Account)
	}
	return state, nil
}

func (a *authStore) SetUserState(ctx context.Context, state models.UserState) error {
	data, err := encodeRecord(state)
	if err != nil {
		return err
	}

	query, args, err := sb.Insert("auth_state").
		Columns("id", "data").
		Values(1, data).
		Suffix(`ON CONFLICT (id) DO UPDATE SET data = excluded.data`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = a.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "authStore.SetUserState").
			Str("active_user_id", state.ActiveUserID).
			Msg("failed to persist auth state")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	a.broadcast(state)
	return nil
}

func (a *authStore) UserStateStream(ctx context.Context) <-chan models.UserState {
	ch := make(chan models.UserState, 1)

	state, err := a.UserState(ctx)
	if err != nil {
		a.logger.Err(err).Str("func", "authStore.UserStateStream").Msg("failed to read initial auth state")
		state = models.UserState{Accounts: make(map[string]models.Account)}
	}
	ch <- state

	a.mu.Lock()
	id := a.nextSub
	a.nextSub++
	a.subs[id] = ch
	a.mu.Unlock()

	go func() {
		<-ctx.Done()
		a.mu.Lock()
		delete(a.subs, id)
		a.mu.Unlock()
	}()

	return ch
}

func (a *authStore) UserKeys(ctx context.Context, userID string) (models.UserKeys, error) {
	query, args, err := sb.Select(
		"wrapped_user_key", "private_key", "encrypted_pin",
		"pin_protected_user_key", "biometric_key", "biometric_iv",
	).
		From("user_keys").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return models.UserKeys{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	keys := models.UserKeys{UserID: userID}
	err = a.DB.QueryRowContext(ctx, query, args...).Scan(
		&keys.WrappedUserKey,
		&keys.PrivateKey,
		&keys.EncryptedPin,
		&keys.PinProtectedUserKey,
		&keys.BiometricKey,
		&keys.BiometricIV,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserKeys{}, ErrAccountNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "authStore.UserKeys").
			Str("user_id", userID).
			Msg("failed to read user key material")
		return models.UserKeys{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return keys, nil
}

func (a *authStore) SaveUserKeys(ctx context.Context, keys models.UserKeys) error {
	query, args, err := sb.Insert("user_keys").
		Columns(
			"user_id", "wrapped_user_key", "private_key", "encrypted_pin",
			"pin_protected_user_key", "biometric_key", "biometric_iv",
		).
		Values(
			keys.UserID, keys.WrappedUserKey, keys.PrivateKey, keys.EncryptedPin,
			keys.PinProtectedUserKey, keys.BiometricKey, keys.BiometricIV,
		).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			wrapped_user_key = excluded.wrapped_user_key,
			private_key = excluded.private_key,
			encrypted_pin = excluded.encrypted_pin,
			pin_protected_user_key = excluded.pin_protected_user_key,
			biometric_key = excluded.biometric_key,
			biometric_iv = excluded.biometric_iv`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = a.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "authStore.SaveUserKeys").
			Str("user_id", keys.UserID).
			Msg("failed to persist user key material")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (a *authStore) SaveOrganizations(ctx context.Context, userID string, orgs []models.Organization) error {
	log := logger.FromContext(ctx)

	tx, err := a.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "authStore.SaveOrganizations").
			Str("user_id", userID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := sb.Delete("organizations").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	for _, org := range orgs {
		query, args, err = sb.Insert("organizations").
			Columns("user_id", "id", "name", "key").
			Values(userID, org.ID, org.Name, org.Key).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "authStore.SaveOrganizations").
				Str("organization_id", org.ID).
				Msg("failed to persist organization")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "authStore.SaveOrganizations").
			Str("user_id", userID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, commitErr)
	}
	return nil
}

func (a *authStore) OrganizationKeys(ctx context.Context, userID string) (map[string]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := sb.Select("id", "key").
		From("organizations").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := a.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "authStore.OrganizationKeys").
			Str("user_id", userID).
			Msg("failed to read organization keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	orgKeys := make(map[string]string)
	for rows.Next() {
		var id string
		var key *string
		if scanErr := rows.Scan(&id, &key); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		if key != nil {
			orgKeys[id] = *key
		}
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return orgKeys, nil
}

func (a *authStore) CachePinProtectedKey(userID, key string) {
	a.mu.Lock()
	a.pinKeyCache[userID] = key
	a.mu.Unlock()
}

func (a *authStore) CachedPinProtectedKey(userID string) (string, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	key, ok := a.pinKeyCache[userID]
	return key, ok
}

func (a *authStore) ClearPinProtectedKey(userID string) {
	a.mu.Lock()
	delete(a.pinKeyCache, userID)
	a.mu.Unlock()
}

// broadcast pushes the new state to every subscriber, latest-wins.
func (a *authStore) broadcast(state models.UserState) {
	a.mu.Lock()
	for _, ch := range a.subs {
		for {
			select {
			case ch <- state:
			default:
				select {
				case <-ch:
					continue
				default:
				}
			}
			break
		}
	}
	a.mu.Unlock()
}

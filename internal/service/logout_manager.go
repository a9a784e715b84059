// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/internal/crypto"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/models"
)

// logoutManager is the central soft-logout routine. All session state of the
// user is cleared in one place: in-memory keys, the bearer token, the local
// vault copy, and the sync bookkeeping. The account record itself survives so
// the user can log back in.
type logoutManager struct {
	vaultStore store.VaultStore
	settings   store.SettingsStore
	authStore  store.AuthStore
	crypto     crypto.Engine
	adapter    adapter.SyncAdapter
	log        *logger.Logger
}

func NewLogoutManager(
	vaultStore store.VaultStore,
	settings store.SettingsStore,
	authStore store.AuthStore,
	cryptoEngine crypto.Engine,
	syncAdapter adapter.SyncAdapter,
	log *logger.Logger,
) LogoutManager {
	return &logoutManager{
		vaultStore: vaultStore,
		settings:   settings,
		authStore:  authStore,
		crypto:     cryptoEngine,
		adapter:    syncAdapter,
		log:        log,
	}
}

func (m *logoutManager) Logout(ctx context.Context, userID string, reason models.LogoutReason) error {
	m.log.Warn().Str("func", "logoutManager.Logout").Str("userID", userID).Str("reason", reason.String()).Msg("logging out")

	m.crypto.Lock(userID)
	m.authStore.ClearPinProtectedKey(userID)
	m.adapter.SetToken("")

	if err := m.settings.ClearLastSyncTime(ctx, userID); err != nil {
		return fmt.Errorf("clear last sync time: %w", err)
	}
	if err := m.vaultStore.DeleteVaultData(ctx, userID); err != nil {
		return fmt.Errorf("purge vault data: %w", err)
	}

	state, err := m.authStore.UserState(ctx)
	if err != nil {
		return fmt.Errorf("read user state: %w", err)
	}
	if state.ActiveUserID == userID {
		state.ActiveUserID = ""
		if err = m.authStore.SetUserState(ctx, state); err != nil {
			return fmt.Errorf("deactivate user: %w", err)
		}
	}
	return nil
}

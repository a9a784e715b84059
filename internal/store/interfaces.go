// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-vault-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// VaultRecords is the full per-user snapshot handed to [VaultStore.ReplaceVault]
// after a successful full sync.
type VaultRecords struct {
	Ciphers     []models.Cipher
	Folders     []models.Folder
	Collections []models.Collection
	Sends       []models.Send
	Domains     *models.DomainsData
	Policies    []models.Policy
}

// VaultStore is the encrypted local copy of each user's vault. Records go in
// and come out exactly as the server holds them; decryption happens elsewhere.
//
// Every mutating method signals the user's change stream (see [VaultStore.Observe])
// after the write lands, so projection rebuilds always read committed state.
type VaultStore interface {
	// ReplaceVault atomically swaps the user's entire local vault for the
	// given snapshot.
	ReplaceVault(ctx context.Context, userID string, records VaultRecords) error

	GetCiphers(ctx context.Context, userID string) ([]models.Cipher, error)
	GetFolders(ctx context.Context, userID string) ([]models.Folder, error)
	GetCollections(ctx context.Context, userID string) ([]models.Collection, error)
	GetSends(ctx context.Context, userID string) ([]models.Send, error)
	GetDomains(ctx context.Context, userID string) (*models.DomainsData, error)
	GetPolicies(ctx context.Context, userID string) ([]models.Policy, error)

	// GetCipher returns a single cipher, or [ErrRecordNotFound].
	GetCipher(ctx context.Context, userID, cipherID string) (*models.Cipher, error)
	GetFolder(ctx context.Context, userID, folderID string) (*models.Folder, error)
	GetSend(ctx context.Context, userID, sendID string) (*models.Send, error)

	SaveCipher(ctx context.Context, userID string, cipher models.Cipher) error
	SaveFolder(ctx context.Context, userID string, folder models.Folder) error
	SaveSend(ctx context.Context, userID string, send models.Send) error

	DeleteCipher(ctx context.Context, userID, cipherID string) error
	// DeleteFolder removes the folder and clears folder_id from every cipher
	// that referenced it.
	DeleteFolder(ctx context.Context, userID, folderID string) error
	DeleteSend(ctx context.Context, userID, sendID string) error

	// CipherCount reports how many ciphers the user has locally.
	CipherCount(ctx context.Context, userID string) (int, error)

	// DeleteVaultData wipes every vault record of the user. Sync settings and
	// key material survive.
	DeleteVaultData(ctx context.Context, userID string) error

	// Observe returns a change-signal stream for the user's vault. One signal
	// is delivered immediately on subscribe; further signals are conflated.
	Observe(ctx context.Context, userID string) <-chan struct{}

	// NotifyChanged re-signals the user's change stream without a write.
	// Used to force projection rebuilds from unchanged local data.
	NotifyChanged(userID string)
}

// SettingsStore persists per-user sync bookkeeping.
type SettingsStore interface {
	// LastSyncTime returns the instant of the user's last successful full
	// sync, or nil when the user has never synced from this device.
	LastSyncTime(ctx context.Context, userID string) (*time.Time, error)
	SetLastSyncTime(ctx context.Context, userID string, at time.Time) error
	ClearLastSyncTime(ctx context.Context, userID string) error
}

// AuthStore persists the multi-account auth state, per-user key material, and
// organization membership.
type AuthStore interface {
	// UserState returns the current persisted account state. An empty state
	// (no accounts, no active user) is returned when nobody ever logged in.
	UserState(ctx context.Context) (models.UserState, error)
	SetUserState(ctx context.Context, state models.UserState) error

	// UserStateStream emits the current state on subscribe and again after
	// every [AuthStore.SetUserState]. Emissions are conflated, latest wins.
	UserStateStream(ctx context.Context) <-chan models.UserState

	// UserKeys returns the persisted key material for the user, or
	// [ErrAccountNotFound].
	UserKeys(ctx context.Context, userID string) (models.UserKeys, error)
	SaveUserKeys(ctx context.Context, keys models.UserKeys) error

	SaveOrganizations(ctx context.Context, userID string, orgs []models.Organization) error
	// OrganizationKeys returns the wrapped organization keys of the user,
	// keyed by organization id. Organizations without a key are skipped.
	OrganizationKeys(ctx context.Context, userID string) (map[string]string, error)

	// CachePinProtectedKey stores a freshly derived pin-protected user key in
	// memory only. It never touches disk and is dropped on process exit.
	CachePinProtectedKey(userID, key string)
	CachedPinProtectedKey(userID string) (string, bool)
	ClearPinProtectedKey(userID string)
}

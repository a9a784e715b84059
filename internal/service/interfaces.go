// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-vault-sync/internal/datastate"
	"github.com/MKhiriev/go-vault-sync/models"
)

// BiometricCipher is the platform biometric crypto object handed to
// [VaultRepository.UnlockWithBiometrics]. The engine never sees biometric
// prompts, only this capability.
type BiometricCipher interface {
	// Encrypt seals plaintext and returns the ciphertext with the IV the
	// platform cipher generated for it.
	Encrypt(plaintext []byte) (ciphertext, iv []byte, err error)

	// Decrypt reverses Encrypt for a ciphertext stored with its IV.
	Decrypt(ciphertext, iv []byte) ([]byte, error)
}

// LogoutManager clears a user's session state centrally so that a forced
// logout leaves no component holding stale credentials.
type LogoutManager interface {
	Logout(ctx context.Context, userID string, reason models.LogoutReason) error
}

// VaultRepository is the synchronization engine facade. Imperative operations
// return typed results and never panic across the boundary; observable state
// is exposed as conflated DataState streams.
type VaultRepository interface {
	// Run launches the engine's background loops: user-switch and lock
	// watchers, the local-store projection rebuilder, and push-delta
	// reconciliation. It returns immediately; the loops stop when ctx is
	// done.
	Run(ctx context.Context)

	// VaultDataStream emits the combined decrypted vault view. The combined
	// value resolves only when the cipher, folder, collection and send
	// projections all carry data.
	VaultDataStream(ctx context.Context) <-chan datastate.DataState[models.VaultData]

	CiphersStream(ctx context.Context) <-chan datastate.DataState[models.DecryptCipherListResult]
	FoldersStream(ctx context.Context) <-chan datastate.DataState[[]models.FolderView]
	CollectionsStream(ctx context.Context) <-chan datastate.DataState[[]models.CollectionView]
	SendsStream(ctx context.Context) <-chan datastate.DataState[[]models.SendView]
	DomainsStream(ctx context.Context) <-chan datastate.DataState[*models.DomainsData]

	// CipherStream is a point lookup: Loaded(nil) means the id is absent.
	CipherStream(ctx context.Context, cipherID string) <-chan datastate.DataState[*models.CipherView]
	FolderStream(ctx context.Context, folderID string) <-chan datastate.DataState[*models.FolderView]
	SendStream(ctx context.Context, sendID string) <-chan datastate.DataState[*models.SendView]

	// AuthCodesStream emits live one-time-password codes for every login
	// cipher carrying a totp secret, recomputed on a period ticker.
	AuthCodesStream(ctx context.Context) <-chan datastate.DataState[[]models.AuthCodeView]

	// Sync launches a sync run in the background. A run already in flight
	// makes the call a silent no-op. forced skips the cheap revision-date
	// fast path.
	Sync(ctx context.Context, forced bool)

	// SyncIfNecessary triggers Sync only when the user never synced or the
	// last sync is older than the staleness window. The decision is purely
	// local.
	SyncIfNecessary(ctx context.Context)

	// SyncForResult runs (or joins) a sync and always returns a terminal
	// result; cancellation becomes an error result, never a propagated
	// signal.
	SyncForResult(ctx context.Context) models.SyncVaultDataResult

	UnlockWithPassword(ctx context.Context, password string) models.VaultUnlockResult
	UnlockWithPin(ctx context.Context, pin string) models.VaultUnlockResult
	UnlockWithDecryptedKey(ctx context.Context, decryptedUserKey string) models.VaultUnlockResult
	UnlockWithBiometrics(ctx context.Context, cipher BiometricCipher) models.VaultUnlockResult

	// LockVault discards the user's in-memory key material and resets every
	// projection.
	LockVault(ctx context.Context, userID string)
	LockVaultForActiveUser(ctx context.Context)

	CreateFolder(ctx context.Context, view models.FolderView) models.CreateFolderResult
	UpdateFolder(ctx context.Context, view models.FolderView) models.UpdateFolderResult
	DeleteFolder(ctx context.Context, folderID string) models.DeleteFolderResult

	CreateSend(ctx context.Context, view models.SendView) models.CreateSendResult
	// CreateFileSend uploads the file at sourcePath as an encrypted file
	// send. The encrypted temp copy is removed regardless of upload outcome.
	CreateFileSend(ctx context.Context, view models.SendView, sourcePath string) models.CreateSendResult
	UpdateSend(ctx context.Context, view models.SendView) models.UpdateSendResult
	DeleteSend(ctx context.Context, sendID string) models.DeleteSendResult
	RemovePasswordSend(ctx context.Context, sendID string) models.RemovePasswordSendResult

	// GenerateTOTP computes the current one-time code for the cipher's totp
	// secret.
	GenerateTOTP(ctx context.Context, cipherID string) models.GenerateTOTPResult

	// ExportVaultData renders the personal vault, excluding organization
	// ciphers, trashed ciphers and the given restricted types.
	ExportVaultData(ctx context.Context, format models.ExportFormat, restrictedTypes []models.CipherType) models.ExportVaultDataResult

	// DiscoverCredentials returns decrypted login ciphers whose URIs match
	// the given one, honouring equivalent-domain rules.
	DiscoverCredentials(ctx context.Context, uri string) ([]models.CipherView, error)

	// DeleteVaultData purges the user's local vault records. Key material
	// and sync settings survive.
	DeleteVaultData(ctx context.Context, userID string) error

	// HandleDatabaseSchemeChange forces a full sync after a local schema
	// version bump.
	HandleDatabaseSchemeChange(ctx context.Context)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/crypto"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/models"
)

func (e *vaultEngine) UnlockWithPassword(ctx context.Context, password string) models.VaultUnlockResult {
	account, keys, result := e.unlockMaterial(ctx)
	if result != nil {
		return *result
	}
	if keys.WrappedUserKey == "" {
		return models.UnlockInvalidState("userKey", nil)
	}
	return e.unlockVaultForUser(ctx, account, keys, crypto.PasswordUnlock{
		Password: password,
		UserKey:  keys.WrappedUserKey,
	})
}

// UnlockWithPin prefers the memory-only cached pin-protected key derived on a
// previous unlock; a persisted one is the fallback.
func (e *vaultEngine) UnlockWithPin(ctx context.Context, pin string) models.VaultUnlockResult {
	account, keys, result := e.unlockMaterial(ctx)
	if result != nil {
		return *result
	}

	pinProtectedKey, ok := e.authStore.CachedPinProtectedKey(account.UserID)
	if !ok {
		if keys.PinProtectedUserKey == nil {
			return models.UnlockInvalidState("pinProtectedUserKey", nil)
		}
		pinProtectedKey = *keys.PinProtectedUserKey
	}

	return e.unlockVaultForUser(ctx, account, keys, crypto.PinUnlock{
		Pin:                 pin,
		PinProtectedUserKey: pinProtectedKey,
	})
}

func (e *vaultEngine) UnlockWithDecryptedKey(ctx context.Context, decryptedUserKey string) models.VaultUnlockResult {
	account, keys, result := e.unlockMaterial(ctx)
	if result != nil {
		return *result
	}
	return e.unlockVaultForUser(ctx, account, keys, crypto.DecryptedKeyUnlock{
		DecryptedUserKey: decryptedUserKey,
	})
}

// UnlockWithBiometrics recovers the user key through the platform biometric
// cipher. A key stored without an IV is the legacy scheme: it is used as the
// decrypted user key directly, and after a successful unlock the engine
// migrates it to the IV-based scheme best-effort. A migration failure is
// reported as a biometric decoding error without rolling back the unlock
// itself.
func (e *vaultEngine) UnlockWithBiometrics(ctx context.Context, biometricCipher BiometricCipher) models.VaultUnlockResult {
	log := logger.FromContext(ctx)

	account, keys, invalid := e.unlockMaterial(ctx)
	if invalid != nil {
		return *invalid
	}
	if keys.BiometricKey == nil {
		return models.UnlockInvalidState("biometricKey", nil)
	}

	if keys.BiometricIV == nil {
		result := e.unlockVaultForUser(ctx, account, keys, crypto.DecryptedKeyUnlock{
			DecryptedUserKey: *keys.BiometricKey,
		})
		if result.Status != models.VaultUnlockSuccess {
			return result
		}
		if err := e.migrateBiometricKey(ctx, keys, biometricCipher); err != nil {
			log.Warn().Err(err).Str("func", "vaultEngine.UnlockWithBiometrics").Msg("legacy biometric key migration failed")
			return models.UnlockBiometricError(err)
		}
		return result
	}

	ciphertext, err := base64.StdEncoding.DecodeString(*keys.BiometricKey)
	if err != nil {
		return models.UnlockBiometricError(fmt.Errorf("decode biometric key: %w", err))
	}
	iv, err := base64.StdEncoding.DecodeString(*keys.BiometricIV)
	if err != nil {
		return models.UnlockBiometricError(fmt.Errorf("decode biometric iv: %w", err))
	}
	decrypted, err := biometricCipher.Decrypt(ciphertext, iv)
	if err != nil {
		return models.UnlockBiometricError(err)
	}

	return e.unlockVaultForUser(ctx, account, keys, crypto.DecryptedKeyUnlock{
		DecryptedUserKey: base64.StdEncoding.EncodeToString(decrypted),
	})
}

// migrateBiometricKey re-encrypts the legacy raw key with the platform cipher
// and persists the ciphertext with its IV.
func (e *vaultEngine) migrateBiometricKey(ctx context.Context, keys models.UserKeys, biometricCipher BiometricCipher) error {
	raw, err := base64.StdEncoding.DecodeString(*keys.BiometricKey)
	if err != nil {
		return fmt.Errorf("decode legacy biometric key: %w", err)
	}
	ciphertext, iv, err := biometricCipher.Encrypt(raw)
	if err != nil {
		return fmt.Errorf("encrypt biometric key: %w", err)
	}

	encodedKey := base64.StdEncoding.EncodeToString(ciphertext)
	encodedIV := base64.StdEncoding.EncodeToString(iv)
	keys.BiometricKey = &encodedKey
	keys.BiometricIV = &encodedIV
	if err = e.authStore.SaveUserKeys(ctx, keys); err != nil {
		return fmt.Errorf("persist migrated biometric key: %w", err)
	}
	return nil
}

// unlockMaterial resolves the active account and its stored key material.
// The third return value, when non-nil, is the InvalidState result to hand
// back.
func (e *vaultEngine) unlockMaterial(ctx context.Context) (models.Account, models.UserKeys, *models.VaultUnlockResult) {
	state, err := e.authStore.UserState(ctx)
	if err != nil {
		result := models.UnlockInvalidState("userState", err)
		return models.Account{}, models.UserKeys{}, &result
	}
	account, ok := state.ActiveAccount()
	if !ok {
		result := models.UnlockInvalidState("activeUserId", ErrNoActiveUser)
		return models.Account{}, models.UserKeys{}, &result
	}
	account.UserID = state.ActiveUserID

	keys, err := e.authStore.UserKeys(ctx, account.UserID)
	if err != nil {
		if !errors.Is(err, store.ErrAccountNotFound) {
			logger.FromContext(ctx).Error().Err(err).Str("func", "vaultEngine.unlockMaterial").Msg("read user keys")
		}
		result := models.UnlockInvalidState("userKeys", err)
		return models.Account{}, models.UserKeys{}, &result
	}
	return account, keys, nil
}

// unlockVaultForUser is the shared unlock tail: initialise the crypto
// session, then opportunistically derive the pin-protected key so later PIN
// unlocks work without a fresh master-password unlock.
func (e *vaultEngine) unlockVaultForUser(ctx context.Context, account models.Account, keys models.UserKeys, method crypto.UnlockMethod) models.VaultUnlockResult {
	log := logger.FromContext(ctx)

	orgKeys, err := e.authStore.OrganizationKeys(ctx, account.UserID)
	if err != nil {
		log.Warn().Err(err).Str("func", "vaultEngine.unlockVaultForUser").Msg("read organization keys")
	}

	params := crypto.UnlockParams{
		Email:            account.Email,
		KDF:              account.KDF,
		PrivateKey:       keys.PrivateKey,
		OrganizationKeys: orgKeys,
	}
	if err = e.crypto.Unlock(ctx, account.UserID, params, method); err != nil {
		return models.UnlockAuthError(err)
	}

	e.derivePinKeyIfNeeded(ctx, account.UserID, keys)
	return models.UnlockSuccess()
}

// derivePinKeyIfNeeded caches a pin-protected user key in memory when the
// user has an encrypted PIN on file but no usable pin-protected key yet.
// Best effort: a failure only costs the next PIN unlock a master-password
// round.
func (e *vaultEngine) derivePinKeyIfNeeded(ctx context.Context, userID string, keys models.UserKeys) {
	if keys.EncryptedPin == nil || keys.PinProtectedUserKey != nil {
		return
	}
	if _, ok := e.authStore.CachedPinProtectedKey(userID); ok {
		return
	}

	derived, err := e.crypto.DerivePinProtectedUserKey(ctx, userID, *keys.EncryptedPin)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "vaultEngine.derivePinKeyIfNeeded").Msg("derive pin-protected key")
		return
	}
	e.authStore.CachePinProtectedKey(userID, derived)
}

// LockVault discards the user's key material, drops the pin key cache, stops
// any running sync, and resets projections.
func (e *vaultEngine) LockVault(ctx context.Context, userID string) {
	e.crypto.Lock(userID)
	e.authStore.ClearPinProtectedKey(userID)
	if userID == e.activeUser() {
		e.stopSyncJob()
		e.resetProjections()
	}
	logger.FromContext(ctx).Info().Str("func", "vaultEngine.LockVault").Str("userID", userID).Msg("vault locked")
}

func (e *vaultEngine) LockVaultForActiveUser(ctx context.Context) {
	if userID := e.activeUser(); userID != "" {
		e.LockVault(ctx, userID)
	}
}

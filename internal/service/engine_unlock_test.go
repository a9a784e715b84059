// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vault-sync/internal/crypto"
	"github.com/MKhiriev/go-vault-sync/internal/datastate"
	"github.com/MKhiriev/go-vault-sync/models"
)

func testUserKeys() models.UserKeys {
	return models.UserKeys{
		UserID:         testUserID,
		WrappedUserKey: "wrapped-user-key",
		PrivateKey:     "encrypted-private-key",
	}
}

// expectUnlockMaterial wires the account and key reads every unlock attempt
// performs first.
func expectUnlockMaterial(m *engineMocks, keys models.UserKeys) {
	m.authStore.EXPECT().UserState(gomock.Any()).Return(testUserState(), nil)
	m.authStore.EXPECT().UserKeys(gomock.Any(), testUserID).Return(keys, nil)
}

// ── Password unlock ──────────────────────────────────────────────────────────

func TestVaultEngine_UnlockWithPassword_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)
	keys := testUserKeys()

	expectUnlockMaterial(m, keys)
	m.authStore.EXPECT().OrganizationKeys(gomock.Any(), testUserID).Return(nil, nil)
	m.crypto.EXPECT().
		Unlock(gomock.Any(), testUserID, crypto.UnlockParams{
			Email:      testEmail,
			KDF:        testAccount().KDF,
			PrivateKey: keys.PrivateKey,
		}, crypto.PasswordUnlock{Password: "hunter2", UserKey: keys.WrappedUserKey}).
		Return(nil)

	result := eng.UnlockWithPassword(testContext(), "hunter2")

	require.Equal(t, models.VaultUnlockSuccess, result.Status)
	require.NoError(t, result.Err)
}

func TestVaultEngine_UnlockWithPassword_WrongPasswordIsAuthError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)
	keys := testUserKeys()

	expectUnlockMaterial(m, keys)
	m.authStore.EXPECT().OrganizationKeys(gomock.Any(), testUserID).Return(nil, nil)
	m.crypto.EXPECT().
		Unlock(gomock.Any(), testUserID, gomock.Any(), gomock.Any()).
		Return(errors.New("mac mismatch"))

	result := eng.UnlockWithPassword(testContext(), "wrong")

	require.Equal(t, models.VaultUnlockAuthError, result.Status)
	require.Error(t, result.Err)
}

func TestVaultEngine_UnlockWithPassword_NoActiveUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)

	m.authStore.EXPECT().UserState(gomock.Any()).Return(models.UserState{}, nil)

	result := eng.UnlockWithPassword(testContext(), "hunter2")

	require.Equal(t, models.VaultUnlockInvalidState, result.Status)
	assert.Equal(t, "activeUserId", result.MissingProperty)
	assert.ErrorIs(t, result.Err, ErrNoActiveUser)
}

func TestVaultEngine_UnlockWithPassword_MissingUserKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)
	keys := testUserKeys()
	keys.WrappedUserKey = ""

	expectUnlockMaterial(m, keys)

	result := eng.UnlockWithPassword(testContext(), "hunter2")

	require.Equal(t, models.VaultUnlockInvalidState, result.Status)
	assert.Equal(t, "userKey", result.MissingProperty)
}

// ── PIN unlock ───────────────────────────────────────────────────────────────

func TestVaultEngine_UnlockWithPin_PrefersCachedKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)
	keys := testUserKeys()
	keys.PinProtectedUserKey = strPtr("persisted-pin-key")

	expectUnlockMaterial(m, keys)
	m.authStore.EXPECT().CachedPinProtectedKey(testUserID).Return("cached-pin-key", true)
	m.authStore.EXPECT().OrganizationKeys(gomock.Any(), testUserID).Return(nil, nil)
	m.crypto.EXPECT().
		Unlock(gomock.Any(), testUserID, gomock.Any(),
			crypto.PinUnlock{Pin: "1234", PinProtectedUserKey: "cached-pin-key"}).
		Return(nil)

	result := eng.UnlockWithPin(testContext(), "1234")

	require.Equal(t, models.VaultUnlockSuccess, result.Status)
}

func TestVaultEngine_UnlockWithPin_FallsBackToPersistedKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)
	keys := testUserKeys()
	keys.PinProtectedUserKey = strPtr("persisted-pin-key")

	expectUnlockMaterial(m, keys)
	m.authStore.EXPECT().CachedPinProtectedKey(testUserID).Return("", false)
	m.authStore.EXPECT().OrganizationKeys(gomock.Any(), testUserID).Return(nil, nil)
	m.crypto.EXPECT().
		Unlock(gomock.Any(), testUserID, gomock.Any(),
			crypto.PinUnlock{Pin: "1234", PinProtectedUserKey: "persisted-pin-key"}).
		Return(nil)

	result := eng.UnlockWithPin(testContext(), "1234")

	require.Equal(t, models.VaultUnlockSuccess, result.Status)
}

func TestVaultEngine_UnlockWithPin_NoKeyAnywhere(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)

	expectUnlockMaterial(m, testUserKeys())
	m.authStore.EXPECT().CachedPinProtectedKey(testUserID).Return("", false)

	result := eng.UnlockWithPin(testContext(), "1234")

	require.Equal(t, models.VaultUnlockInvalidState, result.Status)
	assert.Equal(t, "pinProtectedUserKey", result.MissingProperty)
}

// ── Post-unlock pin key derivation ───────────────────────────────────────────

func TestVaultEngine_Unlock_DerivesPinKeyWhenOnlyEncryptedPinPresent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)
	keys := testUserKeys()
	keys.EncryptedPin = strPtr("encrypted-pin")

	expectUnlockMaterial(m, keys)
	m.authStore.EXPECT().OrganizationKeys(gomock.Any(), testUserID).Return(nil, nil)
	m.crypto.EXPECT().Unlock(gomock.Any(), testUserID, gomock.Any(), gomock.Any()).Return(nil)
	m.authStore.EXPECT().CachedPinProtectedKey(testUserID).Return("", false)
	m.crypto.EXPECT().DerivePinProtectedUserKey(gomock.Any(), testUserID, "encrypted-pin").Return("derived-pin-key", nil)
	m.authStore.EXPECT().CachePinProtectedKey(testUserID, "derived-pin-key")

	result := eng.UnlockWithPassword(testContext(), "hunter2")

	require.Equal(t, models.VaultUnlockSuccess, result.Status)
}

func TestVaultEngine_Unlock_DerivationFailureStillSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)
	keys := testUserKeys()
	keys.EncryptedPin = strPtr("encrypted-pin")

	expectUnlockMaterial(m, keys)
	m.authStore.EXPECT().OrganizationKeys(gomock.Any(), testUserID).Return(nil, nil)
	m.crypto.EXPECT().Unlock(gomock.Any(), testUserID, gomock.Any(), gomock.Any()).Return(nil)
	m.authStore.EXPECT().CachedPinProtectedKey(testUserID).Return("", false)
	m.crypto.EXPECT().DerivePinProtectedUserKey(gomock.Any(), testUserID, "encrypted-pin").Return("", errors.New("derive failed"))

	result := eng.UnlockWithPassword(testContext(), "hunter2")

	require.Equal(t, models.VaultUnlockSuccess, result.Status)
}

// ── Biometric unlock ─────────────────────────────────────────────────────────

func TestVaultEngine_UnlockWithBiometrics_MissingKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)

	expectUnlockMaterial(m, testUserKeys())

	result := eng.UnlockWithBiometrics(testContext(), &stubBiometricCipher{})

	require.Equal(t, models.VaultUnlockInvalidState, result.Status)
	assert.Equal(t, "biometricKey", result.MissingProperty)
}

func TestVaultEngine_UnlockWithBiometrics_DecryptsWithStoredIV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)

	rawKey := []byte("decrypted-user-key")
	keys := testUserKeys()
	keys.BiometricKey = strPtr(base64.StdEncoding.EncodeToString(append([]byte("ct:"), rawKey...)))
	keys.BiometricIV = strPtr(base64.StdEncoding.EncodeToString([]byte("iv-bytes")))

	expectUnlockMaterial(m, keys)
	m.authStore.EXPECT().OrganizationKeys(gomock.Any(), testUserID).Return(nil, nil)
	m.crypto.EXPECT().
		Unlock(gomock.Any(), testUserID, gomock.Any(),
			crypto.DecryptedKeyUnlock{DecryptedUserKey: base64.StdEncoding.EncodeToString(rawKey)}).
		Return(nil)

	result := eng.UnlockWithBiometrics(testContext(), &stubBiometricCipher{})

	require.Equal(t, models.VaultUnlockSuccess, result.Status)
}

func TestVaultEngine_UnlockWithBiometrics_DecryptFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)

	keys := testUserKeys()
	keys.BiometricKey = strPtr(base64.StdEncoding.EncodeToString([]byte("ct:whatever")))
	keys.BiometricIV = strPtr(base64.StdEncoding.EncodeToString([]byte("iv-bytes")))

	expectUnlockMaterial(m, keys)

	result := eng.UnlockWithBiometrics(testContext(), &stubBiometricCipher{decryptErr: errors.New("keystore rejected")})

	require.Equal(t, models.VaultUnlockBiometricDecodingError, result.Status)
	require.Error(t, result.Err)
}

func TestVaultEngine_UnlockWithBiometrics_LegacyKeyMigrates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)

	rawKey := []byte("legacy-user-key")
	encodedLegacy := base64.StdEncoding.EncodeToString(rawKey)
	keys := testUserKeys()
	keys.BiometricKey = &encodedLegacy
	// No IV: the key is the decrypted user key itself.

	expectUnlockMaterial(m, keys)
	m.authStore.EXPECT().OrganizationKeys(gomock.Any(), testUserID).Return(nil, nil)
	m.crypto.EXPECT().
		Unlock(gomock.Any(), testUserID, gomock.Any(),
			crypto.DecryptedKeyUnlock{DecryptedUserKey: encodedLegacy}).
		Return(nil)

	var saved models.UserKeys
	m.authStore.EXPECT().SaveUserKeys(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, k models.UserKeys) error {
			saved = k
			return nil
		})

	result := eng.UnlockWithBiometrics(testContext(), &stubBiometricCipher{})

	require.Equal(t, models.VaultUnlockSuccess, result.Status)
	require.NotNil(t, saved.BiometricKey)
	require.NotNil(t, saved.BiometricIV)
	assert.Equal(t, base64.StdEncoding.EncodeToString(append([]byte("ct:"), rawKey...)), *saved.BiometricKey)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("iv-bytes")), *saved.BiometricIV)
}

func TestVaultEngine_UnlockWithBiometrics_MigrationFailureReportsErrorAfterUnlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)

	rawKey := []byte("legacy-user-key")
	encodedLegacy := base64.StdEncoding.EncodeToString(rawKey)
	keys := testUserKeys()
	keys.BiometricKey = &encodedLegacy

	expectUnlockMaterial(m, keys)
	m.authStore.EXPECT().OrganizationKeys(gomock.Any(), testUserID).Return(nil, nil)
	m.crypto.EXPECT().Unlock(gomock.Any(), testUserID, gomock.Any(), gomock.Any()).Return(nil)

	result := eng.UnlockWithBiometrics(testContext(), &stubBiometricCipher{encryptErr: errors.New("no hardware keystore")})

	// The session is already unlocked; only the migration failed.
	require.Equal(t, models.VaultUnlockBiometricDecodingError, result.Status)
	require.Error(t, result.Err)
}

// ── Lock ─────────────────────────────────────────────────────────────────────

func TestVaultEngine_LockVault_ActiveUserResetsProjections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)
	eng.ciphers.Set(datastate.Loaded(models.DecryptCipherListResult{Successes: []models.CipherView{{ID: "cipher-1"}}}))

	m.crypto.EXPECT().Lock(testUserID)
	m.authStore.EXPECT().ClearPinProtectedKey(testUserID)

	eng.LockVault(testContext(), testUserID)

	assert.Equal(t, datastate.StatusLoading, eng.ciphers.Get().Status())
	assert.Equal(t, datastate.StatusLoading, eng.folders.Get().Status())
}

func TestVaultEngine_LockVault_OtherUserLeavesProjectionsAlone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)
	eng.ciphers.Set(datastate.Loaded(models.DecryptCipherListResult{Successes: []models.CipherView{{ID: "cipher-1"}}}))

	m.crypto.EXPECT().Lock("user-2")
	m.authStore.EXPECT().ClearPinProtectedKey("user-2")

	eng.LockVault(testContext(), "user-2")

	assert.Equal(t, datastate.StatusLoaded, eng.ciphers.Get().Status())
}

package crypto

import (
	"context"
	"time"

	"github.com/MKhiriev/go-vault-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// UnlockMethod selects how a user's vault key material is recovered during
// unlock. Exactly one implementation exists per unlock path.
type UnlockMethod interface {
	isUnlockMethod()
}

// PasswordUnlock recovers the user key by deriving the master key from the
// master password and the stored KDF parameters.
type PasswordUnlock struct {
	Password string
	// UserKey is the stored envelope-encrypted user key.
	UserKey string
}

// PinUnlock recovers the user key from a PIN and the pin-protected user key.
type PinUnlock struct {
	Pin string
	// PinProtectedUserKey is the user key wrapped with the PIN-derived key.
	PinProtectedUserKey string
}

// DecryptedKeyUnlock supplies an already-decrypted user key, e.g. from the
// biometrics store.
type DecryptedKeyUnlock struct {
	DecryptedUserKey string
}

func (PasswordUnlock) isUnlockMethod()     {}
func (PinUnlock) isUnlockMethod()          {}
func (DecryptedKeyUnlock) isUnlockMethod() {}

// UnlockStatus is the per-user vault lock state.
type UnlockStatus int

const (
	StatusLocked UnlockStatus = iota
	StatusUnlocking
	StatusUnlocked
	StatusUnlockError
)

// VaultUnlockData pairs a user id with its current lock state.
type VaultUnlockData struct {
	UserID string
	Status UnlockStatus
}

// UnlockParams carries the stored per-user material an unlock attempt needs
// besides the method itself.
type UnlockParams struct {
	Email      string
	KDF        models.KDFConfig
	PrivateKey string
	// OrganizationKeys maps organization id to the org key wrapped with the
	// user key. May be nil.
	OrganizationKeys map[string]string
}

// Engine is the stateful per-user cryptographic context. It owns the vault
// unlock state exclusively; the synchronization engine observes it and
// invokes unlock operations but never mutates the state directly.
type Engine interface {
	// Unlock initialises userID's crypto session using method. On failure
	// the user's state transitions to StatusUnlockError and an error is
	// returned.
	Unlock(ctx context.Context, userID string, params UnlockParams, method UnlockMethod) error

	// InitializeOrgCrypto unwraps organization keys into an already-unlocked
	// session. A locked session returns an error.
	InitializeOrgCrypto(ctx context.Context, userID string, organizationKeys map[string]string) error

	// Lock discards userID's in-memory key material.
	Lock(userID string)

	// LockAll discards every session.
	LockAll()

	// IsUnlocked reports whether userID's session holds key material.
	IsUnlocked(userID string) bool

	// IsUnlockingOrUnlocked reports whether an unlock is finished or in
	// flight for userID.
	IsUnlockingOrUnlocked(userID string) bool

	// UnlockStates returns a snapshot of every known session state.
	UnlockStates() []VaultUnlockData

	// UnlockStateStream emits the session state snapshot on every change,
	// starting with the current one, until ctx is done.
	UnlockStateStream(ctx context.Context) <-chan []VaultUnlockData

	// WaitUntilUnlocked blocks until userID's session is unlocked or ctx is
	// done.
	WaitUntilUnlocked(ctx context.Context, userID string) error

	// DerivePinProtectedUserKey wraps userID's user key with a key derived
	// from the stored encrypted PIN.
	DerivePinProtectedUserKey(ctx context.Context, userID string, encryptedPin string) (string, error)

	// DecryptCipherList decrypts a batch, reporting per-item failures
	// instead of failing the whole batch.
	DecryptCipherList(ctx context.Context, userID string, ciphers []models.Cipher) (models.DecryptCipherListResult, error)

	// DecryptFolderList decrypts every folder in the batch.
	DecryptFolderList(ctx context.Context, userID string, folders []models.Folder) ([]models.FolderView, error)

	// DecryptCollectionList decrypts every collection in the batch using the
	// owning organization's key.
	DecryptCollectionList(ctx context.Context, userID string, collections []models.Collection) ([]models.CollectionView, error)

	// DecryptSendList decrypts every send in the batch.
	DecryptSendList(ctx context.Context, userID string, sends []models.Send) ([]models.SendView, error)

	// DecryptSend decrypts a single send.
	DecryptSend(ctx context.Context, userID string, send models.Send) (models.SendView, error)

	// DecryptFolder decrypts a single folder.
	DecryptFolder(ctx context.Context, userID string, folder models.Folder) (models.FolderView, error)

	// EncryptFolder produces the encrypted wire form of a folder view.
	EncryptFolder(ctx context.Context, userID string, view models.FolderView) (models.Folder, error)

	// EncryptSend produces the encrypted wire form of a send view.
	EncryptSend(ctx context.Context, userID string, view models.SendView) (models.Send, error)

	// EncryptFile encrypts the file at sourcePath into destinationPath with
	// userID's key material and returns the encrypted size.
	EncryptFile(ctx context.Context, userID string, sourcePath, destinationPath string) (int64, error)

	// GenerateTOTP computes the one-time code for an otpauth secret at the
	// given instant.
	GenerateTOTP(secret string, at time.Time) (code string, periodSeconds int, err error)

	// ExportVault renders the user's personal vault (folders and ciphers) in
	// the requested format.
	ExportVault(ctx context.Context, userID string, folders []models.Folder, ciphers []models.Cipher, format models.ExportFormat) (string, error)
}

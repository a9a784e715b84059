package models

// UserKeys is the locally persisted key material for one account. Every field
// except UserID is encrypted or wrapped; nothing here is usable without the
// master password, pin, or biometric unlock.
type UserKeys struct {
	UserID string
	// WrappedUserKey is the user key sealed under the master-password key.
	WrappedUserKey string
	// PrivateKey is the encrypted RSA private key from the user profile.
	PrivateKey string
	// EncryptedPin is the user's pin sealed under the user key. Present only
	// when pin unlock is configured.
	EncryptedPin *string
	// PinProtectedUserKey is the user key sealed under the pin-derived key.
	// Present only when the user chose to persist pin unlock across restarts.
	PinProtectedUserKey *string
	// BiometricKey is the user key as protected by the platform biometric
	// integration. Legacy entries have no BiometricIV.
	BiometricKey *string
	BiometricIV  *string
}

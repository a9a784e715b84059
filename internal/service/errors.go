package service

import "errors"

var (
	// ErrNoActiveUser is returned by operations requiring a logged-in user.
	ErrNoActiveUser = errors.New("no active user")

	// ErrSyncCancelled replaces a context cancellation at the SyncForResult
	// boundary so callers always receive a terminal result.
	ErrSyncCancelled = errors.New("sync cancelled")

	// ErrCipherNotFound is returned by cipher-scoped operations when the id
	// does not exist locally.
	ErrCipherNotFound = errors.New("cipher not found")

	// ErrNoTOTPSecret is returned when a cipher carries no one-time-password
	// secret.
	ErrNoTOTPSecret = errors.New("cipher has no totp secret")
)

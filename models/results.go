// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Operation results exposed across the engine boundary. Operations return one
// of these values instead of raising; an expected terminal condition (no
// active user, server-side validation rejection, security-stamp logout) is a
// result variant, not an error to unwrap.

// SyncVaultDataResult is the terminal outcome of one sync run.
type SyncVaultDataResult struct {
	// Success reports whether the run completed. A security-stamp logout
	// yields Success == false with Err == nil: deliberate, not exceptional.
	Success bool
	// ItemsAvailable is set on success and reports whether the user has at
	// least one cipher after the run.
	ItemsAvailable bool
	Err            error
}

// SyncSuccess builds a successful sync result.
func SyncSuccess(itemsAvailable bool) SyncVaultDataResult {
	return SyncVaultDataResult{Success: true, ItemsAvailable: itemsAvailable}
}

// SyncError builds a failed sync result. err may be nil for expected
// terminations such as a security-stamp mismatch.
func SyncError(err error) SyncVaultDataResult {
	return SyncVaultDataResult{Err: err}
}

// VaultUnlockStatus discriminates [VaultUnlockResult] variants.
type VaultUnlockStatus int

const (
	// VaultUnlockSuccess means the user's vault key material is initialised.
	VaultUnlockSuccess VaultUnlockStatus = iota
	// VaultUnlockAuthError means the supplied secret failed to decrypt the
	// stored user key (wrong password/PIN).
	VaultUnlockAuthError
	// VaultUnlockInvalidState means required stored material is missing or
	// there is no active user; MissingProperty names what was absent.
	VaultUnlockInvalidState
	// VaultUnlockBiometricDecodingError means the platform biometric cipher
	// failed while decoding or migrating the biometrics key.
	VaultUnlockBiometricDecodingError
)

// VaultUnlockResult is the outcome of an unlock attempt.
type VaultUnlockResult struct {
	Status          VaultUnlockStatus
	MissingProperty string
	Err             error
}

// UnlockSuccess builds a successful unlock result.
func UnlockSuccess() VaultUnlockResult {
	return VaultUnlockResult{Status: VaultUnlockSuccess}
}

// UnlockInvalidState builds an InvalidState result naming the missing
// property.
func UnlockInvalidState(missing string, err error) VaultUnlockResult {
	return VaultUnlockResult{Status: VaultUnlockInvalidState, MissingProperty: missing, Err: err}
}

// UnlockAuthError builds an authentication-failure result.
func UnlockAuthError(err error) VaultUnlockResult {
	return VaultUnlockResult{Status: VaultUnlockAuthError, Err: err}
}

// UnlockBiometricError builds a biometric-decoding failure result.
func UnlockBiometricError(err error) VaultUnlockResult {
	return VaultUnlockResult{Status: VaultUnlockBiometricDecodingError, Err: err}
}

// Invalid is a structured validation rejection from the server, returned as
// data rather than as an error.
type Invalid struct {
	Message          string              `json:"message"`
	ValidationErrors map[string][]string `json:"validationErrors,omitempty"`
}

// FirstMessage returns the first field-level validation message, falling back
// to the top-level message.
func (i Invalid) FirstMessage() string {
	for _, msgs := range i.ValidationErrors {
		if len(msgs) > 0 {
			return msgs[0]
		}
	}
	return i.Message
}

// CreateFolderResult is the outcome of creating a folder. ErrorMessage is
// set for server validation rejections (Err stays nil).
type CreateFolderResult struct {
	FolderView   FolderView
	ErrorMessage string
	Err          error
}

// UpdateFolderResult is the outcome of updating a folder. ErrorMessage is set
// for server validation rejections (Err stays nil).
type UpdateFolderResult struct {
	FolderView   FolderView
	ErrorMessage string
	Err          error
}

// DeleteFolderResult is the outcome of deleting a folder.
type DeleteFolderResult struct {
	Err error
}

// CreateSendResult is the outcome of creating a send.
type CreateSendResult struct {
	SendView     SendView
	ErrorMessage string
	Err          error
}

// UpdateSendResult is the outcome of updating a send.
type UpdateSendResult struct {
	SendView     SendView
	ErrorMessage string
	Err          error
}

// DeleteSendResult is the outcome of deleting a send.
type DeleteSendResult struct {
	Err error
}

// RemovePasswordSendResult is the outcome of stripping a send's password.
type RemovePasswordSendResult struct {
	SendView     SendView
	ErrorMessage string
	Err          error
}

// GenerateTOTPResult is the outcome of generating a one-time code for a
// cipher.
type GenerateTOTPResult struct {
	Code          string
	PeriodSeconds int
	Err           error
}

// ExportFormat selects the vault export encoding.
type ExportFormat int

const (
	ExportFormatJSON ExportFormat = iota
	ExportFormatCSV
)

// ExportVaultDataResult is the outcome of a vault export.
type ExportVaultDataResult struct {
	Data string
	Err  error
}

// LogoutReason explains a forced logout to the logout manager.
type LogoutReason int

const (
	// LogoutReasonSecurityStamp means the server-side security stamp no
	// longer matches the cached one: the session was invalidated remotely.
	LogoutReasonSecurityStamp LogoutReason = iota
	// LogoutReasonNotification means the server pushed an explicit logout.
	LogoutReasonNotification
)

func (r LogoutReason) String() string {
	switch r {
	case LogoutReasonSecurityStamp:
		return "SecurityStamp"
	case LogoutReasonNotification:
		return "Notification"
	default:
		return "Unknown"
	}
}

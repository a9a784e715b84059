// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CipherType enumerates the kinds of vault secret records.
type CipherType int

const (
	CipherTypeLogin      CipherType = 1
	CipherTypeSecureNote CipherType = 2
	CipherTypeCard       CipherType = 3
	CipherTypeIdentity   CipherType = 4
	CipherTypeSSHKey     CipherType = 5
)

// Cipher is an encrypted vault record exactly as the server and the local
// store hold it. All free-text fields are envelope-encrypted strings; the
// engine never inspects them without going through the crypto engine.
type Cipher struct {
	ID             string     `json:"id"`
	OrganizationID *string    `json:"organizationId,omitempty"`
	FolderID       *string    `json:"folderId,omitempty"`
	CollectionIDs  []string   `json:"collectionIds,omitempty"`
	Type           CipherType `json:"type"`
	Name           string     `json:"name"`
	Notes          *string    `json:"notes,omitempty"`
	Login          *CipherLogin `json:"login,omitempty"`
	Card           *CipherCard  `json:"card,omitempty"`
	SSHKey         *CipherSSHKey `json:"sshKey,omitempty"`
	Favorite       bool       `json:"favorite"`
	Reprompt       int        `json:"reprompt"`
	Key            *string    `json:"key,omitempty"`
	RevisionDate   time.Time  `json:"revisionDate"`
	CreationDate   time.Time  `json:"creationDate"`
	DeletedDate    *time.Time `json:"deletedDate,omitempty"`
}

// CipherLogin holds the encrypted login sub-record of a cipher.
type CipherLogin struct {
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
	TOTP     *string `json:"totp,omitempty"`
	URIs     []CipherLoginURI `json:"uris,omitempty"`
}

// CipherLoginURI is a single encrypted URI match entry of a login cipher.
type CipherLoginURI struct {
	URI   string `json:"uri"`
	Match *int   `json:"match,omitempty"`
}

// CipherCard holds the encrypted card sub-record of a cipher.
type CipherCard struct {
	CardholderName *string `json:"cardholderName,omitempty"`
	Number         *string `json:"number,omitempty"`
	Brand          *string `json:"brand,omitempty"`
	ExpMonth       *string `json:"expMonth,omitempty"`
	ExpYear        *string `json:"expYear,omitempty"`
	Code           *string `json:"code,omitempty"`
}

// CipherSSHKey holds the encrypted SSH key sub-record of a cipher.
type CipherSSHKey struct {
	PrivateKey  *string `json:"privateKey,omitempty"`
	PublicKey   *string `json:"publicKey,omitempty"`
	Fingerprint *string `json:"keyFingerprint,omitempty"`
}

// CipherView is the decrypted projection of a single [Cipher].
type CipherView struct {
	ID             string
	OrganizationID *string
	FolderID       *string
	CollectionIDs  []string
	Type           CipherType
	Name           string
	Notes          string
	Username       string
	Password       string
	TOTP           string
	URIs           []string
	Favorite       bool
	RevisionDate   time.Time
	DeletedDate    *time.Time
}

/// DecryptCipherListResult carries the outcome of a batch cipher decrypt:
// items that decrypted cleanly and the ids of items that failed. A single
// corrupt record must not take the whole projection down.
type DecryptCipherListResult struct {
	Successes  []CipherView
	FailureIDs []string
}

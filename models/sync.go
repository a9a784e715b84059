// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DomainsData is the equivalent-domain rule set from the full sync payload.
// Equivalent domains are plaintext; they gate autofill URI matching, not
// secrets.
type DomainsData struct {
	EquivalentDomains       [][]string         `json:"equivalentDomains,omitempty"`
	GlobalEquivalentDomains []GlobalDomains    `json:"globalEquivalentDomains,omitempty"`
}

// GlobalDomains is a server-curated equivalent-domain group with an opt-out
// flag.
type GlobalDomains struct {
	Type     int      `json:"type"`
	Domains  []string `json:"domains"`
	Excluded bool     `json:"excluded"`
}

/// SyncResponse is the full sync payload: the complete server-side state of
// one user's vault.
type SyncResponse struct {
	Profile     Profile      `json:"profile"`
	Folders     []Folder     `json:"folders,omitempty"`
	Collections []Collection `json:"collections,omitempty"`
	Ciphers     []Cipher     `json:"ciphers,omitempty"`
	Sends       []Send       `json:"sends,omitempty"`
	Domains     *DomainsData `json:"domains,omitempty"`
	Policies    []Policy     `json:"policies,omitempty"`
}

// VaultData is the combined decrypted projection handed to consumers once
// every per-kind projection carries data.
type VaultData struct {
	DecryptCipherListResult DecryptCipherListResult
	FolderViewList          []FolderView
	CollectionViewList      []CollectionView
	SendViewList            []SendView
}

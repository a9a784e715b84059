package models

import "time"

// Folder is an encrypted vault folder record.
type Folder struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	RevisionDate time.Time `json:"revisionDate"`
}

// FolderView is the decrypted projection of a [Folder].
type FolderView struct {
	ID           string
	Name         string
	RevisionDate time.Time
}

// Collection is an encrypted organization collection record.
type Collection struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organizationId"`
	Name           string `json:"name"`
	ReadOnly       bool   `json:"readOnly"`
	Manage         bool   `json:"manage"`
}

// CollectionView is the decrypted projection of a [Collection].
type CollectionView struct {
	ID             string
	OrganizationID string
	Name           string
	ReadOnly       bool
	Manage         bool
}

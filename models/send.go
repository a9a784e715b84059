package models

import "time"

// SendType distinguishes text sends from file sends.
type SendType int

const (
	SendTypeText SendType = 0
	SendTypeFile SendType = 1
)

// Send is an encrypted shareable-secret record as held by the server and the
// local store.
type Send struct {
	ID             string     `json:"id"`
	AccessID       string     `json:"accessId"`
	Type           SendType   `json:"type"`
	Name           string     `json:"name"`
	Notes          *string    `json:"notes,omitempty"`
	Key            string     `json:"key"`
	Password       *string    `json:"password,omitempty"`
	Text           *SendText  `json:"text,omitempty"`
	File           *SendFile  `json:"file,omitempty"`
	MaxAccessCount *int       `json:"maxAccessCount,omitempty"`
	AccessCount    int        `json:"accessCount"`
	Disabled       bool       `json:"disabled"`
	HideEmail      bool       `json:"hideEmail"`
	RevisionDate   time.Time  `json:"revisionDate"`
	DeletionDate   time.Time  `json:"deletionDate"`
	ExpirationDate *time.Time `json:"expirationDate,omitempty"`
}

// SendText is the encrypted text payload of a text send.
type SendText struct {
	Text   string `json:"text"`
	Hidden bool   `json:"hidden"`
}

// SendFile describes the encrypted file payload of a file send.
type SendFile struct {
	ID       string `json:"id"`
	FileName string `json:"fileName"`
	Size     int64  `json:"size,string"`
}

// SendView is the decrypted projection of a [Send].
type SendView struct {
	ID             string
	AccessID       string
	Type           SendType
	Name           string
	Notes          string
	Text           string
	FileName       string
	HasPassword    bool
	MaxAccessCount *int
	AccessCount    int
	Disabled       bool
	HideEmail      bool
	RevisionDate   time.Time
	DeletionDate   time.Time
	ExpirationDate *time.Time
}

// SendData wraps the decrypted send list projection.
type SendData struct {
	SendViewList []SendView
}

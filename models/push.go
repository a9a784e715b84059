package models

import (
	"encoding/json"
	"time"
)

// NotificationType tags the payload of a push notification envelope.
type NotificationType int

const (
	NotificationSyncCipherUpdate NotificationType = 0
	NotificationSyncCipherCreate NotificationType = 1
	NotificationSyncFolderUpdate NotificationType = 7
	NotificationSyncFolderCreate NotificationType = 8
	NotificationSyncCipherDelete NotificationType = 9
	NotificationSyncFolderDelete NotificationType = 3
	NotificationSyncVault        NotificationType = 5
	NotificationSyncSendCreate   NotificationType = 12
	NotificationSyncSendUpdate   NotificationType = 13
	NotificationSyncSendDelete   NotificationType = 14
	NotificationLogOut           NotificationType = 11
)

// PushNotification is the raw notification envelope delivered by the push
// transport. Payload stays encoded until the type is known.
type PushNotification struct {
	Type    NotificationType `json:"type"`
	Payload json.RawMessage  `json:"payload"`
}

// SyncCipherUpsertData announces a cipher created or modified remotely.
// IsUpdate distinguishes "modified" from "created" semantics; the two are
// reconciled differently.
type SyncCipherUpsertData struct {
	CipherID       string
	UserID         string
	OrganizationID *string
	CollectionIDs  []string
	RevisionDate   time.Time
	IsUpdate       bool
}

// SyncCipherDeleteData announces a cipher removed remotely.
type SyncCipherDeleteData struct {
	CipherID string
	UserID   string
}

// SyncFolderUpsertData announces a folder created or modified remotely.
type SyncFolderUpsertData struct {
	FolderID     string
	UserID       string
	RevisionDate time.Time
	IsUpdate     bool
}

// SyncFolderDeleteData announces a folder removed remotely.
type SyncFolderDeleteData struct {
	FolderID string
	UserID   string
}

// SyncSendUpsertData announces a send created or modified remotely.
type SyncSendUpsertData struct {
	SendID       string
	UserID       string
	RevisionDate time.Time
	IsUpdate     bool
}

// SyncSendDeleteData announces a send removed remotely.
type SyncSendDeleteData struct {
	SendID string
	UserID string
}

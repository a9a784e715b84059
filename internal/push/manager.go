// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package push decodes raw push-notification envelopes from the sync server
// and fans them out as typed events. The reconciliation loop consumes the
// typed channels; the push transport only calls [Manager.HandleNotification].
package push

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
)

//go:generate mockgen -source=manager.go -destination=../mock/push_manager_mock.go -package=mock

// eventBuffer bounds each typed channel. Delivery is best effort; a dropped
// notification is recovered by the next periodic sync.
const eventBuffer = 16

// Manager turns raw notification envelopes into typed events.
type Manager interface {
	// HandleNotification decodes and dispatches one raw envelope. Unknown
	// notification types are ignored.
	HandleNotification(ctx context.Context, raw []byte) error

	CipherUpserts() <-chan models.SyncCipherUpsertData
	CipherDeletes() <-chan models.SyncCipherDeleteData
	FolderUpserts() <-chan models.SyncFolderUpsertData
	FolderDeletes() <-chan models.SyncFolderDeleteData
	SendUpserts() <-chan models.SyncSendUpsertData
	SendDeletes() <-chan models.SyncSendDeleteData

	// FullSyncRequests signals server-demanded full syncs.
	FullSyncRequests() <-chan string
	// Logouts signals server-demanded logouts, carrying the user id.
	Logouts() <-chan string
}

type pushManager struct {
	cipherUpserts chan models.SyncCipherUpsertData
	cipherDeletes chan models.SyncCipherDeleteData
	folderUpserts chan models.SyncFolderUpsertData
	folderDeletes chan models.SyncFolderDeleteData
	sendUpserts   chan models.SyncSendUpsertData
	sendDeletes   chan models.SyncSendDeleteData
	fullSyncs     chan string
	logouts       chan string

	logger *logger.Logger
}

func NewManager(log *logger.Logger) Manager {
	return &pushManager{
		cipherUpserts: make(chan models.SyncCipherUpsertData, eventBuffer),
		cipherDeletes: make(chan models.SyncCipherDeleteData, eventBuffer),
		folderUpserts: make(chan models.SyncFolderUpsertData, eventBuffer),
		folderDeletes: make(chan models.SyncFolderDeleteData, eventBuffer),
		sendUpserts:   make(chan models.SyncSendUpsertData, eventBuffer),
		sendDeletes:   make(chan models.SyncSendDeleteData, eventBuffer),
		fullSyncs:     make(chan string, eventBuffer),
		logouts:       make(chan string, eventBuffer),
	}
}

// cipherPayload is the wire form of cipher notifications.
type cipherPayload struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	OrganizationID *string   `json:"organizationId,omitempty"`
	CollectionIDs  []string  `json:"collectionIds,omitempty"`
	RevisionDate   time.Time `json:"revisionDate"`
}

// recordPayload is the wire form of folder and send notifications.
type recordPayload struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	RevisionDate time.Time `json:"revisionDate"`
}

// userPayload is the wire form of account-level notifications.
type userPayload struct {
	UserID string `json:"userId"`
}

func (p *pushManager) HandleNotification(ctx context.Context, raw []byte) error {
	log := logger.FromContext(ctx)

	var envelope models.PushNotification
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("decode push envelope: %w", err)
	}

	switch envelope.Type {
	case models.NotificationSyncCipherCreate, models.NotificationSyncCipherUpdate:
		var payload cipherPayload
		if err := json.Unmarshal(envelope.Payload, &payload); err != nil {
			return fmt.Errorf("decode cipher payload: %w", err)
		}
		emit(log, "cipher upsert", p.cipherUpserts, models.SyncCipherUpsertData{
			CipherID:       payload.ID,
			UserID:         payload.UserID,
			OrganizationID: payload.OrganizationID,
			CollectionIDs:  payload.CollectionIDs,
			RevisionDate:   payload.RevisionDate,
			IsUpdate:       envelope.Type == models.NotificationSyncCipherUpdate,
		})

	case models.NotificationSyncCipherDelete:
		var payload cipherPayload
		if err := json.Unmarshal(envelope.Payload, &payload); err != nil {
			return fmt.Errorf("decode cipher payload: %w", err)
		}
		emit(log, "cipher delete", p.cipherDeletes, models.SyncCipherDeleteData{
			CipherID: payload.ID,
			UserID:   payload.UserID,
		})

	case models.NotificationSyncFolderCreate, models.NotificationSyncFolderUpdate:
		var payload recordPayload
		if err := json.Unmarshal(envelope.Payload, &payload); err != nil {
			return fmt.Errorf("decode folder payload: %w", err)
		}
		emit(log, "folder upsert", p.folderUpserts, models.SyncFolderUpsertData{
			FolderID:     payload.ID,
			UserID:       payload.UserID,
			RevisionDate: payload.RevisionDate,
			IsUpdate:     envelope.Type == models.NotificationSyncFolderUpdate,
		})

	case models.NotificationSyncFolderDelete:
		var payload recordPayload
		if err := json.Unmarshal(envelope.Payload, &payload); err != nil {
			return fmt.Errorf("decode folder payload: %w", err)
		}
		emit(log, "folder delete", p.folderDeletes, models.SyncFolderDeleteData{
			FolderID: payload.ID,
			UserID:   payload.UserID,
		})

	case models.NotificationSyncSendCreate, models.NotificationSyncSendUpdate:
		var payload recordPayload
		if err := json.Unmarshal(envelope.Payload, &payload); err != nil {
			return fmt.Errorf("decode send payload: %w", err)
		}
		emit(log, "send upsert", p.sendUpserts, models.SyncSendUpsertData{
			SendID:       payload.ID,
			UserID:       payload.UserID,
			RevisionDate: payload.RevisionDate,
			IsUpdate:     envelope.Type == models.NotificationSyncSendUpdate,
		})

	case models.NotificationSyncSendDelete:
		var payload recordPayload
		if err := json.Unmarshal(envelope.Payload, &payload); err != nil {
			return fmt.Errorf("decode send payload: %w", err)
		}
		emit(log, "send delete", p.sendDeletes, models.SyncSendDeleteData{
			SendID: payload.ID,
			UserID: payload.UserID,
		})

	case models.NotificationSyncVault:
		var payload userPayload
		if err := json.Unmarshal(envelope.Payload, &payload); err != nil {
			return fmt.Errorf("decode sync vault payload: %w", err)
		}
		emit(log, "full sync request", p.fullSyncs, payload.UserID)

	case models.NotificationLogOut:
		var payload userPayload
		if err := json.Unmarshal(envelope.Payload, &payload); err != nil {
			return fmt.Errorf("decode logout payload: %w", err)
		}
		emit(log, "logout", p.logouts, payload.UserID)

	default:
		log.Debug().
			Str("func", "pushManager.HandleNotification").
			Int("type", int(envelope.Type)).
			Msg("ignoring unknown notification type")
	}

	return nil
}

func (p *pushManager) CipherUpserts() <-chan models.SyncCipherUpsertData { return p.cipherUpserts }
func (p *pushManager) CipherDeletes() <-chan models.SyncCipherDeleteData { return p.cipherDeletes }
func (p *pushManager) FolderUpserts() <-chan models.SyncFolderUpsertData { return p.folderUpserts }
func (p *pushManager) FolderDeletes() <-chan models.SyncFolderDeleteData { return p.folderDeletes }
func (p *pushManager) SendUpserts() <-chan models.SyncSendUpsertData     { return p.sendUpserts }
func (p *pushManager) SendDeletes() <-chan models.SyncSendDeleteData     { return p.sendDeletes }
func (p *pushManager) FullSyncRequests() <-chan string                   { return p.fullSyncs }
func (p *pushManager) Logouts() <-chan string                            { return p.logouts }

func emit[T any](log *logger.Logger, kind string, ch chan T, event T) {
	select {
	case ch <- event:
	default:
		log.Warn().
			Str("func", "pushManager.HandleNotification").
			Str("kind", kind).
			Msg("dropping push event, channel full")
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package push

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
)

func envelope(t *testing.T, notificationType models.NotificationType, payload any) []byte {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	raw, err := json.Marshal(models.PushNotification{Type: notificationType, Payload: data})
	require.NoError(t, err)
	return raw
}

func TestHandleNotification_CipherUpsert(t *testing.T) {
	m := NewManager(logger.Nop())
	ctx := context.Background()
	orgID := "org-1"
	at := time.Date(2026, 8, 22, 9, 0, 0, 0, time.UTC)

	raw := envelope(t, models.NotificationSyncCipherUpdate, map[string]any{
		"id":             "c1",
		"userId":         "user-1",
		"organizationId": orgID,
		"collectionIds":  []string{"col-1"},
		"revisionDate":   at,
	})
	require.NoError(t, m.HandleNotification(ctx, raw))

	select {
	case event := <-m.CipherUpserts():
		assert.Equal(t, "c1", event.CipherID)
		assert.Equal(t, "user-1", event.UserID)
		require.NotNil(t, event.OrganizationID)
		assert.Equal(t, orgID, *event.OrganizationID)
		assert.Equal(t, []string{"col-1"}, event.CollectionIDs)
		assert.True(t, at.Equal(event.RevisionDate))
		assert.True(t, event.IsUpdate)
	default:
		t.Fatal("no cipher upsert event")
	}

	// A create carries IsUpdate = false.
	raw = envelope(t, models.NotificationSyncCipherCreate, map[string]any{"id": "c2", "userId": "user-1"})
	require.NoError(t, m.HandleNotification(ctx, raw))

	event := <-m.CipherUpserts()
	assert.Equal(t, "c2", event.CipherID)
	assert.False(t, event.IsUpdate)
}

func TestHandleNotification_FolderAndSendEvents(t *testing.T) {
	m := NewManager(logger.Nop())
	ctx := context.Background()

	require.NoError(t, m.HandleNotification(ctx,
		envelope(t, models.NotificationSyncFolderDelete, map[string]any{"id": "f1", "userId": "user-1"})))
	folderDelete := <-m.FolderDeletes()
	assert.Equal(t, "f1", folderDelete.FolderID)

	require.NoError(t, m.HandleNotification(ctx,
		envelope(t, models.NotificationSyncSendCreate, map[string]any{"id": "s1", "userId": "user-1"})))
	sendUpsert := <-m.SendUpserts()
	assert.Equal(t, "s1", sendUpsert.SendID)
	assert.False(t, sendUpsert.IsUpdate)

	require.NoError(t, m.HandleNotification(ctx,
		envelope(t, models.NotificationSyncSendDelete, map[string]any{"id": "s1", "userId": "user-1"})))
	sendDelete := <-m.SendDeletes()
	assert.Equal(t, "s1", sendDelete.SendID)
}

func TestHandleNotification_AccountEvents(t *testing.T) {
	m := NewManager(logger.Nop())
	ctx := context.Background()

	require.NoError(t, m.HandleNotification(ctx,
		envelope(t, models.NotificationSyncVault, map[string]any{"userId": "user-1"})))
	assert.Equal(t, "user-1", <-m.FullSyncRequests())

	require.NoError(t, m.HandleNotification(ctx,
		envelope(t, models.NotificationLogOut, map[string]any{"userId": "user-2"})))
	assert.Equal(t, "user-2", <-m.Logouts())
}

func TestHandleNotification_UnknownTypeIgnored(t *testing.T) {
	m := NewManager(logger.Nop())

	raw := envelope(t, models.NotificationType(99), map[string]any{"userId": "user-1"})
	require.NoError(t, m.HandleNotification(context.Background(), raw))

	select {
	case <-m.FullSyncRequests():
		t.Fatal("unknown type must not produce events")
	default:
	}
}

func TestHandleNotification_MalformedEnvelope(t *testing.T) {
	m := NewManager(logger.Nop())

	err := m.HandleNotification(context.Background(), []byte("{broken"))
	require.Error(t, err)
}

func TestHandleNotification_FullChannelDropsEvent(t *testing.T) {
	m := NewManager(logger.Nop())
	ctx := context.Background()

	for i := 0; i < eventBuffer+5; i++ {
		raw := envelope(t, models.NotificationSyncVault, map[string]any{"userId": "user-1"})
		require.NoError(t, m.HandleNotification(ctx, raw))
	}

	drained := 0
	for {
		select {
		case <-m.FullSyncRequests():
			drained++
		default:
			assert.Equal(t, eventBuffer, drained)
			return
		}
	}
}

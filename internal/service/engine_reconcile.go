// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/models"
)

// runPushLoops consumes the push manager's typed event channels. Deletes are
// fast local mutations and stay on this goroutine; upserts involve a network
// fetch and run on their own loop (runPushUpserts) so a slow fetch never
// delays a delete. Events for users other than the active one are dropped.
// Out-of-order and duplicate delivery is tolerated: every handler re-reads
// current local state before acting.
func (e *vaultEngine) runPushLoops(ctx context.Context) {
	go e.runPushUpserts(ctx)

	for {
		select {
		case <-ctx.Done():
			return

		case data := <-e.push.CipherDeletes():
			e.handleCipherDelete(ctx, data)
		case data := <-e.push.FolderDeletes():
			e.handleFolderDelete(ctx, data)
		case data := <-e.push.SendDeletes():
			e.handleSendDelete(ctx, data)

		case userID := <-e.push.FullSyncRequests():
			if userID == e.activeUser() {
				e.Sync(ctx, true)
			}
		case userID := <-e.push.Logouts():
			e.handlePushLogout(ctx, userID)
		}
	}
}

// runPushUpserts serializes the fetch-bound upsert handlers. Racing a delete
// for the same record is safe: handlers re-check local state, and a record
// resurrected by a stale upsert is removed again on the next sync.
func (e *vaultEngine) runPushUpserts(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case data := <-e.push.CipherUpserts():
			e.handleCipherUpsert(ctx, data)
		case data := <-e.push.FolderUpserts():
			e.handleFolderUpsert(ctx, data)
		case data := <-e.push.SendUpserts():
			e.handleSendUpsert(ctx, data)
		}
	}
}

func (e *vaultEngine) handlePushLogout(ctx context.Context, userID string) {
	if userID != e.activeUser() {
		return
	}
	if err := e.logout.Logout(ctx, userID, models.LogoutReasonNotification); err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("func", "vaultEngine.handlePushLogout").Msg("push logout failed")
	}
}

// handleCipherUpsert reconciles a remote cipher create/update announcement.
//
// The fetch decision tolerates duplicates and reordering:
//   - a local copy strictly newer than the event wins unconditionally;
//   - updates only apply to ciphers we already hold, and organization cipher
//     updates additionally require overlap with a locally known collection;
//   - creates without an organization association are skipped when the
//     cipher is already known, while organization creates stay candidates
//     because they may newly apply to this user.
//
// A 404 on the fetch of an update means the cipher was deleted server-side
// between the event and the fetch, so the local copy is removed.
func (e *vaultEngine) handleCipherUpsert(ctx context.Context, data models.SyncCipherUpsertData) {
	log := logger.FromContext(ctx)
	userID := e.activeUser()
	if userID == "" || data.UserID != userID {
		return
	}

	local, err := e.vaultStore.GetCipher(ctx, userID, data.CipherID)
	if err != nil && !errors.Is(err, store.ErrRecordNotFound) {
		log.Error().Err(err).Str("func", "vaultEngine.handleCipherUpsert").Msg("read local cipher")
		return
	}
	if local != nil && local.RevisionDate.After(data.RevisionDate) {
		return
	}

	if !e.shouldFetchCipher(ctx, data, local != nil) {
		return
	}

	cipher, err := e.adapter.GetCipher(ctx, data.CipherID)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) && data.IsUpdate {
			if delErr := e.vaultStore.DeleteCipher(ctx, userID, data.CipherID); delErr != nil {
				log.Error().Err(delErr).Msg("delete cipher after 404")
			}
			return
		}
		log.Error().Err(err).Str("func", "vaultEngine.handleCipherUpsert").Str("cipherID", data.CipherID).Msg("fetch cipher")
		return
	}

	if err = e.vaultStore.SaveCipher(ctx, userID, cipher); err != nil {
		log.Error().Err(err).Msg("save reconciled cipher")
	}
}

func (e *vaultEngine) shouldFetchCipher(ctx context.Context, data models.SyncCipherUpsertData, localExists bool) bool {
	if data.IsUpdate {
		if !localExists {
			return false
		}
		if data.OrganizationID != nil {
			return e.collectionOverlap(ctx, data.CollectionIDs)
		}
		return true
	}
	if data.OrganizationID == nil && len(data.CollectionIDs) == 0 {
		return !localExists
	}
	return true
}

// collectionOverlap checks the event's collection ids against the current
// collection projection snapshot, read at call time so the guard never
// evaluates a stale copy.
func (e *vaultEngine) collectionOverlap(ctx context.Context, collectionIDs []string) bool {
	// Count as a projection consumer for the duration of the wait so a
	// pipeline idling without stream subscribers still serves the guard.
	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	e.addSubscriber(subCtx)

	views, err := e.collections.FirstData(subCtx)
	if err != nil {
		return false
	}
	for _, view := range views {
		for _, id := range collectionIDs {
			if view.ID == id {
				return true
			}
		}
	}
	return false
}

// handleCipherDelete removes the local copy. Removing an absent record is not
// an error.
func (e *vaultEngine) handleCipherDelete(ctx context.Context, data models.SyncCipherDeleteData) {
	userID := e.activeUser()
	if userID == "" || data.UserID != userID {
		return
	}
	if err := e.vaultStore.DeleteCipher(ctx, userID, data.CipherID); err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("func", "vaultEngine.handleCipherDelete").Msg("delete cipher")
	}
}

// handleFolderUpsert fetches on a genuine create (no local copy, not an
// update) or a genuine update (local copy older than the event). Folders skip
// on 404; there is no delete-on-miss in this path.
func (e *vaultEngine) handleFolderUpsert(ctx context.Context, data models.SyncFolderUpsertData) {
	log := logger.FromContext(ctx)
	userID := e.activeUser()
	if userID == "" || data.UserID != userID {
		return
	}

	local, err := e.vaultStore.GetFolder(ctx, userID, data.FolderID)
	if err != nil && !errors.Is(err, store.ErrRecordNotFound) {
		log.Error().Err(err).Str("func", "vaultEngine.handleFolderUpsert").Msg("read local folder")
		return
	}
	if !shouldFetchRecord(local != nil, data.IsUpdate, local != nil && local.RevisionDate.Before(data.RevisionDate)) {
		return
	}

	folder, err := e.adapter.GetFolder(ctx, data.FolderID)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return
		}
		log.Error().Err(err).Str("func", "vaultEngine.handleFolderUpsert").Str("folderID", data.FolderID).Msg("fetch folder")
		return
	}

	if err = e.vaultStore.SaveFolder(ctx, userID, folder); err != nil {
		log.Error().Err(err).Msg("save reconciled folder")
	}
}

func (e *vaultEngine) handleFolderDelete(ctx context.Context, data models.SyncFolderDeleteData) {
	userID := e.activeUser()
	if userID == "" || data.UserID != userID {
		return
	}
	if err := e.vaultStore.DeleteFolder(ctx, userID, data.FolderID); err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("func", "vaultEngine.handleFolderDelete").Msg("delete folder")
	}
}

// handleSendUpsert mirrors the folder rule for the fetch decision, but a 404
// on the fetch of an update removes the local copy, matching cipher
// behaviour.
func (e *vaultEngine) handleSendUpsert(ctx context.Context, data models.SyncSendUpsertData) {
	log := logger.FromContext(ctx)
	userID := e.activeUser()
	if userID == "" || data.UserID != userID {
		return
	}

	local, err := e.vaultStore.GetSend(ctx, userID, data.SendID)
	if err != nil && !errors.Is(err, store.ErrRecordNotFound) {
		log.Error().Err(err).Str("func", "vaultEngine.handleSendUpsert").Msg("read local send")
		return
	}
	if !shouldFetchRecord(local != nil, data.IsUpdate, local != nil && local.RevisionDate.Before(data.RevisionDate)) {
		return
	}

	send, err := e.adapter.GetSend(ctx, data.SendID)
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) && data.IsUpdate {
			if delErr := e.vaultStore.DeleteSend(ctx, userID, data.SendID); delErr != nil {
				log.Error().Err(delErr).Msg("delete send after 404")
			}
			return
		}
		log.Error().Err(err).Str("func", "vaultEngine.handleSendUpsert").Str("sendID", data.SendID).Msg("fetch send")
		return
	}

	if err = e.vaultStore.SaveSend(ctx, userID, send); err != nil {
		log.Error().Err(err).Msg("save reconciled send")
	}
}

func (e *vaultEngine) handleSendDelete(ctx context.Context, data models.SyncSendDeleteData) {
	userID := e.activeUser()
	if userID == "" || data.UserID != userID {
		return
	}
	if err := e.vaultStore.DeleteSend(ctx, userID, data.SendID); err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("func", "vaultEngine.handleSendDelete").Msg("delete send")
	}
}

// shouldFetchRecord applies the folder/send fetch rule: a genuine create or a
// genuine update, nothing else.
func shouldFetchRecord(localExists, isUpdate, localOlder bool) bool {
	if !localExists && !isUpdate {
		return true
	}
	return localExists && isUpdate && localOlder
}

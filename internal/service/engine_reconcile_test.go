// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/internal/datastate"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/models"
)

var reconcileBase = time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)

func notFoundErr() error {
	return fmt.Errorf("%w: folder gone", adapter.ErrNotFound)
}

// ── Cipher upserts ───────────────────────────────────────────────────────────

func TestVaultEngine_HandleCipherUpsert_LocalNewerWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)

	local := &models.Cipher{ID: "cipher-1", RevisionDate: reconcileBase.Add(time.Minute)}
	m.vaultStore.EXPECT().GetCipher(gomock.Any(), testUserID, "cipher-1").Return(local, nil)
	// No GetCipher fetch expectation: an older event never triggers one.

	eng.handleCipherUpsert(testContext(), models.SyncCipherUpsertData{
		CipherID:     "cipher-1",
		UserID:       testUserID,
		RevisionDate: reconcileBase,
		IsUpdate:     true,
	})
}

func TestVaultEngine_HandleCipherUpsert_NewerUpdateFetches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)

	local := &models.Cipher{ID: "cipher-1", RevisionDate: reconcileBase.Add(-time.Minute)}
	fetched := models.Cipher{ID: "cipher-1", RevisionDate: reconcileBase}
	m.vaultStore.EXPECT().GetCipher(gomock.Any(), testUserID, "cipher-1").Return(local, nil)
	m.adapter.EXPECT().GetCipher(gomock.Any(), "cipher-1").Return(fetched, nil)
	m.vaultStore.EXPECT().SaveCipher(gomock.Any(), testUserID, fetched).Return(nil)

	eng.handleCipherUpsert(testContext(), models.SyncCipherUpsertData{
		CipherID:     "cipher-1",
		UserID:       testUserID,
		RevisionDate: reconcileBase,
		IsUpdate:     true,
	})
}

func TestVaultEngine_HandleCipherUpsert_UpdateWithoutLocalCopySkips(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)

	m.vaultStore.EXPECT().GetCipher(gomock.Any(), testUserID, "cipher-1").Return(nil, store.ErrRecordNotFound)

	eng.handleCipherUpsert(testContext(), models.SyncCipherUpsertData{
		CipherID:     "cipher-1",
		UserID:       testUserID,
		RevisionDate: reconcileBase,
		IsUpdate:     true,
	})
}

func TestVaultEngine_HandleCipherUpsert_KnownCreateWithoutOrgSkips(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)

	local := &models.Cipher{ID: "cipher-1", RevisionDate: reconcileBase.Add(-time.Minute)}
	m.vaultStore.EXPECT().GetCipher(gomock.Any(), testUserID, "cipher-1").Return(local, nil)

	eng.handleCipherUpsert(testContext(), models.SyncCipherUpsertData{
		CipherID:     "cipher-1",
		UserID:       testUserID,
		RevisionDate: reconcileBase,
		IsUpdate:     false,
	})
}

func TestVaultEngine_HandleCipherUpsert_OrgUpdateRequiresCollectionOverlap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)
	eng.collections.Set(datastate.Loaded([]models.CollectionView{{ID: "col-1"}, {ID: "col-2"}}))

	local := &models.Cipher{ID: "cipher-1", RevisionDate: reconcileBase.Add(-time.Minute)}

	// No overlap: the event targets collections this user does not hold.
	m.vaultStore.EXPECT().GetCipher(gomock.Any(), testUserID, "cipher-1").Return(local, nil)
	eng.handleCipherUpsert(testContext(), models.SyncCipherUpsertData{
		CipherID:       "cipher-1",
		UserID:         testUserID,
		OrganizationID: strPtr("org-1"),
		CollectionIDs:  []string{"col-other"},
		RevisionDate:   reconcileBase,
		IsUpdate:       true,
	})

	// Overlap: the fetch goes through.
	fetched := models.Cipher{ID: "cipher-1", OrganizationID: strPtr("org-1"), RevisionDate: reconcileBase}
	m.vaultStore.EXPECT().GetCipher(gomock.Any(), testUserID, "cipher-1").Return(local, nil)
	m.adapter.EXPECT().GetCipher(gomock.Any(), "cipher-1").Return(fetched, nil)
	m.vaultStore.EXPECT().SaveCipher(gomock.Any(), testUserID, fetched).Return(nil)
	eng.handleCipherUpsert(testContext(), models.SyncCipherUpsertData{
		CipherID:       "cipher-1",
		UserID:         testUserID,
		OrganizationID: strPtr("org-1"),
		CollectionIDs:  []string{"col-2"},
		RevisionDate:   reconcileBase,
		IsUpdate:       true,
	})
}

func TestVaultEngine_HandleCipherUpsert_NotFoundOnUpdateDeletesLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)

	local := &models.Cipher{ID: "cipher-1", RevisionDate: reconcileBase.Add(-time.Minute)}
	m.vaultStore.EXPECT().GetCipher(gomock.Any(), testUserID, "cipher-1").Return(local, nil)
	m.adapter.EXPECT().GetCipher(gomock.Any(), "cipher-1").Return(models.Cipher{}, notFoundErr())
	m.vaultStore.EXPECT().DeleteCipher(gomock.Any(), testUserID, "cipher-1").Return(nil)

	eng.handleCipherUpsert(testContext(), models.SyncCipherUpsertData{
		CipherID:     "cipher-1",
		UserID:       testUserID,
		RevisionDate: reconcileBase,
		IsUpdate:     true,
	})
}

func TestVaultEngine_HandleCipherUpsert_OtherUserDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, _ := newTestEngine(t, ctrl)

	eng.handleCipherUpsert(testContext(), models.SyncCipherUpsertData{
		CipherID:     "cipher-1",
		UserID:       "somebody-else",
		RevisionDate: reconcileBase,
	})
}

// ── Folder upserts: skip on 404 ──────────────────────────────────────────────

func TestVaultEngine_HandleFolderUpsert_GenuineCreateFetches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)

	fetched := models.Folder{ID: "folder-1", RevisionDate: reconcileBase}
	m.vaultStore.EXPECT().GetFolder(gomock.Any(), testUserID, "folder-1").Return(nil, store.ErrRecordNotFound)
	m.adapter.EXPECT().GetFolder(gomock.Any(), "folder-1").Return(fetched, nil)
	m.vaultStore.EXPECT().SaveFolder(gomock.Any(), testUserID, fetched).Return(nil)

	eng.handleFolderUpsert(testContext(), models.SyncFolderUpsertData{
		FolderID:     "folder-1",
		UserID:       testUserID,
		RevisionDate: reconcileBase,
		IsUpdate:     false,
	})
}

func TestVaultEngine_HandleFolderUpsert_StaleUpdateSkips(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)

	local := &models.Folder{ID: "folder-1", RevisionDate: reconcileBase}
	m.vaultStore.EXPECT().GetFolder(gomock.Any(), testUserID, "folder-1").Return(local, nil)

	eng.handleFolderUpsert(testContext(), models.SyncFolderUpsertData{
		FolderID:     "folder-1",
		UserID:       testUserID,
		RevisionDate: reconcileBase.Add(-time.Minute),
		IsUpdate:     true,
	})
}

// Folders never delete locally on a 404, unlike ciphers and sends. The
// asymmetry is intentional and verified per resource kind.
func TestVaultEngine_HandleFolderUpsert_NotFoundOnUpdateSkipsWithoutDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)

	local := &models.Folder{ID: "folder-1", RevisionDate: reconcileBase.Add(-time.Minute)}
	m.vaultStore.EXPECT().GetFolder(gomock.Any(), testUserID, "folder-1").Return(local, nil)
	m.adapter.EXPECT().GetFolder(gomock.Any(), "folder-1").Return(models.Folder{}, notFoundErr())
	// No DeleteFolder expectation.

	eng.handleFolderUpsert(testContext(), models.SyncFolderUpsertData{
		FolderID:     "folder-1",
		UserID:       testUserID,
		RevisionDate: reconcileBase,
		IsUpdate:     true,
	})
}

// ── Send upserts: delete on 404 ──────────────────────────────────────────────

func TestVaultEngine_HandleSendUpsert_NotFoundOnUpdateDeletesLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)

	local := &models.Send{ID: "send-1", RevisionDate: reconcileBase.Add(-time.Minute)}
	m.vaultStore.EXPECT().GetSend(gomock.Any(), testUserID, "send-1").Return(local, nil)
	m.adapter.EXPECT().GetSend(gomock.Any(), "send-1").Return(models.Send{}, notFoundErr())
	m.vaultStore.EXPECT().DeleteSend(gomock.Any(), testUserID, "send-1").Return(nil)

	eng.handleSendUpsert(testContext(), models.SyncSendUpsertData{
		SendID:       "send-1",
		UserID:       testUserID,
		RevisionDate: reconcileBase,
		IsUpdate:     true,
	})
}

func TestVaultEngine_HandleSendUpsert_NewerUpdateFetches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)

	local := &models.Send{ID: "send-1", RevisionDate: reconcileBase.Add(-time.Minute)}
	fetched := models.Send{ID: "send-1", RevisionDate: reconcileBase}
	m.vaultStore.EXPECT().GetSend(gomock.Any(), testUserID, "send-1").Return(local, nil)
	m.adapter.EXPECT().GetSend(gomock.Any(), "send-1").Return(fetched, nil)
	m.vaultStore.EXPECT().SaveSend(gomock.Any(), testUserID, fetched).Return(nil)

	eng.handleSendUpsert(testContext(), models.SyncSendUpsertData{
		SendID:       "send-1",
		UserID:       testUserID,
		RevisionDate: reconcileBase,
		IsUpdate:     true,
	})
}

// ── Deletes ──────────────────────────────────────────────────────────────────

func TestVaultEngine_HandleDeletes_IdempotentOnAbsentRecords(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)

	// The store's delete of an absent row is not an error; handlers pass it
	// through untouched.
	m.vaultStore.EXPECT().DeleteCipher(gomock.Any(), testUserID, "ghost").Return(nil)
	m.vaultStore.EXPECT().DeleteFolder(gomock.Any(), testUserID, "ghost").Return(nil)
	m.vaultStore.EXPECT().DeleteSend(gomock.Any(), testUserID, "ghost").Return(nil)

	eng.handleCipherDelete(testContext(), models.SyncCipherDeleteData{CipherID: "ghost", UserID: testUserID})
	eng.handleFolderDelete(testContext(), models.SyncFolderDeleteData{FolderID: "ghost", UserID: testUserID})
	eng.handleSendDelete(testContext(), models.SyncSendDeleteData{SendID: "ghost", UserID: testUserID})
}

// ── Fetch rule table ─────────────────────────────────────────────────────────

func TestShouldFetchRecord(t *testing.T) {
	tests := []struct {
		name        string
		localExists bool
		isUpdate    bool
		localOlder  bool
		want        bool
	}{
		{name: "genuine create", localExists: false, isUpdate: false, want: true},
		{name: "create of known record", localExists: true, isUpdate: false, want: false},
		{name: "update of unknown record", localExists: false, isUpdate: true, want: false},
		{name: "genuine update", localExists: true, isUpdate: true, localOlder: true, want: true},
		{name: "stale update", localExists: true, isUpdate: true, localOlder: false, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, shouldFetchRecord(tt.localExists, tt.isUpdate, tt.localOlder))
		})
	}
}

// ── Push loop dispatch ───────────────────────────────────────────────────────

func TestVaultEngine_RunPushLoops_DeleteNotDelayedByUpsertFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)

	cipherUpserts := make(chan models.SyncCipherUpsertData, 1)
	cipherDeletes := make(chan models.SyncCipherDeleteData, 1)
	m.push.EXPECT().CipherUpserts().Return(cipherUpserts).AnyTimes()
	m.push.EXPECT().CipherDeletes().Return(cipherDeletes).AnyTimes()
	m.push.EXPECT().FolderUpserts().Return(nil).AnyTimes()
	m.push.EXPECT().FolderDeletes().Return(nil).AnyTimes()
	m.push.EXPECT().SendUpserts().Return(nil).AnyTimes()
	m.push.EXPECT().SendDeletes().Return(nil).AnyTimes()
	m.push.EXPECT().FullSyncRequests().Return(nil).AnyTimes()
	m.push.EXPECT().Logouts().Return(nil).AnyTimes()

	fetchStarted := make(chan struct{})
	releaseFetch := make(chan struct{})
	m.vaultStore.EXPECT().GetCipher(gomock.Any(), testUserID, "cipher-slow").Return(nil, store.ErrRecordNotFound)
	m.adapter.EXPECT().GetCipher(gomock.Any(), "cipher-slow").DoAndReturn(
		func(ctx context.Context, cipherID string) (models.Cipher, error) {
			close(fetchStarted)
			<-releaseFetch
			return models.Cipher{}, errors.New("fetch aborted")
		})

	deleted := make(chan string, 1)
	m.vaultStore.EXPECT().DeleteCipher(gomock.Any(), testUserID, "cipher-fast").DoAndReturn(
		func(ctx context.Context, userID, cipherID string) error {
			deleted <- cipherID
			return nil
		})

	ctx, cancel := context.WithCancel(testContext())
	defer cancel()
	go eng.runPushLoops(ctx)

	cipherUpserts <- models.SyncCipherUpsertData{CipherID: "cipher-slow", UserID: testUserID, RevisionDate: reconcileBase}
	<-fetchStarted

	// The delete must land while the upsert fetch is still in flight.
	cipherDeletes <- models.SyncCipherDeleteData{CipherID: "cipher-fast", UserID: testUserID}
	select {
	case cipherID := <-deleted:
		require.Equal(t, "cipher-fast", cipherID)
	case <-time.After(time.Second):
		t.Fatal("delete stalled behind the in-flight upsert fetch")
	}

	close(releaseFetch)
	cancel()
	// Let both loops observe the cancel before the controller verifies.
	time.Sleep(50 * time.Millisecond)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/models"
)

func validationErr(message string) error {
	return &adapter.ValidationError{Invalid: models.Invalid{Message: message}}
}

func TestVaultEngine_CreateFolder_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)

	view := models.FolderView{Name: "Work"}
	encrypted := models.Folder{Name: "2.enc|Work"}
	created := models.Folder{ID: "folder-1", Name: "2.enc|Work", RevisionDate: testSyncTime}
	decrypted := models.FolderView{ID: "folder-1", Name: "Work", RevisionDate: testSyncTime}

	m.crypto.EXPECT().EncryptFolder(gomock.Any(), testUserID, view).Return(encrypted, nil)
	m.adapter.EXPECT().CreateFolder(gomock.Any(), encrypted).Return(created, nil)
	m.vaultStore.EXPECT().SaveFolder(gomock.Any(), testUserID, created).Return(nil)
	m.crypto.EXPECT().DecryptFolder(gomock.Any(), testUserID, created).Return(decrypted, nil)

	result := eng.CreateFolder(testContext(), view)

	require.NoError(t, result.Err)
	assert.Empty(t, result.ErrorMessage)
	assert.Equal(t, decrypted, result.FolderView)
}

func TestVaultEngine_CreateFolder_ValidationRejectionIsData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)

	view := models.FolderView{Name: ""}
	m.crypto.EXPECT().EncryptFolder(gomock.Any(), testUserID, view).Return(models.Folder{}, nil)
	m.adapter.EXPECT().CreateFolder(gomock.Any(), gomock.Any()).
		Return(models.Folder{}, validationErr("The Name field is required."))

	result := eng.CreateFolder(testContext(), view)

	require.NoError(t, result.Err)
	assert.Equal(t, "The Name field is required.", result.ErrorMessage)
}

func TestVaultEngine_UpdateFolder_KeepsIDThroughEncryption(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)

	view := models.FolderView{ID: "folder-1", Name: "Personal"}
	// The crypto engine returns a fresh record without an id; the engine
	// restores it before the server call.
	m.crypto.EXPECT().EncryptFolder(gomock.Any(), testUserID, view).Return(models.Folder{Name: "2.enc|Personal"}, nil)

	updated := models.Folder{ID: "folder-1", Name: "2.enc|Personal"}
	m.adapter.EXPECT().UpdateFolder(gomock.Any(), models.Folder{ID: "folder-1", Name: "2.enc|Personal"}).Return(updated, nil)
	m.vaultStore.EXPECT().SaveFolder(gomock.Any(), testUserID, updated).Return(nil)
	m.crypto.EXPECT().DecryptFolder(gomock.Any(), testUserID, updated).Return(models.FolderView{ID: "folder-1", Name: "Personal"}, nil)

	result := eng.UpdateFolder(testContext(), view)

	require.NoError(t, result.Err)
	assert.Equal(t, "folder-1", result.FolderView.ID)
}

func TestVaultEngine_UpdateFolder_ServerFailureIsError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)

	view := models.FolderView{ID: "folder-1", Name: "Personal"}
	m.crypto.EXPECT().EncryptFolder(gomock.Any(), testUserID, view).Return(models.Folder{}, nil)
	m.adapter.EXPECT().UpdateFolder(gomock.Any(), gomock.Any()).Return(models.Folder{}, errors.New("boom"))

	result := eng.UpdateFolder(testContext(), view)

	require.Error(t, result.Err)
	assert.Empty(t, result.ErrorMessage)
}

func TestVaultEngine_DeleteFolder_RemoteThenLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)

	remote := m.adapter.EXPECT().DeleteFolder(gomock.Any(), "folder-1").Return(nil)
	m.vaultStore.EXPECT().DeleteFolder(gomock.Any(), testUserID, "folder-1").Return(nil).After(remote)

	result := eng.DeleteFolder(testContext(), "folder-1")

	require.NoError(t, result.Err)
}

func TestVaultEngine_DeleteFolder_RemoteFailureSkipsLocalDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)

	m.adapter.EXPECT().DeleteFolder(gomock.Any(), "folder-1").Return(errors.New("boom"))

	result := eng.DeleteFolder(testContext(), "folder-1")

	require.Error(t, result.Err)
}

func TestVaultEngine_FolderMutations_NoActiveUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, _ := newTestEngine(t, ctrl)
	eng.activeUserID = ""

	assert.ErrorIs(t, eng.CreateFolder(testContext(), models.FolderView{}).Err, ErrNoActiveUser)
	assert.ErrorIs(t, eng.UpdateFolder(testContext(), models.FolderView{}).Err, ErrNoActiveUser)
	assert.ErrorIs(t, eng.DeleteFolder(testContext(), "folder-1").Err, ErrNoActiveUser)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/models"
)

func TestVaultEngine_CreateSend_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)

	view := models.SendView{Name: "note", Type: models.SendTypeText}
	encrypted := models.Send{Name: "2.enc|note"}
	created := models.Send{ID: "send-1", Name: "2.enc|note"}
	decrypted := models.SendView{ID: "send-1", Name: "note"}

	m.crypto.EXPECT().EncryptSend(gomock.Any(), testUserID, view).Return(encrypted, nil)
	m.adapter.EXPECT().CreateSend(gomock.Any(), encrypted).Return(created, nil)
	m.vaultStore.EXPECT().SaveSend(gomock.Any(), testUserID, created).Return(nil)
	m.crypto.EXPECT().DecryptSend(gomock.Any(), testUserID, created).Return(decrypted, nil)

	result := eng.CreateSend(testContext(), view)

	require.NoError(t, result.Err)
	assert.Equal(t, decrypted, result.SendView)
}

func TestVaultEngine_CreateSend_ValidationRejectionIsData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)

	m.crypto.EXPECT().EncryptSend(gomock.Any(), testUserID, gomock.Any()).Return(models.Send{}, nil)
	m.adapter.EXPECT().CreateSend(gomock.Any(), gomock.Any()).
		Return(models.Send{}, validationErr("You cannot edit this Send."))

	result := eng.CreateSend(testContext(), models.SendView{})

	require.NoError(t, result.Err)
	assert.Equal(t, "You cannot edit this Send.", result.ErrorMessage)
}

func TestVaultEngine_CreateFileSend_UploadsAndRemovesTempFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)

	view := models.SendView{Name: "report", Type: models.SendTypeFile, FileName: "report.pdf"}
	encrypted := models.Send{Name: "2.enc|report"}
	target := adapter.SendFileUploadTarget{
		URL:  "https://uploads.example.com/send-1",
		Send: models.Send{ID: "send-1", Name: "2.enc|report"},
	}

	var encryptedPath string
	m.crypto.EXPECT().EncryptSend(gomock.Any(), testUserID, view).Return(encrypted, nil)
	m.crypto.EXPECT().EncryptFile(gomock.Any(), testUserID, "/tmp/report.pdf", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, destinationPath string) (int64, error) {
			encryptedPath = destinationPath
			require.NoError(t, os.WriteFile(destinationPath, []byte("ciphertext"), 0o600))
			return 10, nil
		})
	m.adapter.EXPECT().CreateFileSendUploadTarget(gomock.Any(), encrypted, int64(10)).Return(target, nil)
	m.adapter.EXPECT().UploadSendFile(gomock.Any(), target, "report.pdf", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ adapter.SendFileUploadTarget, _, filePath string) error {
			// The encrypted copy must still exist while the upload runs.
			_, err := os.Stat(filePath)
			require.NoError(t, err)
			return nil
		})
	m.vaultStore.EXPECT().SaveSend(gomock.Any(), testUserID, target.Send).Return(nil)
	m.crypto.EXPECT().DecryptSend(gomock.Any(), testUserID, target.Send).
		Return(models.SendView{ID: "send-1", Name: "report"}, nil)

	result := eng.CreateFileSend(testContext(), view, "/tmp/report.pdf")

	require.NoError(t, result.Err)
	assert.Equal(t, "send-1", result.SendView.ID)

	require.NotEmpty(t, encryptedPath)
	assert.Equal(t, filepath.Clean(os.TempDir()), filepath.Dir(encryptedPath))
	assert.True(t, strings.HasPrefix(filepath.Base(encryptedPath), "send-"))
	_, err := os.Stat(encryptedPath)
	assert.True(t, os.IsNotExist(err), "encrypted temp file must be removed after upload")
}

func TestVaultEngine_CreateFileSend_UploadFailureStillRemovesTempFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)

	view := models.SendView{Name: "report", Type: models.SendTypeFile, FileName: "report.pdf"}
	target := adapter.SendFileUploadTarget{Send: models.Send{ID: "send-1"}}

	var encryptedPath string
	m.crypto.EXPECT().EncryptSend(gomock.Any(), testUserID, view).Return(models.Send{}, nil)
	m.crypto.EXPECT().EncryptFile(gomock.Any(), testUserID, "/tmp/report.pdf", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, destinationPath string) (int64, error) {
			encryptedPath = destinationPath
			require.NoError(t, os.WriteFile(destinationPath, []byte("ciphertext"), 0o600))
			return 10, nil
		})
	m.adapter.EXPECT().CreateFileSendUploadTarget(gomock.Any(), gomock.Any(), int64(10)).Return(target, nil)
	m.adapter.EXPECT().UploadSendFile(gomock.Any(), target, "report.pdf", gomock.Any()).
		Return(errors.New("blob storage unavailable"))

	result := eng.CreateFileSend(testContext(), view, "/tmp/report.pdf")

	require.Error(t, result.Err)
	_, err := os.Stat(encryptedPath)
	assert.True(t, os.IsNotExist(err), "encrypted temp file must be removed on upload failure")
}

func TestVaultEngine_UpdateSend_KeepsIDThroughEncryption(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)

	view := models.SendView{ID: "send-1", Name: "note"}
	m.crypto.EXPECT().EncryptSend(gomock.Any(), testUserID, view).Return(models.Send{Name: "2.enc|note"}, nil)

	updated := models.Send{ID: "send-1", Name: "2.enc|note"}
	m.adapter.EXPECT().UpdateSend(gomock.Any(), models.Send{ID: "send-1", Name: "2.enc|note"}).Return(updated, nil)
	m.vaultStore.EXPECT().SaveSend(gomock.Any(), testUserID, updated).Return(nil)
	m.crypto.EXPECT().DecryptSend(gomock.Any(), testUserID, updated).Return(models.SendView{ID: "send-1", Name: "note"}, nil)

	result := eng.UpdateSend(testContext(), view)

	require.NoError(t, result.Err)
	assert.Equal(t, "send-1", result.SendView.ID)
}

func TestVaultEngine_DeleteSend_RemoteThenLocal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)

	remote := m.adapter.EXPECT().DeleteSend(gomock.Any(), "send-1").Return(nil)
	m.vaultStore.EXPECT().DeleteSend(gomock.Any(), testUserID, "send-1").Return(nil).After(remote)

	result := eng.DeleteSend(testContext(), "send-1")

	require.NoError(t, result.Err)
}

func TestVaultEngine_RemovePasswordSend_PersistsCanonicalCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eng, m := newTestEngine(t, ctrl)

	stripped := models.Send{ID: "send-1", Password: nil}
	m.adapter.EXPECT().RemoveSendPassword(gomock.Any(), "send-1").Return(stripped, nil)
	m.vaultStore.EXPECT().SaveSend(gomock.Any(), testUserID, stripped).Return(nil)
	m.crypto.EXPECT().DecryptSend(gomock.Any(), testUserID, stripped).
		Return(models.SendView{ID: "send-1", HasPassword: false}, nil)

	result := eng.RemovePasswordSend(testContext(), "send-1")

	require.NoError(t, result.Err)
	assert.False(t, result.SendView.HasPassword)
}

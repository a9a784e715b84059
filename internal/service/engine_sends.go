// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
)

func (e *vaultEngine) CreateSend(ctx context.Context, view models.SendView) models.CreateSendResult {
	userID := e.activeUser()
	if userID == "" {
		return models.CreateSendResult{Err: ErrNoActiveUser}
	}

	encrypted, err := e.crypto.EncryptSend(ctx, userID, view)
	if err != nil {
		return models.CreateSendResult{Err: fmt.Errorf("encrypt send: %w", err)}
	}

	created, err := e.adapter.CreateSend(ctx, encrypted)
	if err != nil {
		if invalid, ok := adapter.AsValidation(err); ok {
			return models.CreateSendResult{ErrorMessage: invalid.FirstMessage()}
		}
		return models.CreateSendResult{Err: err}
	}

	decrypted, err := e.persistAndDecryptSend(ctx, userID, created)
	if err != nil {
		return models.CreateSendResult{Err: err}
	}
	return models.CreateSendResult{SendView: decrypted}
}

// CreateFileSend uploads a file send in three steps: encrypt the source into
// a temp file, register the upload target with the server, upload the
// encrypted bytes. The encrypted temp copy is removed once it exists,
// regardless of upload outcome.
func (e *vaultEngine) CreateFileSend(ctx context.Context, view models.SendView, sourcePath string) models.CreateSendResult {
	log := logger.FromContext(ctx)
	userID := e.activeUser()
	if userID == "" {
		return models.CreateSendResult{Err: ErrNoActiveUser}
	}

	encrypted, err := e.crypto.EncryptSend(ctx, userID, view)
	if err != nil {
		return models.CreateSendResult{Err: fmt.Errorf("encrypt send: %w", err)}
	}

	encryptedPath := filepath.Join(os.TempDir(), "send-"+uuid.NewString()+".enc")
	size, err := e.crypto.EncryptFile(ctx, userID, sourcePath, encryptedPath)
	if err != nil {
		return models.CreateSendResult{Err: fmt.Errorf("encrypt send file: %w", err)}
	}
	defer func() {
		if rmErr := os.Remove(encryptedPath); rmErr != nil {
			log.Warn().Err(rmErr).Str("func", "vaultEngine.CreateFileSend").Msg("remove encrypted temp file")
		}
	}()

	target, err := e.adapter.CreateFileSendUploadTarget(ctx, encrypted, size)
	if err != nil {
		if invalid, ok := adapter.AsValidation(err); ok {
			return models.CreateSendResult{ErrorMessage: invalid.FirstMessage()}
		}
		return models.CreateSendResult{Err: err}
	}

	if err = e.adapter.UploadSendFile(ctx, target, view.FileName, encryptedPath); err != nil {
		return models.CreateSendResult{Err: fmt.Errorf("upload send file: %w", err)}
	}

	decrypted, err := e.persistAndDecryptSend(ctx, userID, target.Send)
	if err != nil {
		return models.CreateSendResult{Err: err}
	}
	return models.CreateSendResult{SendView: decrypted}
}

func (e *vaultEngine) UpdateSend(ctx context.Context, view models.SendView) models.UpdateSendResult {
	userID := e.activeUser()
	if userID == "" {
		return models.UpdateSendResult{Err: ErrNoActiveUser}
	}

	encrypted, err := e.crypto.EncryptSend(ctx, userID, view)
	if err != nil {
		return models.UpdateSendResult{Err: fmt.Errorf("encrypt send: %w", err)}
	}
	encrypted.ID = view.ID

	updated, err := e.adapter.UpdateSend(ctx, encrypted)
	if err != nil {
		if invalid, ok := adapter.AsValidation(err); ok {
			return models.UpdateSendResult{ErrorMessage: invalid.FirstMessage()}
		}
		return models.UpdateSendResult{Err: err}
	}

	decrypted, err := e.persistAndDecryptSend(ctx, userID, updated)
	if err != nil {
		return models.UpdateSendResult{Err: err}
	}
	return models.UpdateSendResult{SendView: decrypted}
}

func (e *vaultEngine) DeleteSend(ctx context.Context, sendID string) models.DeleteSendResult {
	userID := e.activeUser()
	if userID == "" {
		return models.DeleteSendResult{Err: ErrNoActiveUser}
	}

	if err := e.adapter.DeleteSend(ctx, sendID); err != nil {
		return models.DeleteSendResult{Err: err}
	}
	if err := e.vaultStore.DeleteSend(ctx, userID, sendID); err != nil {
		return models.DeleteSendResult{Err: fmt.Errorf("delete local send: %w", err)}
	}
	return models.DeleteSendResult{}
}

func (e *vaultEngine) RemovePasswordSend(ctx context.Context, sendID string) models.RemovePasswordSendResult {
	userID := e.activeUser()
	if userID == "" {
		return models.RemovePasswordSendResult{Err: ErrNoActiveUser}
	}

	updated, err := e.adapter.RemoveSendPassword(ctx, sendID)
	if err != nil {
		if invalid, ok := adapter.AsValidation(err); ok {
			return models.RemovePasswordSendResult{ErrorMessage: invalid.FirstMessage()}
		}
		return models.RemovePasswordSendResult{Err: err}
	}

	decrypted, err := e.persistAndDecryptSend(ctx, userID, updated)
	if err != nil {
		return models.RemovePasswordSendResult{Err: err}
	}
	return models.RemovePasswordSendResult{SendView: decrypted}
}

func (e *vaultEngine) persistAndDecryptSend(ctx context.Context, userID string, send models.Send) (models.SendView, error) {
	if err := e.vaultStore.SaveSend(ctx, userID, send); err != nil {
		return models.SendView{}, fmt.Errorf("persist send: %w", err)
	}
	view, err := e.crypto.DecryptSend(ctx, userID, send)
	if err != nil {
		return models.SendView{}, fmt.Errorf("decrypt canonical send: %w", err)
	}
	return view, nil
}

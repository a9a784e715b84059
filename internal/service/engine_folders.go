// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/models"
)

// Folder mutations follow one pipeline: encrypt the view, call the server,
// persist the server's canonical copy, decrypt it back for the caller. A
// structured validation rejection from the server is returned as data.

func (e *vaultEngine) CreateFolder(ctx context.Context, view models.FolderView) models.CreateFolderResult {
	userID := e.activeUser()
	if userID == "" {
		return models.CreateFolderResult{Err: ErrNoActiveUser}
	}

	encrypted, err := e.crypto.EncryptFolder(ctx, userID, view)
	if err != nil {
		return models.CreateFolderResult{Err: fmt.Errorf("encrypt folder: %w", err)}
	}

	created, err := e.adapter.CreateFolder(ctx, encrypted)
	if err != nil {
		if invalid, ok := adapter.AsValidation(err); ok {
			return models.CreateFolderResult{ErrorMessage: invalid.FirstMessage()}
		}
		return models.CreateFolderResult{Err: err}
	}

	decrypted, err := e.persistAndDecryptFolder(ctx, userID, created)
	if err != nil {
		return models.CreateFolderResult{Err: err}
	}
	return models.CreateFolderResult{FolderView: decrypted}
}

func (e *vaultEngine) UpdateFolder(ctx context.Context, view models.FolderView) models.UpdateFolderResult {
	userID := e.activeUser()
	if userID == "" {
		return models.UpdateFolderResult{Err: ErrNoActiveUser}
	}

	encrypted, err := e.crypto.EncryptFolder(ctx, userID, view)
	if err != nil {
		return models.UpdateFolderResult{Err: fmt.Errorf("encrypt folder: %w", err)}
	}
	encrypted.ID = view.ID

	updated, err := e.adapter.UpdateFolder(ctx, encrypted)
	if err != nil {
		if invalid, ok := adapter.AsValidation(err); ok {
			return models.UpdateFolderResult{ErrorMessage: invalid.FirstMessage()}
		}
		return models.UpdateFolderResult{Err: err}
	}

	decrypted, err := e.persistAndDecryptFolder(ctx, userID, updated)
	if err != nil {
		return models.UpdateFolderResult{Err: err}
	}
	return models.UpdateFolderResult{FolderView: decrypted}
}

// DeleteFolder removes the folder remotely, then locally. The store clears
// the folder id from every cipher that referenced it, so referential
// consistency holds without a cascading delete.
func (e *vaultEngine) DeleteFolder(ctx context.Context, folderID string) models.DeleteFolderResult {
	userID := e.activeUser()
	if userID == "" {
		return models.DeleteFolderResult{Err: ErrNoActiveUser}
	}

	if err := e.adapter.DeleteFolder(ctx, folderID); err != nil {
		return models.DeleteFolderResult{Err: err}
	}
	if err := e.vaultStore.DeleteFolder(ctx, userID, folderID); err != nil {
		return models.DeleteFolderResult{Err: fmt.Errorf("delete local folder: %w", err)}
	}
	return models.DeleteFolderResult{}
}

func (e *vaultEngine) persistAndDecryptFolder(ctx context.Context, userID string, folder models.Folder) (models.FolderView, error) {
	if err := e.vaultStore.SaveFolder(ctx, userID, folder); err != nil {
		return models.FolderView{}, fmt.Errorf("persist folder: %w", err)
	}
	view, err := e.crypto.DecryptFolder(ctx, userID, folder)
	if err != nil {
		return models.FolderView{}, fmt.Errorf("decrypt canonical folder: %w", err)
	}
	return view, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the vault sync server.
//
// The primary abstraction is [SyncAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPSyncAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
// Structured 400 rejections become [ValidationError] values so that server
// validation messages can be surfaced as operation data.
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-vault-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/sync_adapter_mock.go -package=mock

// SendFileUploadTarget describes where and how an encrypted send file must be
// uploaded after the send record is created.
type SendFileUploadTarget struct {
	// URL is the direct upload destination.
	URL string `json:"url"`
	// FileUploadType selects the upload protocol expected by the target.
	FileUploadType int `json:"fileUploadType"`
	// Send is the server-created send record the upload belongs to.
	Send models.Send `json:"sendResponse"`
}

// SyncAdapter defines transport-agnostic communication with the vault sync
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type SyncAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// FullSync fetches the complete server-side vault state of the
	// authenticated user.
	FullSync(ctx context.Context) (models.SyncResponse, error)

	// AccountRevisionDate fetches the instant of the last server-side account
	// change. Used to decide whether a full fetch can be skipped.
	AccountRevisionDate(ctx context.Context) (time.Time, error)

	// GetCipher fetches a single cipher by id. Returns [ErrNotFound]
	// (wrapped) when the record no longer exists on the server.
	GetCipher(ctx context.Context, cipherID string) (models.Cipher, error)

	// CreateFolder creates the folder and returns the server's canonical copy
	// with the assigned id and revision date.
	CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error)
	UpdateFolder(ctx context.Context, folder models.Folder) (models.Folder, error)
	DeleteFolder(ctx context.Context, folderID string) error
	GetFolder(ctx context.Context, folderID string) (models.Folder, error)

	CreateSend(ctx context.Context, send models.Send) (models.Send, error)
	UpdateSend(ctx context.Context, send models.Send) (models.Send, error)
	DeleteSend(ctx context.Context, sendID string) error
	GetSend(ctx context.Context, sendID string) (models.Send, error)

	// RemoveSendPassword strips the access password from the send and returns
	// the updated server copy.
	RemoveSendPassword(ctx context.Context, sendID string) (models.Send, error)

	// CreateFileSendUploadTarget registers a file send and returns the upload
	// target for its encrypted payload.
	CreateFileSendUploadTarget(ctx context.Context, send models.Send, fileLength int64) (SendFileUploadTarget, error)

	// UploadSendFile streams the encrypted file at filePath to the prepared
	// upload target.
	UploadSendFile(ctx context.Context, target SendFileUploadTarget, fileName, filePath string) error
}

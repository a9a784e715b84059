// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/utils"
	"github.com/MKhiriev/go-vault-sync/models"
)

// azureFileUploadType marks targets expecting a raw block-blob PUT instead of
// a multipart upload back to the API.
const azureFileUploadType = 1

type httpSyncAdapter struct {
	client *utils.HTTPClient

	// mu guards token: logout clears it from the engine's goroutines while
	// requests and the notification poller read it.
	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPSyncAdapter constructs an HTTP/REST implementation of [SyncAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPSyncAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (SyncAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpSyncAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [SyncAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpSyncAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [SyncAdapter].
func (h *httpSyncAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// FullSync implements [SyncAdapter]. It GETs /api/sync and decodes the full
// vault payload.
func (h *httpSyncAdapter) FullSync(ctx context.Context) (models.SyncResponse, error) {
	resp, err := h.authedRequest(ctx).Get("/api/sync")
	if err != nil {
		return models.SyncResponse{}, fmt.Errorf("full sync request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SyncResponse{}, err
	}

	var sync models.SyncResponse
	if err = json.Unmarshal(resp.Body(), &sync); err != nil {
		return models.SyncResponse{}, fmt.Errorf("decode sync response: %w", err)
	}
	return sync, nil
}

// AccountRevisionDate implements [SyncAdapter]. The server answers with the
// revision instant as epoch milliseconds in a bare JSON number.
func (h *httpSyncAdapter) AccountRevisionDate(ctx context.Context) (time.Time, error) {
	resp, err := h.authedRequest(ctx).Get("/api/accounts/revision-date")
	if err != nil {
		return time.Time{}, fmt.Errorf("revision date request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return time.Time{}, err
	}

	millis, err := strconv.ParseInt(strings.TrimSpace(string(resp.Body())), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("decode revision date response: %w", err)
	}
	return time.UnixMilli(millis).UTC(), nil
}

// GetCipher implements [SyncAdapter]. It GETs /api/ciphers/{id}.
func (h *httpSyncAdapter) GetCipher(ctx context.Context, cipherID string) (models.Cipher, error) {
	var cipher models.Cipher

	resp, err := h.authedRequest(ctx).
		SetResult(&cipher).
		Get("/api/ciphers/" + url.PathEscape(cipherID))
	if err != nil {
		return models.Cipher{}, fmt.Errorf("get cipher request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Cipher{}, err
	}
	return cipher, nil
}

func (h *httpSyncAdapter) CreateFolder(ctx context.Context, folder models.Folder) (models.Folder, error) {
	var created models.Folder

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(folder).
		SetResult(&created).
		Post("/api/folders")
	if err != nil {
		return models.Folder{}, fmt.Errorf("create folder request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Folder{}, err
	}
	return created, nil
}

func (h *httpSyncAdapter) UpdateFolder(ctx context.Context, folder models.Folder) (models.Folder, error) {
	var updated models.Folder

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(folder).
		SetResult(&updated).
		Put("/api/folders/" + url.PathEscape(folder.ID))
	if err != nil {
		return models.Folder{}, fmt.Errorf("update folder request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Folder{}, err
	}
	return updated, nil
}

func (h *httpSyncAdapter) DeleteFolder(ctx context.Context, folderID string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/folders/" + url.PathEscape(folderID))
	if err != nil {
		return fmt.Errorf("delete folder request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpSyncAdapter) GetFolder(ctx context.Context, folderID string) (models.Folder, error) {
	var folder models.Folder

	resp, err := h.authedRequest(ctx).
		SetResult(&folder).
		Get("/api/folders/" + url.PathEscape(folderID))
	if err != nil {
		return models.Folder{}, fmt.Errorf("get folder request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Folder{}, err
	}
	return folder, nil
}

func (h *httpSyncAdapter) CreateSend(ctx context.Context, send models.Send) (models.Send, error) {
	var created models.Send

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(send).
		SetResult(&created).
		Post("/api/sends")
	if err != nil {
		return models.Send{}, fmt.Errorf("create send request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Send{}, err
	}
	return created, nil
}

func (h *httpSyncAdapter) UpdateSend(ctx context.Context, send models.Send) (models.Send, error) {
	var updated models.Send

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(send).
		SetResult(&updated).
		Put("/api/sends/" + url.PathEscape(send.ID))
	if err != nil {
		return models.Send{}, fmt.Errorf("update send request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Send{}, err
	}
	return updated, nil
}

func (h *httpSyncAdapter) DeleteSend(ctx context.Context, sendID string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/sends/" + url.PathEscape(sendID))
	if err != nil {
		return fmt.Errorf("delete send request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpSyncAdapter) GetSend(ctx context.Context, sendID string) (models.Send, error) {
	var send models.Send

	resp, err := h.authedRequest(ctx).
		SetResult(&send).
		Get("/api/sends/" + url.PathEscape(sendID))
	if err != nil {
		return models.Send{}, fmt.Errorf("get send request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Send{}, err
	}
	return send, nil
}

func (h *httpSyncAdapter) RemoveSendPassword(ctx context.Context, sendID string) (models.Send, error) {
	var updated models.Send

	resp, err := h.authedRequest(ctx).
		SetResult(&updated).
		Put("/api/sends/" + url.PathEscape(sendID) + "/remove-password")
	if err != nil {
		return models.Send{}, fmt.Errorf("remove send password request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Send{}, err
	}
	return updated, nil
}

// CreateFileSendUploadTarget implements [SyncAdapter]. It POSTs the send
// record plus the encrypted file length to /api/sends/file/v2 and returns the
// server-prepared upload target.
func (h *httpSyncAdapter) CreateFileSendUploadTarget(ctx context.Context, send models.Send, fileLength int64) (SendFileUploadTarget, error) {
	body := struct {
		models.Send
		FileLength int64 `json:"fileLength,string"`
	}{Send: send, FileLength: fileLength}

	var target SendFileUploadTarget
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&target).
		Post("/api/sends/file/v2")
	if err != nil {
		return SendFileUploadTarget{}, fmt.Errorf("create file send request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return SendFileUploadTarget{}, err
	}
	return target, nil
}

// UploadSendFile implements [SyncAdapter]. Azure-style targets get a raw
// block-blob PUT; everything else is a multipart POST of the encrypted file.
func (h *httpSyncAdapter) UploadSendFile(ctx context.Context, target SendFileUploadTarget, fileName, filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open encrypted send file: %w", err)
	}
	defer file.Close()

	var resp *resty.Response
	if target.FileUploadType == azureFileUploadType {
		resp, err = h.client.R().
			SetContext(ctx).
			SetHeader("x-ms-blob-type", "BlockBlob").
			SetBody(file).
			Put(target.URL)
	} else {
		resp, err = h.authedRequest(ctx).
			SetFileReader("data", fileName, file).
			Post(target.URL)
	}
	if err != nil {
		return fmt.Errorf("upload send file request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpSyncAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		if utils.IsTokenExpired(token, time.Now()) {
			// Send it anyway; the server's 401 drives the re-auth flow.
			h.logger.Warn().Str("func", "httpSyncAdapter.authedRequest").Msg("stored bearer token is expired")
		}
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

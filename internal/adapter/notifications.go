// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/config"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/utils"
)

// pollTimeout is the server-side hold time of one long-poll round. The client
// timeout stays slightly above it so a held connection is not cut short.
const pollTimeout = 25 * time.Second

// TokenSource supplies the current bearer token. The sync adapter satisfies
// it, so the notification stream follows login and logout without extra
// wiring.
type TokenSource interface {
	Token() string
}

// HTTPNotificationSource long-polls the server's notification endpoint and
// hands raw envelopes to the consumer. One Listen call owns one connection
// cycle; the stream channel closes on the first transport failure and the
// caller reconnects.
type HTTPNotificationSource struct {
	client *utils.HTTPClient
	tokens TokenSource
	logger *logger.Logger
}

func NewHTTPNotificationSource(adapterCfg config.ClientAdapter, tokens TokenSource, log *logger.Logger) (*HTTPNotificationSource, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(pollTimeout + 5*time.Second)

	return &HTTPNotificationSource{client: client, tokens: tokens, logger: log}, nil
}

// Listen starts one poll loop and returns its stream. An empty poll round
// (204 or an empty batch) keeps the loop going; an error ends it.
func (s *HTTPNotificationSource) Listen(ctx context.Context) (<-chan []byte, error) {
	token := s.tokens.Token()
	if token == "" {
		return nil, fmt.Errorf("no bearer token, not listening")
	}

	out := make(chan []byte)
	go func() {
		defer close(out)
		for {
			batch, err := s.poll(ctx, token)
			if err != nil {
				if ctx.Err() == nil {
					s.logger.Warn().Err(err).Str("func", "HTTPNotificationSource.Listen").Msg("notification poll failed")
				}
				return
			}
			for _, raw := range batch {
				select {
				case <-ctx.Done():
					return
				case out <- raw:
				}
			}
		}
	}()
	return out, nil
}

func (s *HTTPNotificationSource) poll(ctx context.Context, token string) ([]json.RawMessage, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetQueryParam("timeout", fmt.Sprintf("%d", int(pollTimeout.Seconds()))).
		Get("/notifications/poll")
	if err != nil {
		return nil, fmt.Errorf("notification poll request: %w", err)
	}
	if resp.StatusCode() == http.StatusNoContent {
		return nil, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var batch []json.RawMessage
	if err = json.Unmarshal(resp.Body(), &batch); err != nil {
		return nil, fmt.Errorf("decode notification batch: %w", err)
	}
	return batch, nil
}

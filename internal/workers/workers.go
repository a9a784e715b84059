// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers hosts the engine's background drivers: a ticker that keeps
// the vault fresh through staleness-gated syncs and a listener that feeds raw
// push notifications into the push manager.
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/push"
)

// defaultSyncInterval is the ticker period used when the caller passes a
// non-positive one. The engine's own staleness gate decides whether a tick
// actually reaches the network.
const defaultSyncInterval = 5 * time.Minute

// SyncTrigger is the slice of the engine the periodic worker needs.
type SyncTrigger interface {
	SyncIfNecessary(ctx context.Context)
}

// NotificationSource delivers raw push-notification envelopes. Listen blocks
// until the source connects and returns a channel that closes when the
// connection drops; the listener reconnects.
type NotificationSource interface {
	Listen(ctx context.Context) (<-chan []byte, error)
}

// SyncWorker periodically nudges the engine. Idle until Start.
type SyncWorker interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}

type syncWorker struct {
	trigger SyncTrigger
	log     *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSyncWorker(trigger SyncTrigger, log *logger.Logger) SyncWorker {
	return &syncWorker{trigger: trigger, log: log}
}

// Start stops any previously running worker, then launches a goroutine that
// calls SyncIfNecessary every interval until ctx is cancelled or Stop is
// called.
func (w *syncWorker) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	w.Stop()

	w.mu.Lock()
	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-workerCtx.Done():
				return
			case <-t.C:
				w.trigger.SyncIfNecessary(workerCtx)
			}
		}
	}()
}

// Stop cancels the worker goroutine and blocks until it has exited. Safe to
// call when the worker is not running.
func (w *syncWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// PushListener pumps raw envelopes from a notification source into the push
// manager until its context is cancelled.
type PushListener interface {
	Start(ctx context.Context)
	Stop()
}

type pushListener struct {
	source  NotificationSource
	manager push.Manager
	// reconnectDelay spaces out retries after the source drops.
	reconnectDelay time.Duration
	log            *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewPushListener(source NotificationSource, manager push.Manager, log *logger.Logger) PushListener {
	return &pushListener{
		source:         source,
		manager:        manager,
		reconnectDelay: 5 * time.Second,
		log:            log,
	}
}

func (l *pushListener) Start(ctx context.Context) {
	l.Stop()

	l.mu.Lock()
	listenerCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.wg.Add(1)
	l.mu.Unlock()

	go func() {
		defer l.wg.Done()
		l.run(listenerCtx)
	}()
}

func (l *pushListener) Stop() {
	l.mu.Lock()
	cancel := l.cancel
	l.cancel = nil
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	l.wg.Wait()
}

// run connects, drains, and reconnects. A malformed notification is logged
// and skipped; the stream stays up.
func (l *pushListener) run(ctx context.Context) {
	for {
		notifications, err := l.source.Listen(ctx)
		if err != nil {
			l.log.Warn().Err(err).Str("func", "pushListener.run").Msg("push source connect failed")
			select {
			case <-ctx.Done():
				return
			case <-time.After(l.reconnectDelay):
				continue
			}
		}

		if !l.drain(ctx, notifications) {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(l.reconnectDelay):
		}
	}
}

// drain consumes one connection's stream. It returns false when ctx ended and
// true when the stream closed and a reconnect is due.
func (l *pushListener) drain(ctx context.Context, notifications <-chan []byte) bool {
	for {
		select {
		case <-ctx.Done():
			return false
		case raw, ok := <-notifications:
			if !ok {
				l.log.Info().Str("func", "pushListener.drain").Msg("push stream closed, reconnecting")
				return true
			}
			if err := l.manager.HandleNotification(ctx, raw); err != nil {
				l.log.Warn().Err(err).Str("func", "pushListener.drain").Msg("drop malformed notification")
			}
		}
	}
}

// Workers bundles the background drivers so the entrypoint starts and stops
// them as one unit.
type Workers struct {
	Sync     SyncWorker
	Listener PushListener
}

func NewWorkers(trigger SyncTrigger, source NotificationSource, manager push.Manager, log *logger.Logger) *Workers {
	return &Workers{
		Sync:     NewSyncWorker(trigger, log),
		Listener: NewPushListener(source, manager, log),
	}
}

// Start launches both workers with the given sync interval.
func (w *Workers) Start(ctx context.Context, syncInterval time.Duration) {
	w.Sync.Start(ctx, syncInterval)
	w.Listener.Start(ctx)
}

// Stop halts both workers and waits for their goroutines.
func (w *Workers) Stop() {
	w.Sync.Stop()
	w.Listener.Stop()
}

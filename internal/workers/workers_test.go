// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
)

type countingTrigger struct {
	calls atomic.Int64
}

func (c *countingTrigger) SyncIfNecessary(_ context.Context) {
	c.calls.Add(1)
}

// stubSource hands out pre-arranged notification streams, one per Listen
// call, then blocks.
type stubSource struct {
	mu      sync.Mutex
	streams []<-chan []byte
	errs    []error
}

func (s *stubSource) Listen(ctx context.Context) (<-chan []byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.errs) > 0 {
		err := s.errs[0]
		s.errs = s.errs[1:]
		return nil, err
	}
	if len(s.streams) == 0 {
		blocked := make(chan []byte)
		return blocked, nil
	}
	stream := s.streams[0]
	s.streams = s.streams[1:]
	return stream, nil
}

// recordingManager collects every raw envelope it is handed. Hand-written so
// the test can block on delivery instead of polling a mock.
type recordingManager struct {
	received chan []byte
	err      error
}

func newRecordingManager() *recordingManager {
	return &recordingManager{received: make(chan []byte, 16)}
}

func (r *recordingManager) HandleNotification(_ context.Context, raw []byte) error {
	r.received <- raw
	return r.err
}

func (r *recordingManager) CipherUpserts() <-chan models.SyncCipherUpsertData { return nil }
func (r *recordingManager) CipherDeletes() <-chan models.SyncCipherDeleteData { return nil }
func (r *recordingManager) FolderUpserts() <-chan models.SyncFolderUpsertData { return nil }
func (r *recordingManager) FolderDeletes() <-chan models.SyncFolderDeleteData { return nil }
func (r *recordingManager) SendUpserts() <-chan models.SyncSendUpsertData     { return nil }
func (r *recordingManager) SendDeletes() <-chan models.SyncSendDeleteData     { return nil }
func (r *recordingManager) FullSyncRequests() <-chan string                   { return nil }
func (r *recordingManager) Logouts() <-chan string                            { return nil }

// ── Sync worker ──────────────────────────────────────────────────────────────

func TestSyncWorker_TicksUntilStopped(t *testing.T) {
	trigger := &countingTrigger{}
	worker := NewSyncWorker(trigger, logger.Nop())

	worker.Start(context.Background(), 5*time.Millisecond)

	require.Eventually(t, func() bool {
		return trigger.calls.Load() >= 3
	}, time.Second, time.Millisecond)

	worker.Stop()
	settled := trigger.calls.Load()
	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, settled, trigger.calls.Load())
}

func TestSyncWorker_StopWithoutStartIsNoOp(t *testing.T) {
	worker := NewSyncWorker(&countingTrigger{}, logger.Nop())
	worker.Stop()
	worker.Stop()
}

func TestSyncWorker_ContextCancelStopsTicks(t *testing.T) {
	trigger := &countingTrigger{}
	worker := NewSyncWorker(trigger, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	worker.Start(ctx, 5*time.Millisecond)

	require.Eventually(t, func() bool {
		return trigger.calls.Load() >= 1
	}, time.Second, time.Millisecond)

	cancel()
	time.Sleep(15 * time.Millisecond)
	settled := trigger.calls.Load()
	time.Sleep(25 * time.Millisecond)
	assert.Equal(t, settled, trigger.calls.Load())

	worker.Stop()
}

// ── Push listener ────────────────────────────────────────────────────────────

func TestPushListener_ForwardsNotifications(t *testing.T) {
	stream := make(chan []byte, 2)
	stream <- []byte(`{"type":5}`)
	stream <- []byte(`{"type":11}`)

	source := &stubSource{streams: []<-chan []byte{stream}}
	manager := newRecordingManager()

	listener := NewPushListener(source, manager, logger.Nop())
	listener.Start(context.Background())
	defer listener.Stop()

	assert.Equal(t, []byte(`{"type":5}`), <-manager.received)
	assert.Equal(t, []byte(`{"type":11}`), <-manager.received)
}

func TestPushListener_MalformedNotificationKeepsStreamAlive(t *testing.T) {
	stream := make(chan []byte, 2)
	stream <- []byte(`not json`)
	stream <- []byte(`{"type":5}`)

	source := &stubSource{streams: []<-chan []byte{stream}}
	manager := newRecordingManager()
	manager.err = errors.New("decode push envelope")

	listener := NewPushListener(source, manager, logger.Nop())
	listener.Start(context.Background())
	defer listener.Stop()

	// Both envelopes reach the manager even though handling errors out.
	assert.Equal(t, []byte(`not json`), <-manager.received)
	assert.Equal(t, []byte(`{"type":5}`), <-manager.received)
}

func TestPushListener_ReconnectsAfterStreamCloses(t *testing.T) {
	first := make(chan []byte, 1)
	first <- []byte(`{"type":5}`)
	close(first)
	second := make(chan []byte, 1)
	second <- []byte(`{"type":11}`)

	source := &stubSource{streams: []<-chan []byte{first, second}}
	manager := newRecordingManager()

	listener := NewPushListener(source, manager, logger.Nop()).(*pushListener)
	listener.reconnectDelay = time.Millisecond
	listener.Start(context.Background())
	defer listener.Stop()

	assert.Equal(t, []byte(`{"type":5}`), <-manager.received)
	assert.Equal(t, []byte(`{"type":11}`), <-manager.received)
}

func TestPushListener_RetriesAfterConnectFailure(t *testing.T) {
	stream := make(chan []byte, 1)
	stream <- []byte(`{"type":5}`)

	source := &stubSource{
		errs:    []error{errors.New("dial tcp: connection refused")},
		streams: []<-chan []byte{stream},
	}
	manager := newRecordingManager()

	listener := NewPushListener(source, manager, logger.Nop()).(*pushListener)
	listener.reconnectDelay = time.Millisecond
	listener.Start(context.Background())
	defer listener.Stop()

	assert.Equal(t, []byte(`{"type":5}`), <-manager.received)
}

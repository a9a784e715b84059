// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the vault synchronization engine: full and
// incremental sync orchestration, push-delta reconciliation, decrypted
// projection maintenance, unlock/lock session transitions, and
// CRUD-with-remote-sync for folders and sends.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/adapter"
	"github.com/MKhiriev/go-vault-sync/internal/crypto"
	"github.com/MKhiriev/go-vault-sync/internal/datastate"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/push"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/models"
)

// syncStaleness is the SyncIfNecessary throttle window.
const syncStaleness = 30 * time.Minute

type vaultEngine struct {
	vaultStore store.VaultStore
	settings   store.SettingsStore
	authStore  store.AuthStore
	crypto     crypto.Engine
	adapter    adapter.SyncAdapter
	push       push.Manager
	logout     LogoutManager
	log        *logger.Logger

	// now is swapped in tests to pin the clock.
	now func() time.Time

	ciphers     *datastate.Store[models.DecryptCipherListResult]
	folders     *datastate.Store[[]models.FolderView]
	collections *datastate.Store[[]models.CollectionView]
	sends       *datastate.Store[[]models.SendView]
	domains     *datastate.Store[*models.DomainsData]

	mu           sync.Mutex
	activeUserID string
	job          *syncJob
	projCancel   context.CancelFunc

	// subMu guards subCount, the number of live projection stream consumers.
	// Rebuilds are skipped while nobody is listening; subWake re-arms the
	// pipeline when the first consumer arrives.
	subMu    sync.Mutex
	subCount int
	subWake  chan struct{}
}

// NewVaultEngine wires the synchronization engine. Run must be called before
// projections and push reconciliation become live.
func NewVaultEngine(
	vaultStore store.VaultStore,
	settings store.SettingsStore,
	authStore store.AuthStore,
	cryptoEngine crypto.Engine,
	syncAdapter adapter.SyncAdapter,
	pushManager push.Manager,
	logout LogoutManager,
	log *logger.Logger,
) VaultRepository {
	return &vaultEngine{
		vaultStore:  vaultStore,
		settings:    settings,
		authStore:   authStore,
		crypto:      cryptoEngine,
		adapter:     syncAdapter,
		push:        pushManager,
		logout:      logout,
		log:         log,
		now:         time.Now,
		ciphers:     datastate.NewStore[models.DecryptCipherListResult](),
		folders:     datastate.NewStore[[]models.FolderView](),
		collections: datastate.NewStore[[]models.CollectionView](),
		sends:       datastate.NewStore[[]models.SendView](),
		domains:     datastate.NewStore[*models.DomainsData](),
		subWake:     make(chan struct{}, 1),
	}
}

func (e *vaultEngine) Run(ctx context.Context) {
	go e.watchUserState(ctx)
	go e.watchUnlockState(ctx)
	go e.runPushLoops(ctx)
}

// activeUser returns the engine's current active user id, empty when nobody
// is logged in.
func (e *vaultEngine) activeUser() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.activeUserID
}

// watchUserState follows the persisted auth state and re-targets the engine
// whenever the active user changes.
func (e *vaultEngine) watchUserState(ctx context.Context) {
	states := e.authStore.UserStateStream(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case state, ok := <-states:
			if !ok {
				return
			}
			e.switchUser(ctx, state.ActiveUserID)
		}
	}
}

// switchUser cancels the in-flight sync job and the projection pipeline of
// the previous user, resets every projection to Loading, and starts the
// pipeline for the new user. Resetting before the new pipeline runs is what
// prevents cross-user data leakage.
func (e *vaultEngine) switchUser(ctx context.Context, userID string) {
	e.mu.Lock()
	if e.activeUserID == userID {
		e.mu.Unlock()
		return
	}
	e.activeUserID = userID
	cancelProj := e.projCancel
	e.projCancel = nil

	var projCtx context.Context
	if userID != "" {
		projCtx, e.projCancel = context.WithCancel(ctx)
	}
	e.mu.Unlock()

	e.stopSyncJob()
	if cancelProj != nil {
		cancelProj()
	}
	e.resetProjections()

	if projCtx != nil {
		go e.runProjections(projCtx, userID)
	}

	e.log.Info().Str("func", "vaultEngine.switchUser").Str("userID", userID).Msg("active user changed")
}

// watchUnlockState resets the engine when the active user's vault locks while
// no unlock is in progress.
func (e *vaultEngine) watchUnlockState(ctx context.Context) {
	states := e.crypto.UnlockStateStream(ctx)
	wasUp := false
	for {
		select {
		case <-ctx.Done():
			return
		case snapshot, ok := <-states:
			if !ok {
				return
			}
			userID := e.activeUser()
			if userID == "" {
				wasUp = false
				continue
			}

			up := false
			for _, s := range snapshot {
				if s.UserID == userID && (s.Status == crypto.StatusUnlocked || s.Status == crypto.StatusUnlocking) {
					up = true
					break
				}
			}
			if wasUp && !up {
				e.stopSyncJob()
				e.resetProjections()
			}
			wasUp = up
		}
	}
}

// resetProjections pushes every projection back to Loading.
func (e *vaultEngine) resetProjections() {
	e.ciphers.Set(datastate.Loading[models.DecryptCipherListResult]())
	e.folders.Set(datastate.Loading[[]models.FolderView]())
	e.collections.Set(datastate.Loading[[]models.CollectionView]())
	e.sends.Set(datastate.Loading[[]models.SendView]())
	e.domains.Set(datastate.Loading[*models.DomainsData]())
}

// markProjectionsPending demotes every projection at the start of a sync run
// while keeping the previous snapshot visible.
func (e *vaultEngine) markProjectionsPending() {
	e.ciphers.UpdateToPendingOrLoading()
	e.folders.UpdateToPendingOrLoading()
	e.collections.UpdateToPendingOrLoading()
	e.sends.UpdateToPendingOrLoading()
	e.domains.UpdateToPendingOrLoading()
}

// setProjectionsFailure pushes every projection into an Error or NoNetwork
// state, classified by connectivity, retaining last-known data.
func (e *vaultEngine) setProjectionsFailure(err error) {
	noNetwork := adapter.IsNoConnectionError(err)
	failState(e.ciphers, err, noNetwork)
	failState(e.folders, err, noNetwork)
	failState(e.collections, err, noNetwork)
	failState(e.sends, err, noNetwork)
	failState(e.domains, err, noNetwork)
}

func failState[T any](s *datastate.Store[T], err error, noNetwork bool) {
	s.Update(func(cur datastate.DataState[T]) datastate.DataState[T] {
		if noNetwork {
			return datastate.NoNetwork(cur.DataPtr())
		}
		return datastate.Error(err, cur.DataPtr())
	})
}

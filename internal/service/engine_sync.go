// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/internal/store"
	"github.com/MKhiriev/go-vault-sync/models"
)

// syncJob is the single in-flight synchronization run. A new run replaces a
// completed job; a running job makes new Sync calls no-ops.
type syncJob struct {
	cancel context.CancelFunc
	done   chan struct{}
	result models.SyncVaultDataResult
}

func (j *syncJob) completed() bool {
	select {
	case <-j.done:
		return true
	default:
		return false
	}
}

func (e *vaultEngine) Sync(ctx context.Context, forced bool) {
	e.launchSync(ctx, forced)
}

func (e *vaultEngine) SyncIfNecessary(ctx context.Context) {
	userID := e.activeUser()
	if userID == "" {
		return
	}

	lastSync, err := e.settings.LastSyncTime(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Error().Err(err).Str("func", "vaultEngine.SyncIfNecessary").Msg("read last sync time")
		return
	}
	if lastSync != nil && e.now().Sub(*lastSync) < syncStaleness {
		return
	}
	e.launchSync(ctx, false)
}

// SyncForResult joins the running job when there is one, otherwise launches a
// new run, and always returns a terminal result. Cancellation of either the
// caller or the job surfaces as [ErrSyncCancelled], never as a propagated
// signal.
func (e *vaultEngine) SyncForResult(ctx context.Context) models.SyncVaultDataResult {
	job := e.launchSync(ctx, false)
	if job == nil {
		return models.SyncError(ErrNoActiveUser)
	}

	select {
	case <-ctx.Done():
		return models.SyncError(ErrSyncCancelled)
	case <-job.done:
	}

	result := job.result
	if result.Err != nil && errors.Is(result.Err, context.Canceled) {
		return models.SyncError(ErrSyncCancelled)
	}
	return result
}

// launchSync returns the running or newly started job, nil when there is no
// active user. When a job is already in flight the call is a silent no-op
// that hands back the existing job.
func (e *vaultEngine) launchSync(ctx context.Context, forced bool) *syncJob {
	userID := e.activeUser()
	if userID == "" {
		return nil
	}

	e.mu.Lock()
	if e.job != nil && !e.job.completed() {
		job := e.job
		e.mu.Unlock()
		return job
	}

	// The job outlives the caller's request context but keeps its values.
	jobCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	job := &syncJob{cancel: cancel, done: make(chan struct{})}
	e.job = job
	e.mu.Unlock()

	e.markProjectionsPending()

	go func() {
		defer cancel()
		job.result = e.syncInternal(jobCtx, userID, forced)
		close(job.done)
	}()

	return job
}

// stopSyncJob cancels the in-flight run, if any. Projections are reset by the
// caller; the abandoned job must not leave them partially updated.
func (e *vaultEngine) stopSyncJob() {
	e.mu.Lock()
	job := e.job
	e.mu.Unlock()

	if job != nil && !job.completed() {
		job.cancel()
	}
}

// syncInternal is the sync run body.
//
// Fast path (skipped when forced): when the server's account revision date
// predates the local last-sync time nothing changed remotely, so the run only
// refreshes the last-sync time and asks the store to re-derive its rows.
//
// Full path: fetch the complete payload, verify the security stamp, merge the
// profile into persisted auth state, replace the local vault wholesale, and
// stamp the sync time.
func (e *vaultEngine) syncInternal(ctx context.Context, userID string, forced bool) models.SyncVaultDataResult {
	log := logger.FromContext(ctx)

	if !forced {
		if result, done := e.trySkipSync(ctx, userID); done {
			return result
		}
	}

	response, err := e.adapter.FullSync(ctx)
	if err != nil {
		log.Error().Err(err).Str("func", "vaultEngine.syncInternal").Msg("full sync fetch failed")
		e.setProjectionsFailure(err)
		return models.SyncError(err)
	}

	state, err := e.authStore.UserState(ctx)
	if err != nil {
		e.setProjectionsFailure(err)
		return models.SyncError(err)
	}
	account, ok := state.Accounts[userID]
	if !ok {
		e.setProjectionsFailure(ErrNoActiveUser)
		return models.SyncError(ErrNoActiveUser)
	}
	account.UserID = userID

	// A changed security stamp means the session was invalidated server-side.
	// Deliberate termination: the error result carries no fault.
	if account.SecurityStamp != "" && account.SecurityStamp != response.Profile.SecurityStamp {
		log.Warn().Str("func", "vaultEngine.syncInternal").Str("userID", userID).Msg("security stamp mismatch, logging out")
		if logoutErr := e.logout.Logout(ctx, userID, models.LogoutReasonSecurityStamp); logoutErr != nil {
			log.Error().Err(logoutErr).Msg("security stamp logout failed")
		}
		return models.SyncError(nil)
	}

	if err = e.mergeProfile(ctx, state, account, response.Profile); err != nil {
		e.setProjectionsFailure(err)
		return models.SyncError(err)
	}

	err = e.vaultStore.ReplaceVault(ctx, userID, store.VaultRecords{
		Ciphers:     response.Ciphers,
		Folders:     response.Folders,
		Collections: response.Collections,
		Sends:       response.Sends,
		Domains:     response.Domains,
		Policies:    response.Policies,
	})
	if err != nil {
		e.setProjectionsFailure(err)
		return models.SyncError(fmt.Errorf("replace local vault: %w", err))
	}

	if err = e.settings.SetLastSyncTime(ctx, userID, e.now()); err != nil {
		e.setProjectionsFailure(err)
		return models.SyncError(fmt.Errorf("store last sync time: %w", err))
	}

	return models.SyncSuccess(len(response.Ciphers) > 0)
}

// trySkipSync implements the revision-date fast path. done reports whether
// the run finished here; a fast-path probe failure falls through to the full
// fetch instead of failing the run.
func (e *vaultEngine) trySkipSync(ctx context.Context, userID string) (models.SyncVaultDataResult, bool) {
	lastSync, err := e.settings.LastSyncTime(ctx, userID)
	if err != nil || lastSync == nil {
		return models.SyncVaultDataResult{}, false
	}

	revision, err := e.adapter.AccountRevisionDate(ctx)
	if err != nil || !revision.Before(*lastSync) {
		return models.SyncVaultDataResult{}, false
	}

	if err = e.settings.SetLastSyncTime(ctx, userID, e.now()); err != nil {
		return models.SyncError(fmt.Errorf("store last sync time: %w", err)), true
	}
	// Rows are unchanged; the resync signal re-derives projections after a
	// schema version bump.
	e.vaultStore.NotifyChanged(userID)

	count, err := e.vaultStore.CipherCount(ctx, userID)
	if err != nil {
		return models.SyncError(err), true
	}
	return models.SyncSuccess(count > 0), true
}

// mergeProfile folds the fetched profile into persisted auth state: account
// fields, user key material, organization memberships, and the organization
// crypto context.
func (e *vaultEngine) mergeProfile(ctx context.Context, state models.UserState, account models.Account, profile models.Profile) error {
	account.Email = profile.Email
	account.Name = profile.Name
	account.SecurityStamp = profile.SecurityStamp
	account.ShouldUseKeyConnector = profile.ShouldUseKeyConnector
	state.Accounts[account.UserID] = account
	if err := e.authStore.SetUserState(ctx, state); err != nil {
		return fmt.Errorf("persist merged account: %w", err)
	}

	keys, err := e.authStore.UserKeys(ctx, account.UserID)
	if err != nil && !errors.Is(err, store.ErrAccountNotFound) {
		return fmt.Errorf("read user keys: %w", err)
	}
	keys.UserID = account.UserID
	keys.WrappedUserKey = profile.Key
	keys.PrivateKey = profile.PrivateKey
	if err = e.authStore.SaveUserKeys(ctx, keys); err != nil {
		return fmt.Errorf("persist user keys: %w", err)
	}

	if err = e.authStore.SaveOrganizations(ctx, account.UserID, profile.Organizations); err != nil {
		return fmt.Errorf("persist organizations: %w", err)
	}

	orgKeys := make(map[string]string, len(profile.Organizations))
	for _, org := range profile.Organizations {
		if org.Key != nil {
			orgKeys[org.ID] = *org.Key
		}
	}
	if len(orgKeys) > 0 && e.crypto.IsUnlocked(account.UserID) {
		if err = e.crypto.InitializeOrgCrypto(ctx, account.UserID, orgKeys); err != nil {
			return fmt.Errorf("initialize organization crypto: %w", err)
		}
	}
	return nil
}

// HandleDatabaseSchemeChange forces a full fetch so re-derived rows are
// rebuilt from fresh server state.
func (e *vaultEngine) HandleDatabaseSchemeChange(ctx context.Context) {
	e.Sync(ctx, true)
}

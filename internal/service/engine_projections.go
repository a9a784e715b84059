// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-vault-sync/internal/datastate"
	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
)

// authCodeTick is how often the live one-time-password projection recomputes.
const authCodeTick = time.Second

// runProjections rebuilds every decrypted projection on each change signal
// from the local store, but only while at least one stream consumer is
// subscribed: with nobody listening a signal just marks the pipeline dirty,
// and the rebuild runs when the next consumer arrives. Signals are processed
// one at a time: a rebuild fully resolves before the next signal is taken up,
// so decrypt attempts for the same projection never race.
func (e *vaultEngine) runProjections(ctx context.Context, userID string) {
	changes := e.vaultStore.Observe(ctx, userID)
	dirty := false
	for {
		if dirty && e.hasSubscribers() {
			e.rebuildProjections(ctx, userID)
			dirty = false
		}
		select {
		case <-ctx.Done():
			return
		case _, ok := <-changes:
			if !ok {
				return
			}
			dirty = true
		case <-e.subWake:
		}
	}
}

// addSubscriber registers a projection stream consumer for the lifetime of
// its context and wakes the pipeline.
func (e *vaultEngine) addSubscriber(ctx context.Context) {
	e.subMu.Lock()
	e.subCount++
	e.subMu.Unlock()

	select {
	case e.subWake <- struct{}{}:
	default:
	}

	go func() {
		<-ctx.Done()
		e.subMu.Lock()
		e.subCount--
		e.subMu.Unlock()
	}()
}

func (e *vaultEngine) hasSubscribers() bool {
	e.subMu.Lock()
	defer e.subMu.Unlock()
	return e.subCount > 0
}

// rebuildProjections reads the user's encrypted records, waits for the vault
// to unlock, decrypts every kind, and publishes the outcome. While
// last-sync-time is still unset the projections stay Loading: an empty store
// before the first sync means "never synced", not "empty vault".
func (e *vaultEngine) rebuildProjections(ctx context.Context, userID string) {
	log := logger.FromContext(ctx)

	e.markProjectionsPending()

	if err := e.crypto.WaitUntilUnlocked(ctx, userID); err != nil {
		return
	}

	lastSync, err := e.settings.LastSyncTime(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("func", "vaultEngine.rebuildProjections").Msg("read last sync time")
		return
	}
	if lastSync == nil {
		e.resetProjections()
		return
	}

	e.rebuildCiphers(ctx, userID)
	e.rebuildFolders(ctx, userID)
	e.rebuildCollections(ctx, userID)
	e.rebuildSends(ctx, userID)
	e.rebuildDomains(ctx, userID)
}

func (e *vaultEngine) rebuildCiphers(ctx context.Context, userID string) {
	records, err := e.vaultStore.GetCiphers(ctx, userID)
	if err != nil {
		failState(e.ciphers, err, false)
		return
	}
	result, err := e.crypto.DecryptCipherList(ctx, userID, records)
	if err != nil {
		failState(e.ciphers, err, false)
		return
	}
	e.ciphers.Set(datastate.Loaded(result))
}

func (e *vaultEngine) rebuildFolders(ctx context.Context, userID string) {
	records, err := e.vaultStore.GetFolders(ctx, userID)
	if err != nil {
		failState(e.folders, err, false)
		return
	}
	views, err := e.crypto.DecryptFolderList(ctx, userID, records)
	if err != nil {
		failState(e.folders, err, false)
		return
	}
	e.folders.Set(datastate.Loaded(views))
}

func (e *vaultEngine) rebuildCollections(ctx context.Context, userID string) {
	records, err := e.vaultStore.GetCollections(ctx, userID)
	if err != nil {
		failState(e.collections, err, false)
		return
	}
	views, err := e.crypto.DecryptCollectionList(ctx, userID, records)
	if err != nil {
		failState(e.collections, err, false)
		return
	}
	e.collections.Set(datastate.Loaded(views))
}

func (e *vaultEngine) rebuildSends(ctx context.Context, userID string) {
	records, err := e.vaultStore.GetSends(ctx, userID)
	if err != nil {
		failState(e.sends, err, false)
		return
	}
	views, err := e.crypto.DecryptSendList(ctx, userID, records)
	if err != nil {
		failState(e.sends, err, false)
		return
	}
	e.sends.Set(datastate.Loaded(views))
}

// rebuildDomains needs no decrypt step: equivalent-domain rules are stored in
// plaintext.
func (e *vaultEngine) rebuildDomains(ctx context.Context, userID string) {
	domains, err := e.vaultStore.GetDomains(ctx, userID)
	if err != nil {
		failState(e.domains, err, false)
		return
	}
	e.domains.Set(datastate.Loaded(domains))
}

func (e *vaultEngine) CiphersStream(ctx context.Context) <-chan datastate.DataState[models.DecryptCipherListResult] {
	e.addSubscriber(ctx)
	return e.ciphers.Subscribe(ctx)
}

func (e *vaultEngine) FoldersStream(ctx context.Context) <-chan datastate.DataState[[]models.FolderView] {
	e.addSubscriber(ctx)
	return e.folders.Subscribe(ctx)
}

func (e *vaultEngine) CollectionsStream(ctx context.Context) <-chan datastate.DataState[[]models.CollectionView] {
	e.addSubscriber(ctx)
	return e.collections.Subscribe(ctx)
}

func (e *vaultEngine) SendsStream(ctx context.Context) <-chan datastate.DataState[[]models.SendView] {
	e.addSubscriber(ctx)
	return e.sends.Subscribe(ctx)
}

func (e *vaultEngine) DomainsStream(ctx context.Context) <-chan datastate.DataState[*models.DomainsData] {
	e.addSubscriber(ctx)
	return e.domains.Subscribe(ctx)
}

// VaultDataStream recombines the four list projections on every emission of
// any of them. The combined value only resolves once all inputs carry data.
func (e *vaultEngine) VaultDataStream(ctx context.Context) <-chan datastate.DataState[models.VaultData] {
	out := make(chan datastate.DataState[models.VaultData], 1)

	e.addSubscriber(ctx)
	ciphers := e.ciphers.Subscribe(ctx)
	folders := e.folders.Subscribe(ctx)
	collections := e.collections.Subscribe(ctx)
	sends := e.sends.Subscribe(ctx)

	go func() {
		defer close(out)
		var (
			c datastate.DataState[models.DecryptCipherListResult]
			f datastate.DataState[[]models.FolderView]
			l datastate.DataState[[]models.CollectionView]
			s datastate.DataState[[]models.SendView]
		)
		for {
			select {
			case <-ctx.Done():
				return
			case c = <-ciphers:
			case f = <-folders:
			case l = <-collections:
			case s = <-sends:
			}
			combined := datastate.Combine4(c, f, l, s,
				func(cr models.DecryptCipherListResult, fv []models.FolderView, cv []models.CollectionView, sv []models.SendView) models.VaultData {
					return models.VaultData{
						DecryptCipherListResult: cr,
						FolderViewList:          fv,
						CollectionViewList:      cv,
						SendViewList:            sv,
					}
				})
			pushLatest(out, combined)
		}
	}()

	return out
}

// CipherStream implements the point lookup: Loaded(nil) means not found.
func (e *vaultEngine) CipherStream(ctx context.Context, cipherID string) <-chan datastate.DataState[*models.CipherView] {
	e.addSubscriber(ctx)
	return mapStream(ctx, e.ciphers, func(result models.DecryptCipherListResult) *models.CipherView {
		for i := range result.Successes {
			if result.Successes[i].ID == cipherID {
				return &result.Successes[i]
			}
		}
		return nil
	})
}

func (e *vaultEngine) FolderStream(ctx context.Context, folderID string) <-chan datastate.DataState[*models.FolderView] {
	e.addSubscriber(ctx)
	return mapStream(ctx, e.folders, func(views []models.FolderView) *models.FolderView {
		for i := range views {
			if views[i].ID == folderID {
				return &views[i]
			}
		}
		return nil
	})
}

func (e *vaultEngine) SendStream(ctx context.Context, sendID string) <-chan datastate.DataState[*models.SendView] {
	e.addSubscriber(ctx)
	return mapStream(ctx, e.sends, func(views []models.SendView) *models.SendView {
		for i := range views {
			if views[i].ID == sendID {
				return &views[i]
			}
		}
		return nil
	})
}

// AuthCodesStream projects live one-time-password codes over the cipher
// projection, recomputing on every cipher change and on a one-second tick so
// codes roll over at period boundaries.
func (e *vaultEngine) AuthCodesStream(ctx context.Context) <-chan datastate.DataState[[]models.AuthCodeView] {
	out := make(chan datastate.DataState[[]models.AuthCodeView], 1)
	e.addSubscriber(ctx)
	ciphers := e.ciphers.Subscribe(ctx)

	go func() {
		defer close(out)
		ticker := time.NewTicker(authCodeTick)
		defer ticker.Stop()

		var current datastate.DataState[models.DecryptCipherListResult]
		for {
			select {
			case <-ctx.Done():
				return
			case current = <-ciphers:
			case <-ticker.C:
			}
			pushLatest(out, datastate.Map(current, func(result models.DecryptCipherListResult) []models.AuthCodeView {
				return e.computeAuthCodes(result.Successes)
			}))
		}
	}()

	return out
}

// computeAuthCodes returns codes for login ciphers that carry a totp secret
// and are not trashed. Ciphers whose secret fails to parse are skipped.
func (e *vaultEngine) computeAuthCodes(views []models.CipherView) []models.AuthCodeView {
	now := e.now()
	codes := make([]models.AuthCodeView, 0, len(views))
	for _, view := range views {
		if view.Type != models.CipherTypeLogin || view.TOTP == "" || view.DeletedDate != nil {
			continue
		}
		code, period, err := e.crypto.GenerateTOTP(view.TOTP, now)
		if err != nil {
			continue
		}
		codes = append(codes, models.AuthCodeView{
			CipherID:      view.ID,
			Name:          view.Name,
			Username:      view.Username,
			Code:          code,
			PeriodSeconds: period,
		})
	}
	return codes
}

// mapStream derives a projection stream by applying fn to every emission of
// the source store.
func mapStream[T, R any](ctx context.Context, src *datastate.Store[T], fn func(T) R) <-chan datastate.DataState[R] {
	out := make(chan datastate.DataState[R], 1)
	in := src.Subscribe(ctx)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case state, ok := <-in:
				if !ok {
					return
				}
				pushLatest(out, datastate.Map(state, fn))
			}
		}
	}()

	return out
}

// pushLatest delivers latest-wins on a buffered-1 channel.
func pushLatest[T any](ch chan datastate.DataState[T], state datastate.DataState[T]) {
	for {
		select {
		case ch <- state:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
)

var (
	// ErrVaultLocked is returned by operations that need key material while
	// the user's session is locked.
	ErrVaultLocked = errors.New("vault is locked")
	// ErrUnknownOrganization is returned when an organization-owned record
	// references an organization the session has no key for.
	ErrUnknownOrganization = errors.New("unknown organization key")
)

// session is one user's in-memory crypto state.
type session struct {
	status  UnlockStatus
	userKey []byte
	orgKeys map[string][]byte
	params  UnlockParams
}

type cryptoEngine struct {
	mu       sync.RWMutex
	sessions map[string]*session
	subs     map[int]chan []VaultUnlockData
	nextSub  int

	logger *logger.Logger
}

// NewEngine constructs the in-memory crypto [Engine]. All sessions start
// locked.
func NewEngine(log *logger.Logger) Engine {
	return &cryptoEngine{
		sessions: make(map[string]*session),
		subs:     make(map[int]chan []VaultUnlockData),
		logger:   log,
	}
}

func (e *cryptoEngine) Unlock(ctx context.Context, userID string, params UnlockParams, method UnlockMethod) error {
	e.setStatus(userID, StatusUnlocking, params)

	userKey, err := recoverUserKey(params, method)
	if err != nil {
		e.setStatus(userID, StatusUnlockError, params)
		return fmt.Errorf("unlock user %s: %w", userID, err)
	}

	orgKeys, err := unwrapOrgKeys(params.OrganizationKeys, userKey)
	if err != nil {
		e.setStatus(userID, StatusUnlockError, params)
		return fmt.Errorf("unwrap organization keys for user %s: %w", userID, err)
	}

	e.mu.Lock()
	e.sessions[userID] = &session{
		status:  StatusUnlocked,
		userKey: userKey,
		orgKeys: orgKeys,
		params:  params,
	}
	e.mu.Unlock()
	e.notify()

	e.logger.Debug().Str("user_id", userID).Msg("vault unlocked")
	return nil
}

func (e *cryptoEngine) InitializeOrgCrypto(ctx context.Context, userID string, organizationKeys map[string]string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	sess, ok := e.sessions[userID]
	if !ok || sess.status != StatusUnlocked {
		return ErrVaultLocked
	}

	orgKeys, err := unwrapOrgKeys(organizationKeys, sess.userKey)
	if err != nil {
		return fmt.Errorf("unwrap organization keys for user %s: %w", userID, err)
	}
	for id, key := range orgKeys {
		sess.orgKeys[id] = key
	}
	return nil
}

func (e *cryptoEngine) Lock(userID string) {
	e.mu.Lock()
	if sess, ok := e.sessions[userID]; ok {
		zero(sess.userKey)
		for _, key := range sess.orgKeys {
			zero(key)
		}
	}
	delete(e.sessions, userID)
	e.mu.Unlock()
	e.notify()

	e.logger.Debug().Str("user_id", userID).Msg("vault locked")
}

func (e *cryptoEngine) LockAll() {
	e.mu.Lock()
	for id, sess := range e.sessions {
		zero(sess.userKey)
		for _, key := range sess.orgKeys {
			zero(key)
		}
		delete(e.sessions, id)
	}
	e.mu.Unlock()
	e.notify()
}

func (e *cryptoEngine) IsUnlocked(userID string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	sess, ok := e.sessions[userID]
	return ok && sess.status == StatusUnlocked
}

func (e *cryptoEngine) IsUnlockingOrUnlocked(userID string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	sess, ok := e.sessions[userID]
	return ok && (sess.status == StatusUnlocked || sess.status == StatusUnlocking)
}

func (e *cryptoEngine) UnlockStates() []VaultUnlockData {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.statesLocked()
}

func (e *cryptoEngine) UnlockStateStream(ctx context.Context) <-chan []VaultUnlockData {
	ch := make(chan []VaultUnlockData, 1)

	e.mu.Lock()
	id := e.nextSub
	e.nextSub++
	e.subs[id] = ch
	ch <- e.statesLocked()
	e.mu.Unlock()

	go func() {
		<-ctx.Done()
		e.mu.Lock()
		delete(e.subs, id)
		e.mu.Unlock()
	}()

	return ch
}

func (e *cryptoEngine) WaitUntilUnlocked(ctx context.Context, userID string) error {
	if e.IsUnlocked(userID) {
		return nil
	}

	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch := e.UnlockStateStream(subCtx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case states := <-ch:
			for _, st := range states {
				if st.UserID == userID && st.Status == StatusUnlocked {
					return nil
				}
			}
		}
	}
}

func (e *cryptoEngine) DerivePinProtectedUserKey(ctx context.Context, userID string, encryptedPin string) (string, error) {
	sess, err := e.unlockedSession(userID)
	if err != nil {
		return "", err
	}

	pin, err := decryptString(encryptedPin, sess.userKey)
	if err != nil {
		return "", fmt.Errorf("decrypt stored pin: %w", err)
	}

	pinKey := derivePinKey(pin, sess.params.Email, sess.params.KDF)
	return sealWithKey(sess.userKey, pinKey)
}

func (e *cryptoEngine) DecryptCipherList(ctx context.Context, userID string, ciphers []models.Cipher) (models.DecryptCipherListResult, error) {
	sess, err := e.unlockedSession(userID)
	if err != nil {
		return models.DecryptCipherListResult{}, err
	}

	result := models.DecryptCipherListResult{}
	for _, c := range ciphers {
		view, err := e.decryptCipher(sess, c)
		if err != nil {
			e.logger.Warn().Err(err).Str("cipher_id", c.ID).Msg("cipher decrypt failed")
			result.FailureIDs = append(result.FailureIDs, c.ID)
			continue
		}
		result.Successes = append(result.Successes, view)
	}

	sort.SliceStable(result.Successes, func(i, j int) bool {
		return strings.ToLower(result.Successes[i].Name) < strings.ToLower(result.Successes[j].Name)
	})
	return result, nil
}

func (e *cryptoEngine) DecryptFolderList(ctx context.Context, userID string, folders []models.Folder) ([]models.FolderView, error) {
	views := make([]models.FolderView, 0, len(folders))
	for _, f := range folders {
		view, err := e.DecryptFolder(ctx, userID, f)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	sort.SliceStable(views, func(i, j int) bool {
		return strings.ToLower(views[i].Name) < strings.ToLower(views[j].Name)
	})
	return views, nil
}

func (e *cryptoEngine) DecryptFolder(ctx context.Context, userID string, folder models.Folder) (models.FolderView, error) {
	sess, err := e.unlockedSession(userID)
	if err != nil {
		return models.FolderView{}, err
	}

	name, err := decryptString(folder.Name, sess.userKey)
	if err != nil {
		return models.FolderView{}, fmt.Errorf("decrypt folder %s: %w", folder.ID, err)
	}

	return models.FolderView{ID: folder.ID, Name: name, RevisionDate: folder.RevisionDate}, nil
}

func (e *cryptoEngine) DecryptCollectionList(ctx context.Context, userID string, collections []models.Collection) ([]models.CollectionView, error) {
	sess, err := e.unlockedSession(userID)
	if err != nil {
		return nil, err
	}

	views := make([]models.CollectionView, 0, len(collections))
	for _, col := range collections {
		orgKey, ok := sess.orgKeys[col.OrganizationID]
		if !ok {
			return nil, fmt.Errorf("collection %s: %w", col.ID, ErrUnknownOrganization)
		}
		name, err := decryptString(col.Name, orgKey)
		if err != nil {
			return nil, fmt.Errorf("decrypt collection %s: %w", col.ID, err)
		}
		views = append(views, models.CollectionView{
			ID:             col.ID,
			OrganizationID: col.OrganizationID,
			Name:           name,
			ReadOnly:       col.ReadOnly,
			Manage:         col.Manage,
		})
	}

	sort.SliceStable(views, func(i, j int) bool {
		return strings.ToLower(views[i].Name) < strings.ToLower(views[j].Name)
	})
	return views, nil
}

func (e *cryptoEngine) DecryptSendList(ctx context.Context, userID string, sends []models.Send) ([]models.SendView, error) {
	views := make([]models.SendView, 0, len(sends))
	for _, s := range sends {
		view, err := e.DecryptSend(ctx, userID, s)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	sort.SliceStable(views, func(i, j int) bool {
		return strings.ToLower(views[i].Name) < strings.ToLower(views[j].Name)
	})
	return views, nil
}

func (e *cryptoEngine) DecryptSend(ctx context.Context, userID string, send models.Send) (models.SendView, error) {
	sess, err := e.unlockedSession(userID)
	if err != nil {
		return models.SendView{}, err
	}

	sendKey, err := openWithKey(send.Key, sess.userKey)
	if err != nil {
		return models.SendView{}, fmt.Errorf("unwrap send key %s: %w", send.ID, err)
	}

	name, err := decryptString(send.Name, sendKey)
	if err != nil {
		return models.SendView{}, fmt.Errorf("decrypt send %s: %w", send.ID, err)
	}
	notes, err := decryptOptional(send.Notes, sendKey)
	if err != nil {
		return models.SendView{}, fmt.Errorf("decrypt send %s: %w", send.ID, err)
	}

	view := models.SendView{
		ID:             send.ID,
		AccessID:       send.AccessID,
		Type:           send.Type,
		Name:           name,
		Notes:          notes,
		HasPassword:    send.Password != nil,
		MaxAccessCount: send.MaxAccessCount,
		AccessCount:    send.AccessCount,
		Disabled:       send.Disabled,
		HideEmail:      send.HideEmail,
		RevisionDate:   send.RevisionDate,
		DeletionDate:   send.DeletionDate,
		ExpirationDate: send.ExpirationDate,
	}

	if send.Text != nil {
		text, err := decryptString(send.Text.Text, sendKey)
		if err != nil {
			return models.SendView{}, fmt.Errorf("decrypt send text %s: %w", send.ID, err)
		}
		view.Text = text
	}
	if send.File != nil {
		fileName, err := decryptString(send.File.FileName, sendKey)
		if err != nil {
			return models.SendView{}, fmt.Errorf("decrypt send file name %s: %w", send.ID, err)
		}
		view.FileName = fileName
	}

	return view, nil
}

func (e *cryptoEngine) EncryptFolder(ctx context.Context, userID string, view models.FolderView) (models.Folder, error) {
	sess, err := e.unlockedSession(userID)
	if err != nil {
		return models.Folder{}, err
	}

	name, err := encryptString(view.Name, sess.userKey)
	if err != nil {
		return models.Folder{}, fmt.Errorf("encrypt folder: %w", err)
	}

	return models.Folder{ID: view.ID, Name: name, RevisionDate: view.RevisionDate}, nil
}

func (e *cryptoEngine) EncryptSend(ctx context.Context, userID string, view models.SendView) (models.Send, error) {
	sess, err := e.unlockedSession(userID)
	if err != nil {
		return models.Send{}, err
	}

	// Every encrypt produces a fresh send key; the server's canonical copy
	// is re-fetched into the local store on success, so key rotation on
	// update is safe.
	sendKey, err := generateKey()
	if err != nil {
		return models.Send{}, fmt.Errorf("generate send key: %w", err)
	}

	wrappedKey, err := sealWithKey(sendKey, sess.userKey)
	if err != nil {
		return models.Send{}, fmt.Errorf("wrap send key: %w", err)
	}
	name, err := encryptString(view.Name, sendKey)
	if err != nil {
		return models.Send{}, fmt.Errorf("encrypt send: %w", err)
	}
	notes, err := encryptOptional(view.Notes, sendKey)
	if err != nil {
		return models.Send{}, fmt.Errorf("encrypt send: %w", err)
	}

	send := models.Send{
		ID:             view.ID,
		AccessID:       view.AccessID,
		Type:           view.Type,
		Name:           name,
		Notes:          notes,
		Key:            wrappedKey,
		MaxAccessCount: view.MaxAccessCount,
		Disabled:       view.Disabled,
		HideEmail:      view.HideEmail,
		RevisionDate:   view.RevisionDate,
		DeletionDate:   view.DeletionDate,
		ExpirationDate: view.ExpirationDate,
	}

	switch view.Type {
	case models.SendTypeText:
		text, err := encryptString(view.Text, sendKey)
		if err != nil {
			return models.Send{}, fmt.Errorf("encrypt send text: %w", err)
		}
		send.Text = &models.SendText{Text: text}
	case models.SendTypeFile:
		fileName, err := encryptString(view.FileName, sendKey)
		if err != nil {
			return models.Send{}, fmt.Errorf("encrypt send file name: %w", err)
		}
		send.File = &models.SendFile{FileName: fileName}
	}

	return send, nil
}

func (e *cryptoEngine) EncryptFile(ctx context.Context, userID string, sourcePath, destinationPath string) (int64, error) {
	sess, err := e.unlockedSession(userID)
	if err != nil {
		return 0, err
	}

	plain, err := os.ReadFile(sourcePath)
	if err != nil {
		return 0, fmt.Errorf("read source file: %w", err)
	}

	sealed, err := sealWithKey(plain, sess.userKey)
	if err != nil {
		return 0, fmt.Errorf("encrypt file: %w", err)
	}

	if err := os.WriteFile(destinationPath, []byte(sealed), 0o600); err != nil {
		return 0, fmt.Errorf("write encrypted file: %w", err)
	}
	return int64(len(sealed)), nil
}

// decryptCipher resolves the item key (org key for organization records,
// per-item key when the cipher carries one, user key otherwise) and decrypts
// every encrypted field.
func (e *cryptoEngine) decryptCipher(sess *session, c models.Cipher) (models.CipherView, error) {
	itemKey := sess.userKey
	if c.OrganizationID != nil {
		orgKey, ok := sess.orgKeys[*c.OrganizationID]
		if !ok {
			return models.CipherView{}, fmt.Errorf("cipher %s: %w", c.ID, ErrUnknownOrganization)
		}
		itemKey = orgKey
	}
	if c.Key != nil {
		unwrapped, err := openWithKey(*c.Key, itemKey)
		if err != nil {
			return models.CipherView{}, fmt.Errorf("unwrap cipher key %s: %w", c.ID, err)
		}
		itemKey = unwrapped
	}

	name, err := decryptString(c.Name, itemKey)
	if err != nil {
		return models.CipherView{}, fmt.Errorf("decrypt cipher %s: %w", c.ID, err)
	}
	notes, err := decryptOptional(c.Notes, itemKey)
	if err != nil {
		return models.CipherView{}, fmt.Errorf("decrypt cipher %s: %w", c.ID, err)
	}

	view := models.CipherView{
		ID:             c.ID,
		OrganizationID: c.OrganizationID,
		FolderID:       c.FolderID,
		CollectionIDs:  c.CollectionIDs,
		Type:           c.Type,
		Name:           name,
		Notes:          notes,
		Favorite:       c.Favorite,
		RevisionDate:   c.RevisionDate,
		DeletedDate:    c.DeletedDate,
	}

	if c.Login != nil {
		if view.Username, err = decryptOptional(c.Login.Username, itemKey); err != nil {
			return models.CipherView{}, fmt.Errorf("decrypt cipher %s: %w", c.ID, err)
		}
		if view.Password, err = decryptOptional(c.Login.Password, itemKey); err != nil {
			return models.CipherView{}, fmt.Errorf("decrypt cipher %s: %w", c.ID, err)
		}
		if view.TOTP, err = decryptOptional(c.Login.TOTP, itemKey); err != nil {
			return models.CipherView{}, fmt.Errorf("decrypt cipher %s: %w", c.ID, err)
		}
		for _, uri := range c.Login.URIs {
			plain, err := decryptString(uri.URI, itemKey)
			if err != nil {
				return models.CipherView{}, fmt.Errorf("decrypt cipher %s: %w", c.ID, err)
			}
			view.URIs = append(view.URIs, plain)
		}
	}

	return view, nil
}

// unlockedSession hands the caller its own copy of the key material. Lock
// zeroes the stored bytes, which must not affect a decrypt already in flight.
func (e *cryptoEngine) unlockedSession(userID string) (*session, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	sess, ok := e.sessions[userID]
	if !ok || sess.status != StatusUnlocked {
		return nil, ErrVaultLocked
	}

	snap := &session{
		status:  sess.status,
		userKey: append([]byte(nil), sess.userKey...),
		orgKeys: make(map[string][]byte, len(sess.orgKeys)),
		params:  sess.params,
	}
	for id, key := range sess.orgKeys {
		snap.orgKeys[id] = append([]byte(nil), key...)
	}
	return snap, nil
}

func (e *cryptoEngine) setStatus(userID string, status UnlockStatus, params UnlockParams) {
	e.mu.Lock()
	sess, ok := e.sessions[userID]
	if !ok {
		sess = &session{}
		e.sessions[userID] = sess
	}
	sess.status = status
	sess.params = params
	e.mu.Unlock()
	e.notify()
}

func (e *cryptoEngine) statesLocked() []VaultUnlockData {
	states := make([]VaultUnlockData, 0, len(e.sessions))
	for id, sess := range e.sessions {
		states = append(states, VaultUnlockData{UserID: id, Status: sess.status})
	}
	sort.Slice(states, func(i, j int) bool { return states[i].UserID < states[j].UserID })
	return states
}

// notify publishes the state snapshot to every subscriber, latest-wins.
func (e *cryptoEngine) notify() {
	e.mu.RLock()
	states := e.statesLocked()
	for _, ch := range e.subs {
		for {
			select {
			case ch <- states:
			default:
				// Buffer occupied: evict the stale snapshot and send again.
				// The loop only exits once the latest snapshot is delivered,
				// so a waiter can never miss the terminal transition.
				select {
				case <-ch:
				default:
				}
				continue
			}
			break
		}
	}
	e.mu.RUnlock()
}

func unwrapOrgKeys(wrapped map[string]string, userKey []byte) (map[string][]byte, error) {
	orgKeys := make(map[string][]byte, len(wrapped))
	for id, blob := range wrapped {
		key, err := openWithKey(blob, userKey)
		if err != nil {
			return nil, fmt.Errorf("organization %s: %w", id, err)
		}
		orgKeys[id] = key
	}
	return orgKeys, nil
}

func recoverUserKey(params UnlockParams, method UnlockMethod) ([]byte, error) {
	switch m := method.(type) {
	case PasswordUnlock:
		masterKey := deriveMasterKey(m.Password, params.Email, params.KDF)
		userKey, err := openWithKey(m.UserKey, masterKey)
		if err != nil {
			return nil, fmt.Errorf("decrypt user key with master password: %w", err)
		}
		return userKey, nil
	case PinUnlock:
		pinKey := derivePinKey(m.Pin, params.Email, params.KDF)
		userKey, err := openWithKey(m.PinProtectedUserKey, pinKey)
		if err != nil {
			return nil, fmt.Errorf("decrypt user key with pin: %w", err)
		}
		return userKey, nil
	case DecryptedKeyUnlock:
		userKey, err := base64.StdEncoding.DecodeString(m.DecryptedUserKey)
		if err != nil {
			return nil, fmt.Errorf("decode decrypted user key: %w", err)
		}
		if len(userKey) != keyLen {
			return nil, fmt.Errorf("invalid user key length: %d", len(userKey))
		}
		return userKey, nil
	default:
		return nil, fmt.Errorf("unsupported unlock method %T", method)
	}
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

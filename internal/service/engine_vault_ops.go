// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/MKhiriev/go-vault-sync/internal/logger"
	"github.com/MKhiriev/go-vault-sync/models"
)

func (e *vaultEngine) GenerateTOTP(ctx context.Context, cipherID string) models.GenerateTOTPResult {
	userID := e.activeUser()
	if userID == "" {
		return models.GenerateTOTPResult{Err: ErrNoActiveUser}
	}

	cipher, err := e.vaultStore.GetCipher(ctx, userID, cipherID)
	if err != nil {
		return models.GenerateTOTPResult{Err: ErrCipherNotFound}
	}

	result, err := e.crypto.DecryptCipherList(ctx, userID, []models.Cipher{*cipher})
	if err != nil {
		return models.GenerateTOTPResult{Err: fmt.Errorf("decrypt cipher: %w", err)}
	}
	if len(result.Successes) == 0 {
		return models.GenerateTOTPResult{Err: fmt.Errorf("decrypt cipher %s failed", cipherID)}
	}

	secret := result.Successes[0].TOTP
	if secret == "" {
		return models.GenerateTOTPResult{Err: ErrNoTOTPSecret}
	}

	code, period, err := e.crypto.GenerateTOTP(secret, e.now())
	if err != nil {
		return models.GenerateTOTPResult{Err: err}
	}
	return models.GenerateTOTPResult{Code: code, PeriodSeconds: period}
}

// ExportVaultData renders the personal vault. Organization ciphers, trashed
// ciphers, and restricted types never leave the device through this path.
func (e *vaultEngine) ExportVaultData(ctx context.Context, format models.ExportFormat, restrictedTypes []models.CipherType) models.ExportVaultDataResult {
	userID := e.activeUser()
	if userID == "" {
		return models.ExportVaultDataResult{Err: ErrNoActiveUser}
	}

	folders, err := e.vaultStore.GetFolders(ctx, userID)
	if err != nil {
		return models.ExportVaultDataResult{Err: fmt.Errorf("read folders: %w", err)}
	}
	ciphers, err := e.vaultStore.GetCiphers(ctx, userID)
	if err != nil {
		return models.ExportVaultDataResult{Err: fmt.Errorf("read ciphers: %w", err)}
	}

	exportable := make([]models.Cipher, 0, len(ciphers))
	for _, cipher := range ciphers {
		if cipher.OrganizationID != nil || cipher.DeletedDate != nil {
			continue
		}
		if slices.Contains(restrictedTypes, cipher.Type) {
			continue
		}
		exportable = append(exportable, cipher)
	}

	data, err := e.crypto.ExportVault(ctx, userID, folders, exportable, format)
	if err != nil {
		return models.ExportVaultDataResult{Err: err}
	}
	return models.ExportVaultDataResult{Data: data}
}

// DiscoverCredentials matches decrypted login ciphers against a target URI,
// honouring equivalent-domain groups. It reads the current cipher projection
// snapshot, so results reflect whatever the last decrypt produced.
func (e *vaultEngine) DiscoverCredentials(ctx context.Context, uri string) ([]models.CipherView, error) {
	host := hostOf(uri)
	if host == "" {
		return nil, fmt.Errorf("no host in uri %q", uri)
	}

	// Count as a projection consumer for the duration of the wait so a
	// pipeline idling without stream subscribers still serves the lookup.
	subCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	e.addSubscriber(subCtx)

	result, err := e.ciphers.FirstData(subCtx)
	if err != nil {
		return nil, err
	}
	equivalents := e.equivalentHosts(host)

	matches := make([]models.CipherView, 0)
	for _, view := range result.Successes {
		if view.Type != models.CipherTypeLogin || view.DeletedDate != nil {
			continue
		}
		for _, candidate := range view.URIs {
			if hostMatches(hostOf(candidate), equivalents) {
				matches = append(matches, view)
				break
			}
		}
	}
	return matches, nil
}

// equivalentHosts expands a host through the user's equivalent-domain groups.
// The host itself is always included.
func (e *vaultEngine) equivalentHosts(host string) map[string]struct{} {
	hosts := map[string]struct{}{host: {}}

	domains, ok := e.domains.Get().Data()
	if !ok || domains == nil {
		return hosts
	}

	expand := func(group []string) {
		for _, d := range group {
			if hostInDomain(host, d) {
				for _, other := range group {
					hosts[other] = struct{}{}
				}
				return
			}
		}
	}
	for _, group := range domains.EquivalentDomains {
		expand(group)
	}
	for _, global := range domains.GlobalEquivalentDomains {
		if !global.Excluded {
			expand(global.Domains)
		}
	}
	return hosts
}

func hostMatches(candidate string, equivalents map[string]struct{}) bool {
	if candidate == "" {
		return false
	}
	for domain := range equivalents {
		if hostInDomain(candidate, domain) {
			return true
		}
	}
	return false
}

// hostInDomain reports whether host is the domain or one of its subdomains.
func hostInDomain(host, domain string) bool {
	return host == domain || strings.HasSuffix(host, "."+domain)
}

// hostOf extracts the lowercase host of a URI, tolerating scheme-less input.
func hostOf(uri string) string {
	trimmed := strings.TrimSpace(uri)
	if trimmed == "" {
		return ""
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return ""
	}
	return strings.ToLower(parsed.Hostname())
}

// DeleteVaultData purges the user's local vault records. Used on logout; key
// material and sync settings are handled by their own stores.
func (e *vaultEngine) DeleteVaultData(ctx context.Context, userID string) error {
	if err := e.vaultStore.DeleteVaultData(ctx, userID); err != nil {
		return fmt.Errorf("delete vault data: %w", err)
	}
	logger.FromContext(ctx).Info().Str("func", "vaultEngine.DeleteVaultData").Str("userID", userID).Msg("local vault purged")
	return nil
}

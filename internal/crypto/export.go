// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-vault-sync/models"
)

// exportDocument is the JSON export envelope. Field names follow the common
// unencrypted password-manager export layout so the file imports elsewhere.
type exportDocument struct {
	Encrypted bool           `json:"encrypted"`
	Folders   []exportFolder `json:"folders"`
	Items     []exportItem   `json:"items"`
}

type exportFolder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type exportItem struct {
	ID       string            `json:"id"`
	FolderID *string           `json:"folderId"`
	Type     models.CipherType `json:"type"`
	Name     string            `json:"name"`
	Notes    string            `json:"notes,omitempty"`
	Favorite bool              `json:"favorite"`
	Login    *exportLogin      `json:"login,omitempty"`
}

type exportLogin struct {
	Username string   `json:"username,omitempty"`
	Password string   `json:"password,omitempty"`
	TOTP     string   `json:"totp,omitempty"`
	URIs     []string `json:"uris,omitempty"`
}

func (e *cryptoEngine) ExportVault(ctx context.Context, userID string, folders []models.Folder, ciphers []models.Cipher, format models.ExportFormat) (string, error) {
	folderViews, err := e.DecryptFolderList(ctx, userID, folders)
	if err != nil {
		return "", fmt.Errorf("decrypt folders for export: %w", err)
	}

	sess, err := e.unlockedSession(userID)
	if err != nil {
		return "", err
	}

	// Export decrypts strictly; a record that cannot be read must fail the
	// export rather than silently drop from the output.
	cipherViews := make([]models.CipherView, 0, len(ciphers))
	for _, c := range ciphers {
		view, err := e.decryptCipher(sess, c)
		if err != nil {
			return "", fmt.Errorf("decrypt cipher for export: %w", err)
		}
		cipherViews = append(cipherViews, view)
	}

	switch format {
	case models.ExportFormatJSON:
		return renderExportJSON(folderViews, cipherViews)
	case models.ExportFormatCSV:
		return renderExportCSV(folderViews, cipherViews)
	default:
		return "", fmt.Errorf("unsupported export format %d", format)
	}
}

func renderExportJSON(folders []models.FolderView, ciphers []models.CipherView) (string, error) {
	doc := exportDocument{
		Folders: make([]exportFolder, 0, len(folders)),
		Items:   make([]exportItem, 0, len(ciphers)),
	}
	for _, f := range folders {
		doc.Folders = append(doc.Folders, exportFolder{ID: f.ID, Name: f.Name})
	}
	for _, c := range ciphers {
		item := exportItem{
			ID:       c.ID,
			FolderID: c.FolderID,
			Type:     c.Type,
			Name:     c.Name,
			Notes:    c.Notes,
			Favorite: c.Favorite,
		}
		if c.Type == models.CipherTypeLogin {
			item.Login = &exportLogin{
				Username: c.Username,
				Password: c.Password,
				TOTP:     c.TOTP,
				URIs:     c.URIs,
			}
		}
		doc.Items = append(doc.Items, item)
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal export: %w", err)
	}
	return string(out), nil
}

func renderExportCSV(folders []models.FolderView, ciphers []models.CipherView) (string, error) {
	folderNames := make(map[string]string, len(folders))
	for _, f := range folders {
		folderNames[f.ID] = f.Name
	}

	var b strings.Builder
	w := csv.NewWriter(&b)
	if err := w.Write([]string{"folder", "favorite", "type", "name", "notes", "login_uri", "login_username", "login_password", "login_totp"}); err != nil {
		return "", fmt.Errorf("write export header: %w", err)
	}

	for _, c := range ciphers {
		folderName := ""
		if c.FolderID != nil {
			folderName = folderNames[*c.FolderID]
		}
		favorite := ""
		if c.Favorite {
			favorite = strconv.Itoa(1)
		}
		record := []string{
			folderName,
			favorite,
			cipherTypeLabel(c.Type),
			c.Name,
			c.Notes,
			strings.Join(c.URIs, ","),
			c.Username,
			c.Password,
			c.TOTP,
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("write export row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush export: %w", err)
	}
	return b.String(), nil
}

func cipherTypeLabel(t models.CipherType) string {
	switch t {
	case models.CipherTypeLogin:
		return "login"
	case models.CipherTypeSecureNote:
		return "note"
	case models.CipherTypeCard:
		return "card"
	case models.CipherTypeIdentity:
		return "identity"
	case models.CipherTypeSSHKey:
		return "sshkey"
	default:
		return "unknown"
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
	"golang.org/x/crypto/pbkdf2"

	"github.com/MKhiriev/go-vault-sync/models"
)

// keyLen is the user/org key length in bytes (AES-256).
const keyLen = 32

var errCiphertextTooShort = errors.New("ciphertext too short")

// deriveMasterKey derives the master key from the master password and the
// user's email (used as salt) according to the account's KDF parameters,
// then stretches it with HKDF-SHA256 before it wraps the user key.
// The master key exists only in memory and never leaves the process.
func deriveMasterKey(password, email string, kdf models.KDFConfig) []byte {
	salt := []byte(email)
	var raw []byte
	switch kdf.Type {
	case models.KDFTypeArgon2id:
		// Argon2id salts the password hash with SHA-256(email) so short
		// emails still provide 32 bytes of salt material.
		sum := sha256.Sum256(salt)
		raw = argon2.IDKey(
			[]byte(password),
			sum[:],
			uint32(kdf.Iterations),
			uint32(kdf.Memory)*1024,
			uint8(kdf.Parallelism),
			keyLen,
		)
	default:
		raw = pbkdf2.Key([]byte(password), salt, kdf.Iterations, keyLen, sha256.New)
	}
	return stretchKey(raw)
}

// stretchKey expands a derived key with HKDF-SHA256 so the wrapping key
// is never the raw KDF output.
func stretchKey(raw []byte) []byte {
	stretched := make([]byte, keyLen)
	if _, err := io.ReadFull(hkdf.Expand(sha256.New, raw, []byte("enc")), stretched); err != nil {
		// Expand never fails for a single 32-byte block.
		panic(err)
	}
	return stretched
}

// derivePinKey derives a wrapping key from a PIN with the same KDF settings
// as the master password path.
func derivePinKey(pin, email string, kdf models.KDFConfig) []byte {
	return deriveMasterKey(pin, email, kdf)
}

// sealWithKey wraps plaintext with AES-256-GCM under key and returns
// base64(nonce || ciphertext).
func sealWithKey(plaintext, key []byte) (string, error) {
	if len(key) != keyLen {
		return "", fmt.Errorf("invalid key length: %d", len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ct := gcm.Seal(nil, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(append(nonce, ct...)), nil
}

// openWithKey reverses [sealWithKey].
func openWithKey(blob string, key []byte) ([]byte, error) {
	if len(key) != keyLen {
		return nil, fmt.Errorf("invalid key length: %d", len(key))
	}
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(raw) < nonceSize {
		return nil, errCiphertextTooShort
	}

	nonce, ct := raw[:nonceSize], raw[nonceSize:]
	return gcm.Open(nil, nonce, ct, nil)
}

// encryptString seals a UTF-8 string with key.
func encryptString(value string, key []byte) (string, error) {
	return sealWithKey([]byte(value), key)
}

// decryptString opens a blob produced by [encryptString].
func decryptString(blob string, key []byte) (string, error) {
	plain, err := openWithKey(blob, key)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

// decryptOptional opens an optional encrypted field; a nil input stays empty.
func decryptOptional(blob *string, key []byte) (string, error) {
	if blob == nil {
		return "", nil
	}
	return decryptString(*blob, key)
}

// encryptOptional seals value when non-empty, returning nil otherwise.
func encryptOptional(value string, key []byte) (*string, error) {
	if value == "" {
		return nil, nil
	}
	enc, err := encryptString(value, key)
	if err != nil {
		return nil, err
	}
	return &enc, nil
}

// generateKey reads a fresh 256-bit key from the OS CSPRNG.
func generateKey() ([]byte, error) {
	key := make([]byte, keyLen)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

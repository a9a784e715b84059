// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base32"
	"encoding/binary"
	"fmt"
	"hash"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultTOTPPeriod = 30
	defaultTOTPDigits = 6
	steamTOTPDigits   = 5

	steamScheme   = "steam://"
	otpAuthScheme = "otpauth://"
)

const steamAlphabet = "23456789BCDFGHJKMNPQRTVWXY"

// totpParams is a parsed authenticator key. Stored keys come in three shapes:
// a bare base32 secret, a steam:// secret, and a full otpauth:// URI.
type totpParams struct {
	secret  string
	period  int
	digits  int
	algo    func() hash.Hash
	isSteam bool
}

func (e *cryptoEngine) GenerateTOTP(secret string, at time.Time) (string, int, error) {
	params, err := parseTOTPSecret(secret)
	if err != nil {
		return "", 0, err
	}

	key, err := decodeBase32(params.secret)
	if err != nil {
		return "", 0, fmt.Errorf("decode totp secret: %w", err)
	}

	counter := uint64(at.Unix()) / uint64(params.period)
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(params.algo, key)
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	offset := sum[len(sum)-1] & 0x0f
	value := binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff

	if params.isSteam {
		return steamCode(value, params.digits), params.period, nil
	}

	mod := uint32(1)
	for i := 0; i < params.digits; i++ {
		mod *= 10
	}
	return fmt.Sprintf("%0*d", params.digits, value%mod), params.period, nil
}

func parseTOTPSecret(raw string) (totpParams, error) {
	raw = strings.TrimSpace(raw)
	params := totpParams{
		period: defaultTOTPPeriod,
		digits: defaultTOTPDigits,
		algo:   sha1.New,
	}

	switch {
	case strings.HasPrefix(strings.ToLower(raw), steamScheme):
		params.secret = raw[len(steamScheme):]
		params.digits = steamTOTPDigits
		params.isSteam = true
	case strings.HasPrefix(strings.ToLower(raw), otpAuthScheme):
		u, err := url.Parse(raw)
		if err != nil {
			return totpParams{}, fmt.Errorf("parse otpauth uri: %w", err)
		}
		q := u.Query()
		params.secret = q.Get("secret")
		if v := q.Get("period"); v != "" {
			period, err := strconv.Atoi(v)
			if err != nil || period <= 0 {
				return totpParams{}, fmt.Errorf("invalid totp period %q", v)
			}
			params.period = period
		}
		if v := q.Get("digits"); v != "" {
			digits, err := strconv.Atoi(v)
			if err != nil || digits <= 0 || digits > 10 {
				return totpParams{}, fmt.Errorf("invalid totp digits %q", v)
			}
			params.digits = digits
		}
		switch strings.ToUpper(q.Get("algorithm")) {
		case "", "SHA1":
			params.algo = sha1.New
		case "SHA256":
			params.algo = sha256.New
		case "SHA512":
			params.algo = sha512.New
		default:
			return totpParams{}, fmt.Errorf("unsupported totp algorithm %q", q.Get("algorithm"))
		}
	default:
		params.secret = raw
	}

	if params.secret == "" {
		return totpParams{}, fmt.Errorf("empty totp secret")
	}
	return params, nil
}

func decodeBase32(secret string) ([]byte, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(secret, " ", ""))
	normalized = strings.TrimRight(normalized, "=")
	return base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(normalized)
}

// steamCode maps the truncated HOTP value onto Steam Guard's alphabet.
func steamCode(value uint32, digits int) string {
	var b strings.Builder
	for i := 0; i < digits; i++ {
		b.WriteByte(steamAlphabet[value%uint32(len(steamAlphabet))])
		value /= uint32(len(steamAlphabet))
	}
	return b.String()
}

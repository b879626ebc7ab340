// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

package token

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Claims is the decoded payload of an access token issued by the news
// service. The token is a compact three-segment credential; the client
// decodes only the claims segment. No signature verification happens
// here — the service is the issuer and re-validates the token on every
// request, so the client needs the claims solely for UI gating.
type Claims struct {
	// Subject is the user ID as issued, a decimal string.
	Subject string `json:"sub"`

	// Admin marks a service administrator. Admins may modify any
	// news item or comment regardless of ownership.
	Admin bool `json:"admin"`

	// Verified marks an account allowed to publish news items.
	Verified bool `json:"verified"`

	// ExpiresAt is a Unix timestamp (seconds) after which this
	// token is no longer valid.
	ExpiresAt int64 `json:"exp"`
}

// Errors returned by Decode and related functions.
var (
	ErrMalformedToken = errors.New("token: malformed access token")
	ErrTokenExpired   = errors.New("token: access token has expired")
)

// Decode splits the raw token string, base64url-decodes the claims
// segment, and JSON-decodes it. Returns ErrMalformedToken (possibly
// wrapped with detail) if the token does not have the expected shape.
//
// Decode does not check expiry; callers that need a live token should
// use DecodeValid or check Claims.Expired themselves.
func Decode(raw string) (Claims, error) {
	segments := strings.Split(raw, ".")
	if len(segments) != 3 {
		return Claims{}, fmt.Errorf("%w: expected 3 segments, got %d", ErrMalformedToken, len(segments))
	}

	payload, err := base64.RawURLEncoding.DecodeString(segments[1])
	if err != nil {
		return Claims{}, fmt.Errorf("%w: decoding claims segment: %v", ErrMalformedToken, err)
	}

	var claims Claims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return Claims{}, fmt.Errorf("%w: parsing claims: %v", ErrMalformedToken, err)
	}

	if claims.Subject == "" {
		return Claims{}, fmt.Errorf("%w: missing subject", ErrMalformedToken)
	}

	return claims, nil
}

// DecodeValid is Decode plus an expiry check against time.Now.
func DecodeValid(raw string) (Claims, error) {
	return DecodeValidAt(raw, time.Now())
}

// DecodeValidAt is like DecodeValid but accepts an explicit time for
// the expiry check. This supports deterministic testing.
func DecodeValidAt(raw string, now time.Time) (Claims, error) {
	claims, err := Decode(raw)
	if err != nil {
		return Claims{}, err
	}
	if claims.Expired(now) {
		return Claims{}, ErrTokenExpired
	}
	return claims, nil
}

// Expired reports whether the token's expiry has passed at the given
// time. A token expiring exactly now counts as expired.
func (c Claims) Expired(now time.Time) bool {
	return c.ExpiresAt <= now.Unix()
}

// UserID parses the Subject into the canonical numeric user ID. The
// service issues subjects as decimal strings; everything client-side
// compares IDs as int64, never as strings.
func (c Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: non-numeric subject %q", ErrMalformedToken, c.Subject)
	}
	return id, nil
}

// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/newsroom-foundation/newsroom/lib/newsapi"
)

func newTestClient(t *testing.T, baseURL string) *newsapi.Client {
	t.Helper()
	client, err := newsapi.NewClient(newsapi.ClientConfig{BaseURL: baseURL})
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}
	return client
}

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// encodeTestToken builds a decodable three-segment token around the
// given claims.
func encodeTestToken(t *testing.T, subject string, admin, verified bool, expiresAt time.Time) string {
	t.Helper()
	payload, err := json.Marshal(map[string]any{
		"sub":      subject,
		"admin":    admin,
		"verified": verified,
		"exp":      expiresAt.Unix(),
	})
	if err != nil {
		t.Fatalf("marshaling claims: %v", err)
	}
	segment := base64.RawURLEncoding.EncodeToString
	return segment([]byte(`{"alg":"HS256"}`)) + "." + segment(payload) + "." + segment([]byte("sig"))
}

// newTestStore creates a Store backed by a temp session file and a
// stub auth server that issues issueToken on any login. The store's
// clock is pinned to testNow.
func newTestStore(t *testing.T, issueToken string) (*Store, string) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path != "/auth/login" {
			http.NotFound(writer, request)
			return
		}
		json.NewEncoder(writer).Encode(map[string]string{"access_token": issueToken})
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server.URL)
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewStore(client, path)
	store.now = func() time.Time { return testNow }
	return store, path
}

func writeSessionFile(t *testing.T, path, accessToken string) {
	t.Helper()
	data, err := json.Marshal(persistedSession{AccessToken: accessToken, ServiceURL: "http://unused"})
	if err != nil {
		t.Fatalf("marshaling session file: %v", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("writing session file: %v", err)
	}
}

func TestRestore_ValidToken(t *testing.T) {
	store, path := newTestStore(t, "")
	writeSessionFile(t, path, encodeTestToken(t, "42", true, false, testNow.Add(10*time.Minute)))

	if err := store.Restore(); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	principal := store.Current()
	if principal == nil {
		t.Fatal("Current = nil after restoring a live token")
	}
	if principal.ID != 42 || !principal.Admin || principal.Verified {
		t.Errorf("principal = %+v, want ID 42, admin, not verified", principal)
	}
	if store.AccessToken() == "" {
		t.Error("AccessToken empty after restore")
	}
}

func TestRestore_ExpiredTokenClearsStorage(t *testing.T) {
	store, path := newTestStore(t, "")
	writeSessionFile(t, path, encodeTestToken(t, "42", false, true, testNow.Add(-time.Minute)))

	if err := store.Restore(); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	if store.Current() != nil {
		t.Error("Current != nil after restoring an expired token")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("session file still exists after expired-token restore")
	}
}

func TestRestore_MalformedTokenClearsStorage(t *testing.T) {
	store, path := newTestStore(t, "")
	writeSessionFile(t, path, "definitely-not-a-token")

	if err := store.Restore(); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if store.Current() != nil {
		t.Error("Current != nil after restoring a malformed token")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("session file still exists after malformed-token restore")
	}
}

func TestRestore_NoFile(t *testing.T) {
	store, _ := newTestStore(t, "")
	if err := store.Restore(); err != nil {
		t.Fatalf("Restore with no session file: %v", err)
	}
	if store.Current() != nil {
		t.Error("Current != nil with no session file")
	}
}

func TestLogin_PersistsAndSetsPrincipal(t *testing.T) {
	issued := encodeTestToken(t, "7", false, true, testNow.Add(15*time.Minute))
	store, path := newTestStore(t, issued)

	principal, err := store.Login(context.Background(), "alice@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if principal.ID != 7 || principal.Admin || !principal.Verified {
		t.Errorf("principal = %+v, want ID 7, verified, not admin", principal)
	}
	if got := store.Current(); got != principal {
		t.Errorf("Current = %+v, want the principal Login returned", got)
	}
	if store.AccessToken() != issued {
		t.Error("AccessToken does not match the issued token")
	}

	// Storage and memory were set in the same step.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading session file: %v", err)
	}
	var persisted persistedSession
	if err := json.Unmarshal(data, &persisted); err != nil {
		t.Fatalf("parsing session file: %v", err)
	}
	if persisted.AccessToken != issued {
		t.Error("persisted token does not match the issued token")
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(writer).Encode(map[string]string{"detail": "Incorrect email or password"})
	}))
	t.Cleanup(server.Close)

	client := newTestClient(t, server.URL)
	store := NewStore(client, filepath.Join(t.TempDir(), "session.json"))
	store.now = func() time.Time { return testNow }

	if _, err := store.Login(context.Background(), "alice@example.com", "wrong"); err == nil {
		t.Fatal("Login succeeded with bad credentials")
	}
	if store.Current() != nil {
		t.Error("session changed by a failed login")
	}
}

func TestLogout_Idempotent(t *testing.T) {
	store, path := newTestStore(t, "")

	// No prior session: must not error, must leave nothing behind.
	store.Logout()
	if store.Current() != nil {
		t.Error("Current != nil after logout")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("logout created a session file")
	}

	// Twice in a row is fine too.
	store.Logout()
}

func TestLogout_ClearsLiveSession(t *testing.T) {
	issued := encodeTestToken(t, "7", false, true, testNow.Add(15*time.Minute))
	store, path := newTestStore(t, issued)

	if _, err := store.Login(context.Background(), "alice@example.com", "hunter2"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	store.Logout()
	if store.Current() != nil {
		t.Error("Current != nil after logout")
	}
	if store.AccessToken() != "" {
		t.Error("AccessToken non-empty after logout")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("session file survives logout")
	}
}

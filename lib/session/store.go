// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/newsroom-foundation/newsroom/lib/newsapi"
	"github.com/newsroom-foundation/newsroom/lib/token"
)

// Principal is the authenticated identity derived from a live access
// token. It is immutable once constructed; login replaces it, it is
// never mutated in place.
type Principal struct {
	// ID is the canonical numeric user ID. Ownership checks compare
	// this against resource author IDs, int64 to int64.
	ID int64

	// Admin principals may modify any resource and publish news.
	Admin bool

	// Verified principals may publish news.
	Verified bool
}

// persistedSession is the on-disk shape of the session file. The
// service URL rides along so that CLI verbs and the TUI talk to the
// same deployment the token was issued by.
type persistedSession struct {
	AccessToken string `json:"access_token"`
	ServiceURL  string `json:"service_url"`
}

// Store holds the current Principal and the persisted token. All
// methods are safe for concurrent use — the TUI reads the token from
// background command goroutines.
type Store struct {
	client *newsapi.Client
	path   string
	now    func() time.Time

	mutex       sync.RWMutex
	principal   *Principal
	accessToken string
}

// FilePath returns the session file location: NEWSROOM_SESSION_FILE if
// set, else $XDG_CONFIG_HOME/newsroom/session.json, else
// ~/.config/newsroom/session.json.
func FilePath() string {
	if envPath := os.Getenv("NEWSROOM_SESSION_FILE"); envPath != "" {
		return envPath
	}

	configDirectory := os.Getenv("XDG_CONFIG_HOME")
	if configDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			// Fallback — this should rarely happen.
			return filepath.Join("/tmp", "newsroom-session.json")
		}
		configDirectory = filepath.Join(homeDirectory, ".config")
	}
	return filepath.Join(configDirectory, "newsroom", "session.json")
}

// NewStore creates a Store persisting to path and installs itself as
// the client's token source. The store starts unauthenticated; call
// Restore to pick up a previously saved session.
func NewStore(client *newsapi.Client, path string) *Store {
	store := &Store{
		client: client,
		path:   path,
		now:    time.Now,
	}
	client.SetTokenSource(store)
	return store
}

// Restore loads the persisted token, if any. A missing file leaves the
// store unauthenticated. A token that is malformed or expired is
// treated the same as absent: the file is removed and no principal is
// set. Restore never fails the program over a bad session file — the
// worst outcome is having to log in again.
func (s *Store) Restore() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("session: reading %s: %w", s.path, err)
	}

	var persisted persistedSession
	if err := json.Unmarshal(data, &persisted); err != nil {
		s.clearPersisted()
		return nil
	}

	claims, err := token.DecodeValidAt(persisted.AccessToken, s.now())
	if err != nil {
		s.clearPersisted()
		return nil
	}

	principal, err := principalFromClaims(claims)
	if err != nil {
		s.clearPersisted()
		return nil
	}

	s.mutex.Lock()
	s.principal = principal
	s.accessToken = persisted.AccessToken
	s.mutex.Unlock()
	return nil
}

// Login exchanges credentials for a token, persists it, and sets the
// Principal — storage and memory in the same step. The server's error
// detail is surfaced unchanged for display on the login form.
func (s *Store) Login(ctx context.Context, username, password string) (*Principal, error) {
	response, err := s.client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	claims, err := token.DecodeValidAt(response.AccessToken, s.now())
	if err != nil {
		return nil, fmt.Errorf("session: service issued an unusable token: %w", err)
	}
	principal, err := principalFromClaims(claims)
	if err != nil {
		return nil, fmt.Errorf("session: service issued an unusable token: %w", err)
	}

	if err := s.persist(response.AccessToken); err != nil {
		return nil, err
	}

	s.mutex.Lock()
	s.principal = principal
	s.accessToken = response.AccessToken
	s.mutex.Unlock()
	return principal, nil
}

// Logout clears the persisted token and the Principal. Idempotent:
// logging out with no session is not an error.
func (s *Store) Logout() {
	s.clearPersisted()
	s.mutex.Lock()
	s.principal = nil
	s.accessToken = ""
	s.mutex.Unlock()
}

// Current returns the authenticated Principal, or nil when logged out.
func (s *Store) Current() *Principal {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.principal
}

// AccessToken implements newsapi.TokenSource. Empty when logged out.
func (s *Store) AccessToken() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.accessToken
}

// persist writes the session file with owner-only permissions (it
// contains the access token).
func (s *Store) persist(accessToken string) error {
	data, err := json.MarshalIndent(persistedSession{
		AccessToken: accessToken,
		ServiceURL:  s.client.BaseURL(),
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("session: marshaling session: %w", err)
	}
	data = append(data, '\n')

	directory := filepath.Dir(s.path)
	if err := os.MkdirAll(directory, 0700); err != nil {
		return fmt.Errorf("session: creating %s: %w", directory, err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("session: writing %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) clearPersisted() {
	// Removal failure is not actionable beyond trying again at the
	// next login; a stale file is re-checked (and re-cleared) on the
	// next restore anyway.
	os.Remove(s.path)
}

func principalFromClaims(claims token.Claims) (*Principal, error) {
	id, err := claims.UserID()
	if err != nil {
		return nil, err
	}
	return &Principal{ID: id, Admin: claims.Admin, Verified: claims.Verified}, nil
}

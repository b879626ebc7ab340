// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

// Package session owns the client's authentication state: the current
// Principal and the access token persisted across runs.
//
// The token lives in a single well-known file (0600, owner-only) under
// the user's config directory, like an SSH key: log in once via
// "newsroom login", and every later invocation restores the session
// transparently. [Store.Restore] reads the file once at startup; a
// token that fails to decode or has expired is cleared on the spot and
// the process starts unauthenticated. Login and Logout are the only
// writers, and each updates the file and the in-memory Principal in
// the same step — the two never disagree within an operation.
//
// The Store is an injectable value handed to the UI and the CLI
// verbs, not a package global, so tests substitute a fake by pointing
// it at a temp file. It implements [newsapi.TokenSource], which is how
// the HTTP client picks up the credential for authenticated requests.
package session

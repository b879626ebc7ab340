// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

// Package newsapi is the HTTP client for the news service's REST API.
//
// One method per endpoint: authentication (/auth/login form-encoded,
// /auth/register JSON), news CRUD (/news/), and comment CRUD
// (/comments/). Authenticated requests carry the access token as a
// bearer credential, pulled per-request from the configured
// [TokenSource] so that login/logout in the session layer takes
// effect immediately without rebuilding the client.
//
// Error responses all use the service's {"detail": ...} shape, where
// detail is either a string or (for 422 validation failures) an array
// of field errors. Both decode into [*APIError]; callers classify with
// errors.As plus the status helpers rather than parsing message text.
// Transport-level failures are returned as wrapped errors without an
// APIError in the chain.
//
// The client performs no retries and no caching. Collection
// consistency after mutations is the caller's concern (the UI refetches
// the owning collection wholesale).
package newsapi

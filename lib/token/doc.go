// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

// Package token decodes access tokens issued by the news service.
//
// The service issues compact three-segment bearer credentials on
// login. The middle segment is a base64url-encoded JSON object
// carrying the subject (decimal user ID), the admin and verified
// capability flags, and a Unix expiry timestamp.
//
// The client never verifies the signature segment: the service is the
// sole issuer and re-validates the token on every authenticated
// request. Client-side decoding exists only to derive the Principal
// that gates which actions the UI offers. A token that fails to
// decode, or whose expiry has passed, is treated as absent — the
// session layer clears it and the user is logged out.
//
// This package has no network or storage dependency. All expiry
// checks take an explicit time through the *At variants so tests
// never touch the wall clock.
package token

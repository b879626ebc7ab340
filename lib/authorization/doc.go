// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

// Package authorization decides what the current principal may do,
// mirroring the rules the service enforces:
//
//   - Modify (edit or delete) a news item or comment: the principal
//     must be an admin or the item's author.
//   - Create news: the principal must be verified or an admin.
//   - Comment: any authenticated principal.
//
// The client uses these decisions only to show or hide affordances.
// The service remains the authority; a decision here never substitutes
// for the server-side check, so a stale session can still be rejected
// with a 403 at request time.
//
// All checks treat a nil principal as anonymous and deny everything.
package authorization

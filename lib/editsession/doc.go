// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

// Package editsession tracks in-place edits of list items. Each item
// moves through three states:
//
//	Viewing → Editing → Saving → Viewing
//
// A Tracker holds at most a configurable number of concurrent edits
// (one by default, matching the single inline edit slot in the UI).
// Beginning an edit past the limit evicts the oldest open edit and
// discards its draft. A failed save returns the item to Editing with
// the draft intact, so a rejected request never loses typed text.
//
// The Tracker is not safe for concurrent use. It is owned by the UI
// update loop, which is single-threaded.
package editsession

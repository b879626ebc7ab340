// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

// Package newsui implements the terminal UI for browsing and editing
// news. The layout is two panes: a filterable news list on the left
// and a detail pane on the right showing the rendered article body
// and its comment thread.
//
// Data access goes through the [Source] interface; mutations through
// the optional [Mutator] interface, checked by type assertion. A
// *newsapi.Client satisfies both, and tests substitute fakes.
//
// The UI never mutates its local copy of server data. Every mutation
// round-trips: the request is sent, and on success the affected list
// is refetched in full. Responses are tagged with a generation number
// and stale responses are dropped, so a slow refetch can never
// overwrite a newer one.
package newsui

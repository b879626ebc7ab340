// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

package newsui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the news viewer TUI.
type KeyMap struct {
	// Navigation (context-sensitive: list movement or detail scrolling
	// depending on current focus).
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Focus switching.
	FocusToggle key.Binding

	// Filter.
	FilterActivate key.Binding // Enter filter mode.
	FilterClear    key.Binding // Clear filter / cancel dialogs.

	// Reading.
	Refresh key.Binding // Refetch the news list from the service.

	// Mutations. Only active when the source implements Mutator and
	// the authorization policy allows the action.
	ComposeComment key.Binding // Open the comment composer.
	EditComment    key.Binding // Edit the selected comment inline.
	DeleteComment  key.Binding // Delete the selected comment (confirm first).
	ComposeNews    key.Binding // Open the article composer.
	EditNews       key.Binding // Edit the selected article.
	DeleteNews     key.Binding // Delete the selected article (confirm first).

	// Comment thread navigation within the detail pane.
	NextComment     key.Binding
	PreviousComment key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside standard arrow keys and page up/down.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("C-d", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	FocusToggle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "switch pane"),
	),
	FilterActivate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	FilterClear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "clear"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	ComposeComment: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "comment"),
	),
	EditComment: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit comment"),
	),
	DeleteComment: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete comment"),
	),
	ComposeNews: key.NewBinding(
		key.WithKeys("N"),
		key.WithHelp("N", "new article"),
	),
	EditNews: key.NewBinding(
		key.WithKeys("E"),
		key.WithHelp("E", "edit article"),
	),
	DeleteNews: key.NewBinding(
		key.WithKeys("D"),
		key.WithHelp("D", "delete article"),
	),
	NextComment: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next comment"),
	),
	PreviousComment: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "prev comment"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

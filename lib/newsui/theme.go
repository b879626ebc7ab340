// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

package newsui

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/tidwall/jsonc"
)

// Theme defines the color palette for the news viewer. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Author attribution line under titles and comments.
	AuthorForeground lipgloss.Color

	// Inline edit: background tint for the comment being edited.
	EditingBackground lipgloss.Color

	// Status bar notices.
	ErrorForeground  lipgloss.Color
	NoticeForeground lipgloss.Color

	// Filter match highlighting.
	MatchForeground lipgloss.Color

	// Links and markdown headings in the rendered article body.
	LinkForeground lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	AuthorForeground: lipgloss.Color("108"), // muted green

	EditingBackground: lipgloss.Color("58"), // dark amber tint

	ErrorForeground:  lipgloss.Color("196"), // bright red
	NoticeForeground: lipgloss.Color("220"), // amber

	MatchForeground: lipgloss.Color("214"), // orange

	LinkForeground: lipgloss.Color("75"), // blue
}

// themeFile is the on-disk shape of a theme override. Every field is
// optional; unset fields keep the built-in value. The file may contain
// comments and trailing commas (JSONC).
type themeFile struct {
	NormalText         string `json:"normal_text"`
	FaintText          string `json:"faint_text"`
	SelectedBackground string `json:"selected_background"`
	SelectedForeground string `json:"selected_foreground"`
	HeaderForeground   string `json:"header_foreground"`
	BorderColor        string `json:"border_color"`
	HelpText           string `json:"help_text"`
	AuthorForeground   string `json:"author_foreground"`
	EditingBackground  string `json:"editing_background"`
	ErrorForeground    string `json:"error_foreground"`
	NoticeForeground   string `json:"notice_foreground"`
	MatchForeground    string `json:"match_foreground"`
	LinkForeground     string `json:"link_foreground"`
}

// LoadTheme reads a JSONC theme file and applies its overrides on top
// of the default theme. An empty path returns the default theme.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme
	if path == "" {
		return theme, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return theme, err
	}

	var file themeFile
	if err := json.Unmarshal(jsonc.ToJSON(data), &file); err != nil {
		return theme, fmt.Errorf("parsing theme %s: %w", path, err)
	}

	apply := func(target *lipgloss.Color, value string) {
		if value != "" {
			*target = lipgloss.Color(value)
		}
	}
	apply(&theme.NormalText, file.NormalText)
	apply(&theme.FaintText, file.FaintText)
	apply(&theme.SelectedBackground, file.SelectedBackground)
	apply(&theme.SelectedForeground, file.SelectedForeground)
	apply(&theme.HeaderForeground, file.HeaderForeground)
	apply(&theme.BorderColor, file.BorderColor)
	apply(&theme.HelpText, file.HelpText)
	apply(&theme.AuthorForeground, file.AuthorForeground)
	apply(&theme.EditingBackground, file.EditingBackground)
	apply(&theme.ErrorForeground, file.ErrorForeground)
	apply(&theme.NoticeForeground, file.NoticeForeground)
	apply(&theme.MatchForeground, file.MatchForeground)
	apply(&theme.LinkForeground, file.LinkForeground)

	return theme, nil
}

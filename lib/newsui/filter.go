// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

package newsui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/newsroom-foundation/newsroom/lib/newsapi"
)

// FilterModel is the fuzzy filter over the news list. The filter
// narrows client-side without round-tripping to the service: the list
// snapshot stays as fetched, and typing re-ranks it.
type FilterModel struct {
	// Input is the current filter query text.
	Input string

	// Active is true when the filter input has keyboard focus
	// (the user pressed / to start typing).
	Active bool
}

// FilterResult pairs a news item with its match information.
type FilterResult struct {
	News newsapi.News

	// TitlePositions are the matched rune indices in the title, for
	// highlight rendering. Nil when the match came from the author
	// field instead.
	TitlePositions []int
}

// Apply fuzzy-matches the query against each item's title and author
// name, returning matches sorted by descending score. An empty query
// returns all items in their original order.
func (filter *FilterModel) Apply(items []newsapi.News) []FilterResult {
	if filter.Input == "" {
		results := make([]FilterResult, len(items))
		for index, item := range items {
			results[index] = FilterResult{News: item}
		}
		return results
	}

	pattern := []rune(strings.ToLower(filter.Input))
	slab := newSlab()

	type scored struct {
		result FilterResult
		score  int
		index  int
	}
	var matches []scored

	for index, item := range items {
		titleMatch := fuzzyMatch(item.Title, pattern, slab)
		if titleMatch.Matched {
			matches = append(matches, scored{
				result: FilterResult{News: item, TitlePositions: titleMatch.Positions},
				score:  titleMatch.Score,
				index:  index,
			})
			continue
		}
		authorMatch := fuzzyMatch(item.DisplayAuthor(), pattern, slab)
		if authorMatch.Matched {
			matches = append(matches, scored{
				result: FilterResult{News: item},
				score:  authorMatch.Score,
				index:  index,
			})
		}
	}

	// Best score first; original order breaks ties so the sort is
	// stable across keystrokes.
	sort.SliceStable(matches, func(a, b int) bool {
		if matches[a].score != matches[b].score {
			return matches[a].score > matches[b].score
		}
		return matches[a].index < matches[b].index
	})

	results := make([]FilterResult, len(matches))
	for index, match := range matches {
		results[index] = match.result
	}
	return results
}

// HandleRune processes a character typed while the filter is active.
// Returns true if the input changed.
func (filter *FilterModel) HandleRune(character rune) bool {
	filter.Input += string(character)
	return true
}

// HandleBackspace removes the last character from the filter input.
// Returns true if the input changed.
func (filter *FilterModel) HandleBackspace() bool {
	if len(filter.Input) == 0 {
		return false
	}
	runes := []rune(filter.Input)
	filter.Input = string(runes[:len(runes)-1])
	return true
}

// Clear resets the filter input and deactivates it.
func (filter *FilterModel) Clear() {
	filter.Input = ""
	filter.Active = false
}

// View renders the filter bar. When active, shows the input with a
// cursor. When inactive with text, shows the filter text dimmed.
// When inactive with no text, returns empty string (hidden).
func (filter *FilterModel) View(theme Theme, width int) string {
	if !filter.Active && filter.Input == "" {
		return ""
	}

	if filter.Active {
		cursor := lipgloss.NewStyle().
			Foreground(theme.HeaderForeground).
			Bold(true).
			Render("▎")
		return lipgloss.NewStyle().
			Foreground(theme.NormalText).
			Width(width).
			Render(" / " + filter.Input + cursor)
	}

	return lipgloss.NewStyle().
		Foreground(theme.FaintText).
		Width(width).
		Render(" filter: " + filter.Input)
}

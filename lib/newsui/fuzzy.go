// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

package newsui

import (
	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// Slab sizes for fzf's scratch allocator, matching fzf's own defaults.
// One slab is reused across all matches in a single filter pass.
const (
	slab16Size = 100 * 1024
	slab32Size = 2048
)

// The matcher needs its scoring scheme selected once before any
// FuzzyMatchV2 call; without this every match reports Start -1.
func init() {
	algo.Init("default")
}

// newSlab allocates a scratch slab for a filter pass.
func newSlab() *util.Slab {
	return util.MakeSlab(slab16Size, slab32Size)
}

// FuzzyResult is the outcome of matching a pattern against one text.
type FuzzyResult struct {
	// Matched is true when every pattern rune was found in order.
	Matched bool

	// Score ranks match quality. Higher is better. Only meaningful
	// when Matched is true.
	Score int

	// Positions are the rune indices in the text that matched,
	// ascending. Used for highlight rendering.
	Positions []int
}

// fuzzyMatch runs fzf's V2 matcher (the Smith-Waterman variant used
// for interactive filtering) case-insensitively. The pattern must
// already be lowercased by the caller.
func fuzzyMatch(text string, pattern []rune, slab *util.Slab) FuzzyResult {
	if len(pattern) == 0 {
		return FuzzyResult{Matched: true}
	}

	chars := util.ToChars([]byte(text))
	result, positions := algo.FuzzyMatchV2(false, true, true, &chars, pattern, true, slab)
	if result.Start < 0 {
		return FuzzyResult{}
	}

	var matched []int
	if positions != nil {
		matched = *positions
		// fzf reports positions in reverse traversal order.
		for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
			matched[i], matched[j] = matched[j], matched[i]
		}
	}
	return FuzzyResult{Matched: true, Score: result.Score, Positions: matched}
}

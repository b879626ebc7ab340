// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

package newsui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/newsroom-foundation/newsroom/lib/newsapi"
)

// generation tags an in-flight fetch. Each new fetch of a collection
// bumps the counter; responses carrying an older generation are
// dropped on arrival. This keeps slow responses from overwriting the
// result of a later fetch, without any request cancellation plumbing.
type generation uint64

// genCounter issues generations for one collection. Owned by the UI
// update loop; not safe for concurrent use.
type genCounter struct {
	current generation
}

// Next bumps the counter and returns the new generation for an
// outgoing fetch.
func (counter *genCounter) Next() generation {
	counter.current++
	return counter.current
}

// Stale reports whether a response generation is out of date.
func (counter *genCounter) Stale(g generation) bool {
	return g != counter.current
}

// newsLoadedMsg delivers a news list fetch result.
type newsLoadedMsg struct {
	gen   generation
	items []newsapi.News
	err   error
}

// commentsLoadedMsg delivers a comment thread fetch result.
type commentsLoadedMsg struct {
	gen      generation
	newsID   int64
	comments []newsapi.Comment
	err      error
}

// mutationScope names the collection a mutation touched, so the
// result handler knows what to refetch on success.
type mutationScope int

const (
	scopeNone mutationScope = iota
	scopeNews
	scopeComments
)

// mutationResultMsg is sent when an asynchronous mutation completes.
// On success the handler refetches the affected collection; on error
// nothing is refetched and the message is displayed in the status
// bar.
type mutationResultMsg struct {
	// op names the mutation for the status bar ("saving comment",
	// "deleting article", ...).
	op string

	// scope selects the collection to refetch after success.
	scope mutationScope

	// commentID is the edit slot to resolve, when the mutation came
	// from an inline comment edit. Zero otherwise.
	commentID int64

	err error
}

// loadNews returns a command that fetches the full news list.
func loadNews(source Source, gen generation, timeout timeoutFunc) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := timeout(context.Background())
		defer cancel()
		items, err := source.ListNews(ctx)
		return newsLoadedMsg{gen: gen, items: items, err: err}
	}
}

// loadComments returns a command that fetches the comment thread for
// one news item.
func loadComments(source Source, newsID int64, gen generation, timeout timeoutFunc) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := timeout(context.Background())
		defer cancel()
		comments, err := source.ListComments(ctx, newsID)
		return commentsLoadedMsg{gen: gen, newsID: newsID, comments: comments, err: err}
	}
}

// timeoutFunc wraps context.WithTimeout with the configured request
// timeout. Injected so tests can run without deadlines.
type timeoutFunc func(context.Context) (context.Context, context.CancelFunc)

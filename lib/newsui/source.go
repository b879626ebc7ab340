// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

package newsui

import (
	"context"

	"github.com/newsroom-foundation/newsroom/lib/newsapi"
)

// Source abstracts read access to the news service for the TUI. A
// *newsapi.Client satisfies it directly; tests use an in-memory fake.
// All methods hit the service: the TUI holds no cache beyond the
// snapshot currently on screen.
type Source interface {
	// ListNews returns all news items, newest first.
	ListNews(ctx context.Context) ([]newsapi.News, error)

	// GetNews returns a single news item by ID.
	GetNews(ctx context.Context, newsID int64) (*newsapi.News, error)

	// ListComments returns the comments on a news item, oldest first.
	ListComments(ctx context.Context, newsID int64) ([]newsapi.Comment, error)
}

// Mutator is an optional interface that Source implementations can
// provide to support mutations. The TUI checks for this via type
// assertion on the source; when absent, all write affordances are
// hidden and the client is read-only.
//
// All methods are one-shot requests. Callers never patch local state
// from the arguments: after a mutation resolves, the affected list is
// refetched so the screen always shows what the service accepted.
type Mutator interface {
	// CreateNews publishes a new article.
	CreateNews(ctx context.Context, draft newsapi.NewsDraft) (*newsapi.News, error)

	// UpdateNews replaces an article's title, content, and cover.
	UpdateNews(ctx context.Context, newsID int64, draft newsapi.NewsDraft) error

	// DeleteNews removes an article and its comments.
	DeleteNews(ctx context.Context, newsID int64) error

	// CreateComment posts a comment on a news item.
	CreateComment(ctx context.Context, newsID int64, text string) (*newsapi.Comment, error)

	// UpdateComment replaces a comment's text. The comment keeps its
	// news item; only the text changes.
	UpdateComment(ctx context.Context, commentID, newsID int64, text string) error

	// DeleteComment removes a comment.
	DeleteComment(ctx context.Context, commentID int64) error
}

// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

package newsapi

import "strconv"

// Author is the short author projection the service embeds in news
// items and comments.
type Author struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Content is the structured body of a news item.
type Content struct {
	Text string `json:"text"`
}

// News is one news item as returned by /news/. AuthorID is the
// ownership anchor: a principal may modify the item iff it is an
// admin or its ID equals AuthorID. IDs are int64 everywhere —
// ownership is never compared across types.
type News struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Content         Content `json:"content"`
	Cover           string  `json:"cover,omitempty"`
	AuthorID        int64   `json:"author_id"`
	Author          *Author `json:"author,omitempty"`
	PublicationDate string  `json:"publication_date,omitempty"`
}

// OwnerID implements authorization.Owned.
func (n News) OwnerID() int64 { return n.AuthorID }

// Comment is one comment on a news item. NewsID is immutable and must
// accompany every update.
type Comment struct {
	ID              int64   `json:"id"`
	NewsID          int64   `json:"news_id"`
	Text            string  `json:"text"`
	AuthorID        int64   `json:"author_id"`
	Author          *Author `json:"author,omitempty"`
	PublicationDate string  `json:"publication_date,omitempty"`
}

// OwnerID implements authorization.Owned.
func (c Comment) OwnerID() int64 { return c.AuthorID }

// DisplayAuthor returns the embedded author name, falling back to the
// numeric ID when the service omitted the author projection.
func (c Comment) DisplayAuthor() string {
	if c.Author != nil && c.Author.Name != "" {
		return c.Author.Name
	}
	return "#" + strconv.FormatInt(c.AuthorID, 10)
}

// DisplayAuthor returns the embedded author name, falling back to the
// numeric ID when the service omitted the author projection.
func (n News) DisplayAuthor() string {
	if n.Author != nil && n.Author.Name != "" {
		return n.Author.Name
	}
	return "#" + strconv.FormatInt(n.AuthorID, 10)
}

// NewsDraft is the request body for creating or updating a news item.
type NewsDraft struct {
	Title   string  `json:"title"`
	Content Content `json:"content"`
	Cover   string  `json:"cover"`
}

// TokenResponse is the body of a successful /auth/login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

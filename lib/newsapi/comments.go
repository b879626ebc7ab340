// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListComments returns the comment thread for one news item.
// Unauthenticated.
func (c *Client) ListComments(ctx context.Context, newsID int64) ([]Comment, error) {
	query := url.Values{}
	query.Set("news_id", strconv.FormatInt(newsID, 10))

	body, err := c.doJSON(ctx, http.MethodGet, "/comments/", nil, query)
	if err != nil {
		return nil, fmt.Errorf("newsapi: listing comments for news %d: %w", newsID, err)
	}

	var items []Comment
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("newsapi: parsing comment list: %w", err)
	}
	return items, nil
}

// CreateComment posts a new comment on a news item. Any authenticated
// principal may comment.
func (c *Client) CreateComment(ctx context.Context, newsID int64, text string) (*Comment, error) {
	request := struct {
		NewsID int64  `json:"news_id"`
		Text   string `json:"text"`
	}{NewsID: newsID, Text: text}

	body, err := c.doJSON(ctx, http.MethodPost, "/comments/", request, nil)
	if err != nil {
		return nil, fmt.Errorf("newsapi: creating comment: %w", err)
	}

	var item Comment
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, fmt.Errorf("newsapi: parsing created comment: %w", err)
	}
	return &item, nil
}

// UpdateComment replaces a comment's text. The immutable news_id must
// accompany the update — the service rejects the request without it.
// Requires owner or admin.
func (c *Client) UpdateComment(ctx context.Context, id, newsID int64, text string) error {
	request := struct {
		NewsID int64  `json:"news_id"`
		Text   string `json:"text"`
	}{NewsID: newsID, Text: text}

	if _, err := c.doJSON(ctx, http.MethodPut, "/comments/"+strconv.FormatInt(id, 10), request, nil); err != nil {
		return fmt.Errorf("newsapi: updating comment %d: %w", id, err)
	}
	return nil
}

// DeleteComment removes a comment. Requires owner or admin.
func (c *Client) DeleteComment(ctx context.Context, id int64) error {
	if _, err := c.doJSON(ctx, http.MethodDelete, "/comments/"+strconv.FormatInt(id, 10), nil, nil); err != nil {
		return fmt.Errorf("newsapi: deleting comment %d: %w", id, err)
	}
	return nil
}

// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// ListNews returns every news item, newest first as ordered by the
// service. Unauthenticated.
func (c *Client) ListNews(ctx context.Context) ([]News, error) {
	body, err := c.doJSON(ctx, http.MethodGet, "/news/", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("newsapi: listing news: %w", err)
	}

	var items []News
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("newsapi: parsing news list: %w", err)
	}
	return items, nil
}

// GetNews returns one news item by ID.
func (c *Client) GetNews(ctx context.Context, id int64) (*News, error) {
	body, err := c.doJSON(ctx, http.MethodGet, "/news/"+strconv.FormatInt(id, 10), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("newsapi: fetching news %d: %w", id, err)
	}

	var item News
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, fmt.Errorf("newsapi: parsing news %d: %w", id, err)
	}
	return &item, nil
}

// CreateNews publishes a news item. Requires a verified or admin
// principal; the service enforces this regardless of what the UI
// offered.
func (c *Client) CreateNews(ctx context.Context, draft NewsDraft) (*News, error) {
	body, err := c.doJSON(ctx, http.MethodPost, "/news/", draft, nil)
	if err != nil {
		return nil, fmt.Errorf("newsapi: creating news: %w", err)
	}

	var item News
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, fmt.Errorf("newsapi: parsing created news: %w", err)
	}
	return &item, nil
}

// UpdateNews replaces the title/content/cover of an existing item.
// Requires owner or admin.
func (c *Client) UpdateNews(ctx context.Context, id int64, draft NewsDraft) error {
	if _, err := c.doJSON(ctx, http.MethodPut, "/news/"+strconv.FormatInt(id, 10), draft, nil); err != nil {
		return fmt.Errorf("newsapi: updating news %d: %w", id, err)
	}
	return nil
}

// DeleteNews removes a news item (and, server-side, its comments).
// Requires owner or admin.
func (c *Client) DeleteNews(ctx context.Context, id int64) error {
	if _, err := c.doJSON(ctx, http.MethodDelete, "/news/"+strconv.FormatInt(id, 10), nil, nil); err != nil {
		return fmt.Errorf("newsapi: deleting news %d: %w", id, err)
	}
	return nil
}

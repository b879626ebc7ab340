// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// Login exchanges credentials for an access token. The endpoint takes
// form-encoded fields named per the OAuth2 password grant: the
// service's "username" field carries the account email.
//
// Failures come back as *APIError; the caller surfaces the server's
// detail verbatim rather than interpreting it.
func (c *Client) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	if username == "" {
		return nil, fmt.Errorf("newsapi: username is required for login")
	}
	if password == "" {
		return nil, fmt.Errorf("newsapi: password is required for login")
	}

	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	body, err := c.doForm(ctx, "/auth/login", form)
	if err != nil {
		return nil, fmt.Errorf("newsapi: login failed: %w", err)
	}

	var tokenResponse TokenResponse
	if err := json.Unmarshal(body, &tokenResponse); err != nil {
		return nil, fmt.Errorf("newsapi: parsing login response: %w", err)
	}
	if tokenResponse.AccessToken == "" {
		return nil, fmt.Errorf("newsapi: login response has no access_token")
	}

	return &tokenResponse, nil
}

// RegisterRequest is the body of /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account. Validation is entirely
// server-enforced: a 422 carries field detail (first message
// surfaced), a 409 means the email is already registered.
// Registration does not log the account in.
func (c *Client) Register(ctx context.Context, request RegisterRequest) error {
	if request.Name == "" || request.Email == "" || request.Password == "" {
		return fmt.Errorf("newsapi: name, email, and password are required for registration")
	}

	if _, err := c.doJSON(ctx, "POST", "/auth/register", request, nil); err != nil {
		return fmt.Errorf("newsapi: registration failed: %w", err)
	}
	return nil
}

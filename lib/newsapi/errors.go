// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

package newsapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a structured error response from the news
// service. Callers can use errors.As to extract it:
//
//	var apiErr *newsapi.APIError
//	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict { ... }
type APIError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Detail is the human-readable error detail from the server.
	// For 422 validation errors this is the first field message;
	// the remaining field-level detail is discarded.
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("newsapi: %d: %s", e.StatusCode, e.Detail)
}

// validationItem is one entry of a 422 validation detail array.
type validationItem struct {
	Message string `json:"msg"`
}

// parseAPIError decodes an error response body into an APIError. The
// service reports errors as {"detail": <string>} for most failures and
// {"detail": [{"loc":..., "msg":..., "type":...}, ...]} for 422
// validation failures. A body that matches neither shape is surfaced
// raw so the user still sees something actionable.
func parseAPIError(statusCode int, body []byte) *APIError {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Detail) == 0 {
		return &APIError{StatusCode: statusCode, Detail: string(body)}
	}

	var message string
	if err := json.Unmarshal(envelope.Detail, &message); err == nil {
		return &APIError{StatusCode: statusCode, Detail: message}
	}

	var items []validationItem
	if err := json.Unmarshal(envelope.Detail, &items); err == nil && len(items) > 0 {
		return &APIError{StatusCode: statusCode, Detail: items[0].Message}
	}

	return &APIError{StatusCode: statusCode, Detail: string(envelope.Detail)}
}

// IsAuthentication reports whether err is a 401 from the service
// (bad credentials, or a token the service no longer accepts).
func IsAuthentication(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsValidation reports whether err is a 422 validation rejection.
func IsValidation(err error) bool {
	return hasStatus(err, http.StatusUnprocessableEntity)
}

// IsConflict reports whether err is a 409 conflict (e.g., an email
// already registered).
func IsConflict(err error) bool {
	return hasStatus(err, http.StatusConflict)
}

// IsForbidden reports whether err is a 403. The UI never offers
// actions the principal lacks, so a 403 indicates the client and
// server disagree about capabilities; it is surfaced generically.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// IsNotFound reports whether err is a 404.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

func hasStatus(err error, statusCode int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == statusCode
}

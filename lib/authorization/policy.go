// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

package authorization

import (
	"github.com/newsroom-foundation/newsroom/lib/session"
)

// Owned is anything with an owning author. News items and comments
// both satisfy it.
type Owned interface {
	// OwnerID returns the user ID of the item's author.
	OwnerID() int64
}

// Decision is the outcome of an authorization check.
type Decision int

const (
	// Deny means the action is not permitted.
	Deny Decision = iota

	// Allow means the action is permitted.
	Allow
)

// String returns "allow" or "deny".
func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// DenyReason describes why an authorization check was denied.
type DenyReason int

const (
	// ReasonAnonymous means there is no authenticated principal.
	ReasonAnonymous DenyReason = iota

	// ReasonNotOwner means the principal is neither the item's author
	// nor an admin.
	ReasonNotOwner

	// ReasonNotVerified means the action requires a verified account.
	ReasonNotVerified
)

// String returns a human-readable reason.
func (r DenyReason) String() string {
	switch r {
	case ReasonAnonymous:
		return "not logged in"
	case ReasonNotOwner:
		return "not the author"
	case ReasonNotVerified:
		return "account not verified"
	default:
		return "unknown"
	}
}

// Result describes the outcome of an authorization check. The reason
// feeds the status bar when a key press is rejected.
type Result struct {
	// Decision is Allow or Deny.
	Decision Decision

	// Reason describes why the check was denied. Only meaningful when
	// Decision is Deny.
	Reason DenyReason
}

// Allowed reports whether the decision is Allow.
func (r Result) Allowed() bool {
	return r.Decision == Allow
}

// ModifyCheck checks whether the principal may edit or delete the
// item: admins may modify anything, authors their own items. Identity
// comparison is by numeric user ID; display names play no part.
func ModifyCheck(principal *session.Principal, item Owned) Result {
	if principal == nil {
		return Result{Decision: Deny, Reason: ReasonAnonymous}
	}
	if principal.Admin || principal.ID == item.OwnerID() {
		return Result{Decision: Allow}
	}
	return Result{Decision: Deny, Reason: ReasonNotOwner}
}

// CanModify reports whether the principal may edit or delete the item.
// Use ModifyCheck when the deny reason is needed for user feedback.
func CanModify(principal *session.Principal, item Owned) bool {
	return ModifyCheck(principal, item).Allowed()
}

// CreateNewsCheck checks whether the principal may publish news:
// verified accounts and admins may, unverified accounts may not.
// Admin status does not require verification.
func CreateNewsCheck(principal *session.Principal) Result {
	if principal == nil {
		return Result{Decision: Deny, Reason: ReasonAnonymous}
	}
	if principal.Admin || principal.Verified {
		return Result{Decision: Allow}
	}
	return Result{Decision: Deny, Reason: ReasonNotVerified}
}

// CanCreateNews reports whether the principal may publish news.
func CanCreateNews(principal *session.Principal) bool {
	return CreateNewsCheck(principal).Allowed()
}

// CanComment reports whether the principal may post comments. Any
// authenticated principal may, verified or not.
func CanComment(principal *session.Principal) bool {
	return principal != nil
}

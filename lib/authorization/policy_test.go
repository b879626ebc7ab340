// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

package authorization

import (
	"testing"

	"github.com/newsroom-foundation/newsroom/lib/session"
)

type ownedBy int64

func (o ownedBy) OwnerID() int64 { return int64(o) }

func TestCanModify(t *testing.T) {
	tests := []struct {
		name      string
		principal *session.Principal
		owner     int64
		want      bool
		reason    DenyReason
	}{
		{
			name:      "anonymous",
			principal: nil,
			owner:     1,
			want:      false,
			reason:    ReasonAnonymous,
		},
		{
			name:      "author",
			principal: &session.Principal{ID: 1},
			owner:     1,
			want:      true,
		},
		{
			name:      "other user",
			principal: &session.Principal{ID: 2},
			owner:     1,
			want:      false,
			reason:    ReasonNotOwner,
		},
		{
			name:      "admin on someone else's item",
			principal: &session.Principal{ID: 2, Admin: true},
			owner:     1,
			want:      true,
		},
		{
			name:      "verified but not owner",
			principal: &session.Principal{ID: 2, Verified: true},
			owner:     1,
			want:      false,
			reason:    ReasonNotOwner,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := ModifyCheck(test.principal, ownedBy(test.owner))
			if result.Allowed() != test.want {
				t.Errorf("ModifyCheck = %v, want allowed=%v", result.Decision, test.want)
			}
			if !test.want && result.Reason != test.reason {
				t.Errorf("Reason = %v, want %v", result.Reason, test.reason)
			}
			if got := CanModify(test.principal, ownedBy(test.owner)); got != test.want {
				t.Errorf("CanModify = %v, want %v", got, test.want)
			}
		})
	}
}

func TestCanCreateNews(t *testing.T) {
	tests := []struct {
		name      string
		principal *session.Principal
		want      bool
		reason    DenyReason
	}{
		{name: "anonymous", principal: nil, want: false, reason: ReasonAnonymous},
		{name: "unverified", principal: &session.Principal{ID: 1}, want: false, reason: ReasonNotVerified},
		{name: "verified", principal: &session.Principal{ID: 1, Verified: true}, want: true},
		{name: "admin unverified", principal: &session.Principal{ID: 1, Admin: true}, want: true},
		{name: "admin verified", principal: &session.Principal{ID: 1, Admin: true, Verified: true}, want: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := CreateNewsCheck(test.principal)
			if result.Allowed() != test.want {
				t.Errorf("CreateNewsCheck = %v, want allowed=%v", result.Decision, test.want)
			}
			if !test.want && result.Reason != test.reason {
				t.Errorf("Reason = %v, want %v", result.Reason, test.reason)
			}
		})
	}
}

func TestCanComment(t *testing.T) {
	if CanComment(nil) {
		t.Error("anonymous user allowed to comment")
	}
	if !CanComment(&session.Principal{ID: 1}) {
		t.Error("unverified user blocked from commenting")
	}
}

func TestDecisionStrings(t *testing.T) {
	if Allow.String() != "allow" || Deny.String() != "deny" {
		t.Errorf("Decision strings = %q, %q", Allow, Deny)
	}
	if ReasonNotVerified.String() != "account not verified" {
		t.Errorf("ReasonNotVerified = %q", ReasonNotVerified)
	}
}

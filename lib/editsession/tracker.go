// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

package editsession

import (
	"errors"
)

var (
	// ErrNotEditing is returned when an operation needs an open edit
	// for the item and there is none.
	ErrNotEditing = errors.New("editsession: item is not being edited")

	// ErrSaving is returned when an operation is rejected because a
	// save for the item is in flight.
	ErrSaving = errors.New("editsession: save in flight")
)

// State is the edit state of a single item.
type State int

const (
	// Viewing means the item has no open edit.
	Viewing State = iota

	// Editing means the item has an open edit with a mutable draft.
	Editing

	// Saving means the item's draft has been handed off to a save
	// request that has not resolved yet. The draft is frozen.
	Saving
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Saving:
		return "saving"
	default:
		return "viewing"
	}
}

// edit is one open edit slot.
type edit struct {
	itemID   int64
	draft    string
	original string
	state    State
}

// Tracker tracks open edits by item ID.
type Tracker struct {
	maxOpen int
	edits   map[int64]*edit
	order   []int64
}

// NewTracker creates a Tracker that allows maxOpen concurrent edits.
// Values below 1 are treated as 1.
func NewTracker(maxOpen int) *Tracker {
	if maxOpen < 1 {
		maxOpen = 1
	}
	return &Tracker{
		maxOpen: maxOpen,
		edits:   make(map[int64]*edit),
	}
}

// Begin opens an edit for the item, seeding the draft with the item's
// current text. If the item is already being edited the call is a
// no-op and the existing draft is kept. If the tracker is at capacity
// the oldest open edit is evicted and its draft discarded, even if
// that edit has a save in flight (the response will find no open edit
// and be dropped).
func (t *Tracker) Begin(itemID int64, currentText string) {
	if _, open := t.edits[itemID]; open {
		return
	}
	for len(t.edits) >= t.maxOpen {
		t.evictOldest()
	}
	t.edits[itemID] = &edit{
		itemID:   itemID,
		draft:    currentText,
		original: currentText,
		state:    Editing,
	}
	t.order = append(t.order, itemID)
}

// StateOf returns the item's edit state. Items with no open edit are
// Viewing.
func (t *Tracker) StateOf(itemID int64) State {
	if e, open := t.edits[itemID]; open {
		return e.state
	}
	return Viewing
}

// Draft returns the item's draft text. The second return is false when
// the item has no open edit.
func (t *Tracker) Draft(itemID int64) (string, bool) {
	e, open := t.edits[itemID]
	if !open {
		return "", false
	}
	return e.draft, true
}

// Dirty reports whether the item's draft differs from the text it was
// seeded with.
func (t *Tracker) Dirty(itemID int64) bool {
	e, open := t.edits[itemID]
	return open && e.draft != e.original
}

// UpdateDraft replaces the item's draft text. Rejected while a save is
// in flight so the UI cannot mutate text the request already captured.
func (t *Tracker) UpdateDraft(itemID int64, text string) error {
	e, open := t.edits[itemID]
	if !open {
		return ErrNotEditing
	}
	if e.state == Saving {
		return ErrSaving
	}
	e.draft = text
	return nil
}

// Cancel closes the item's edit and discards the draft. Canceling an
// item that is not being edited is a no-op. Canceling during Saving
// drops the slot; the save response will find nothing to resolve.
func (t *Tracker) Cancel(itemID int64) {
	t.remove(itemID)
}

// BeginSave freezes the item's draft and returns it for the save
// request. The item stays in Saving until FinishSave resolves it.
func (t *Tracker) BeginSave(itemID int64) (string, error) {
	e, open := t.edits[itemID]
	if !open {
		return "", ErrNotEditing
	}
	if e.state == Saving {
		return "", ErrSaving
	}
	e.state = Saving
	return e.draft, nil
}

// FinishSave resolves an in-flight save. On success the edit closes
// and the draft is discarded. On failure the item returns to Editing
// with the draft intact so the user can retry or revise. Resolving an
// item with no open edit (evicted or canceled mid-save) is a no-op.
func (t *Tracker) FinishSave(itemID int64, saveErr error) {
	e, open := t.edits[itemID]
	if !open || e.state != Saving {
		return
	}
	if saveErr != nil {
		e.state = Editing
		return
	}
	t.remove(itemID)
}

// Open returns the IDs of all open edits, oldest first.
func (t *Tracker) Open() []int64 {
	out := make([]int64, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of open edits.
func (t *Tracker) Len() int {
	return len(t.edits)
}

func (t *Tracker) evictOldest() {
	if len(t.order) == 0 {
		return
	}
	t.remove(t.order[0])
}

func (t *Tracker) remove(itemID int64) {
	if _, open := t.edits[itemID]; !open {
		return
	}
	delete(t.edits, itemID)
	for i, id := range t.order {
		if id == itemID {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

package newsui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/newsroom-foundation/newsroom/lib/editsession"
	"github.com/newsroom-foundation/newsroom/lib/newsapi"
	"github.com/newsroom-foundation/newsroom/lib/session"
)

// fakeService implements Source and Mutator over in-memory fixtures,
// recording every call.
type fakeService struct {
	news     []newsapi.News
	comments map[int64][]newsapi.Comment

	listCalls     int
	commentCalls  []int64
	updated       map[int64]string
	deletedNews   []int64
	failNextSave  error
	failNextFetch error
}

func newFakeService() *fakeService {
	return &fakeService{
		news: []newsapi.News{
			{ID: 1, Title: "Go 1.26 released", Content: newsapi.Content{Text: "Details inside."}, AuthorID: 1},
			{ID: 2, Title: "Terminal UI patterns", Content: newsapi.Content{Text: "Long form."}, AuthorID: 2},
		},
		comments: map[int64][]newsapi.Comment{
			1: {
				{ID: 10, NewsID: 1, Text: "first", AuthorID: 1},
				{ID: 11, NewsID: 1, Text: "second", AuthorID: 2},
			},
			2: {
				{ID: 20, NewsID: 2, Text: "nice", AuthorID: 2},
			},
		},
		updated: make(map[int64]string),
	}
}

func (f *fakeService) ListNews(ctx context.Context) ([]newsapi.News, error) {
	f.listCalls++
	if f.failNextFetch != nil {
		err := f.failNextFetch
		f.failNextFetch = nil
		return nil, err
	}
	return f.news, nil
}

func (f *fakeService) GetNews(ctx context.Context, newsID int64) (*newsapi.News, error) {
	for _, item := range f.news {
		if item.ID == newsID {
			return &item, nil
		}
	}
	return nil, &newsapi.APIError{StatusCode: 404, Detail: "not found"}
}

func (f *fakeService) ListComments(ctx context.Context, newsID int64) ([]newsapi.Comment, error) {
	f.commentCalls = append(f.commentCalls, newsID)
	return f.comments[newsID], nil
}

func (f *fakeService) CreateNews(ctx context.Context, draft newsapi.NewsDraft) (*newsapi.News, error) {
	item := newsapi.News{ID: int64(len(f.news) + 1), Title: draft.Title, Content: draft.Content}
	f.news = append(f.news, item)
	return &item, nil
}

func (f *fakeService) UpdateNews(ctx context.Context, newsID int64, draft newsapi.NewsDraft) error {
	return nil
}

func (f *fakeService) DeleteNews(ctx context.Context, newsID int64) error {
	f.deletedNews = append(f.deletedNews, newsID)
	return nil
}

func (f *fakeService) CreateComment(ctx context.Context, newsID int64, text string) (*newsapi.Comment, error) {
	comment := newsapi.Comment{ID: 99, NewsID: newsID, Text: text}
	f.comments[newsID] = append(f.comments[newsID], comment)
	return &comment, nil
}

func (f *fakeService) UpdateComment(ctx context.Context, commentID, newsID int64, text string) error {
	if f.failNextSave != nil {
		err := f.failNextSave
		f.failNextSave = nil
		return err
	}
	f.updated[commentID] = text
	return nil
}

func (f *fakeService) DeleteComment(ctx context.Context, commentID int64) error {
	return nil
}

// newTestModel builds a sized model with news and comments already
// loaded for article 1.
func newTestModel(t *testing.T, service *fakeService, principal *session.Principal) Model {
	t.Helper()
	model := NewModel(Config{Source: service, Principal: principal})

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model = updated.(Model)

	cmd := model.Init()
	updated, followUp := model.Update(cmd())
	model = updated.(Model)

	// The news load schedules a comment fetch for the initially
	// selected article; run it so the thread is populated.
	if followUp != nil {
		updated, _ = model.Update(followUp())
		model = updated.(Model)
	}
	return model
}

func pressKey(t *testing.T, model Model, message tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := model.Update(message)
	return updated.(Model), cmd
}

func pressRune(t *testing.T, model Model, character rune) (Model, tea.Cmd) {
	t.Helper()
	return pressKey(t, model, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{character}})
}

func TestInitLoadsNews(t *testing.T) {
	service := newFakeService()
	model := newTestModel(t, service, nil)

	if service.listCalls != 1 {
		t.Fatalf("listCalls = %d, want 1", service.listCalls)
	}
	if len(model.items) != 2 {
		t.Fatalf("items = %d, want 2", len(model.items))
	}
	if model.selectedID != 1 {
		t.Fatalf("selectedID = %d, want 1", model.selectedID)
	}
}

func TestInitialResponseNotStale(t *testing.T) {
	service := newFakeService()
	model := NewModel(Config{Source: service})

	sized, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model = sized.(Model)

	// Init runs on a copy of the model, so the first response must
	// land against the generation the constructor claimed.
	cmd := model.Init()
	updated, _ := model.Update(cmd())
	model = updated.(Model)

	if len(model.items) != 2 {
		t.Fatalf("initial response dropped: %d items, want 2", len(model.items))
	}
	if model.loading {
		t.Fatal("still loading after the initial response")
	}
}

func TestStaleNewsResponseDropped(t *testing.T) {
	service := newFakeService()
	model := newTestModel(t, service, nil)

	staleGen := model.listGen.current

	// A refresh bumps the generation past the in-flight response.
	model, cmd := pressRune(t, model, 'r')
	if cmd == nil {
		t.Fatal("refresh produced no command")
	}

	updated, _ := model.Update(newsLoadedMsg{
		gen:   staleGen,
		items: []newsapi.News{{ID: 77, Title: "stale"}},
	})
	model = updated.(Model)

	if len(model.items) != 2 || model.items[0].News.ID != 1 {
		t.Fatal("stale response replaced the current list")
	}

	// The fresh response still lands.
	updated, _ = model.Update(cmd())
	model = updated.(Model)
	if !model.loading && len(model.items) != 2 {
		t.Fatalf("fresh response not applied: %d items", len(model.items))
	}
}

func TestSelectionChangeRefetchesComments(t *testing.T) {
	service := newFakeService()
	model := newTestModel(t, service, nil)

	model, cmd := pressRune(t, model, 'j')
	if model.selectedID != 2 {
		t.Fatalf("selectedID = %d, want 2", model.selectedID)
	}
	if cmd == nil {
		t.Fatal("selection change produced no comment fetch")
	}

	updated, _ := model.Update(cmd())
	model = updated.(Model)
	if model.commentsFor != 2 {
		t.Fatalf("commentsFor = %d, want 2", model.commentsFor)
	}
	if len(model.comments) != 1 || model.comments[0].ID != 20 {
		t.Fatalf("unexpected thread: %+v", model.comments)
	}
	want := []int64{1, 2}
	if len(service.commentCalls) != len(want) {
		t.Fatalf("commentCalls = %v, want %v", service.commentCalls, want)
	}
}

func TestAnonymousCannotComment(t *testing.T) {
	service := newFakeService()
	model := newTestModel(t, service, nil)

	model, _ = pressRune(t, model, 'c')
	if model.focusRegion == FocusComposer {
		t.Fatal("anonymous principal opened the composer")
	}
	if model.statusNotice == "" {
		t.Fatal("expected a status notice explaining the denial")
	}
}

func TestEditCommentRequiresOwnership(t *testing.T) {
	service := newFakeService()
	principal := &session.Principal{ID: 5} // Neither author nor admin.
	model := newTestModel(t, service, principal)

	model, _ = pressRune(t, model, 'e')
	if model.focusRegion == FocusCommentEdit {
		t.Fatal("non-owner entered edit mode")
	}
	if model.edits.StateOf(10) != editsession.Viewing {
		t.Fatal("edit slot opened despite denial")
	}
}

func TestAdminCanEditAnyComment(t *testing.T) {
	service := newFakeService()
	principal := &session.Principal{ID: 99, Admin: true}
	model := newTestModel(t, service, principal)

	model, _ = pressRune(t, model, 'e')
	if model.focusRegion != FocusCommentEdit {
		t.Fatalf("focus = %v, want FocusCommentEdit", model.focusRegion)
	}
	if model.edits.StateOf(10) != editsession.Editing {
		t.Fatal("edit slot not opened for admin")
	}
}

func TestInlineEditSaveLifecycle(t *testing.T) {
	service := newFakeService()
	principal := &session.Principal{ID: 1} // Author of comment 10.
	model := newTestModel(t, service, principal)

	model, _ = pressRune(t, model, 'e')
	if draft, _ := model.edits.Draft(10); draft != "first" {
		t.Fatalf("draft seeded with %q, want %q", draft, "first")
	}

	model, _ = pressRune(t, model, '!')
	if draft, _ := model.edits.Draft(10); draft != "first!" {
		t.Fatalf("draft = %q after keystroke", draft)
	}

	model, cmd := pressKey(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("save produced no command")
	}
	if model.edits.StateOf(10) != editsession.Saving {
		t.Fatalf("state = %v, want Saving", model.edits.StateOf(10))
	}

	updated, _ := model.Update(mutationResultMsg{op: "saving comment", commentID: 10})
	model = updated.(Model)
	if model.edits.StateOf(10) != editsession.Viewing {
		t.Fatal("edit slot not closed after successful save")
	}
	if model.focusRegion != FocusDetail {
		t.Fatalf("focus = %v, want FocusDetail", model.focusRegion)
	}
}

func TestFailedSaveRetainsDraft(t *testing.T) {
	service := newFakeService()
	principal := &session.Principal{ID: 1}
	model := newTestModel(t, service, principal)

	model, _ = pressRune(t, model, 'e')
	model, _ = pressRune(t, model, '?')
	model, _ = pressKey(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	updated, _ := model.Update(mutationResultMsg{
		op:        "saving comment",
		commentID: 10,
		err:       errors.New("service unavailable"),
	})
	model = updated.(Model)

	if model.edits.StateOf(10) != editsession.Editing {
		t.Fatalf("state = %v, want Editing after failed save", model.edits.StateOf(10))
	}
	if draft, _ := model.edits.Draft(10); draft != "first?" {
		t.Fatalf("draft = %q, want revised text retained", draft)
	}
	if model.focusRegion != FocusCommentEdit {
		t.Fatal("focus left the edit after a failed save")
	}
	if model.statusError == "" {
		t.Fatal("failed save produced no status error")
	}
}

func TestFailedSaveDoesNotRefetch(t *testing.T) {
	service := newFakeService()
	principal := &session.Principal{ID: 1}
	model := newTestModel(t, service, principal)

	model, _ = pressRune(t, model, 'e')
	model, _ = pressRune(t, model, '!')
	service.failNextSave = errors.New("service unavailable")

	model, saveCmd := pressKey(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if saveCmd == nil {
		t.Fatal("enter produced no save command")
	}

	fetchesBefore := len(service.commentCalls)
	updated, _ := model.Update(saveCmd())
	model = updated.(Model)

	if len(service.commentCalls) != fetchesBefore {
		t.Fatal("failed save triggered a comment refetch")
	}
	if model.edits.StateOf(10) != editsession.Editing {
		t.Fatalf("state = %v, want Editing after failed save", model.edits.StateOf(10))
	}
	if draft, _ := model.edits.Draft(10); draft != "first!" {
		t.Fatalf("draft = %q, want revised text retained", draft)
	}
}

func TestSuccessfulSaveRefetchesComments(t *testing.T) {
	service := newFakeService()
	principal := &session.Principal{ID: 1}
	model := newTestModel(t, service, principal)

	model, _ = pressRune(t, model, 'e')
	model, _ = pressRune(t, model, '!')

	model, saveCmd := pressKey(t, model, tea.KeyMsg{Type: tea.KeyEnter})
	if saveCmd == nil {
		t.Fatal("enter produced no save command")
	}

	fetchesBefore := len(service.commentCalls)
	updated, refetch := model.Update(saveCmd())
	model = updated.(Model)
	if refetch == nil {
		t.Fatal("successful save produced no refetch")
	}
	updated, _ = model.Update(refetch())
	model = updated.(Model)

	if len(service.commentCalls) != fetchesBefore+1 {
		t.Fatalf("commentCalls = %d, want %d", len(service.commentCalls), fetchesBefore+1)
	}
	if service.updated[10] != "first!" {
		t.Fatalf("updated[10] = %q, want %q", service.updated[10], "first!")
	}
	if model.edits.StateOf(10) != editsession.Viewing {
		t.Fatalf("state = %v, want Viewing after save", model.edits.StateOf(10))
	}
}

func TestEscapeCancelsEdit(t *testing.T) {
	service := newFakeService()
	principal := &session.Principal{ID: 1}
	model := newTestModel(t, service, principal)

	model, _ = pressRune(t, model, 'e')
	model, _ = pressRune(t, model, 'x')
	model, _ = pressKey(t, model, tea.KeyMsg{Type: tea.KeyEscape})

	if model.edits.StateOf(10) != editsession.Viewing {
		t.Fatal("escape did not discard the edit")
	}
	if model.focusRegion != FocusDetail {
		t.Fatalf("focus = %v, want FocusDetail", model.focusRegion)
	}
	if len(service.updated) != 0 {
		t.Fatalf("cancelled edit reached the service: %v", service.updated)
	}
}

func TestHelpLineGatesAffordances(t *testing.T) {
	service := newFakeService()

	anonymous := newTestModel(t, service, nil)
	help := anonymous.helpLine()
	if strings.Contains(help, "comment") || strings.Contains(help, "article") {
		t.Fatalf("anonymous help advertises mutations: %q", help)
	}

	admin := newTestModel(t, service, &session.Principal{ID: 99, Admin: true})
	help = admin.helpLine()
	for _, want := range []string{"c comment", "e/d edit/del comment", "N new article", "E/D edit/del article"} {
		if !strings.Contains(help, want) {
			t.Fatalf("admin help missing %q: %q", want, help)
		}
	}

	unverified := newTestModel(t, service, &session.Principal{ID: 5})
	help = unverified.helpLine()
	if !strings.Contains(help, "c comment") {
		t.Fatalf("authenticated help missing comment affordance: %q", help)
	}
	if strings.Contains(help, "N new article") {
		t.Fatalf("unverified help advertises publishing: %q", help)
	}
}

func TestSecondEditEvictsFirst(t *testing.T) {
	service := newFakeService()
	principal := &session.Principal{ID: 99, Admin: true}
	model := newTestModel(t, service, principal)

	model, _ = pressRune(t, model, 'e')
	model, _ = pressKey(t, model, tea.KeyMsg{Type: tea.KeyEscape})
	if model.focusRegion != FocusDetail {
		t.Fatalf("focus = %v after escape, want FocusDetail", model.focusRegion)
	}

	// Move to the second comment and start another edit. With the
	// default single slot the first draft would be evicted had it
	// still been open.
	model, _ = pressRune(t, model, 'n')
	model, _ = pressRune(t, model, 'e')

	if model.edits.StateOf(11) != editsession.Editing {
		t.Fatalf("second comment not editing: %v", model.edits.StateOf(11))
	}
	if model.edits.Len() != 1 {
		t.Fatalf("open edits = %d, want 1", model.edits.Len())
	}
}

func TestDeleteNewsConfirmFlow(t *testing.T) {
	service := newFakeService()
	principal := &session.Principal{ID: 1} // Author of article 1.
	model := newTestModel(t, service, principal)

	model, _ = pressRune(t, model, 'D')
	if model.focusRegion != FocusConfirm || model.confirm == nil {
		t.Fatal("delete did not enter confirmation")
	}

	// Anything but y aborts.
	model, cmd := pressRune(t, model, 'n')
	if cmd != nil {
		t.Fatal("declined confirmation still produced a command")
	}
	if model.confirm != nil || model.focusRegion != FocusList {
		t.Fatal("declined confirmation left confirm state behind")
	}

	model, _ = pressRune(t, model, 'D')
	model, cmd = pressRune(t, model, 'y')
	if cmd == nil {
		t.Fatal("confirmed delete produced no command")
	}
}

func TestDeleteNewsDeniedForNonOwner(t *testing.T) {
	service := newFakeService()
	principal := &session.Principal{ID: 5}
	model := newTestModel(t, service, principal)

	model, _ = pressRune(t, model, 'D')
	if model.focusRegion == FocusConfirm {
		t.Fatal("non-owner reached the delete confirmation")
	}
	if model.statusNotice == "" {
		t.Fatal("expected a denial notice")
	}
}

func TestUnverifiedCannotComposeNews(t *testing.T) {
	service := newFakeService()
	principal := &session.Principal{ID: 5}
	model := newTestModel(t, service, principal)

	model, _ = pressRune(t, model, 'N')
	if model.focusRegion == FocusComposer {
		t.Fatal("unverified principal opened the article composer")
	}
}

func TestVerifiedComposesNews(t *testing.T) {
	service := newFakeService()
	principal := &session.Principal{ID: 5, Verified: true}
	model := newTestModel(t, service, principal)

	model, _ = pressRune(t, model, 'N')
	if model.focusRegion != FocusComposer {
		t.Fatalf("focus = %v, want FocusComposer", model.focusRegion)
	}
	if model.composer == nil || !model.composer.article {
		t.Fatal("article composer not opened")
	}
}

func TestFilterNarrowsAndRestores(t *testing.T) {
	service := newFakeService()
	model := newTestModel(t, service, nil)

	model, _ = pressRune(t, model, '/')
	if model.focusRegion != FocusFilter {
		t.Fatalf("focus = %v, want FocusFilter", model.focusRegion)
	}

	for _, character := range "terminal" {
		model, _ = pressRune(t, model, character)
	}
	if len(model.items) != 1 || model.items[0].News.ID != 2 {
		t.Fatalf("filter kept %d items, want article 2 only", len(model.items))
	}

	// Escape with text clears the filter but stays in filter mode.
	model, _ = pressKey(t, model, tea.KeyMsg{Type: tea.KeyEscape})
	if len(model.items) != 2 {
		t.Fatal("clearing the filter did not restore the list")
	}
	if model.focusRegion != FocusFilter {
		t.Fatal("first escape should stay in filter mode")
	}

	model, _ = pressKey(t, model, tea.KeyMsg{Type: tea.KeyEscape})
	if model.focusRegion == FocusFilter {
		t.Fatal("second escape should leave filter mode")
	}
}

func TestStatusFadeTokenIgnoresOldFades(t *testing.T) {
	service := newFakeService()
	model := newTestModel(t, service, nil)

	updated, _ := model.showNotice("first")
	model = updated.(Model)
	oldToken := model.statusToken

	updated, _ = model.showNotice("second")
	model = updated.(Model)

	updated, _ = model.Update(statusFadeMsg{token: oldToken})
	model = updated.(Model)
	if model.statusNotice != "second" {
		t.Fatalf("old fade cleared the newer notice: %q", model.statusNotice)
	}

	updated, _ = model.Update(statusFadeMsg{token: model.statusToken})
	model = updated.(Model)
	if model.statusNotice != "" {
		t.Fatal("current fade did not clear the notice")
	}
}

func TestViewRendersWithoutPanic(t *testing.T) {
	service := newFakeService()
	model := newTestModel(t, service, &session.Principal{ID: 1, Admin: true})

	view := model.View()
	if view == "" {
		t.Fatal("empty view")
	}

	model, _ = pressRune(t, model, 'e')
	if view = model.View(); view == "" {
		t.Fatal("empty view during inline edit")
	}

	model, _ = pressKey(t, model, tea.KeyMsg{Type: tea.KeyEscape})
	model, _ = pressRune(t, model, 'N')
	if view = model.View(); view == "" {
		t.Fatal("empty view with composer overlay")
	}
}

// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

package newsui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/newsroom-foundation/newsroom/lib/authorization"
	"github.com/newsroom-foundation/newsroom/lib/editsession"
	"github.com/newsroom-foundation/newsroom/lib/newsapi"
	"github.com/newsroom-foundation/newsroom/lib/session"
)

// FocusRegion identifies where keyboard input routes.
type FocusRegion int

const (
	// FocusList means navigation keys move the news list cursor.
	FocusList FocusRegion = iota
	// FocusDetail means navigation keys scroll the article and move
	// the comment cursor.
	FocusDetail
	// FocusFilter means keystrokes go to the filter input.
	FocusFilter
	// FocusComposer means the composer modal is active and consumes
	// all input until submit or cancel.
	FocusComposer
	// FocusCommentEdit means a comment is being edited in place.
	// Character input modifies the draft, enter saves, escape cancels.
	FocusCommentEdit
	// FocusConfirm means a delete confirmation is pending. Only y/n
	// and escape are accepted.
	FocusConfirm
)

// statusFadeMsg clears a status bar notice after the fade delay. The
// token matches the notice it was scheduled for, so an old fade never
// clears a newer message.
type statusFadeMsg struct {
	token int
}

// composerKind says what the open composer submits to.
type composerKind int

const (
	composerNewComment composerKind = iota
	composerNewArticle
	composerEditArticle
)

// confirmState is a pending destructive action awaiting y/n.
type confirmState struct {
	prompt  string
	confirm tea.Cmd
}

// Config assembles a Model.
type Config struct {
	// Source provides news data. If it also implements Mutator,
	// write affordances are enabled.
	Source Source

	// Principal is the authenticated user, or nil for anonymous
	// read-only browsing.
	Principal *session.Principal

	Theme Theme
	Keys  KeyMap

	// MaxOpenEdits caps concurrent inline edits. Zero means one.
	MaxOpenEdits int

	// StatusFade is how long status notices stay visible. Zero means
	// five seconds.
	StatusFade time.Duration

	// RequestTimeout bounds each service request. Zero means no
	// deadline.
	RequestTimeout time.Duration
}

// Model is the top-level bubbletea model for the news viewer.
type Model struct {
	source    Source
	mutator   Mutator // nil when the source is read-only
	principal *session.Principal
	theme     Theme
	keys      KeyMap

	width  int
	height int
	ready  bool

	// List state. allNews is the last fetched snapshot; items is the
	// filtered view of it.
	filter       FilterModel
	allNews      []newsapi.News
	items        []FilterResult
	cursor       int
	scrollOffset int
	selectedID   int64 // Stable focus: track selection by news ID.
	loading      bool

	// Detail pane: rendered article plus comment thread.
	focusRegion   FocusRegion
	priorFocus    FocusRegion // Saved focus when entering filter mode.
	detailView    viewport.Model
	comments      []newsapi.Comment
	commentCursor int
	commentsFor   int64 // News ID the loaded comments belong to.

	// Inline comment editing.
	edits      *editsession.Tracker
	editTarget int64 // Comment ID currently receiving edit keystrokes.

	// Composer modal.
	composer       *Composer
	composerMode   composerKind
	composerTarget int64 // News ID for composerEditArticle.

	// Pending delete confirmation.
	confirm *confirmState

	// Fetch generations for stale-response dropping.
	listGen     genCounter
	commentsGen genCounter

	// Status bar.
	statusError  string
	statusNotice string
	statusToken  int
	statusFade   time.Duration

	timeout timeoutFunc
}

// NewModel creates a Model from the config. The first news fetch is
// issued from Init.
func NewModel(config Config) Model {
	theme := config.Theme
	if theme == (Theme{}) {
		theme = DefaultTheme
	}
	maxOpen := config.MaxOpenEdits
	if maxOpen < 1 {
		maxOpen = 1
	}
	fade := config.StatusFade
	if fade <= 0 {
		fade = 5 * time.Second
	}

	timeout := func(ctx context.Context) (context.Context, context.CancelFunc) {
		if config.RequestTimeout <= 0 {
			return context.WithCancel(ctx)
		}
		return context.WithTimeout(ctx, config.RequestTimeout)
	}

	model := Model{
		source:     config.Source,
		principal:  config.Principal,
		theme:      theme,
		keys:       config.Keys,
		edits:      editsession.NewTracker(maxOpen),
		statusFade: fade,
		timeout:    timeout,
		loading:    true,
	}
	if model.keys.Quit.Keys() == nil {
		model.keys = DefaultKeyMap
	}
	model.mutator, _ = config.Source.(Mutator)

	// Claim the generation for the initial fetch here: Init runs on a
	// copy of the model, so a counter bump there would be lost and the
	// first response dropped as stale.
	model.listGen.Next()
	return model
}

// Init implements tea.Model: fetch the news list under the generation
// claimed in NewModel.
func (model Model) Init() tea.Cmd {
	return loadNews(model.source, model.listGen.current, model.timeout)
}

// Update implements tea.Model.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		switch model.focusRegion {
		case FocusFilter:
			return model.handleFilterKeys(message)
		case FocusComposer:
			return model.handleComposerKeys(message)
		case FocusCommentEdit:
			return model.handleCommentEditKeys(message)
		case FocusConfirm:
			return model.handleConfirmKeys(message)
		}
		return model.handleGlobalKeys(message)

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		model.resizePanes()
		model.syncDetail()

	case newsLoadedMsg:
		return model.handleNewsLoaded(message)

	case commentsLoadedMsg:
		return model.handleCommentsLoaded(message)

	case mutationResultMsg:
		return model.handleMutationResult(message)

	case statusFadeMsg:
		if message.token == model.statusToken {
			model.statusError = ""
			model.statusNotice = ""
		}

	case logRecordMsg:
		if message.level >= slog.LevelError {
			return model.showError(message.summary)
		}
		return model.showNotice(message.summary)
	}
	return model, nil
}

// --- Fetch handling ---

func (model Model) handleNewsLoaded(message newsLoadedMsg) (tea.Model, tea.Cmd) {
	if model.listGen.Stale(message.gen) {
		return model, nil
	}
	model.loading = false
	if message.err != nil {
		return model.showError("loading news: " + message.err.Error())
	}

	model.allNews = message.items
	model.applyFilter()
	model.restoreSelection()
	model.ensureCursorVisible()
	return model.syncDetailCmd()
}

func (model Model) handleCommentsLoaded(message commentsLoadedMsg) (tea.Model, tea.Cmd) {
	if model.commentsGen.Stale(message.gen) {
		return model, nil
	}
	if message.err != nil {
		return model.showError("loading comments: " + message.err.Error())
	}
	model.comments = message.comments
	model.commentsFor = message.newsID
	if model.commentCursor >= len(model.comments) {
		model.commentCursor = len(model.comments) - 1
	}
	if model.commentCursor < 0 {
		model.commentCursor = 0
	}
	model.syncDetail()
	return model, nil
}

func (model Model) handleMutationResult(message mutationResultMsg) (tea.Model, tea.Cmd) {
	if message.commentID != 0 {
		model.edits.FinishSave(message.commentID, message.err)
		if message.err != nil {
			// Draft survives: the user stays in the edit and can
			// retry or revise.
			model.focusRegion = FocusCommentEdit
			model.editTarget = message.commentID
		} else if model.editTarget == message.commentID {
			model.editTarget = 0
			model.focusRegion = FocusDetail
		}
	}
	if message.err != nil {
		// A failed mutation changed nothing on the service, so the
		// snapshot on screen is still current: no refetch.
		model.syncDetail()
		return model.showError(message.op + ": " + message.err.Error())
	}

	switch message.scope {
	case scopeNews:
		model.loading = true
		return model, loadNews(model.source, model.listGen.Next(), model.timeout)
	case scopeComments:
		model.syncDetail()
		return model, model.refetchComments()
	}
	return model, nil
}

// --- Key routing ---

func (model Model) handleGlobalKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.FocusToggle):
		if model.focusRegion == FocusList {
			model.focusRegion = FocusDetail
		} else {
			model.focusRegion = FocusList
		}

	case key.Matches(message, model.keys.FilterActivate):
		model.priorFocus = model.focusRegion
		model.focusRegion = FocusFilter
		model.filter.Active = true
		model.cursor = 0
		model.scrollOffset = 0
		model.resizePanes()

	case key.Matches(message, model.keys.FilterClear):
		if model.filter.Input != "" {
			model.filter.Clear()
			model.applyFilter()
			model.restoreSelection()
			model.ensureCursorVisible()
			return model.syncDetailCmd()
		}

	case key.Matches(message, model.keys.Refresh):
		model.loading = true
		return model, loadNews(model.source, model.listGen.Next(), model.timeout)

	case key.Matches(message, model.keys.ComposeNews):
		return model.openArticleComposer(composerNewArticle)

	case key.Matches(message, model.keys.EditNews):
		return model.openArticleComposer(composerEditArticle)

	case key.Matches(message, model.keys.DeleteNews):
		return model.confirmDeleteNews()

	case key.Matches(message, model.keys.ComposeComment):
		return model.openCommentComposer()

	case key.Matches(message, model.keys.EditComment):
		return model.beginCommentEdit()

	case key.Matches(message, model.keys.DeleteComment):
		return model.confirmDeleteComment()

	default:
		if model.focusRegion == FocusList {
			return model.handleListKeys(message)
		}
		model.handleDetailKeys(message)
	}
	return model, nil
}

func (model Model) handleListKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	previous := model.cursor
	switch {
	case key.Matches(message, model.keys.Up):
		if model.cursor > 0 {
			model.cursor--
		}
	case key.Matches(message, model.keys.Down):
		if model.cursor < len(model.items)-1 {
			model.cursor++
		}
	case key.Matches(message, model.keys.PageUp):
		model.cursor -= model.listHeight()
		if model.cursor < 0 {
			model.cursor = 0
		}
	case key.Matches(message, model.keys.PageDown):
		model.cursor += model.listHeight()
		if model.cursor >= len(model.items) {
			model.cursor = len(model.items) - 1
		}
		if model.cursor < 0 {
			model.cursor = 0
		}
	case key.Matches(message, model.keys.Home):
		model.cursor = 0
	case key.Matches(message, model.keys.End):
		if len(model.items) > 0 {
			model.cursor = len(model.items) - 1
		}
	}
	model.ensureCursorVisible()
	if model.cursor != previous {
		return model.syncDetailCmd()
	}
	return model, nil
}

func (model *Model) handleDetailKeys(message tea.KeyMsg) {
	switch {
	case key.Matches(message, model.keys.Up):
		model.detailView.LineUp(1)
	case key.Matches(message, model.keys.Down):
		model.detailView.LineDown(1)
	case key.Matches(message, model.keys.PageUp):
		model.detailView.HalfViewUp()
	case key.Matches(message, model.keys.PageDown):
		model.detailView.HalfViewDown()
	case key.Matches(message, model.keys.Home):
		model.detailView.GotoTop()
	case key.Matches(message, model.keys.End):
		model.detailView.GotoBottom()
	case key.Matches(message, model.keys.NextComment):
		if model.commentCursor < len(model.comments)-1 {
			model.commentCursor++
			model.syncDetail()
		}
	case key.Matches(message, model.keys.PreviousComment):
		if model.commentCursor > 0 {
			model.commentCursor--
			model.syncDetail()
		}
	}
}

func (model Model) handleFilterKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case message.Type == tea.KeyCtrlC:
		return model, tea.Quit

	case key.Matches(message, model.keys.FilterClear):
		if model.filter.Input != "" {
			model.filter.Clear()
			model.filter.Active = true
			model.applyFilter()
		} else {
			model.filter.Active = false
			model.focusRegion = model.priorFocus
			model.resizePanes()
		}
		return model, nil

	case message.Type == tea.KeyEnter:
		model.filter.Active = false
		model.focusRegion = FocusList
		model.resizePanes()
		return model.syncDetailCmd()

	case message.Type == tea.KeyBackspace:
		if model.filter.HandleBackspace() {
			model.applyFilter()
		}
		return model, nil

	case message.Type == tea.KeyRunes || message.Type == tea.KeySpace:
		for _, character := range message.Runes {
			model.filter.HandleRune(character)
		}
		if message.Type == tea.KeySpace && len(message.Runes) == 0 {
			model.filter.HandleRune(' ')
		}
		model.applyFilter()
		return model, nil
	}
	return model, nil
}

func (model Model) handleComposerKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyCtrlC:
		return model, tea.Quit

	case tea.KeyEscape:
		model.composer = nil
		model.focusRegion = FocusDetail
		return model, nil

	case tea.KeyCtrlD:
		return model.submitComposer()
	}

	model.composer.Update(message)
	return model, nil
}

func (model Model) handleConfirmKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if message.Type == tea.KeyCtrlC {
		return model, tea.Quit
	}
	confirm := model.confirm
	model.confirm = nil
	model.focusRegion = FocusList

	if confirm != nil && message.Type == tea.KeyRunes && len(message.Runes) == 1 && message.Runes[0] == 'y' {
		return model, confirm.confirm
	}
	return model, nil
}

// --- Inline comment editing ---

func (model Model) beginCommentEdit() (tea.Model, tea.Cmd) {
	comment, ok := model.selectedComment()
	if !ok {
		return model, nil
	}
	if model.mutator == nil {
		return model.showNotice("read-only source")
	}
	if result := authorization.ModifyCheck(model.principal, comment); !result.Allowed() {
		return model.showNotice("cannot edit: " + result.Reason.String())
	}

	model.edits.Begin(comment.ID, comment.Text)
	model.editTarget = comment.ID
	model.focusRegion = FocusCommentEdit
	model.syncDetail()
	return model, nil
}

func (model Model) handleCommentEditKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	commentID := model.editTarget
	draft, open := model.edits.Draft(commentID)
	if !open {
		model.focusRegion = FocusDetail
		return model, nil
	}

	switch message.Type {
	case tea.KeyCtrlC:
		return model, tea.Quit

	case tea.KeyEscape:
		model.edits.Cancel(commentID)
		model.editTarget = 0
		model.focusRegion = FocusDetail
		model.syncDetail()
		return model, nil

	case tea.KeyEnter:
		return model.saveCommentEdit(commentID)

	case tea.KeyBackspace:
		runes := []rune(draft)
		if len(runes) > 0 {
			if err := model.edits.UpdateDraft(commentID, string(runes[:len(runes)-1])); err != nil {
				return model.showNotice(err.Error())
			}
			model.syncDetail()
		}
		return model, nil

	case tea.KeyRunes, tea.KeySpace:
		updated := draft
		for _, character := range message.Runes {
			updated += string(character)
		}
		if message.Type == tea.KeySpace && len(message.Runes) == 0 {
			updated += " "
		}
		if err := model.edits.UpdateDraft(commentID, updated); err != nil {
			return model.showNotice(err.Error())
		}
		model.syncDetail()
		return model, nil
	}
	return model, nil
}

func (model Model) saveCommentEdit(commentID int64) (tea.Model, tea.Cmd) {
	comment, ok := model.commentByID(commentID)
	if !ok {
		model.edits.Cancel(commentID)
		model.focusRegion = FocusDetail
		return model, nil
	}

	draft, err := model.edits.BeginSave(commentID)
	if err != nil {
		return model.showNotice(err.Error())
	}

	mutator := model.mutator
	timeout := model.timeout
	newsID := comment.NewsID
	save := func() tea.Msg {
		ctx, cancel := timeout(context.Background())
		defer cancel()
		err := mutator.UpdateComment(ctx, commentID, newsID, draft)
		return mutationResultMsg{op: "saving comment", scope: scopeComments, commentID: commentID, err: err}
	}

	model.syncDetail()
	return model, save
}

// --- Composers ---

func (model Model) openCommentComposer() (tea.Model, tea.Cmd) {
	selected, ok := model.selectedNews()
	if !ok {
		return model, nil
	}
	if model.mutator == nil {
		return model.showNotice("read-only source")
	}
	if !authorization.CanComment(model.principal) {
		return model.showNotice("log in to comment")
	}

	model.composer = NewCommentComposer("Comment on "+selected.Title, "", model.theme)
	model.composerMode = composerNewComment
	model.composerTarget = selected.ID
	model.focusRegion = FocusComposer
	return model, nil
}

func (model Model) openArticleComposer(mode composerKind) (tea.Model, tea.Cmd) {
	if model.mutator == nil {
		return model.showNotice("read-only source")
	}

	if mode == composerNewArticle {
		if result := authorization.CreateNewsCheck(model.principal); !result.Allowed() {
			return model.showNotice("cannot publish: " + result.Reason.String())
		}
		model.composer = NewArticleComposer("New article", newsapi.NewsDraft{}, model.theme)
		model.composerMode = composerNewArticle
		model.composerTarget = 0
		model.focusRegion = FocusComposer
		return model, nil
	}

	selected, ok := model.selectedNews()
	if !ok {
		return model, nil
	}
	if result := authorization.ModifyCheck(model.principal, selected); !result.Allowed() {
		return model.showNotice("cannot edit: " + result.Reason.String())
	}
	draft := newsapi.NewsDraft{Title: selected.Title, Content: selected.Content, Cover: selected.Cover}
	model.composer = NewArticleComposer("Edit "+selected.Title, draft, model.theme)
	model.composerMode = composerEditArticle
	model.composerTarget = selected.ID
	model.focusRegion = FocusComposer
	return model, nil
}

func (model Model) submitComposer() (tea.Model, tea.Cmd) {
	composer := model.composer
	mode := model.composerMode
	target := model.composerTarget
	model.composer = nil
	model.focusRegion = FocusDetail

	mutator := model.mutator
	timeout := model.timeout

	switch mode {
	case composerNewComment:
		text := composer.Body()
		if text == "" {
			return model, nil
		}
		post := func() tea.Msg {
			ctx, cancel := timeout(context.Background())
			defer cancel()
			_, err := mutator.CreateComment(ctx, target, text)
			return mutationResultMsg{op: "posting comment", scope: scopeComments, err: err}
		}
		return model, post

	case composerNewArticle:
		draft := composer.Draft()
		if draft.Title == "" {
			return model.showNotice("article needs a title")
		}
		create := func() tea.Msg {
			ctx, cancel := timeout(context.Background())
			defer cancel()
			_, err := mutator.CreateNews(ctx, draft)
			return mutationResultMsg{op: "publishing article", scope: scopeNews, err: err}
		}
		return model, create

	case composerEditArticle:
		draft := composer.Draft()
		if draft.Title == "" {
			return model.showNotice("article needs a title")
		}
		update := func() tea.Msg {
			ctx, cancel := timeout(context.Background())
			defer cancel()
			err := mutator.UpdateNews(ctx, target, draft)
			return mutationResultMsg{op: "saving article", scope: scopeNews, err: err}
		}
		return model, update
	}
	return model, nil
}

// --- Deletes ---

func (model Model) confirmDeleteNews() (tea.Model, tea.Cmd) {
	selected, ok := model.selectedNews()
	if !ok {
		return model, nil
	}
	if model.mutator == nil {
		return model.showNotice("read-only source")
	}
	if result := authorization.ModifyCheck(model.principal, selected); !result.Allowed() {
		return model.showNotice("cannot delete: " + result.Reason.String())
	}

	mutator := model.mutator
	timeout := model.timeout
	newsID := selected.ID
	remove := func() tea.Msg {
		ctx, cancel := timeout(context.Background())
		defer cancel()
		return mutationResultMsg{op: "deleting article", scope: scopeNews, err: mutator.DeleteNews(ctx, newsID)}
	}

	model.confirm = &confirmState{
		prompt:  fmt.Sprintf("Delete article %q? (y/n)", selected.Title),
		confirm: remove,
	}
	model.focusRegion = FocusConfirm
	return model, nil
}

func (model Model) confirmDeleteComment() (tea.Model, tea.Cmd) {
	comment, ok := model.selectedComment()
	if !ok {
		return model, nil
	}
	if model.mutator == nil {
		return model.showNotice("read-only source")
	}
	if result := authorization.ModifyCheck(model.principal, comment); !result.Allowed() {
		return model.showNotice("cannot delete: " + result.Reason.String())
	}

	mutator := model.mutator
	timeout := model.timeout
	commentID := comment.ID
	remove := func() tea.Msg {
		ctx, cancel := timeout(context.Background())
		defer cancel()
		return mutationResultMsg{op: "deleting comment", scope: scopeComments, err: mutator.DeleteComment(ctx, commentID)}
	}

	model.confirm = &confirmState{
		prompt:  "Delete comment? (y/n)",
		confirm: remove,
	}
	model.focusRegion = FocusConfirm
	return model, nil
}

// --- Selection and filtering ---

func (model *Model) applyFilter() {
	model.items = model.filter.Apply(model.allNews)
	if model.filter.Input != "" {
		// Snap to the top so the best-scored match is visible.
		model.cursor = 0
		model.scrollOffset = 0
		if len(model.items) > 0 {
			model.selectedID = model.items[0].News.ID
		}
	}
}

func (model *Model) restoreSelection() {
	if model.selectedID != 0 {
		for index, item := range model.items {
			if item.News.ID == model.selectedID {
				model.cursor = index
				return
			}
		}
	}
	if model.cursor >= len(model.items) {
		model.cursor = len(model.items) - 1
	}
	if model.cursor < 0 {
		model.cursor = 0
	}
}

func (model *Model) selectedNews() (newsapi.News, bool) {
	if model.cursor < 0 || model.cursor >= len(model.items) {
		return newsapi.News{}, false
	}
	return model.items[model.cursor].News, true
}

func (model *Model) selectedComment() (newsapi.Comment, bool) {
	selected, ok := model.selectedNews()
	if !ok || model.commentsFor != selected.ID {
		return newsapi.Comment{}, false
	}
	if model.commentCursor < 0 || model.commentCursor >= len(model.comments) {
		return newsapi.Comment{}, false
	}
	return model.comments[model.commentCursor], true
}

func (model *Model) commentByID(commentID int64) (newsapi.Comment, bool) {
	for _, comment := range model.comments {
		if comment.ID == commentID {
			return comment, true
		}
	}
	return newsapi.Comment{}, false
}

// syncDetailCmd updates the selection and kicks off a comment fetch
// when the selected article changed.
func (model Model) syncDetailCmd() (tea.Model, tea.Cmd) {
	selected, ok := model.selectedNews()
	if !ok {
		model.selectedID = 0
		model.comments = nil
		model.commentsFor = 0
		model.syncDetail()
		return model, nil
	}

	changed := model.selectedID != selected.ID
	model.selectedID = selected.ID
	model.syncDetail()
	if changed || model.commentsFor != selected.ID {
		model.commentCursor = 0
		return model, model.refetchComments()
	}
	return model, nil
}

// refetchComments fetches the selected article's thread under a fresh
// generation.
func (model *Model) refetchComments() tea.Cmd {
	if model.selectedID == 0 {
		return nil
	}
	return loadComments(model.source, model.selectedID, model.commentsGen.Next(), model.timeout)
}

// --- Status bar ---

func (model Model) showError(text string) (tea.Model, tea.Cmd) {
	model.statusError = text
	model.statusNotice = ""
	model.statusToken++
	token := model.statusToken
	return model, tea.Tick(model.statusFade, func(time.Time) tea.Msg {
		return statusFadeMsg{token: token}
	})
}

func (model Model) showNotice(text string) (tea.Model, tea.Cmd) {
	model.statusNotice = text
	model.statusError = ""
	model.statusToken++
	token := model.statusToken
	return model, tea.Tick(model.statusFade, func(time.Time) tea.Msg {
		return statusFadeMsg{token: token}
	})
}

// --- Layout ---

// listHeight is the number of rows available for list items.
func (model *Model) listHeight() int {
	// One line of chrome at the top (filter bar when active), one
	// status line at the bottom.
	height := model.height - 2
	if height < 1 {
		height = 1
	}
	return height
}

func (model *Model) listWidth() int {
	width := model.width * 2 / 5
	if width < 20 {
		width = 20
	}
	return width
}

func (model *Model) detailWidth() int {
	width := model.width - model.listWidth() - 1
	if width < 20 {
		width = 20
	}
	return width
}

func (model *Model) resizePanes() {
	model.detailView.Width = model.detailWidth()
	model.detailView.Height = model.listHeight()
}

func (model *Model) ensureCursorVisible() {
	visible := model.listHeight()
	if model.cursor < model.scrollOffset {
		model.scrollOffset = model.cursor
	}
	if model.cursor >= model.scrollOffset+visible {
		model.scrollOffset = model.cursor - visible + 1
	}
	if model.scrollOffset < 0 {
		model.scrollOffset = 0
	}
}

// syncDetail re-renders the detail viewport content for the current
// selection, comments, and edit state.
func (model *Model) syncDetail() {
	model.detailView.SetContent(model.renderDetailContent())
}

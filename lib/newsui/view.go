// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

package newsui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/newsroom-foundation/newsroom/lib/authorization"
	"github.com/newsroom-foundation/newsroom/lib/editsession"
	"github.com/newsroom-foundation/newsroom/lib/newsapi"
)

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "loading..."
	}

	var view strings.Builder
	view.WriteString(model.renderHeaderBar())
	view.WriteString("\n")

	listLines := model.renderListPane()
	detailLines := strings.Split(model.detailView.View(), "\n")

	divider := lipgloss.NewStyle().Foreground(model.theme.BorderColor).Render("│")
	rows := model.listHeight()
	for row := 0; row < rows; row++ {
		left := ""
		if row < len(listLines) {
			left = listLines[row]
		}
		left = padToWidth(left, model.listWidth())
		view.WriteString(left)
		view.WriteString(divider)
		if row < len(detailLines) {
			view.WriteString(detailLines[row])
		}
		view.WriteString("\n")
	}

	view.WriteString(model.renderStatusBar())

	rendered := view.String()
	if model.focusRegion == FocusComposer && model.composer != nil {
		lines, anchorX, anchorY := model.composer.Render(model.width, model.height)
		rendered = spliceOverlay(rendered, lines, anchorX, anchorY)
	}
	return rendered
}

// renderHeaderBar draws the top line: the filter input when filtering,
// otherwise the application title and item count.
func (model Model) renderHeaderBar() string {
	if model.filter.Active || model.filter.Input != "" {
		return model.filter.View(model.theme, model.width)
	}

	title := lipgloss.NewStyle().
		Foreground(model.theme.HeaderForeground).
		Bold(true).
		Render("newsroom")
	count := lipgloss.NewStyle().
		Foreground(model.theme.FaintText).
		Render(fmt.Sprintf("  %d articles", len(model.items)))
	identity := ""
	if model.principal != nil {
		label := fmt.Sprintf("  user #%d", model.principal.ID)
		if model.principal.Admin {
			label += " (admin)"
		}
		identity = lipgloss.NewStyle().
			Foreground(model.theme.AuthorForeground).
			Render(label)
	}
	return title + count + identity
}

// renderListPane renders the visible window of the news list, one row
// per article.
func (model Model) renderListPane() []string {
	width := model.listWidth()
	height := model.listHeight()

	if model.loading && len(model.items) == 0 {
		return []string{lipgloss.NewStyle().Foreground(model.theme.FaintText).Render(" fetching news...")}
	}
	if len(model.items) == 0 {
		empty := " no articles"
		if model.filter.Input != "" {
			empty = " no matches"
		}
		return []string{lipgloss.NewStyle().Foreground(model.theme.FaintText).Render(empty)}
	}

	lines := make([]string, 0, height)
	for index := model.scrollOffset; index < len(model.items) && len(lines) < height; index++ {
		lines = append(lines, model.renderListRow(model.items[index], index == model.cursor, width))
	}
	return lines
}

func (model Model) renderListRow(item FilterResult, selected bool, width int) string {
	marker := "  "
	titleStyle := lipgloss.NewStyle().Foreground(model.theme.NormalText)
	matchStyle := lipgloss.NewStyle().Foreground(model.theme.MatchForeground).Bold(true)
	authorStyle := lipgloss.NewStyle().Foreground(model.theme.AuthorForeground)

	if selected {
		marker = "▸ "
		titleStyle = titleStyle.
			Foreground(model.theme.SelectedForeground).
			Background(model.theme.SelectedBackground)
		matchStyle = matchStyle.Background(model.theme.SelectedBackground)
		authorStyle = authorStyle.Background(model.theme.SelectedBackground)
	}

	author := " · " + item.News.DisplayAuthor()
	titleBudget := width - len(marker) - ansi.StringWidth(author)
	if titleBudget < 8 {
		titleBudget = 8
		author = ""
	}
	title := item.News.Title
	if ansi.StringWidth(title) > titleBudget {
		title = ansi.Truncate(title, titleBudget-1, "…")
	}

	return marker +
		highlightRunes(title, item.TitlePositions, titleStyle, matchStyle) +
		authorStyle.Render(author)
}

// highlightRunes renders text with matched rune offsets in the match
// style and everything else in the base style. Offsets index runes of
// the original title; runes truncated away are ignored.
func highlightRunes(text string, positions []int, base, match lipgloss.Style) string {
	if len(positions) == 0 {
		return base.Render(text)
	}
	matched := make(map[int]bool, len(positions))
	for _, position := range positions {
		matched[position] = true
	}

	var result strings.Builder
	var run []rune
	runMatched := false
	flush := func() {
		if len(run) == 0 {
			return
		}
		if runMatched {
			result.WriteString(match.Render(string(run)))
		} else {
			result.WriteString(base.Render(string(run)))
		}
		run = run[:0]
	}
	for index, character := range []rune(text) {
		if matched[index] != runMatched {
			flush()
			runMatched = matched[index]
		}
		run = append(run, character)
	}
	flush()
	return result.String()
}

// renderDetailContent builds the full article-plus-comments document
// shown in the detail viewport.
func (model Model) renderDetailContent() string {
	selected, ok := model.selectedNews()
	if !ok {
		return lipgloss.NewStyle().Foreground(model.theme.FaintText).Render("select an article")
	}
	width := model.detailWidth()

	var document strings.Builder
	document.WriteString(lipgloss.NewStyle().
		Foreground(model.theme.HeaderForeground).
		Bold(true).
		Render(selected.Title))
	document.WriteString("\n")

	byline := selected.DisplayAuthor()
	if selected.PublicationDate != "" {
		byline += "  " + selected.PublicationDate
	}
	document.WriteString(lipgloss.NewStyle().Foreground(model.theme.AuthorForeground).Render(byline))
	document.WriteString("\n\n")

	document.WriteString(renderArticle(selected.Content.Text, model.theme, width))
	document.WriteString("\n\n")

	document.WriteString(model.renderCommentThread(selected.ID, width))
	return document.String()
}

func (model Model) renderCommentThread(newsID int64, width int) string {
	headerStyle := lipgloss.NewStyle().Foreground(model.theme.HeaderForeground).Bold(true)
	faint := lipgloss.NewStyle().Foreground(model.theme.FaintText)

	if model.commentsFor != newsID {
		return headerStyle.Render("Comments") + "\n" + faint.Render("loading thread...")
	}

	var thread strings.Builder
	thread.WriteString(headerStyle.Render(fmt.Sprintf("Comments (%d)", len(model.comments))))
	thread.WriteString("\n")
	if len(model.comments) == 0 {
		thread.WriteString(faint.Render("no comments yet"))
		return thread.String()
	}

	for index, comment := range model.comments {
		if index > 0 {
			thread.WriteString("\n")
		}
		thread.WriteString(model.renderComment(comment, index == model.commentCursor, width))
		thread.WriteString("\n")
	}
	return thread.String()
}

func (model Model) renderComment(comment newsapi.Comment, selected bool, width int) string {
	marker := "  "
	if selected {
		marker = "▸ "
	}
	byline := comment.DisplayAuthor()
	if comment.PublicationDate != "" {
		byline += "  " + comment.PublicationDate
	}
	header := marker + lipgloss.NewStyle().Foreground(model.theme.AuthorForeground).Render(byline)

	bodyWidth := width - 2
	if bodyWidth < 10 {
		bodyWidth = 10
	}

	switch model.edits.StateOf(comment.ID) {
	case editsession.Editing:
		draft, _ := model.edits.Draft(comment.ID)
		cursor := ""
		if model.focusRegion == FocusCommentEdit && model.editTarget == comment.ID {
			cursor = "▎"
		}
		editStyle := lipgloss.NewStyle().
			Foreground(model.theme.SelectedForeground).
			Background(model.theme.EditingBackground)
		body := indentLines(ansi.Wrap(draft+cursor, bodyWidth, " ,.;-"), "  ", editStyle)
		return header + "\n" + body

	case editsession.Saving:
		draft, _ := model.edits.Draft(comment.ID)
		savingStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)
		body := indentLines(ansi.Wrap(draft, bodyWidth, " ,.;-"), "  ", savingStyle)
		return header + "  " + savingStyle.Render("(saving...)") + "\n" + body
	}

	textStyle := lipgloss.NewStyle().Foreground(model.theme.NormalText)
	body := indentLines(ansi.Wrap(comment.Text, bodyWidth, " ,.;-"), "  ", textStyle)
	return header + "\n" + body
}

// indentLines styles each wrapped line and prefixes it with indent.
func indentLines(wrapped, indent string, style lipgloss.Style) string {
	lines := strings.Split(wrapped, "\n")
	for index, line := range lines {
		lines[index] = indent + style.Render(line)
	}
	return strings.Join(lines, "\n")
}

// renderStatusBar draws the bottom line: a pending confirmation, an
// error or notice, or the context-sensitive help line.
func (model Model) renderStatusBar() string {
	if model.focusRegion == FocusConfirm && model.confirm != nil {
		return lipgloss.NewStyle().
			Foreground(model.theme.NoticeForeground).
			Bold(true).
			Render(model.confirm.prompt)
	}
	if model.statusError != "" {
		return lipgloss.NewStyle().
			Foreground(model.theme.ErrorForeground).
			Render(ansi.Truncate(model.statusError, model.width, "…"))
	}
	if model.statusNotice != "" {
		return lipgloss.NewStyle().
			Foreground(model.theme.NoticeForeground).
			Render(ansi.Truncate(model.statusNotice, model.width, "…"))
	}

	help := model.helpLine()
	return lipgloss.NewStyle().
		Foreground(model.theme.HelpText).
		Render(ansi.Truncate(help, model.width, "…"))
}

// helpLine lists only the actions available right now: mutation hints
// appear when the source accepts writes and the principal would be
// allowed to perform them on the current selection.
func (model Model) helpLine() string {
	switch model.focusRegion {
	case FocusFilter:
		return "enter accept  esc clear/close"
	case FocusCommentEdit:
		return "enter save  esc cancel"
	case FocusComposer:
		return "" // The composer renders its own footer.
	}

	var parts []string
	if model.focusRegion == FocusDetail {
		parts = append(parts, "j/k scroll", "n/p comments")
	} else {
		parts = append(parts, "j/k move", "/ filter", "r refresh")
	}

	if model.mutator != nil {
		if authorization.CanComment(model.principal) {
			parts = append(parts, "c comment")
		}
		if comment, ok := model.selectedComment(); ok && authorization.CanModify(model.principal, comment) {
			parts = append(parts, "e/d edit/del comment")
		}
		if authorization.CanCreateNews(model.principal) {
			parts = append(parts, "N new article")
		}
		if news, ok := model.selectedNews(); ok && authorization.CanModify(model.principal, news) {
			parts = append(parts, "E/D edit/del article")
		}
	}

	parts = append(parts, "tab pane", "q quit")
	return strings.Join(parts, "  ")
}

// padToWidth pads a styled line with spaces to the target display
// width, truncating when it is too wide.
func padToWidth(line string, width int) string {
	lineWidth := ansi.StringWidth(line)
	if lineWidth > width {
		return ansi.Truncate(line, width, "…")
	}
	return line + strings.Repeat(" ", width-lineWidth)
}

// spliceOverlay replaces a rectangular region of the rendered view
// with overlay content anchored at (anchorX, anchorY). Truncation is
// ANSI-aware so escape sequences in the background survive on both
// sides of the overlay.
func spliceOverlay(view string, overlayLines []string, anchorX, anchorY int) string {
	if len(overlayLines) == 0 {
		return view
	}

	viewLines := strings.Split(view, "\n")
	overlayWidth := ansi.StringWidth(overlayLines[0])

	for index, overlayLine := range overlayLines {
		row := anchorY + index
		if row < 0 || row >= len(viewLines) {
			continue
		}

		background := viewLines[row]
		backgroundWidth := ansi.StringWidth(background)

		var spliced strings.Builder
		if anchorX > 0 {
			spliced.WriteString(ansi.Truncate(background, anchorX, ""))
		}
		spliced.WriteString("\x1b[0m")
		spliced.WriteString(overlayLine)
		spliced.WriteString("\x1b[0m")

		suffixStart := anchorX + overlayWidth
		if suffixStart < backgroundWidth {
			spliced.WriteString(ansi.TruncateLeft(background, suffixStart, ""))
		}

		viewLines[row] = spliced.String()
	}

	return strings.Join(viewLines, "\n")
}

// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

package newsui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/newsroom-foundation/newsroom/lib/newsapi"
)

// textEditor is a minimal multi-line editor with cursor tracking.
// It backs the composer's body field.
type textEditor struct {
	lines   [][]rune
	cursorY int
	cursorX int
}

func newTextEditor(initial string) textEditor {
	editor := textEditor{}
	for _, line := range strings.Split(initial, "\n") {
		editor.lines = append(editor.lines, []rune(line))
	}
	if len(editor.lines) == 0 {
		editor.lines = [][]rune{{}}
	}
	// Cursor starts at the end of the seeded text.
	editor.cursorY = len(editor.lines) - 1
	editor.cursorX = len(editor.lines[editor.cursorY])
	return editor
}

func (editor *textEditor) value() string {
	parts := make([]string, len(editor.lines))
	for index, line := range editor.lines {
		parts[index] = string(line)
	}
	return strings.Join(parts, "\n")
}

func (editor *textEditor) insertRune(character rune) {
	line := editor.lines[editor.cursorY]
	updated := make([]rune, len(line)+1)
	copy(updated, line[:editor.cursorX])
	updated[editor.cursorX] = character
	copy(updated[editor.cursorX+1:], line[editor.cursorX:])
	editor.lines[editor.cursorY] = updated
	editor.cursorX++
}

func (editor *textEditor) handleKey(message tea.KeyMsg) {
	switch message.Type {
	case tea.KeyRunes, tea.KeySpace:
		for _, character := range message.Runes {
			editor.insertRune(character)
		}
		if message.Type == tea.KeySpace && len(message.Runes) == 0 {
			editor.insertRune(' ')
		}

	case tea.KeyEnter:
		line := editor.lines[editor.cursorY]
		before := append([]rune{}, line[:editor.cursorX]...)
		after := append([]rune{}, line[editor.cursorX:]...)
		editor.lines[editor.cursorY] = before
		editor.lines = append(editor.lines[:editor.cursorY+1],
			append([][]rune{after}, editor.lines[editor.cursorY+1:]...)...)
		editor.cursorY++
		editor.cursorX = 0

	case tea.KeyBackspace:
		if editor.cursorX > 0 {
			line := editor.lines[editor.cursorY]
			editor.lines[editor.cursorY] = append(line[:editor.cursorX-1], line[editor.cursorX:]...)
			editor.cursorX--
		} else if editor.cursorY > 0 {
			previous := editor.lines[editor.cursorY-1]
			editor.cursorX = len(previous)
			editor.lines[editor.cursorY-1] = append(previous, editor.lines[editor.cursorY]...)
			editor.lines = append(editor.lines[:editor.cursorY], editor.lines[editor.cursorY+1:]...)
			editor.cursorY--
		}

	case tea.KeyDelete:
		line := editor.lines[editor.cursorY]
		if editor.cursorX < len(line) {
			editor.lines[editor.cursorY] = append(line[:editor.cursorX], line[editor.cursorX+1:]...)
		} else if editor.cursorY < len(editor.lines)-1 {
			editor.lines[editor.cursorY] = append(line, editor.lines[editor.cursorY+1]...)
			editor.lines = append(editor.lines[:editor.cursorY+1], editor.lines[editor.cursorY+2:]...)
		}

	case tea.KeyLeft:
		if editor.cursorX > 0 {
			editor.cursorX--
		} else if editor.cursorY > 0 {
			editor.cursorY--
			editor.cursorX = len(editor.lines[editor.cursorY])
		}

	case tea.KeyRight:
		if editor.cursorX < len(editor.lines[editor.cursorY]) {
			editor.cursorX++
		} else if editor.cursorY < len(editor.lines)-1 {
			editor.cursorY++
			editor.cursorX = 0
		}

	case tea.KeyUp:
		if editor.cursorY > 0 {
			editor.cursorY--
			editor.clampX()
		}

	case tea.KeyDown:
		if editor.cursorY < len(editor.lines)-1 {
			editor.cursorY++
			editor.clampX()
		}

	case tea.KeyHome, tea.KeyCtrlA:
		editor.cursorX = 0

	case tea.KeyEnd, tea.KeyCtrlE:
		editor.cursorX = len(editor.lines[editor.cursorY])
	}
}

func (editor *textEditor) clampX() {
	if editor.cursorX > len(editor.lines[editor.cursorY]) {
		editor.cursorX = len(editor.lines[editor.cursorY])
	}
}

// composerField identifies which input inside the composer has focus.
type composerField int

const (
	fieldTitle composerField = iota
	fieldCover
	fieldBody
)

// Composer is a modal overlay for writing comments and articles. For
// comments only the body is shown; for articles a title line and an
// optional cover image URL line precede it. Tab cycles fields,
// Ctrl+D submits, Esc cancels (both handled by the model).
type Composer struct {
	// ContextLabel names what is being written, shown in the modal
	// title ("comment on …", "new article", "edit …").
	ContextLabel string

	// article is true when title and cover fields are shown.
	article bool

	title []rune
	cover []rune
	body  textEditor

	focus composerField
	theme Theme
}

// NewCommentComposer creates a composer for a comment body, seeded
// with initial text (empty for a new comment).
func NewCommentComposer(contextLabel, initial string, theme Theme) *Composer {
	return &Composer{
		ContextLabel: contextLabel,
		body:         newTextEditor(initial),
		focus:        fieldBody,
		theme:        theme,
	}
}

// NewArticleComposer creates a composer seeded from a draft. For a
// new article pass a zero draft.
func NewArticleComposer(contextLabel string, draft newsapi.NewsDraft, theme Theme) *Composer {
	return &Composer{
		ContextLabel: contextLabel,
		article:      true,
		title:        []rune(draft.Title),
		cover:        []rune(draft.Cover),
		body:         newTextEditor(draft.Content.Text),
		focus:        fieldTitle,
		theme:        theme,
	}
}

// Draft returns the composed article fields.
func (composer *Composer) Draft() newsapi.NewsDraft {
	return newsapi.NewsDraft{
		Title:   string(composer.title),
		Content: newsapi.Content{Text: composer.body.value()},
		Cover:   string(composer.cover),
	}
}

// Body returns the composed body text.
func (composer *Composer) Body() string {
	return composer.body.value()
}

// Update processes a key message. Tab moves between fields in article
// mode; everything else routes to the focused field.
func (composer *Composer) Update(message tea.KeyMsg) {
	if composer.article && message.Type == tea.KeyTab {
		composer.focus = (composer.focus + 1) % 3
		return
	}

	switch composer.focus {
	case fieldTitle:
		composer.title = editSingleLine(composer.title, message)
	case fieldCover:
		composer.cover = editSingleLine(composer.cover, message)
	default:
		composer.body.handleKey(message)
	}
}

// editSingleLine applies a key message to a single-line rune buffer.
// Cursor is always at the end; single-line fields are short enough
// that mid-line editing is not worth the state.
func editSingleLine(buffer []rune, message tea.KeyMsg) []rune {
	switch message.Type {
	case tea.KeyRunes, tea.KeySpace:
		if message.Type == tea.KeySpace && len(message.Runes) == 0 {
			return append(buffer, ' ')
		}
		return append(buffer, message.Runes...)
	case tea.KeyBackspace:
		if len(buffer) > 0 {
			return buffer[:len(buffer)-1]
		}
	}
	return buffer
}

// Modal chrome: 2 columns border + 2 padding horizontally; 2 lines
// border + 1 title + 1 footer vertically. Article mode adds the two
// field lines and their separator.
const (
	composerChromeWidth  = 4
	composerChromeHeight = 4
	composerMinWidth     = 30
	composerMinHeight    = 5
	composerMargin       = 2
)

// Render produces the modal overlay lines and the top-left anchor for
// splicing onto the main view.
func (composer *Composer) Render(screenWidth, screenHeight int) ([]string, int, int) {
	modalWidth := screenWidth - composerMargin*2
	modalHeight := screenHeight - composerMargin*2
	if modalWidth < composerMinWidth+composerChromeWidth {
		modalWidth = composerMinWidth + composerChromeWidth
	}
	if modalHeight < composerMinHeight+composerChromeHeight {
		modalHeight = composerMinHeight + composerChromeHeight
	}
	if modalWidth > screenWidth {
		modalWidth = screenWidth
	}
	if modalHeight > screenHeight {
		modalHeight = screenHeight
	}

	innerWidth := modalWidth - composerChromeWidth
	innerHeight := modalHeight - composerChromeHeight

	theme := composer.theme
	pad := func(rendered string) string {
		width := ansi.StringWidth(rendered)
		if width > innerWidth {
			return ansi.Truncate(rendered, innerWidth, "…")
		}
		if width < innerWidth {
			rendered += strings.Repeat(" ", innerWidth-width)
		}
		return rendered
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.HeaderForeground)
	labelStyle := lipgloss.NewStyle().Foreground(theme.FaintText)
	textStyle := lipgloss.NewStyle().Foreground(theme.NormalText)
	cursorStyle := lipgloss.NewStyle().Reverse(true)

	var contentLines []string
	contentLines = append(contentLines, pad(titleStyle.Render(composer.ContextLabel)))

	fieldLine := func(label string, value []rune, focused bool) string {
		line := labelStyle.Render(label) + textStyle.Render(string(value))
		if focused {
			line += cursorStyle.Render(" ")
		}
		return pad(line)
	}

	if composer.article {
		contentLines = append(contentLines,
			fieldLine("Title: ", composer.title, composer.focus == fieldTitle),
			fieldLine("Cover: ", composer.cover, composer.focus == fieldCover),
		)
		innerHeight -= 2
	}

	// Body area, scrolled so the cursor stays visible.
	scroll := 0
	if composer.body.cursorY >= innerHeight {
		scroll = composer.body.cursorY - innerHeight + 1
	}
	for lineIndex := scroll; lineIndex < scroll+innerHeight; lineIndex++ {
		var rendered string
		if lineIndex < len(composer.body.lines) {
			line := composer.body.lines[lineIndex]
			if composer.focus == fieldBody && lineIndex == composer.body.cursorY {
				cursorX := composer.body.cursorX
				if cursorX >= len(line) {
					rendered = textStyle.Render(string(line)) + cursorStyle.Render(" ")
				} else {
					rendered = textStyle.Render(string(line[:cursorX])) +
						cursorStyle.Render(string(line[cursorX:cursorX+1])) +
						textStyle.Render(string(line[cursorX+1:]))
				}
			} else {
				rendered = textStyle.Render(string(line))
			}
		}
		contentLines = append(contentLines, pad(rendered))
	}

	footer := "Ctrl+D submit  Esc cancel"
	if composer.article {
		footer = "Tab next field  " + footer
	}
	contentLines = append(contentLines, pad(lipgloss.NewStyle().Foreground(theme.HelpText).Render(footer)))

	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderColor)
	rendered := border.Render(strings.Join(contentLines, "\n"))

	resultLines := strings.Split(rendered, "\n")
	renderedWidth := 0
	if len(resultLines) > 0 {
		renderedWidth = ansi.StringWidth(resultLines[0])
	}
	anchorX := (screenWidth - renderedWidth) / 2
	anchorY := (screenHeight - len(resultLines)) / 2
	if anchorX < 0 {
		anchorX = 0
	}
	if anchorY < 0 {
		anchorY = 0
	}
	return resultLines, anchorX, anchorY
}

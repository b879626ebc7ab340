// Copyright 2026 The Newsroom Authors
// SPDX-License-Identifier: Apache-2.0

package newsui

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// articleParser is initialized once and reused. The goldmark Parser is
// safe to share; per-call state lives in the reader.
var (
	articleParser     goldmark.Markdown
	articleParserOnce sync.Once
)

func getArticleParser() goldmark.Markdown {
	articleParserOnce.Do(func() {
		articleParser = goldmark.New(
			goldmark.WithExtensions(extension.GFM),
		)
	})
	return articleParser
}

// renderArticle renders a markdown article body as styled terminal
// text wrapped to the given width. Soft line breaks inside paragraphs
// become spaces so hard-wrapped source reflows at any pane width.
func renderArticle(input string, theme Theme, width int) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	source := []byte(input)
	document := getArticleParser().Parser().Parse(text.NewReader(source))

	// Force the ANSI256 profile: output always goes to the TUI, and
	// auto-detection yields uncolored text when there is no TTY (tests,
	// piped output).
	lipRenderer := lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(termenv.ANSI256))
	lipRenderer.SetColorProfile(termenv.ANSI256)

	walker := &articleWalker{
		source:      source,
		theme:       theme,
		width:       width,
		lipRenderer: lipRenderer,
	}
	ast.Walk(document, walker.walk)
	return strings.TrimRight(walker.out.String(), "\n")
}

// articleWalker walks the goldmark AST accumulating inline content per
// block, then word-wraps each block as a unit when it closes.
type articleWalker struct {
	source []byte
	theme  Theme
	width  int

	out    strings.Builder
	inline strings.Builder

	// Nested container prefix ("│ " inside blockquotes, indent inside
	// list items). Applied to every emitted line.
	prefix string

	// Pending bullet replaces the prefix for the first line of the
	// current list item.
	bullet string

	// Inline style depth. Counters rather than booleans so nested
	// emphasis unwinds correctly.
	boldDepth   int
	italicDepth int
	strikeDepth int

	// Ordered list counters, one per nesting level.
	listCounters []int

	lipRenderer *lipgloss.Renderer
}

func (w *articleWalker) style() lipgloss.Style {
	return w.lipRenderer.NewStyle()
}

func (w *articleWalker) contentWidth() int {
	width := w.width - ansi.StringWidth(w.prefix)
	if width < 10 {
		width = 10
	}
	return width
}

// emitBlock word-wraps styled content and writes it with prefixes,
// followed by a blank separator line.
func (w *articleWalker) emitBlock(content string) {
	if content == "" {
		return
	}
	// Wrap can leave a breakpoint rune hanging one cell past the
	// limit; the hardwrap pass guarantees no line exceeds the pane.
	wrapped := ansi.Hardwrap(ansi.Wrap(content, w.contentWidth(), " ,.;-"), w.contentWidth(), true)
	for index, line := range strings.Split(wrapped, "\n") {
		if index == 0 && w.bullet != "" {
			w.out.WriteString(w.bullet)
			w.bullet = ""
		} else {
			w.out.WriteString(w.prefix)
		}
		w.out.WriteString(line)
		w.out.WriteString("\n")
	}
	w.out.WriteString("\n")
}

func (w *articleWalker) styledText(content string) string {
	style := w.style().Foreground(w.theme.NormalText)
	if w.boldDepth > 0 {
		style = style.Bold(true)
	}
	if w.italicDepth > 0 {
		style = style.Italic(true)
	}
	if w.strikeDepth > 0 {
		style = style.Strikethrough(true)
	}
	return style.Render(content)
}

func (w *articleWalker) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node.Kind() {
	case ast.KindParagraph, ast.KindTextBlock:
		if entering {
			w.inline.Reset()
		} else {
			content := w.inline.String()
			w.inline.Reset()
			w.emitBlock(content)
		}

	case ast.KindHeading:
		if entering {
			w.inline.Reset()
		} else {
			heading := node.(*ast.Heading)
			content := ansi.Strip(w.inline.String())
			w.inline.Reset()
			style := w.style().Bold(true).Foreground(w.theme.HeaderForeground)
			if heading.Level > 2 {
				style = w.style().Bold(true).Foreground(w.theme.NormalText)
			}
			w.emitBlock(style.Render(content))
		}

	case ast.KindFencedCodeBlock:
		if entering {
			w.emitCode(node.(*ast.FencedCodeBlock))
			return ast.WalkSkipChildren, nil
		}

	case ast.KindCodeBlock:
		if entering {
			block := node.(*ast.CodeBlock)
			w.emitCodeLines(w.blockLines(block), "")
			return ast.WalkSkipChildren, nil
		}

	case ast.KindBlockquote:
		if entering {
			w.prefix += "│ "
		} else {
			w.prefix = strings.TrimSuffix(w.prefix, "│ ")
		}

	case ast.KindList:
		if entering {
			start := 0
			if list := node.(*ast.List); list.IsOrdered() {
				start = list.Start
			}
			w.listCounters = append(w.listCounters, start)
		} else {
			w.listCounters = w.listCounters[:len(w.listCounters)-1]
		}

	case ast.KindListItem:
		if entering {
			w.enterListItem()
		} else {
			w.prefix = strings.TrimSuffix(w.prefix, "  ")
		}

	case ast.KindThematicBreak:
		if entering {
			rule := w.style().Foreground(w.theme.BorderColor).
				Render(strings.Repeat("─", w.contentWidth()))
			w.emitBlock(rule)
		}

	case ast.KindText:
		if entering {
			textNode := node.(*ast.Text)
			w.inline.WriteString(w.styledText(string(textNode.Segment.Value(w.source))))
			if textNode.SoftLineBreak() {
				w.inline.WriteString(" ")
			}
			if textNode.HardLineBreak() {
				w.inline.WriteString("\n")
			}
		}

	case ast.KindString:
		if entering {
			w.inline.WriteString(w.styledText(string(node.(*ast.String).Value)))
		}

	case ast.KindEmphasis:
		emphasis := node.(*ast.Emphasis)
		delta := 1
		if !entering {
			delta = -1
		}
		if emphasis.Level >= 2 {
			w.boldDepth += delta
		} else {
			w.italicDepth += delta
		}

	case extast.KindStrikethrough:
		if entering {
			w.strikeDepth++
		} else {
			w.strikeDepth--
		}

	case ast.KindCodeSpan:
		if entering {
			w.emitCodeSpan(node)
			return ast.WalkSkipChildren, nil
		}

	case ast.KindLink:
		if entering {
			link := node.(*ast.Link)
			label := w.collectInline(link)
			w.inline.WriteString(w.style().Foreground(w.theme.LinkForeground).Render(label))
			if url := string(link.Destination); url != "" {
				w.inline.WriteString(" " + w.style().Foreground(w.theme.FaintText).Render("("+url+")"))
			}
			return ast.WalkSkipChildren, nil
		}

	case ast.KindAutoLink:
		if entering {
			url := string(node.(*ast.AutoLink).URL(w.source))
			w.inline.WriteString(w.style().Foreground(w.theme.LinkForeground).Render(url))
		}

	case ast.KindImage:
		if entering {
			image := node.(*ast.Image)
			alt := w.collectInline(image)
			faint := w.style().Foreground(w.theme.FaintText)
			w.inline.WriteString(faint.Render("[" + alt + "]"))
			if url := string(image.Destination); url != "" {
				w.inline.WriteString(" " + faint.Render("("+url+")"))
			}
			return ast.WalkSkipChildren, nil
		}
	}

	return ast.WalkContinue, nil
}

func (w *articleWalker) enterListItem() {
	if len(w.listCounters) == 0 {
		return
	}
	level := len(w.listCounters) - 1
	bullet := "- "
	if w.listCounters[level] > 0 {
		bullet = fmt.Sprintf("%d. ", w.listCounters[level])
		w.listCounters[level]++
	}
	w.bullet = w.prefix + bullet
	w.prefix += "  "
}

// collectInline renders a node's children to plain styled text,
// preserving the caller's inline buffer.
func (w *articleWalker) collectInline(node ast.Node) string {
	saved := w.inline.String()
	w.inline.Reset()
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		ast.Walk(child, w.walk)
	}
	collected := ansi.Strip(w.inline.String())
	w.inline.Reset()
	w.inline.WriteString(saved)
	return collected
}

func (w *articleWalker) blockLines(node interface{ Lines() *text.Segments }) string {
	var code strings.Builder
	lines := node.Lines()
	for index := 0; index < lines.Len(); index++ {
		segment := lines.At(index)
		code.Write(segment.Value(w.source))
	}
	return code.String()
}

func (w *articleWalker) emitCode(block *ast.FencedCodeBlock) {
	w.emitCodeLines(w.blockLines(block), string(block.Language(w.source)))
}

// emitCodeLines writes a code block line by line, syntax-highlighted
// through Chroma when the language is known. Code is never wrapped.
func (w *articleWalker) emitCodeLines(code, language string) {
	highlighted := ""
	if language != "" {
		var buffer strings.Builder
		if err := quick.Highlight(&buffer, code, language, "terminal256", "monokai"); err == nil {
			highlighted = buffer.String()
		}
	}
	if highlighted == "" {
		highlighted = w.style().Foreground(w.theme.FaintText).Render(code)
	}

	for _, line := range strings.Split(strings.TrimRight(highlighted, "\n"), "\n") {
		w.out.WriteString(w.prefix)
		w.out.WriteString(line)
		w.out.WriteString("\n")
	}
	w.out.WriteString("\n")
}

// emitCodeSpan renders inline code in faint text with no wrapping of
// its own; it participates in the enclosing block's wrap.
func (w *articleWalker) emitCodeSpan(node ast.Node) {
	var code strings.Builder
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if textNode, ok := child.(*ast.Text); ok {
			code.Write(textNode.Segment.Value(w.source))
		}
	}
	w.inline.WriteString(w.style().Foreground(w.theme.MatchForeground).Render(code.String()))
}

// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

package overlay

import (
	"strings"

	"github.com/bijou-tui/bijou/internal/grapheme"
)

// Modal centers a bordered box with optional title, body, and hint sections,
// each separated by a blank bordered row. Position clamps to (0, 0) when
// the box exceeds the screen dimensions.
type Modal struct {
	Title     string
	Body      string
	Hint      string
	InnerWidth int
}

func borderRow(inner int, left, fill, right string) string {
	return left + strings.Repeat(fill, inner+2) + right
}

func blankBorderRow(inner int) string {
	return "│ " + strings.Repeat(" ", inner) + " │"
}

func appendSection(lines []string, text string, inner int) []string {
	for _, l := range strings.Split(text, "\n") {
		l = grapheme.ClipToWidth(l, inner)
		l = grapheme.PadTo(l, inner, grapheme.AlignStart)
		lines = append(lines, "│ "+l+" │")
	}
	return lines
}

// Render lays out the modal box and returns an Overlay positioned at the
// center of a screenW x screenH background.
func (m Modal) Render(screenW, screenH int) Overlay {
	inner := m.InnerWidth
	var lines []string
	lines = append(lines, borderRow(inner, "╭", "─", "╮"))
	if m.Title != "" {
		lines = appendSection(lines, m.Title, inner)
		lines = append(lines, blankBorderRow(inner))
	}
	if m.Body != "" {
		lines = appendSection(lines, m.Body, inner)
	}
	if m.Hint != "" {
		lines = append(lines, blankBorderRow(inner))
		lines = appendSection(lines, m.Hint, inner)
	}
	lines = append(lines, borderRow(inner, "╰", "─", "╯"))

	content := strings.Join(lines, "\n")
	boxW := inner + 4
	boxH := len(lines)
	row := (screenH - boxH) / 2
	col := (screenW - boxW) / 2
	if row < 0 {
		row = 0
	}
	if col < 0 {
		col = 0
	}
	return Overlay{Content: content, Row: row, Col: col}
}

// ToastAnchor selects one of the four screen corners for a Toast.
type ToastAnchor int

const (
	ToastTopLeft ToastAnchor = iota
	ToastTopRight
	ToastBottomLeft
	ToastBottomRight
)

// ToastVariant selects the icon glyph for a Toast.
type ToastVariant int

const (
	ToastSuccess ToastVariant = iota
	ToastError
	ToastInfo
)

func (v ToastVariant) glyph() string {
	switch v {
	case ToastSuccess:
		return "✔"
	case ToastError:
		return "✘"
	default:
		return "ℹ"
	}
}

// Toast anchors a single-line icon+message overlay at one of the four
// screen corners with a margin.
type Toast struct {
	Anchor  ToastAnchor
	Variant ToastVariant
	Message string
	Margin  int
}

// Render positions the toast within a screenW x screenH background.
func (t Toast) Render(screenW, screenH int) Overlay {
	text := t.Variant.glyph() + " " + t.Message
	w := grapheme.VisibleWidth(text)

	var row, col int
	switch t.Anchor {
	case ToastTopLeft:
		row, col = t.Margin, t.Margin
	case ToastTopRight:
		row, col = t.Margin, screenW-w-t.Margin
	case ToastBottomLeft:
		row, col = screenH-1-t.Margin, t.Margin
	case ToastBottomRight:
		row, col = screenH-1-t.Margin, screenW-w-t.Margin
	}
	if row < 0 {
		row = 0
	}
	if col < 0 {
		col = 0
	}
	return Overlay{Content: text, Row: row, Col: col}
}

// DrawerAnchor selects which screen edge a Drawer is anchored to.
type DrawerAnchor int

const (
	DrawerLeft DrawerAnchor = iota
	DrawerRight
)

// Drawer is a bordered panel spanning the full screen height, anchored left
// or right, with interior content clipped and padded to the inner extent.
type Drawer struct {
	Anchor     DrawerAnchor
	InnerWidth int
	Content    string
}

// Render lays out the drawer for a screenW x screenH background.
func (d Drawer) Render(screenW, screenH int) Overlay {
	inner := d.InnerWidth
	bodyH := screenH - 2
	if bodyH < 0 {
		bodyH = 0
	}
	contentLines := strings.Split(d.Content, "\n")

	lines := make([]string, 0, bodyH+2)
	lines = append(lines, borderRow(inner, "╭", "─", "╮"))
	for i := 0; i < bodyH; i++ {
		var l string
		if i < len(contentLines) {
			l = contentLines[i]
		}
		l = grapheme.ClipToWidth(l, inner)
		l = grapheme.PadTo(l, inner, grapheme.AlignStart)
		lines = append(lines, "│ "+l+" │")
	}
	lines = append(lines, borderRow(inner, "╰", "─", "╯"))

	col := 0
	if d.Anchor == DrawerRight {
		col = screenW - (inner + 4)
	}
	if col < 0 {
		col = 0
	}
	return Overlay{Content: strings.Join(lines, "\n"), Row: 0, Col: col}
}

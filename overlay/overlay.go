// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

// Package overlay implements the Z-ordered compositing half of component C,
// plus the three derived overlay shapes (modal, toast, drawer) described in
// §4.C.
package overlay

import (
	"strings"

	"github.com/bijou-tui/bijou/internal/grapheme"
)

// Overlay is one painted region: Content (its own lines, own SGR) placed at
// (Row, Col) on the background.
type Overlay struct {
	Content string
	Row     int
	Col     int
}

// Compose paints overlays, in order, onto background. Later overlays cover
// earlier ones on overlap. dim wraps every background row in the dim SGR
// attribute before painting; overlay cells are never dimmed.
func Compose(background string, overlays []Overlay, dim bool) string {
	lines := strings.Split(background, "\n")
	if dim {
		for i, l := range lines {
			lines[i] = "\x1b[2m" + l + "\x1b[0m"
		}
	}

	for _, ov := range overlays {
		ovLines := strings.Split(ov.Content, "\n")
		for r, ovLine := range ovLines {
			target := ov.Row + r
			if target < 0 {
				continue
			}
			if target >= len(lines) {
				break // truncate overlay rows past the bottom of the background
			}
			lines[target] = spliceRow(lines[target], ov.Col, ovLine)
		}
	}
	return strings.Join(lines, "\n")
}

// spliceRow replaces the columns [col, col+width(ov)) of bg with ov,
// right-padding bg first if it is shorter than col, closing any open SGR
// attribute before the overlay, and restoring the background's prior SGR
// state after it.
func spliceRow(bg string, col int, ov string) string {
	bgW := grapheme.VisibleWidth(bg)
	if bgW < col {
		bg = bg + strings.Repeat(" ", col-bgW)
	}
	ovW := grapheme.VisibleWidth(ov)

	prefix, opened, lastSGR := clipKeepState(bg, col)
	suffix := skipWidth(bg, col+ovW)

	var b strings.Builder
	b.WriteString(prefix)
	if opened {
		b.WriteString("\x1b[0m")
	}
	b.WriteString(ov)
	// A reset is only needed before resuming the background if either side
	// left an attribute open; otherwise splicing plain text shouldn't
	// inject escape bytes that weren't there before.
	if opened || finalSGROpen(ov) {
		b.WriteString("\x1b[0m")
	}
	if opened {
		b.WriteString(lastSGR)
	}
	b.WriteString(suffix)
	return b.String()
}

// finalSGROpen reports whether s ends with a non-reset SGR attribute left
// open (i.e. the last SGR sequence in s, if any, was not a reset).
func finalSGROpen(s string) bool {
	open := false
	for _, c := range grapheme.Tokenize(s) {
		if c.SGR {
			open = !c.Reset
		}
	}
	return open
}

// clipKeepState clips s to n visible columns like grapheme.ClipToWidth, but
// instead of auto-appending a reset it reports whether an attribute was left
// open and the literal text of every SGR sequence since the last reset, so
// the caller can replay that state later.
func clipKeepState(s string, n int) (prefix string, opened bool, lastSGR string) {
	var b strings.Builder
	width := 0
	for _, c := range grapheme.Tokenize(s) {
		if c.SGR {
			b.WriteString(c.Text)
			if c.Reset {
				opened = false
				lastSGR = ""
			} else {
				opened = true
				lastSGR += c.Text
			}
			continue
		}
		if width+c.Width > n {
			break
		}
		b.WriteString(c.Text)
		width += c.Width
	}
	return b.String(), opened, lastSGR
}

// skipWidth returns the suffix of s starting at the point where accumulated
// non-SGR visible width first reaches n, including any SGR sequence that
// sits exactly at that boundary.
func skipWidth(s string, n int) string {
	cells := grapheme.Tokenize(s)
	width := 0
	cut := 0
	for i, c := range cells {
		if width >= n {
			cut = i
			break
		}
		if !c.SGR {
			width += c.Width
		}
		cut = i + 1
	}
	var b strings.Builder
	for _, c := range cells[cut:] {
		b.WriteString(c.Text)
	}
	return b.String()
}

// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

// Package grapheme implements component A of the Bijou engine: grapheme- and
// ANSI-SGR-aware width measurement, stripping, clipping, and padding.
//
// Grapheme segmentation and East-Asian-Width measurement are delegated to
// github.com/rivo/uniseg (the same grapheme library lipgloss and bubbletea
// depend on transitively) rather than hand-rolled, per the specification's
// instruction to rely on an established UAX #11 table. SGR detection and the
// reset-insertion rule on clip are bespoke: they encode an exact,
// version-independent contract this package must hold regardless of what a
// general-purpose ANSI stripper considers "a sequence".
package grapheme

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

const esc = '\x1b'

// Cell is one unit produced by Tokenize: either a grapheme cluster
// contributing Width visible columns, or a preserved SGR escape sequence
// contributing zero width.
type Cell struct {
	Text string
	Width int
	SGR  bool
	// Reset is true when SGR is true and the sequence is exactly ESC[m or
	// ESC[0m. A list such as ESC[0;1m, which resets and then sets an
	// attribute, is not a reset.
	Reset bool
}

// isSGR reports whether s[i:] begins an SGR sequence (ESC '[' params 'm')
// and returns the sequence's end index (exclusive) and whether it is a
// reset.
func isSGR(s string, i int) (end int, reset bool, ok bool) {
	if i >= len(s) || s[i] != esc {
		return 0, false, false
	}
	j := i + 1
	if j >= len(s) || s[j] != '[' {
		return 0, false, false
	}
	j++
	start := j
	for j < len(s) {
		c := s[j]
		if c == 'm' {
			params := s[start:j]
			reset := params == "" || params == "0"
			return j + 1, reset, true
		}
		if (c >= '0' && c <= '9') || c == ';' {
			j++
			continue
		}
		// Any other CSI-terminating byte means this isn't an SGR (it's
		// some other CSI sequence); bail without consuming it as SGR.
		return 0, false, false
	}
	return 0, false, false
}

// Tokenize splits s into Cells. Malformed UTF-8 is passed through with each
// malformed byte becoming its own Cell of width 1, per the specification's
// failure mode.
func Tokenize(s string) []Cell {
	var cells []Cell
	for len(s) > 0 {
		if end, reset, ok := isSGR(s, 0); ok {
			cells = append(cells, Cell{Text: s[:end], SGR: true, Reset: reset})
			s = s[end:]
			continue
		}

		// Consume the longest run up to (not including) the next ESC so
		// uniseg only ever sees printable text.
		runEnd := strings.IndexByte(s, esc)
		if runEnd < 0 {
			runEnd = len(s)
		}
		run := s[:runEnd]
		s = s[runEnd:]

		if !utf8.ValidString(run) {
			for i := 0; i < len(run); i++ {
				cells = append(cells, Cell{Text: run[i : i+1], Width: 1})
			}
			continue
		}

		state := -1
		for len(run) > 0 {
			cluster, rest, width, newState := uniseg.FirstGraphemeClusterInString(run, state)
			if width < 0 {
				width = 0
			}
			cells = append(cells, Cell{Text: cluster, Width: width})
			run = rest
			state = newState
		}
	}
	return cells
}

// VisibleWidth returns the display column count of s with all SGR sequences
// excluded and each grapheme cluster contributing its East-Asian-Width-based
// column count.
func VisibleWidth(s string) int {
	w := 0
	for _, c := range Tokenize(s) {
		w += c.Width
	}
	return w
}

// StripANSI removes every ESC '[' ... 'm' (SGR) sequence from s, leaving
// everything else, including non-SGR escape sequences, untouched.
func StripANSI(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, c := range Tokenize(s) {
		if !c.SGR {
			b.WriteString(c.Text)
		}
	}
	return b.String()
}

// SegmentGraphemes returns the grapheme cluster sequence of s (SGR sequences
// excluded), the unit truncation and measurement operate on.
func SegmentGraphemes(s string) []string {
	cells := Tokenize(s)
	out := make([]string, 0, len(cells))
	for _, c := range cells {
		if !c.SGR {
			out = append(out, c.Text)
		}
	}
	return out
}

// ClipToWidth returns the longest prefix of s whose visible width is <= n,
// preserving any intervening SGR bytes, and appends a reset SGR sequence iff
// a non-reset SGR was opened and not already closed within the returned
// prefix.
func ClipToWidth(s string, n int) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	width := 0
	opened := false
	for _, c := range Tokenize(s) {
		if c.SGR {
			b.WriteString(c.Text)
			if c.Reset {
				opened = false
			} else {
				opened = true
			}
			continue
		}
		if width+c.Width > n {
			break
		}
		b.WriteString(c.Text)
		width += c.Width
	}
	out := b.String()
	if opened {
		out += "\x1b[0m"
	}
	return out
}

// PadTo right-pads (or left-pads, or centers) s with spaces to exactly n
// visible columns. s wider than n is returned unchanged (callers are
// expected to clip first).
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

func PadTo(s string, n int, align Align) string {
	w := VisibleWidth(s)
	if w >= n {
		return s
	}
	deficit := n - w
	switch align {
	case AlignEnd:
		return strings.Repeat(" ", deficit) + s
	case AlignCenter:
		left := deficit / 2
		right := deficit - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default: // AlignStart
		return s + strings.Repeat(" ", deficit)
	}
}

// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

// Package viewport implements the windowing half of component C: a
// scrollable window over a rendered grid.
package viewport

import (
	"strings"

	"github.com/bijou-tui/bijou/internal/grapheme"
)

// View returns the height-row window of content starting at scrollY, each
// row clipped to width and padded to width. scrollY is clamped to
// [0, max(0, lineCount-height)].
func View(content string, width, height, scrollY int) string {
	lines := strings.Split(content, "\n")
	maxScroll := len(lines) - height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if scrollY < 0 {
		scrollY = 0
	}
	if scrollY > maxScroll {
		scrollY = maxScroll
	}

	out := make([]string, height)
	for i := 0; i < height; i++ {
		idx := scrollY + i
		var line string
		if idx < len(lines) {
			line = lines[idx]
		}
		line = grapheme.ClipToWidth(line, width)
		out[i] = grapheme.PadTo(line, width, grapheme.AlignStart)
	}
	return strings.Join(out, "\n")
}

// MaxScroll returns the largest valid scrollY for content of the given
// height budget.
func MaxScroll(content string, height int) int {
	lines := strings.Split(content, "\n")
	m := len(lines) - height
	if m < 0 {
		return 0
	}
	return m
}

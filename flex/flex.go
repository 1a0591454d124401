// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

// Package flex implements component B: flexbox-style distribution of a
// 1-D main-axis extent among children, and composition into a grid string
// of exact width x height cells.
package flex

import (
	"strings"

	"github.com/bijou-tui/bijou/internal/grapheme"
)

// Direction is the container's main axis.
type Direction int

const (
	Row Direction = iota
	Column
)

// Container describes the outer box a flex layout renders into.
type Container struct {
	Direction Direction
	Width     int
	Height    int
	Gap       int
}

// Render is a render-function child's content provider; it is measured as
// zero along the main axis, so it must be combined with Flex or Basis.
type Render func(w, h int) string

// Child is one flex item. Exactly one of Content or Render should be set;
// if both are, Render wins.
type Child struct {
	Content string
	Render  Render

	Flex    int
	Basis   int // used only when HasBasis is true
	HasBasis bool
	MinSize int
	MaxSize int // 0 means "no max"
	Align   grapheme.Align
}

func clamp(v, min, max int) int {
	if max > 0 && v > max {
		v = max
	}
	if v < min {
		v = min
	}
	return v
}

// intrinsicMain measures a child's content along the main axis: max visible
// line width for rows, line count for columns. Render children measure 0.
func intrinsicMain(c Child, dir Direction) int {
	if c.Render != nil {
		return 0
	}
	lines := strings.Split(c.Content, "\n")
	if dir == Row {
		max := 0
		for _, l := range lines {
			if w := grapheme.VisibleWidth(l); w > max {
				max = w
			}
		}
		return max
	}
	return len(lines)
}

// Render computes each child's main-axis allocation and composes the
// container into a Width x Height grid string.
func (cont Container) Render(children []Child) string {
	n := len(children)
	if n == 0 {
		return emptyGrid(cont.Width, cont.Height)
	}

	mainAxis := cont.Width
	if cont.Direction == Column {
		mainAxis = cont.Height
	}
	available := mainAxis - cont.Gap*(n-1)
	if available < 0 {
		available = 0
	}

	allocated := make([]int, n)
	usedByFixed := 0
	var flexChildren []int
	totalFlex := 0

	for i, c := range children {
		if c.Flex > 0 {
			flexChildren = append(flexChildren, i)
			totalFlex += c.Flex
			continue
		}
		size := intrinsicMain(c, cont.Direction)
		if c.HasBasis {
			size = c.Basis
		}
		size = clamp(size, c.MinSize, c.MaxSize)
		allocated[i] = size
		usedByFixed += size
	}

	remaining := available - usedByFixed
	if remaining < 0 {
		remaining = 0
	}
	for _, i := range flexChildren {
		c := children[i]
		var size int
		if totalFlex > 0 {
			size = (c.Flex * remaining) / totalFlex
		}
		size = clamp(size, c.MinSize, c.MaxSize)
		allocated[i] = size
	}

	crossAxis := cont.Height
	if cont.Direction == Column {
		crossAxis = cont.Width
	}

	rendered := make([][]string, n)
	for i, c := range children {
		rendered[i] = renderChild(c, cont.Direction, allocated[i], crossAxis)
	}

	if cont.Direction == Row {
		return joinRow(rendered, cont.Gap, cont.Width, cont.Height)
	}
	return joinColumn(rendered, cont.Gap, cont.Width, cont.Height)
}

// renderChild renders one child into its allocated main-axis extent and
// the container's cross-axis extent, clipping/padding as needed. For Row it
// returns crossSize (height) lines, each mainSize columns wide; for Column
// it returns mainSize lines, each crossSize (width) columns wide.
func renderChild(c Child, dir Direction, mainSize, crossSize int) []string {
	var content string
	if dir == Row {
		if c.Render != nil {
			content = c.Render(mainSize, crossSize)
		} else {
			content = c.Content
		}
		lines := strings.Split(content, "\n")
		out := make([]string, crossSize)
		for i := 0; i < crossSize; i++ {
			var line string
			if i < len(lines) {
				line = lines[i]
			}
			line = grapheme.ClipToWidth(line, mainSize)
			out[i] = grapheme.PadTo(line, mainSize, c.Align)
		}
		return out
	}

	// Column direction: mainSize is the line-count budget, crossSize is the
	// width budget.
	if c.Render != nil {
		content = c.Render(crossSize, mainSize)
	} else {
		content = c.Content
	}
	lines := strings.Split(content, "\n")
	out := make([]string, mainSize)
	for i := 0; i < mainSize; i++ {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		line = grapheme.ClipToWidth(line, crossSize)
		out[i] = grapheme.PadTo(line, crossSize, c.Align)
	}
	return out
}

func joinRow(rendered [][]string, gap, width, height int) string {
	spacer := strings.Repeat(" ", gap)
	lines := make([]string, height)
	for row := 0; row < height; row++ {
		var b strings.Builder
		for i, cols := range rendered {
			if i > 0 {
				b.WriteString(spacer)
			}
			if row < len(cols) {
				b.WriteString(cols[row])
			}
		}
		lines[row] = grapheme.PadTo(grapheme.ClipToWidth(b.String(), width), width, grapheme.AlignStart)
	}
	return strings.Join(lines, "\n")
}

func joinColumn(rendered [][]string, gap, width, height int) string {
	var out []string
	for i, child := range rendered {
		if i > 0 {
			for g := 0; g < gap; g++ {
				out = append(out, strings.Repeat(" ", width))
			}
		}
		out = append(out, child...)
	}
	// Clamp/pad to exactly height lines.
	if len(out) > height {
		out = out[:height]
	}
	for len(out) < height {
		out = append(out, strings.Repeat(" ", width))
	}
	for i, l := range out {
		out[i] = grapheme.PadTo(grapheme.ClipToWidth(l, width), width, grapheme.AlignStart)
	}
	return strings.Join(out, "\n")
}

func emptyGrid(width, height int) string {
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

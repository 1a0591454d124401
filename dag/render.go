// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

package dag

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/bijou-tui/bijou"
	"github.com/bijou-tui/bijou/internal/grapheme"
)

// Profile selects one of the three output renderings of §4.D.
type Profile int

const (
	// ProfileGrid is the full interactive/static box-and-wire grid.
	ProfileGrid Profile = iota
	// ProfilePipe emits one "Label (badge)? -> children" line per node.
	ProfilePipe
	// ProfileAccessible emits a layer-grouped prose summary.
	ProfileAccessible
)

// StyleFunc applies a Token to a run of text. A nil StyleFunc leaves text
// unstyled, which is how non-interactive profiles are always rendered.
type StyleFunc func(bijou.Token, string) string

// Position is the hit-test geometry of one rendered node box.
type Position struct {
	Row, Col, Width, Height int
}

// Result is everything Layout produces: the rendered string, per-node
// positions for hit-testing, and the overall grid dimensions.
type Result struct {
	Grid      string
	Positions map[string]Position
	Width     int
	Height    int
}

// RenderOptions configures Layout/Render.
type RenderOptions struct {
	Profile    Profile
	MaxWidth   int
	Style      StyleFunc
	Highlight  []string // ordered id path; edges and nodes along it get an override
	HighlightToken bijou.Token
	Selected       string
	SelectedToken  bijou.Token
}

type cell struct {
	ch    rune
	token bijou.Token
	hasToken bool
}

// Layout runs the full pipeline of §4.D: materialize, assign layers, order
// columns, size, route edges, then serialize under the requested profile.
func Layout(src Source, opts RenderOptions) (*Result, error) {
	if !src.Bounded() {
		return nil, ErrUnboundedSource
	}
	m := materialize(src)
	if err := m.assignLayers(); err != nil {
		return nil, err
	}
	layers := m.orderColumns()
	metrics := computeMetrics(src, m.ids, layers, opts.MaxWidth)

	colIndex := make(map[string]int, len(m.ids))
	for _, layer := range layers {
		for i, id := range layer {
			colIndex[id] = i
		}
	}
	centerCol := func(id string) int {
		return colIndex[id]*(metrics.nodeWidth+metrics.gap) + metrics.nodeWidth/2
	}

	grid := newEdgeGrid()
	highlightCells := make(map[[2]int]bool)
	for _, id := range m.ids {
		for _, c := range m.children[id] {
			path := isHighlighted(opts.Highlight, id, c)
			routeEdge(grid, m.layer[id], centerCol(id), m.layer[c], centerCol(c))
			if path {
				markHighlightedPath(grid, highlightCells, m.layer[id], centerCol(id), m.layer[c], centerCol(c))
			}
		}
	}

	height := (len(layers)) * rowsPerLayer
	width := 0
	for _, layer := range layers {
		if w := len(layer) * (metrics.nodeWidth + metrics.gap); w > width {
			width = w
		}
	}
	if width > 0 {
		width -= metrics.gap
	}

	cells := make([][]cell, height)
	for r := range cells {
		cells[r] = make([]cell, width)
		for c := range cells[r] {
			cells[r][c] = rendCell(' ')
		}
	}

	positions := make(map[string]Position, len(m.ids))
	for layerIdx, layer := range layers {
		top := layerIdx * rowsPerLayer
		for i, id := range layer {
			col := i * (metrics.nodeWidth + metrics.gap)
			positions[id] = Position{Row: top, Col: col, Width: metrics.nodeWidth, Height: 3}
			drawNodeBox(cells, src, id, top, col, metrics.nodeWidth, opts, highlightCells)
		}
	}

	for rc, d := range grid.cells {
		r, c := rc[0], rc[1]
		if r < 0 || r >= height || c < 0 || c >= width {
			continue
		}
		tok, has := edgeToken(opts, highlightCells, r, c)
		cells[r][c] = cell{ch: d.glyph(), token: tok, hasToken: has}
	}
	for rc := range grid.arrowheads {
		r, c := rc[0], rc[1]
		if r < 0 || r >= height || c < 0 || c >= width {
			continue
		}
		tok, has := edgeToken(opts, highlightCells, r, c)
		cells[r][c] = cell{ch: '▼', token: tok, hasToken: has}
	}

	switch opts.Profile {
	case ProfilePipe:
		return &Result{Grid: renderPipe(src, m), Positions: positions, Width: width, Height: height}, nil
	case ProfileAccessible:
		return &Result{Grid: renderAccessible(src, m, layers), Positions: positions, Width: width, Height: height}, nil
	default:
		return &Result{Grid: serializeGrid(cells, opts.Style), Positions: positions, Width: width, Height: height}, nil
	}
}

func rendCell(r rune) cell { return cell{ch: r} }

func isHighlighted(path []string, p, c string) bool {
	for i := 0; i+1 < len(path); i++ {
		if path[i] == p && path[i+1] == c {
			return true
		}
	}
	return false
}

func markHighlightedPath(g *edgeGrid, marks map[[2]int]bool, srcLayer, srcCol, dstLayer, dstCol int) {
	lo, hi := srcLayer*rowsPerLayer+3, dstLayer*rowsPerLayer-1
	if srcCol == dstCol {
		for r := lo; r <= hi; r++ {
			marks[[2]int{r, srcCol}] = true
		}
		return
	}
	// Same vertical/jog/vertical cells routeEdge lays down.
	jogRow := srcLayer*rowsPerLayer + 4
	for r := lo; r <= jogRow; r++ {
		marks[[2]int{r, srcCol}] = true
	}
	left, right := srcCol, dstCol
	if left > right {
		left, right = right, left
	}
	for c := left; c <= right; c++ {
		marks[[2]int{jogRow, c}] = true
	}
	for r := jogRow; r <= hi; r++ {
		marks[[2]int{r, dstCol}] = true
	}
}

// edgeToken resolves the override token for an edge-routing cell. Selection
// only overrides node boxes (see drawNodeBox); edges fall through to the
// highlight override.
func edgeToken(opts RenderOptions, highlighted map[[2]int]bool, r, c int) (bijou.Token, bool) {
	if highlighted[[2]int{r, c}] {
		return opts.HighlightToken, true
	}
	return bijou.Token{}, false
}

// drawNodeBox paints one node's bordered box (or dashed ghost box) into the
// shared cell grid at (top, col).
func drawNodeBox(cells [][]cell, src Source, id string, top, col, width int, opts RenderOptions, highlighted map[[2]int]bool) {
	ghost := src.Ghost(id)
	tl, tr, bl, br := '╭', '╮', '╰', '╯'
	h, v := '─', '│'
	if ghost {
		h, v = '╌', '╎'
	}

	tok, hasTok := src.Token(id)
	if opts.Selected == id {
		tok, hasTok = opts.SelectedToken, true
	} else {
		for _, p := range opts.Highlight {
			if p == id {
				tok, hasTok = opts.HighlightToken, true
				break
			}
		}
	}

	set := func(r, c int, ch rune) {
		if r < 0 || r >= len(cells) || c < 0 || c >= len(cells[r]) {
			return
		}
		cells[r][c] = cell{ch: ch, token: tok, hasToken: hasTok}
	}

	set(top, col, tl)
	set(top, col+width-1, tr)
	for c := col + 1; c < col+width-1; c++ {
		set(top, c, h)
		set(top+2, c, h)
	}
	set(top+2, col, bl)
	set(top+2, col+width-1, br)

	label := src.Label(id)
	if ghost {
		label = src.GhostLabel(id)
	}
	badge, hasBadge := src.Badge(id)
	text := label
	if hasBadge && !ghost {
		text = label + " (" + badge + ")"
	}
	inner := width - 2
	text = grapheme.ClipToWidth(text, inner)
	text = grapheme.PadTo(text, inner, grapheme.AlignCenter)

	set(top+1, col, v)
	set(top+1, col+width-1, v)
	runes := []rune(text)
	for i := 0; i < inner; i++ {
		ch := ' '
		if i < len(runes) {
			ch = runes[i]
		}
		set(top+1, col+1+i, ch)
	}
}

func serializeGrid(cells [][]cell, style StyleFunc) string {
	var rows []string
	for _, row := range cells {
		rows = append(rows, serializeRow(row, style))
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return strings.Join(rows, "\n")
}

func serializeRow(row []cell, style StyleFunc) string {
	var b strings.Builder
	i := 0
	for i < len(row) {
		j := i + 1
		for j < len(row) && row[j].hasToken == row[i].hasToken && row[j].token == row[i].token {
			j++
		}
		var run strings.Builder
		for k := i; k < j; k++ {
			run.WriteRune(row[k].ch)
		}
		text := run.String()
		if row[i].hasToken && style != nil {
			text = style(row[i].token, text)
		}
		b.WriteString(text)
		i = j
	}
	out := b.String()
	return strings.TrimRight(out, " ")
}

func renderPipe(src Source, m *materialized) string {
	var lines []string
	for _, id := range m.ids {
		lines = append(lines, pipeLine(src, m, id))
	}
	return strings.Join(lines, "\n")
}

func pipeLine(src Source, m *materialized, id string) string {
	label := nodeDisplayLabel(src, id)
	children := m.children[id]
	if len(children) == 0 {
		return label
	}
	labels := make([]string, len(children))
	for i, c := range children {
		labels[i] = nodeDisplayLabel(src, c)
	}
	return label + " -> " + strings.Join(labels, ", ")
}

func nodeDisplayLabel(src Source, id string) string {
	if src.Ghost(id) {
		return src.GhostLabel(id)
	}
	label := src.Label(id)
	if badge, ok := src.Badge(id); ok {
		return label + " (" + badge + ")"
	}
	return label
}

func renderAccessible(src Source, m *materialized, layers [][]string) string {
	edgeCount := 0
	for _, id := range m.ids {
		edgeCount += len(m.children[id])
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Graph: %d nodes, %d edges", len(m.ids), edgeCount)

	layerNums := make([]int, 0, len(layers))
	for i := range layers {
		layerNums = append(layerNums, i)
	}
	sort.Ints(layerNums)

	for _, idx := range layerNums {
		b.WriteString("\n\nLayer " + strconv.Itoa(idx+1) + ":")
		for _, id := range layers[idx] {
			b.WriteString("\n  " + pipeLineAccessible(src, m, id))
		}
	}
	return b.String()
}

func pipeLineAccessible(src Source, m *materialized, id string) string {
	children := m.children[id]
	if len(children) == 0 {
		return nodeDisplayLabel(src, id) + " (end)"
	}
	return pipeLine(src, m, id)
}

// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

package dag

// rowsPerLayer is fixed: top border, content, bottom border, then three
// rows reserved for edge routing (down, jog, down into the next layer).
const rowsPerLayer = 6

const minNodeWidth = 16

// gridMetrics holds the uniform node box width and inter-column gap shared
// by every box in the grid, chosen so the widest layer still fits maxWidth.
type gridMetrics struct {
	nodeWidth int
	gap       int
}

func nodeAutoWidth(label string, badge string, hasBadge bool) int {
	w := len([]rune(label)) + 4
	if hasBadge {
		w += len([]rune(badge)) + 2
	}
	if w < minNodeWidth {
		w = minNodeWidth
	}
	return w
}

// computeMetrics derives the grid's uniform node width and gap per §4.D
// step 4: start from the widest auto-fit node, then shrink gap before
// shrinking node width, never below minNodeWidth.
func computeMetrics(src Source, ids []string, layers [][]string, maxWidth int) gridMetrics {
	width := minNodeWidth
	for _, id := range ids {
		badge, hasBadge := src.Badge(id)
		if w := nodeAutoWidth(src.Label(id), badge, hasBadge); w > width {
			width = w
		}
	}

	maxPerLayer := 0
	for _, l := range layers {
		if len(l) > maxPerLayer {
			maxPerLayer = len(l)
		}
	}
	if maxPerLayer == 0 {
		maxPerLayer = 1
	}

	gap := 4
	if maxWidth > 0 && maxPerLayer*(width+gap) > maxWidth {
		gap = 2
		if maxPerLayer*(width+gap) > maxWidth {
			width = maxWidth/maxPerLayer - gap
			if width < minNodeWidth {
				width = minNodeWidth
			}
		}
	}
	return gridMetrics{nodeWidth: width, gap: gap}
}

// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

package dag

import "fmt"

// SliceOptions controls Slice's breadth-first traversal from a focus node.
type SliceOptions struct {
	Ancestors   bool
	Descendants bool
	// Depth limits the traversal in each direction. Zero or negative means
	// unlimited.
	AncestorDepth   int
	DescendantDepth int
}

// Slice narrows src to a bounded neighbourhood of focus, per §4.D's
// slicing rule: breadth-first out to an optional depth limit, with a
// synthetic ghost node injected at each truncated boundary reporting how
// many of that boundary node's direct neighbours were left out; nodes
// further beyond those neighbours are not counted. Ancestor traversal requires src to implement
// ParentSource; if it doesn't and Ancestors is requested, Slice fails with
// ErrUnsupportedSlice.
func Slice(src Source, focus string, opts SliceOptions) (Source, error) {
	var ps ParentSource
	if opts.Ancestors {
		p, ok := src.(ParentSource)
		if !ok {
			return nil, ErrUnsupportedSlice
		}
		ps = p
	}

	included := map[string]bool{focus: true}
	var nodes []Node
	nodes = append(nodes, toNode(src, focus))

	if opts.Descendants {
		boundary := bfsBoundary(focus, included, opts.DescendantDepth, func(id string) []string {
			return src.Children(id)
		})
		for _, id := range boundary.reached {
			nodes = append(nodes, toNode(src, id))
		}
		for i, g := range boundary.ghosts {
			ghostID := fmt.Sprintf("__ghost_desc_%s_%d", focus, i)
			nodes = append(nodes, Node{
				ID:         ghostID,
				Ghost:      true,
				GhostLabel: fmt.Sprintf("... %d descendants", g.count),
			})
			// The boundary edge points the truncated parent at the ghost.
			appendChild(nodes, g.from, ghostID)
		}
	}

	if opts.Ancestors {
		boundary := bfsBoundary(focus, included, opts.AncestorDepth, func(id string) []string {
			return ps.Parents(id)
		})
		for _, id := range boundary.reached {
			nodes = append(nodes, toNode(src, id))
		}
		for i, g := range boundary.ghosts {
			ghostID := fmt.Sprintf("__ghost_anc_%s_%d", focus, i)
			nodes = append(nodes, Node{
				ID:         ghostID,
				Ghost:      true,
				GhostLabel: fmt.Sprintf("... %d ancestors", g.count),
				Children:   []string{g.from},
			})
		}
	}

	return NewSource(nodes), nil
}

func appendChild(nodes []Node, from, to string) {
	for i := range nodes {
		if nodes[i].ID == from {
			nodes[i].Children = append(nodes[i].Children, to)
			return
		}
	}
}

func toNode(src Source, id string) Node {
	n := Node{ID: id, Label: src.Label(id), Children: src.Children(id), Ghost: src.Ghost(id), GhostLabel: src.GhostLabel(id)}
	if b, ok := src.Badge(id); ok {
		n.Badge, n.HasBadge = b, true
	}
	if t, ok := src.Token(id); ok {
		n.Token, n.HasToken = t, true
	}
	if t, ok := src.LabelToken(id); ok {
		n.LabelToken, n.HasLabelToken = t, true
	}
	if t, ok := src.BadgeToken(id); ok {
		n.BadgeToken, n.HasBadgeToken = t, true
	}
	if ps, ok := src.(ParentSource); ok {
		n.Parents = ps.Parents(id)
	}
	return n
}

type ghostBoundary struct {
	from  string
	count int
}

type bfsResult struct {
	reached []string
	ghosts  []ghostBoundary
}

// bfsBoundary walks neighbours(id) breadth-first from focus up to depth
// (unlimited if <= 0), returning the newly-reached ids (not already in
// seen) in visitation order, plus one ghost boundary entry per node whose
// further neighbours exist but weren't included because the depth limit
// was hit.
func bfsBoundary(focus string, seen map[string]bool, depth int, neighbours func(string) []string) bfsResult {
	type queued struct {
		id    string
		depth int
	}
	queue := []queued{{focus, 0}}
	var res bfsResult

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		atLimit := depth > 0 && cur.depth >= depth
		next := neighbours(cur.id)
		if atLimit {
			if n := countUnseen(next, seen); n > 0 {
				res.ghosts = append(res.ghosts, ghostBoundary{from: cur.id, count: n})
			}
			continue
		}
		for _, n := range next {
			if seen[n] {
				continue
			}
			seen[n] = true
			res.reached = append(res.reached, n)
			queue = append(queue, queued{n, cur.depth + 1})
		}
	}
	return res
}

func countUnseen(ids []string, seen map[string]bool) int {
	n := 0
	for _, id := range ids {
		if !seen[id] {
			n++
		}
	}
	return n
}

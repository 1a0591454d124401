// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

package dag

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// materialized is the walked, in-memory form of a Source: ids in source
// order, each node's children restricted to known ids (dangling targets
// elided per the data model's invariant).
type materialized struct {
	ids      []string
	index    map[string]int64 // id -> gonum node id
	children map[string][]string
	layer    map[string]int
}

// materialize walks src.IDs() once and drops edge targets absent from the
// id set, per §3's dangling-edge invariant.
func materialize(src Source) *materialized {
	m := &materialized{
		index:    make(map[string]int64),
		children: make(map[string][]string),
	}
	for i, id := range src.IDs() {
		m.ids = append(m.ids, id)
		m.index[id] = int64(i)
	}
	for _, id := range m.ids {
		for _, c := range src.Children(id) {
			if _, known := m.index[c]; known {
				m.children[id] = append(m.children[id], c)
			}
		}
	}
	return m
}

// assignLayers runs Kahn's algorithm (via gonum's topological sort) over the
// materialized edge set and assigns layer(id) = max(layer(parent))+1, with
// roots at layer 0. Any cycle, including a self-loop, yields ErrCyclicGraph.
func (m *materialized) assignLayers() error {
	g := simple.NewDirectedGraph()
	for _, id := range m.ids {
		g.AddNode(simple.Node(m.index[id]))
	}
	for _, id := range m.ids {
		from := m.index[id]
		for _, c := range m.children[id] {
			to := m.index[c]
			if from == to {
				return ErrCyclicGraph
			}
			g.SetEdge(simple.Edge{F: simple.Node(from), T: simple.Node(to)})
		}
	}

	// topo.Sort's only failure mode is topo.Unorderable, returned when the
	// graph is not a DAG.
	order, err := topo.Sort(g)
	if err != nil {
		return ErrCyclicGraph
	}

	idByGonum := make(map[int64]string, len(m.ids))
	for _, id := range m.ids {
		idByGonum[m.index[id]] = id
	}

	m.layer = make(map[string]int, len(m.ids))
	for _, n := range order {
		id := idByGonum[n.ID()]
		m.layer[id] = 0
	}
	// order is a valid topological order: every parent precedes its
	// children, so a single forward pass is enough to propagate
	// max(parent_layer)+1 down to every descendant.
	for _, n := range order {
		id := idByGonum[n.ID()]
		to := g.From(n.ID())
		for to.Next() {
			childID := idByGonum[to.Node().ID()]
			if want := m.layer[id] + 1; want > m.layer[childID] {
				m.layer[childID] = want
			}
		}
	}
	return nil
}

// parentsOf returns the known parents of id (nodes with id as a child),
// derived from the materialized child sets.
func (m *materialized) parentsOf(id string) []string {
	var out []string
	for _, p := range m.ids {
		for _, c := range m.children[p] {
			if c == id {
				out = append(out, p)
			}
		}
	}
	return out
}

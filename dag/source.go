// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

// Package dag implements component D: layered topological layout of
// directed acyclic graphs with barycenter crossing reduction and
// grid-based edge routing onto Unicode box-drawing characters.
package dag

import "github.com/bijou-tui/bijou"

// Source is the DagSource adapter of §3: an abstract view over graph data
// that any backing store (array, database, API) can implement without
// ownership cycles. A Source used directly with Layout must be
// Bounded (see §4.D); unbounded sources must first be narrowed with Slice.
type Source interface {
	IDs() []string
	Bounded() bool
	Label(id string) string
	Children(id string) []string
	Badge(id string) (string, bool)
	Token(id string) (bijou.Token, bool)
	LabelToken(id string) (bijou.Token, bool)
	BadgeToken(id string) (bijou.Token, bool)
	Ghost(id string) bool
	GhostLabel(id string) string
}

// ParentSource is an optional capability interface: sources that can report
// a node's parents implement it in addition to Source. Ancestor slicing
// requires it; sources that cannot support it must not implement it, so
// that a missing capability fails loudly instead of being silently
// approximated by scanning every node's children.
type ParentSource interface {
	Parents(id string) []string
}

// Node is one entry of a materialized (in-memory) graph.
type Node struct {
	ID         string
	Label      string
	Children   []string
	Parents    []string // optional; nil means "not tracked"
	Badge      string
	HasBadge   bool
	Token      bijou.Token
	HasToken   bool
	LabelToken bijou.Token
	HasLabelToken bool
	BadgeToken bijou.Token
	HasBadgeToken bool
	Ghost      bool
	GhostLabel string
}

// materializedSource is a bounded Source backed by an in-memory slice of
// Node, the materialised form every DagSource is walked into (§4.D step 1).
type materializedSource struct {
	order      []string
	byID       map[string]Node
	trackParents bool
}

// NewSource builds a bounded Source from a materialized node list. If any
// node sets Parents, the resulting Source also implements ParentSource.
func NewSource(nodes []Node) Source {
	m := &materializedSource{byID: make(map[string]Node, len(nodes))}
	for _, n := range nodes {
		if _, dup := m.byID[n.ID]; dup {
			continue
		}
		m.order = append(m.order, n.ID)
		m.byID[n.ID] = n
		if n.Parents != nil {
			m.trackParents = true
		}
	}
	if m.trackParents {
		return &materializedSourceWithParents{materializedSource: m}
	}
	return m
}

func (m *materializedSource) IDs() []string { return m.order }
func (m *materializedSource) Bounded() bool { return true }
func (m *materializedSource) Label(id string) string { return m.byID[id].Label }
func (m *materializedSource) Children(id string) []string { return m.byID[id].Children }
func (m *materializedSource) Badge(id string) (string, bool) {
	n := m.byID[id]
	return n.Badge, n.HasBadge
}
func (m *materializedSource) Token(id string) (bijou.Token, bool) {
	n := m.byID[id]
	return n.Token, n.HasToken
}
func (m *materializedSource) LabelToken(id string) (bijou.Token, bool) {
	n := m.byID[id]
	return n.LabelToken, n.HasLabelToken
}
func (m *materializedSource) BadgeToken(id string) (bijou.Token, bool) {
	n := m.byID[id]
	return n.BadgeToken, n.HasBadgeToken
}
func (m *materializedSource) Ghost(id string) bool { return m.byID[id].Ghost }
func (m *materializedSource) GhostLabel(id string) string { return m.byID[id].GhostLabel }

// materializedSourceWithParents additionally implements ParentSource; kept
// as a distinct type so that sources built without any Parents data do not
// satisfy ParentSource at all (a nil-returning Parents would be
// indistinguishable from "no parents" rather than "unsupported").
type materializedSourceWithParents struct {
	*materializedSource
}

func (m *materializedSourceWithParents) Parents(id string) []string {
	return m.byID[id].Parents
}

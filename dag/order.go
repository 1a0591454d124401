// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

package dag

import (
	"math"
	"sort"
)

// orderColumns groups ids by layer and runs one top-down barycenter sweep
// followed by one bottom-up sweep, per §4.D step 3. It returns, for each
// layer index, the ordered list of ids in that layer.
func (m *materialized) orderColumns() [][]string {
	maxLayer := 0
	for _, l := range m.layer {
		if l > maxLayer {
			maxLayer = l
		}
	}
	layers := make([][]string, maxLayer+1)
	for _, id := range m.ids {
		l := m.layer[id]
		layers[l] = append(layers[l], id)
	}

	positionIn := func(layer []string) map[string]int {
		pos := make(map[string]int, len(layer))
		for i, id := range layer {
			pos[id] = i
		}
		return pos
	}

	// Top-down: each layer (after layer 0) ordered by mean position of its
	// parents in the previous layer.
	for l := 1; l <= maxLayer; l++ {
		prevPos := positionIn(layers[l-1])
		barycenterSort(layers[l], func(id string) float64 {
			return meanIndex(m.parentsOf(id), prevPos)
		})
	}

	// Bottom-up: each layer (all but the last) re-ordered by mean position
	// of its children in the next layer. A single sweep in each direction,
	// never iterated to a fixed point.
	for l := maxLayer - 1; l >= 0; l-- {
		nextPos := positionIn(layers[l+1])
		barycenterSort(layers[l], func(id string) float64 {
			return meanIndex(m.children[id], nextPos)
		})
	}

	return layers
}

// meanIndex averages pos[id] over ids, returning +Inf when ids is empty or
// none of them are present in pos (no eligible neighbours).
func meanIndex(ids []string, pos map[string]int) float64 {
	sum, n := 0.0, 0
	for _, id := range ids {
		if p, ok := pos[id]; ok {
			sum += float64(p)
			n++
		}
	}
	if n == 0 {
		return math.Inf(1)
	}
	return sum / float64(n)
}

// barycenterSort stably reorders layer in place by ascending key(id), with
// nodes lacking eligible neighbours (key == +Inf) placed last.
func barycenterSort(layer []string, key func(string) float64) {
	keys := make(map[string]float64, len(layer))
	for _, id := range layer {
		keys[id] = key(id)
	}
	sort.SliceStable(layer, func(i, j int) bool {
		return keys[layer[i]] < keys[layer[j]]
	})
}

// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

package dag

import "errors"

// Sentinel errors identifying the dag error kinds. Callers should use
// errors.Is against these, never string-match messages.
var (
	// ErrCyclicGraph is returned when layering discovers a cycle, including
	// a self-loop.
	ErrCyclicGraph = errors.New("dag: cycle detected")

	// ErrUnboundedSource is returned when Layout is called on a Source that
	// is not Bounded.
	ErrUnboundedSource = errors.New("dag: unbounded source, call Slice first")

	// ErrUnsupportedSlice is returned when ancestor slicing is requested on
	// a Source that does not implement ParentSource.
	ErrUnsupportedSlice = errors.New("dag: source has no parents capability, cannot slice ancestors")
)

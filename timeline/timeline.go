// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

// Package timeline implements component H: the position-grammar compiler
// and pure-step evaluator for multi-track animation timelines.
package timeline

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/bijou-tui/bijou/anim"
)

// ErrDuplicateTrack is returned at construction (compile) time; ErrBadStep
// is returned by Step.
var (
	ErrDuplicateTrack = errors.New("timeline: duplicate track name")
	ErrBadStep        = errors.New("timeline: dt must be finite and non-negative")
)

// TrackSpec describes one track's engine. Exactly one of Spring or Tween is
// set; Tween additionally carries the user's chosen easing and duration.
type TrackSpec struct {
	From, To float64
	Spring   *anim.SpringConfig
	Tween    *TweenSpec
}

// TweenSpec is a tween-driven track's engine parameters.
type TweenSpec struct {
	DurationMS float64
	Ease       anim.Easing
}

type entryKind int

const (
	entryTrack entryKind = iota
	entryLabel
	entryCall
)

type entry struct {
	kind     entryKind
	name     string
	position string
	spec     TrackSpec
}

// Builder accumulates tracks, labels, and callbacks in insertion order for
// Compile.
type Builder struct {
	entries []entry
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// Add schedules a track at position (resolved against the cursor per the
// position grammar of §4.H).
func (b *Builder) Add(name string, spec TrackSpec, position string) *Builder {
	b.entries = append(b.entries, entry{kind: entryTrack, name: name, position: position, spec: spec})
	return b
}

// Label records the cursor's current prev_end_ms under name.
func (b *Builder) Label(name string) *Builder {
	b.entries = append(b.entries, entry{kind: entryLabel, name: name})
	return b
}

// Call schedules a callback at position without moving the cursor.
func (b *Builder) Call(name string, position string) *Builder {
	b.entries = append(b.entries, entry{kind: entryCall, name: name, position: position})
	return b
}

// ResolvedTrack is one compiled track: its absolute start time and
// estimated duration, both in milliseconds.
type ResolvedTrack struct {
	Name       string
	StartMS    float64
	DurationMS float64
	Spec       TrackSpec
}

// Callback is one compiled, time-sorted callback trigger.
type Callback struct {
	Name    string
	TimeMS  float64
}

// Timeline is the compiled artifact: resolved tracks plus time-sorted
// callback triggers.
type Timeline struct {
	Tracks    []ResolvedTrack
	Callbacks []Callback
	byName    map[string]int
}

// Compile resolves every entry against a cursor tracking prev_start_ms and
// prev_end_ms and a label dictionary, per §4.H. Unknown labels or malformed
// position tokens are reported here, at construction time, never at step
// time.
func (b *Builder) Compile() (*Timeline, error) {
	tl := &Timeline{byName: make(map[string]int)}
	labels := make(map[string]float64)

	var prevStart, prevEnd float64
	for _, e := range b.entries {
		switch e.kind {
		case entryLabel:
			if _, dup := labels[e.name]; dup {
				return nil, fmt.Errorf("timeline: duplicate label %q", e.name)
			}
			labels[e.name] = prevEnd

		case entryTrack:
			if _, dup := tl.byName[e.name]; dup {
				return nil, ErrDuplicateTrack
			}
			start, cursorRelative, err := resolvePosition(e.position, prevStart, prevEnd, labels)
			if err != nil {
				return nil, err
			}
			duration := estimateDurationMS(e.spec)
			tl.byName[e.name] = len(tl.Tracks)
			tl.Tracks = append(tl.Tracks, ResolvedTrack{Name: e.name, StartMS: start, DurationMS: duration, Spec: e.spec})
			// Explicit absolute/label positioning anchors a track outside
			// the default sequential flow: only cursor-relative tokens
			// advance prev_start_ms/prev_end_ms for the entries after it.
			if cursorRelative {
				prevStart, prevEnd = start, start+duration
			}

		case entryCall:
			t, _, err := resolvePosition(e.position, prevStart, prevEnd, labels)
			if err != nil {
				return nil, err
			}
			tl.Callbacks = append(tl.Callbacks, Callback{Name: e.name, TimeMS: t})
		}
	}

	sort.SliceStable(tl.Callbacks, func(i, j int) bool {
		return tl.Callbacks[i].TimeMS < tl.Callbacks[j].TimeMS
	})
	return tl, nil
}

func estimateDurationMS(spec TrackSpec) float64 {
	if spec.Tween != nil {
		return spec.Tween.DurationMS
	}
	cfg := anim.DefaultSpringConfig()
	if spec.Spring != nil {
		cfg = *spec.Spring
	}
	return anim.EstimateDuration(spec.From, spec.To, cfg) * 1000
}

// resolvePosition implements the position grammar table of §4.H. The
// second return reports whether the token is cursor-relative (omitted,
// `<`, `<+=N`, `+=N`, `-=N`, `>N`/`>=N`) as opposed to an absolute number
// or a label reference.
func resolvePosition(token string, prevStart, prevEnd float64, labels map[string]float64) (float64, bool, error) {
	switch {
	case token == "":
		return prevEnd, true, nil
	case token == "<":
		return prevStart, true, nil
	case strings.HasPrefix(token, "<+="):
		n, err := parseOffset(token[3:])
		return prevStart + n, true, err
	case strings.HasPrefix(token, "+="):
		n, err := parseOffset(token[2:])
		return prevEnd + n, true, err
	case strings.HasPrefix(token, "-="):
		n, err := parseOffset(token[2:])
		if err != nil {
			return 0, true, err
		}
		v := prevEnd - n
		if v < 0 {
			v = 0
		}
		return v, true, nil
	case strings.HasPrefix(token, ">="):
		n, err := parseOffset(token[2:])
		return prevEnd + n, true, err
	case strings.HasPrefix(token, ">"):
		n, err := parseOffset(token[1:])
		return prevEnd + n, true, err
	}

	if v, err := strconv.ParseFloat(token, 64); err == nil {
		if v < 0 {
			v = 0
		}
		return v, false, nil
	}

	name, offset, hasOffset := strings.Cut(token, "+=")
	base, ok := labels[name]
	if !ok {
		return 0, false, fmt.Errorf("timeline: unknown label %q", name)
	}
	if !hasOffset {
		return base, false, nil
	}
	n, err := parseOffset(offset)
	return base + n, false, err
}

func parseOffset(s string) (float64, error) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("timeline: malformed position offset %q", s)
	}
	return n, nil
}

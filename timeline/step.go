// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

package timeline

import (
	"math"

	"github.com/bijou-tui/bijou/anim"
)

// trackState is one track's per-run playback state.
type trackState struct {
	started bool
	done    bool
	spring  anim.Spring
	tween   anim.Tween
}

// State is the Timeline's runtime state: elapsed time plus one per-track
// playback state. Value-typed; Step returns a new State.
type State struct {
	ElapsedMS float64
	tracks    map[string]trackState
}

// Init returns the Timeline's initial state: elapsed 0, every track
// unstarted (so Values reports each track's `from`).
func (tl *Timeline) Init() State {
	return State{tracks: make(map[string]trackState, len(tl.Tracks))}
}

func (s State) clone() State {
	next := State{ElapsedMS: s.ElapsedMS, tracks: make(map[string]trackState, len(s.tracks))}
	for k, v := range s.tracks {
		next.tracks[k] = v
	}
	return next
}

// Step advances state by dtSeconds per §4.H. dt must be finite and
// non-negative.
func (tl *Timeline) Step(s State, dtSeconds float64) (State, error) {
	if math.IsNaN(dtSeconds) || math.IsInf(dtSeconds, 0) || dtSeconds < 0 {
		return State{}, ErrBadStep
	}

	next := s.clone()
	next.ElapsedMS = s.ElapsedMS + dtSeconds*1000

	for _, tr := range tl.Tracks {
		ts := next.tracks[tr.Name]
		if ts.done {
			continue
		}
		if next.ElapsedMS < tr.StartMS {
			next.tracks[tr.Name] = ts
			continue
		}
		if !ts.started {
			ts.started = true
			if tr.Spec.Tween != nil {
				ts.tween = anim.NewTween(tr.Spec.From, tr.Spec.To, tr.Spec.Tween.DurationMS/1000, tr.Spec.Tween.Ease)
			} else {
				cfg := anim.DefaultSpringConfig()
				if tr.Spec.Spring != nil {
					cfg = *tr.Spec.Spring
				}
				ts.spring = anim.NewSpring(tr.Spec.From, tr.Spec.To, cfg)
			}
		} else if tr.Spec.Tween != nil {
			ts.tween, _ = ts.tween.Step(dtSeconds)
			ts.done = ts.tween.Done
		} else {
			ts.spring = ts.spring.Step(dtSeconds)
			ts.done = ts.spring.Done
		}
		next.tracks[tr.Name] = ts
	}
	return next, nil
}

// Values projects every track's current value into a name->value map. A
// track that has not yet started reports its `from` value.
func (tl *Timeline) Values(s State) map[string]float64 {
	out := make(map[string]float64, len(tl.Tracks))
	for _, tr := range tl.Tracks {
		ts, ok := s.tracks[tr.Name]
		if !ok || !ts.started {
			out[tr.Name] = tr.Spec.From
			continue
		}
		if tr.Spec.Tween != nil {
			out[tr.Name] = ts.tween.Value()
		} else {
			out[tr.Name] = ts.spring.Position
		}
	}
	return out
}

// Done reports whether every track has settled.
func (tl *Timeline) Done(s State) bool {
	for _, tr := range tl.Tracks {
		if !s.tracks[tr.Name].done {
			return false
		}
	}
	return true
}

// FiredCallbacks returns the names of callbacks whose trigger time lies in
// (prev.ElapsedMS, next.ElapsedMS], with the time-0 boundary special-cased:
// a callback at time 0 fires on the first step where prev.ElapsedMS == 0
// and next.ElapsedMS > 0.
func (tl *Timeline) FiredCallbacks(prev, next State) []string {
	var names []string
	for _, cb := range tl.Callbacks {
		fires := (cb.TimeMS > prev.ElapsedMS && cb.TimeMS <= next.ElapsedMS) ||
			(cb.TimeMS == 0 && prev.ElapsedMS == 0 && next.ElapsedMS > 0)
		if fires {
			names = append(names, cb.Name)
		}
	}
	return names
}

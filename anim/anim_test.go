// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

package anim

import "testing"

func TestSpringSettlesAndSnaps(t *testing.T) {
	s := NewSpring(0, 1, DefaultSpringConfig())
	const dt = 1.0 / 60.0
	elapsed := 0.0
	for !s.Done && elapsed < 2.0 {
		s = s.Step(dt)
		elapsed += dt
	}
	if !s.Done {
		t.Fatalf("spring did not settle within 2s")
	}
	if s.Position != 1.0 {
		t.Errorf("Position = %v, want exactly 1.0 after snap", s.Position)
	}
	if s.Velocity != 0 {
		t.Errorf("Velocity = %v, want 0", s.Velocity)
	}
}

func TestSpringFixedPointAfterDone(t *testing.T) {
	s := NewSpring(0, 1, DefaultSpringConfig())
	for !s.Done {
		s = s.Step(1.0 / 60.0)
	}
	next := s.Step(1.0 / 60.0)
	if next != s {
		t.Errorf("expected fixed point, got %+v vs %+v", next, s)
	}
}

func TestSpringImmediateJumpsInOneStep(t *testing.T) {
	cfg := DefaultSpringConfig()
	cfg.Immediate = true
	s := NewSpring(0, 5, cfg)
	s = s.Step(1.0 / 60.0)
	if !s.Done || s.Position != 5 {
		t.Errorf("got %+v", s)
	}
}

func TestTweenDoneAtDuration(t *testing.T) {
	tw := NewTween(0, 1, 1.0, nil)
	tw, v := tw.Step(1.0)
	if !tw.Done || v != 1 {
		t.Errorf("got done=%v value=%v", tw.Done, v)
	}
}

func TestTweenLinearMidpoint(t *testing.T) {
	tw := NewTween(0, 10, 2.0, LinearEase)
	tw, v := tw.Step(1.0)
	if tw.Done {
		t.Errorf("expected not done at midpoint")
	}
	if v != 5 {
		t.Errorf("value = %v, want 5", v)
	}
}

// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

// Package anim implements component F: spring and tween integration.
//
// Springs are hand-rolled semi-implicit Euler integrators rather than
// wrapping charmbracelet/harmonica: harmonica parameterises a spring by
// angular frequency and damping ratio, derived from a settling-duration
// target, and cannot be driven by the literal stiffness/damping/precision
// triple this component's contract is defined in terms of.
package anim

import "math"

// SpringConfig tunes a Spring's integration.
type SpringConfig struct {
	Stiffness float64
	Damping   float64
	Precision float64
	Immediate bool
}

// DefaultSpringConfig matches the contract's default stiffness/damping and
// precision 0.01.
func DefaultSpringConfig() SpringConfig {
	return SpringConfig{Stiffness: 170, Damping: 26, Precision: 0.01}
}

// Named presets from §4.F.
func GentleSpring() SpringConfig { return SpringConfig{Stiffness: 120, Damping: 14, Precision: 0.01} }
func WobblySpring() SpringConfig { return SpringConfig{Stiffness: 40, Damping: 8, Precision: 0.01} }
func StiffSpring() SpringConfig  { return SpringConfig{Stiffness: 210, Damping: 20, Precision: 0.01} }
func SlowSpring() SpringConfig   { return SpringConfig{Stiffness: 280, Damping: 60, Precision: 0.01} }

// Spring is a value-typed spring integration state.
type Spring struct {
	Position float64
	Velocity float64
	Target   float64
	Config   SpringConfig
	Done     bool
}

// NewSpring starts a spring at from, moving toward to.
func NewSpring(from, to float64, cfg SpringConfig) Spring {
	return Spring{Position: from, Velocity: 0, Target: to, Config: cfg}
}

// Step advances the spring by dt seconds and returns the new state. Once
// Done is true, further calls are fixed points.
func (s Spring) Step(dt float64) Spring {
	if s.Done {
		return s
	}
	if s.Config.Immediate {
		s.Position = s.Target
		s.Velocity = 0
		s.Done = true
		return s
	}

	v := s.Velocity + (-s.Config.Stiffness*(s.Position-s.Target)-s.Config.Damping*s.Velocity)*dt
	x := s.Position + v*dt

	s.Velocity = v
	s.Position = x

	if math.Abs(s.Position-s.Target) < s.Config.Precision && math.Abs(s.Velocity) < s.Config.Precision {
		s.Position = s.Target
		s.Velocity = 0
		s.Done = true
	}
	return s
}

// EstimateDuration simulates a spring at 60fps, capped at 30s, and returns
// the elapsed seconds at settle. Used by the timeline compiler to estimate
// a spring track's duration.
func EstimateDuration(from, to float64, cfg SpringConfig) float64 {
	const fps = 60.0
	const dt = 1.0 / fps
	const capSeconds = 30.0

	s := NewSpring(from, to, cfg)
	elapsed := 0.0
	for !s.Done && elapsed < capSeconds {
		s = s.Step(dt)
		elapsed += dt
	}
	return elapsed
}

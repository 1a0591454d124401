// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

// Package theme provides named Theme dictionaries, grounded on the
// teacher's own palette constants (violet/cyan/green/amber/red on a gray
// scale) rather than invented colors.
package theme

import "github.com/bijou-tui/bijou"

// Default is the standard dark theme, carrying the teacher's palette
// forward as named semantic/status/border/ui tokens.
func Default() bijou.Theme {
	return bijou.Theme{
		Name: "default",
		Status: map[string]bijou.Token{
			"success": bijou.NewToken("#10b981"),
			"warning": bijou.NewToken("#f59e0b"),
			"error":   bijou.NewToken("#ef4444"),
			"info":    bijou.NewToken("#06b6d4"),
		},
		Semantic: map[string]bijou.Token{
			"accent":    bijou.NewToken("#a78bfa"),
			"accent-dim": bijou.NewToken("#7c3aed"),
			"primary":   bijou.NewToken("#06b6d4"),
		},
		Border: map[string]bijou.Token{
			"default": bijou.NewToken("#374151"),
			"focus":   bijou.NewToken("#a78bfa"),
		},
		UI: map[string]bijou.Token{
			"text":   bijou.NewToken("#f9fafb"),
			"dim":    bijou.NewToken("#6b7280"),
			"label":  bijou.NewToken("#a78bfa").With(bijou.ModBold),
		},
	}
}

// NoColor is the same dictionary with NoColor set, for pipe/accessible
// modes where the style port must not emit color SGR at all.
func NoColor() bijou.Theme {
	th := Default()
	th.Name = "no-color"
	th.NoColor = true
	return th
}

// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

// Package style implements the StylePort of §6 on top of
// github.com/charmbracelet/lipgloss, the styling library the teacher repo
// already builds every panel and accent color with.
package style

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bijou-tui/bijou"
)

// Port is a lipgloss-backed StylePort. NoColor disables foreground color
// while still applying modifiers, matching the NO_COLOR contract of §6.
type Port struct {
	NoColor bool
}

// New returns a Port honoring noColor.
func New(noColor bool) *Port { return &Port{NoColor: noColor} }

// Styled applies tok's color (unless NoColor) and modifiers to text.
func (p *Port) Styled(tok bijou.Token, text string) string {
	st := lipgloss.NewStyle()
	if !p.NoColor && tok.Hex != "" {
		st = st.Foreground(lipgloss.Color(tok.Hex))
	}
	if tok.Modifiers.Has(bijou.ModBold) {
		st = st.Bold(true)
	}
	if tok.Modifiers.Has(bijou.ModDim) {
		st = st.Faint(true)
	}
	if tok.Modifiers.Has(bijou.ModStrikethrough) {
		st = st.Strikethrough(true)
	}
	if tok.Modifiers.Has(bijou.ModInverse) {
		st = st.Reverse(true)
	}
	return st.Render(text)
}

// Bold renders text bold, with no color applied.
func (p *Port) Bold(text string) string {
	return lipgloss.NewStyle().Bold(true).Render(text)
}

var _ bijou.StylePort = (*Port)(nil)

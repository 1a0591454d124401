// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

package style

import (
	"strings"
	"testing"

	"github.com/bijou-tui/bijou"
)

func TestStyledAppliesColor(t *testing.T) {
	p := New(false)
	out := p.Styled(bijou.NewToken("#a78bfa"), "hi")
	if !strings.Contains(out, "hi") {
		t.Errorf("Styled output %q does not contain input text", out)
	}
	if out == "hi" {
		t.Error("Styled with a set color should emit SGR codes, got plain text")
	}
}

func TestStyledNoColorOmitsColorCodes(t *testing.T) {
	p := New(true)
	out := p.Styled(bijou.NewToken("#a78bfa"), "hi")
	if out != "hi" {
		t.Errorf("Styled with NoColor = %q, want plain %q", out, "hi")
	}
}

func TestBold(t *testing.T) {
	p := New(false)
	out := p.Bold("x")
	if !strings.Contains(out, "x") {
		t.Errorf("Bold output %q does not contain input text", out)
	}
}

// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

package overlay

import (
	"strings"
	"testing"

	"github.com/bijou-tui/bijou/internal/grapheme"
)

func TestComposeReplacesExactSpan(t *testing.T) {
	bg := "0123456789\n0123456789"
	ov := []Overlay{{Content: "XX", Row: 0, Col: 3}}
	got := Compose(bg, ov, false)
	want := "012XX56789\n0123456789"
	if got != want {
		t.Errorf("Compose() = %q, want %q", got, want)
	}
}

func TestComposeLaterOverlayWins(t *testing.T) {
	bg := "0123456789"
	ov := []Overlay{
		{Content: "AAAA", Row: 0, Col: 0},
		{Content: "BB", Row: 0, Col: 0},
	}
	got := Compose(bg, ov, false)
	want := "BBAA456789"
	if got != want {
		t.Errorf("Compose() = %q, want %q", got, want)
	}
}

func TestComposePadsShortBackgroundRow(t *testing.T) {
	bg := "ab"
	ov := []Overlay{{Content: "Z", Row: 0, Col: 4}}
	got := Compose(bg, ov, false)
	want := "ab  Z"
	if got != want {
		t.Errorf("Compose() = %q, want %q", got, want)
	}
}

func TestComposeTruncatesPastBottom(t *testing.T) {
	bg := "a\nb"
	ov := []Overlay{{Content: "X\nY\nZ", Row: 1, Col: 0}}
	got := Compose(bg, ov, false)
	want := "a\nX"
	if got != want {
		t.Errorf("Compose() = %q, want %q", got, want)
	}
}

func TestComposeExtendsPastRightEdge(t *testing.T) {
	bg := "abc"
	ov := []Overlay{{Content: "XYZ", Row: 0, Col: 2}}
	got := Compose(bg, ov, false)
	want := "abXYZ"
	if got != want {
		t.Errorf("Compose() = %q, want %q", got, want)
	}
}

func TestComposePreservesComplementUnderSGR(t *testing.T) {
	bg := "\x1b[31mhello world\x1b[0m"
	ov := []Overlay{{Content: "XX", Row: 0, Col: 6}}
	got := Compose(bg, ov, false)

	// Complement: everything outside [6, 8) should strip-equal the original.
	stripped := grapheme.StripANSI(got)
	if stripped != "hello XXrld" {
		t.Errorf("stripped = %q", stripped)
	}
	if !strings.Contains(got, "XX") {
		t.Errorf("expected overlay text present, got %q", got)
	}
}

func TestModalClampsWhenTooBig(t *testing.T) {
	m := Modal{Title: "T", Body: "B", InnerWidth: 50}
	ov := m.Render(10, 5)
	if ov.Row != 0 || ov.Col != 0 {
		t.Errorf("expected clamp to (0,0), got (%d,%d)", ov.Row, ov.Col)
	}
}

func TestModalCentersWhenFits(t *testing.T) {
	m := Modal{Body: "hi", InnerWidth: 4}
	ov := m.Render(20, 10)
	// box width = inner+4 = 8, box height = top+body+bottom = 3
	wantCol := (20 - 8) / 2
	wantRow := (10 - 3) / 2
	if ov.Col != wantCol || ov.Row != wantRow {
		t.Errorf("got (%d,%d), want (%d,%d)", ov.Row, ov.Col, wantRow, wantCol)
	}
}

func TestToastAnchors(t *testing.T) {
	tt := Toast{Anchor: ToastBottomRight, Variant: ToastSuccess, Message: "done", Margin: 1}
	ov := tt.Render(20, 10)
	text := "✔ done"
	w := grapheme.VisibleWidth(text)
	if ov.Row != 10-1-1 || ov.Col != 20-w-1 {
		t.Errorf("got (%d,%d)", ov.Row, ov.Col)
	}
}

func TestDrawerSpansFullHeight(t *testing.T) {
	d := Drawer{Anchor: DrawerLeft, InnerWidth: 4, Content: "x"}
	ov := d.Render(20, 6)
	lines := strings.Split(ov.Content, "\n")
	if len(lines) != 6 {
		t.Errorf("got %d lines, want 6", len(lines))
	}
	if ov.Col != 0 {
		t.Errorf("expected left anchor col 0, got %d", ov.Col)
	}
}

func TestDrawerRightAnchor(t *testing.T) {
	d := Drawer{Anchor: DrawerRight, InnerWidth: 4, Content: "x"}
	ov := d.Render(20, 6)
	if ov.Col != 20-8 {
		t.Errorf("expected right anchor col %d, got %d", 20-8, ov.Col)
	}
}

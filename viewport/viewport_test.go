// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

package viewport

import (
	"strings"
	"testing"
)

func TestViewWindowAndClip(t *testing.T) {
	content := "one\ntwo\nthree\nfour\nfive"
	got := View(content, 4, 2, 1)
	want := "two \nthre"
	if got != want {
		t.Errorf("View() = %q, want %q", got, want)
	}
}

func TestViewClampsScroll(t *testing.T) {
	content := "a\nb\nc"
	got := View(content, 1, 2, 100)
	want := "b\nc"
	if got != want {
		t.Errorf("View() = %q, want %q", got, want)
	}
}

func TestViewNegativeScrollClampsToZero(t *testing.T) {
	content := "a\nb\nc"
	got := View(content, 1, 2, -5)
	want := "a\nb"
	if got != want {
		t.Errorf("View() = %q, want %q", got, want)
	}
}

func TestViewPadsShortContent(t *testing.T) {
	got := View("hi", 4, 3, 0)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[1] != "    " || lines[2] != "    " {
		t.Errorf("expected blank padded lines, got %q", lines)
	}
}

// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

package animplot

import (
	"bytes"
	"testing"

	"github.com/bijou-tui/bijou/anim"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestRenderSpringProducesValidPNG(t *testing.T) {
	samples := SampleSpring(anim.DefaultSpringConfig(), 1.0, 60, 2000)
	if len(samples) < 2 {
		t.Fatalf("expected multiple samples, got %d", len(samples))
	}
	png, err := Render("spring", samples, 400, 200)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(png) == 0 {
		t.Fatal("expected non-empty PNG")
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Error("output does not start with PNG magic bytes")
	}
}

func TestRenderTweenProducesValidPNG(t *testing.T) {
	tw := anim.NewTween(0, 1, 0.5, anim.EaseOutCubic)
	samples := SampleTween(tw, 30)
	png, err := Render("tween", samples, 300, 150)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Error("output does not start with PNG magic bytes")
	}
}

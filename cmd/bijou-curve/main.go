// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

// bijou-curve renders a spring preset's step response to a PNG,
// for visually debugging animation presets during development.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bijou-tui/bijou/anim"
	"github.com/bijou-tui/bijou/internal/animplot"
)

var springPresets = map[string]func() anim.SpringConfig{
	"default": anim.DefaultSpringConfig,
	"gentle":  anim.GentleSpring,
	"wobbly":  anim.WobblySpring,
	"stiff":   anim.StiffSpring,
	"slow":    anim.SlowSpring,
}

func main() {
	preset := flag.String("preset", "default", "spring preset: default, gentle, wobbly, stiff, slow")
	out := flag.String("out", "curve.png", "output PNG path")
	fps := flag.Int("fps", 60, "sample rate in frames per second")
	maxMS := flag.Float64("max-ms", 3000, "maximum time window to sample, in milliseconds")
	width := flag.Int("width", 640, "image width in pixels")
	height := flag.Int("height", 360, "image height in pixels")
	flag.Parse()

	cfgFn, ok := springPresets[*preset]
	if !ok {
		fmt.Fprintf(os.Stderr, "bijou-curve: unknown preset %q\n", *preset)
		os.Exit(1)
	}

	samples := animplot.SampleSpring(cfgFn(), 1.0, *fps, *maxMS)
	png, err := animplot.Render(fmt.Sprintf("spring: %s", *preset), samples, *width, *height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bijou-curve: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, png, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "bijou-curve: write %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d samples to %s\n", len(samples), *out)
}

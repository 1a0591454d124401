// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

// Package animplot renders a spring or tween's step response to a PNG,
// binding gonum.org/v1/plot — declared in the teacher's go.mod but never
// actually imported by its own main.go — to a genuinely useful diagnostic
// tool: visualizing animation presets the way the teacher's sparklines
// visualize CPU/memory history.
package animplot

import (
	"bytes"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/bijou-tui/bijou/anim"
)

// Sample is one (time, value) point of a rendered curve.
type Sample struct {
	TimeMS float64
	Value  float64
}

// SampleSpring steps cfg from 0 to target and returns the full step
// response at the given frame rate, stopping once the spring settles or
// maxMS elapses.
func SampleSpring(cfg anim.SpringConfig, target float64, fps int, maxMS float64) []Sample {
	if fps <= 0 {
		fps = 60
	}
	dt := 1.0 / float64(fps)
	s := anim.NewSpring(0, target, cfg)
	samples := []Sample{{TimeMS: 0, Value: s.Position}}
	elapsed := 0.0
	for !s.Done && elapsed < maxMS {
		s = s.Step(dt)
		elapsed += dt * 1000
		samples = append(samples, Sample{TimeMS: elapsed, Value: s.Position})
	}
	return samples
}

// SampleTween steps tw to completion at the given frame rate.
func SampleTween(tw anim.Tween, fps int) []Sample {
	if fps <= 0 {
		fps = 60
	}
	dt := 1.0 / float64(fps)
	samples := []Sample{{TimeMS: 0, Value: tw.Value()}}
	for !tw.Done {
		var v float64
		tw, v = tw.Step(dt)
		samples = append(samples, Sample{TimeMS: tw.Elapsed * 1000, Value: v})
	}
	return samples
}

// Render draws samples as a line plot titled title and returns the
// encoded PNG bytes at the given pixel dimensions.
func Render(title string, samples []Sample, widthPx, heightPx int) ([]byte, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "time (ms)"
	p.Y.Label.Text = "value"

	pts := make(plotter.XYs, len(samples))
	for i, s := range samples {
		pts[i].X = s.TimeMS
		pts[i].Y = s.Value
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("animplot: new line: %w", err)
	}
	line.LineStyle.Width = vg.Points(1.5)
	p.Add(line)
	p.Add(plotter.NewGrid())

	writer, err := p.WriterTo(vg.Length(widthPx)*vg.Inch/96, vg.Length(heightPx)*vg.Inch/96, "png")
	if err != nil {
		return nil, fmt.Errorf("animplot: writer: %w", err)
	}
	var buf bytes.Buffer
	if _, err := writer.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("animplot: encode: %w", err)
	}
	return buf.Bytes(), nil
}

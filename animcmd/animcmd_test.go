// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

package animcmd

import (
	"context"
	"testing"
	"time"

	"github.com/bijou-tui/bijou"
	"github.com/bijou-tui/bijou/anim"
	"github.com/bijou-tui/bijou/bus"
)

type tickerIO struct{}

func (tickerIO) Write(p []byte) (int, error)          { return len(p), nil }
func (tickerIO) Question(string) (string, error)      { return "", nil }
func (tickerIO) RawInput(func([]byte)) bijou.Handle    { return bijou.NewHandle(nil) }
func (tickerIO) OnResize(func(int, int)) bijou.Handle  { return bijou.NewHandle(nil) }
func (tickerIO) ReadFile(string) ([]byte, error)       { return nil, nil }
func (tickerIO) ReadDir(string) ([]string, error)      { return nil, nil }
func (tickerIO) JoinPath(elem ...string) string        { return "" }

func (tickerIO) SetInterval(cb func(), d time.Duration) bijou.Handle {
	t := time.NewTicker(d)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-t.C:
				cb()
			case <-done:
				t.Stop()
				return
			}
		}
	}()
	return bijou.NewHandle(func() { close(done) })
}

func TestAnimateTweenEmitsFramesAndCompletes(t *testing.T) {
	tw := anim.NewTween(0, 1, 0.01, nil)
	var frames []FrameMsg
	cmd := Animate(Options{
		Name:  "x",
		From:  0,
		To:    1,
		Tween: &tw,
		FPS:   1000,
		IO:    tickerIO{},
		OnComplete: func() bus.Msg { return "done" },
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	result := cmd(ctx, func(m bus.Msg) { frames = append(frames, m.(FrameMsg)) })

	if result != "done" {
		t.Fatalf("result = %v, want %q", result, "done")
	}
	if len(frames) == 0 {
		t.Fatal("expected at least one frame")
	}
	last := frames[len(frames)-1]
	if !last.Done || last.Value != 1 {
		t.Errorf("last frame = %+v", last)
	}
}

func TestAnimateImmediateSpringResolvesInOneFrame(t *testing.T) {
	cfg := anim.DefaultSpringConfig()
	cfg.Immediate = true
	var frames []FrameMsg
	cmd := Animate(Options{Name: "x", From: 0, To: 9, Spring: cfg, IO: tickerIO{}})
	ctx := context.Background()
	cmd(ctx, func(m bus.Msg) { frames = append(frames, m.(FrameMsg)) })
	if len(frames) != 1 || frames[0].Value != 9 || !frames[0].Done {
		t.Errorf("frames = %+v", frames)
	}
}

// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

// Package animcmd implements component G: commands that drive component F's
// spring and tween integrators to completion, emitting a frame message on
// every simulated step.
package animcmd

import (
	"context"
	"sync"
	"time"

	"github.com/bijou-tui/bijou"
	"github.com/bijou-tui/bijou/anim"
	"github.com/bijou-tui/bijou/bus"
)

// FrameMsg carries one simulated animation step's value, tagged with Name
// so a model's update function can route it to the right field.
type FrameMsg struct {
	Name  string
	Value float64
	Done  bool
}

// Options configures Animate. Exactly one of Spring/Tween drives the
// simulation; a nil Tween field means spring-driven.
type Options struct {
	Name        string
	From, To    float64
	Spring      anim.SpringConfig
	Tween       *anim.Tween
	FPS         int
	OnComplete  func() bus.Msg
	IO          bijou.IO
}

// Animate returns a Cmd implementing the contract of §4.G: spring
// (default) or tween emit one FrameMsg per simulated step at the
// configured fps, optionally emit onComplete, then resolve after settle.
// immediate (Spring.Immediate or a zero-duration tween) emits one frame at
// `to`, the completion, then resolves.
func Animate(opts Options) bus.Cmd {
	fps := opts.FPS
	if fps <= 0 {
		fps = 60
	}
	dt := time.Second / time.Duration(fps)

	return func(ctx context.Context, emit bus.Emit) bus.Msg {
		if opts.Tween != nil {
			return runTween(ctx, opts, dt, emit)
		}
		return runSpring(ctx, opts, dt, emit)
	}
}

func runSpring(ctx context.Context, opts Options, dt time.Duration, emit bus.Emit) bus.Msg {
	s := anim.NewSpring(opts.From, opts.To, opts.Spring)
	if opts.Spring.Immediate {
		s = s.Step(dt.Seconds())
		emit(FrameMsg{Name: opts.Name, Value: s.Position, Done: true})
		return complete(opts)
	}

	settled := runUntilDone(ctx, opts.IO, dt, func() bool {
		s = s.Step(dt.Seconds())
		emit(FrameMsg{Name: opts.Name, Value: s.Position, Done: s.Done})
		return s.Done
	})
	if !settled {
		return nil
	}
	return complete(opts)
}

func runTween(ctx context.Context, opts Options, dt time.Duration, emit bus.Emit) bus.Msg {
	tw := *opts.Tween
	if tw.Duration <= 0 {
		emit(FrameMsg{Name: opts.Name, Value: opts.To, Done: true})
		return complete(opts)
	}

	settled := runUntilDone(ctx, opts.IO, dt, func() bool {
		var v float64
		tw, v = tw.Step(dt.Seconds())
		emit(FrameMsg{Name: opts.Name, Value: v, Done: tw.Done})
		return tw.Done
	})
	if !settled {
		return nil
	}
	return complete(opts)
}

func complete(opts Options) bus.Msg {
	if opts.OnComplete != nil {
		return opts.OnComplete()
	}
	return nil
}

// runUntilDone drives fn once per dt through the I/O port's interval timer
// (never a bare time.Ticker, so cancelling the enclosing runtime releases
// it along with every other port resource) until fn reports done or ctx is
// cancelled. It returns whether fn actually settled.
func runUntilDone(ctx context.Context, io bijou.IO, dt time.Duration, fn func() (done bool)) bool {
	if io == nil {
		return false
	}
	result := make(chan struct{})
	var once sync.Once
	handle := io.SetInterval(func() {
		if ctx.Err() != nil {
			return
		}
		if fn() {
			once.Do(func() { close(result) })
		}
	}, dt)
	defer handle.Dispose()

	select {
	case <-result:
		return true
	case <-ctx.Done():
		return false
	}
}

// Sequence returns a Cmd that awaits each child in order, sharing one
// emitter, per §4.G.
func Sequence(cmds ...bus.Cmd) bus.Cmd {
	return func(ctx context.Context, emit bus.Emit) bus.Msg {
		var last bus.Msg
		for _, c := range cmds {
			if ctx.Err() != nil {
				return nil
			}
			last = c(ctx, emit)
			if bus.IsQuit(last) {
				return last
			}
		}
		return last
	}
}

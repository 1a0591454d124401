// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

// Package runtime implements component K: the TEA-style program loop. Its
// architecture (single subscriber loop, commands as concurrent tasks whose
// emissions serialise through one bus, differential re-render per message)
// is grounded on charmbracelet/bubbletea's tea.go Program loop, rewritten
// from scratch against this module's own Context/bus/screen primitives
// rather than imported, since bubbletea itself already is the TEA runtime
// this component's contract asks for an original implementation of.
package runtime

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bijou-tui/bijou"
	"github.com/bijou-tui/bijou/bus"
	"github.com/bijou-tui/bijou/internal/record"
	"github.com/bijou-tui/bijou/screen"
)

// Model is an application-owned, opaque, immutable value.
type Model interface{}

// UpdateFunc applies msg to model, returning the replaced model, a batch of
// commands to run, and a non-nil error to terminate the loop.
type UpdateFunc func(msg bus.Msg, model Model) (Model, []bus.Cmd, error)

// Program is the user-supplied init/update/view triple.
type Program struct {
	Init   func() (Model, []bus.Cmd)
	Update UpdateFunc
	View   func(model Model) string
}

// Config supplies the Context collaborators the runtime constructs its
// Context from, per §4.K step 1.
type Config struct {
	Runtime  bijou.RuntimeInfo
	IO       bijou.IO
	Style    bijou.StylePort
	Theme    bijou.Theme
	Recorder *record.Writer
}

// Run executes the full lifecycle of §4.K: detect mode, enter the alt
// screen (interactive and static modes only), run init, then loop
// delivering bus messages to Update and re-rendering View, until a command
// resolves bus.Quit, Update returns an error, or parent is cancelled. An
// alt screen that was entered is exited before Run returns.
func Run(parent context.Context, prog Program, cfg Config) error {
	mode := bijou.DetectOutputMode(cfg.Runtime.Env, cfg.Runtime.StdoutIsTTY)
	ctx := &bijou.Context{Runtime: cfg.Runtime, IO: cfg.IO, Style: cfg.Style, Theme: cfg.Theme, Mode: mode}
	bijou.SetDefaultContext(ctx)

	interactive := mode == bijou.ModeInteractive || mode == bijou.ModeStatic
	if interactive {
		if err := screen.Enter(cfg.IO); err != nil {
			return err
		}
	}

	b := bus.New(parent)
	quit := make(chan struct{})
	var quitOnce sync.Once
	b.OnQuit(func() { quitOnce.Do(func() { close(quit) }) })

	msgs := make(chan bus.Msg, 32)
	b.Subscribe(func(m bus.Msg) { msgs <- m })

	if interactive {
		b.Connect(cfg.IO)
	}

	started := time.Now()
	model, cmds := prog.Init()
	for _, c := range cmds {
		b.Run(c)
	}
	render(ctx, cfg.Recorder, started, prog, model)

	var loopErr error
loop:
	for {
		select {
		case <-quit:
			break loop
		case <-parent.Done():
			break loop
		case msg := <-msgs:
			if r, ok := msg.(bus.ResizeMsg); ok {
				ctx.Runtime.Columns, ctx.Runtime.Rows = r.Columns, r.Rows
			}
			if cfg.Recorder != nil {
				_ = cfg.Recorder.WriteMsg(time.Since(started).Milliseconds(), fmt.Sprintf("%T", msg), fmt.Sprintf("%+v", msg))
			}
			next, nextCmds, err := prog.Update(msg, model)
			if err != nil {
				loopErr = fmt.Errorf("runtime: update failed: %w", err)
				break loop
			}
			model = next
			for _, c := range nextCmds {
				b.Run(c)
			}
			render(ctx, cfg.Recorder, started, prog, model)
		}
	}

	if interactive {
		if err := screen.Exit(cfg.IO); err != nil && loopErr == nil {
			loopErr = err
		}
	}
	if cfg.Recorder != nil {
		_ = cfg.Recorder.Flush()
	}
	b.Dispose()
	return loopErr
}

func render(ctx *bijou.Context, rec *record.Writer, started time.Time, prog Program, model Model) {
	view := prog.View(model)
	switch ctx.Mode {
	case bijou.ModeInteractive, bijou.ModeStatic:
		screen.RenderFrame(ctx.IO, view)
	default:
		ctx.IO.Write([]byte(view + "\n"))
	}
	if rec != nil {
		_ = rec.WriteFrame(time.Since(started).Milliseconds(), view)
	}
}

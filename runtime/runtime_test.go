// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

package runtime

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/bijou-tui/bijou"
	"github.com/bijou-tui/bijou/bus"
	"github.com/bijou-tui/bijou/internal/record"
)

type fakeIO struct {
	buf bytes.Buffer
}

func (f *fakeIO) Write(p []byte) (int, error)          { return f.buf.Write(p) }
func (f *fakeIO) Question(string) (string, error)      { return "", nil }
func (f *fakeIO) RawInput(func([]byte)) bijou.Handle    { return bijou.NewHandle(nil) }
func (f *fakeIO) OnResize(func(int, int)) bijou.Handle  { return bijou.NewHandle(nil) }
func (f *fakeIO) SetInterval(func(), time.Duration) bijou.Handle { return bijou.NewHandle(nil) }
func (f *fakeIO) ReadFile(string) ([]byte, error)       { return nil, nil }
func (f *fakeIO) ReadDir(string) ([]string, error)      { return nil, nil }
func (f *fakeIO) JoinPath(elem ...string) string        { return "" }

type countModel struct{ n int }

func TestRunQuitsOnQuitCommand(t *testing.T) {
	io := &fakeIO{}
	prog := Program{
		Init: func() (Model, []bus.Cmd) {
			return countModel{0}, []bus.Cmd{
				func(ctx context.Context, emit bus.Emit) bus.Msg { return bus.Quit },
			}
		},
		Update: func(msg bus.Msg, model Model) (Model, []bus.Cmd, error) {
			return model, nil, nil
		},
		View: func(model Model) string { return "view" },
	}
	cfg := Config{Runtime: bijou.RuntimeInfo{StdoutIsTTY: false, Env: func(string) (string, bool) { return "", false }}, IO: io}

	err := Run(context.Background(), prog, cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestRunPropagatesUpdateError(t *testing.T) {
	io := &fakeIO{}
	boom := context.DeadlineExceeded
	prog := Program{
		Init: func() (Model, []bus.Cmd) {
			return countModel{0}, []bus.Cmd{
				func(ctx context.Context, emit bus.Emit) bus.Msg { emit("go"); return nil },
			}
		},
		Update: func(msg bus.Msg, model Model) (Model, []bus.Cmd, error) {
			return model, nil, boom
		},
		View: func(model Model) string { return "view" },
	}
	cfg := Config{Runtime: bijou.RuntimeInfo{StdoutIsTTY: false, Env: func(string) (string, bool) { return "", false }}, IO: io}

	err := Run(context.Background(), prog, cfg)
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestRunWritesRecorderLog(t *testing.T) {
	io := &fakeIO{}
	var log bytes.Buffer
	rec := record.NewWriter(&log)

	prog := Program{
		Init: func() (Model, []bus.Cmd) {
			return countModel{0}, []bus.Cmd{
				func(ctx context.Context, emit bus.Emit) bus.Msg { emit("go"); return bus.Quit },
			}
		},
		Update: func(msg bus.Msg, model Model) (Model, []bus.Cmd, error) {
			return model, nil, nil
		},
		View: func(model Model) string { return "view" },
	}
	cfg := Config{
		Runtime:  bijou.RuntimeInfo{StdoutIsTTY: false, Env: func(string) (string, bool) { return "", false }},
		IO:       io,
		Recorder: rec,
	}

	if err := Run(context.Background(), prog, cfg); err != nil {
		t.Fatalf("Run: %v", err)
	}

	r := record.NewReader(bytes.NewReader(log.Bytes()))
	sawFrame := false
	for {
		e, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if e.Type == record.RecordTypeFrame {
			sawFrame = true
		}
	}
	if !sawFrame {
		t.Error("expected at least one frame record")
	}
}

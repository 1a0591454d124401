// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

package screen

import (
	"bytes"
	"testing"
	"time"

	"github.com/bijou-tui/bijou"
)

type bufIO struct{ buf bytes.Buffer }

func (b *bufIO) Write(p []byte) (int, error)          { return b.buf.Write(p) }
func (b *bufIO) Question(string) (string, error)      { return "", nil }
func (b *bufIO) RawInput(func([]byte)) bijou.Handle    { return bijou.NewHandle(nil) }
func (b *bufIO) OnResize(func(int, int)) bijou.Handle  { return bijou.NewHandle(nil) }
func (b *bufIO) SetInterval(func(), time.Duration) bijou.Handle { return bijou.NewHandle(nil) }
func (b *bufIO) ReadFile(string) ([]byte, error)       { return nil, nil }
func (b *bufIO) ReadDir(string) ([]string, error)      { return nil, nil }
func (b *bufIO) JoinPath(elem ...string) string        { return "" }

func TestRenderFrameExactBytes(t *testing.T) {
	io := &bufIO{}
	if err := RenderFrame(io, "hello\nworld"); err != nil {
		t.Fatalf("RenderFrame: %v", err)
	}
	want := "\x1b[H" + "hello" + "\x1b[K" + "\n" + "world" + "\x1b[K" + "\x1b[J"
	if io.buf.String() != want {
		t.Errorf("got %q, want %q", io.buf.String(), want)
	}
}

func TestEnterSequence(t *testing.T) {
	io := &bufIO{}
	Enter(io)
	want := "\x1b[?1049h" + "\x1b[?25l" + "\x1b[?7l" + "\x1b[2J" + "\x1b[H"
	if io.buf.String() != want {
		t.Errorf("got %q, want %q", io.buf.String(), want)
	}
}

func TestExitSequence(t *testing.T) {
	io := &bufIO{}
	Exit(io)
	want := "\x1b[?25h" + "\x1b[?7h" + "\x1b[?1049l"
	if io.buf.String() != want {
		t.Errorf("got %q, want %q", io.buf.String(), want)
	}
}

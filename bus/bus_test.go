// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

package bus

import (
	"context"
	"testing"
	"time"

	"github.com/bijou-tui/bijou/input"
)

func TestEmitDeliversInOrder(t *testing.T) {
	b := New(context.Background())
	var got []int
	b.Subscribe(func(m Msg) { got = append(got, m.(int)) })
	b.Emit(1)
	b.Emit(2)
	b.Emit(3)
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("got %v", got)
	}
}

func TestEmitDropsUnknownKey(t *testing.T) {
	b := New(context.Background())
	called := false
	b.Subscribe(func(m Msg) { called = true })
	b.Emit(input.KeyMsg{Key: "unknown"})
	if called {
		t.Error("unknown key should be dropped, handler was called")
	}
}

func TestQuitRoutesToOnQuitNotHandler(t *testing.T) {
	b := New(context.Background())
	handlerCalled := false
	quitCalled := false
	b.Subscribe(func(m Msg) { handlerCalled = true })
	b.OnQuit(func() { quitCalled = true })
	b.Emit(Quit)
	if handlerCalled {
		t.Error("Quit must not reach the regular handler")
	}
	if !quitCalled {
		t.Error("onQuit was not invoked")
	}
}

func TestRunRoutesNonNilCompletion(t *testing.T) {
	b := New(context.Background())
	done := make(chan Msg, 1)
	b.Subscribe(func(m Msg) { done <- m })
	b.Run(func(ctx context.Context, emit Emit) Msg {
		return "finished"
	})
	select {
	case m := <-done:
		if m != "finished" {
			t.Errorf("got %v", m)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for completion")
	}
	b.Dispose()
}

func TestRunEmitsThenCompletes(t *testing.T) {
	b := New(context.Background())
	received := make(chan Msg, 2)
	b.Subscribe(func(m Msg) { received <- m })
	b.Run(func(ctx context.Context, emit Emit) Msg {
		emit("step")
		return nil
	})
	select {
	case m := <-received:
		if m != "step" {
			t.Errorf("got %v", m)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out")
	}
	b.Dispose()
}

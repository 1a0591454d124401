// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

package inputstack

import (
	"testing"

	"github.com/bijou-tui/bijou/bus"
	"github.com/bijou-tui/bijou/input"
)

func always(msg bus.Msg) Dispatch {
	return func(input.KeyMsg) (bus.Msg, bool) { return msg, true }
}

func never() Dispatch {
	return func(input.KeyMsg) (bus.Msg, bool) { return nil, false }
}

func TestTopLayerWins(t *testing.T) {
	s := New()
	s.Push(Layer{Name: "base", Dispatch: always("base")})
	s.Push(Layer{Name: "modal", Dispatch: always("modal")})

	msg, ok := s.Dispatch(input.KeyMsg{Key: "a"})
	if !ok || msg != "modal" {
		t.Errorf("got %v, %v, want modal, true", msg, ok)
	}
}

func TestFallsThroughToLowerLayer(t *testing.T) {
	s := New()
	s.Push(Layer{Name: "base", Dispatch: always("base")})
	s.Push(Layer{Name: "modal", Dispatch: never()})

	msg, ok := s.Dispatch(input.KeyMsg{Key: "a"})
	if !ok || msg != "base" {
		t.Errorf("got %v, %v, want base, true", msg, ok)
	}
}

func TestDropsWhenNoLayerFires(t *testing.T) {
	s := New()
	s.Push(Layer{Name: "base", Dispatch: never()})
	_, ok := s.Dispatch(input.KeyMsg{Key: "a"})
	if ok {
		t.Error("expected key to be dropped")
	}
}

func TestSwapPreservesPosition(t *testing.T) {
	s := New()
	s.Push(Layer{Name: "base", Dispatch: always("old")})
	s.Swap("base", always("new"))
	msg, _ := s.Dispatch(input.KeyMsg{Key: "a"})
	if msg != "new" {
		t.Errorf("got %v, want new", msg)
	}
}

func TestPopReturnsTop(t *testing.T) {
	s := New()
	s.Push(Layer{Name: "a", Dispatch: never()})
	s.Push(Layer{Name: "b", Dispatch: never()})
	l, ok := s.Pop()
	if !ok || l.Name != "b" {
		t.Errorf("got %+v, %v", l, ok)
	}
}

// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

// Package inputstack implements component L: a stack of named dispatch
// layers, top-down first-match key routing.
package inputstack

import (
	"sync"

	"github.com/bijou-tui/bijou/bus"
	"github.com/bijou-tui/bijou/input"
)

// Dispatch maps a decoded key to an optional message. A false second
// return means "did not handle this key".
type Dispatch func(key input.KeyMsg) (bus.Msg, bool)

// Layer is one named, ordered dispatch entry.
type Layer struct {
	Name     string
	Dispatch Dispatch
}

// Stack is a mutex-guarded stack of Layers. Dispatch walks top-down (most
// recently pushed first); the first layer returning a message wins.
type Stack struct {
	mu     sync.Mutex
	layers []Layer
}

// New returns an empty Stack.
func New() *Stack { return &Stack{} }

// Push adds a new top layer.
func (s *Stack) Push(l Layer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layers = append(s.layers, l)
}

// Pop removes and returns the top layer, if any.
func (s *Stack) Pop() (Layer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.layers) == 0 {
		return Layer{}, false
	}
	top := s.layers[len(s.layers)-1]
	s.layers = s.layers[:len(s.layers)-1]
	return top, true
}

// Swap replaces the named layer's dispatch function in place, preserving
// its stack position. It is a no-op if name is not present.
func (s *Stack) Swap(name string, dispatch Dispatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.layers {
		if l.Name == name {
			s.layers[i].Dispatch = dispatch
			return
		}
	}
}

// Dispatch walks the stack top-down and returns the first message any
// layer's Dispatch produces. If no layer fires, the key is dropped.
func (s *Stack) Dispatch(key input.KeyMsg) (bus.Msg, bool) {
	s.mu.Lock()
	layers := append([]Layer(nil), s.layers...)
	s.mu.Unlock()

	for i := len(layers) - 1; i >= 0; i-- {
		if msg, ok := layers[i].Dispatch(key); ok {
			return msg, true
		}
	}
	return nil, false
}

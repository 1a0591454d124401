// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

// Package bus implements component I: the multi-producer/single-consumer
// event hub a single running program drains messages through.
package bus

import (
	"context"
	"sync"

	"github.com/bijou-tui/bijou"
	"github.com/bijou-tui/bijou/input"
)

// Msg is the sum-type envelope every component, command, and the runtime
// itself communicates through. Application messages are any concrete type;
// the runtime additionally injects KeyMsg, MouseMsg, and ResizeMsg.
type Msg interface{}

// KeyMsg and MouseMsg are runtime-injected per the data model; they alias
// the input package's decoded forms so callers need not import both.
type KeyMsg = input.KeyMsg
type MouseMsg = input.MouseMsg

// ResizeMsg is injected by the bus's resize watcher subscription.
type ResizeMsg struct {
	Columns, Rows int
}

// Emit publishes a message to the bus's single consumer.
type Emit func(Msg)

type quitMsg struct{}

// Quit is the distinguished sentinel a Cmd may return to signal runtime
// shutdown. It is routed exclusively to onQuit handlers and must never be
// treated as a regular message.
var Quit Msg = quitMsg{}

// IsQuit reports whether m is the Quit sentinel.
func IsQuit(m Msg) bool {
	_, ok := m.(quitMsg)
	return ok
}

// Cmd is a unit of asynchronous work: it may emit zero or more messages
// through emit, then returns a completion value. A nil return is void (no
// message is routed back); returning Quit requests shutdown.
type Cmd func(ctx context.Context, emit Emit) Msg

// Bus is a single-consumer hub: Subscribe installs the one handler that
// receives every emitted message; Emit and Run may be called concurrently
// from any number of producers. Emit calls the handler on the emitting
// goroutine without holding a lock, so a handler fed by concurrent
// producers serialises delivery itself (the runtime's handler sends into
// one channel drained by its loop).
type Bus struct {
	mu        sync.Mutex
	handler   func(Msg)
	onQuit    func()
	ctx       context.Context
	cancel    context.CancelFunc
	resources []bijou.Handle
	wg        sync.WaitGroup
}

// New creates a Bus bound to parent's lifetime; cancelling parent (or
// calling Dispose) releases every resource registered through Connect.
func New(parent context.Context) *Bus {
	ctx, cancel := context.WithCancel(parent)
	return &Bus{ctx: ctx, cancel: cancel}
}

// Subscribe installs the single consumer handler. Subsequent calls replace
// the prior handler (used by the runtime to rebind after model updates, if
// ever needed); it does not buffer past messages.
func (b *Bus) Subscribe(handler func(Msg)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handler = handler
}

// OnQuit installs the handler invoked whenever the Quit sentinel reaches
// Emit, whether a Cmd returned it or emitted it.
func (b *Bus) OnQuit(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onQuit = fn
}

// Emit delivers msg to the subscribed handler. An unknown decoded key
// sequence (key=unknown) is dropped, and the Quit sentinel is passed to the
// onQuit handler; neither reaches the subscribed handler as a regular
// message.
func (b *Bus) Emit(msg Msg) {
	if IsQuit(msg) {
		b.mu.Lock()
		onQuit := b.onQuit
		b.mu.Unlock()
		if onQuit != nil {
			onQuit()
		}
		return
	}
	if k, ok := msg.(KeyMsg); ok && k.Key == "unknown" {
		return
	}
	b.mu.Lock()
	handler := b.handler
	b.mu.Unlock()
	if handler != nil {
		handler(msg)
	}
}

// Run launches cmd as its own goroutine. Its emissions go through Emit in
// the order cmd makes them; no ordering against other commands' emissions
// is promised. Its completion value, if non-nil, is passed to Emit as well,
// which routes Quit to the onQuit handler.
func (b *Bus) Run(cmd Cmd) {
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		result := cmd(b.ctx, b.Emit)
		if result != nil {
			b.Emit(result)
		}
	}()
}

// Connect wires the bus to an I/O port: a RawInput subscription decoding
// keys via input.ParseKey and an OnResize watcher emitting ResizeMsg.
// Decode-miss keys are dropped inside Emit, not here, so every raw byte
// still reaches the decoder.
func (b *Bus) Connect(io bijou.IO) {
	keyHandle := io.RawInput(func(raw []byte) {
		s := string(raw)
		if m, ok := input.ParseMouse(s); ok {
			b.Emit(m)
			return
		}
		b.Emit(input.ParseKey(s))
	})
	resizeHandle := io.OnResize(func(cols, rows int) {
		b.Emit(ResizeMsg{Columns: cols, Rows: rows})
	})
	b.mu.Lock()
	b.resources = append(b.resources, keyHandle, resizeHandle)
	b.mu.Unlock()
}

// Dispose drops the subscriber, cancels all in-flight commands, and
// releases every port resource registered through Connect.
func (b *Bus) Dispose() {
	b.mu.Lock()
	resources := b.resources
	b.resources = nil
	b.handler = nil
	b.mu.Unlock()

	b.cancel()
	for _, r := range resources {
		r.Dispose()
	}
	b.wg.Wait()
}

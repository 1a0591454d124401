// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

// Package termio implements bijou.IO and bijou.RuntimeInfo detection against
// a real terminal, wiring together the teacher's TTY/raw-mode stack:
// github.com/mattn/go-isatty for the Runtime port's TTY flags,
// github.com/charmbracelet/x/term for raw mode and GetSize,
// github.com/muesli/cancelreader for a RawInput reader that Dispose can
// actually cancel rather than leaking a blocked read forever, and
// github.com/muesli/termenv for NO_COLOR/CI-aware color profile detection.
package termio

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
	"github.com/muesli/cancelreader"
	"github.com/muesli/termenv"

	"github.com/bijou-tui/bijou"
)

// DetectRuntime builds a bijou.RuntimeInfo from the real stdin/stdout file
// descriptors and the process environment.
func DetectRuntime() bijou.RuntimeInfo {
	cols, rows, err := term.GetSize(os.Stdout.Fd())
	if err != nil {
		cols, rows = 80, 24
	}
	return bijou.RuntimeInfo{
		Columns:     cols,
		Rows:        rows,
		StdinIsTTY:  isatty.IsTerminal(os.Stdin.Fd()),
		StdoutIsTTY: isatty.IsTerminal(os.Stdout.Fd()),
		Env:         bijou.OSEnv,
	}
}

// NoColor reports whether the environment rules out color entirely: either
// NO_COLOR is set or termenv's env-only profile detection (TERM, COLORTERM,
// CI vendor vars) resolves to the plain-ASCII profile. This is what decides
// the StylePort's NoColor flag, distinct from OutputMode's pipe/accessible
// degradation, which depends on TTY-ness rather than color capability.
func NoColor() bool {
	return termenv.EnvNoColor() || termenv.EnvColorProfile() == termenv.Ascii
}

// Terminal is a bijou.IO backed by the process's real stdin/stdout.
type Terminal struct {
	in  *os.File
	out *os.File
}

// New returns a Terminal wrapping stdin/stdout.
func New() *Terminal {
	return &Terminal{in: os.Stdin, out: os.Stdout}
}

// EnterRaw puts stdin into raw mode, returning a Handle that restores it.
// Interactive output modes call this around the program's lifetime.
func (t *Terminal) EnterRaw() (bijou.Handle, error) {
	if !isatty.IsTerminal(t.in.Fd()) {
		return bijou.NewHandle(nil), nil
	}
	state, err := term.MakeRaw(t.in.Fd())
	if err != nil {
		return nil, fmt.Errorf("termio: make raw: %w", err)
	}
	return bijou.NewHandle(func() {
		_ = term.Restore(t.in.Fd(), state)
	}), nil
}

func (t *Terminal) Write(p []byte) (int, error) { return t.out.Write(p) }

func (t *Terminal) Question(prompt string) (string, error) {
	if _, err := fmt.Fprint(t.out, prompt); err != nil {
		return "", err
	}
	reader := bufio.NewReader(t.in)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("termio: read answer: %w", err)
	}
	return trimNewline(line), nil
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

// RawInput streams raw stdin bytes to callback until Dispose cancels the
// underlying cancelreader.CancelReader, which unblocks the pending read.
func (t *Terminal) RawInput(callback func(b []byte)) bijou.Handle {
	cr, err := cancelreader.NewReader(t.in)
	if err != nil {
		return bijou.NewHandle(nil)
	}
	go func() {
		buf := make([]byte, 256)
		for {
			n, err := cr.Read(buf)
			if n > 0 {
				callback(append([]byte(nil), buf[:n]...))
			}
			if err != nil {
				return
			}
		}
	}()
	return bijou.NewHandle(func() {
		cr.Cancel()
		_ = cr.Close()
	})
}

// OnResize reports SIGWINCH-driven terminal size changes.
func (t *Terminal) OnResize(callback func(cols, rows int)) bijou.Handle {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGWINCH)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-sig:
				if cols, rows, err := term.GetSize(t.out.Fd()); err == nil {
					callback(cols, rows)
				}
			case <-done:
				return
			}
		}
	}()
	return bijou.NewHandle(func() {
		signal.Stop(sig)
		close(done)
	})
}

// SetInterval invokes callback every d until Dispose stops the ticker.
func (t *Terminal) SetInterval(callback func(), d time.Duration) bijou.Handle {
	ticker := time.NewTicker(d)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				callback()
			case <-done:
				return
			}
		}
	}()
	return bijou.NewHandle(func() {
		ticker.Stop()
		close(done)
	})
}

func (t *Terminal) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

func (t *Terminal) ReadDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names, nil
}

func (t *Terminal) JoinPath(elem ...string) string { return filepath.Join(elem...) }

var _ bijou.IO = (*Terminal)(nil)

// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

// Package screen implements component J: the control-sequence lifecycle and
// frame writer. Every sequence is a literal byte constant rather than a
// charmbracelet/x/ansi helper call: §4.J and its end-to-end scenario pin
// the exact bytes written, and the literal form is what makes that
// byte-for-byte contract checkable at a glance.
package screen

import (
	"strings"

	"github.com/bijou-tui/bijou"
)

const (
	cursorHome       = "\x1b[H"
	eraseLine        = "\x1b[K"
	eraseScreen      = "\x1b[2J"
	eraseToEnd       = "\x1b[J"
	enterAltScreen   = "\x1b[?1049h"
	exitAltScreen    = "\x1b[?1049l"
	hideCursor       = "\x1b[?25l"
	showCursor       = "\x1b[?25h"
	disableAutowrap  = "\x1b[?7l"
	enableAutowrap   = "\x1b[?7h"
)

// Enter writes the sequence that enters the alt screen, hides the cursor,
// disables line wrap, clears, and homes the cursor, in that order.
func Enter(io bijou.IO) error {
	seq := enterAltScreen + hideCursor + disableAutowrap + eraseScreen + cursorHome
	_, err := io.Write([]byte(seq))
	return err
}

// Exit writes the sequence that shows the cursor, re-enables wrap, and
// leaves the alt screen.
func Exit(io bijou.IO) error {
	seq := showCursor + enableAutowrap + exitAltScreen
	_, err := io.Write([]byte(seq))
	return err
}

// Clear writes the clear-and-home sequence.
func Clear(io bijou.IO) error {
	_, err := io.Write([]byte(eraseScreen + cursorHome))
	return err
}

// RenderFrame writes content (newline-delimited) per §4.J: home first,
// then each line followed by erase-to-end-of-line, then a final
// erase-to-end-of-screen. Homing first and erasing per line guarantees a
// frame shorter than the previous one leaves no residue.
func RenderFrame(io bijou.IO, content string) error {
	lines := strings.Split(content, "\n")
	var b strings.Builder
	b.WriteString(cursorHome)
	for i, l := range lines {
		b.WriteString(l)
		b.WriteString(eraseLine)
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}
	b.WriteString(eraseToEnd)
	_, err := io.Write([]byte(b.String()))
	return err
}

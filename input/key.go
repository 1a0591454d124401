// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

// Package input implements component E: decoding raw terminal byte
// sequences into structured key and mouse messages.
package input

// KeyMsg is the structured form of a decoded key sequence.
type KeyMsg struct {
	Key   string
	Ctrl  bool
	Alt   bool
	Shift bool
}

var escSeqKeys = map[string]string{
	"[A": "up", "[B": "down", "[C": "right", "[D": "left",
	"[Z": "tab", // shift-tab; Shift is set by the caller below
	"[H": "home", "[F": "end",
	"[3~": "delete", "[5~": "pageup", "[6~": "pagedown",
}

// ParseKey decodes one raw key sequence into a KeyMsg per §4.E. Unknown
// sequences yield key="unknown".
func ParseKey(raw string) KeyMsg {
	switch {
	case raw == "\r" || raw == "\n":
		return KeyMsg{Key: "enter"}
	case raw == "\t":
		return KeyMsg{Key: "tab"}
	case raw == "\x7f" || raw == "\b":
		return KeyMsg{Key: "backspace"}
	case raw == " ":
		return KeyMsg{Key: "space"}
	case raw == "\x1b":
		return KeyMsg{Key: "escape"}
	}

	if len(raw) >= 2 && raw[0] == 0x1b && raw[1] == '[' {
		if key, ok := escSeqKeys[raw[1:]]; ok {
			return KeyMsg{Key: key, Shift: raw[1:] == "[Z"}
		}
		return KeyMsg{Key: "unknown"}
	}

	if len(raw) == 1 {
		b := raw[0]
		if b >= 0x01 && b <= 0x1a {
			// C0 control codes 0x01-0x1a are ctrl+letter, a=0x01..z=0x1a.
			letter := string(rune('a' + b - 1))
			return KeyMsg{Key: letter, Ctrl: true}
		}
		if (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') {
			return KeyMsg{Key: string(rune(b))}
		}
		if b >= 'A' && b <= 'Z' {
			return KeyMsg{Key: string(rune(b + 32)), Shift: true}
		}
	}

	return KeyMsg{Key: "unknown"}
}

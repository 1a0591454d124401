// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

// Package bijou is the root of the Bijou terminal UI engine: a deterministic
// rendering runtime (grid composition, DAG layout, a TEA-style program loop,
// and a physics-based animation kernel) that presentational components and
// applications build on top of.
package bijou

import "math"

// Modifier is a text attribute that can be layered onto a Token independent
// of its color.
type Modifier int

const (
	ModBold Modifier = 1 << iota
	ModDim
	ModStrikethrough
	ModInverse
)

// Has reports whether m includes mod.
func (m Modifier) Has(mod Modifier) bool { return m&mod != 0 }

// Token is a foreground color plus an optional set of text modifiers. It is
// a pure value: downsampling never mutates the receiver.
type Token struct {
	Hex       string // "#rrggbb"; empty means "no color set"
	Modifiers Modifier
}

// NewToken returns a Token for the given hex color with no modifiers.
func NewToken(hex string) Token { return Token{Hex: hex} }

// With returns a copy of t with mod added.
func (t Token) With(mod Modifier) Token {
	t.Modifiers |= mod
	return t
}

func (t Token) rgb() (r, g, b int, ok bool) {
	if len(t.Hex) != 7 || t.Hex[0] != '#' {
		return 0, 0, 0, false
	}
	v := 0
	for i := 1; i < 7; i++ {
		c := t.Hex[i]
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= int(c - '0')
		case c >= 'a' && c <= 'f':
			v |= int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			v |= int(c-'A') + 10
		default:
			return 0, 0, 0, false
		}
	}
	return (v >> 16) & 0xff, (v >> 8) & 0xff, v & 0xff, true
}

// xterm256Cube is the 6-level intensity ramp used by the 16-231 color cube.
var xterm256Cube = [6]int{0, 0x5f, 0x87, 0xaf, 0xd7, 0xff}

// xterm16 is the standard VT100 bright-aware 16-color palette, indices 0-15.
var xterm16 = [16][3]int{
	{0x00, 0x00, 0x00}, {0x80, 0x00, 0x00}, {0x00, 0x80, 0x00}, {0x80, 0x80, 0x00},
	{0x00, 0x00, 0x80}, {0x80, 0x00, 0x80}, {0x00, 0x80, 0x80}, {0xc0, 0xc0, 0xc0},
	{0x80, 0x80, 0x80}, {0xff, 0x00, 0x00}, {0x00, 0xff, 0x00}, {0xff, 0xff, 0x00},
	{0x00, 0x00, 0xff}, {0xff, 0x00, 0xff}, {0x00, 0xff, 0xff}, {0xff, 0xff, 0xff},
}

func dist2(r1, g1, b1, r2, g2, b2 int) int {
	dr, dg, db := r1-r2, g1-g2, b1-b2
	return dr*dr + dg*dg + db*db
}

// Downsample256 maps t's color onto the xterm 256-color palette by nearest
// Euclidean distance over the 6x6x6 cube and the 24-step grayscale ramp
// (indices 232-255). Tokens with no color return (0, false).
func (t Token) Downsample256() (index int, ok bool) {
	r, g, b, valid := t.rgb()
	if !valid {
		return 0, false
	}

	best := -1
	bestD := math.MaxInt64

	// 16-231: 6x6x6 color cube.
	for ri, rv := range xterm256Cube {
		for gi, gv := range xterm256Cube {
			for bi, bv := range xterm256Cube {
				d := dist2(r, g, b, rv, gv, bv)
				if d < bestD {
					bestD = d
					best = 16 + 36*ri + 6*gi + bi
				}
			}
		}
	}

	// 232-255: 24-step grayscale ramp, 8..238 in steps of 10.
	for i := 0; i < 24; i++ {
		gray := 8 + i*10
		d := dist2(r, g, b, gray, gray, gray)
		if d < bestD {
			bestD = d
			best = 232 + i
		}
	}

	return best, true
}

// Downsample16 maps t's color onto the 16-color VT100 palette (including the
// bright set) by nearest Euclidean distance.
func (t Token) Downsample16() (index int, ok bool) {
	r, g, b, valid := t.rgb()
	if !valid {
		return 0, false
	}
	best := -1
	bestD := math.MaxInt64
	for i, c := range xterm16 {
		d := dist2(r, g, b, c[0], c[1], c[2])
		if d < bestD {
			bestD = d
			best = i
		}
	}
	return best, true
}

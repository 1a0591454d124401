// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

package bijou

import "testing"

func envFrom(m map[string]string) EnvLookup {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDetectOutputMode(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		stdoutIsTTY bool
		want        OutputMode
	}{
		{"accessible wins over everything", map[string]string{"BIJOU_ACCESSIBLE": "1", "CI": "1"}, true, ModeAccessible},
		{"no_color forces pipe", map[string]string{"NO_COLOR": ""}, true, ModePipe},
		{"dumb term forces pipe", map[string]string{"TERM": "dumb"}, true, ModePipe},
		{"non-tty forces pipe even with CI", map[string]string{"CI": "1"}, false, ModePipe},
		{"ci forces static", map[string]string{"CI": "1"}, true, ModeStatic},
		{"default interactive", map[string]string{}, true, ModeInteractive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectOutputMode(envFrom(tt.env), tt.stdoutIsTTY)
			if got != tt.want {
				t.Errorf("DetectOutputMode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHandleDisposeIsSafeTwice(t *testing.T) {
	calls := 0
	h := NewHandle(func() { calls++ })
	h.Dispose()
	h.Dispose()
	if calls != 1 {
		t.Errorf("Dispose called fn %d times, want 1", calls)
	}
}

func TestThemeInk(t *testing.T) {
	th := Theme{
		Status: map[string]Token{"error": NewToken("#ef4444")},
		UI:     map[string]Token{"border": NewToken("#374151")},
	}
	if tok, ok := th.Ink("error"); !ok || tok.Hex != "#ef4444" {
		t.Errorf("Ink(error) = %v,%v", tok, ok)
	}
	if tok, ok := th.Ink("border"); !ok || tok.Hex != "#374151" {
		t.Errorf("Ink(border) = %v,%v", tok, ok)
	}
	if _, ok := th.Ink("missing"); ok {
		t.Error("expected missing ink to be absent")
	}
}

func TestDefaultContextRoundTrip(t *testing.T) {
	c := &Context{Mode: ModeAccessible}
	SetDefaultContext(c)
	got := CurrentContext(nil)
	if got != c {
		t.Error("CurrentContext(nil) did not return the stored default")
	}

	other := &Context{Mode: ModeStatic}
	got2 := CurrentContext(func() *Context { return other })
	if got2 != other {
		t.Error("CurrentContext(resolver) did not prefer the resolver's value")
	}
}

// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

package theme

import "testing"

func TestDefaultInkLookup(t *testing.T) {
	th := Default()
	for _, name := range []string{"success", "accent", "focus", "label"} {
		if _, ok := th.Ink(name); !ok {
			t.Errorf("Ink(%q) not found in default theme", name)
		}
	}
	if _, ok := th.Ink("nonexistent"); ok {
		t.Error("Ink(nonexistent) found, want false")
	}
}

func TestNoColorSetsFlag(t *testing.T) {
	th := NoColor()
	if !th.NoColor {
		t.Error("NoColor().NoColor = false, want true")
	}
	if th.Name == Default().Name {
		t.Error("NoColor() should have a distinct theme name from Default()")
	}
}

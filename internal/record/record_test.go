// Copyright (c) 2026 ALH477
// SPDX-License-Identifier: MIT

package record

import (
	"bytes"
	"io"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteMsg(0, "KeyMsg", "key=a"); err != nil {
		t.Fatalf("WriteMsg: %v", err)
	}
	if err := w.WriteFrame(16, "hello"); err != nil {
		t.Fatalf("WriteFrame: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	r := NewReader(bytes.NewReader(buf.Bytes()))

	e1, err := r.Next()
	if err != nil {
		t.Fatalf("Next(1): %v", err)
	}
	if e1.Type != RecordTypeMsg || e1.Msg == nil || e1.Msg.Kind != "KeyMsg" || e1.Msg.Seq != 1 {
		t.Errorf("entry 1 = %+v", e1)
	}

	e2, err := r.Next()
	if err != nil {
		t.Fatalf("Next(2): %v", err)
	}
	if e2.Type != RecordTypeFrame || e2.Frame == nil || e2.Frame.ElapsedMs != 16 || e2.Frame.Hash != HashFrame("hello") {
		t.Errorf("entry 2 = %+v", e2)
	}

	if _, err := r.Next(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestBadMagicRejected(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte("NOTBIJOU")))
	if _, err := r.Next(); err == nil {
		t.Error("expected error for bad magic")
	}
}

func TestHashFrameIsDeterministic(t *testing.T) {
	if HashFrame("abc") != HashFrame("abc") {
		t.Error("HashFrame should be deterministic")
	}
	if HashFrame("abc") == HashFrame("abd") {
		t.Error("HashFrame should differ for different input")
	}
}

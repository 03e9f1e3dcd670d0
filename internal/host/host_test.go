package host

import (
	"bytes"
	"strings"
	"testing"
)

func TestStdHostPrintWritesToOut(t *testing.T) {
	var buf bytes.Buffer
	h := NewStdHost(&buf, strings.NewReader(""))
	h.Print("hello")
	if buf.String() != "hello" {
		t.Errorf("Print wrote %q, want %q", buf.String(), "hello")
	}
}

func TestStdHostInputReadsLineAndPromptsToOut(t *testing.T) {
	var buf bytes.Buffer
	h := NewStdHost(&buf, strings.NewReader("hi there\n"))
	line, ok := h.Input("> ")
	if !ok {
		t.Fatalf("expected ok=true")
	}
	if line != "hi there\n" {
		t.Errorf("Input line = %q, want %q (the trailing newline is part of the host contract)", line, "hi there\n")
	}
	if buf.String() != "> " {
		t.Errorf("prompt written = %q, want %q", buf.String(), "> ")
	}
}

func TestStdHostInputEOFReturnsNotOK(t *testing.T) {
	var buf bytes.Buffer
	h := NewStdHost(&buf, strings.NewReader(""))
	_, ok := h.Input("")
	if ok {
		t.Errorf("expected ok=false at EOF")
	}
}

func TestBufferHostDrainsLinesThenEOF(t *testing.T) {
	h := NewBufferHost("a", "b")
	if line, ok := h.Input(""); !ok || line != "a" {
		t.Fatalf("first Input = %q, %v", line, ok)
	}
	if line, ok := h.Input(""); !ok || line != "b" {
		t.Fatalf("second Input = %q, %v", line, ok)
	}
	if _, ok := h.Input(""); ok {
		t.Errorf("expected ok=false once lines are exhausted")
	}
}

func TestBufferHostSlurpFromFilesMap(t *testing.T) {
	h := NewBufferHost()
	h.Files["a.lisp"] = "(+ 1 1)"
	data, err := h.Slurp("a.lisp")
	if err != nil {
		t.Fatalf("Slurp error: %v", err)
	}
	if data != "(+ 1 1)" {
		t.Errorf("Slurp = %q, want (+ 1 1)", data)
	}
	if _, err := h.Slurp("missing.lisp"); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestBufferHostTimeMSIsFrozen(t *testing.T) {
	h := NewBufferHost()
	h.FrozenMS = 1234
	if got := h.TimeMS(); got != 1234 {
		t.Errorf("TimeMS = %d, want 1234", got)
	}
}

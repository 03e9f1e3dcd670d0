// Package host isolates the core evaluator and builtins from the outside
// world (spec.md §5: Print/Slurp/Input/TimeMS), mirroring the teacher's
// io.Writer-based Interpreter.output field but widened to the small set
// of host effects golisp's core library needs to reach.
package host

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Host provides the effectful operations golisp's core library is allowed
// to perform. Builtins never call os.* or fmt.Print* directly; they go
// through a Host so that a REPL, a script runner, and a test harness can
// each supply their own.
type Host interface {
	// Print writes s to the host's output stream, without a trailing
	// newline (`prn` supplies its own).
	Print(s string)

	// Slurp reads the full contents of the file at path.
	Slurp(path string) (string, error)

	// Input reads a single line from the host's input stream, prompting
	// with prompt first. It returns ok=false at end of input.
	Input(prompt string) (line string, ok bool)

	// TimeMS returns the current time in milliseconds since the Unix
	// epoch, for the `time-ms` builtin.
	TimeMS() int64
}

// StdHost is the default Host, backed by the process's real stdio and
// filesystem.
type StdHost struct {
	out    io.Writer
	reader *bufio.Reader
}

// NewStdHost builds a StdHost writing to out and reading from in.
func NewStdHost(out io.Writer, in io.Reader) *StdHost {
	return &StdHost{out: out, reader: bufio.NewReader(in)}
}

// NewDefaultStdHost builds a StdHost wired to os.Stdout and os.Stdin.
func NewDefaultStdHost() *StdHost {
	return NewStdHost(os.Stdout, os.Stdin)
}

func (h *StdHost) Print(s string) {
	fmt.Fprint(h.out, s)
}

func (h *StdHost) Slurp(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (h *StdHost) Input(prompt string) (string, bool) {
	if prompt != "" {
		fmt.Fprint(h.out, prompt)
	}
	line, err := h.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return line, true
}

func (h *StdHost) TimeMS() int64 {
	return time.Now().UnixMilli()
}

// BufferHost is an in-memory Host for tests and the go-snaps REPL
// transcript harness: output accumulates in a buffer, input is drawn
// from a fixed line queue, and TimeMS is a frozen value so snapshots
// stay deterministic. Its Input does not write the prompt to Out.
type BufferHost struct {
	Out      strings.Builder
	Lines    []string
	linePos  int
	FrozenMS int64
	Files    map[string]string
}

// NewBufferHost builds a BufferHost with the given canned input lines.
func NewBufferHost(lines ...string) *BufferHost {
	return &BufferHost{Lines: lines, Files: map[string]string{}}
}

func (h *BufferHost) Print(s string) {
	h.Out.WriteString(s)
}

func (h *BufferHost) Slurp(path string) (string, error) {
	data, ok := h.Files[path]
	if !ok {
		return "", fmt.Errorf("no such file: %s", path)
	}
	return data, nil
}

func (h *BufferHost) Input(prompt string) (string, bool) {
	if h.linePos >= len(h.Lines) {
		return "", false
	}
	line := h.Lines[h.linePos]
	h.linePos++
	return line, true
}

func (h *BufferHost) TimeMS() int64 {
	return h.FrozenMS
}

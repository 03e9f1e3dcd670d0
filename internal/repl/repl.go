// Package repl implements the interactive loop and file-loading
// entrypoints spec.md §6 specifies as external, host-driven behavior. It
// reads input and writes results only through a host.Host, so it can be
// driven headlessly in tests with a host.BufferHost (see repl_test.go's
// go-snaps transcript).
package repl

import (
	"io"
	"strconv"
	"strings"

	"github.com/golisp-lang/golisp/internal/errors"
	"github.com/golisp-lang/golisp/internal/eval"
	"github.com/golisp-lang/golisp/internal/host"
	"github.com/golisp-lang/golisp/internal/lexer"
	"github.com/golisp-lang/golisp/internal/reader"
	"github.com/golisp-lang/golisp/internal/runtime"
)

// RunInteractive implements spec.md §6's REPL surface: prompt, read one
// form per line, evaluate, print the canonical form unless the result is
// Nil. EOF (h.Input returning ok=false) ends the loop.
func RunInteractive(env *runtime.Environment, h host.Host, prompt string, echo bool) {
	for {
		line, ok := h.Input(prompt)
		if !ok {
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		printResult(env, h, line, "", echo)
	}
}

// RunFile implements spec.md §6's "invocation with a filename" surface:
// bind *ARGV* to the extra args, then evaluate (load-file "<filename>").
// logw, if non-nil, receives a one-line "loaded N form(s) from <file>"
// diagnostic (the --verbose path wired up in cmd/golisp/cmd/run.go).
func RunFile(env *runtime.Environment, h host.Host, filename string, extraArgs []string, logw io.Writer) error {
	argv := make([]runtime.Value, len(extraArgs))
	for i, a := range extraArgs {
		argv[i] = runtime.String(a)
	}
	env.Set("*ARGV*", &runtime.List{Items: argv})

	if logw != nil {
		if src, err := h.Slurp(filename); err == nil {
			io.WriteString(logw, formatLoadNotice(filename, countForms(src)))
		}
	}

	call := &runtime.List{Items: []runtime.Value{runtime.Symbol("load-file"), runtime.String(filename)}}
	_, err := eval.Eval(call, env)
	if err != nil {
		source, _ := h.Slurp(filename)
		return formatErr(err, source, filename)
	}
	return nil
}

// RunEval implements golisp's `-e`/`--eval` flag: bind *ARGV* to
// extraArgs and evaluate src directly, without touching the filesystem.
func RunEval(env *runtime.Environment, h host.Host, src string, extraArgs []string) error {
	argv := make([]runtime.Value, len(extraArgs))
	for i, a := range extraArgs {
		argv[i] = runtime.String(a)
	}
	env.Set("*ARGV*", &runtime.List{Items: argv})

	v, err := reader.ReadString(src)
	if err != nil {
		return formatErr(err, src, "<eval>")
	}
	if _, err := eval.Eval(v, env); err != nil {
		return formatErr(err, src, "<eval>")
	}
	return nil
}

// printResult reads and evaluates one line of REPL input, writing its
// canonical-printed result (or formatted error) to h.
func printResult(env *runtime.Environment, h host.Host, line, filename string, echo bool) {
	v, err := reader.ReadString(line)
	if err != nil {
		h.Print(errors.Format(err, line, filename) + "\n")
		return
	}
	result, err := eval.Eval(v, env)
	if err != nil {
		h.Print(errors.Format(err, line, filename) + "\n")
		return
	}
	if !echo {
		return
	}
	if _, isNil := result.(runtime.Nil); isNil {
		return
	}
	h.Print(runtime.Print(result) + "\n")
}

func formatErr(err error, source, filename string) error {
	return formattedError{msg: errors.Format(err, source, filename), cause: err}
}

// formattedError wraps err so the original is still available via
// errors.Unwrap for callers (e.g. exit-code decisions) while Error()
// yields the pretty, source-contextualized text.
type formattedError struct {
	msg   string
	cause error
}

func (f formattedError) Error() string { return f.msg }
func (f formattedError) Unwrap() error { return f.cause }

func formatLoadNotice(filename string, n int) string {
	return "loaded " + strconv.Itoa(n) + " form(s) from " + filename + "\n"
}

// countForms reports how many top-level forms (ignoring Comments) src
// contains, for the verbose load notice.
func countForms(src string) int {
	r := reader.New(lexer.New(src).Tokens())
	n := 0
	for {
		v, err := r.Read()
		if err != nil {
			return n
		}
		if _, isComment := v.(runtime.Comment); !isComment {
			n++
		}
	}
}

// Package bootstrap wires together a fresh root Environment: it installs
// the core library (internal/builtins) and then evaluates the small
// in-language preamble from spec.md §6 that defines `not`, `load-file`,
// and `cond` on top of the native bindings.
package bootstrap

import (
	"fmt"

	"github.com/golisp-lang/golisp/internal/builtins"
	"github.com/golisp-lang/golisp/internal/eval"
	"github.com/golisp-lang/golisp/internal/host"
	"github.com/golisp-lang/golisp/internal/reader"
	"github.com/golisp-lang/golisp/internal/runtime"
)

// preamble is evaluated, in order, against the freshly-built root
// environment. Written in-language rather than as native functions
// because none of the three needs direct host access and all three are more
// legible as golisp than as Go.
var preamble = []string{
	`(def! not (fn* (a) (if a false true)))`,
	`(def! load-file (fn* (f) (eval (read-string (str "(do " (slurp f) "\nnil)")))))`,
	`(defmacro! cond (fn* (& xs) (if (> (count xs) 0) (list 'if (first xs) (if (> (count xs) 1) (nth xs 1) (throw "odd number of forms to cond")) (cons 'cond (rest (rest xs)))))))`,
}

// NewRootEnv builds a root Environment with the core library and preamble
// installed, ready for program evaluation.
func NewRootEnv(h host.Host) (*runtime.Environment, error) {
	env := runtime.NewEnvironment()
	builtins.Register(env, h)
	for _, form := range preamble {
		v, err := reader.ReadString(form)
		if err != nil {
			return nil, fmt.Errorf("bootstrap: malformed preamble form %q: %w", form, err)
		}
		if _, err := eval.Eval(v, env); err != nil {
			return nil, fmt.Errorf("bootstrap: preamble form %q failed: %w", form, err)
		}
	}
	return env, nil
}

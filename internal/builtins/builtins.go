// Package builtins implements golisp's core library (spec.md §4.6): the
// native functions installed into the root Environment by bootstrap.
// Each function is a runtime.NativeFunc -- a plain Go closure over an
// already-evaluated argument slice -- grounded on the teacher's
// internal/interp/builtins package, which keeps built-ins as free
// functions rather than interpreter methods to avoid import cycles with
// the evaluator.
package builtins

import (
	"github.com/golisp-lang/golisp/internal/errors"
	"github.com/golisp-lang/golisp/internal/host"
	"github.com/golisp-lang/golisp/internal/runtime"
)

// Register installs every core binding into env. h supplies the host
// effects (`prn`, `slurp`, `input`, `time-ms`) -- the core never touches
// os.Stdin/os.Stdout/the filesystem/the clock directly.
func Register(env *runtime.Environment, h host.Host) {
	registerArithmetic(env)
	registerPredicates(env)
	registerSequences(env)
	registerStrings(env)
	registerDict(env)
	registerAtoms(env)
	registerIO(env, h)
	registerDomain(env)
}

func def(env *runtime.Environment, name string, fn runtime.NativeFunc) {
	env.Set(name, runtime.NewNativeFunction(name, fn))
}

func checkArity(name string, args []runtime.Value, want int) error {
	if len(args) != want {
		return errors.NewRuntimeError("%s expects %d argument(s), got %d", name, want, len(args))
	}
	return nil
}

func checkArityAtLeast(name string, args []runtime.Value, min int) error {
	if len(args) < min {
		return errors.NewRuntimeError("%s expects at least %d argument(s), got %d", name, min, len(args))
	}
	return nil
}

// asSeq extracts the Items slice shared by List and Vector.
func asSeq(v runtime.Value) ([]runtime.Value, bool) {
	switch v := v.(type) {
	case *runtime.List:
		return v.Items, true
	case *runtime.Vector:
		return v.Items, true
	default:
		return nil, false
	}
}

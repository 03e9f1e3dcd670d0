package builtins

import (
	"github.com/golisp-lang/golisp/internal/errors"
	"github.com/golisp-lang/golisp/internal/eval"
	"github.com/golisp-lang/golisp/internal/runtime"
)

func registerAtoms(env *runtime.Environment) {
	def(env, "atom", func(args []runtime.Value) (runtime.Value, error) {
		if err := checkArity("atom", args, 1); err != nil {
			return nil, err
		}
		return runtime.NewAtom(args[0]), nil
	})
	def(env, "deref", func(args []runtime.Value) (runtime.Value, error) {
		if err := checkArity("deref", args, 1); err != nil {
			return nil, err
		}
		a, ok := args[0].(*runtime.Atom)
		if !ok {
			return nil, errors.NewRuntimeError("deref expects an Atom, got %s", args[0].Type())
		}
		return a.Deref(), nil
	})
	def(env, "reset!", func(args []runtime.Value) (runtime.Value, error) {
		if err := checkArity("reset!", args, 2); err != nil {
			return nil, err
		}
		a, ok := args[0].(*runtime.Atom)
		if !ok {
			return nil, errors.NewRuntimeError("reset! expects an Atom, got %s", args[0].Type())
		}
		return a.Reset(args[1]), nil
	})
	def(env, "swap!", func(args []runtime.Value) (runtime.Value, error) {
		if err := checkArityAtLeast("swap!", args, 2); err != nil {
			return nil, err
		}
		a, ok := args[0].(*runtime.Atom)
		if !ok {
			return nil, errors.NewRuntimeError("swap! expects an Atom, got %s", args[0].Type())
		}
		callArgs := make([]runtime.Value, 0, len(args)-1)
		callArgs = append(callArgs, a.Deref())
		callArgs = append(callArgs, args[2:]...)
		v, err := eval.Apply(args[1], callArgs)
		if err != nil {
			return nil, err
		}
		return a.Reset(v), nil
	})
}

package builtins

import (
	"github.com/golisp-lang/golisp/internal/errors"
	"github.com/golisp-lang/golisp/internal/eval"
	"github.com/golisp-lang/golisp/internal/runtime"
)

func registerSequences(env *runtime.Environment) {
	def(env, "list", func(args []runtime.Value) (runtime.Value, error) {
		items := make([]runtime.Value, len(args))
		copy(items, args)
		return &runtime.List{Items: items}, nil
	})
	def(env, "vector", func(args []runtime.Value) (runtime.Value, error) {
		items := make([]runtime.Value, len(args))
		copy(items, args)
		return &runtime.Vector{Items: items}, nil
	})
	def(env, "empty?", func(args []runtime.Value) (runtime.Value, error) {
		if err := checkArity("empty?", args, 1); err != nil {
			return nil, err
		}
		l, ok := args[0].(*runtime.List)
		if !ok {
			return nil, errors.NewRuntimeError("empty? expects a List, got %s", args[0].Type())
		}
		return runtime.Bool(len(l.Items) == 0), nil
	})
	def(env, "count", func(args []runtime.Value) (runtime.Value, error) {
		if err := checkArity("count", args, 1); err != nil {
			return nil, err
		}
		l, ok := args[0].(*runtime.List)
		if !ok {
			return nil, errors.NewRuntimeError("count expects a List, got %s", args[0].Type())
		}
		return runtime.Integer(len(l.Items)), nil
	})
	def(env, "first", func(args []runtime.Value) (runtime.Value, error) {
		if err := checkArity("first", args, 1); err != nil {
			return nil, err
		}
		items, ok := asSeq(args[0])
		if !ok {
			return nil, errors.NewRuntimeError("first expects a List or Vector, got %s", args[0].Type())
		}
		if len(items) == 0 {
			return nil, errors.NewRuntimeError("first: empty sequence")
		}
		return items[0], nil
	})
	def(env, "rest", func(args []runtime.Value) (runtime.Value, error) {
		if err := checkArity("rest", args, 1); err != nil {
			return nil, err
		}
		items, ok := asSeq(args[0])
		if !ok {
			return nil, errors.NewRuntimeError("rest expects a List or Vector, got %s", args[0].Type())
		}
		if len(items) == 0 {
			return &runtime.List{}, nil
		}
		rest := make([]runtime.Value, len(items)-1)
		copy(rest, items[1:])
		return &runtime.List{Items: rest}, nil
	})
	def(env, "nth", func(args []runtime.Value) (runtime.Value, error) {
		if err := checkArity("nth", args, 2); err != nil {
			return nil, err
		}
		items, ok := asSeq(args[0])
		if !ok {
			return nil, errors.NewRuntimeError("nth expects a List or Vector, got %s", args[0].Type())
		}
		idx, ok := args[1].(runtime.Integer)
		if !ok {
			return nil, errors.NewRuntimeError("nth expects an Integer index, got %s", args[1].Type())
		}
		if idx < 0 || int(idx) >= len(items) {
			return nil, errors.NewRuntimeError("nth: index %d out of range", idx)
		}
		return items[idx], nil
	})
	def(env, "cons", func(args []runtime.Value) (runtime.Value, error) {
		if err := checkArity("cons", args, 2); err != nil {
			return nil, err
		}
		items, ok := asSeq(args[1])
		if !ok {
			return nil, errors.NewRuntimeError("cons expects a List or Vector as its second argument, got %s", args[1].Type())
		}
		out := make([]runtime.Value, 0, len(items)+1)
		out = append(out, args[0])
		out = append(out, items...)
		return &runtime.List{Items: out}, nil
	})
	def(env, "concat", func(args []runtime.Value) (runtime.Value, error) {
		var out []runtime.Value
		for _, a := range args {
			items, ok := asSeq(a)
			if !ok {
				return nil, errors.NewRuntimeError("concat expects Lists or Vectors, got %s", a.Type())
			}
			out = append(out, items...)
		}
		return &runtime.List{Items: out}, nil
	})
	def(env, "apply", func(args []runtime.Value) (runtime.Value, error) {
		if err := checkArityAtLeast("apply", args, 1); err != nil {
			return nil, err
		}
		fn := args[0]
		var callArgs []runtime.Value
		for _, a := range args[1:] {
			if items, ok := asSeq(a); ok {
				callArgs = append(callArgs, items...)
			} else {
				callArgs = append(callArgs, a)
			}
		}
		return eval.Apply(fn, callArgs)
	})
	def(env, "map", func(args []runtime.Value) (runtime.Value, error) {
		if err := checkArity("map", args, 2); err != nil {
			return nil, err
		}
		items, ok := asSeq(args[1])
		if !ok {
			return nil, errors.NewRuntimeError("map expects a List or Vector, got %s", args[1].Type())
		}
		out := make([]runtime.Value, len(items))
		for i, it := range items {
			v, err := eval.Apply(args[0], []runtime.Value{it})
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return &runtime.List{Items: out}, nil
	})
}

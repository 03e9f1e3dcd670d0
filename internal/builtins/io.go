package builtins

import (
	"strings"

	"github.com/golisp-lang/golisp/internal/errors"
	"github.com/golisp-lang/golisp/internal/host"
	"github.com/golisp-lang/golisp/internal/reader"
	"github.com/golisp-lang/golisp/internal/runtime"
)

func registerIO(env *runtime.Environment, h host.Host) {
	def(env, "read-string", func(args []runtime.Value) (runtime.Value, error) {
		if err := checkArity("read-string", args, 1); err != nil {
			return nil, err
		}
		s, ok := args[0].(runtime.String)
		if !ok {
			return nil, errors.NewRuntimeError("read-string expects a String, got %s", args[0].Type())
		}
		v, err := reader.ReadString(string(s))
		if err != nil {
			return nil, err
		}
		return v, nil
	})
	def(env, "slurp", func(args []runtime.Value) (runtime.Value, error) {
		if err := checkArity("slurp", args, 1); err != nil {
			return nil, err
		}
		path, ok := args[0].(runtime.String)
		if !ok {
			return nil, errors.NewRuntimeError("slurp expects a String, got %s", args[0].Type())
		}
		data, err := h.Slurp(string(path))
		if err != nil {
			return nil, errors.NewRuntimeError("slurp: %s", err.Error())
		}
		return runtime.String(data), nil
	})
	def(env, "throw", func(args []runtime.Value) (runtime.Value, error) {
		if err := checkArity("throw", args, 1); err != nil {
			return nil, err
		}
		s, ok := args[0].(runtime.String)
		if !ok {
			return nil, errors.NewRuntimeError("throw expects a String, got %s", args[0].Type())
		}
		return nil, errors.NewRuntimeError("%s", string(s))
	})
	def(env, "prn", func(args []runtime.Value) (runtime.Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = runtime.PrintDisplay(a)
		}
		h.Print(strings.Join(parts, " ") + "\n")
		return runtime.Nil{}, nil
	})
	def(env, "time-ms", func(args []runtime.Value) (runtime.Value, error) {
		if err := checkArity("time-ms", args, 0); err != nil {
			return nil, err
		}
		return runtime.Integer(h.TimeMS()), nil
	})
	def(env, "input", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) > 1 {
			return nil, errors.NewRuntimeError("input expects at most 1 argument, got %d", len(args))
		}
		prompt := ""
		if len(args) == 1 {
			s, ok := args[0].(runtime.String)
			if !ok {
				return nil, errors.NewRuntimeError("input expects a String prompt, got %s", args[0].Type())
			}
			prompt = string(s)
		}
		line, ok := h.Input(prompt)
		if !ok {
			return runtime.String(""), nil
		}
		return runtime.String(line), nil
	})
}

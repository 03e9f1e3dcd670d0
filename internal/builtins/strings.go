package builtins

import (
	"strings"

	"github.com/golisp-lang/golisp/internal/errors"
	"github.com/golisp-lang/golisp/internal/runtime"
)

func registerStrings(env *runtime.Environment) {
	def(env, "str", func(args []runtime.Value) (runtime.Value, error) {
		var sb strings.Builder
		for _, a := range args {
			s, ok := a.(runtime.String)
			if !ok {
				return nil, errors.NewRuntimeError("str expects only String arguments, got %s", a.Type())
			}
			sb.WriteString(string(s))
		}
		return runtime.String(sb.String()), nil
	})
	def(env, "symbol", func(args []runtime.Value) (runtime.Value, error) {
		if err := checkArity("symbol", args, 1); err != nil {
			return nil, err
		}
		s, ok := args[0].(runtime.String)
		if !ok {
			return nil, errors.NewRuntimeError("symbol expects a String, got %s", args[0].Type())
		}
		return runtime.Symbol(s), nil
	})
}

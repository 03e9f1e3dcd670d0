package eval

import (
	"github.com/golisp-lang/golisp/internal/errors"
	"github.com/golisp-lang/golisp/internal/runtime"
)

// evalQuasiquote implements spec.md §4.4: a one-level list template. A
// non-List argument is returned unchanged; a List argument is rebuilt
// element by element, splicing in `(unquote x)` and `(splice-unquote x)`
// forms and leaving everything else untouched (not recursively
// quasiquoted -- nested lists are copied as-is).
func evalQuasiquote(args []runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, errors.NewRuntimeError("quasiquote expects exactly 1 argument")
	}
	template := args[0]
	list, ok := template.(*runtime.List)
	if !ok {
		return template, nil
	}

	var result []runtime.Value
	for _, elem := range list.Items {
		inner, sym, tagged := unwrapTagged(elem)
		switch {
		case tagged && sym == "unquote":
			v, err := Eval(inner, env)
			if err != nil {
				return nil, err
			}
			result = append(result, v)
		case tagged && sym == "splice-unquote":
			v, err := Eval(inner, env)
			if err != nil {
				return nil, err
			}
			spliced, ok := v.(*runtime.List)
			if !ok {
				return nil, errors.NewRuntimeError("splice-unquote requires a list, got %s", v.Type())
			}
			result = append(result, spliced.Items...)
		default:
			result = append(result, elem)
		}
	}
	return &runtime.List{Items: result}, nil
}

// unwrapTagged reports whether elem is a two-element list whose head is
// the Symbol sym, returning the second element.
func unwrapTagged(elem runtime.Value) (inner runtime.Value, sym string, ok bool) {
	list, isList := elem.(*runtime.List)
	if !isList || len(list.Items) != 2 {
		return nil, "", false
	}
	head, isSym := list.Items[0].(runtime.Symbol)
	if !isSym {
		return nil, "", false
	}
	return list.Items[1], string(head), true
}

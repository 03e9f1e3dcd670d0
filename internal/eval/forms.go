package eval

import (
	"github.com/golisp-lang/golisp/internal/errors"
	"github.com/golisp-lang/golisp/internal/runtime"
)

func evalDef(args []runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	if len(args) != 2 {
		return nil, errors.NewRuntimeError("def! expects exactly 2 arguments")
	}
	sym, ok := args[0].(runtime.Symbol)
	if !ok {
		return nil, errors.NewRuntimeError("def! expects a symbol, got %s", args[0].Type())
	}
	v, err := Eval(args[1], env)
	if err != nil {
		return nil, err
	}
	env.Set(string(sym), v)
	return v, nil
}

func evalDefmacro(args []runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	if len(args) != 2 {
		return nil, errors.NewRuntimeError("defmacro! expects exactly 2 arguments")
	}
	sym, ok := args[0].(runtime.Symbol)
	if !ok {
		return nil, errors.NewRuntimeError("defmacro! expects a symbol, got %s", args[0].Type())
	}
	v, err := Eval(args[1], env)
	if err != nil {
		return nil, err
	}
	cl, ok := v.(*runtime.Closure)
	if !ok {
		return nil, errors.NewRuntimeError("defmacro! expects a closure, got %s", v.Type())
	}
	macro := cl.AsMacro()
	env.Set(string(sym), macro)
	return macro, nil
}

// prepareLet evaluates the let* binding pairs into a freshly constructed
// child environment, in order, so that later bindings can see earlier
// ones, and returns the body to tail-call on.
func prepareLet(args []runtime.Value, env *runtime.Environment) (runtime.Value, *runtime.Environment, error) {
	if len(args) != 2 {
		return nil, nil, errors.NewRuntimeError("let* expects exactly 2 arguments")
	}
	bindingsList, ok := asSeq(args[0])
	if !ok {
		return nil, nil, errors.NewRuntimeError("let* expects a list or vector of bindings")
	}
	if len(bindingsList)%2 != 0 {
		return nil, nil, errors.NewRuntimeError("let* expects an even number of binding forms")
	}
	child := runtime.NewEnclosedEnvironment(env)
	for i := 0; i < len(bindingsList); i += 2 {
		sym, ok := bindingsList[i].(runtime.Symbol)
		if !ok {
			return nil, nil, errors.NewRuntimeError("let* binding name must be a symbol, got %s", bindingsList[i].Type())
		}
		v, err := Eval(bindingsList[i+1], child)
		if err != nil {
			return nil, nil, err
		}
		child.Set(string(sym), v)
	}
	return args[1], child, nil
}

func prepareDo(args []runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	if len(args) == 0 {
		return nil, errors.NewRuntimeError("do requires at least one form")
	}
	for _, form := range args[:len(args)-1] {
		if _, err := Eval(form, env); err != nil {
			return nil, err
		}
	}
	return args[len(args)-1], nil
}

func prepareIf(args []runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, errors.NewRuntimeError("if expects 2 or 3 arguments")
	}
	cond, err := Eval(args[0], env)
	if err != nil {
		return nil, err
	}
	if runtime.Falsy(cond) {
		if len(args) == 3 {
			return args[2], nil
		}
		return runtime.Nil{}, nil
	}
	return args[1], nil
}

func evalFn(args []runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	if len(args) != 2 {
		return nil, errors.NewRuntimeError("fn* expects exactly 2 arguments")
	}
	paramForms, ok := asSeq(args[0])
	if !ok {
		return nil, errors.NewRuntimeError("fn* expects a parameter list or vector")
	}
	var params []string
	var rest string
	for i := 0; i < len(paramForms); i++ {
		sym, ok := paramForms[i].(runtime.Symbol)
		if !ok {
			return nil, errors.NewRuntimeError("fn* parameter names must be symbols, got %s", paramForms[i].Type())
		}
		if sym == "&" {
			if i+1 >= len(paramForms) {
				return nil, errors.NewRuntimeError("fn* expects a name following '&'")
			}
			restSym, ok := paramForms[i+1].(runtime.Symbol)
			if !ok {
				return nil, errors.NewRuntimeError("fn* rest parameter name must be a symbol")
			}
			rest = string(restSym)
			break
		}
		params = append(params, string(sym))
	}
	closureEnv := runtime.NewEnclosedEnvironment(env)
	return runtime.NewClosure(params, rest, args[1], closureEnv, rootOf(env)), nil
}

func evalQuote(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, errors.NewRuntimeError("quote expects exactly 1 argument")
	}
	return args[0], nil
}

func evalTry(args []runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	if len(args) != 2 {
		return nil, errors.NewRuntimeError("try* expects exactly 2 arguments")
	}
	handlerVal, err := Eval(args[1], env)
	if err != nil {
		return nil, err
	}
	handler, ok := handlerVal.(*runtime.Closure)
	if !ok {
		return nil, errors.NewRuntimeError("try* handler must be a closure, got %s", handlerVal.Type())
	}
	result, bodyErr := Eval(args[0], env)
	if bodyErr == nil {
		return result, nil
	}
	// ParseError is never recovered inside the core (spec.md §7); only a
	// RuntimeError is handed to the handler.
	re, ok := bodyErr.(*errors.RuntimeError)
	if !ok {
		return nil, bodyErr
	}
	return Apply(handler, []runtime.Value{runtime.String(re.Msg)})
}

func evalEval(args []runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, errors.NewRuntimeError("eval expects exactly 1 argument")
	}
	return Eval(args[0], env)
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

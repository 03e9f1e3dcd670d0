// Package eval implements golisp's tree-walking, tail-call-optimized
// evaluator (spec.md §4.3-§4.5): a loop over (ast, env) that either
// returns a Value, replaces (ast, env) and continues (tail position), or
// recurses into Eval on a strict subterm.
package eval

import (
	"github.com/golisp-lang/golisp/internal/errors"
	"github.com/golisp-lang/golisp/internal/runtime"
)

// Eval evaluates ast in env, iterating in place on every tail-position
// rule (let*, do, if, eval, and non-macro Closure application) so that
// recursion through those positions costs no Go stack (spec.md §8
// scenario 12).
func Eval(ast runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	for {
		switch node := ast.(type) {
		case runtime.Symbol:
			v, ok := env.Get(string(node))
			if !ok {
				return nil, errors.NewRuntimeError("unknown symbol: %s", string(node))
			}
			return v, nil

		case *runtime.Vector:
			items := make([]runtime.Value, len(node.Items))
			for i, it := range node.Items {
				v, err := Eval(it, env)
				if err != nil {
					return nil, err
				}
				items[i] = v
			}
			return &runtime.Vector{Items: items}, nil

		case *runtime.Dictionary:
			out := runtime.NewDictionary()
			for _, k := range node.Keys() {
				val, _ := node.Get(k)
				v, err := Eval(val, env)
				if err != nil {
					return nil, err
				}
				out.Set(k, v)
			}
			return out, nil

		case *runtime.List:
			if len(node.Items) == 0 {
				return nil, errors.NewRuntimeError("cannot call empty list")
			}

			if head, ok := node.Items[0].(runtime.Symbol); ok {
				switch head {
				case "def!":
					return evalDef(node.Items[1:], env)
				case "defmacro!":
					return evalDefmacro(node.Items[1:], env)
				case "let*":
					nextAst, nextEnv, err := prepareLet(node.Items[1:], env)
					if err != nil {
						return nil, err
					}
					ast, env = nextAst, nextEnv
					continue
				case "do":
					nextAst, err := prepareDo(node.Items[1:], env)
					if err != nil {
						return nil, err
					}
					ast = nextAst
					continue
				case "if":
					nextAst, err := prepareIf(node.Items[1:], env)
					if err != nil {
						return nil, err
					}
					ast = nextAst
					continue
				case "fn*":
					return evalFn(node.Items[1:], env)
				case "quote":
					return evalQuote(node.Items[1:])
				case "quasiquote":
					return evalQuasiquote(node.Items[1:], env)
				case "try*":
					return evalTry(node.Items[1:], env)
				case "eval":
					nextAst, err := evalEval(node.Items[1:], env)
					if err != nil {
						return nil, err
					}
					ast = nextAst
					env = rootOf(env)
					continue
				}
			}

			// Macro expansion: if the head resolves to a macro Closure,
			// the unevaluated tail is passed to it and the result becomes
			// the new current AST.
			if head, ok := node.Items[0].(runtime.Symbol); ok {
				if v, found := env.Get(string(head)); found {
					if cl, ok := v.(*runtime.Closure); ok && cl.IsMacro {
						expanded, err := applyClosure(cl, node.Items[1:])
						if err != nil {
							return nil, err
						}
						ast = expanded
						continue
					}
				}
			}

			evaluated := make([]runtime.Value, len(node.Items))
			for i, it := range node.Items {
				v, err := Eval(it, env)
				if err != nil {
					return nil, err
				}
				evaluated[i] = v
			}

			switch fn := evaluated[0].(type) {
			case *runtime.NativeFunction:
				return fn.Fn(evaluated[1:])
			case *runtime.Closure:
				if fn.IsMacro {
					return nil, errors.NewRuntimeError("cannot call macro %s as a function", fn.String())
				}
				if err := bindParams(fn, evaluated[1:]); err != nil {
					return nil, err
				}
				ast = fn.Body
				env = fn.Env
				continue
			default:
				return nil, errors.NewRuntimeError("cannot call %s", evaluated[0].Type())
			}

		default:
			return ast, nil
		}
	}
}

func rootOf(env *runtime.Environment) *runtime.Environment {
	for env.Outer() != nil {
		env = env.Outer()
	}
	return env
}

// Apply invokes fn (a Closure or NativeFunction) with already-evaluated
// args, re-entering the evaluator loop for Closures. It is the shared
// entry point used by `apply`, `map`, and `swap!`.
func Apply(fn runtime.Value, args []runtime.Value) (runtime.Value, error) {
	switch fn := fn.(type) {
	case *runtime.NativeFunction:
		return fn.Fn(args)
	case *runtime.Closure:
		if fn.IsMacro {
			return nil, errors.NewRuntimeError("cannot call macro %s as a function", fn.String())
		}
		if err := bindParams(fn, args); err != nil {
			return nil, err
		}
		return Eval(fn.Body, fn.Env)
	default:
		return nil, errors.NewRuntimeError("cannot call %s", fn.Type())
	}
}

// applyClosure runs a macro Closure against its unevaluated argument
// forms and returns the expansion (not yet re-evaluated; the caller
// loops on it).
func applyClosure(cl *runtime.Closure, args []runtime.Value) (runtime.Value, error) {
	if err := bindParams(cl, args); err != nil {
		return nil, err
	}
	return Eval(cl.Body, cl.Env)
}

// bindParams walks positional params and args in lockstep, binding into
// fn.Env in place (spec.md §9: the captured env is reused across calls,
// which is what makes a Closure value non-reentrant by design).
func bindParams(fn *runtime.Closure, args []runtime.Value) error {
	i := 0
	for ; i < len(fn.Params); i++ {
		if i >= len(args) {
			return errors.NewRuntimeError("wrong number of arguments: expected %d, got %d", len(fn.Params), len(args))
		}
		fn.Env.Set(fn.Params[i], args[i])
	}
	if fn.Rest != "" {
		rest := args[i:]
		items := make([]runtime.Value, len(rest))
		copy(items, rest)
		fn.Env.Set(fn.Rest, &runtime.List{Items: items})
		return nil
	}
	if i != len(args) {
		return errors.NewRuntimeError("wrong number of arguments: expected %d, got %d", len(fn.Params), len(args))
	}
	return nil
}

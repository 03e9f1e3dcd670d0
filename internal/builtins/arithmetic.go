package builtins

import (
	"math"

	"github.com/golisp-lang/golisp/internal/errors"
	"github.com/golisp-lang/golisp/internal/runtime"
)

func registerArithmetic(env *runtime.Environment) {
	def(env, "+", arith("+", addInt, addFloat, true))
	def(env, "-", arith("-", subInt, subFloat, false))
	def(env, "*", arith("*", mulInt, mulFloat, false))
	def(env, "/", arith("/", divInt, divFloat, false))
	def(env, "%", modulo)

	def(env, "=", func(args []runtime.Value) (runtime.Value, error) {
		if err := checkArity("=", args, 2); err != nil {
			return nil, err
		}
		return runtime.Bool(runtime.Equal(args[0], args[1])), nil
	})
	def(env, ">", ordered(">", func(a, b int64) bool { return a > b }, func(a, b float64) bool { return a > b }))
	def(env, "<", ordered("<", func(a, b int64) bool { return a < b }, func(a, b float64) bool { return a < b }))
	def(env, ">=", ordered(">=", func(a, b int64) bool { return a >= b }, func(a, b float64) bool { return a >= b }))
	def(env, "<=", ordered("<=", func(a, b int64) bool { return a <= b }, func(a, b float64) bool { return a <= b }))
}

func addInt(a, b int64) (int64, error) {
	r := a + b
	if ((a ^ r) & (b ^ r)) < 0 {
		return 0, errors.NewRuntimeError("integer overflow in +")
	}
	return r, nil
}

func subInt(a, b int64) (int64, error) {
	r := a - b
	if ((a ^ b) & (a ^ r)) < 0 {
		return 0, errors.NewRuntimeError("integer overflow in -")
	}
	return r, nil
}

func mulInt(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	r := a * b
	if (a == math.MinInt64 && b == -1) || r/b != a {
		return 0, errors.NewRuntimeError("integer overflow in *")
	}
	return r, nil
}

func divInt(a, b int64) (int64, error) {
	if b == 0 {
		return 0, errors.NewRuntimeError("division by zero")
	}
	if a == math.MinInt64 && b == -1 {
		return 0, errors.NewRuntimeError("integer overflow in /")
	}
	return a / b, nil
}

func addFloat(a, b float64) (float64, error) { return a + b, nil }
func subFloat(a, b float64) (float64, error) { return a - b, nil }
func mulFloat(a, b float64) (float64, error) { return a * b, nil }
func divFloat(a, b float64) (float64, error) {
	if b == 0 {
		return 0, errors.NewRuntimeError("division by zero")
	}
	return a / b, nil
}

// arith builds a two-arg NativeFunc for name, dispatching to intOp for two
// Integers, floatOp for two Floats, and (when allowStringJoin) concatenation
// for two Strings -- the only other variant `+` accepts (spec.md §4.6).
func arith(name string, intOp func(a, b int64) (int64, error), floatOp func(a, b float64) (float64, error), allowStringJoin bool) runtime.NativeFunc {
	return func(args []runtime.Value) (runtime.Value, error) {
		if err := checkArity(name, args, 2); err != nil {
			return nil, err
		}
		switch a := args[0].(type) {
		case runtime.Integer:
			b, ok := args[1].(runtime.Integer)
			if !ok {
				return nil, errors.NewRuntimeError("%s expects two Integers, got %s and %s", name, args[0].Type(), args[1].Type())
			}
			r, err := intOp(int64(a), int64(b))
			if err != nil {
				return nil, err
			}
			return runtime.Integer(r), nil
		case runtime.Float:
			b, ok := args[1].(runtime.Float)
			if !ok {
				return nil, errors.NewRuntimeError("%s expects two Floats, got %s and %s", name, args[0].Type(), args[1].Type())
			}
			r, err := floatOp(float64(a), float64(b))
			if err != nil {
				return nil, err
			}
			return runtime.Float(r), nil
		case runtime.String:
			if !allowStringJoin {
				return nil, errors.NewRuntimeError("%s does not accept Strings", name)
			}
			b, ok := args[1].(runtime.String)
			if !ok {
				return nil, errors.NewRuntimeError("%s expects two Strings, got %s and %s", name, args[0].Type(), args[1].Type())
			}
			return a + b, nil
		default:
			return nil, errors.NewRuntimeError("%s expects two Integers, two Floats, or two Strings, got %s", name, args[0].Type())
		}
	}
}

func modulo(args []runtime.Value) (runtime.Value, error) {
	if err := checkArity("%", args, 2); err != nil {
		return nil, err
	}
	a, ok := args[0].(runtime.Integer)
	if !ok {
		return nil, errors.NewRuntimeError("%% expects two Integers, got %s", args[0].Type())
	}
	b, ok := args[1].(runtime.Integer)
	if !ok {
		return nil, errors.NewRuntimeError("%% expects two Integers, got %s", args[1].Type())
	}
	if b == 0 {
		return nil, errors.NewRuntimeError("division by zero")
	}
	return a % b, nil
}

func ordered(name string, intCmp func(a, b int64) bool, floatCmp func(a, b float64) bool) runtime.NativeFunc {
	return func(args []runtime.Value) (runtime.Value, error) {
		if err := checkArity(name, args, 2); err != nil {
			return nil, err
		}
		switch a := args[0].(type) {
		case runtime.Integer:
			b, ok := args[1].(runtime.Integer)
			if !ok {
				return nil, errors.NewRuntimeError("%s expects two Integers, got %s and %s", name, args[0].Type(), args[1].Type())
			}
			return runtime.Bool(intCmp(int64(a), int64(b))), nil
		case runtime.Float:
			b, ok := args[1].(runtime.Float)
			if !ok {
				return nil, errors.NewRuntimeError("%s expects two Floats, got %s and %s", name, args[0].Type(), args[1].Type())
			}
			return runtime.Bool(floatCmp(float64(a), float64(b))), nil
		default:
			return nil, errors.NewRuntimeError("%s expects two Integers or two Floats, got %s", name, args[0].Type())
		}
	}
}

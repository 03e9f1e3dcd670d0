package builtins

import "github.com/golisp-lang/golisp/internal/runtime"

func registerPredicates(env *runtime.Environment) {
	def(env, "list?", predicate("list?", func(v runtime.Value) bool { _, ok := v.(*runtime.List); return ok }))
	def(env, "vector?", predicate("vector?", func(v runtime.Value) bool { _, ok := v.(*runtime.Vector); return ok }))
	def(env, "sequential?", predicate("sequential?", func(v runtime.Value) bool {
		_, isList := v.(*runtime.List)
		_, isVec := v.(*runtime.Vector)
		return isList || isVec
	}))
	def(env, "dict?", predicate("dict?", func(v runtime.Value) bool { _, ok := v.(*runtime.Dictionary); return ok }))
	def(env, "nil?", predicate("nil?", func(v runtime.Value) bool { _, ok := v.(runtime.Nil); return ok }))
	def(env, "true?", predicate("true?", func(v runtime.Value) bool { b, ok := v.(runtime.Bool); return ok && bool(b) }))
	def(env, "false?", predicate("false?", func(v runtime.Value) bool { b, ok := v.(runtime.Bool); return ok && !bool(b) }))
	def(env, "symbol?", predicate("symbol?", func(v runtime.Value) bool { _, ok := v.(runtime.Symbol); return ok }))
	def(env, "string?", predicate("string?", func(v runtime.Value) bool { _, ok := v.(runtime.String); return ok }))
	def(env, "int?", predicate("int?", func(v runtime.Value) bool { _, ok := v.(runtime.Integer); return ok }))
	def(env, "float?", predicate("float?", func(v runtime.Value) bool { _, ok := v.(runtime.Float); return ok }))
	def(env, "func?", predicate("func?", func(v runtime.Value) bool {
		switch fn := v.(type) {
		case *runtime.NativeFunction:
			return true
		case *runtime.Closure:
			return !fn.IsMacro
		default:
			return false
		}
	}))
	def(env, "atom?", predicate("atom?", func(v runtime.Value) bool { _, ok := v.(*runtime.Atom); return ok }))
	def(env, "macro?", predicate("macro?", func(v runtime.Value) bool { cl, ok := v.(*runtime.Closure); return ok && cl.IsMacro }))
}

// predicate builds a single-argument NativeFunc returning Bool(pred(arg)).
func predicate(name string, pred func(runtime.Value) bool) runtime.NativeFunc {
	return func(args []runtime.Value) (runtime.Value, error) {
		if err := checkArity(name, args, 1); err != nil {
			return nil, err
		}
		return runtime.Bool(pred(args[0])), nil
	}
}

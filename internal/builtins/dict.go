package builtins

import (
	"github.com/golisp-lang/golisp/internal/errors"
	"github.com/golisp-lang/golisp/internal/runtime"
)

func registerDict(env *runtime.Environment) {
	def(env, "dict", func(args []runtime.Value) (runtime.Value, error) {
		if len(args)%2 != 0 {
			return nil, errors.NewRuntimeError("dict expects an even number of arguments")
		}
		d := runtime.NewDictionary()
		for i := 0; i < len(args); i += 2 {
			d.Set(runtime.DictKey(args[i]), args[i+1])
		}
		return d, nil
	})
	def(env, "assoc", func(args []runtime.Value) (runtime.Value, error) {
		if err := checkArityAtLeast("assoc", args, 1); err != nil {
			return nil, err
		}
		if (len(args)-1)%2 != 0 {
			return nil, errors.NewRuntimeError("assoc expects an even number of key/value arguments")
		}
		d, ok := args[0].(*runtime.Dictionary)
		if !ok {
			return nil, errors.NewRuntimeError("assoc expects a Dictionary, got %s", args[0].Type())
		}
		out := d.Clone()
		for i := 1; i < len(args); i += 2 {
			out.Set(runtime.DictKey(args[i]), args[i+1])
		}
		return out, nil
	})
	def(env, "dissoc", func(args []runtime.Value) (runtime.Value, error) {
		if err := checkArityAtLeast("dissoc", args, 1); err != nil {
			return nil, err
		}
		d, ok := args[0].(*runtime.Dictionary)
		if !ok {
			return nil, errors.NewRuntimeError("dissoc expects a Dictionary, got %s", args[0].Type())
		}
		out := d.Clone()
		for _, k := range args[1:] {
			out.Delete(runtime.DictKey(k))
		}
		return out, nil
	})
	def(env, "get", func(args []runtime.Value) (runtime.Value, error) {
		if err := checkArity("get", args, 2); err != nil {
			return nil, err
		}
		d, ok := args[0].(*runtime.Dictionary)
		if !ok {
			return nil, errors.NewRuntimeError("get expects a Dictionary, got %s", args[0].Type())
		}
		v, found := d.Get(runtime.DictKey(args[1]))
		if !found {
			return runtime.Nil{}, nil
		}
		return v, nil
	})
	def(env, "contains", func(args []runtime.Value) (runtime.Value, error) {
		if err := checkArity("contains", args, 2); err != nil {
			return nil, err
		}
		d, ok := args[0].(*runtime.Dictionary)
		if !ok {
			return nil, errors.NewRuntimeError("contains expects a Dictionary, got %s", args[0].Type())
		}
		_, found := d.Get(runtime.DictKey(args[1]))
		return runtime.Bool(found), nil
	})
	def(env, "keys", func(args []runtime.Value) (runtime.Value, error) {
		if err := checkArity("keys", args, 1); err != nil {
			return nil, err
		}
		d, ok := args[0].(*runtime.Dictionary)
		if !ok {
			return nil, errors.NewRuntimeError("keys expects a Dictionary, got %s", args[0].Type())
		}
		keys := d.Keys()
		items := make([]runtime.Value, len(keys))
		for i, k := range keys {
			items[i] = runtime.String(k)
		}
		return &runtime.List{Items: items}, nil
	})
	def(env, "values", func(args []runtime.Value) (runtime.Value, error) {
		if err := checkArity("values", args, 1); err != nil {
			return nil, err
		}
		d, ok := args[0].(*runtime.Dictionary)
		if !ok {
			return nil, errors.NewRuntimeError("values expects a Dictionary, got %s", args[0].Type())
		}
		keys := d.Keys()
		items := make([]runtime.Value, len(keys))
		for i, k := range keys {
			v, _ := d.Get(k)
			items[i] = v
		}
		return &runtime.List{Items: items}, nil
	})
}

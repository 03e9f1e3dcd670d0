package builtins

import (
	"strings"
	"testing"

	"github.com/golisp-lang/golisp/internal/runtime"
)

func newEnvWithPredicates() *runtime.Environment {
	env := runtime.NewEnvironment()
	registerPredicates(env)
	return env
}

func TestPredicatesDispatchByType(t *testing.T) {
	env := newEnvWithPredicates()
	tests := []struct {
		name string
		v    runtime.Value
		want bool
	}{
		{"list?", runtime.NewList(), true},
		{"list?", runtime.NewVector(), false},
		{"vector?", runtime.NewVector(), true},
		{"sequential?", runtime.NewList(), true},
		{"sequential?", runtime.String("x"), false},
		{"dict?", runtime.NewDictionary(), true},
		{"nil?", runtime.Nil{}, true},
		{"nil?", runtime.Bool(false), false},
		{"true?", runtime.Bool(true), true},
		{"false?", runtime.Bool(false), true},
		{"symbol?", runtime.Symbol("x"), true},
		{"string?", runtime.String("x"), true},
		{"int?", runtime.Integer(1), true},
		{"float?", runtime.Float(1), true},
		{"atom?", runtime.NewAtom(runtime.Nil{}), true},
	}
	for _, tt := range tests {
		got := call(t, env, tt.name, tt.v)
		if got != runtime.Bool(tt.want) {
			t.Errorf("%s(%v) = %v, want %v", tt.name, tt.v, got, tt.want)
		}
	}
}

func TestPredicateArityErrorNamesTheBuiltin(t *testing.T) {
	env := newEnvWithPredicates()
	err := callErr(t, env, "list?")
	if err == nil {
		t.Fatalf("expected an arity error")
	}
	if got := err.Error(); !strings.Contains(got, "list?") {
		t.Fatalf("error %q does not name the builtin list?", got)
	}
}

func TestMacroPredicateDistinguishesMacrosFromFunctions(t *testing.T) {
	env := newEnvWithPredicates()
	root := runtime.NewEnvironment()
	fn := runtime.NewClosure(nil, "", runtime.Nil{}, root, root)
	if got := call(t, env, "func?", fn); got != runtime.Bool(true) {
		t.Errorf("func?(closure) = %v, want true", got)
	}
	macro := fn.AsMacro()
	if got := call(t, env, "macro?", macro); got != runtime.Bool(true) {
		t.Errorf("macro?(macro) = %v, want true", got)
	}
	if got := call(t, env, "func?", macro); got != runtime.Bool(false) {
		t.Errorf("func?(macro) = %v, want false", got)
	}
}

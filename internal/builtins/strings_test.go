package builtins

import (
	"testing"

	"github.com/golisp-lang/golisp/internal/runtime"
)

func newEnvWithStrings() *runtime.Environment {
	env := runtime.NewEnvironment()
	registerStrings(env)
	return env
}

func TestStrConcatenatesStringsOnly(t *testing.T) {
	env := newEnvWithStrings()
	got := call(t, env, "str", runtime.String("foo"), runtime.String("bar"))
	if got != runtime.String("foobar") {
		t.Errorf("str = %v, want foobar", got)
	}
	if err := callErr(t, env, "str", runtime.Integer(1)); err == nil {
		t.Errorf("expected error for non-String argument to str")
	}
}

func TestStrWithNoArgsReturnsEmptyString(t *testing.T) {
	env := newEnvWithStrings()
	got := call(t, env, "str")
	if got != runtime.String("") {
		t.Errorf("str() = %v, want empty String", got)
	}
}

func TestSymbolConvertsStringToSymbol(t *testing.T) {
	env := newEnvWithStrings()
	got := call(t, env, "symbol", runtime.String("abc"))
	if got != runtime.Symbol("abc") {
		t.Errorf("symbol = %v, want abc", got)
	}
}

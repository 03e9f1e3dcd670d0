package builtins

import (
	"testing"

	"github.com/golisp-lang/golisp/internal/runtime"
)

func newEnvWithAtoms() *runtime.Environment {
	env := runtime.NewEnvironment()
	registerAtoms(env)
	registerArithmetic(env)
	return env
}

func TestAtomLifecycle(t *testing.T) {
	env := newEnvWithAtoms()
	a := call(t, env, "atom", runtime.Integer(1))
	if got := call(t, env, "deref", a); got != runtime.Integer(1) {
		t.Errorf("deref = %v, want 1", got)
	}
	call(t, env, "reset!", a, runtime.Integer(5))
	if got := call(t, env, "deref", a); got != runtime.Integer(5) {
		t.Errorf("deref after reset! = %v, want 5", got)
	}
}

func TestAtomSwapAppliesFunctionWithExtraArgs(t *testing.T) {
	env := newEnvWithAtoms()
	a := call(t, env, "atom", runtime.Integer(10))
	plus, _ := env.Get("+")
	got := call(t, env, "swap!", a, plus, runtime.Integer(5))
	if got != runtime.Integer(15) {
		t.Errorf("swap! result = %v, want 15", got)
	}
	if got := call(t, env, "deref", a); got != runtime.Integer(15) {
		t.Errorf("deref after swap! = %v, want 15", got)
	}
}

func TestAtomWrongTypeRejected(t *testing.T) {
	env := newEnvWithAtoms()
	if err := callErr(t, env, "deref", runtime.Integer(1)); err == nil {
		t.Errorf("expected error dereferencing a non-Atom")
	}
}

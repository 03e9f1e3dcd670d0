package builtins

import (
	"testing"

	"github.com/golisp-lang/golisp/internal/runtime"
)

func newEnvWithDict() *runtime.Environment {
	env := runtime.NewEnvironment()
	registerDict(env)
	return env
}

func TestDictBuildGetContains(t *testing.T) {
	env := newEnvWithDict()
	d := call(t, env, "dict", runtime.String("a"), runtime.Integer(1))
	if got := call(t, env, "get", d, runtime.String("a")); got != runtime.Integer(1) {
		t.Errorf("get = %v, want 1", got)
	}
	if got := call(t, env, "get", d, runtime.String("missing")); got != (runtime.Nil{}) {
		t.Errorf("get missing key = %v, want Nil", got)
	}
	if got := call(t, env, "contains", d, runtime.String("a")); got != runtime.Bool(true) {
		t.Errorf("contains = %v, want true", got)
	}
}

func TestDictAssocDissocAreImmutable(t *testing.T) {
	env := newEnvWithDict()
	d := call(t, env, "dict", runtime.String("a"), runtime.Integer(1))
	d2 := call(t, env, "assoc", d, runtime.String("b"), runtime.Integer(2))
	if got := call(t, env, "contains", d, runtime.String("b")); got != runtime.Bool(false) {
		t.Errorf("original dict should not see assoc'd key")
	}
	if got := call(t, env, "contains", d2, runtime.String("b")); got != runtime.Bool(true) {
		t.Errorf("new dict should see assoc'd key")
	}
	d3 := call(t, env, "dissoc", d2, runtime.String("a"))
	if got := call(t, env, "contains", d3, runtime.String("a")); got != runtime.Bool(false) {
		t.Errorf("dissoc should remove key")
	}
	if got := call(t, env, "contains", d2, runtime.String("a")); got != runtime.Bool(true) {
		t.Errorf("dissoc must not mutate its argument")
	}
}

func TestDictKeysAndValuesSorted(t *testing.T) {
	env := newEnvWithDict()
	d := call(t, env, "dict",
		runtime.String("item10"), runtime.Integer(10),
		runtime.String("item2"), runtime.Integer(2),
	)
	keys := call(t, env, "keys", d)
	if runtime.Print(keys) != `("\"item2\"" "\"item10\"")` {
		t.Errorf("keys = %s, want natural-sorted order", runtime.Print(keys))
	}
	values := call(t, env, "values", d)
	if runtime.Print(values) != "(2 10)" {
		t.Errorf("values = %s, want (2 10)", runtime.Print(values))
	}
}

package builtins

import (
	"testing"

	"github.com/golisp-lang/golisp/internal/runtime"
)

func newEnvWithDomain() *runtime.Environment {
	env := runtime.NewEnvironment()
	registerDomain(env)
	return env
}

func TestJSONParseScalars(t *testing.T) {
	env := newEnvWithDomain()
	tests := []struct {
		src  string
		want runtime.Value
	}{
		{"null", runtime.Nil{}},
		{"true", runtime.Bool(true)},
		{"false", runtime.Bool(false)},
		{"42", runtime.Integer(42)},
		{"3.5", runtime.Float(3.5)},
		{`"hi"`, runtime.String("hi")},
	}
	for _, tt := range tests {
		got := call(t, env, "json-parse", runtime.String(tt.src))
		if got != tt.want {
			t.Errorf("json-parse(%q) = %#v, want %#v", tt.src, got, tt.want)
		}
	}
}

func TestJSONParseLargeIntegerSurvivesFloat64Precision(t *testing.T) {
	// 2^53 + 1 cannot be represented exactly as a float64; this pins the
	// Integer-vs-Float branch in fromJSONResult to gjson's integer-parsing
	// path (Result.Int()) rather than a round-trip through Result.Num.
	env := newEnvWithDomain()
	const big = "9007199254740993"
	got := call(t, env, "json-parse", runtime.String(big))
	if got != runtime.Integer(9007199254740993) {
		t.Errorf("json-parse(%s) = %#v, want Integer(9007199254740993)", big, got)
	}
}

func TestJSONParseArrayAndObject(t *testing.T) {
	env := newEnvWithDomain()
	got := call(t, env, "json-parse", runtime.String(`[1, 2, 3]`))
	if runtime.Print(got) != "(1 2 3)" {
		t.Errorf("json-parse array = %s, want (1 2 3)", runtime.Print(got))
	}

	got = call(t, env, "json-parse", runtime.String(`{"a": 1}`))
	d, ok := got.(*runtime.Dictionary)
	if !ok {
		t.Fatalf("json-parse object = %#v, want *Dictionary", got)
	}
	v, found := d.Get(`"a"`)
	if !found || v != runtime.Integer(1) {
		t.Errorf("dict[a] = %v, found=%v, want 1", v, found)
	}
}

func TestJSONParseInvalidIsError(t *testing.T) {
	env := newEnvWithDomain()
	if err := callErr(t, env, "json-parse", runtime.String("{not json")); err == nil {
		t.Errorf("expected error for invalid JSON")
	}
}

func TestJSONStringifyScalarsAndCollections(t *testing.T) {
	env := newEnvWithDomain()
	got := call(t, env, "json-stringify", runtime.Integer(42))
	if got != runtime.String("42") {
		t.Errorf("json-stringify(42) = %v, want \"42\"", got)
	}
	got = call(t, env, "json-stringify", runtime.String(`quoted "word"`))
	if got != runtime.String(`"quoted \"word\""`) {
		t.Errorf("json-stringify escaping = %v", got)
	}
	l := runtime.NewList(runtime.Integer(1), runtime.Integer(2))
	got = call(t, env, "json-stringify", l)
	if got != runtime.String("[1,2]") {
		t.Errorf("json-stringify list = %v, want [1,2]", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	env := newEnvWithDomain()
	d := runtime.NewDictionary()
	d.Set(`"a"`, runtime.Integer(1))
	d.Set(`"b"`, runtime.NewList(runtime.Integer(2), runtime.Integer(3)))

	raw := call(t, env, "json-stringify", d)
	back := call(t, env, "json-parse", raw)
	backDict, ok := back.(*runtime.Dictionary)
	if !ok {
		t.Fatalf("round-trip result = %#v, want *Dictionary", back)
	}
	v, _ := backDict.Get(`"a"`)
	if v != runtime.Integer(1) {
		t.Errorf("round-trip a = %v, want 1", v)
	}
}

func TestSortNaturalOrder(t *testing.T) {
	env := newEnvWithDomain()
	l := runtime.NewList(runtime.String("item10"), runtime.String("item2"), runtime.String("item1"))
	got := call(t, env, "sort", l)
	if runtime.Print(got) != `("item1" "item2" "item10")` {
		t.Errorf("sort = %s, want natural order", runtime.Print(got))
	}
}

func TestSortRejectsNonStrings(t *testing.T) {
	env := newEnvWithDomain()
	l := runtime.NewList(runtime.Integer(1), runtime.Integer(2))
	if err := callErr(t, env, "sort", l); err == nil {
		t.Errorf("expected error sorting non-Strings")
	}
}

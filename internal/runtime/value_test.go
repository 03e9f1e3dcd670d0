package runtime

import "testing"

func TestPrintCanonicalForm(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"nil", Nil{}, "nil"},
		{"true", Bool(true), "true"},
		{"false", Bool(false), "false"},
		{"integer", Integer(42), "42"},
		{"negative integer", Integer(-7), "-7"},
		{"float with fraction", Float(1.5), "1.5"},
		{"float whole number", Float(3), "3.0"},
		{"string", String("hi \"there\"\n"), `"hi \"there\"\n"`},
		{"symbol", Symbol("foo"), "foo"},
		{"list", NewList(Symbol("a"), Integer(1)), "(a 1)"},
		{"vector", NewVector(Integer(1), Integer(2)), "[1 2]"},
		{"nested list of strings", NewList(String("a"), String("b")), `("a" "b")`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Print(tt.v); got != tt.want {
				t.Errorf("Print(%#v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestPrintDisplayUnquotesStrings(t *testing.T) {
	if got := PrintDisplay(String("hello")); got != "hello" {
		t.Errorf("PrintDisplay(String) = %q, want %q", got, "hello")
	}
	if got := PrintDisplay(Integer(5)); got != "5" {
		t.Errorf("PrintDisplay(Integer) = %q, want %q", got, "5")
	}
}

func TestFalsy(t *testing.T) {
	falsy := []Value{Nil{}, Bool(false)}
	for _, v := range falsy {
		if !Falsy(v) {
			t.Errorf("Falsy(%#v) = false, want true", v)
		}
	}
	truthy := []Value{Bool(true), Integer(0), String(""), NewList()}
	for _, v := range truthy {
		if Falsy(v) {
			t.Errorf("Falsy(%#v) = true, want false", v)
		}
	}
}

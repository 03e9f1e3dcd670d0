package runtime

import "testing"

func TestEqualStructural(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"equal integers", Integer(3), Integer(3), true},
		{"integer vs float never equal", Integer(3), Float(3), false},
		{"equal lists", NewList(Integer(1), Integer(2)), NewList(Integer(1), Integer(2)), true},
		{"list vs vector unequal", NewList(Integer(1)), NewVector(Integer(1)), false},
		{"different length lists", NewList(Integer(1)), NewList(Integer(1), Integer(2)), false},
		{"equal strings", String("a"), String("a"), true},
		{"string vs symbol unequal", String("a"), Symbol("a"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestEqualDictionaryByKeyValueSet(t *testing.T) {
	a := NewDictionary()
	a.Set(`"x"`, Integer(1))
	b := NewDictionary()
	b.Set(`"x"`, Integer(1))
	if !Equal(a, b) {
		t.Errorf("expected equal dictionaries")
	}
	b.Set(`"y"`, Integer(2))
	if Equal(a, b) {
		t.Errorf("expected unequal dictionaries after extra key")
	}
}

func TestEqualClosureIsIdentity(t *testing.T) {
	env := NewEnvironment()
	c1 := NewClosure(nil, "", Nil{}, env, env)
	c2 := NewClosure(nil, "", Nil{}, env, env)
	if Equal(c1, c1) != true {
		t.Errorf("a closure should equal itself")
	}
	if Equal(c1, c2) {
		t.Errorf("distinct closures with identical shape should not be equal")
	}
}

func TestEqualAtomIsCellIdentity(t *testing.T) {
	a1 := NewAtom(Integer(1))
	a2 := NewAtom(Integer(1))
	if Equal(a1, a2) {
		t.Errorf("distinct atoms with the same content should not be equal")
	}
	if !Equal(a1, a1) {
		t.Errorf("an atom should equal itself")
	}
}

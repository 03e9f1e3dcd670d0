package runtime

import "strconv"

var atomIDs int

func nextAtomID() int {
	atomIDs++
	return atomIDs
}

// Atom is a mutable cell containing one Value, shared by reference -- the
// only source of sharing-with-mutation in the language (spec.md §3/§5).
type Atom struct {
	val Value
	id  int
}

// NewAtom wraps val in a fresh Atom cell.
func NewAtom(val Value) *Atom {
	return &Atom{val: val, id: nextAtomID()}
}

func (*Atom) Type() string { return "ATOM" }

func (a *Atom) String() string { return "Atom(" + strconv.Itoa(a.id) + ")" }

// Deref returns the atom's current value.
func (a *Atom) Deref() Value { return a.val }

// Reset overwrites the atom's value and returns it.
func (a *Atom) Reset(v Value) Value {
	a.val = v
	return v
}

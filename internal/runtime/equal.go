package runtime

// Equal implements `=`: structural equality over List/Vector/Dictionary
// and scalars, identity for Closure, id-equality for NativeFunction, and
// cell-identity for Atom (spec.md §3).
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && a == bv
	case Integer:
		switch bv := b.(type) {
		case Integer:
			return a == bv
		}
		return false
	case Float:
		bv, ok := b.(Float)
		return ok && a == bv
	case String:
		bv, ok := b.(String)
		return ok && a == bv
	case Symbol:
		bv, ok := b.(Symbol)
		return ok && a == bv
	case *List:
		bv, ok := b.(*List)
		return ok && equalSeq(a.Items, bv.Items)
	case *Vector:
		bv, ok := b.(*Vector)
		return ok && equalSeq(a.Items, bv.Items)
	case *Dictionary:
		bv, ok := b.(*Dictionary)
		if !ok || a.Len() != bv.Len() {
			return false
		}
		for _, k := range a.Keys() {
			av, _ := a.Get(k)
			other, ok := bv.Get(k)
			if !ok || !Equal(av, other) {
				return false
			}
		}
		return true
	case *Closure:
		bv, ok := b.(*Closure)
		return ok && a == bv
	case *NativeFunction:
		bv, ok := b.(*NativeFunction)
		return ok && a.id == bv.id
	case *Atom:
		bv, ok := b.(*Atom)
		return ok && a == bv
	case Comment:
		_, ok := b.(Comment)
		return ok
	default:
		return false
	}
}

func equalSeq(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

package runtime

import "strings"

// Print returns v's canonical print form (spec.md §6): reversible for
// data, opaque for Closure/NativeFunction/Atom.
func Print(v Value) string {
	switch v := v.(type) {
	case String:
		return quote(string(v))
	case *Dictionary:
		keys := v.Keys()
		var sb strings.Builder
		sb.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(k)
			sb.WriteString(": ")
			val, _ := v.Get(k)
			sb.WriteString(Print(val))
		}
		sb.WriteByte('}')
		return sb.String()
	default:
		return v.String()
	}
}

// PrintDisplay renders v the way `prn` does: like Print, except Strings
// are written without surrounding quotes (spec.md §4.6).
func PrintDisplay(v Value) string {
	if s, ok := v.(String); ok {
		return string(s)
	}
	return Print(v)
}

func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\n':
			sb.WriteString(`\n`)
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// DictKey computes the Dictionary key a Value canonicalizes to: its
// canonical print form (spec.md §3 invariant).
func DictKey(v Value) string { return Print(v) }

package runtime

// Dictionary maps a Value's canonical print form to a Value. spec.md §3
// accepts that distinct Values with identical canonical prints collide.
type Dictionary struct {
	entries map[string]Value
	// order records key insertion order so natural-sort printing (see
	// print.go) has a stable base to sort from even when two keys tie.
	order []string
}

// NewDictionary builds an empty Dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{entries: make(map[string]Value)}
}

func (*Dictionary) Type() string { return "DICT" }

func (d *Dictionary) String() string { return Print(d) }

// Set stores value under key (key must already be a canonical print form).
func (d *Dictionary) Set(key string, val Value) {
	if _, exists := d.entries[key]; !exists {
		d.order = append(d.order, key)
	}
	d.entries[key] = val
}

// Get looks up a key's value.
func (d *Dictionary) Get(key string) (Value, bool) {
	v, ok := d.entries[key]
	return v, ok
}

// Delete removes a key, if present.
func (d *Dictionary) Delete(key string) {
	if _, ok := d.entries[key]; !ok {
		return
	}
	delete(d.entries, key)
	for i, k := range d.order {
		if k == key {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (d *Dictionary) Len() int { return len(d.entries) }

// Keys returns the dictionary's keys, naturally sorted (SPEC_FULL.md
// domain enrichment over spec.md's "unspecified" iteration order).
func (d *Dictionary) Keys() []string {
	keys := make([]string, 0, len(d.entries))
	keys = append(keys, d.order...)
	NaturalSortStrings(keys)
	return keys
}

// Clone returns a shallow copy of d (used by `assoc`/`dissoc`, which are
// non-mutating per spec.md §4.6).
func (d *Dictionary) Clone() *Dictionary {
	clone := NewDictionary()
	for _, k := range d.order {
		clone.Set(k, d.entries[k])
	}
	return clone
}

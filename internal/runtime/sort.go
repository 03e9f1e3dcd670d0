package runtime

import (
	"sort"

	"github.com/maruel/natural"
)

// NaturalSortStrings sorts s in place using human ("natural") string
// ordering -- "item2" before "item10" -- rather than plain byte order.
// golisp uses this to give Dictionary iteration (spec.md leaves it
// unspecified) a deterministic, human-friendly order for REPL output and
// snapshot tests.
func NaturalSortStrings(s []string) {
	sort.Slice(s, func(i, j int) bool { return natural.Less(s[i], s[j]) })
}

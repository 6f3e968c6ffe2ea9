// Package entitydata holds the named character reference table and its
// lookup indices. The table is a build-time artifact (tables.go) and is
// never mutated after program start, so lookups are lock-free and safe
// for concurrent use.
package entitydata

import "sort"

// Record pairs a named character reference with its code point.
// The name carries no surrounding '&' or ';'.
type Record struct {
	Name string
	Code rune
}

// nameRange is a half-open index range into byNameIdx.
type nameRange struct{ lo, hi uint16 }

// hot lists the references seen most often in real documents. Both lookup
// directions consult it before touching the generated tables.
var hot = [...]Record{
	{"lt", '<'},
	{"LT", '<'},
	{"gt", '>'},
	{"GT", '>'},
	{"amp", '&'},
	{"AMP", '&'},
	{"quot", '"'},
	{"QUOT", '"'},
	{"apos", '\''},
	{"nbsp", '\u00a0'},
}

// Len returns the number of records in the table.
func Len() int {
	return len(byCode)
}

// FindByCode returns the preferred name for r.
// Because byCode orders entries sharing a code point preferred-first,
// the lower bound of the search is already the canonical name.
func FindByCode(r rune) (string, bool) {
	i := sort.Search(len(byCode), func(i int) bool {
		return byCode[i].Code >= r
	})
	if i < len(byCode) && byCode[i].Code == r {
		return byCode[i].Name, true
	}
	return "", false
}

// FindByName resolves an entity name (without '&' and ';') to its code
// point. The hot table is consulted first; otherwise the search is a
// binary search within the first-letter bucket of the by-name ordering.
func FindByName(name []byte) (rune, bool) {
	if len(name) == 0 {
		return 0, false
	}
	for i := range hot {
		if bytesEqualString(name, hot[i].Name) {
			return hot[i].Code, true
		}
	}
	rng := nameRanges[name[0]]
	if rng.lo == rng.hi {
		return 0, false
	}
	sub := byNameIdx[rng.lo:rng.hi]
	i := sort.Search(len(sub), func(i int) bool {
		return compareNameBytes(byCode[sub[i]].Name, name) >= 0
	})
	if i < len(sub) && compareNameBytes(byCode[sub[i]].Name, name) == 0 {
		return byCode[sub[i]].Code, true
	}
	return 0, false
}

func bytesEqualString(b []byte, s string) bool {
	if len(b) != len(s) {
		return false
	}
	for i := 0; i < len(b); i++ {
		if b[i] != s[i] {
			return false
		}
	}
	return true
}

// compareNameBytes compares s against b bytewise without allocating.
func compareNameBytes(s string, b []byte) int {
	n := len(s)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if s[i] != b[i] {
			if s[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(s) < len(b):
		return -1
	case len(s) > len(b):
		return 1
	}
	return 0
}

// Package scanner implements the byte-level scan drivers shared by the
// encode and decode pipelines. Both drivers report source-byte ranges to
// visitor callbacks, so the substitution-list path and the direct-write
// path run the same loop.
package scanner

const (
	maxScalar    = 0x10FFFF
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// RuneVisitor receives one event per decoded unit of a UTF-8 scan.
// start and end are inclusive byte offsets of the unit. For a well-formed
// sequence valid is true and r is the decoded scalar. A byte that cannot
// start or continue a well-formed sequence is reported alone with valid
// false and r set to the byte value; the scan resumes at the next byte.
// Every input byte belongs to exactly one event.
type RuneVisitor func(start, end int, r rune, valid bool)

// ScanRunes walks data with an inline UTF-8 state machine. Keeping the
// decode inside the loop means substitution ranges are always expressed
// in source-byte offsets, with no intermediate rune slice.
func ScanRunes(data []byte, visit RuneVisitor) {
	for i := 0; i < len(data); {
		b := data[i]
		if b < 0x80 {
			visit(i, i, rune(b), true)
			i++
			continue
		}

		var size int
		var r, min rune
		switch {
		case b&0xE0 == 0xC0:
			size, r, min = 2, rune(b&0x1F), 0x80
		case b&0xF0 == 0xE0:
			size, r, min = 3, rune(b&0x0F), 0x800
		case b&0xF8 == 0xF0:
			size, r, min = 4, rune(b&0x07), 0x10000
		default:
			// Stray continuation byte or invalid lead pattern.
			visit(i, i, rune(b), false)
			i++
			continue
		}

		ok := i+size <= len(data)
		if ok {
			for j := i + 1; j < i+size; j++ {
				if data[j]&0xC0 != 0x80 {
					ok = false
					break
				}
				r = r<<6 | rune(data[j]&0x3F)
			}
		}
		if ok && (r < min || r > maxScalar || (r >= surrogateMin && r <= surrogateMax)) {
			// Overlong encoding, surrogate half or beyond U+10FFFF.
			ok = false
		}
		if !ok {
			visit(i, i, rune(b), false)
			i++
			continue
		}

		visit(i, i+size-1, r, true)
		i += size
	}
}

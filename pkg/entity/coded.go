package entity

import (
	"iter"
	"sort"
	"unicode/utf8"
)

// replacement is the payload of one substitution: entity bytes on the
// encode side, the UTF-8 encoding of a scalar on the decode side.
type replacement interface {
	Len() int
	ByteAt(i int) byte
	AppendTo(dst []byte) []byte
}

// span ties an inclusive source byte range to its replacement and caches
// the replacement's offset in the logical byte stream.
type span struct {
	start, end   int
	logicalStart int
	repl         replacement
}

// Origin identifies the substitution that produced an output byte.
type Origin struct {
	Entity int // index of the substitution, in input order
	Offset int // byte offset within the written replacement
}

// coded is the shared core of EncodedData and DecodedData: a borrowed or
// owned source slice plus an ordered list of non-overlapping
// substitutions. Ranges are strictly increasing; each covers exactly the
// source bytes being replaced.
type coded struct {
	src   []byte
	spans []span
	shift int // logical length minus source length
}

// addSpan records a substitution. Callers append in source order, so the
// logical offset is the source offset shifted by the preceding spans.
func (c *coded) addSpan(start, end int, repl replacement) {
	c.spans = append(c.spans, span{start: start, end: end, logicalStart: start + c.shift, repl: repl})
	c.shift += repl.Len() - (end - start + 1)
}

// EntityCount reports how many substitutions the call recorded.
func (c *coded) EntityCount() int { return len(c.spans) }

// ByteLen returns the length of the logical byte stream.
func (c *coded) ByteLen() int { return len(c.src) + c.shift }

// ByteAt returns the logical byte at index i. The lookup binary-searches
// the substitution list, so random access is O(log n).
func (c *coded) ByteAt(i int) (byte, bool) {
	if i < 0 || i >= c.ByteLen() {
		return 0, false
	}
	n := sort.Search(len(c.spans), func(j int) bool { return c.spans[j].logicalStart > i })
	if n == 0 {
		return c.src[i], true
	}
	sp := c.spans[n-1]
	if off := i - sp.logicalStart; off < sp.repl.Len() {
		return sp.repl.ByteAt(off), true
	}
	// Source region between span n-1 and the next span.
	return c.src[i-sp.logicalStart-sp.repl.Len()+sp.end+1], true
}

// Iter yields each byte of the logical stream together with its origin:
// nil for a byte taken from the source untouched, otherwise the
// substitution index and the offset inside its written replacement.
func (c *coded) Iter() iter.Seq2[byte, *Origin] {
	return func(yield func(byte, *Origin) bool) {
		next := 0
		for si, sp := range c.spans {
			for i := next; i < sp.start; i++ {
				if !yield(c.src[i], nil) {
					return
				}
			}
			for off, n := 0, sp.repl.Len(); off < n; off++ {
				if !yield(sp.repl.ByteAt(off), &Origin{Entity: si, Offset: off}) {
					return
				}
			}
			next = sp.end + 1
		}
		for i := next; i < len(c.src); i++ {
			if !yield(c.src[i], nil) {
				return
			}
		}
	}
}

// ToBytes materializes the logical byte stream. It never fails.
func (c *coded) ToBytes() []byte {
	return c.appendTo(make([]byte, 0, c.ByteLen()))
}

func (c *coded) appendTo(dst []byte) []byte {
	next := 0
	for _, sp := range c.spans {
		dst = append(dst, c.src[next:sp.start]...)
		dst = sp.repl.AppendTo(dst)
		next = sp.end + 1
	}
	return append(dst, c.src[next:]...)
}

// ToString materializes the logical stream as text. It fails with an
// *InvalidUTF8Error when a source region no substitution covers is not
// valid UTF-8.
func (c *coded) ToString() (string, error) {
	if i := c.invalidAt(); i >= 0 {
		return "", &InvalidUTF8Error{Offset: i}
	}
	return string(c.ToBytes()), nil
}

// ToChars materializes the logical stream as a sequence of code points,
// failing the same way ToString does.
func (c *coded) ToChars() ([]rune, error) {
	s, err := c.ToString()
	if err != nil {
		return nil, err
	}
	return []rune(s), nil
}

// Detach copies the source bytes into the view, releasing the borrow on
// the caller's input buffer. Substitutions and error records survive.
func (c *coded) Detach() {
	c.src = append([]byte(nil), c.src...)
}

// invalidAt returns the source offset of the first byte that makes an
// untouched region invalid UTF-8, or -1.
func (c *coded) invalidAt() int {
	next := 0
	for _, sp := range c.spans {
		if i := firstInvalid(c.src[next:sp.start]); i >= 0 {
			return next + i
		}
		next = sp.end + 1
	}
	if i := firstInvalid(c.src[next:]); i >= 0 {
		return next + i
	}
	return -1
}

func firstInvalid(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}

// EncodedData is the zero-copy result of an encode call.
type EncodedData struct {
	coded
}

// DecodedData is the zero-copy result of a decode call. Malformed entity
// tokens stay in the stream verbatim and are reported via Errors.
type DecodedData struct {
	coded
	errs []DecodeError
}

// IsOk reports whether the decode recorded no errors.
func (d *DecodedData) IsOk() bool { return len(d.errs) == 0 }

// Errors returns the decode errors in input order.
func (d *DecodedData) Errors() []DecodeError { return d.errs }

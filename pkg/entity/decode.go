package entity

import (
	"sync"
	"unicode/utf8"

	"github.com/shapestone/shape-entity/internal/scanner"
)

// bufPool pools staging buffers for the rune-slice convenience paths.
var bufPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 2048)
		return &b
	},
}

// Decode tokenizes every '&'-to-';' run in data, resolves named, decimal and
// hexadecimal references and returns the zero-copy result view. Malformed
// tokens stay in the stream verbatim and are reported via Errors; decode
// never aborts. The input need not be valid UTF-8 outside entity tokens.
func Decode(data []byte) *DecodedData {
	dec := &DecodedData{coded: coded{src: data}}
	scanner.ScanEntities(data,
		func(start, end int, r rune) {
			dec.addSpan(start, end, newRuneRepl(r))
		},
		func(start, end int, kind scanner.ErrorKind) {
			dec.errs = append(dec.errs, DecodeError{Kind: kindOf(kind), Start: start, End: end})
		})
	return dec
}

// AppendDecode appends the materialized decoding of data to dst and
// returns the extended buffer. Same semantics as Decode; malformed tokens
// are copied through verbatim.
func AppendDecode(dst, data []byte) []byte {
	last := 0
	scanner.ScanEntities(data,
		func(start, end int, r rune) {
			dst = append(dst, data[last:start]...)
			dst = utf8.AppendRune(dst, r)
			last = end + 1
		},
		func(start, end int, kind scanner.ErrorKind) {})
	return append(dst, data[last:]...)
}

// DecodeChars decodes a code point sequence, a convenience over Decode
// for callers holding []rune.
func DecodeChars(chars []rune) []rune {
	return AppendDecodeChars(nil, chars)
}

// AppendDecodeChars appends the decoding of chars to dst.
func AppendDecodeChars(dst, chars []rune) []rune {
	bp := bufPool.Get().(*[]byte)
	buf := (*bp)[:0]
	for _, r := range chars {
		buf = utf8.AppendRune(buf, r)
	}

	op := bufPool.Get().(*[]byte)
	out := AppendDecode((*op)[:0], buf)
	for i := 0; i < len(out); {
		r, size := utf8.DecodeRune(out[i:])
		dst = append(dst, r)
		i += size
	}

	*op = out
	bufPool.Put(op)
	*bp = buf
	bufPool.Put(bp)
	return dst
}

// runeRepl is a decoded scalar stored with its UTF-8 encoding.
type runeRepl struct {
	buf [utf8.UTFMax]byte
	n   int
}

func newRuneRepl(r rune) runeRepl {
	var rr runeRepl
	rr.n = utf8.EncodeRune(rr.buf[:], r)
	return rr
}

func (r runeRepl) Len() int                   { return r.n }
func (r runeRepl) ByteAt(i int) byte          { return r.buf[i] }
func (r runeRepl) AppendTo(dst []byte) []byte { return append(dst, r.buf[:r.n]...) }

func kindOf(k scanner.ErrorKind) DecodeErrorKind {
	switch k {
	case scanner.EmptyEntity:
		return EmptyEntity
	case scanner.UnterminatedEntity:
		return UnterminatedEntity
	case scanner.UnencodedAmpersand:
		return UnencodedAmpersand
	case scanner.MalformedName:
		return MalformedName
	case scanner.UnknownName:
		return UnknownName
	case scanner.MalformedNumber:
		return MalformedNumber
	case scanner.OutOfRangeScalar:
		return OutOfRangeScalar
	}
	return 0
}

// Package entity transforms UTF-8 text between its raw form and its
// HTML-entity-escaped form.
//
// Encoding walks the input's code points and replaces the ones selected by
// a CharacterSet (or a caller-supplied Classifier) with named (&lt;),
// hexadecimal (&#x3c;) or decimal (&#60;) character references. Decoding
// recognizes any mixture of the three reference forms and restores the
// original code points, collecting typed errors for malformed references
// while passing their bytes through verbatim.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple
// goroutines. The reference table is immutable program-lifetime data and
// every call keeps its state on the stack or in caller-owned buffers.
//
// # Result views
//
// Encode and Decode return views backed by the input plus a substitution
// list; they allocate only when materialized via ToBytes, ToString or
// ToChars. The Append variants write the materialized stream straight
// into a caller-owned buffer through the same scan loop.
//
// # Parsing APIs
//
// The package provides multiple paths:
//
//   - Encode/Decode - zero-copy views over the input
//   - AppendEncode/AppendDecode - direct writes into caller buffers
//   - Parse/ParseReader/Render - AST-based round trip via shape-core
package entity

// CharEntity is one encoded character reference: the form and the interior
// payload bytes. The payload carries no '&', no '#'/'#x' prefix and no
// ';'; those are synthesized at write time.
type CharEntity struct {
	Form    EncodeType // exactly one of Named, Hex or Decimal
	Payload []byte     // entity name, hex digits, or decimal digits
}

func (e CharEntity) prefix() string {
	switch e.Form {
	case Hex:
		return "&#x"
	case Decimal:
		return "&#"
	}
	return "&"
}

// Len returns the byte length of the written entity, prefix and ';'
// included.
func (e CharEntity) Len() int {
	return len(e.prefix()) + len(e.Payload) + 1
}

// ByteAt returns byte i of the written entity without materializing it.
func (e CharEntity) ByteAt(i int) byte {
	p := e.prefix()
	if i < len(p) {
		return p[i]
	}
	if i -= len(p); i < len(e.Payload) {
		return e.Payload[i]
	}
	return ';'
}

// AppendTo appends the full entity byte sequence to dst.
func (e CharEntity) AppendTo(dst []byte) []byte {
	dst = append(dst, e.prefix()...)
	dst = append(dst, e.Payload...)
	return append(dst, ';')
}

// String returns the entity as written, e.g. "&lt;" or "&#x3c;".
func (e CharEntity) String() string {
	return string(e.AppendTo(make([]byte, 0, e.Len())))
}

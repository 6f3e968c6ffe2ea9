package entity

import (
	"strconv"

	"github.com/shapestone/shape-entity/internal/entitydata"
	"github.com/shapestone/shape-entity/internal/scanner"
)

// Classifier is a caller-supplied encode policy. It returns the entity
// forms to use for r and whether r should be encoded at all.
type Classifier func(r rune) (EncodeType, bool)

// EncodeChar returns the entity for r under the given form flags. The
// preferred form is the first set bit in Named, Hex, Decimal order; when
// r has no named reference the Named bit falls through to the next form.
// ok is false when no set bit applies.
func EncodeChar(r rune, typ EncodeType) (CharEntity, bool) {
	if typ&Named != 0 {
		if name, ok := entitydata.FindByCode(r); ok {
			return CharEntity{Form: Named, Payload: []byte(name)}, true
		}
	}
	if typ&Hex != 0 {
		return CharEntity{Form: Hex, Payload: strconv.AppendUint(nil, uint64(r), 16)}, true
	}
	if typ&Decimal != 0 {
		return CharEntity{Form: Decimal, Payload: strconv.AppendUint(nil, uint64(r), 10)}, true
	}
	return CharEntity{}, false
}

// Encode replaces every code point selected by set with an entity of the
// preferred available form and returns the zero-copy result view.
// Malformed UTF-8 bytes pass through unchanged; encoding itself never
// fails. Output is byte-identical across runs for the same arguments.
func Encode(data []byte, set CharacterSet, typ EncodeType) *EncodedData {
	return encodeScan(data, charsetDecider(set, typ))
}

// EncodeWith is the classifier path of Encode: classify decides per code
// point whether to encode and with which forms.
func EncodeWith(data []byte, classify Classifier) *EncodedData {
	return encodeScan(data, classifierDecider(classify))
}

// AppendEncode appends the fully materialized encoding of data to dst and
// returns the extended buffer. Same semantics as Encode, no substitution
// list.
func AppendEncode(dst, data []byte, set CharacterSet, typ EncodeType) []byte {
	return appendEncode(dst, data, charsetDecider(set, typ))
}

// AppendEncodeWith is the classifier path of AppendEncode.
func AppendEncodeWith(dst, data []byte, classify Classifier) []byte {
	return appendEncode(dst, data, classifierDecider(classify))
}

// decider folds the classifier and the formatter into one per-rune
// decision shared by the view-building and direct-write paths.
type decider func(r rune) (CharEntity, bool)

func charsetDecider(set CharacterSet, typ EncodeType) decider {
	return func(r rune) (CharEntity, bool) {
		if !set.Contains(r) {
			return CharEntity{}, false
		}
		if typ&Named != 0 {
			if name, ok := namedFor(r); ok {
				return CharEntity{Form: Named, Payload: []byte(name)}, true
			}
		}
		return EncodeChar(r, typ)
	}
}

func classifierDecider(classify Classifier) decider {
	return func(r rune) (CharEntity, bool) {
		typ, ok := classify(r)
		if !ok {
			return CharEntity{}, false
		}
		return EncodeChar(r, typ)
	}
}

func encodeScan(data []byte, decide decider) *EncodedData {
	enc := &EncodedData{coded{src: data}}
	scanner.ScanRunes(data, func(start, end int, r rune, valid bool) {
		if !valid {
			return
		}
		if ce, ok := decide(r); ok {
			enc.addSpan(start, end, ce)
		}
	})
	return enc
}

func appendEncode(dst, data []byte, decide decider) []byte {
	last := 0
	scanner.ScanRunes(data, func(start, end int, r rune, valid bool) {
		if !valid {
			return
		}
		if ce, ok := decide(r); ok {
			dst = append(dst, data[last:start]...)
			dst = ce.AppendTo(dst)
			last = end + 1
		}
	})
	return append(dst, data[last:]...)
}

package entity

import "fmt"

// DecodeErrorKind classifies a malformed entity token.
type DecodeErrorKind uint8

const (
	// EmptyEntity is "&;".
	EmptyEntity DecodeErrorKind = iota + 1
	// UnterminatedEntity means the input ended inside an open token.
	UnterminatedEntity
	// UnencodedAmpersand is a second '&' before ';'.
	UnencodedAmpersand
	// MalformedName means the name contains non-alphanumeric bytes or
	// does not start with an ASCII letter.
	MalformedName
	// UnknownName is a well-formed name absent from the table.
	UnknownName
	// MalformedNumber means a numeric payload has an invalid digit or is
	// empty.
	MalformedNumber
	// OutOfRangeScalar means the numeric value is a surrogate or exceeds
	// U+10FFFF.
	OutOfRangeScalar
)

// String returns a short human-readable description of the kind.
func (k DecodeErrorKind) String() string {
	switch k {
	case EmptyEntity:
		return "empty entity"
	case UnterminatedEntity:
		return "unterminated entity"
	case UnencodedAmpersand:
		return "unencoded ampersand"
	case MalformedName:
		return "malformed entity name"
	case UnknownName:
		return "unknown entity name"
	case MalformedNumber:
		return "malformed numeric reference"
	case OutOfRangeScalar:
		return "numeric reference out of range"
	}
	return "unknown error"
}

// DecodeError reports one malformed entity token. The range is inclusive
// and covers the offending source bytes, which pass through to the output
// verbatim. Decode errors never abort the call; they accumulate on the
// DecodedData.
type DecodeError struct {
	Kind  DecodeErrorKind
	Start int // first byte of the offending range
	End   int // last byte, inclusive
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("entity: %s at bytes %d..%d", e.Kind, e.Start, e.End)
}

// InvalidUTF8Error reports that a materializer found invalid UTF-8 in a
// source region no substitution covers. ToBytes never returns it; only
// the text materializers do.
type InvalidUTF8Error struct {
	Offset int // source byte offset of the first invalid byte
}

// Error implements the error interface.
func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("entity: invalid UTF-8 at source byte %d", e.Offset)
}

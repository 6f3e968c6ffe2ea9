package scanner

import "github.com/shapestone/shape-entity/internal/entitydata"

// ErrorKind classifies why an entity token failed to decode.
type ErrorKind uint8

const (
	NoError ErrorKind = iota
	EmptyEntity
	UnterminatedEntity
	UnencodedAmpersand
	MalformedName
	UnknownName
	MalformedNumber
	OutOfRangeScalar
)

// String returns a short human-readable description of the kind.
func (k ErrorKind) String() string {
	switch k {
	case NoError:
		return "no error"
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

// Recognize validates and resolves the bytes strictly between '&' and ';'.
// It returns the decoded scalar and NoError, or the kind of failure.
func Recognize(interior []byte) (rune, ErrorKind) {
	if len(interior) == 0 {
		return 0, EmptyEntity
	}

	first := interior[0]
	switch {
	case isAlpha(first):
		for _, b := range interior[1:] {
			if !isAlpha(b) && !isDigit(b) {
				return 0, MalformedName
			}
		}
		r, ok := entitydata.FindByName(interior)
		if !ok {
			return 0, UnknownName
		}
		return r, NoError

	case first == '#':
		if len(interior) < 2 {
			return 0, MalformedNumber
		}
		second := interior[1]
		switch {
		case isDigit(second):
			return parseNumeric(interior[1:], 10)
		case second == 'x' || second == 'X':
			if len(interior) < 3 {
				return 0, MalformedNumber
			}
			return parseNumeric(interior[2:], 16)
		}
		return 0, MalformedNumber
	}
	return 0, MalformedName
}

// parseNumeric parses digits as an unsigned integer in the given base and
// checks Unicode scalar bounds. Values beyond the maximum scalar saturate
// so arbitrarily long digit runs cannot overflow.
func parseNumeric(digits []byte, base int) (rune, ErrorKind) {
	var n rune
	for _, b := range digits {
		var d rune
		switch {
		case isDigit(b):
			d = rune(b - '0')
		case base == 16 && b >= 'a' && b <= 'f':
			d = rune(b-'a') + 10
		case base == 16 && b >= 'A' && b <= 'F':
			d = rune(b-'A') + 10
		default:
			return 0, MalformedNumber
		}
		n = n*rune(base) + d
		if n > maxScalar {
			n = maxScalar + 1
		}
	}
	if n > maxScalar || (n >= surrogateMin && n <= surrogateMax) {
		return 0, OutOfRangeScalar
	}
	return n, NoError
}

// ScanEntities runs the two-state entity tokenizer over data. For every
// recognized entity it calls sub with the inclusive byte range covering
// '&' through ';' and the decoded scalar. For every malformed token it
// calls fail with the offending range and the error kind; the caller is
// expected to leave those bytes intact.
//
// A second '&' before ';' reports UnencodedAmpersand for the earlier '&'
// and restarts the token at the later one, so the recognizer never sees
// bytes past a subsequent ampersand.
func ScanEntities(data []byte, sub func(start, end int, r rune), fail func(start, end int, kind ErrorKind)) {
	const (
		outside = iota
		inside
	)
	state := outside
	start := 0 // index just after the opening '&'

	for i := 0; i < len(data); i++ {
		b := data[i]
		if state == outside {
			if b == '&' {
				state = inside
				start = i + 1
			}
			continue
		}
		switch b {
		case ';':
			if i == start {
				fail(start-1, i, EmptyEntity)
			} else if r, kind := Recognize(data[start:i]); kind == NoError {
				sub(start-1, i, r)
			} else {
				fail(start-1, i, kind)
			}
			state = outside
		case '&':
			fail(start-1, start-1, UnencodedAmpersand)
			start = i + 1
		}
	}

	if state == inside {
		fail(start-1, len(data)-1, UnterminatedEntity)
	}
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

package entity

// CharacterSet selects which code points an encode call replaces.
type CharacterSet uint8

const (
	// All selects every code point the chosen forms can express.
	All CharacterSet = iota
	// NonASCII selects code points above U+00FF.
	NonASCII
	// Html selects '<', '>' and '&'.
	Html
	// SpecialChars selects '<', '>', '&', '\'' and '"'.
	SpecialChars
	// HtmlAndNonASCII selects the union of Html and NonASCII.
	HtmlAndNonASCII
	// SpecialCharsAndNonASCII selects the union of SpecialChars and NonASCII.
	SpecialCharsAndNonASCII
)

// Contains reports whether the set selects r for encoding.
func (s CharacterSet) Contains(r rune) bool {
	switch s {
	case All:
		return true
	case NonASCII:
		return r > 0xFF
	case Html:
		return r == '<' || r == '>' || r == '&'
	case SpecialChars:
		return r == '<' || r == '>' || r == '&' || r == '\'' || r == '"'
	case HtmlAndNonASCII:
		return Html.Contains(r) || NonASCII.Contains(r)
	case SpecialCharsAndNonASCII:
		return SpecialChars.Contains(r) || NonASCII.Contains(r)
	}
	return false
}

// namedFor returns the precomputed preferred name for the SpecialChars
// members, letting the encode loop skip the table search on the hottest
// code points.
func namedFor(r rune) (string, bool) {
	switch r {
	case '<':
		return "lt", true
	case '>':
		return "gt", true
	case '&':
		return "amp", true
	case '\'':
		return "apos", true
	case '"':
		return "quot", true
	}
	return "", false
}

// EncodeType is a bit flag over the entity forms an encode call may emit.
// Among the set bits the first available form in Named, Hex, Decimal
// preference order wins; Named is unavailable when the code point has no
// named reference.
type EncodeType uint8

const (
	Named   EncodeType = 1 << iota // &lt;
	Hex                            // &#x3c;
	Decimal                        // &#60;
)

// Combined forms.
const (
	NamedOrHex     = Named | Hex
	NamedOrDecimal = Named | Decimal
)

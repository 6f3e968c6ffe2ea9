package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// NewTokenizer creates a tokenizer for entity-encoded text. Matcher order:
// 1. Named entity (&name;)
// 2. Numeric entity (&#ddd; / &#xhh;)
// 3. Bare ampersand (fallback when no entity matches)
// 4. Literal text (everything up to the next '&')
//
// Note: whitespace is literal content here, so the tokenizer does not use
// the default whitespace skipper.
func NewTokenizer() tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		NamedEntityMatcher(),
		NumericEntityMatcher(),

		// Bare '&' (malformed or unterminated token)
		tokenizer.StringMatcherFunc(TokenAmp, "&"),

		// Literal text (everything else until '&' or EOS)
		TextMatcher(),
	)
}

// NewTokenizerWithStream creates an entity tokenizer using a pre-configured stream.
func NewTokenizerWithStream(stream tokenizer.Stream) tokenizer.Tokenizer {
	tok := NewTokenizer()
	tok.InitializeFromStream(stream)
	return tok
}

// NamedEntityMatcher matches '&' followed by an ASCII letter, any run of
// ASCII alphanumerics, and a closing ';'.
func NamedEntityMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || r != '&' {
			return nil
		}
		stream.NextChar()
		value := []rune{'&'}

		r, ok = stream.PeekChar()
		if !ok || !isAlpha(r) {
			return nil
		}

		for {
			r, ok = stream.PeekChar()
			if !ok {
				return nil
			}
			if isAlpha(r) || isDigit(r) {
				stream.NextChar()
				value = append(value, r)
				continue
			}
			break
		}

		if r != ';' {
			return nil
		}
		stream.NextChar()
		value = append(value, ';')
		return tokenizer.NewToken(TokenNamedEntity, value)
	}
}

// NumericEntityMatcher matches '&#' followed by decimal digits, or '&#x' /
// '&#X' followed by hex digits, and a closing ';'.
func NumericEntityMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		r, ok := stream.PeekChar()
		if !ok || r != '&' {
			return nil
		}
		stream.NextChar()
		value := []rune{'&'}

		r, ok = stream.PeekChar()
		if !ok || r != '#' {
			return nil
		}
		stream.NextChar()
		value = append(value, '#')

		hex := false
		r, ok = stream.PeekChar()
		if ok && (r == 'x' || r == 'X') {
			hex = true
			stream.NextChar()
			value = append(value, r)
		}

		digits := 0
		for {
			r, ok = stream.PeekChar()
			if !ok {
				return nil
			}
			if (hex && isHexDigit(r)) || (!hex && isDigit(r)) {
				stream.NextChar()
				value = append(value, r)
				digits++
				continue
			}
			break
		}
		if digits == 0 || r != ';' {
			return nil
		}
		stream.NextChar()
		value = append(value, ';')
		return tokenizer.NewToken(TokenNumericEntity, value)
	}
}

// TextMatcher matches any run of characters up to the next '&' or EOS.
func TextMatcher() tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		var value []rune

		for {
			r, ok := stream.PeekChar()
			if !ok {
				break
			}
			if r == '&' {
				break
			}
			stream.NextChar()
			value = append(value, r)
		}

		if len(value) == 0 {
			return nil
		}

		return tokenizer.NewToken(TokenText, value)
	}
}

func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

package entity

import (
	"bytes"
	"testing"
	"unicode/utf8"
)

// Seed corpora shared by the fuzz targets.

var decodeSeeds = [][]byte{
	[]byte("&lt;div&gt;"),
	[]byte("&#x2192; &#8594; &#X2192;"),
	[]byte("&amp;&AMP;&quot;&apos;&nbsp;"),
	[]byte("&#x110000;&#xDC00;&#56320;"),
	[]byte("&;&#;&#x;&#xg;&123;&q123;"),
	[]byte("abc& def &unterminated"),
	[]byte("&#1&lt;"),
	[]byte("&&&gt;"),
	[]byte("plain text with no entities"),
	{0xFF, '&', 'l', 't', ';', 0xFE},
}

var encodeSeeds = [][]byte{
	[]byte("<div name='htmlentity'>Hello!世界!</div>"),
	[]byte("quotes '\" & specials"),
	[]byte("\t\n whitespace and → arrows"),
	[]byte("emoji 😀 and 𝄞"),
	{0xE4, 0xB8, 'a', 0x80, 0xFF},
}

// FuzzDecode fuzzes the decode pipeline. Invariants: never panic, the
// view and append paths agree, the logical length matches, random access
// agrees with materialization, and error-free inputs containing no
// ampersand pass through unchanged.
func FuzzDecode(f *testing.F) {
	for _, seed := range decodeSeeds {
		f.Add(seed)
	}
	f.Add([]byte(""))
	f.Add([]byte("&"))
	f.Add(bytes.Repeat([]byte("&amp;"), 100))

	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("Decode panicked on input %q: %v", data, r)
			}
		}()

		d := Decode(data)
		view := d.ToBytes()
		app := AppendDecode(nil, data)
		if !bytes.Equal(view, app) {
			t.Errorf("paths disagree on %q: view %q, append %q", data, view, app)
		}
		if d.ByteLen() != len(view) {
			t.Errorf("ByteLen() = %d, materialized %d bytes", d.ByteLen(), len(view))
		}
		for i := 0; i < len(view); i++ {
			b, ok := d.ByteAt(i)
			if !ok || b != view[i] {
				t.Fatalf("ByteAt(%d) = (%q, %v), want %q", i, b, ok, view[i])
			}
		}
		if !bytes.ContainsRune(data, '&') && !bytes.Equal(view, data) {
			t.Errorf("ampersand-free input changed: %q → %q", data, view)
		}
	})
}

// FuzzRoundTrip fuzzes decoding of encoded output. For valid UTF-8 input and a charset
// covering the ampersand, the round trip must reproduce the input.
func FuzzRoundTrip(f *testing.F) {
	for _, seed := range encodeSeeds {
		f.Add(seed)
	}
	f.Add([]byte("&already;"))

	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("round trip panicked on input %q: %v", data, r)
			}
		}()

		for _, typ := range []EncodeType{NamedOrHex, NamedOrDecimal, Hex, Decimal} {
			encoded := AppendEncode(nil, data, SpecialCharsAndNonASCII, typ)
			decoded := AppendDecode(nil, encoded)
			if utf8.Valid(data) && !bytes.Equal(decoded, data) {
				t.Errorf("round trip (typ=%b) %q → %q → %q", typ, data, encoded, decoded)
			}
		}
	})
}

// FuzzEncodeWith fuzzes the classifier path with a policy that flips per
// code point; only the never-panic and path-agreement invariants apply.
func FuzzEncodeWith(f *testing.F) {
	for _, seed := range encodeSeeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("EncodeWith panicked on input %q: %v", data, r)
			}
		}()

		classify := func(r rune) (EncodeType, bool) {
			switch {
			case r%3 == 0:
				return NamedOrHex, true
			case r%3 == 1:
				return Decimal, true
			}
			return 0, false
		}

		view := EncodeWith(data, classify).ToBytes()
		app := AppendEncodeWith(nil, data, classify)
		if !bytes.Equal(view, app) {
			t.Errorf("paths disagree on %q: view %q, append %q", data, view, app)
		}
	})
}

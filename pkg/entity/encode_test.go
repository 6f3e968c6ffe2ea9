package entity

import (
	"bytes"
	"testing"
)

func encodeToString(t *testing.T, data string, set CharacterSet, typ EncodeType) string {
	t.Helper()
	s, err := Encode([]byte(data), set, typ).ToString()
	if err != nil {
		t.Fatalf("ToString() error = %v", err)
	}
	return s
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		data string
		set  CharacterSet
		typ  EncodeType
		want string
	}{
		{
			name: "special chars named",
			data: "<div>",
			set:  SpecialChars,
			typ:  Named,
			want: "&lt;div&gt;",
		},
		{
			name: "all named-or-hex",
			data: "<div>",
			set:  All,
			typ:  NamedOrHex,
			want: "&lt;&#x64;&#x69;&#x76;&gt;",
		},
		{
			name: "html leaves quotes alone",
			data: "<div>&nbsp;'\"</div>",
			set:  Html,
			typ:  Named,
			want: "&lt;div&gt;&amp;nbsp;'\"&lt;/div&gt;",
		},
		{
			name: "special chars encodes quotes",
			data: "<div>&nbsp;'\"</div>",
			set:  SpecialChars,
			typ:  Named,
			want: "&lt;div&gt;&amp;nbsp;&apos;&quot;&lt;/div&gt;",
		},
		{
			name: "html and non-ascii",
			data: "<div name='htmlentity'>Hello!世界!</div>",
			set:  HtmlAndNonASCII,
			typ:  NamedOrHex,
			want: "&lt;div name='htmlentity'&gt;Hello!&#x4e16;&#x754c;!&lt;/div&gt;",
		},
		{
			name: "non-ascii only",
			data: "<p>¥→</p>",
			set:  NonASCII,
			typ:  NamedOrHex,
			want: "<p>¥&rarr;</p>", // U+00A5 is at or below 0xFF, so it stays
		},
		{
			name: "decimal form",
			data: "<>",
			set:  Html,
			typ:  Decimal,
			want: "&#60;&#62;",
		},
		{
			name: "hex form",
			data: "<>",
			set:  Html,
			typ:  Hex,
			want: "&#x3c;&#x3e;",
		},
		{
			name: "named only keeps unnamed",
			data: "x<y",
			set:  All,
			typ:  Named,
			want: "x&lt;y",
		},
		{
			name: "empty input",
			data: "",
			set:  All,
			typ:  NamedOrHex,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := encodeToString(t, tt.data, tt.set, tt.typ)
			if got != tt.want {
				t.Errorf("Encode(%q) = %q, want %q", tt.data, got, tt.want)
			}

			// The direct-write path shares the scan loop and must agree.
			appended := AppendEncode(nil, []byte(tt.data), tt.set, tt.typ)
			if string(appended) != tt.want {
				t.Errorf("AppendEncode(%q) = %q, want %q", tt.data, appended, tt.want)
			}
		})
	}
}

func TestEncode_Deterministic(t *testing.T) {
	data := []byte("<div name='x'>世界 &amp; more</div>")
	a := Encode(data, SpecialCharsAndNonASCII, NamedOrHex).ToBytes()
	b := Encode(data, SpecialCharsAndNonASCII, NamedOrHex).ToBytes()
	if !bytes.Equal(a, b) {
		t.Errorf("encode not deterministic: %q vs %q", a, b)
	}
}

func TestEncode_MalformedUTF8PassesThrough(t *testing.T) {
	data := []byte{'a', 0xFF, '<', 0xE4, 0xB8, 'z'}
	got := Encode(data, SpecialChars, Named).ToBytes()
	want := []byte{'a', 0xFF, '&', 'l', 't', ';', 0xE4, 0xB8, 'z'}
	if !bytes.Equal(got, want) {
		t.Errorf("ToBytes() = %q, want %q", got, want)
	}

	// A four-byte sequence beyond U+10FFFF is malformed, not a scalar the
	// All set may substitute.
	data = []byte{0xF4, 0x90, 0x80, 0x80, '<'}
	got = Encode(data, All, NamedOrHex).ToBytes()
	want = []byte{0xF4, 0x90, 0x80, 0x80, '&', 'l', 't', ';'}
	if !bytes.Equal(got, want) {
		t.Errorf("ToBytes() = %q, want %q", got, want)
	}
}

func TestEncode_PreferredName(t *testing.T) {
	tests := []struct {
		r    rune
		want string
	}{
		{'<', "&lt;"},
		{'>', "&gt;"},
		{'&', "&amp;"},
		{'"', "&quot;"},
		{'→', "&rarr;"},
		{'\u00a0', "&nbsp;"},
	}
	for _, tt := range tests {
		ce, ok := EncodeChar(tt.r, Named)
		if !ok {
			t.Errorf("EncodeChar(%U, Named) not ok", tt.r)
			continue
		}
		if ce.String() != tt.want {
			t.Errorf("EncodeChar(%U, Named) = %q, want %q", tt.r, ce.String(), tt.want)
		}
	}
}

func TestEncodeChar(t *testing.T) {
	tests := []struct {
		r    rune
		typ  EncodeType
		want string
		ok   bool
	}{
		{'<', Named, "&lt;", true},
		{'<', Hex, "&#x3c;", true},
		{'<', Decimal, "&#60;", true},
		{'<', NamedOrHex, "&lt;", true},
		{'d', NamedOrHex, "&#x64;", true},
		{'d', NamedOrDecimal, "&#100;", true},
		{'d', Named, "", false},
		{'→', Hex | Decimal, "&#x2192;", true},
		{'x', 0, "", false},
	}
	for _, tt := range tests {
		ce, ok := EncodeChar(tt.r, tt.typ)
		if ok != tt.ok {
			t.Errorf("EncodeChar(%U, %b) ok = %v, want %v", tt.r, tt.typ, ok, tt.ok)
			continue
		}
		if ok && ce.String() != tt.want {
			t.Errorf("EncodeChar(%U, %b) = %q, want %q", tt.r, tt.typ, ce.String(), tt.want)
		}
	}
}

func TestEncodeWith(t *testing.T) {
	// Encode everything named except '<'.
	data := "\t<div>"
	got := EncodeWith([]byte(data), func(r rune) (EncodeType, bool) {
		if r == '<' {
			return 0, false
		}
		return Named, true
	}).ToBytes()
	if string(got) != "&Tab;<div&gt;" {
		t.Errorf("EncodeWith = %q, want %q", got, "&Tab;<div&gt;")
	}

	appended := AppendEncodeWith(nil, []byte(data), func(r rune) (EncodeType, bool) {
		if r == '<' {
			return 0, false
		}
		return Named, true
	})
	if string(appended) != string(got) {
		t.Errorf("AppendEncodeWith = %q, want %q", appended, got)
	}
}

func TestEncodeWith_ExcludeQuote(t *testing.T) {
	// Special characters, but the single quote falls back to decimal.
	data := "<div class='header'></div>"
	got := EncodeWith([]byte(data), func(r rune) (EncodeType, bool) {
		if !SpecialChars.Contains(r) {
			return 0, false
		}
		if r == '\'' {
			return Decimal, true
		}
		return NamedOrDecimal, true
	}).ToBytes()
	want := "&lt;div class=&#39;header&#39;&gt;&lt;/div&gt;"
	if string(got) != want {
		t.Errorf("EncodeWith = %q, want %q", got, want)
	}
}

func TestCharacterSet_Contains(t *testing.T) {
	tests := []struct {
		set  CharacterSet
		r    rune
		want bool
	}{
		{All, 'a', true},
		{All, '世', true},
		{NonASCII, '世', true},
		{NonASCII, 'ÿ', false},
		{NonASCII, 'Ā', true},
		{NonASCII, '<', false},
		{Html, '<', true},
		{Html, '\'', false},
		{SpecialChars, '\'', true},
		{SpecialChars, '"', true},
		{SpecialChars, 'a', false},
		{HtmlAndNonASCII, '<', true},
		{HtmlAndNonASCII, '世', true},
		{HtmlAndNonASCII, '\'', false},
		{SpecialCharsAndNonASCII, '\'', true},
		{SpecialCharsAndNonASCII, '世', true},
	}
	for _, tt := range tests {
		if got := tt.set.Contains(tt.r); got != tt.want {
			t.Errorf("set %d Contains(%q) = %v, want %v", tt.set, tt.r, got, tt.want)
		}
	}
}

// Encoding with a larger set must substitute a superset of the offsets
// substituted with a smaller one.
func TestEncode_CharsetMonotonicity(t *testing.T) {
	data := []byte("<div name='a'>&amp; 世界 \"quoted\"</div>")
	pairs := []struct {
		small, big CharacterSet
	}{
		{Html, SpecialChars},
		{Html, HtmlAndNonASCII},
		{SpecialChars, SpecialCharsAndNonASCII},
		{NonASCII, HtmlAndNonASCII},
		{HtmlAndNonASCII, All},
	}

	offsets := func(set CharacterSet) map[int]bool {
		m := make(map[int]bool)
		enc := Encode(data, set, NamedOrHex)
		for _, sp := range enc.spans {
			m[sp.start] = true
		}
		return m
	}

	for _, p := range pairs {
		small, big := offsets(p.small), offsets(p.big)
		for off := range small {
			if !big[off] {
				t.Errorf("set %d substitutes offset %d but superset %d does not", p.small, off, p.big)
			}
		}
	}
}

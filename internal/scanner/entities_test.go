package scanner

import "testing"

func TestRecognize(t *testing.T) {
	tests := []struct {
		interior string
		want     rune
		kind     ErrorKind
	}{
		{"lt", '<', NoError},
		{"LT", '<', NoError},
		{"amp", '&', NoError},
		{"rarr", '→', NoError},
		{"#60", '<', NoError},
		{"#x3c", '<', NoError},
		{"#X3C", '<', NoError},
		{"#x2192", '→', NoError},
		{"#8594", '→', NoError},
		{"#0008594", '→', NoError},
		{"#x0002192", '→', NoError},
		{"#x10FFFF", 0x10FFFF, NoError},

		{"", 0, EmptyEntity},
		{"q123", 0, UnknownName},
		{"abc def", 0, MalformedName},
		{"a-b", 0, MalformedName},
		{"123", 0, MalformedName},
		{"0a", 0, MalformedName},
		{"#", 0, MalformedNumber},
		{"#a", 0, MalformedNumber},
		{"#x", 0, MalformedNumber},
		{"#X", 0, MalformedNumber},
		{"#xg", 0, MalformedNumber},
		{"#x0g", 0, MalformedNumber},
		{"#a00", 0, MalformedNumber},
		{"#1x", 0, MalformedNumber},
		{"#x110000", 0, OutOfRangeScalar},
		{"#1114112", 0, OutOfRangeScalar},
		{"#xDC00", 0, OutOfRangeScalar},
		{"#xD800", 0, OutOfRangeScalar},
		{"#56320", 0, OutOfRangeScalar},
	}

	for _, tt := range tests {
		got, kind := Recognize([]byte(tt.interior))
		if kind != tt.kind || got != tt.want {
			t.Errorf("Recognize(%q) = (%U, %v), want (%U, %v)", tt.interior, got, kind, tt.want, tt.kind)
		}
	}
}

// Very long digit runs must saturate instead of overflowing.
func TestRecognize_HugeNumber(t *testing.T) {
	interior := "#9999999999999999999999999999"
	if _, kind := Recognize([]byte(interior)); kind != OutOfRangeScalar {
		t.Errorf("Recognize(%q) kind = %v, want OutOfRangeScalar", interior, kind)
	}
}

type subEvent struct {
	start, end int
	r          rune
}

type failEvent struct {
	start, end int
	kind       ErrorKind
}

func scan(data string) ([]subEvent, []failEvent) {
	var subs []subEvent
	var fails []failEvent
	ScanEntities([]byte(data),
		func(start, end int, r rune) { subs = append(subs, subEvent{start, end, r}) },
		func(start, end int, kind ErrorKind) { fails = append(fails, failEvent{start, end, kind}) })
	return subs, fails
}

func TestScanEntities(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		subs  []subEvent
		fails []failEvent
	}{
		{
			name: "plain text",
			data: "hello world",
		},
		{
			name: "single named",
			data: "&lt;",
			subs: []subEvent{{0, 3, '<'}},
		},
		{
			name: "surrounded",
			data: "a&gt;b",
			subs: []subEvent{{1, 4, '>'}},
		},
		{
			name: "two entities",
			data: "&lt;div&gt;",
			subs: []subEvent{{0, 3, '<'}, {7, 10, '>'}},
		},
		{
			name:  "empty entity",
			data:  "&;",
			fails: []failEvent{{0, 1, EmptyEntity}},
		},
		{
			name:  "bare ampersand at end",
			data:  "abc&",
			fails: []failEvent{{3, 3, UnterminatedEntity}},
		},
		{
			name:  "unterminated",
			data:  "abc&lt",
			fails: []failEvent{{3, 5, UnterminatedEntity}},
		},
		{
			name:  "double ampersand picks later",
			data:  "&#1&lt;",
			subs:  []subEvent{{3, 6, '<'}},
			fails: []failEvent{{0, 0, UnencodedAmpersand}},
		},
		{
			name:  "triple ampersand",
			data:  "&&&gt;",
			subs:  []subEvent{{2, 5, '>'}},
			fails: []failEvent{{0, 0, UnencodedAmpersand}, {1, 1, UnencodedAmpersand}},
		},
		{
			name:  "unknown name left intact",
			data:  "&nosuch;",
			fails: []failEvent{{0, 7, UnknownName}},
		},
		{
			name:  "malformed number",
			data:  "&#x0g;",
			fails: []failEvent{{0, 5, MalformedNumber}},
		},
		{
			name:  "out of range",
			data:  "&#x110000;",
			fails: []failEvent{{0, 9, OutOfRangeScalar}},
		},
		{
			name: "semicolon outside entity",
			data: "a;b",
		},
		{
			name:  "mixed success and failure",
			data:  "&amp;&;&#x2192;",
			subs:  []subEvent{{0, 4, '&'}, {7, 14, '→'}},
			fails: []failEvent{{5, 6, EmptyEntity}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subs, fails := scan(tt.data)
			if len(subs) != len(tt.subs) {
				t.Fatalf("subs = %+v, want %+v", subs, tt.subs)
			}
			for i := range tt.subs {
				if subs[i] != tt.subs[i] {
					t.Errorf("sub[%d] = %+v, want %+v", i, subs[i], tt.subs[i])
				}
			}
			if len(fails) != len(tt.fails) {
				t.Fatalf("fails = %+v, want %+v", fails, tt.fails)
			}
			for i := range tt.fails {
				if fails[i] != tt.fails[i] {
					t.Errorf("fail[%d] = %+v, want %+v", i, fails[i], tt.fails[i])
				}
			}
		})
	}
}

package scanner

import (
	"testing"
	"unicode/utf8"
)

type runeEvent struct {
	start, end int
	r          rune
	valid      bool
}

func collectRunes(data []byte) []runeEvent {
	var events []runeEvent
	ScanRunes(data, func(start, end int, r rune, valid bool) {
		events = append(events, runeEvent{start, end, r, valid})
	})
	return events
}

func TestScanRunes_ASCII(t *testing.T) {
	events := collectRunes([]byte("ab"))
	want := []runeEvent{{0, 0, 'a', true}, {1, 1, 'b', true}}
	if len(events) != len(want) {
		t.Fatalf("event count = %d, want %d", len(events), len(want))
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event[%d] = %+v, want %+v", i, events[i], want[i])
		}
	}
}

func TestScanRunes_Multibyte(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []runeEvent
	}{
		{
			name: "two-byte",
			data: "¥",
			want: []runeEvent{{0, 1, '¥', true}},
		},
		{
			name: "three-byte CJK",
			data: "世界",
			want: []runeEvent{{0, 2, '世', true}, {3, 5, '界', true}},
		},
		{
			name: "four-byte",
			data: "𝄞",
			want: []runeEvent{{0, 3, 0x1D11E, true}},
		},
		{
			name: "mixed",
			data: "a→b",
			want: []runeEvent{{0, 0, 'a', true}, {1, 3, '→', true}, {4, 4, 'b', true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := collectRunes([]byte(tt.data))
			if len(events) != len(tt.want) {
				t.Fatalf("event count = %d, want %d. events = %+v", len(events), len(tt.want), events)
			}
			for i := range tt.want {
				if events[i] != tt.want[i] {
					t.Errorf("event[%d] = %+v, want %+v", i, events[i], tt.want[i])
				}
			}
		})
	}
}

func TestScanRunes_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want []runeEvent
	}{
		{
			name: "stray continuation",
			data: []byte{0x80},
			want: []runeEvent{{0, 0, 0x80, false}},
		},
		{
			name: "truncated sequence",
			data: []byte{0xE4, 0xB8},
			want: []runeEvent{{0, 0, 0xE4, false}, {1, 1, 0xB8, false}},
		},
		{
			name: "bad continuation then ascii",
			data: []byte{0xC3, 'x'},
			want: []runeEvent{{0, 0, 0xC3, false}, {1, 1, 'x', true}},
		},
		{
			name: "invalid lead 0xFF",
			data: []byte{0xFF, 'a'},
			want: []runeEvent{{0, 0, 0xFF, false}, {1, 1, 'a', true}},
		},
		{
			name: "overlong encoding",
			data: []byte{0xC0, 0xAF},
			want: []runeEvent{{0, 0, 0xC0, false}, {1, 1, 0xAF, false}},
		},
		{
			name: "surrogate half",
			data: []byte{0xED, 0xA0, 0x80},
			want: []runeEvent{{0, 0, 0xED, false}, {1, 1, 0xA0, false}, {2, 2, 0x80, false}},
		},
		{
			name: "beyond max scalar",
			data: []byte{0xF4, 0x90, 0x80, 0x80},
			want: []runeEvent{{0, 0, 0xF4, false}, {1, 1, 0x90, false}, {2, 2, 0x80, false}, {3, 3, 0x80, false}},
		},
		{
			name: "lead 0xF7",
			data: []byte{0xF7, 0xBF, 0xBF, 0xBF},
			want: []runeEvent{{0, 0, 0xF7, false}, {1, 1, 0xBF, false}, {2, 2, 0xBF, false}, {3, 3, 0xBF, false}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := collectRunes(tt.data)
			if len(events) != len(tt.want) {
				t.Fatalf("event count = %d, want %d. events = %+v", len(events), len(tt.want), events)
			}
			for i := range tt.want {
				if events[i] != tt.want[i] {
					t.Errorf("event[%d] = %+v, want %+v", i, events[i], tt.want[i])
				}
			}
		})
	}
}

// Every byte range reported valid must decode to the same scalar under
// the standard library, and every stdlib-rejected window must never be
// reported valid.
func TestScanRunes_AgreesWithStdlib(t *testing.T) {
	inputs := [][]byte{
		[]byte("plain ascii"),
		[]byte("¥→世界𝄞"),
		{0xF4, 0x90, 0x80, 0x80},
		{0xF5, 0x80, 0x80, 0x80},
		{0xF7, 0xBF, 0xBF, 0xBF},
		{0xF4, 0x8F, 0xBF, 0xBF},
		{0xC0, 0xAF, 'a', 0xED, 0xA0, 0x80},
		{'x', 0xF0, 0x90, 0x80, 0x80, 0xFF},
	}
	for _, data := range inputs {
		ScanRunes(data, func(start, end int, r rune, valid bool) {
			if !valid {
				return
			}
			got, size := utf8.DecodeRune(data[start : end+1])
			if got == utf8.RuneError && size <= 1 {
				t.Errorf("input %q: reported valid rune %U over invalid bytes %d..%d", data, r, start, end)
				return
			}
			if got != r || size != end-start+1 {
				t.Errorf("input %q: rune at %d..%d = %U, stdlib decodes %U (size %d)", data, start, end, r, got, size)
			}
		})
	}
}

// Every input byte must belong to exactly one event, in order.
func TestScanRunes_FullCoverage(t *testing.T) {
	data := []byte("a¥\x80世\xFF!")
	next := 0
	ScanRunes(data, func(start, end int, r rune, valid bool) {
		if start != next {
			t.Fatalf("event starts at %d, want %d", start, next)
		}
		if end < start {
			t.Fatalf("event range inverted: %d..%d", start, end)
		}
		next = end + 1
	})
	if next != len(data) {
		t.Fatalf("events cover %d bytes, want %d", next, len(data))
	}
}

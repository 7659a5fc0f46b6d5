package widechar

import "testing"

func TestClassOf(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want Class
	}{
		{name: "ascii letter", r: 'a', want: One},
		{name: "space", r: ' ', want: One},
		{name: "escape", r: 0x1b, want: NonPrint},
		{name: "delete", r: 0x7f, want: NonPrint},
		{name: "zero width joiner", r: 0x200d, want: NonPrint},
		{name: "tag character", r: 0xe0067, want: NonPrint},
		{name: "combining acute", r: 0x0301, want: Combining},
		{name: "variation selector 16", r: 0xfe0f, want: Combining},
		{name: "dakuten", r: 0x3099, want: Combining},
		{name: "ideographic space", r: 0x3000, want: Two},
		{name: "cjk ideograph", r: 0x4e16, want: Two},
		{name: "hangul syllable", r: 0xac00, want: Two},
		{name: "fullwidth A", r: 0xff21, want: Two},
		{name: "man dancing", r: 0x1f57a, want: WidenedIn9},
		{name: "watch", r: 0x231a, want: WidenedIn9},
		{name: "foot", r: 0x1f9b6, want: WidenedIn9},
		{name: "font awesome star", r: 0xf005, want: PrivateUse},
		{name: "plane 15 private use", r: 0xf0001, want: PrivateUse},
		{name: "latin e acute", r: 0x00e9, want: One},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassOf(tc.r); got != tc.want {
				t.Errorf("ClassOf(%#x) = %v, want %v", tc.r, got, tc.want)
			}
		})
	}
}

func TestVersionedWidths(t *testing.T) {
	tests := []struct {
		name   string
		r      rune
		width8 int
		width9 int
	}{
		{name: "narrow", r: 'x', width8: 1, width9: 1},
		{name: "always wide", r: 0x3000, width8: 2, width9: 2},
		{name: "widened emoji", r: 0x1f57a, width8: 1, width9: 2},
		{name: "combining", r: 0x0301, width8: 0, width9: 0},
		{name: "control", r: 0x07, width8: 0, width9: 0},
		{name: "private use", r: 0xf005, width8: 1, width9: 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cls := ClassOf(tc.r)
			if got := cls.Width8(); got != tc.width8 {
				t.Errorf("Width8(%#x) = %d, want %d", tc.r, got, tc.width8)
			}
			if got := cls.Width9(); got != tc.width9 {
				t.Errorf("Width9(%#x) = %d, want %d", tc.r, got, tc.width9)
			}
			if got := cls.Width(true); got != tc.width9 {
				t.Errorf("Width(true) disagrees with Width9 for %#x", tc.r)
			}
			if got := cls.Width(false); got != tc.width8 {
				t.Errorf("Width(false) disagrees with Width8 for %#x", tc.r)
			}
		})
	}
}

func TestTablesSorted(t *testing.T) {
	for name, tab := range map[string]table{
		"nonPrint":   nonPrint,
		"combining":  combining,
		"doubleWide": doubleWide,
		"widenedIn9": widenedIn9,
		"privateUse": privateUse,
	} {
		prev := rune(-1)
		for i, iv := range tab {
			if iv.lo > iv.hi {
				t.Errorf("%s[%d]: inverted interval %#x..%#x", name, i, iv.lo, iv.hi)
			}
			if iv.lo <= prev {
				t.Errorf("%s[%d]: overlaps or is unsorted at %#x", name, i, iv.lo)
			}
			prev = iv.hi
		}
	}
}

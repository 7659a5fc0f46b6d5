package color

import (
	"encoding/json"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Attribute
		wantErr bool
	}{
		{name: "default keyword", in: "default", want: Default()},
		{name: "empty is default", in: "", want: Default()},
		{name: "palette index", in: "14", want: Palette(14)},
		{name: "palette prefix", in: "palette:196", want: Palette(196)},
		{name: "hex long", in: "#1a2b3c", want: FromRGB(0x1a, 0x2b, 0x3c)},
		{name: "hex short", in: "#f2a", want: FromRGB(0xff, 0x22, 0xaa)},
		{name: "xparsecolor two digit", in: "rgb:ff/00/80", want: FromRGB(0xff, 0x00, 0x80)},
		{name: "xparsecolor one digit", in: "rgb:f/0/8", want: FromRGB(0xff, 0x00, 0x88)},
		{name: "xparsecolor four digit", in: "rgb:ffff/0000/8080", want: FromRGB(0xff, 0x00, 0x80)},
		{name: "garbage", in: "bleet", wantErr: true},
		{name: "overflowing palette", in: "300", wantErr: true},
		{name: "malformed rgb", in: "rgb:ff/00", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) succeeded with %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestInlineRepresentability(t *testing.T) {
	if !Default().IsInline() {
		t.Error("default must be inline-representable")
	}
	if !Palette(255).IsInline() {
		t.Error("palette indices must be inline-representable")
	}
	if FromRGB(1, 2, 3).IsInline() {
		t.Error("RGB colors must not be inline-representable")
	}
}

func TestHexRoundTrip(t *testing.T) {
	c := RGB{R: 0x12, G: 0xf0, B: 0x0d}
	if got := c.Hex(); got != "#12f00d" {
		t.Errorf("Hex() = %q, want %q", got, "#12f00d")
	}
}

func TestLerpEndpoints(t *testing.T) {
	a := RGB{R: 10, G: 20, B: 30}
	b := RGB{R: 200, G: 100, B: 50}
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(t=0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(t=1) = %v, want %v", got, b)
	}
}

func TestContrast(t *testing.T) {
	black := RGB{}
	white := RGB{R: 255, G: 255, B: 255}
	ratio := black.Contrast(white)
	if ratio < 20.9 || ratio > 21.1 {
		t.Errorf("black/white contrast = %v, want 21", ratio)
	}
	if got := white.Contrast(black); got != ratio {
		t.Errorf("contrast is not symmetric: %v vs %v", got, ratio)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   Attribute
		want string
	}{
		{name: "default", in: Default(), want: `"default"`},
		{name: "palette", in: Palette(42), want: `42`},
		{name: "rgb", in: FromRGB(0xaa, 0xbb, 0xcc), want: `"#aabbcc"`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(tc.in)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(data) != tc.want {
				t.Errorf("marshal = %s, want %s", data, tc.want)
			}
			var back Attribute
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if back != tc.in {
				t.Errorf("round trip = %v, want %v", back, tc.in)
			}
		})
	}
}

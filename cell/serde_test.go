package cell

import (
	"encoding/json"
	"testing"

	"github.com/framegrace/texelcell/color"
	"github.com/framegrace/texelcell/hyperlink"
)

func TestAttributesJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		build func() Attributes
	}{
		{
			name:  "blank",
			build: BlankAttributes,
		},
		{
			name: "renditions and palette colors",
			build: func() Attributes {
				a := BlankAttributes()
				a.SetIntensity(IntensityBold).
					SetUnderline(UnderlineCurly).
					SetItalic(true).
					SetSemanticType(SemanticPrompt).
					SetForeground(color.Palette(3)).
					SetBackground(color.Palette(0))
				return a
			},
		},
		{
			name: "rgb colors spill and come back",
			build: func() Attributes {
				a := BlankAttributes()
				a.SetForeground(color.FromRGB(0xde, 0xad, 0xbe)).
					SetUnderlineColor(color.FromRGB(0x01, 0x02, 0x03))
				return a
			},
		},
		{
			name: "hyperlink",
			build: func() Attributes {
				a := BlankAttributes()
				a.SetHyperlink(hyperlink.New("https://example.com/x", "42"))
				return a
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := tt.build()
			raw, err := json.Marshal(orig)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			var back Attributes
			if err := json.Unmarshal(raw, &back); err != nil {
				t.Fatalf("Unmarshal(%s): %v", raw, err)
			}
			if !back.Equal(&orig) {
				t.Errorf("round trip mismatch:\n  sent %v\n  got  %v\n  json %s", orig.String(), back.String(), raw)
			}
		})
	}
}

func TestCellJSONRoundTrip(t *testing.T) {
	attrs := BlankAttributes()
	attrs.SetIntensity(IntensityBold).SetForeground(color.Palette(2))
	orig := NewGrapheme("你", attrs, DefaultUnicodeVersion)

	raw, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var back Cell
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("Unmarshal(%s): %v", raw, err)
	}
	if !back.SameContents(&orig) {
		t.Errorf("round trip mismatch: sent %q got %q", orig.Str(), back.Str())
	}
	if back.Width() != 2 {
		t.Errorf("Width() after decode = %d, want the re-measured 2", back.Width())
	}
}

func TestCellJSONNeutralizesControls(t *testing.T) {
	var back Cell
	if err := json.Unmarshal([]byte(`{"text":"\u0007","attrs":{"fg":"default","bg":"default","underline_color":"default"}}`), &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Str() != " " {
		t.Errorf("Str() = %q, want a space", back.Str())
	}
}

func TestEnumJSONRejectsUnknown(t *testing.T) {
	var a Attributes
	err := json.Unmarshal([]byte(`{"intensity":"shiny","fg":"default","bg":"default","underline_color":"default"}`), &a)
	if err == nil {
		t.Error("expected an error for an unknown intensity name")
	}
}

package cell

import (
	"testing"

	"github.com/framegrace/texelcell/color"
	"github.com/framegrace/texelcell/hyperlink"
)

func TestChangesTouchOnlyTheirField(t *testing.T) {
	tests := []struct {
		name   string
		change AttributeChange
		verify func(t *testing.T, a *Attributes)
	}{
		{
			name:   "intensity",
			change: IntensityChange(IntensityHalf),
			verify: func(t *testing.T, a *Attributes) {
				if a.Intensity() != IntensityHalf {
					t.Errorf("Intensity() = %v", a.Intensity())
				}
			},
		},
		{
			name:   "underline",
			change: UnderlineChange(UnderlineDotted),
			verify: func(t *testing.T, a *Attributes) {
				if a.Underline() != UnderlineDotted {
					t.Errorf("Underline() = %v", a.Underline())
				}
			},
		},
		{
			name:   "italic",
			change: ItalicChange(true),
			verify: func(t *testing.T, a *Attributes) {
				if !a.Italic() {
					t.Error("Italic() = false")
				}
			},
		},
		{
			name:   "blink",
			change: BlinkChange(BlinkSlow),
			verify: func(t *testing.T, a *Attributes) {
				if a.Blink() != BlinkSlow {
					t.Errorf("Blink() = %v", a.Blink())
				}
			},
		},
		{
			name:   "reverse",
			change: ReverseChange(true),
			verify: func(t *testing.T, a *Attributes) {
				if !a.Reverse() {
					t.Error("Reverse() = false")
				}
			},
		},
		{
			name:   "strikethrough",
			change: StrikeThroughChange(true),
			verify: func(t *testing.T, a *Attributes) {
				if !a.Strikethrough() {
					t.Error("Strikethrough() = false")
				}
			},
		},
		{
			name:   "invisible",
			change: InvisibleChange(true),
			verify: func(t *testing.T, a *Attributes) {
				if !a.Invisible() {
					t.Error("Invisible() = false")
				}
			},
		},
		{
			name:   "foreground",
			change: ForegroundChange(color.Palette(3)),
			verify: func(t *testing.T, a *Attributes) {
				if a.Foreground() != color.Palette(3) {
					t.Errorf("Foreground() = %v", a.Foreground())
				}
			},
		},
		{
			name:   "background",
			change: BackgroundChange(color.FromRGB(0x11, 0x22, 0x33)),
			verify: func(t *testing.T, a *Attributes) {
				if a.Background() != color.FromRGB(0x11, 0x22, 0x33) {
					t.Errorf("Background() = %v", a.Background())
				}
			},
		},
		{
			name:   "hyperlink",
			change: HyperlinkChange{Link: hyperlink.New("https://example.com/", "")},
			verify: func(t *testing.T, a *Attributes) {
				if a.Hyperlink() == nil || a.Hyperlink().URI() != "https://example.com/" {
					t.Errorf("Hyperlink() = %v", a.Hyperlink())
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := BlankAttributes()
			a.Apply(tt.change)
			tt.verify(t, &a)

			// Undoing the same field must restore blank equality, proving
			// nothing else was touched along the way.
			undo := BlankAttributes()
			undone := a
			switch tt.name {
			case "foreground":
				undone.SetForeground(color.Default())
			case "background":
				undone.SetBackground(color.Default())
			case "hyperlink":
				undone.SetHyperlink(nil)
			default:
				undone.bits = 0
			}
			if !undone.Equal(&undo) {
				t.Error("reverting the changed field did not restore a blank record")
			}
		})
	}
}

func TestNilHyperlinkChangeIsNoOp(t *testing.T) {
	a := BlankAttributes()
	a.Apply(HyperlinkChange{Link: nil})
	blank := BlankAttributes()
	if a.fat != nil || !a.Equal(&blank) {
		t.Error("applying a nil hyperlink to a plain record must not allocate")
	}
}

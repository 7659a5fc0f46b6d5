package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelcell/cell"
	"github.com/framegrace/texelcell/color"
	"github.com/framegrace/texelcell/hyperlink"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestStyleMapping(t *testing.T) {
	tests := []struct {
		name   string
		build  func() cell.Attributes
		verify func(t *testing.T, style tcell.Style)
	}{
		{
			name:  "blank maps to the default style",
			build: cell.BlankAttributes,
			verify: func(t *testing.T, style tcell.Style) {
				fg, bg, attrs := style.Decompose()
				if fg != tcell.ColorDefault || bg != tcell.ColorDefault || attrs != 0 {
					t.Errorf("Decompose() = %v %v %v", fg, bg, attrs)
				}
			},
		},
		{
			name: "bold and palette foreground",
			build: func() cell.Attributes {
				a := cell.BlankAttributes()
				a.SetIntensity(cell.IntensityBold).SetForeground(color.Palette(1))
				return a
			},
			verify: func(t *testing.T, style tcell.Style) {
				fg, _, attrs := style.Decompose()
				if fg != tcell.PaletteColor(1) {
					t.Errorf("fg = %v, want palette 1", fg)
				}
				if attrs&tcell.AttrBold == 0 {
					t.Error("bold attribute not set")
				}
			},
		},
		{
			name: "half intensity maps to dim",
			build: func() cell.Attributes {
				a := cell.BlankAttributes()
				a.SetIntensity(cell.IntensityHalf)
				return a
			},
			verify: func(t *testing.T, style tcell.Style) {
				_, _, attrs := style.Decompose()
				if attrs&tcell.AttrDim == 0 {
					t.Error("dim attribute not set")
				}
			},
		},
		{
			name: "rgb background",
			build: func() cell.Attributes {
				a := cell.BlankAttributes()
				a.SetBackground(color.FromRGB(0x10, 0x20, 0x30))
				return a
			},
			verify: func(t *testing.T, style tcell.Style) {
				_, bg, _ := style.Decompose()
				if bg != tcell.NewRGBColor(0x10, 0x20, 0x30) {
					t.Errorf("bg = %v", bg)
				}
			},
		},
		{
			name: "reverse strikethrough blink",
			build: func() cell.Attributes {
				a := cell.BlankAttributes()
				a.SetReverse(true).SetStrikethrough(true).SetBlink(cell.BlinkSlow)
				return a
			},
			verify: func(t *testing.T, style tcell.Style) {
				_, _, attrs := style.Decompose()
				for _, want := range []tcell.AttrMask{tcell.AttrReverse, tcell.AttrStrikeThrough, tcell.AttrBlink} {
					if attrs&want == 0 {
						t.Errorf("attribute %v not set", want)
					}
				}
			},
		},
		{
			name: "hyperlink becomes a url",
			build: func() cell.Attributes {
				a := cell.BlankAttributes()
				a.SetHyperlink(hyperlink.New("https://example.com/", "3"))
				return a
			},
			verify: func(t *testing.T, style tcell.Style) {
				ref := tcell.StyleDefault.Url("https://example.com/").UrlId("3")
				if style != ref {
					t.Error("style does not carry the url")
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.build()
			tt.verify(t, Style(&a))
		})
	}
}

func TestDrawLine(t *testing.T) {
	s := newTestScreen(t, 10, 2)

	attrs := cell.BlankAttributes()
	attrs.SetForeground(color.Palette(2))
	row := []cell.Cell{
		cell.New('h', attrs.Clone()),
		cell.New('i', attrs.Clone()),
		cell.NewGrapheme("你", attrs.Clone(), cell.DefaultUnicodeVersion),
		cell.New('!', cell.BlankAttributes()),
	}
	DrawLine(s, 0, 0, row)
	s.Show()

	contents, w, _ := s.GetContents()
	get := func(x int) rune { return contents[x].Runes[0] }
	if w != 10 {
		t.Fatalf("screen width = %d", w)
	}
	if get(0) != 'h' || get(1) != 'i' {
		t.Errorf("columns 0-1 = %c%c, want hi", get(0), get(1))
	}
	if get(2) != '你' {
		t.Errorf("column 2 = %c, want the wide ideograph", get(2))
	}
	// The ideograph occupies columns 2 and 3, so the bang lands at 4.
	if get(4) != '!' {
		t.Errorf("column 4 = %c, want !", get(4))
	}

	fg, _, _ := contents[0].Style.Decompose()
	if fg != tcell.PaletteColor(2) {
		t.Errorf("column 0 fg = %v, want palette 2", fg)
	}
}

func TestDrawLineConcealsInvisibleCells(t *testing.T) {
	s := newTestScreen(t, 5, 1)

	hidden := cell.BlankAttributes()
	hidden.SetInvisible(true)
	DrawLine(s, 0, 0, []cell.Cell{cell.New('s', hidden)})
	s.Show()

	contents, _, _ := s.GetContents()
	if contents[0].Runes[0] != ' ' {
		t.Errorf("column 0 = %c, want a concealing space", contents[0].Runes[0])
	}
}

func TestFitString(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits untouched", "status", 10, "status"},
		{"exact width", "status", 6, "status"},
		{"truncates with ellipsis", "a long title", 7, "a long…"},
		{"wide aware", "你好世界", 5, "你好…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FitString(tt.in, tt.width); got != tt.want {
				t.Errorf("FitString(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestCells(t *testing.T) {
	attrs := cell.BlankAttributes()
	attrs.SetItalic(true)
	row := Cells("ok你", attrs, cell.DefaultUnicodeVersion)
	if len(row) != 3 {
		t.Fatalf("Cells() returned %d cells, want 3", len(row))
	}
	if row[2].Width() != 2 {
		t.Errorf("wide cell width = %d, want 2", row[2].Width())
	}
	if !row[0].Attrs().Italic() {
		t.Error("attributes were not applied")
	}
}

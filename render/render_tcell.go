// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: render/render_tcell.go
// Summary: Maps cell attributes onto tcell styles and draws cell rows.
// Usage: Frontends hand a tcell.Screen and rows of cells to DrawLine.

package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/framegrace/texelcell/cell"
	"github.com/framegrace/texelcell/color"
)

// toTcellColor translates a cell color to tcell, falling back to def for
// the terminal-default mode so callers can substitute a theme color.
func toTcellColor(c color.Attribute, def tcell.Color) tcell.Color {
	switch c.Mode {
	case color.ModePalette:
		return tcell.PaletteColor(int(c.Index))
	case color.ModeRGB:
		return tcell.NewRGBColor(int32(c.RGB.R), int32(c.RGB.G), int32(c.RGB.B))
	default:
		return def
	}
}

func underlineStyle(u cell.Underline) tcell.UnderlineStyle {
	switch u {
	case cell.UnderlineSingle:
		return tcell.UnderlineStyleSolid
	case cell.UnderlineDouble:
		return tcell.UnderlineStyleDouble
	case cell.UnderlineCurly:
		return tcell.UnderlineStyleCurly
	case cell.UnderlineDotted:
		return tcell.UnderlineStyleDotted
	case cell.UnderlineDashed:
		return tcell.UnderlineStyleDashed
	default:
		return tcell.UnderlineStyleNone
	}
}

// Style maps one attribute record onto a tcell style.
//
// tcell has no overline or conceal attribute; overline is dropped here
// and concealed cells are handled by DrawLine, which draws their
// background without the text.
func Style(a *cell.Attributes) tcell.Style {
	style := tcell.StyleDefault
	style = style.Foreground(toTcellColor(a.Foreground(), tcell.ColorDefault))
	style = style.Background(toTcellColor(a.Background(), tcell.ColorDefault))

	style = style.Bold(a.Intensity() == cell.IntensityBold)
	style = style.Dim(a.Intensity() == cell.IntensityHalf)
	style = style.Italic(a.Italic())
	style = style.Blink(a.Blink() != cell.BlinkNone)
	style = style.Reverse(a.Reverse())
	style = style.StrikeThrough(a.Strikethrough())

	if u := a.Underline(); u != cell.UnderlineNone {
		if uc := a.UnderlineColor(); !uc.IsDefault() {
			style = style.Underline(underlineStyle(u), toTcellColor(uc, tcell.ColorDefault))
		} else {
			style = style.Underline(underlineStyle(u))
		}
	}

	if link := a.Hyperlink(); link != nil {
		style = style.Url(link.URI()).UrlId(link.ID())
	}
	return style
}

// DrawLine paints a row of cells starting at (x, y). Wide cells advance
// the column by their width; tcell owns the continuation column. The
// style is recomputed only when the packed attribute word or the colors
// change from the previous cell, which keeps the hot path cheap on long
// uniform runs.
func DrawLine(screen tcell.Screen, x, y int, cells []cell.Cell) {
	col := x
	var style tcell.Style
	var prev *cell.Attributes
	for i := range cells {
		c := &cells[i]
		attrs := c.Attrs()
		if prev == nil || !attrs.AttributeBitsEqual(prev) ||
			attrs.Foreground() != prev.Foreground() ||
			attrs.Background() != prev.Background() ||
			attrs.Hyperlink() != prev.Hyperlink() {
			style = Style(attrs)
			prev = attrs
		}
		if attrs.Invisible() {
			screen.SetContent(col, y, ' ', nil, style)
			col += c.Width()
			continue
		}
		primary, combining := splitCluster(c.Str())
		screen.SetContent(col, y, primary, combining, style)
		col += c.Width()
	}
}

// splitCluster breaks a grapheme cluster into the lead rune and the rest,
// the shape tcell's SetContent wants.
func splitCluster(g string) (rune, []rune) {
	runes := []rune(g)
	if len(runes) == 0 {
		return ' ', nil
	}
	if len(runes) == 1 {
		return runes[0], nil
	}
	return runes[0], runes[1:]
}

// FitString truncates s to at most width display columns, appending an
// ellipsis when it had to cut. Used for titles and status segments.
func FitString(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// Cells converts a string into a row of cells sharing one attribute
// record, splitting on grapheme cluster boundaries.
func Cells(s string, attrs cell.Attributes, version cell.UnicodeVersion) []cell.Cell {
	var out []cell.Cell
	state := -1
	var cluster string
	for s != "" {
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, cell.NewGrapheme(cluster, attrs.Clone(), version))
	}
	return out
}

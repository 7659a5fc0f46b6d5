// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cell/cell.go
// Summary: The display cell: one grapheme cluster plus its attributes.
// Usage: Screen models store a grid of these; renderers read them.

package cell

import (
	"github.com/framegrace/texelcell/emoji"
)

// Cell is one grid position on the screen: a grapheme cluster together
// with the attributes it renders with. The text is immutable once the
// cell is built; attributes mutate in place through Attrs.
//
// Control characters never survive construction: a cell built from a C0
// control, DEL, CR, LF or CRLF holds a space instead, so downstream
// consumers can print cell contents without re-sanitizing.
type Cell struct {
	text  grapheme
	attrs Attributes
}

// New builds a cell holding a single rune, neutralizing controls.
func New(r rune, attrs Attributes) Cell {
	return Cell{text: newGraphemeFromRune(r, DefaultUnicodeVersion), attrs: attrs}
}

// NewGrapheme builds a cell from a grapheme cluster string, measuring its
// width under the given Unicode version rules.
func NewGrapheme(g string, attrs Attributes, version UnicodeVersion) Cell {
	return Cell{text: newGrapheme(g, -1, version), attrs: attrs}
}

// NewGraphemeWithWidth builds a cell with a caller-asserted width,
// skipping measurement. Escape-stream interpreters use this when the
// application explicitly sized a cluster.
func NewGraphemeWithWidth(g string, width int, attrs Attributes) Cell {
	return Cell{text: newGrapheme(g, width, DefaultUnicodeVersion), attrs: attrs}
}

// Blank returns the space cell with default attributes.
func Blank() Cell {
	return Cell{text: graphemeSpace}
}

// BlankWithAttrs returns a space cell carrying the given attributes.
// Erase operations use this to fill cleared regions with the current
// background color.
func BlankWithAttrs(attrs Attributes) Cell {
	return Cell{text: graphemeSpace, attrs: attrs}
}

// Str returns the cell's text without copying.
func (c *Cell) Str() string {
	return c.text.str()
}

// Bytes returns the cell's text as raw UTF-8 bytes without copying.
// The slice aliases the cell's storage; callers must not write to it.
func (c *Cell) Bytes() []byte {
	return c.text.bytes()
}

// Width returns the number of columns the cell occupies.
func (c *Cell) Width() int {
	return c.text.width()
}

// Attrs returns the cell's attributes for reading or in-place mutation.
func (c *Cell) Attrs() *Attributes {
	return &c.attrs
}

// Clone returns an independent copy; see Attributes.Clone for what stays
// shared.
func (c *Cell) Clone() Cell {
	return Cell{text: c.text.clone(), attrs: c.attrs.Clone()}
}

// SameContents reports whether two cells hold the same text and equal
// attributes.
func (c *Cell) SameContents(other *Cell) bool {
	return c.text.equal(&other.text) && c.attrs.Equal(&other.attrs)
}

// Presentation reports whether the cell's cluster renders as emoji or
// text, honoring an explicit variation selector when one is present.
func (c *Cell) Presentation() emoji.Presentation {
	def, explicit, ok := emoji.ForGrapheme(c.text.str())
	if ok {
		return explicit
	}
	return def
}

func (c *Cell) String() string {
	return c.text.str()
}

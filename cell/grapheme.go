// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cell/grapheme.go
// Summary: Compact grapheme storage: short clusters inline, long on heap.
// Usage: Internal to Cell; a screen of cells must not allocate per glyph.

package cell

import "unsafe"

// inlineCap is the number of UTF-8 bytes storable without touching the
// heap: one machine word minus the marker byte. A grapheme goes inline iff
// its encoding is strictly shorter than the word size, leaving room for
// the marker bits and a NUL sentinel that recovers the stored length.
const inlineCap = 7

const (
	// markerInline distinguishes inline storage from the heap form.
	markerInline byte = 0x80
	// markerWide is set alongside markerInline for two column graphemes,
	// so the hot width query never walks the text.
	markerWide byte = 0x40
)

// grapheme packs a cell's text into two machine words. The first word is
// an inline region: up to seven UTF-8 bytes plus a marker byte carrying
// the inline and double-wide tags. When the marker is clear the second
// word points at a heap record holding the bytes and their cached width.
//
// The heap record is exclusively owned: clone always builds a fresh
// record, never shares one, so two graphemes never alias mutable state.
// A plain struct copy of a heap-form grapheme aliases; use clone.
type grapheme struct {
	buf  [inlineCap]byte
	meta byte
	heap *graphemeHeap
}

type graphemeHeap struct {
	text  string
	width int
}

// graphemeSpace is the canonical blank cell content. It is byte-identical
// to newGrapheme(" ", ...) but skips the neutralization and width paths.
var graphemeSpace = grapheme{buf: [inlineCap]byte{' '}, meta: markerInline}

// neutralize rewrites input that would corrupt the terminal's cursor
// model if stored in a cell: empty text, a lone CRLF, or a single C0
// control or DEL byte all become a plain space. Multi-byte clusters pass
// through untouched.
func neutralize(s string) string {
	if s == "" || s == "\r\n" {
		return " "
	}
	if len(s) == 1 {
		if b := s[0]; b < 0x20 || b == 0x7f {
			return " "
		}
	}
	return s
}

// newGrapheme encodes a grapheme cluster. width < 0 means "compute it"
// using the given Unicode conformance level.
func newGrapheme(s string, width int, version UnicodeVersion) grapheme {
	s = neutralize(s)
	if width < 0 {
		width = GraphemeWidth(s, version)
	}
	if len(s) <= inlineCap {
		var g grapheme
		copy(g.buf[:], s)
		g.meta = markerInline
		if width > 1 {
			g.meta |= markerWide
		}
		return g
	}
	return grapheme{heap: &graphemeHeap{text: s, width: width}}
}

func newGraphemeFromRune(r rune, version UnicodeVersion) grapheme {
	return newGrapheme(string(r), -1, version)
}

func (g *grapheme) isInline() bool {
	return g.heap == nil
}

// inlineLen recovers the stored byte length from the NUL sentinel.
func (g *grapheme) inlineLen() int {
	for i, b := range g.buf {
		if b == 0 {
			return i
		}
	}
	return inlineCap
}

// str returns the stored text. The returned string aliases the grapheme's
// storage and stays valid while the owning cell does; it never allocates.
func (g *grapheme) str() string {
	if g.heap != nil {
		return g.heap.text
	}
	if g.meta&markerInline == 0 {
		panic("cell: grapheme storage has unrecognized marker bits")
	}
	return unsafe.String(&g.buf[0], g.inlineLen())
}

// bytes returns the stored text as raw bytes, with the same aliasing
// contract as str. Callers must not write through it.
func (g *grapheme) bytes() []byte {
	s := g.str()
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func (g *grapheme) width() int {
	if g.heap != nil {
		return g.heap.width
	}
	if g.meta&markerWide != 0 {
		return 2
	}
	return 1
}

// clone returns an independent copy. Inline storage is a trivial word
// copy; heap storage gets a fresh record so ownership stays exclusive.
func (g *grapheme) clone() grapheme {
	if g.heap == nil {
		return *g
	}
	return grapheme{heap: &graphemeHeap{text: g.heap.text, width: g.heap.width}}
}

// equal compares byte content, regardless of representation.
func (g *grapheme) equal(other *grapheme) bool {
	return g.str() == other.str()
}

// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widechar/widechar.go
// Summary: Per-rune terminal width classes with Unicode version awareness.
// Usage: Backs the grapheme width resolver in the cell package.

package widechar

import "sort"

// Class captures how a codepoint contributes to terminal column width.
// The classification is a data table, not logic: the Unicode 8->9 width
// migration and later emoji additions are recorded as distinct classes so
// that callers can resolve widths for any supported conformance level.
type Class uint8

const (
	// One is a narrow printable character.
	One Class = iota
	// Two is wide in every supported table revision (CJK and friends).
	Two
	// NonPrint is a control or pure formatting codepoint.
	NonPrint
	// Combining attaches to a preceding base character.
	Combining
	// PrivateUse has no standard width; terminals render it narrow.
	PrivateUse
	// WidenedIn9 was narrow through Unicode 8 and wide from Unicode 9 on.
	WidenedIn9
)

// interval is an inclusive codepoint range.
type interval struct {
	lo, hi rune
}

type table []interval

func (t table) contains(r rune) bool {
	i := sort.Search(len(t), func(i int) bool { return r <= t[i].hi })
	return i < len(t) && r >= t[i].lo
}

// ClassOf classifies a single codepoint.
func ClassOf(r rune) Class {
	// Fast path for printable ASCII, by far the common case.
	if r >= 0x20 && r < 0x7f {
		return One
	}
	switch {
	case nonPrint.contains(r):
		return NonPrint
	case combining.contains(r):
		return Combining
	case doubleWide.contains(r):
		return Two
	case widenedIn9.contains(r):
		return WidenedIn9
	case privateUse.contains(r):
		return PrivateUse
	default:
		return One
	}
}

// Width8 is the column width under Unicode 8 and earlier tables.
func (c Class) Width8() int {
	switch c {
	case Two:
		return 2
	case NonPrint, Combining:
		return 0
	default:
		return 1
	}
}

// Width9 is the column width under Unicode 9 and later tables.
func (c Class) Width9() int {
	switch c {
	case Two, WidenedIn9:
		return 2
	case NonPrint, Combining:
		return 0
	default:
		return 1
	}
}

// Width resolves the class for the given conformance level.
func (c Class) Width(unicode9OrLater bool) int {
	if unicode9OrLater {
		return c.Width9()
	}
	return c.Width8()
}

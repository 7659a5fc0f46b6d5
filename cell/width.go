// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cell/width.go
// Summary: Column width resolution for graphemes and strings.
// Usage: Called when text enters a cell and by layout code measuring runs.

package cell

import (
	"github.com/rivo/uniseg"

	"github.com/framegrace/texelcell/emoji"
	"github.com/framegrace/texelcell/widechar"
)

// UnicodeVersion is the conformance level used to resolve widths.
//
// Width tables are not stable across Unicode revisions: version 9 widened
// a batch of emoji, and version 14 introduced variation-selector driven
// presentation that changes width depending on trailing context. Remote
// applications may be linked against any wcwidth vintage, so the hosting
// terminal threads the level it negotiated down to each width call; there
// is deliberately no process-global setting.
type UnicodeVersion uint8

// LatestUnicodeVersion is the newest conformance level these tables
// implement, used when a caller passes DefaultUnicodeVersion.
const LatestUnicodeVersion UnicodeVersion = 14

// DefaultUnicodeVersion selects LatestUnicodeVersion.
const DefaultUnicodeVersion UnicodeVersion = 0

func (v UnicodeVersion) resolve() UnicodeVersion {
	if v == DefaultUnicodeVersion {
		return LatestUnicodeVersion
	}
	return v
}

// GraphemeWidth returns the number of columns a single grapheme cluster
// occupies: 0, 1 or 2. The input must be one cluster; use StringWidth for
// longer text.
func GraphemeWidth(g string, version UnicodeVersion) int {
	v := version.resolve()

	width := 0
	for _, r := range g {
		width += widechar.ClassOf(r).Width(v >= 9)
	}

	if v >= 14 {
		def, explicit, ok := emoji.ForGrapheme(g)
		switch {
		case ok && explicit == emoji.Emoji:
			return 2
		case ok && explicit == emoji.Text:
			return 1
		case def == emoji.Emoji:
			return 2
		}
	}
	return min(width, 2)
}

// StringWidth returns the number of columns a string occupies by summing
// GraphemeWidth over its grapheme clusters.
func StringWidth(s string, version UnicodeVersion) int {
	width := 0
	state := -1
	var cluster string
	for s != "" {
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		width += GraphemeWidth(cluster, version)
	}
	return width
}

// Graphemes splits s into grapheme clusters, the unit a cell stores.
func Graphemes(s string) []string {
	var out []string
	state := -1
	var cluster string
	for s != "" {
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, cluster)
	}
	return out
}

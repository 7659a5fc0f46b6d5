// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: emoji/presentation.go
// Summary: Emoji vs text presentation resolution for grapheme clusters.
// Usage: Drives the Unicode 14 width override and renderer font selection.

package emoji

// Presentation selects the glyph style a grapheme renders with.
type Presentation uint8

const (
	// Text is the monochrome, narrow glyph style.
	Text Presentation = iota
	// Emoji is the colored, double-wide glyph style.
	Emoji
)

func (p Presentation) String() string {
	if p == Emoji {
		return "emoji"
	}
	return "text"
}

const (
	// vs15 forces text presentation on the preceding character.
	vs15 = 0xfe0e
	// vs16 forces emoji presentation on the preceding character.
	vs16 = 0xfe0f
)

// ForGrapheme resolves the presentation of a single grapheme cluster.
// It returns the default presentation derived from the characters' emoji
// properties and, when a variation selector validly overrides it, the
// explicit presentation with ok set.
//
// A selector only takes effect after a character that participates in
// emoji variation sequences, i.e. one that is emoji-capable but does not
// already default to emoji presentation. U+270A RAISED FIST followed by
// U+FE0E is therefore reported as (Emoji, _, false): the sequence is not
// a valid text variation and the character keeps its emoji rendition.
func ForGrapheme(g string) (def Presentation, explicit Presentation, ok bool) {
	def = Text
	var prev rune
	for _, r := range g {
		switch r {
		case vs15:
			if isEmoji(prev) && !isEmojiPresentation(prev) {
				explicit = Text
				ok = true
			}
		case vs16:
			if isEmoji(prev) && !isEmojiPresentation(prev) {
				explicit = Emoji
				ok = true
			}
		default:
			if isEmojiPresentation(r) {
				def = Emoji
			}
		}
		prev = r
	}
	return def, explicit, ok
}

// Resolve collapses ForGrapheme to the effective presentation: explicit
// selector when present, default property otherwise.
func Resolve(g string) Presentation {
	def, explicit, ok := ForGrapheme(g)
	if ok {
		return explicit
	}
	return def
}

func isEmoji(r rune) bool {
	return emojiAll.contains(r)
}

func isEmojiPresentation(r rune) bool {
	return emojiPresentation.contains(r)
}

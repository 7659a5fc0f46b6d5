// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cell/change.go
// Summary: Single-attribute deltas applied to an Attributes record.
// Usage: Escape interpreters and diff encoders stream these.

package cell

import (
	"github.com/framegrace/texelcell/color"
	"github.com/framegrace/texelcell/hyperlink"
)

// AttributeChange is one attribute delta. Applying a change touches
// exactly the field it names and nothing else. The set of variants is
// closed; external packages consume changes, they do not define new ones.
type AttributeChange interface {
	applyTo(*Attributes)
}

// IntensityChange sets the intensity.
type IntensityChange Intensity

func (c IntensityChange) applyTo(a *Attributes) { a.SetIntensity(Intensity(c)) }

// UnderlineChange sets the underline rendition.
type UnderlineChange Underline

func (c UnderlineChange) applyTo(a *Attributes) { a.SetUnderline(Underline(c)) }

// ItalicChange sets the italic flag.
type ItalicChange bool

func (c ItalicChange) applyTo(a *Attributes) { a.SetItalic(bool(c)) }

// BlinkChange sets the blink mode.
type BlinkChange Blink

func (c BlinkChange) applyTo(a *Attributes) { a.SetBlink(Blink(c)) }

// ReverseChange sets the reverse-video flag.
type ReverseChange bool

func (c ReverseChange) applyTo(a *Attributes) { a.SetReverse(bool(c)) }

// StrikeThroughChange sets the strikethrough flag.
type StrikeThroughChange bool

func (c StrikeThroughChange) applyTo(a *Attributes) { a.SetStrikethrough(bool(c)) }

// InvisibleChange sets the concealed flag.
type InvisibleChange bool

func (c InvisibleChange) applyTo(a *Attributes) { a.SetInvisible(bool(c)) }

// ForegroundChange sets the foreground color.
type ForegroundChange color.Attribute

func (c ForegroundChange) applyTo(a *Attributes) { a.SetForeground(color.Attribute(c)) }

// BackgroundChange sets the background color.
type BackgroundChange color.Attribute

func (c BackgroundChange) applyTo(a *Attributes) { a.SetBackground(color.Attribute(c)) }

// HyperlinkChange attaches or (with a nil link) detaches a hyperlink.
type HyperlinkChange struct {
	Link *hyperlink.Hyperlink
}

func (c HyperlinkChange) applyTo(a *Attributes) { a.SetHyperlink(c.Link) }

// Apply folds one change into the record and returns the receiver so
// change streams can be applied in a loop or chained.
func (a *Attributes) Apply(change AttributeChange) *Attributes {
	change.applyTo(a)
	return a
}

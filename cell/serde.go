// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cell/serde.go
// Summary: JSON encoding for cells and attributes.
// Usage: Session persistence and the cellview --json dump.

package cell

import (
	"encoding/json"
	"fmt"

	"github.com/framegrace/texelcell/color"
	"github.com/framegrace/texelcell/hyperlink"
)

// Enums serialize as their lowercase names so dumps stay readable and
// stable across any future re-packing of the bitfield.

// MarshalText implements encoding.TextMarshaler.
func (i Intensity) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Intensity) UnmarshalText(b []byte) error {
	switch string(b) {
	case "normal":
		*i = IntensityNormal
	case "bold":
		*i = IntensityBold
	case "half":
		*i = IntensityHalf
	default:
		return fmt.Errorf("unknown intensity %q", b)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (u Underline) MarshalText() ([]byte, error) { return []byte(u.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *Underline) UnmarshalText(b []byte) error {
	switch string(b) {
	case "none":
		*u = UnderlineNone
	case "single":
		*u = UnderlineSingle
	case "double":
		*u = UnderlineDouble
	case "curly":
		*u = UnderlineCurly
	case "dotted":
		*u = UnderlineDotted
	case "dashed":
		*u = UnderlineDashed
	default:
		return fmt.Errorf("unknown underline %q", b)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (bl Blink) MarshalText() ([]byte, error) { return []byte(bl.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (bl *Blink) UnmarshalText(b []byte) error {
	switch string(b) {
	case "none":
		*bl = BlinkNone
	case "slow":
		*bl = BlinkSlow
	case "rapid":
		*bl = BlinkRapid
	default:
		return fmt.Errorf("unknown blink %q", b)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s SemanticType) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *SemanticType) UnmarshalText(b []byte) error {
	switch string(b) {
	case "output":
		*s = SemanticOutput
	case "input":
		*s = SemanticInput
	case "prompt":
		*s = SemanticPrompt
	default:
		return fmt.Errorf("unknown semantic type %q", b)
	}
	return nil
}

type hyperlinkJSON struct {
	URI      string `json:"uri"`
	ID       string `json:"id,omitempty"`
	Implicit bool   `json:"implicit,omitempty"`
}

// attributesJSON is the logical view of an Attributes record. The packed
// word is never written out directly; fields round-trip by value, and the
// inline-versus-fat split is reconstructed by the setters on decode.
// Image placements carry raw pixel data and are deliberately not part of
// the persisted form.
type attributesJSON struct {
	Intensity      Intensity       `json:"intensity,omitempty"`
	Underline      Underline       `json:"underline,omitempty"`
	Blink          Blink           `json:"blink,omitempty"`
	Italic         bool            `json:"italic,omitempty"`
	Reverse        bool            `json:"reverse,omitempty"`
	Strikethrough  bool            `json:"strikethrough,omitempty"`
	Invisible      bool            `json:"invisible,omitempty"`
	Wrapped        bool            `json:"wrapped,omitempty"`
	Overline       bool            `json:"overline,omitempty"`
	Semantic       SemanticType    `json:"semantic,omitempty"`
	Foreground     color.Attribute `json:"fg"`
	Background     color.Attribute `json:"bg"`
	UnderlineColor color.Attribute `json:"underline_color"`
	Hyperlink      *hyperlinkJSON  `json:"hyperlink,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (a Attributes) MarshalJSON() ([]byte, error) {
	out := attributesJSON{
		Intensity:      a.Intensity(),
		Underline:      a.Underline(),
		Blink:          a.Blink(),
		Italic:         a.Italic(),
		Reverse:        a.Reverse(),
		Strikethrough:  a.Strikethrough(),
		Invisible:      a.Invisible(),
		Wrapped:        a.Wrapped(),
		Overline:       a.Overline(),
		Semantic:       a.SemanticType(),
		Foreground:     a.Foreground(),
		Background:     a.Background(),
		UnderlineColor: a.UnderlineColor(),
	}
	if link := a.Hyperlink(); link != nil {
		out.Hyperlink = &hyperlinkJSON{
			URI:      link.URI(),
			ID:       link.ID(),
			Implicit: link.IsImplicit(),
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Attributes) UnmarshalJSON(data []byte) error {
	var in attributesJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("decode attributes: %w", err)
	}
	res := Attributes{}
	res.SetIntensity(in.Intensity).
		SetUnderline(in.Underline).
		SetBlink(in.Blink).
		SetItalic(in.Italic).
		SetReverse(in.Reverse).
		SetStrikethrough(in.Strikethrough).
		SetInvisible(in.Invisible).
		SetWrapped(in.Wrapped).
		SetOverline(in.Overline).
		SetSemanticType(in.Semantic).
		SetForeground(in.Foreground).
		SetBackground(in.Background).
		SetUnderlineColor(in.UnderlineColor)
	if in.Hyperlink != nil {
		link := hyperlink.New(in.Hyperlink.URI, in.Hyperlink.ID)
		if in.Hyperlink.Implicit {
			link = hyperlink.NewImplicit(in.Hyperlink.URI)
		}
		res.SetHyperlink(link)
	}
	*a = res
	return nil
}

type cellJSON struct {
	Text  string     `json:"text"`
	Attrs Attributes `json:"attrs"`
}

// MarshalJSON implements json.Marshaler. Only the text and attributes are
// written; the width is a property of the text and is re-measured on
// decode.
func (c Cell) MarshalJSON() ([]byte, error) {
	return json.Marshal(cellJSON{Text: c.Str(), Attrs: c.attrs})
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var in cellJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("decode cell: %w", err)
	}
	*c = NewGrapheme(in.Text, in.Attrs, DefaultUnicodeVersion)
	return nil
}

// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: color/color.go
// Summary: Color attribute model shared by cell storage and renderers.
// Usage: Consumed by the cell package for inline and fat color slots.

package color

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Mode discriminates the forms a color attribute can take.
type Mode uint8

const (
	// ModeDefault means "use the terminal's configured default color".
	ModeDefault Mode = iota
	// ModePalette selects one of the 256 palette entries.
	ModePalette
	// ModeRGB carries a full 24-bit color value.
	ModeRGB
)

// RGB is a 24-bit color value.
type RGB struct {
	R, G, B uint8
}

// Hex formats the color as a #rrggbb string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// Lerp blends towards other in the perceptual Lab space.
// t=0 yields the receiver, t=1 yields other.
func (c RGB) Lerp(other RGB, t float64) RGB {
	return fromColorful(c.colorful().BlendLab(other.colorful(), t))
}

// Luminance returns the relative luminance (0..1) of the color.
func (c RGB) Luminance() float64 {
	r, g, b := c.colorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Contrast returns the WCAG contrast ratio between two colors (1..21).
func (c RGB) Contrast(other RGB) float64 {
	l1 := c.Luminance()
	l2 := other.Luminance()
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// Attribute is a color reference for one cell slot: the terminal default,
// a palette index, or a full RGB value. The zero value is the default color.
type Attribute struct {
	Mode  Mode
	Index uint8 // palette index when Mode == ModePalette
	RGB   RGB   // color value when Mode == ModeRGB
}

// Default returns the "use terminal default" attribute.
func Default() Attribute {
	return Attribute{}
}

// Palette returns an attribute selecting the given palette entry.
func Palette(index uint8) Attribute {
	return Attribute{Mode: ModePalette, Index: index}
}

// FromRGB returns an attribute carrying a 24-bit color.
func FromRGB(r, g, b uint8) Attribute {
	return Attribute{Mode: ModeRGB, RGB: RGB{R: r, G: g, B: b}}
}

// IsDefault reports whether the attribute is the terminal default color.
func (a Attribute) IsDefault() bool {
	return a.Mode == ModeDefault
}

// IsInline reports whether the attribute fits the compact per-cell slot
// (default or palette index). RGB values need the fat attribute block.
func (a Attribute) IsInline() bool {
	return a.Mode != ModeRGB
}

func (a Attribute) String() string {
	switch a.Mode {
	case ModePalette:
		return "palette:" + strconv.Itoa(int(a.Index))
	case ModeRGB:
		return a.RGB.Hex()
	default:
		return "default"
	}
}

// Parse interprets the textual color forms accepted by terminal
// configuration: "default", a bare palette index, "#rgb", "#rrggbb"
// and the X resource form "rgb:RR/GG/BB".
func Parse(s string) (Attribute, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "" || strings.EqualFold(s, "default"):
		return Default(), nil
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(strings.ToLower(s), "rgb:"):
		return parseXParseColor(s[4:])
	case strings.HasPrefix(strings.ToLower(s), "palette:"):
		s = s[len("palette:"):]
		fallthrough
	default:
		idx, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			return Attribute{}, fmt.Errorf("color: unrecognized color %q", s)
		}
		return Palette(uint8(idx)), nil
	}
}

func parseHex(s string) (Attribute, error) {
	if len(s) == 4 {
		// #rgb doubles each nibble: #f2a -> #ff22aa
		s = fmt.Sprintf("#%c%c%c%c%c%c", s[1], s[1], s[2], s[2], s[3], s[3])
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Attribute{}, fmt.Errorf("color: %w", err)
	}
	r, g, b := c.RGB255()
	return FromRGB(r, g, b), nil
}

// parseXParseColor handles the RR/GG/BB body of an rgb: specification.
// Each component may be 1, 2, 3 or 4 hex digits, scaled to 8 bits.
func parseXParseColor(body string) (Attribute, error) {
	parts := strings.Split(body, "/")
	if len(parts) != 3 {
		return Attribute{}, fmt.Errorf("color: malformed rgb specification %q", body)
	}
	var comps [3]uint8
	for i, p := range parts {
		if len(p) == 0 || len(p) > 4 {
			return Attribute{}, fmt.Errorf("color: malformed rgb component %q", p)
		}
		v, err := strconv.ParseUint(p, 16, 32)
		if err != nil {
			return Attribute{}, fmt.Errorf("color: malformed rgb component %q", p)
		}
		max := uint64(1)<<(4*len(p)) - 1
		comps[i] = uint8(v * 255 / max)
	}
	return FromRGB(comps[0], comps[1], comps[2]), nil
}

// MarshalJSON emits the stable interchange form: "default" for the
// terminal default, a bare number for palette entries, "#rrggbb" for RGB.
func (a Attribute) MarshalJSON() ([]byte, error) {
	switch a.Mode {
	case ModePalette:
		return []byte(strconv.Itoa(int(a.Index))), nil
	case ModeRGB:
		return []byte(strconv.Quote(a.RGB.Hex())), nil
	default:
		return []byte(`"default"`), nil
	}
}

// UnmarshalJSON reverses MarshalJSON.
func (a *Attribute) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) > 0 && s[0] == '"' {
		unq, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("color: %w", err)
		}
		parsed, err := Parse(unq)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	}
	idx, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return fmt.Errorf("color: palette index out of range: %s", s)
	}
	*a = Palette(uint8(idx))
	return nil
}

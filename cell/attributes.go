// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cell/attributes.go
// Summary: Packed per-cell style attributes with a lazy fat block.
// Usage: Mutated by the escape interpreter, read by renderers.

package cell

import (
	"sort"
	"strings"

	"github.com/framegrace/texelcell/color"
	"github.com/framegrace/texelcell/graphics"
	"github.com/framegrace/texelcell/hyperlink"
)

// Intensity describes a cell's boldness. Terminals usually render Bold
// with a heavier font or brighter color, and Half as a dimmer variant.
type Intensity uint16

const (
	IntensityNormal Intensity = iota
	IntensityBold
	IntensityHalf
)

func (i Intensity) String() string {
	switch i {
	case IntensityBold:
		return "bold"
	case IntensityHalf:
		return "half"
	default:
		return "normal"
	}
}

// Underline selects the underline rendition.
type Underline uint16

const (
	UnderlineNone Underline = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
)

func (u Underline) String() string {
	switch u {
	case UnderlineSingle:
		return "single"
	case UnderlineDouble:
		return "double"
	case UnderlineCurly:
		return "curly"
	case UnderlineDotted:
		return "dotted"
	case UnderlineDashed:
		return "dashed"
	default:
		return "none"
	}
}

// Blink selects how urgently a cell annoys the user.
type Blink uint16

const (
	BlinkNone Blink = iota
	BlinkSlow
	BlinkRapid
)

func (b Blink) String() string {
	switch b {
	case BlinkSlow:
		return "slow"
	case BlinkRapid:
		return "rapid"
	default:
		return "none"
	}
}

// SemanticType categorizes what a cell's content is: program output (the
// default), user input, or prompt chrome drawn by the shell.
type SemanticType uint16

const (
	SemanticOutput SemanticType = iota
	SemanticInput
	SemanticPrompt
)

func (s SemanticType) String() string {
	switch s {
	case SemanticInput:
		return "input"
	case SemanticPrompt:
		return "prompt"
	default:
		return "output"
	}
}

// smallColor is the inline per-cell color slot: terminal default or a
// palette index. Any other color form spills to the fat block.
type smallColor struct {
	index     uint8
	isPalette bool
}

func (c smallColor) attribute() color.Attribute {
	if c.isPalette {
		return color.Palette(c.index)
	}
	return color.Default()
}

// Bitfield layout. Fields are packed with no padding bits between them;
// renderers treat the whole word as an opaque style fingerprint.
const (
	intensityShift = 0
	intensityMask  = 0b11
	underlineShift = 2
	underlineMask  = 0b111
	blinkShift     = 5
	blinkMask      = 0b11
	italicBit      = 7
	reverseBit     = 8
	strikeBit      = 9
	invisibleBit   = 10
	wrappedBit     = 11
	overlineBit    = 12
	semanticShift  = 13
	semanticMask   = 0b11
)

// Attributes holds the style state for one cell. The common attributes
// live in a single packed word plus two inline color slots; rarely used
// extras (hyperlink, image placements, underline color, RGB colors) spill
// to a lazily allocated fat block so that plain colored text stays
// allocation free.
//
// The zero value is the blank style. Setters return the receiver so
// configuration can be chained. Copy with Clone: a plain struct copy of
// an Attributes holding fat extras aliases the fat block.
type Attributes struct {
	bits uint16
	fg   smallColor
	bg   smallColor
	fat  *fatAttributes
}

// fatAttributes exists iff at least one of its fields is non-default.
// Every public mutator re-establishes that invariant on exit, releasing
// the block as soon as the last field returns to its default.
type fatAttributes struct {
	hyperlink      *hyperlink.Hyperlink
	images         []graphics.Placement
	underlineColor color.Attribute
	foreground     color.Attribute
	background     color.Attribute
}

func (f *fatAttributes) empty() bool {
	return f.hyperlink == nil &&
		len(f.images) == 0 &&
		f.underlineColor.IsDefault() &&
		f.foreground.IsDefault() &&
		f.background.IsDefault()
}

// BlankAttributes returns the default style: no flags, default colors.
func BlankAttributes() Attributes {
	return Attributes{}
}

func (a *Attributes) flag(bit uint16) bool {
	return a.bits&(1<<bit) != 0
}

func (a *Attributes) setFlag(bit uint16, on bool) *Attributes {
	if on {
		a.bits |= 1 << bit
	} else {
		a.bits &^= 1 << bit
	}
	return a
}

func (a *Attributes) field(shift, mask uint16) uint16 {
	return (a.bits >> shift) & mask
}

func (a *Attributes) setField(shift, mask, value uint16) *Attributes {
	a.bits = a.bits&^(mask<<shift) | (value&mask)<<shift
	return a
}

// Intensity returns the cell's intensity.
func (a *Attributes) Intensity() Intensity {
	return Intensity(a.field(intensityShift, intensityMask))
}

// SetIntensity stores the intensity, leaving every other bit untouched.
func (a *Attributes) SetIntensity(v Intensity) *Attributes {
	return a.setField(intensityShift, intensityMask, uint16(v))
}

// Underline returns the underline rendition.
func (a *Attributes) Underline() Underline {
	return Underline(a.field(underlineShift, underlineMask))
}

// SetUnderline stores the underline rendition.
func (a *Attributes) SetUnderline(v Underline) *Attributes {
	return a.setField(underlineShift, underlineMask, uint16(v))
}

// Blink returns the blink mode.
func (a *Attributes) Blink() Blink {
	return Blink(a.field(blinkShift, blinkMask))
}

// SetBlink stores the blink mode.
func (a *Attributes) SetBlink(v Blink) *Attributes {
	return a.setField(blinkShift, blinkMask, uint16(v))
}

// Italic reports the italic flag.
func (a *Attributes) Italic() bool { return a.flag(italicBit) }

// SetItalic stores the italic flag.
func (a *Attributes) SetItalic(on bool) *Attributes { return a.setFlag(italicBit, on) }

// Reverse reports the reverse-video flag.
func (a *Attributes) Reverse() bool { return a.flag(reverseBit) }

// SetReverse stores the reverse-video flag.
func (a *Attributes) SetReverse(on bool) *Attributes { return a.setFlag(reverseBit, on) }

// Strikethrough reports the strikethrough flag.
func (a *Attributes) Strikethrough() bool { return a.flag(strikeBit) }

// SetStrikethrough stores the strikethrough flag.
func (a *Attributes) SetStrikethrough(on bool) *Attributes { return a.setFlag(strikeBit, on) }

// Invisible reports the concealed flag.
func (a *Attributes) Invisible() bool { return a.flag(invisibleBit) }

// SetInvisible stores the concealed flag.
func (a *Attributes) SetInvisible(on bool) *Attributes { return a.setFlag(invisibleBit, on) }

// Wrapped reports whether this cell ends a line that soft-wraps onward.
func (a *Attributes) Wrapped() bool { return a.flag(wrappedBit) }

// SetWrapped stores the soft-wrap flag.
func (a *Attributes) SetWrapped(on bool) *Attributes { return a.setFlag(wrappedBit, on) }

// Overline reports the overline flag.
func (a *Attributes) Overline() bool { return a.flag(overlineBit) }

// SetOverline stores the overline flag.
func (a *Attributes) SetOverline(on bool) *Attributes { return a.setFlag(overlineBit, on) }

// SemanticType returns the cell's semantic classification.
func (a *Attributes) SemanticType() SemanticType {
	return SemanticType(a.field(semanticShift, semanticMask))
}

// SetSemanticType stores the semantic classification.
func (a *Attributes) SetSemanticType(v SemanticType) *Attributes {
	return a.setField(semanticShift, semanticMask, uint16(v))
}

// AttributeBitsEqual reports whether the packed style words of both
// records are identical. Renderers use it as a cheap style-run boundary
// test; it deliberately ignores colors and fat extras, so it is not full
// equality.
func (a *Attributes) AttributeBitsEqual(other *Attributes) bool {
	return a.bits == other.bits
}

func (a *Attributes) allocFat() *fatAttributes {
	if a.fat == nil {
		a.fat = &fatAttributes{}
	}
	return a.fat
}

func (a *Attributes) releaseFatIfEmpty() {
	if a.fat != nil && a.fat.empty() {
		a.fat = nil
	}
}

// SetForeground stores the foreground color. Inline-representable colors
// (default, palette) land in the compact slot and clear any fat copy;
// RGB colors allocate the fat block and reset the inline slot.
func (a *Attributes) SetForeground(c color.Attribute) *Attributes {
	if c.IsInline() {
		a.fg = smallColor{index: c.Index, isPalette: c.Mode == color.ModePalette}
		if a.fat != nil {
			a.fat.foreground = color.Default()
		}
		a.releaseFatIfEmpty()
		return a
	}
	a.fg = smallColor{}
	a.allocFat().foreground = c
	return a
}

// Foreground returns the effective foreground color.
func (a *Attributes) Foreground() color.Attribute {
	if a.fat != nil && !a.fat.foreground.IsDefault() {
		return a.fat.foreground
	}
	return a.fg.attribute()
}

// SetBackground stores the background color; same spill rules as
// SetForeground.
func (a *Attributes) SetBackground(c color.Attribute) *Attributes {
	if c.IsInline() {
		a.bg = smallColor{index: c.Index, isPalette: c.Mode == color.ModePalette}
		if a.fat != nil {
			a.fat.background = color.Default()
		}
		a.releaseFatIfEmpty()
		return a
	}
	a.bg = smallColor{}
	a.allocFat().background = c
	return a
}

// Background returns the effective background color.
func (a *Attributes) Background() color.Attribute {
	if a.fat != nil && !a.fat.background.IsDefault() {
		return a.fat.background
	}
	return a.bg.attribute()
}

// SetUnderlineColor stores the underline color. The default means "use
// the foreground color" and keeps the record fat-free.
func (a *Attributes) SetUnderlineColor(c color.Attribute) *Attributes {
	if c.IsDefault() && a.fat == nil {
		return a
	}
	a.allocFat().underlineColor = c
	a.releaseFatIfEmpty()
	return a
}

// UnderlineColor returns the underline color; default means the renderer
// should fall back to the foreground color.
func (a *Attributes) UnderlineColor() color.Attribute {
	if a.fat != nil {
		return a.fat.underlineColor
	}
	return color.Default()
}

// SetHyperlink attaches a shared hyperlink, or detaches with nil.
func (a *Attributes) SetHyperlink(link *hyperlink.Hyperlink) *Attributes {
	if link == nil && a.fat == nil {
		return a
	}
	a.allocFat().hyperlink = link
	a.releaseFatIfEmpty()
	return a
}

// Hyperlink returns the attached hyperlink, nil if none.
func (a *Attributes) Hyperlink() *hyperlink.Hyperlink {
	if a.fat == nil {
		return nil
	}
	return a.fat.hyperlink
}

// SetImage replaces any attached images with a single placement.
func (a *Attributes) SetImage(p graphics.Placement) *Attributes {
	a.allocFat().images = []graphics.Placement{p}
	return a
}

// AttachImage adds a placement, keeping the list ordered by ascending
// z-index. Placements with equal z-index stay in insertion order, the
// newest last, so later attachments draw above earlier ones at the same
// layer.
func (a *Attributes) AttachImage(p graphics.Placement) *Attributes {
	fat := a.allocFat()
	idx := sort.Search(len(fat.images), func(i int) bool {
		return fat.images[i].ZIndex > p.ZIndex
	})
	fat.images = append(fat.images, graphics.Placement{})
	copy(fat.images[idx+1:], fat.images[idx:])
	fat.images[idx] = p
	return a
}

// DetachImageWithPlacement removes every placement matching the id pair.
func (a *Attributes) DetachImageWithPlacement(imageID uint32, placementID *uint32) *Attributes {
	if a.fat != nil {
		kept := a.fat.images[:0]
		for i := range a.fat.images {
			if !a.fat.images[i].MatchesPlacement(imageID, placementID) {
				kept = append(kept, a.fat.images[i])
			}
		}
		a.fat.images = kept
		if len(a.fat.images) == 0 {
			a.fat.images = nil
		}
	}
	a.releaseFatIfEmpty()
	return a
}

// ClearImages removes every attached placement.
func (a *Attributes) ClearImages() *Attributes {
	if a.fat != nil {
		a.fat.images = nil
	}
	a.releaseFatIfEmpty()
	return a
}

// Images returns the attached placements in z-order, nil when there are
// none; it never returns an empty non-nil slice. The slice is a copy, but
// the image data inside stays shared.
func (a *Attributes) Images() []graphics.Placement {
	if a.fat == nil || len(a.fat.images) == 0 {
		return nil
	}
	out := make([]graphics.Placement, len(a.fat.images))
	copy(out, a.fat.images)
	return out
}

// Clone returns an independent deep copy. The hyperlink stays shared (by
// design, many cells reference one link) and so does image pixel data,
// but the fat block and placement list are copied, never aliased.
func (a *Attributes) Clone() Attributes {
	res := Attributes{bits: a.bits, fg: a.fg, bg: a.bg}
	if a.fat != nil {
		fat := &fatAttributes{
			hyperlink:      a.fat.hyperlink,
			underlineColor: a.fat.underlineColor,
			foreground:     a.fat.foreground,
			background:     a.fat.background,
		}
		if len(a.fat.images) > 0 {
			fat.images = make([]graphics.Placement, len(a.fat.images))
			copy(fat.images, a.fat.images)
		}
		res.fat = fat
	}
	return res
}

// CloneSGROnly copies only the state SGR sequences control: the packed
// bits plus foreground, background and underline colors. Hyperlinks and
// image placements are dropped, and the semantic type resets to Output so
// that cells synthesized for an erase are deterministically plain.
func (a *Attributes) CloneSGROnly() Attributes {
	res := Attributes{bits: a.bits, fg: a.fg, bg: a.bg}
	if a.fat != nil && (!a.fat.foreground.IsDefault() || !a.fat.background.IsDefault()) {
		fat := res.allocFat()
		fat.foreground = a.fat.foreground
		fat.background = a.fat.background
	}
	res.SetSemanticType(SemanticOutput)
	res.SetUnderlineColor(a.UnderlineColor())
	return res
}

// Equal is full equality: bits, colors and fat contents. Hyperlinks
// compare by content, image placements by record value (shared data
// compares by pointer identity).
func (a *Attributes) Equal(other *Attributes) bool {
	if a.bits != other.bits || a.fg != other.fg || a.bg != other.bg {
		return false
	}
	af, bf := a.fat, other.fat
	if (af == nil) != (bf == nil) {
		return false
	}
	if af == nil {
		return true
	}
	if !af.hyperlink.Equal(bf.hyperlink) ||
		af.underlineColor != bf.underlineColor ||
		af.foreground != bf.foreground ||
		af.background != bf.background ||
		len(af.images) != len(bf.images) {
		return false
	}
	for i := range af.images {
		if af.images[i] != bf.images[i] {
			return false
		}
	}
	return true
}

func (a *Attributes) String() string {
	var parts []string
	if v := a.Intensity(); v != IntensityNormal {
		parts = append(parts, v.String())
	}
	if v := a.Underline(); v != UnderlineNone {
		parts = append(parts, "underline:"+v.String())
	}
	if v := a.Blink(); v != BlinkNone {
		parts = append(parts, "blink:"+v.String())
	}
	for _, f := range []struct {
		name string
		on   bool
	}{
		{"italic", a.Italic()},
		{"reverse", a.Reverse()},
		{"strikethrough", a.Strikethrough()},
		{"invisible", a.Invisible()},
		{"wrapped", a.Wrapped()},
		{"overline", a.Overline()},
	} {
		if f.on {
			parts = append(parts, f.name)
		}
	}
	if v := a.SemanticType(); v != SemanticOutput {
		parts = append(parts, v.String())
	}
	if len(parts) == 0 {
		return "plain"
	}
	return strings.Join(parts, "|")
}

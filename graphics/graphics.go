// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: graphics/graphics.go
// Summary: Image data and per-cell placement records for graphics protocols.
// Usage: Cells attach Placement values; pixel data is shared immutably.

package graphics

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
)

// Data is an immutable blob of encoded image data (PNG, JPEG, ...) shared
// by every placement that shows some region of it. Identity is the content
// hash, so retransmitted images dedupe naturally.
type Data struct {
	raw  []byte
	hash [sha256.Size]byte
}

// NewData wraps encoded image bytes. The caller must not mutate raw after
// handing it over.
func NewData(raw []byte) *Data {
	return &Data{raw: raw, hash: sha256.Sum256(raw)}
}

// Raw returns the encoded bytes. Treat as read-only.
func (d *Data) Raw() []byte { return d.raw }

// Hash returns the content hash identifying this image.
func (d *Data) Hash() [sha256.Size]byte { return d.hash }

// Len returns the encoded size in bytes.
func (d *Data) Len() int { return len(d.raw) }

// Dimensions decodes just the image header and reports pixel dimensions.
func (d *Data) Dimensions() (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(d.raw))
	if err != nil {
		return 0, 0, fmt.Errorf("graphics: decode image header: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

// TextureCoordinate addresses a point in an image in normalized texture
// space: (0,0) is the top left, (1,1) the bottom right.
type TextureCoordinate struct {
	X, Y float32
}

// Placement records that one cell displays a region of an image. A wide
// image spans many cells, each holding its own placement with adjacent
// texture sub-rectangles. Placements are owned by their cell; cloning a
// cell copies the placement record while sharing the underlying Data.
type Placement struct {
	// TopLeft and BottomRight bound the image region this cell shows.
	TopLeft     TextureCoordinate
	BottomRight TextureCoordinate
	// Data is the shared image content.
	Data *Data
	// ZIndex stacks overlapping placements; higher draws above lower.
	// Negative values draw beneath the cell text.
	ZIndex int32
	// Padding in pixels applied when compositing into the cell quad.
	PaddingLeft, PaddingTop, PaddingRight, PaddingBottom uint16
	// ImageID is the protocol-assigned image number (kitty i=).
	ImageID uint32
	// PlacementID is the protocol-assigned placement number (kitty p=),
	// nil when the protocol did not assign one.
	PlacementID *uint32
}

// NewPlacement builds a placement covering the given region of data.
func NewPlacement(data *Data, topLeft, bottomRight TextureCoordinate) Placement {
	return Placement{
		TopLeft:     topLeft,
		BottomRight: bottomRight,
		Data:        data,
	}
}

// MatchesPlacement reports whether this placement was created for the
// given image and placement ids; used to process targeted delete
// commands. A nil placementID only matches placements without one.
func (p *Placement) MatchesPlacement(imageID uint32, placementID *uint32) bool {
	if p.ImageID != imageID {
		return false
	}
	if p.PlacementID == nil || placementID == nil {
		return p.PlacementID == nil && placementID == nil
	}
	return *p.PlacementID == *placementID
}

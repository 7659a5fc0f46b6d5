// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: hyperlink/hyperlink.go
// Summary: Shared hyperlink objects attached to display cells (OSC 8 model).
// Usage: Cells reference hyperlinks by pointer; many cells may share one.

package hyperlink

// Hyperlink is an immutable link target. The same *Hyperlink is shared by
// every cell that the link spans; it lives for as long as any referencing
// cell does.
type Hyperlink struct {
	uri      string
	id       string
	implicit bool
}

// New creates an explicit hyperlink, as set by an application through the
// OSC 8 escape. id may be empty; applications use it to stitch together
// non-contiguous regions of the same logical link.
func New(uri, id string) *Hyperlink {
	return &Hyperlink{uri: uri, id: id}
}

// NewImplicit creates a hyperlink synthesized by rule matching over plain
// output text rather than set explicitly by an application.
func NewImplicit(uri string) *Hyperlink {
	return &Hyperlink{uri: uri, implicit: true}
}

// URI returns the link target.
func (h *Hyperlink) URI() string { return h.uri }

// ID returns the application-supplied link id, empty if none.
func (h *Hyperlink) ID() string { return h.id }

// IsImplicit reports whether the link came from rule matching. Implicit
// links are re-derived on redraw, so they must not suppress an explicit
// link occupying the same cells.
func (h *Hyperlink) IsImplicit() bool { return h.implicit }

func (h *Hyperlink) String() string { return h.uri }

// Equal compares link content. Either side may be nil.
func (h *Hyperlink) Equal(other *Hyperlink) bool {
	if h == nil || other == nil {
		return h == other
	}
	return h.uri == other.uri && h.id == other.id && h.implicit == other.implicit
}

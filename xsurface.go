package sawa

import (
	"math"

	"deedles.dev/ximage/geom"
)

// An XSurface is the parsed event and request model of a single
// legacy-protocol window. The protocol implementation that produces
// these events lives outside of this package; the core only consumes
// them and never touches the wire.
//
// All coordinates reported by and sent to an XSurface are
// layout-relative.
type XSurface interface {
	// Events that exist for the whole life of the surface.
	OnDestroy(func()) *Listener
	OnMap(func()) *Listener
	OnUnmap(func()) *Listener
	OnRequestConfigure(func(geom.Rect[int])) *Listener
	OnSetOverrideRedirect(func(bool)) *Listener

	// Events that are only meaningful while the surface is mapped.
	OnCommit(func()) *Listener
	OnSetTitle(func()) *Listener
	OnSetClass(func()) *Listener
	OnRequestFullscreen(func(bool)) *Listener
	OnRequestMinimize(func(bool)) *Listener

	// Geometry is the surface's own idea of its position and size.
	Geometry() geom.Rect[int]
	OverrideRedirect() bool
	Mapped() bool
	Title() string
	Class() string
	// SizeHints returns nil if the client never declared any.
	SizeHints() *SizeHints
	WantsFocus() bool
	ShouldFloat() bool
	HasParent() bool
	// Surface returns nil until the first buffer is attached.
	Surface() *Surface

	Configure(geom.Rect[int])
	Activate(bool)
	// Restack raises the surface to the top of its local stacking order.
	Restack()
	SetFullscreen(bool)
	SetMinimized(bool)
	Close()
	// PostNoMemory tells the client that the compositor is out of
	// resources for it.
	PostNoMemory()
}

// A Surface is the committed buffer state attached to a mapped window.
// Compositing happens elsewhere; the core only needs the extent.
type Surface struct {
	Size geom.Point[int]
}

// SizeHints are the size bounds a client declared for its window. A
// zero maximum on an axis means the client left that axis open.
type SizeHints struct {
	MinWidth, MinHeight int
	MaxWidth, MaxHeight int
}

// Unbounded is the limit used on a constraint axis that has none.
const Unbounded = math.MaxInt32

// Constraints are size hints normalized for layout use: minimums are
// at least 1 and open maximums are Unbounded rather than zero.
type Constraints struct {
	MinWidth, MinHeight int
	MaxWidth, MaxHeight int
}

// Fixed reports whether the constraints pin the size on either axis.
func (c Constraints) Fixed() bool {
	return (c.MinWidth == c.MaxWidth) || (c.MinHeight == c.MaxHeight)
}

package sawa

import (
	"deedles.dev/sawa/internal/util"
	"deedles.dev/ximage/geom"
	"golang.org/x/exp/slices"
)

// An XUnmanaged binds an override-redirect legacy surface. Unmanaged
// surfaces position, size, and stack themselves; the compositor only
// keeps them in a global most-recently-mapped-first order and routes
// focus to the ones that ask for it.
type XUnmanaged struct {
	server *Server
	xs     XSurface

	onDestroyListener             *Listener
	onMapListener                 *Listener
	onUnmapListener               *Listener
	onRequestConfigureListener    *Listener
	onSetOverrideRedirectListener *Listener

	// Registered on map, removed on unmap.
	onCommitListener *Listener
}

// NewXUnmanaged wraps an override-redirect legacy surface.
func NewXUnmanaged(server *Server, xs XSurface) *XUnmanaged {
	u := XUnmanaged{
		server: server,
		xs:     xs,
	}

	u.onDestroyListener = xs.OnDestroy(u.handleDestroy)
	u.onMapListener = xs.OnMap(u.handleMap)
	u.onUnmapListener = xs.OnUnmap(u.handleUnmap)
	u.onRequestConfigureListener = xs.OnRequestConfigure(u.handleRequestConfigure)
	u.onSetOverrideRedirectListener = xs.OnSetOverrideRedirect(u.handleSetOverrideRedirect)

	return &u
}

// XSurface returns the surface behind u.
func (u *XUnmanaged) XSurface() XSurface {
	return u.xs
}

// handleRequestConfigure echoes the request back verbatim; unmanaged
// surfaces fully control their own geometry.
func (u *XUnmanaged) handleRequestConfigure(r geom.Rect[int]) {
	u.xs.Configure(r)
}

func (u *XUnmanaged) handleMap() {
	u.server.unmanaged = slices.Insert(u.server.unmanaged, 0, u)
	u.onCommitListener = u.xs.OnCommit(u.handleCommit)

	if u.xs.WantsFocus() {
		if seat := u.server.DefaultSeat(); seat != nil {
			seat.SetFocusRaw(u)
		}
	}
}

func (u *XUnmanaged) handleUnmap() {
	u.server.unmanaged = util.Remove(u.server.unmanaged, u)
	u.onCommitListener.Destroy()

	for _, seat := range u.server.seats {
		if seat.raw == u {
			seat.ClearFocus()
		}
	}
	u.server.StartTransaction()
}

func (u *XUnmanaged) handleDestroy() {
	u.onDestroyListener.Destroy()
	u.onMapListener.Destroy()
	u.onUnmapListener.Destroy()
	u.onRequestConfigureListener.Destroy()
	u.onSetOverrideRedirectListener.Destroy()
	u.onCommitListener.Destroy()
}

// handleSetOverrideRedirect reclassifies the surface as managed on the
// currently focused output. Mirror of the managed adapter's swap: the
// surface is never without an adapter, and a mapped surface stays
// mapped across the transition.
func (u *XUnmanaged) handleSetOverrideRedirect(overrideRedirect bool) {
	u.server.assert(!overrideRedirect, "unmanaged surface reclassified with override-redirect")

	server, xs := u.server, u.xs
	mapped := xs.Mapped()
	if mapped {
		u.handleUnmap()
	}
	u.handleDestroy()

	x := NewXView(server, server.focusedOutput(), xs)
	if mapped {
		x.handleMap()
	}
}

// handleCommit damages every output. Nothing tracks which outputs an
// unmanaged surface actually overlaps.
func (u *XUnmanaged) handleCommit() {
	u.server.damageAll()
}

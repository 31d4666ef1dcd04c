package sawa

import (
	"deedles.dev/sawa/internal/util"
	"deedles.dev/ximage/geom"
)

// ViewState is the geometry and flags of a view at one point in its
// double-buffered life. The box is relative to the view's output.
type ViewState struct {
	Box        geom.Rect[int]
	Float      bool
	Fullscreen bool
}

// A View is one window participating in the compositor's tiling and
// focus policy. Handlers write to Pending; a transaction later
// promotes Pending to Current.
//
// A view is backed by exactly one ViewBackend at a time and is
// destroyed when its backing surface is destroyed.
type View struct {
	Server *Server
	Output *Output

	Pending ViewState
	Current ViewState

	// SurfaceBox caches the extent of the most recently committed
	// buffer, anchored at the origin.
	SurfaceBox geom.Rect[int]

	surface *Surface
	backend ViewBackend
	foreign *ForeignToplevel

	mapped    bool
	destroyed bool
}

// A ViewBackend drives the protocol-specific half of a view: sending
// configures, activation, and fullscreen state to the client that owns
// the backing surface.
type ViewBackend interface {
	// NeedsConfigure reports whether the surface's reported geometry
	// differs from the view's pending box.
	NeedsConfigure() bool
	Configure()
	SetActivated(bool)
	SetFullscreen(bool)
	Constraints() Constraints
	Title() string
	AppID() string
	Close()
}

// NewView registers a view on server backed by backend. The view
// starts unmapped.
func (server *Server) NewView(out *Output, backend ViewBackend) *View {
	view := View{
		Server:  server,
		Output:  out,
		backend: backend,
	}
	server.views = append(server.views, &view)
	return &view
}

func (view *View) Mapped() bool {
	return view.mapped
}

func (view *View) Destroyed() bool {
	return view.destroyed
}

// Surface returns the buffer state backing the view, or nil while the
// view is unmapped.
func (view *View) Surface() *Surface {
	return view.surface
}

func (view *View) Backend() ViewBackend {
	return view.backend
}

// Foreign returns the view's toplevel-management handle, or nil while
// the view is unmapped.
func (view *View) Foreign() *ForeignToplevel {
	return view.foreign
}

// Map transitions the view to mapped and exports it through the
// toplevel-management protocol. It returns ErrNoMemory if the server's
// mapped-view budget is exhausted.
func (view *View) Map() error {
	server := view.Server
	server.assert(!view.destroyed, "map of a destroyed view")
	server.assert(!view.mapped, "map of a mapped view")

	if server.MaxMapped > 0 && server.countMapped() >= server.MaxMapped {
		return ErrNoMemory
	}

	view.mapped = true
	view.foreign = &ForeignToplevel{
		server: server,
		view:   view,
		Title:  view.backend.Title(),
		AppID:  view.backend.AppID(),
	}
	view.Output.Damage.AddWhole()
	server.StartTransaction()
	return nil
}

// Unmap transitions the view to unmapped, dropping any seat focus it
// holds and retiring its toplevel-management handle.
func (view *View) Unmap() {
	server := view.Server
	server.assert(view.mapped, "unmap of an unmapped view")

	view.mapped = false
	view.surface = nil
	if view.foreign != nil {
		view.foreign.view = nil
		view.foreign = nil
	}
	for _, seat := range server.seats {
		if seat.focused == view {
			seat.ClearFocus()
		}
	}
	view.Output.Damage.AddWhole()
	server.StartTransaction()
}

// Destroy removes the view from the server. The view must already be
// unmapped. Destroying a destroyed view does nothing.
func (view *View) Destroy() {
	if view.destroyed {
		return
	}
	server := view.Server
	server.assert(!view.mapped, "destroy of a mapped view")

	view.destroyed = true
	server.views = util.Remove(server.views, view)
}

// ApplyPending pushes the pending state to the client and promotes it
// to current.
func (view *View) ApplyPending() {
	if view.backend.NeedsConfigure() {
		view.backend.Configure()
	}
	if view.Current.Fullscreen != view.Pending.Fullscreen {
		view.backend.SetFullscreen(view.Pending.Fullscreen)
	}
	view.Current = view.Pending
	view.Output.Damage.AddWhole()
	view.Server.StartTransaction()
}

// NotifyTitle republishes the backend's title through the
// toplevel-management protocol.
func (view *View) NotifyTitle() {
	if view.foreign != nil {
		view.foreign.Title = view.backend.Title()
	}
}

// NotifyAppID republishes the backend's application id through the
// toplevel-management protocol.
func (view *View) NotifyAppID() {
	if view.foreign != nil {
		view.foreign.AppID = view.backend.AppID()
	}
}

package sawa

import "golang.org/x/exp/slices"

// A Seat holds one user's keyboard focus. Focus is either a view, a
// raw unmanaged surface, or nothing.
type Seat struct {
	Server *Server
	Name   string

	// FocusedOutput is where newly managed surfaces land.
	FocusedOutput *Output

	focused *View
	raw     *XUnmanaged
}

// NewSeat registers a seat on server.
func (server *Server) NewSeat(name string) *Seat {
	seat := Seat{
		Server: server,
		Name:   name,
	}
	if len(server.outputs) > 0 {
		seat.FocusedOutput = server.outputs[0]
	}
	server.seats = append(server.seats, &seat)
	return &seat
}

// FocusedView returns the focused view, or nil if focus is raw or
// clear.
func (seat *Seat) FocusedView() *View {
	return seat.focused
}

// RawFocus returns the unmanaged surface holding focus, if any.
func (seat *Seat) RawFocus() *XUnmanaged {
	return seat.raw
}

// Focus moves keyboard focus to view, deactivating whatever held it
// before. Focusing an unmapped or destroyed view does nothing, and
// nil clears focus.
func (seat *Seat) Focus(view *View) {
	if view == nil {
		seat.ClearFocus()
		return
	}
	if view.destroyed || !view.mapped {
		return
	}
	if seat.focused == view {
		return
	}

	seat.dropFocus()
	seat.focused = view
	if view.Output != nil {
		seat.FocusedOutput = view.Output
	}
	view.backend.SetActivated(true)
	seat.Server.raiseView(view)
}

// SetFocusRaw hands keyboard focus directly to an unmanaged surface,
// bypassing view focus policy entirely.
func (seat *Seat) SetFocusRaw(u *XUnmanaged) {
	seat.dropFocus()
	seat.raw = u
}

// ClearFocus leaves the seat with no focus at all.
func (seat *Seat) ClearFocus() {
	seat.dropFocus()
}

func (seat *Seat) dropFocus() {
	if seat.focused != nil {
		seat.focused.backend.SetActivated(false)
		seat.focused = nil
	}
	seat.raw = nil
}

// raiseView moves view to the front of the server's focus order.
func (server *Server) raiseView(view *View) {
	i := slices.Index(server.views, view)
	if i < 0 {
		return
	}
	server.views = slices.Delete(server.views, i, i+1)
	server.views = append(server.views, view)
}

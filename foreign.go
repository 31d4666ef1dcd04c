package sawa

// A ForeignToplevel is the handle exported for one mapped view through
// an external toplevel-management protocol, letting third parties
// request activation, fullscreen, and closing. The handle resolves its
// view at request time; once the view is gone every request is
// ignored.
type ForeignToplevel struct {
	server *Server
	view   *View

	Title string
	AppID string
}

// View returns the view behind the handle, or nil once it has gone
// away.
func (f *ForeignToplevel) View() *View {
	return f.view
}

// Activate focuses the handle's view on seat and requests a
// transaction. It does not switch outputs or tags; the caller is
// responsible for the view already being visible.
func (f *ForeignToplevel) Activate(seat *Seat) {
	if f.view == nil {
		return
	}
	seat.Focus(f.view)
	f.server.StartTransaction()
}

// SetFullscreen updates the view's pending fullscreen state, applying
// it only if the value actually changed.
func (f *ForeignToplevel) SetFullscreen(fullscreen bool) {
	if f.view == nil {
		return
	}
	if f.view.Pending.Fullscreen == fullscreen {
		return
	}
	f.view.Pending.Fullscreen = fullscreen
	f.view.ApplyPending()
}

// Close asks the view's client to close the window.
func (f *ForeignToplevel) Close() {
	if f.view == nil {
		return
	}
	f.view.backend.Close()
}

package sawa

import (
	"deedles.dev/ximage/geom"
	"go.uber.org/zap"
)

// An XView binds one managed legacy surface to a View. It owns every
// event subscription on the surface and implements the view's
// ViewBackend.
type XView struct {
	server *Server
	view   *View
	xs     XSurface

	// lastSetFullscreen mirrors the fullscreen state most recently
	// sent to the client. The protocol layer flips the surface's own
	// fullscreen attribute as soon as the client requests it, before
	// the pending state is applied, so the surface can't be trusted
	// to reflect what the compositor last told it.
	lastSetFullscreen bool

	onDestroyListener             *Listener
	onMapListener                 *Listener
	onUnmapListener               *Listener
	onRequestConfigureListener    *Listener
	onSetOverrideRedirectListener *Listener

	// Registered on map, removed on unmap.
	onCommitListener            *Listener
	onSetTitleListener          *Listener
	onSetClassListener          *Listener
	onRequestFullscreenListener *Listener
	onRequestMinimizeListener   *Listener
}

// NewXView wraps a managed legacy surface in a View placed on out.
func NewXView(server *Server, out *Output, xs XSurface) *XView {
	x := XView{
		server: server,
		xs:     xs,
	}
	x.view = server.NewView(out, &x)

	x.onDestroyListener = xs.OnDestroy(x.handleDestroy)
	x.onMapListener = xs.OnMap(x.handleMap)
	x.onUnmapListener = xs.OnUnmap(x.handleUnmap)
	x.onRequestConfigureListener = xs.OnRequestConfigure(x.handleRequestConfigure)
	x.onSetOverrideRedirectListener = xs.OnSetOverrideRedirect(x.handleSetOverrideRedirect)

	return &x
}

// View returns the view backed by x, or nil once x has been torn
// down.
func (x *XView) View() *View {
	return x.view
}

// NeedsConfigure reports whether the surface's reported geometry
// differs from the view's pending box translated into layout
// coordinates.
func (x *XView) NeedsConfigure() bool {
	return x.xs.Geometry() != x.pendingLayoutBox()
}

// Configure sends the pending box to the surface. Legacy surfaces
// never acknowledge configures, so no serial is tracked.
func (x *XView) Configure() {
	x.xs.Configure(x.pendingLayoutBox())
}

func (x *XView) pendingLayoutBox() geom.Rect[int] {
	return x.view.Pending.Box.Add(x.view.Output.LayoutBox.Min)
}

func (x *XView) SetActivated(active bool) {
	if !active {
		x.xs.Activate(false)
		return
	}
	// The surface may have minimized itself in the meantime; see
	// handleRequestMinimize.
	x.xs.SetMinimized(false)
	x.xs.Activate(true)
	x.xs.Restack()
}

func (x *XView) SetFullscreen(fullscreen bool) {
	x.lastSetFullscreen = fullscreen
	x.xs.SetFullscreen(fullscreen)
}

// Constraints normalizes the surface's size hints. Absent hints leave
// the size completely free, and a zero maximum means the client never
// set one.
func (x *XView) Constraints() Constraints {
	hints := x.xs.SizeHints()
	if hints == nil {
		return Constraints{
			MinWidth:  1,
			MinHeight: 1,
			MaxWidth:  Unbounded,
			MaxHeight: Unbounded,
		}
	}

	c := Constraints{
		MinWidth:  max(hints.MinWidth, 1),
		MinHeight: max(hints.MinHeight, 1),
		MaxWidth:  hints.MaxWidth,
		MaxHeight: hints.MaxHeight,
	}
	if c.MaxWidth == 0 {
		c.MaxWidth = Unbounded
	}
	if c.MaxHeight == 0 {
		c.MaxHeight = Unbounded
	}
	return c
}

func (x *XView) Title() string {
	return x.xs.Title()
}

func (x *XView) AppID() string {
	return x.xs.Class()
}

func (x *XView) Close() {
	x.xs.Close()
}

func (x *XView) handleMap() {
	xs := x.xs
	x.onCommitListener = xs.OnCommit(x.handleCommit)
	x.onSetTitleListener = xs.OnSetTitle(x.handleSetTitle)
	x.onSetClassListener = xs.OnSetClass(x.handleSetClass)
	x.onRequestFullscreenListener = xs.OnRequestFullscreen(x.handleRequestFullscreen)
	x.onRequestMinimizeListener = xs.OnRequestMinimize(x.handleRequestMinimize)

	view := x.view
	view.surface = xs.Surface()
	if view.surface != nil {
		view.SurfaceBox = geom.Rt(0, 0, view.surface.Size.X, view.surface.Size.Y)
	}

	view.Pending.Box = x.defaultFloatingBox()
	view.Pending.Float = xs.ShouldFloat() || xs.HasParent() || x.Constraints().Fixed()

	err := view.Map()
	if err != nil {
		x.dropMappedListeners()
		view.surface = nil
		x.server.logger().Error("map legacy view", zap.String("title", xs.Title()), zap.Error(err))
		xs.PostNoMemory()
	}
}

// defaultFloatingBox centers the surface's natural size on the
// output's usable area.
func (x *XView) defaultFloatingBox() geom.Rect[int] {
	natural := x.view.SurfaceBox
	usable := x.view.Output.UsableBox
	return geom.Rt(0, 0, natural.Dx(), natural.Dy()).CenterAt(usable.Center())
}

func (x *XView) handleUnmap() {
	x.dropMappedListeners()
	// The surface can be mapped protocol-side while the view isn't,
	// if the map was denied for lack of resources.
	if x.view.Mapped() {
		x.view.Unmap()
	}
}

func (x *XView) dropMappedListeners() {
	x.onCommitListener.Destroy()
	x.onSetTitleListener.Destroy()
	x.onSetClassListener.Destroy()
	x.onRequestFullscreenListener.Destroy()
	x.onRequestMinimizeListener.Destroy()
}

// handleDestroy tears the adapter down. It also runs, directly, on
// the reclassification path, so a second invocation must be harmless.
func (x *XView) handleDestroy() {
	if x.view == nil {
		return
	}

	x.onDestroyListener.Destroy()
	x.onMapListener.Destroy()
	x.onUnmapListener.Destroy()
	x.onRequestConfigureListener.Destroy()
	x.onSetOverrideRedirectListener.Destroy()
	x.dropMappedListeners()

	x.view.Destroy()
	x.view = nil
}

// handleRequestConfigure decides how much say the client gets over its
// own geometry.
func (x *XView) handleRequestConfigure(r geom.Rect[int]) {
	view := x.view
	if !view.Mapped() {
		// Surfaces place themselves freely before they are mapped.
		x.xs.Configure(r)
		return
	}
	if view.Pending.Float {
		// Floating views pick their size but not their position.
		b := view.Pending.Box
		view.Pending.Box = geom.Rt(b.Min.X, b.Min.Y, b.Min.X+r.Dx(), b.Min.Y+r.Dy())
		view.ApplyPending()
		return
	}
	// Tiled views get re-sent the authoritative geometry.
	x.Configure()
}

// handleSetOverrideRedirect reclassifies the surface as unmanaged.
// The whole swap runs before this call returns: unmap if mapped, tear
// down this adapter, build the unmanaged one, replay map.
func (x *XView) handleSetOverrideRedirect(overrideRedirect bool) {
	x.server.assert(overrideRedirect, "managed surface reclassified without override-redirect")

	server, xs := x.server, x.xs
	if x.view.Mapped() {
		x.handleUnmap()
	}
	x.handleDestroy()

	u := NewXUnmanaged(server, xs)
	// Replay keys off the surface: a surface whose managed map was
	// denied is still mapped protocol-side and belongs in the
	// unmanaged list.
	if xs.Mapped() {
		u.handleMap()
	}
}

func (x *XView) handleCommit() {
	if s := x.xs.Surface(); s != nil {
		x.view.SurfaceBox = geom.Rt(0, 0, s.Size.X, s.Size.Y)
	}
	x.view.Output.Damage.AddWhole()
}

func (x *XView) handleSetTitle() {
	x.view.NotifyTitle()
}

func (x *XView) handleSetClass() {
	x.view.NotifyAppID()
}

func (x *XView) handleRequestFullscreen(fullscreen bool) {
	view := x.view
	if view.Pending.Fullscreen == fullscreen {
		return
	}
	view.Pending.Fullscreen = fullscreen
	view.ApplyPending()
}

// handleRequestMinimize always acknowledges the request. Some clients
// re-minimize unconditionally when refused, which would leave them
// stuck; accepting silently and unminimizing on activation keeps them
// reachable.
func (x *XView) handleRequestMinimize(minimize bool) {
	x.xs.SetMinimized(minimize)
}

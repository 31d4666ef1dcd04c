package sawa

import (
	"deedles.dev/ximage/geom"
)

// fakeXSurface drives the core the way the legacy protocol layer
// would, recording every request the core sends back.
type fakeXSurface struct {
	destroySignal Signal[struct{}]
	mapSignal     Signal[struct{}]
	unmapSignal   Signal[struct{}]
	commitSignal  Signal[struct{}]
	titleSignal   Signal[struct{}]
	classSignal   Signal[struct{}]

	requestConfigureSignal    Signal[geom.Rect[int]]
	requestFullscreenSignal   Signal[bool]
	requestMinimizeSignal     Signal[bool]
	setOverrideRedirectSignal Signal[bool]

	geometry         geom.Rect[int]
	overrideRedirect bool
	mapped           bool
	title, class     string
	hints            *SizeHints
	wantsFocus       bool
	shouldFloat      bool
	hasParent        bool
	surface          *Surface

	configures  []geom.Rect[int]
	activations []bool
	fullscreens []bool
	minimizes   []bool
	restacks    int
	fullscreen  bool
	minimized   bool
	closed      int
	noMemory    int
}

func (fs *fakeXSurface) OnDestroy(f func()) *Listener {
	return fs.destroySignal.Listen(func(struct{}) { f() })
}

func (fs *fakeXSurface) OnMap(f func()) *Listener {
	return fs.mapSignal.Listen(func(struct{}) { f() })
}

func (fs *fakeXSurface) OnUnmap(f func()) *Listener {
	return fs.unmapSignal.Listen(func(struct{}) { f() })
}

func (fs *fakeXSurface) OnCommit(f func()) *Listener {
	return fs.commitSignal.Listen(func(struct{}) { f() })
}

func (fs *fakeXSurface) OnSetTitle(f func()) *Listener {
	return fs.titleSignal.Listen(func(struct{}) { f() })
}

func (fs *fakeXSurface) OnSetClass(f func()) *Listener {
	return fs.classSignal.Listen(func(struct{}) { f() })
}

func (fs *fakeXSurface) OnRequestConfigure(f func(geom.Rect[int])) *Listener {
	return fs.requestConfigureSignal.Listen(f)
}

func (fs *fakeXSurface) OnRequestFullscreen(f func(bool)) *Listener {
	return fs.requestFullscreenSignal.Listen(f)
}

func (fs *fakeXSurface) OnRequestMinimize(f func(bool)) *Listener {
	return fs.requestMinimizeSignal.Listen(f)
}

func (fs *fakeXSurface) OnSetOverrideRedirect(f func(bool)) *Listener {
	return fs.setOverrideRedirectSignal.Listen(f)
}

func (fs *fakeXSurface) Geometry() geom.Rect[int] { return fs.geometry }
func (fs *fakeXSurface) OverrideRedirect() bool   { return fs.overrideRedirect }
func (fs *fakeXSurface) Mapped() bool             { return fs.mapped }
func (fs *fakeXSurface) Title() string            { return fs.title }
func (fs *fakeXSurface) Class() string            { return fs.class }
func (fs *fakeXSurface) SizeHints() *SizeHints    { return fs.hints }
func (fs *fakeXSurface) WantsFocus() bool         { return fs.wantsFocus }
func (fs *fakeXSurface) ShouldFloat() bool        { return fs.shouldFloat }
func (fs *fakeXSurface) HasParent() bool          { return fs.hasParent }
func (fs *fakeXSurface) Surface() *Surface        { return fs.surface }

func (fs *fakeXSurface) Configure(r geom.Rect[int]) {
	fs.geometry = r
	fs.configures = append(fs.configures, r)
}

func (fs *fakeXSurface) Activate(a bool) {
	fs.activations = append(fs.activations, a)
}

func (fs *fakeXSurface) Restack() {
	fs.restacks++
}

func (fs *fakeXSurface) SetFullscreen(fullscreen bool) {
	fs.fullscreen = fullscreen
	fs.fullscreens = append(fs.fullscreens, fullscreen)
}

func (fs *fakeXSurface) SetMinimized(minimized bool) {
	fs.minimized = minimized
	fs.minimizes = append(fs.minimizes, minimized)
}

func (fs *fakeXSurface) Close()        { fs.closed++ }
func (fs *fakeXSurface) PostNoMemory() { fs.noMemory++ }

// emitMap attaches a buffer of the given size and maps the surface.
func (fs *fakeXSurface) emitMap(w, h int) {
	fs.mapped = true
	fs.surface = &Surface{Size: geom.Pt(w, h)}
	fs.mapSignal.Emit(struct{}{})
}

func (fs *fakeXSurface) emitUnmap() {
	fs.mapped = false
	fs.unmapSignal.Emit(struct{}{})
	fs.surface = nil
}

func (fs *fakeXSurface) emitDestroy() {
	fs.destroySignal.Emit(struct{}{})
}

func (fs *fakeXSurface) emitCommit(w, h int) {
	fs.surface = &Surface{Size: geom.Pt(w, h)}
	fs.commitSignal.Emit(struct{}{})
}

// flipOverrideRedirect changes the surface's kind while it is alive,
// which reclassifies it between managed and unmanaged.
func (fs *fakeXSurface) flipOverrideRedirect(or bool) {
	fs.overrideRedirect = or
	fs.setOverrideRedirectSignal.Emit(or)
}

// newTestServer builds a server with one 800x600 output and one seat.
func newTestServer() (*Server, *Output, *Seat) {
	server := new(Server)
	out := server.AddOutput("fake-0", 800, 600)
	seat := server.NewSeat("seat0")
	return server, out, seat
}

package sawa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForeignActivate(t *testing.T) {
	server, _, seat := newTestServer()
	fs, view, _ := managedView(t, server)

	fs.emitMap(200, 150)
	f := view.Foreign()
	require.NotNil(t, f)

	server.TakeTransactions()
	f.Activate(seat)

	require.Equal(t, view, seat.FocusedView())
	require.Equal(t, []bool{true}, fs.activations)
	require.Equal(t, 1, fs.restacks)
	require.NotZero(t, server.TakeTransactions())
}

func TestForeignActivateRaises(t *testing.T) {
	server, out, seat := newTestServer()

	fs1, view1, _ := managedView(t, server)
	fs1.emitMap(200, 150)

	fs2 := new(fakeXSurface)
	server.NewXSurface(out, fs2)
	view2 := server.Views()[1]
	fs2.emitMap(200, 150)

	view1.Foreign().Activate(seat)

	// The focused view moves to the front of the focus order.
	require.Equal(t, []*View{view2, view1}, server.Views())
}

func TestForeignSetFullscreen(t *testing.T) {
	server, _, _ := newTestServer()
	fs, view, _ := managedView(t, server)

	fs.emitMap(200, 150)
	f := view.Foreign()

	f.SetFullscreen(true)
	require.True(t, view.Current.Fullscreen)
	require.Equal(t, []bool{true}, fs.fullscreens)

	// Unchanged value: no new configure cycle.
	f.SetFullscreen(true)
	require.Equal(t, []bool{true}, fs.fullscreens)

	f.SetFullscreen(false)
	require.Equal(t, []bool{true, false}, fs.fullscreens)
}

func TestForeignClose(t *testing.T) {
	server, _, _ := newTestServer()
	fs, view, _ := managedView(t, server)

	fs.emitMap(200, 150)
	view.Foreign().Close()

	require.Equal(t, 1, fs.closed)
}

func TestForeignStaleHandle(t *testing.T) {
	server, _, seat := newTestServer()
	fs, view, _ := managedView(t, server)

	fs.emitMap(200, 150)
	f := view.Foreign()
	fs.emitUnmap()

	require.Nil(t, f.View())
	require.NotPanics(t, func() {
		f.Activate(seat)
		f.SetFullscreen(true)
		f.Close()
	})
	require.Nil(t, seat.FocusedView())
	require.Zero(t, fs.closed)
}

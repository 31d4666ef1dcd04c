// Package sawa implements the window-management core of a tiling
// compositor for legacy-protocol surfaces.
//
// A legacy surface arrives in one of two shapes. A managed surface is
// wrapped in a View and takes part in tiling, tagging, and focus. An
// unmanaged (override-redirect) surface positions and stacks itself
// and is only tracked in a global ordering. A surface can flip between
// the two shapes at runtime without being destroyed; the swap is
// performed synchronously so that no handler ever observes a live
// surface without an adapter behind it.
//
// Rendering, wire marshalling, layout arithmetic, and input dispatch
// are outside of this package. Everything here runs on the
// compositor's single event-loop thread.
package sawa

import (
	"errors"

	"go.uber.org/zap"
)

// ErrNoMemory reports that the compositor is out of resources for a
// client. It is reported back to the client, never treated as fatal.
var ErrNoMemory = errors.New("insufficient resources")

var nopLogger = zap.NewNop()

// A Server is the root of the compositor core: the registry of
// outputs, seats, views, and unmanaged surfaces.
//
// The zero value is ready to use.
type Server struct {
	// Logger receives the core's structured logs. Nil means no
	// logging. Invariant violations go through Logger.DPanic, so a
	// development logger turns them into crashes while a production
	// logger only records them.
	Logger *zap.Logger

	// OutputConfigs overrides placement for outputs by name.
	OutputConfigs []OutputConfig

	// MaxMapped caps the number of concurrently mapped views. Zero
	// means no cap. Mapping past the cap fails with ErrNoMemory.
	MaxMapped int

	outputs   []*Output
	seats     []*Seat
	views     []*View
	unmanaged []*XUnmanaged

	transactions int
}

// NewXSurface hands a freshly created legacy surface to the core,
// constructing whichever adapter matches its current
// override-redirect state. Managed surfaces are placed on out.
func (server *Server) NewXSurface(out *Output, xs XSurface) {
	if xs.OverrideRedirect() {
		NewXUnmanaged(server, xs)
		return
	}
	NewXView(server, out, xs)
}

// StartTransaction asks the transaction scheduler to commit pending
// state across the compositor. Scheduling itself happens outside this
// package; the request is only recorded.
func (server *Server) StartTransaction() {
	server.transactions++
}

// PendingTransactions returns how many transaction requests have been
// recorded since the last Take.
func (server *Server) PendingTransactions() int {
	return server.transactions
}

// TakeTransactions returns the recorded transaction requests and
// resets the counter. The transaction scheduler calls this once per
// dispatch.
func (server *Server) TakeTransactions() int {
	n := server.transactions
	server.transactions = 0
	return n
}

// Outputs returns the registered outputs in registration order.
func (server *Server) Outputs() []*Output {
	return server.outputs
}

// Seats returns the registered seats.
func (server *Server) Seats() []*Seat {
	return server.seats
}

// Views returns every live view, focus-ordered with the most recently
// raised view last.
func (server *Server) Views() []*View {
	return server.views
}

// Unmanaged returns the unmanaged surfaces, most recently mapped
// first.
func (server *Server) Unmanaged() []*XUnmanaged {
	return server.unmanaged
}

// DefaultSeat returns the first registered seat, or nil.
func (server *Server) DefaultSeat() *Seat {
	if len(server.seats) == 0 {
		return nil
	}
	return server.seats[0]
}

// focusedOutput is where a surface that reclassifies to managed ends
// up.
func (server *Server) focusedOutput() *Output {
	if seat := server.DefaultSeat(); seat != nil && seat.FocusedOutput != nil {
		return seat.FocusedOutput
	}
	if len(server.outputs) > 0 {
		return server.outputs[0]
	}
	return nil
}

func (server *Server) damageAll() {
	for _, out := range server.outputs {
		out.Damage.AddWhole()
	}
}

func (server *Server) countMapped() (n int) {
	for _, view := range server.views {
		if view.mapped {
			n++
		}
	}
	return n
}

func (server *Server) logger() *zap.Logger {
	if server.Logger == nil {
		return nopLogger
	}
	return server.Logger
}

// assert checks a handler precondition. Violations are programming
// errors: fatal under a development logger, logged and carried on
// under a production one.
func (server *Server) assert(cond bool, msg string) {
	if !cond {
		server.logger().DPanic(msg)
	}
}

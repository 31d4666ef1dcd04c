package sawa

import (
	"deedles.dev/sawa/internal/util"
	"golang.org/x/exp/slices"
)

// A Signal is a synchronous event source. Handlers run on the
// compositor's event loop in registration order, in the same call stack
// as Emit. A handler may register or destroy listeners, including its
// own, while the signal is being emitted.
type Signal[T any] struct {
	listeners []*Listener
	handlers  map[*Listener]func(T)
}

// Listen registers f and returns a token that removes it.
func (s *Signal[T]) Listen(f func(T)) *Listener {
	if s.handlers == nil {
		s.handlers = make(map[*Listener]func(T))
	}

	l := new(Listener)
	l.remove = func() {
		delete(s.handlers, l)
		s.listeners = util.Remove(s.listeners, l)
	}
	s.listeners = append(s.listeners, l)
	s.handlers[l] = f
	return l
}

// Emit calls every registered handler with v. Handlers destroyed
// mid-emission are skipped if they haven't run yet.
func (s *Signal[T]) Emit(v T) {
	for _, l := range slices.Clone(s.listeners) {
		if f, ok := s.handlers[l]; ok {
			f(v)
		}
	}
}

// A Listener ties a handler to a Signal for as long as it lives. It is
// a consumed token: the first call to Destroy unregisters the handler
// and later calls do nothing, so tearing a listener down twice is safe.
type Listener struct {
	remove func()
}

func (l *Listener) Destroy() {
	if l == nil || l.remove == nil {
		return
	}
	l.remove()
	l.remove = nil
}

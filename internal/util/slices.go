// Package util holds small slice helpers shared across the
// compositor core.
package util

import "golang.org/x/exp/slices"

// FindFunc returns the first element of s for which f returns true.
func FindFunc[E any](s []E, f func(E) bool) (e E, ok bool) {
	for _, e := range s {
		if f(e) {
			return e, true
		}
	}
	return e, false
}

// Remove deletes the first occurrence of e from s. If e isn't in s,
// s is returned unchanged.
func Remove[E comparable](s []E, e E) []E {
	i := slices.Index(s, e)
	if i < 0 {
		return s
	}
	return slices.Delete(s, i, i+1)
}

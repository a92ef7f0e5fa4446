package dataflow

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Set is a small generic set type shared by the concrete analyses below.
// Reaching Definitions and Live Variables build their lattice elements
// on it and use Union as their meet. Available Expressions uses its own
// ExpressionSet instead, so Intersect has no caller in this package.
type Set[T comparable] map[T]struct{}

// NewSet builds a Set containing items.
func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, i := range items {
		s[i] = struct{}{}
	}
	return s
}

// Clone returns a shallow copy of s.
func (s Set[T]) Clone() Set[T] {
	out := make(Set[T], len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

// Add inserts v into s and returns s.
func (s Set[T]) Add(v T) Set[T] {
	s[v] = struct{}{}
	return s
}

// Remove deletes v from s and returns s.
func (s Set[T]) Remove(v T) Set[T] {
	delete(s, v)
	return s
}

// Has reports whether v is in s.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Union returns the union of sets, the meet of the "may" analyses
// Reaching Definitions and Live Variables.
func Union[T comparable](sets []Set[T]) Set[T] {
	out := make(Set[T])
	for _, s := range sets {
		for k := range s {
			out[k] = struct{}{}
		}
	}
	return out
}

// Intersect returns the intersection of sets, the meet shape of "must"
// analyses. An empty input returns an
// empty set, matching this package's convention that Initial() already
// supplies the correct bottom/top element to Meet.
func Intersect[T comparable](sets []Set[T]) Set[T] {
	if len(sets) == 0 {
		return make(Set[T])
	}
	out := sets[0].Clone()
	for _, s := range sets[1:] {
		for k := range out {
			if !s.Has(k) {
				delete(out, k)
			}
		}
	}
	return out
}

// Equal reports whether a and b contain the same elements.
func Equal[T comparable](a, b Set[T]) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b.Has(k) {
			return false
		}
	}
	return true
}

// SortedKeys returns a Set's elements in ascending order, used by
// formatting code that needs a deterministic rendering of a set whose
// element type has a natural order.
func SortedKeys[T constraints.Ordered](s Set[T]) []T {
	out := make([]T, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

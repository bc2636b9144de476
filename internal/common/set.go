package common

import "cmp"

// Set is an unordered collection of comparable values.
type Set[E cmp.Ordered] map[E]struct{}

// NewSet returns a set holding the given items.
func NewSet[E cmp.Ordered](items ...E) Set[E] {
	s := make(Set[E], len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}

	return s
}

// Add inserts v and reports whether it was not already present.
func (s Set[E]) Add(v E) bool {
	if _, ok := s[v]; ok {
		return false
	}

	s[v] = struct{}{}

	return true
}

// Union adds every element of other to s.
func (s Set[E]) Union(other Set[E]) {
	for v := range other {
		s[v] = struct{}{}
	}
}

// Sorted returns the elements in ascending order.
func (s Set[E]) Sorted() []E {
	return SortedKeys(s)
}

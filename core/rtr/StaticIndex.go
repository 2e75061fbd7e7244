package rtr

import "strings"

// StaticIndex is an exact-match index for patterns made only of literal segments.
//
// A literal pattern is reached in the Tree by following literal children all
// the way down, which is also what the Tree does first for any route, so a hit
// here always agrees with a Tree lookup.
type StaticIndex[T any] struct {
	routes map[string]staticEntry[T]
}

type staticEntry[T any] struct {
	pattern string
	data    T
}

// NewStaticIndex creates an empty index.
// It is important to use this function when a new index is needed.
func NewStaticIndex[T any]() *StaticIndex[T] {
	return &StaticIndex[T]{routes: make(map[string]staticEntry[T], 16)}
}

// Add indexes data when every segment is literal and reports whether it did.
func (si *StaticIndex[T]) Add(pattern string, segments []string, data T) bool {
	if len(segments) == 0 {
		return false
	}
	for _, segment := range segments {
		if _, isParam := parameterName(segment); isParam {
			return false
		}
	}

	si.routes[staticKey(segments)] = staticEntry[T]{pattern: pattern, data: data}
	return true
}

// Lookup finds the data and pattern for the given segments.
func (si *StaticIndex[T]) Lookup(segments []string) (data T, pattern string, ok bool) {
	entry, ok := si.routes[staticKey(segments)]
	return entry.data, entry.pattern, ok
}

// Len returns the number of indexed patterns.
func (si *StaticIndex[T]) Len() int {
	return len(si.routes)
}

// Reset drops every indexed pattern.
func (si *StaticIndex[T]) Reset() {
	clear(si.routes)
}

// staticKey joins segments with "/". The root segment is itself "/", so
// ["/", "a"] and ["a"] produce different keys.
func staticKey(segments []string) string {
	return strings.Join(segments, "/")
}

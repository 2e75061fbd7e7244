package rtr

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrDuplicateRoute is returned when a pattern is registered twice.
	ErrDuplicateRoute = errors.New("route already registered")

	// ErrParamConflict is returned when two patterns use different parameter
	// names at the same position under the same parent.
	ErrParamConflict = errors.New("conflicting parameter names at the same position")

	// ErrInvalidPattern is returned for patterns that cannot be stored.
	ErrInvalidPattern = errors.New("invalid route pattern")
)

// Tree is a trie keyed by path segment.
//
// Each node keeps its literal children in a map and at most one parameter
// child in a separate slot, so literal segments always win over parameters
// regardless of registration order.
//
// Structure example for patterns /, /user/add, /user/:id and /user/:id/story:
//
//	root
//	 └── "/"                  (data: /)
//	      └── "user"
//	           ├── "add"      (data: /user/add)
//	           └── :id        (data: /user/:id)
//	                └── "story" (data: /user/:id/story)
//
// Zero value is ready to use.
type Tree[T any] struct {
	root treeNode[T]
	size int
}

// Add stores data under the given pattern segments.
// pattern is the original pattern text, kept for diagnostics.
//
// The existing path is checked before anything is created, so a failed Add
// leaves the tree exactly as it was.
func (tree *Tree[T]) Add(pattern string, segments []string, data T) error {
	if len(segments) == 0 {
		return fmt.Errorf("%w: %q has no segments", ErrInvalidPattern, pattern)
	}

	node := &tree.root
	for _, segment := range segments {
		name, isParam := parameterName(segment)
		if isParam && name == "" {
			return fmt.Errorf("%w: %q has an unnamed parameter", ErrInvalidPattern, pattern)
		}
		if node == nil {
			continue // remainder of the path is new
		}

		if isParam {
			if node.parameter != nil && node.parameter.key != name {
				return fmt.Errorf("%w: %q and %q in %q", ErrParamConflict,
					node.parameter.key, name, pattern)
			}
			node = node.parameter
			continue
		}
		node = node.children[segment]
	}

	if node != nil && node.terminal {
		return fmt.Errorf("%w: %q (existing %q)", ErrDuplicateRoute, pattern, node.pattern)
	}

	node = &tree.root
	for _, segment := range segments {
		node = node.child(segment)
	}
	node.pattern = pattern
	node.data = data
	node.terminal = true
	tree.size++
	return nil
}

// Lookup finds the data for the given segments.
// This is a convenience wrapper around LookupNoAlloc that collects parameters into a slice.
func (tree *Tree[T]) Lookup(segments []string) (T, []Parameter, bool) {
	var params []Parameter

	data, _, ok := tree.LookupNoAlloc(segments, func(key string, value string) {
		params = append(params, Parameter{key, value})
	})
	if !ok {
		return data, nil, false
	}

	return data, params, true
}

// LookupNoAlloc walks the tree one segment per level and returns the data
// and original pattern of the terminal node reached.
//
// At every level a literal child equal to the segment is taken first; the
// parameter child is only followed when no literal child matches, and its name
// is bound to the segment through addParameter. There is no backtracking: a
// level with neither child ends the walk with ok == false. addParameter may
// already have been called when the walk fails, so callers must discard
// collected values in that case.
func (tree *Tree[T]) LookupNoAlloc(segments []string, addParameter func(key string, value string)) (data T, pattern string, ok bool) {
	node := &tree.root

	for _, segment := range segments {
		if child := node.children[segment]; child != nil {
			node = child
			continue
		}

		if node.parameter != nil {
			node = node.parameter
			addParameter(node.key, segment)
			continue
		}

		return data, "", false
	}

	if !node.terminal {
		return data, "", false
	}

	return node.data, node.pattern, true
}

// Len returns the number of stored patterns.
func (tree *Tree[T]) Len() int {
	return tree.size
}

// Reset drops every stored pattern.
func (tree *Tree[T]) Reset() {
	tree.root = treeNode[T]{}
	tree.size = 0
}

// Map binds all stored data to a new value provided by the callback.
// The transformation is applied in-place.
func (tree *Tree[T]) Map(transform func(T) T) {
	tree.root.each(func(node *treeNode[T]) {
		if node.terminal {
			node.data = transform(node.data)
		}
	})
}

// Routes lists the stored patterns sorted by pattern.
// ref renders the stored data for display.
func (tree *Tree[T]) Routes(ref func(T) string) []RouteList {
	routes := make([]RouteList, 0, tree.size)

	tree.root.each(func(node *treeNode[T]) {
		if node.terminal {
			routes = append(routes, RouteList{Pattern: node.pattern, HandlerRef: ref(node.data)})
		}
	})

	sort.Slice(routes, func(i, j int) bool { return routes[i].Pattern < routes[j].Pattern })
	return routes
}

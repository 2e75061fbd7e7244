package rtr

import (
	"sort"

	"github.com/rohanthewiz/rroute/consts"
)

// treeNode is one level of the segment trie.
// Literal children and the parameter child live in separate slots.
type treeNode[T any] struct {
	key       string                  // literal segment, or parameter name for parameter nodes
	pattern   string                  // original pattern of a terminal node
	data      T                       // zero value unless terminal
	terminal  bool                    // a pattern ends here
	children  map[string]*treeNode[T] // literal children keyed by segment
	parameter *treeNode[T]            // the single parameter child
}

// parameterName reports whether segment is a parameter (":name") and returns the name.
func parameterName(segment string) (string, bool) {
	if len(segment) > 0 && segment[0] == consts.RuneColon {
		return segment[1:], true
	}
	return "", false
}

// child returns the child for segment, creating it when missing.
// Callers must have checked parameter names beforehand.
func (node *treeNode[T]) child(segment string) *treeNode[T] {
	if name, ok := parameterName(segment); ok {
		if node.parameter == nil {
			node.parameter = &treeNode[T]{key: name}
		}
		return node.parameter
	}

	if child := node.children[segment]; child != nil {
		return child
	}

	if node.children == nil {
		node.children = make(map[string]*treeNode[T])
	}
	child := &treeNode[T]{key: segment}
	node.children[segment] = child
	return child
}

// each traverses the tree depth first and calls the given function on every node.
// Literal children are visited in key order, then the parameter child.
func (node *treeNode[T]) each(callback func(*treeNode[T])) {
	callback(node)

	keys := make([]string, 0, len(node.children))
	for key := range node.children {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		node.children[key].each(callback)
	}

	if node.parameter != nil {
		node.parameter.each(callback)
	}
}

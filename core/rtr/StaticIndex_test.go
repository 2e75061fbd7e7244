package rtr_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rroute/core/rtr"
	"github.com/rohanthewiz/rroute/core/uri"
)

func TestStaticIndex(t *testing.T) {
	si := rtr.NewStaticIndex[string]()

	assert.True(t, si.Add("/about", uri.Segments("/about"), "About"))
	assert.True(t, si.Add("/", uri.Segments("/"), "Front page"))
	assert.False(t, si.Add("/user/:id", uri.Segments("/user/:id"), "User"))
	assert.False(t, si.Add("", nil, "Nothing"))
	assert.Equal(t, si.Len(), 2)

	data, pattern, ok := si.Lookup(uri.Segments("/about/?tab=1"))
	assert.True(t, ok)
	assert.Equal(t, data, "About")
	assert.Equal(t, pattern, "/about")

	data, _, ok = si.Lookup(uri.Segments("/"))
	assert.True(t, ok)
	assert.Equal(t, data, "Front page")

	_, _, ok = si.Lookup(uri.Segments("about"))
	assert.False(t, ok)

	_, _, ok = si.Lookup(uri.Segments("/user/1"))
	assert.False(t, ok)

	si.Reset()
	assert.Equal(t, si.Len(), 0)
	_, _, ok = si.Lookup(uri.Segments("/about"))
	assert.False(t, ok)
}

// TestStaticIndexAgreesWithTree checks that every literal route found in the
// index resolves to the same data through the tree.
func TestStaticIndexAgreesWithTree(t *testing.T) {
	var tree rtr.Tree[string]
	si := rtr.NewStaticIndex[string]()

	for _, pattern := range []string{"/", "/user/add", "/user/:id", "/:page", "/about"} {
		segments := uri.Segments(pattern)
		assert.Nil(t, tree.Add(pattern, segments, pattern))
		si.Add(pattern, segments, pattern)
	}

	for _, route := range []string{"/", "/user/add", "/about"} {
		segments := uri.Segments(route)
		fromIndex, _, ok := si.Lookup(segments)
		assert.True(t, ok)
		fromTree, _, ok := tree.Lookup(segments)
		assert.True(t, ok)
		assert.Equal(t, fromIndex, fromTree)
	}
}

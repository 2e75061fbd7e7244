package rtr

// Parameter is a value captured by a parameter segment.
//
// Example:
//
//	Pattern: /user/:id/story/:storyId
//	Route:   /user/123/story/456
//	Result:  []Parameter{{Key: "id", Value: "123"}, {Key: "storyId", Value: "456"}}
//
// The slice keeps the order of the pattern.
type Parameter struct {
	Key   string
	Value string
}

package rtr

// RouteList describes a stored pattern for listing and debugging.
type RouteList struct {
	Pattern    string
	HandlerRef string
}

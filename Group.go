package rroute

import (
	"path"
)

// Group registers patterns under a common prefix (e.g. /user) and wraps
// handler targets registered through it with the group middleware.
// Groups can be nested.
type Group struct {
	// prefix is prepended to every pattern registered through the group
	prefix string
	// router receives the registrations
	router *Router
	// middleware wraps handler targets, outermost first
	middleware []Middleware
}

// Group creates a group registering patterns under prefix.
func (r *Router) Group(prefix string, middleware ...Middleware) *Group {
	return &Group{
		prefix:     prefix,
		router:     r,
		middleware: append([]Middleware(nil), middleware...),
	}
}

// Group creates a sub-group with an additional prefix and optional middleware.
// The new group runs the parent middleware before its own.
func (g *Group) Group(prefix string, middleware ...Middleware) *Group {
	combined := make([]Middleware, 0, len(g.middleware)+len(middleware))
	combined = append(combined, g.middleware...)
	combined = append(combined, middleware...)

	return &Group{
		prefix:     path.Join(g.prefix, prefix),
		router:     g.router,
		middleware: combined,
	}
}

// Use adds middleware to the group.
// It applies to handlers registered after this call.
func (g *Group) Use(middleware ...Middleware) {
	g.middleware = append(g.middleware, middleware...)
}

// Prefix returns the group prefix.
func (g *Group) Prefix() string {
	return g.prefix
}

// Register adds the prefixed pattern with target.
func (g *Group) Register(pattern string, target Target) error {
	if target.Kind() == KindHandler && len(g.middleware) > 0 {
		target = HandlerTarget(chain(target.Handler(), g.middleware))
	}
	return g.router.Register(g.pattern(pattern), target)
}

// RegisterClass adds the prefixed pattern resolving to classID.
func (g *Group) RegisterClass(pattern string, classID string) error {
	return g.Register(pattern, ClassTarget(classID))
}

// RegisterHandler adds the prefixed pattern resolving to handler.
func (g *Group) RegisterHandler(pattern string, handler HandlerFunc) error {
	return g.Register(pattern, HandlerTarget(handler))
}

// pattern joins the group prefix and p.
// The leading "/" keeps every grouped pattern rooted.
func (g *Group) pattern(p string) string {
	return path.Join("/", g.prefix, p)
}

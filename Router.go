// Package rroute maps URL-like route strings to registered targets.
//
// Patterns are "/"-separated; a segment written ":name" matches any single
// segment and binds it to name. At every depth a literal segment wins over a
// parameter segment. Query and fragment pairs are merged over the path
// parameters, fragment last.
//
//	r := rroute.New(rroute.Options{Schemes: []string{"myapp"}})
//	_ = r.RegisterClass("/user/:id", "UserViewController")
//	classID, params, err := r.ResolveClass("myapp://user/42?tab=posts")
package rroute

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/rohanthewiz/rroute/core/rtr"
	"github.com/rohanthewiz/rroute/core/uri"
)

// Options configures a Router.
type Options struct {
	// Schemes are the application URL schemes stripped from incoming routes,
	// e.g. "myapp" strips "myapp:" from "myapp://user/1". Read once by New.
	Schemes []string

	// Logger receives registration and resolution logs.
	// Default: stderr at warn level.
	Logger *log.Logger

	// Metrics, when set, records resolution and dispatch outcomes.
	Metrics *Metrics
}

// Router is a registry of route patterns.
// It is safe for concurrent use; handlers run outside its lock.
type Router struct {
	mu      sync.RWMutex
	tree    rtr.Tree[Target]
	static  *rtr.StaticIndex[Target]
	schemes *uri.SchemeNormalizer
	logger  *log.Logger
	metrics *Metrics
}

// Match is a resolved route.
type Match struct {
	Pattern string
	Target  Target
	Params  Params
}

// New creates an empty router.
func New(opts Options) *Router {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "rroute",
			Level:  log.WarnLevel,
		})
	}

	return &Router{
		static:  rtr.NewStaticIndex[Target](),
		schemes: uri.NewSchemeNormalizer(opts.Schemes...),
		logger:  logger,
		metrics: opts.Metrics,
	}
}

// Schemes returns the recognized application schemes.
func (r *Router) Schemes() []string {
	return r.schemes.Schemes()
}

// Register adds pattern with the given target.
//
// Patterns are used as written; no scheme is stripped. Registration either
// stores the whole pattern or fails without touching the table. Errors:
// ErrInvalidRouteEntry, ErrInvalidPattern, ErrParamConflict, ErrDuplicateRoute.
func (r *Router) Register(pattern string, target Target) error {
	if err := target.Validate(); err != nil {
		r.logger.Warn("route rejected", "pattern", pattern, "err", err)
		return fmt.Errorf("%w: %q", err, pattern)
	}

	segments := uri.Segments(pattern)

	r.mu.Lock()
	err := r.tree.Add(pattern, segments, target)
	if err == nil {
		r.static.Add(pattern, segments, target)
	}
	count := r.tree.Len()
	r.mu.Unlock()

	if err != nil {
		r.logger.Warn("route rejected", "pattern", pattern, "err", err)
		return err
	}

	r.logger.Debug("route added", "pattern", pattern, "target", target)
	r.metrics.setRoutes(count)
	return nil
}

// RegisterClass adds pattern resolving to the constructible type classID.
func (r *Router) RegisterClass(pattern string, classID string) error {
	return r.Register(pattern, ClassTarget(classID))
}

// RegisterHandler adds pattern resolving to handler.
func (r *Router) RegisterHandler(pattern string, handler HandlerFunc) error {
	return r.Register(pattern, HandlerTarget(handler))
}

// Match resolves route to its pattern, target and merged parameters.
// An unmatched route returns ErrNotFound.
func (r *Router) Match(route string) (Match, error) {
	m, err := r.match(route)
	if err != nil {
		r.metrics.resolved(outcomeNotFound)
		return m, err
	}
	r.metrics.resolved(outcomeMatched)
	return m, nil
}

// Resolve returns the target and merged parameters for route.
// An unmatched route returns ErrNotFound.
func (r *Router) Resolve(route string) (Target, Params, error) {
	m, err := r.Match(route)
	return m.Target, m.Params, err
}

// ResolveClass resolves route and requires a class target.
// A handler target returns ErrWrongTargetKind.
func (r *Router) ResolveClass(route string) (string, Params, error) {
	m, err := r.project(route, KindClass)
	if err != nil {
		return "", nil, err
	}
	return m.Target.ClassID(), m.Params, nil
}

// ResolveHandler resolves route and requires a handler target.
// A class target returns ErrWrongTargetKind.
func (r *Router) ResolveHandler(route string) (HandlerFunc, Params, error) {
	m, err := r.project(route, KindHandler)
	if err != nil {
		return nil, nil, err
	}
	return m.Target.Handler(), m.Params, nil
}

// Instantiate resolves route to a class target and asks constructor to build it.
func (r *Router) Instantiate(route string, constructor Constructor) (any, error) {
	classID, params, err := r.ResolveClass(route)
	if err != nil {
		return nil, err
	}
	return constructor.Construct(classID, params)
}

// Dispatch resolves route and, for a handler target, calls the handler with
// the merged parameters and returns its result. Unmatched routes and class
// targets return false.
func (r *Router) Dispatch(route string) bool {
	m, err := r.match(route)
	if err != nil {
		r.metrics.dispatched(dispatchUnresolved)
		return false
	}

	if m.Target.Kind() != KindHandler {
		r.logger.Debug("dispatch skipped", "route", route, "pattern", m.Pattern, "target", m.Target)
		r.metrics.dispatched(dispatchWrongKind)
		return false
	}

	ok := m.Target.Handler()(m.Params)
	if ok {
		r.metrics.dispatched(dispatchTrue)
	} else {
		r.metrics.dispatched(dispatchFalse)
	}
	return ok
}

// Reset removes every registered route. Resetting an empty router is a no-op.
func (r *Router) Reset() {
	r.mu.Lock()
	count := r.tree.Len()
	r.tree.Reset()
	r.static.Reset()
	r.mu.Unlock()

	if count > 0 {
		r.logger.Info("routes cleared", "count", count)
	}
	r.metrics.setRoutes(0)
}

// Len returns the number of registered routes.
func (r *Router) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tree.Len()
}

// Routes lists registered routes sorted by pattern.
func (r *Router) Routes() []rtr.RouteList {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tree.Routes(Target.String)
}

// match does the resolution without recording metrics.
func (r *Router) match(route string) (Match, error) {
	path, err := r.schemes.Normalize(route)
	if err != nil {
		r.logger.Debug("scheme not recognized", "route", route, "err", err)
	}
	segments := uri.Segments(path)

	params := Params{}
	r.mu.RLock()
	target, pattern, ok := r.static.Lookup(segments)
	if !ok {
		target, pattern, ok = r.tree.LookupNoAlloc(segments, func(key string, value string) {
			params[key] = value
		})
	}
	r.mu.RUnlock()

	if !ok {
		r.logger.Debug("route not found", "route", route)
		return Match{}, fmt.Errorf("%w: %s", ErrNotFound, route)
	}

	uri.MergeParams(params, route)
	return Match{Pattern: pattern, Target: target, Params: params}, nil
}

// project resolves route and checks the target kind.
func (r *Router) project(route string, kind TargetKind) (Match, error) {
	m, err := r.match(route)
	if err != nil {
		r.metrics.resolved(outcomeNotFound)
		return m, err
	}

	if m.Target.Kind() != kind {
		r.metrics.resolved(outcomeWrongKind)
		return Match{}, fmt.Errorf("%w: %s resolves to a %s, not a %s",
			ErrWrongTargetKind, route, m.Target.Kind(), kind)
	}

	r.metrics.resolved(outcomeMatched)
	return m, nil
}

// IsNotFound reports whether err means no route matched.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

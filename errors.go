package rroute

import (
	"errors"

	"github.com/rohanthewiz/rroute/core/rtr"
	"github.com/rohanthewiz/rroute/core/uri"
)

// Errors returned by the router. Compare with errors.Is.
// None of them is fatal: registration conflicts and invalid entries are
// reported to the caller instead of stopping the process.
var (
	// ErrNotFound is returned when no pattern matches a route.
	ErrNotFound = errors.New("route not found")

	// ErrWrongTargetKind is returned when a route resolves to a handler where
	// a class was requested, or the reverse.
	ErrWrongTargetKind = errors.New("route target is of the wrong kind")

	// ErrInvalidRouteEntry is returned for a Target with neither variant set.
	ErrInvalidRouteEntry = errors.New("invalid route entry")

	// ErrDuplicateRoute is returned when a pattern is registered twice.
	ErrDuplicateRoute = rtr.ErrDuplicateRoute

	// ErrParamConflict is returned when two patterns bind different parameter
	// names at the same position.
	ErrParamConflict = rtr.ErrParamConflict

	// ErrInvalidPattern is returned for empty patterns and unnamed parameters.
	ErrInvalidPattern = rtr.ErrInvalidPattern

	// ErrSchemeNotRecognized is informational; resolution carries on without
	// stripping anything.
	ErrSchemeNotRecognized = uri.ErrSchemeNotRecognized

	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("invalid route config")
)

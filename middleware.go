package rroute

import (
	"time"

	"github.com/charmbracelet/log"
)

// Middleware wraps a HandlerFunc.
type Middleware func(next HandlerFunc) HandlerFunc

// DispatchInfo is a middleware logging the result and duration of each handler call.
func DispatchInfo(logger *log.Logger) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(params Params) bool {
			start := time.Now()
			ok := next(params)
			logger.Info("dispatched", "ok", ok, "params", len(params), "elapsed", time.Since(start))
			return ok
		}
	}
}

// chain wraps handler so that middleware runs in the order given.
func chain(handler HandlerFunc, middleware []Middleware) HandlerFunc {
	for i := len(middleware) - 1; i >= 0; i-- {
		handler = middleware[i](handler)
	}
	return handler
}

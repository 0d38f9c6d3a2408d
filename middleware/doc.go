// Package middleware provides composable middleware for overload dispatch.
//
// A [Middleware] is a function that wraps a whole dispatch call — matching
// plus invocation, not individual candidate probes. Middleware are composed
// into a chain using [Chain] and applied right-to-left: the first middleware
// in the slice is the outermost wrapper.
//
//	// logging → recover → dispatch
//	chain := middleware.Chain(middleware.Logging(logger), middleware.Recover(logger))
//
// # Built-in Middleware
//
//   - [Logging] — logs group, arity, duration, and outcome at each dispatch
//   - [Recover] — catches candidate panics and converts them to errors
//   - [Tracing] — wraps dispatch in an OpenTelemetry span
//   - [Metrics] — records per-group duration and outcome counters
//
// # Writing Custom Middleware
//
//	func MyMiddleware() middleware.Middleware {
//	    return func(ctx context.Context, call *signature.Call, next middleware.Handler) (any, error) {
//	        // pre-processing
//	        v, err := next(ctx)
//	        // post-processing
//	        return v, err
//	    }
//	}
//
// Middleware MUST call next to continue the chain unless intentionally
// short-circuiting (e.g., argument validation, rate limiting).
package middleware

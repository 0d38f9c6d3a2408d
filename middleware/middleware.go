// Package middleware provides composable middleware for overload dispatch.
// Middleware wraps whole dispatch calls synchronously and can observe or
// modify execution (recover from panics, log, add tracing, etc.).
package middleware

import (
	"context"

	"github.com/xraph/overload/signature"
)

// Handler is the terminal function that performs matching and invocation,
// returning the selected candidate's result.
type Handler func(ctx context.Context) (any, error)

// Middleware wraps a Handler with cross-cutting logic. It receives the
// current context, the call being dispatched, and the next handler. A
// middleware MUST call next to continue the chain (unless short-circuiting
// on error).
type Middleware func(ctx context.Context, call *signature.Call, next Handler) (any, error)

// Chain composes multiple middleware into a single Middleware.
// Middleware are applied right-to-left: the first middleware in the
// list is the outermost wrapper.
//
// Example: Chain(logging, recover, tracing) executes as:
//
//	logging → recover → tracing → dispatch
func Chain(mws ...Middleware) Middleware {
	return func(ctx context.Context, call *signature.Call, next Handler) (any, error) {
		// Build the chain from the end backwards.
		h := next
		for i := len(mws) - 1; i >= 0; i-- {
			mw := mws[i]
			prev := h
			h = func(ctx context.Context) (any, error) {
				return mw(ctx, call, prev)
			}
		}
		return h(ctx)
	}
}

package overload

import "github.com/xraph/overload/middleware"

// Option configures a dispatcher created by [New] or [Register].
type Option func(*Overload)

// WithName sets the group name explicitly. For [Register] this overrides the
// name derived from the function; required when registering closures or
// method values, which have no usable declared name.
func WithName(name string) Option {
	return func(o *Overload) {
		o.name = name
	}
}

// WithRegistry binds the dispatcher to an explicit registry instead of
// [DefaultRegistry]. Dispatchers sharing a group name dispatch across the
// same candidates only when they share a registry.
func WithRegistry(r *Registry) Option {
	return func(o *Overload) {
		o.reg = r
	}
}

// WithMiddleware wraps every dispatch through the dispatcher in the given
// middleware, outermost first. The chain observes the whole dispatch —
// matching plus invocation — not individual candidate probes.
func WithMiddleware(mws ...middleware.Middleware) Option {
	return func(o *Overload) {
		o.mw = middleware.Chain(mws...)
	}
}

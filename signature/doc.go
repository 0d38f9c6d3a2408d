// Package signature captures function parameter signatures and matches them
// against call arguments.
//
// A [Candidate] pairs a concrete Go function with the constraint model used
// for dispatch: each parameter's reflect.Type is its constraint, where a
// parameter of type any is unconstrained and an interface parameter accepts
// every implementation. [New] is the only point of validation — a constructed
// Candidate binds and invokes without further error conditions.
//
// A [Call] records what a caller supplied: positional arguments plus optional
// named arguments. [Candidate.Bind] decides compatibility (arity including
// variadics and defaults, then per-slot type checks) and produces the
// argument vector; [Candidate.Invoke] runs the function and splits off a
// trailing error result.
//
// Go reflection cannot recover parameter names, so candidates that should
// accept named arguments must declare names with [WithParams]:
//
//	cand, err := signature.New(resize,
//	    signature.WithParams("img", "width", "height"),
//	    signature.WithDefault("height", 0),
//	)
package signature

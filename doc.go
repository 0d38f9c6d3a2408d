// Package overload provides ad-hoc multiple dispatch for Go: several
// concrete functions share one public group name, and a call to that name is
// routed at runtime to the first registered function whose parameter
// signature accepts the supplied arguments.
//
// Overload is a library, not a framework. Register plain Go functions under
// a group name and call the group like any other function.
//
// # Quick Start
//
//	area := overload.New("area").
//	    MustAdd(func(r float64) float64 { return math.Pi * r * r }).
//	    MustAdd(func(w, h float64) float64 { return w * h })
//
//	v, _ := area.Call(2.0)       // circle branch
//	v, _ = area.Call(3.0, 4.0)   // rectangle branch
//
// # Dispatch Model
//
// Candidates are tried strictly in registration order and the first whose
// signature binds the arguments wins — first-match, not best-match, and no
// caching of decisions. A parameter of type any is unconstrained; any other
// parameter type is a runtime constraint checked by assignability, so an
// interface parameter accepts every implementation. Two candidates with
// identical signatures are allowed: the earlier permanently shadows the
// later.
//
// When no candidate binds, the call fails with a [*NoMatchError] carrying
// the group name and the offending argument types. A matched candidate's own
// error propagates unchanged, and matching never falls through to a later
// candidate once one has been invoked.
//
// # Registry
//
// Groups live in a [Registry]. The package-level [Register] and
// [MustRegister] use the process-wide [DefaultRegistry] and derive the group
// name from the function itself; [New] plus [WithRegistry] keeps dispatch
// state local. A dispatcher holds a reference to its registry, never a
// candidate copy, so it always resolves across every candidate registered so
// far — including ones added after the dispatcher was created.
//
// # Middleware
//
// Cross-cutting concerns wrap dispatch through the middleware subpackage:
// logging, panic recovery, OpenTelemetry tracing and metrics. Install them
// per dispatcher with [WithMiddleware].
package overload

package overload

import (
	"context"
	"strings"

	"github.com/xraph/overload/middleware"
	"github.com/xraph/overload/signature"
)

// Overload is the dispatcher bound to a public group name. It holds a
// reference to its registry — never a private candidate copy — so a
// dispatcher created before later registrations always dispatches across
// the full current candidate set.
//
// The zero value is not usable; create one with [New] or [Register].
type Overload struct {
	name string
	reg  *Registry
	mw   middleware.Middleware
}

// New creates a dispatcher for the given group name. The group itself is
// created in the registry on the first Add; calling a dispatcher whose group
// was never registered fails with [ErrUnknownGroup].
func New(name string, opts ...Option) *Overload {
	o := &Overload{
		name: name,
		reg:  DefaultRegistry,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Register appends fn as a candidate of its group in the default registry
// (or the one given via [WithRegistry]) and returns the group's dispatcher.
// The group name defaults to fn's own declared name; override it with
// [WithName]. Bind the result in place of the raw function:
//
//	var Area = overload.MustRegister(circleArea, overload.WithName("Area"))
//
// Registering repeatedly under the same effective name grows one group, and
// every dispatcher returned for it resolves across all candidates registered
// so far and later.
func Register(fn any, opts ...Option) (*Overload, error) {
	cand, err := signature.New(fn)
	if err != nil {
		return nil, err
	}
	o := New("", opts...)
	if o.name == "" {
		o.name = cand.FuncName()
	}
	if o.name == "" || strings.Contains(o.name, ".") {
		// Anonymous functions and method values have no usable bare name.
		return nil, ErrNoName
	}
	o.reg.Register(o.name, cand)
	return o, nil
}

// MustRegister is like [Register] but panics on error. Intended for
// package-level registration:
//
//	var Scale = overload.MustRegister(scaleInt)
func MustRegister(fn any, opts ...Option) *Overload {
	o, err := Register(fn, opts...)
	if err != nil {
		panic(err)
	}
	return o
}

// Add appends fn as a new candidate of the dispatcher's group. Candidates
// are tried in the order they were added; adding never removes or reorders
// earlier candidates. Signature options declare parameter names and default
// values.
func (o *Overload) Add(fn any, opts ...signature.Option) error {
	cand, err := signature.New(fn, opts...)
	if err != nil {
		return err
	}
	o.reg.Register(o.name, cand)
	return nil
}

// MustAdd is like [Add] but panics on error and returns the dispatcher for
// chaining:
//
//	area := overload.New("area").
//	    MustAdd(func(r float64) float64 { return math.Pi * r * r }).
//	    MustAdd(func(w, h float64) float64 { return w * h })
func (o *Overload) MustAdd(fn any, opts ...signature.Option) *Overload {
	if err := o.Add(fn, opts...); err != nil {
		panic(err)
	}
	return o
}

// Name returns the dispatcher's group name.
func (o *Overload) Name() string { return o.name }

// NumCandidates returns the number of candidates currently registered under
// the dispatcher's group.
func (o *Overload) NumCandidates() int {
	cands, err := o.reg.Lookup(o.name)
	if err != nil {
		return 0
	}
	return len(cands)
}

// Call dispatches the positional arguments to the first candidate whose
// signature accepts them and returns that candidate's result. When no
// candidate matches, the error is a [*NoMatchError]; a matched candidate's
// own error (or panic) propagates unchanged, and later candidates are never
// tried after a match.
func (o *Overload) Call(args ...any) (any, error) {
	return o.dispatch(context.Background(), &signature.Call{Group: o.name, Args: args})
}

// CallContext is [Overload.Call] with a caller-supplied context, which is
// passed through the middleware chain. Dispatch itself is synchronous and
// does not observe cancellation.
func (o *Overload) CallContext(ctx context.Context, args ...any) (any, error) {
	return o.dispatch(ctx, &signature.Call{Group: o.name, Args: args})
}

// CallNamed dispatches with named arguments in addition to positional ones.
// Named arguments bind to parameters by their declared names (see
// [signature.WithParams]); a candidate without declared names never matches
// a named call.
func (o *Overload) CallNamed(ctx context.Context, named map[string]any, args ...any) (any, error) {
	return o.dispatch(ctx, &signature.Call{Group: o.name, Args: args, Named: named})
}

func (o *Overload) dispatch(ctx context.Context, call *signature.Call) (any, error) {
	cands, err := o.reg.Lookup(o.name)
	if err != nil {
		return nil, err
	}

	run := func(_ context.Context) (any, error) {
		for _, cand := range cands {
			in, ok := cand.Bind(call)
			if !ok {
				continue
			}
			return cand.Invoke(in)
		}
		return nil, &NoMatchError{Group: o.name, Args: call.Describe()}
	}

	if o.mw != nil {
		return o.mw(ctx, call, run)
	}
	return run(ctx)
}

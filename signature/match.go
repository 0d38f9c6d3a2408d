package signature

import "reflect"

var errType = reflect.TypeOf((*error)(nil)).Elem()

// Bind attempts to bind the call's arguments to the candidate's parameters.
// Binding proceeds positionally, then by declared parameter name, then from
// defaults; every bound value must satisfy its parameter's type constraint.
// ok is false when the candidate cannot accept the call for any reason —
// arity, an unknown or doubly-bound name, or a constraint violation. Bind
// never fails with an error: a candidate that does not bind is simply not a
// match and the next one is tried.
func (c *Candidate) Bind(call *Call) (in []reflect.Value, ok bool) {
	numIn := c.typ.NumIn()
	fixed := numIn
	if c.typ.IsVariadic() {
		fixed = numIn - 1
	} else if len(call.Args) > fixed {
		return nil, false
	}

	bound := make([]reflect.Value, fixed)
	set := make([]bool, fixed)

	n := min(len(call.Args), fixed)
	for i := 0; i < n; i++ {
		v, ok := conform(call.Args[i], c.typ.In(i))
		if !ok {
			return nil, false
		}
		bound[i] = v
		set[i] = true
	}

	// Extra positional arguments spill into the variadic tail.
	var tail []reflect.Value
	if len(call.Args) > fixed {
		elem := c.typ.In(numIn - 1).Elem()
		tail = make([]reflect.Value, 0, len(call.Args)-fixed)
		for _, a := range call.Args[fixed:] {
			v, ok := conform(a, elem)
			if !ok {
				return nil, false
			}
			tail = append(tail, v)
		}
	}

	if len(call.Named) > 0 && c.names == nil {
		return nil, false
	}
	for name, value := range call.Named {
		i := c.paramIndex(name)
		if i < 0 || i >= fixed || set[i] {
			return nil, false
		}
		v, ok := conform(value, c.typ.In(i))
		if !ok {
			return nil, false
		}
		bound[i] = v
		set[i] = true
	}

	for i := 0; i < fixed; i++ {
		if set[i] {
			continue
		}
		d, ok := c.defaults[i]
		if !ok {
			return nil, false
		}
		bound[i] = d
	}

	return append(bound, tail...), true
}

// Invoke calls the candidate with arguments produced by Bind. A final result
// of static type error is split off as the error return; the remaining
// results surface as nil, the single value, or a []any. A returned error or
// a panic inside the function propagates unchanged — invocation performs no
// translation for a matched candidate.
func (c *Candidate) Invoke(in []reflect.Value) (any, error) {
	out := c.fn.Call(in)

	var err error
	if n := c.typ.NumOut(); n > 0 && c.typ.Out(n-1) == errType {
		if e := out[n-1]; !e.IsNil() {
			err = e.Interface().(error)
		}
		out = out[:n-1]
	}

	switch len(out) {
	case 0:
		return nil, err
	case 1:
		return out[0].Interface(), err
	default:
		vals := make([]any, len(out))
		for i, v := range out {
			vals[i] = v.Interface()
		}
		return vals, err
	}
}

// conform checks value against the parameter type and returns the
// reflect.Value to pass on invocation. A parameter of interface type accepts
// any implementation (for the empty interface, anything at all); untyped nil
// conforms only to nilable parameter kinds.
func conform(value any, t reflect.Type) (reflect.Value, bool) {
	if value == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice,
			reflect.Chan, reflect.Func, reflect.UnsafePointer:
			return reflect.Zero(t), true
		}
		return reflect.Value{}, false
	}
	v := reflect.ValueOf(value)
	if !v.Type().AssignableTo(t) {
		return reflect.Value{}, false
	}
	return v, true
}

package signature

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// Candidate is one concrete function together with the parameter signature
// used for matching: per-parameter type constraints captured by reflection,
// optionally declared parameter names, and optional default values.
// A Candidate is immutable once constructed and safe for concurrent use.
type Candidate struct {
	fn     reflect.Value
	typ    reflect.Type
	fnName string

	// names holds the declared parameter names, one per parameter including
	// the variadic one. nil when the candidate was built without WithParams;
	// such a candidate can never bind named arguments.
	names []string

	// defaults maps parameter index to a pre-conformed default value.
	defaults map[int]reflect.Value
}

type settings struct {
	names    []string
	defaults map[string]any
}

// Option configures a Candidate at construction time.
type Option func(*settings)

// WithParams declares the function's parameter names, in order, including the
// variadic parameter if present. Go reflection cannot recover parameter
// names, so they must be declared explicitly for named-argument binding and
// for WithDefault. The count must equal the function's parameter count.
func WithParams(names ...string) Option {
	return func(s *settings) {
		s.names = names
	}
}

// WithDefault sets a default value for the named parameter. The parameter
// name must be declared via WithParams and the value must satisfy the
// parameter's type constraint. Defaults fill parameters left unbound after
// positional and named arguments are applied.
func WithDefault(name string, value any) Option {
	return func(s *settings) {
		if s.defaults == nil {
			s.defaults = make(map[string]any)
		}
		s.defaults[name] = value
	}
}

// New captures fn's signature and returns the candidate ready for matching.
// fn must be a function value. Construction is the only point that can fail;
// a returned Candidate always binds and invokes without further validation.
func New(fn any, opts ...Option) (*Candidate, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %s", ErrNotFunc, describe(fn))
	}

	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	t := v.Type()
	c := &Candidate{
		fn:     v,
		typ:    t,
		fnName: funcName(v),
	}

	if s.names != nil {
		if len(s.names) != t.NumIn() {
			return nil, fmt.Errorf("%w: %d names for %d parameters",
				ErrParamCount, len(s.names), t.NumIn())
		}
		seen := make(map[string]struct{}, len(s.names))
		for _, name := range s.names {
			if _, dup := seen[name]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateParam, name)
			}
			seen[name] = struct{}{}
		}
		c.names = append([]string(nil), s.names...)
	}

	if len(s.defaults) > 0 {
		if c.names == nil {
			return nil, fmt.Errorf("%w: defaults require WithParams", ErrUnknownParam)
		}
		c.defaults = make(map[int]reflect.Value, len(s.defaults))
		for name, value := range s.defaults {
			i := c.paramIndex(name)
			if i < 0 {
				return nil, fmt.Errorf("%w: %q", ErrUnknownParam, name)
			}
			if t.IsVariadic() && i == t.NumIn()-1 {
				return nil, fmt.Errorf("%w: %q", ErrVariadicParam, name)
			}
			dv, ok := conform(value, t.In(i))
			if !ok {
				return nil, fmt.Errorf("%w: %s for parameter %q (%s)",
					ErrDefaultType, describe(value), name, t.In(i))
			}
			c.defaults[i] = dv
		}
	}

	return c, nil
}

// FuncName returns the underlying function's declared name, without package
// path. Empty for functions the runtime cannot name.
func (c *Candidate) FuncName() string { return c.fnName }

// NumParams returns the declared parameter count, counting a variadic
// parameter as one.
func (c *Candidate) NumParams() int { return c.typ.NumIn() }

// Variadic reports whether the candidate's final parameter is variadic.
func (c *Candidate) Variadic() bool { return c.typ.IsVariadic() }

// String renders the signature for diagnostics, e.g. "scale(float64, ...int)".
func (c *Candidate) String() string {
	var b strings.Builder
	b.WriteString(c.fnName)
	b.WriteByte('(')
	n := c.typ.NumIn()
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		if c.names != nil {
			b.WriteString(c.names[i])
			b.WriteByte(' ')
		}
		if c.typ.IsVariadic() && i == n-1 {
			b.WriteString("...")
			b.WriteString(c.typ.In(i).Elem().String())
		} else {
			b.WriteString(c.typ.In(i).String())
		}
	}
	b.WriteByte(')')
	return b.String()
}

// paramIndex returns the index of the declared parameter name, or -1.
func (c *Candidate) paramIndex(name string) int {
	for i, n := range c.names {
		if n == name {
			return i
		}
	}
	return -1
}

// funcName resolves the function's symbol name and strips the package path,
// leaving e.g. "concat" or "TestDispatch.func1" for closures. Method values
// lose the runtime's "-fm" suffix.
func funcName(fn reflect.Value) string {
	rf := runtime.FuncForPC(fn.Pointer())
	if rf == nil {
		return ""
	}
	name := rf.Name()
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "-fm")
}

// describe renders a value's runtime type for error messages.
func describe(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}

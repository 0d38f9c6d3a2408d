package signature

import (
	"sort"
	"strings"
)

// Call captures one dispatch invocation: the group name plus the positional
// and named arguments supplied at the call site. Middleware receives the
// Call to identify what is being dispatched; candidates bind against it.
type Call struct {
	// Group is the public dispatch name the call was made through.
	Group string

	// Args are the positional arguments, in call order.
	Args []any

	// Named are the named arguments. May be nil.
	Named map[string]any
}

// NumArgs returns the total number of supplied arguments, positional and
// named.
func (c *Call) NumArgs() int { return len(c.Args) + len(c.Named) }

// Describe returns human-readable descriptions of the argument types in call
// order, named arguments last and sorted by name. Used in no-match
// diagnostics.
func (c *Call) Describe() []string {
	out := make([]string, 0, c.NumArgs())
	for _, a := range c.Args {
		out = append(out, describe(a))
	}
	names := make([]string, 0, len(c.Named))
	for name := range c.Named {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		out = append(out, name+"="+describe(c.Named[name]))
	}
	return out
}

// DescribeString is Describe joined the way a call site reads, e.g.
// "int, string, scale=float64".
func (c *Call) DescribeString() string {
	return strings.Join(c.Describe(), ", ")
}

package overload

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Registry errors.
	ErrUnknownGroup = errors.New("overload: unknown group")

	// Dispatch errors.
	ErrNoMatch = errors.New("overload: no matching candidate")

	// Registration errors.
	ErrNoName = errors.New("overload: group name cannot be derived from function")
)

// NoMatchError reports a dispatch whose arguments satisfied none of the
// group's registered candidates. It carries the group name and a description
// of the supplied argument types to aid debugging, and unwraps to
// [ErrNoMatch] for errors.Is checks.
type NoMatchError struct {
	// Group is the dispatch name the failing call was made through.
	Group string

	// Args describes the supplied argument types in call order, named
	// arguments last.
	Args []string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("overload: no matching candidate in group %q for arguments (%s)",
		e.Group, strings.Join(e.Args, ", "))
}

func (e *NoMatchError) Unwrap() error { return ErrNoMatch }

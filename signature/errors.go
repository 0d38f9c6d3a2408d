package signature

import "errors"

var (
	// Construction errors.
	ErrNotFunc        = errors.New("overload/signature: not a function")
	ErrParamCount     = errors.New("overload/signature: parameter name count mismatch")
	ErrDuplicateParam = errors.New("overload/signature: duplicate parameter name")
	ErrUnknownParam   = errors.New("overload/signature: unknown parameter name")
	ErrVariadicParam  = errors.New("overload/signature: variadic parameter cannot take a default")
	ErrDefaultType    = errors.New("overload/signature: default value does not satisfy parameter type")
)

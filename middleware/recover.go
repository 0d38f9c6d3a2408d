package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/xraph/overload/signature"
)

// Recover returns middleware that recovers from panics in the dispatched
// candidate. Panics are converted to errors and logged with a stack trace.
//
// The dispatcher itself never installs this: a matched candidate's failure
// propagates unchanged unless the caller opts in.
func Recover(logger *slog.Logger) Middleware {
	return func(ctx context.Context, call *signature.Call, next Handler) (v any, retErr error) {
		defer func() {
			if r := recover(); r != nil {
				stack := string(debug.Stack())
				logger.Error("dispatched candidate panicked",
					slog.String("group", call.Group),
					slog.String("arguments", call.DescribeString()),
					slog.Any("panic", r),
					slog.String("stack", stack),
				)
				v = nil
				retErr = fmt.Errorf("panic in group %s: %v", call.Group, r)
			}
		}()
		return next(ctx)
	}
}

package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/xraph/overload/signature"
)

// Logging returns middleware that logs dispatch start and outcome.
func Logging(logger *slog.Logger) Middleware {
	return func(ctx context.Context, call *signature.Call, next Handler) (any, error) {
		logger.Info("dispatch started",
			slog.String("group", call.Group),
			slog.Int("args", len(call.Args)),
			slog.Int("named", len(call.Named)),
		)

		start := time.Now()
		v, err := next(ctx)
		elapsed := time.Since(start)

		if err != nil {
			logger.Error("dispatch failed",
				slog.String("group", call.Group),
				slog.String("arguments", call.DescribeString()),
				slog.Duration("elapsed", elapsed),
				slog.String("error", err.Error()),
			)
		} else {
			logger.Info("dispatch completed",
				slog.String("group", call.Group),
				slog.Duration("elapsed", elapsed),
			)
		}

		return v, err
	}
}

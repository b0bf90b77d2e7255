package middleware

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor returns a Connect interceptor that logs every RPC call
// with its procedure, caller, Connect code and duration. Server-side failures
// (internal, unknown, data loss) log at error level, client errors at warn.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			attrs := []any{
				"procedure", req.Spec().Procedure,
				"user_id", GetUserID(ctx), // empty if anonymous
				"role", GetRole(ctx),
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if err == nil {
				slog.Info("RPC ok", attrs...)
				return resp, nil
			}

			code := connect.CodeOf(err)
			attrs = append(attrs, "code", code, "error", err)
			switch code {
			case connect.CodeInternal, connect.CodeUnknown, connect.CodeDataLoss:
				slog.Error("RPC error", attrs...)
			default:
				slog.Warn("RPC error", attrs...)
			}
			return resp, err
		}
	}
}

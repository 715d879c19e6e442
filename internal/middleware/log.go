package middleware

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// LogRequests logs every unary call at debug level. Failed calls are logged
// with their Connect code, so expected client errors stay out of error logs.
func LogRequests() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			attrs := []any{
				"procedure", req.Spec().Procedure,
				"req", req.Any(),
				"peer", req.Peer().Addr,
			}

			slog.DebugContext(ctx, "got request", attrs...)

			resp, err := next(ctx, req)
			attrs = append(attrs, "duration", time.Since(start))
			if err != nil {
				attrs = append(attrs, "code", connect.CodeOf(err), "error", err)
				slog.DebugContext(ctx, "request failed", attrs...)
				return resp, err
			}

			attrs = append(attrs, "resp", resp.Any())
			slog.DebugContext(ctx, "request processed", attrs...)
			return resp, nil
		}
	}
}

package reqctx

import (
	"context"
	"time"
)

type ctxKey int

const keyRequestMeta ctxKey = iota

// RequestMeta holds per-request metadata set by HTTP middleware.
type RequestMeta struct {
	// RequestID is the X-Request-Id value, either forwarded or a fresh UUID.
	RequestID string

	// ClientIP may come from X-Forwarded-For when a proxy header is configured.
	ClientIP string

	UserAgent string

	RequestedAt time.Time
}

func WithRequestMeta(ctx context.Context, meta *RequestMeta) context.Context {
	return context.WithValue(ctx, keyRequestMeta, meta)
}

// RequestMetaFromContext returns nil, false if no metadata was stored.
func RequestMetaFromContext(ctx context.Context) (*RequestMeta, bool) {
	meta, ok := ctx.Value(keyRequestMeta).(*RequestMeta)
	return meta, ok && meta != nil
}

// RequestIDFromContext returns "" if RequestMeta is not set.
func RequestIDFromContext(ctx context.Context) string {
	meta, ok := RequestMetaFromContext(ctx)
	if !ok {
		return ""
	}
	return meta.RequestID
}

// LogAttrs returns slog key/value pairs for the request, or nil outside a request.
func LogAttrs(ctx context.Context) []any {
	meta, ok := RequestMetaFromContext(ctx)
	if !ok {
		return nil
	}
	return []any{"request_id", meta.RequestID, "client_ip", meta.ClientIP}
}

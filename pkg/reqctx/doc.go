// Package reqctx carries request-scoped metadata through context.Context.
//
// The HTTP layer stores a RequestMeta for every request; services read it
// back to tag log lines with the request id and client address.
//
//	ctx = reqctx.WithRequestMeta(ctx, &reqctx.RequestMeta{
//	    RequestID:   "abc-123",
//	    ClientIP:    "192.168.1.1",
//	    RequestedAt: time.Now(),
//	})
//
//	slog.InfoContext(ctx, "contact submitted", reqctx.LogAttrs(ctx)...)
package reqctx

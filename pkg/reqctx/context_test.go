package reqctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRequestMeta(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", RequestIDFromContext(ctx))
	assert.Nil(t, LogAttrs(ctx))

	ctx = WithRequestMeta(ctx, &RequestMeta{RequestID: "abc", ClientIP: "10.0.0.1", RequestedAt: time.Now()})
	assert.Equal(t, "abc", RequestIDFromContext(ctx))
	assert.Equal(t, []any{"request_id", "abc", "client_ip", "10.0.0.1"}, LogAttrs(ctx))
}

func TestRequestMetaFromContext_TypedNil(t *testing.T) {
	ctx := WithRequestMeta(context.Background(), nil)
	_, ok := RequestMetaFromContext(ctx)
	assert.False(t, ok)
}

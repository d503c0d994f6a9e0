package contextutil_test

import (
	"context"
	"testing"

	"go-pms/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestExtractMetadata(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "rid-1")
	ctx = contextutil.WithUserID(ctx, "emp-1")
	ctx = contextutil.WithRole(ctx, "admin")

	md := contextutil.ExtractMetadata(ctx)

	assert.Equal(t, "rid-1", md.RequestID)
	assert.Equal(t, "emp-1", md.UserID)
	assert.Equal(t, "admin", md.Role)
	assert.Len(t, md.Fields(), 3)
}

func TestGetLogger_Fallbacks(t *testing.T) {
	fallback := zap.NewExample()

	assert.Same(t, fallback, contextutil.GetLogger(context.Background(), fallback))
	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))

	scoped := zap.NewNop()
	ctx := contextutil.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, contextutil.GetLogger(ctx, fallback))
}

package util

import (
	"context"

	"github.com/RoyceAzure/lab/ordercenter/internal/constants"
)

// GetRequestIDFromContext 從請求上下文取得request id, 不存在時回傳"unknown"
func GetRequestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(constants.RequestIDKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return "unknown"
}

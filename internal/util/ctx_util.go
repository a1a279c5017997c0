package util

import (
	"context"

	"github.com/jonier/api-store/internal/constants"
	"github.com/jonier/api-store/internal/token"
)

// GetTokenPayloadFromContext returns the token payload the auth payload
// middleware stashed on the request context, or nil when the request carried
// no valid token.
func GetTokenPayloadFromContext(ctx context.Context) *token.Payload {
	if v := ctx.Value(constants.AuthorizationPayloadKey); v != nil {
		if payload, ok := v.(*token.Payload); ok {
			return payload
		}
	}
	return nil
}

func GetRequestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(constants.RequestIDKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return "unknown"
}

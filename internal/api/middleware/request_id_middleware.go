package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonier/api-store/internal/constants"
)

// RequestIDMiddleware tags every request with a uuid so log lines of the same
// request can be correlated.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		ctx := context.WithValue(r.Context(), constants.RequestIDKey, requestID)
		w.Header().Set("X-Request-Id", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/jonier/api-store/internal/api"
	"github.com/jonier/api-store/internal/apperr"
	"github.com/rs/zerolog/log"
)

// RecoverMiddleware turns a handler panic into the generic 500 envelope; the
// process keeps serving.
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Interface("panic", err).
					Bytes("stack", debug.Stack()).
					Msg("request panicked")

				api.ErrorJSONMessages(w, int(apperr.InternalErrorCode),
					[]string{"An unknown error occurred"})
			}
		}()

		next.ServeHTTP(w, r)
	})
}

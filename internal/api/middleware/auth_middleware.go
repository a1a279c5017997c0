package middleware

import (
	"net/http"

	"github.com/jonier/api-store/internal/api"
	"github.com/jonier/api-store/internal/apperr"
	"github.com/jonier/api-store/internal/util"
)

// AuthMiddleware rejects requests whose context carries no verified token
// payload. A missing or expired token maps to the same 401 class.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if util.GetTokenPayloadFromContext(r.Context()) == nil {
			api.ErrorJSON(w, apperr.New(apperr.UnauthenticatedCode, "A token is needed, it may have expired!"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

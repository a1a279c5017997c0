package middleware

import (
	"net/http"
	"os"
	"time"

	"github.com/jonier/api-store/internal/util"
	"github.com/rs/zerolog"
)

type StatusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *StatusRecorder) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *StatusRecorder) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// LoggerMiddleware writes one structured line per request: request id, caller
// identity when a token was presented, method, url, status, latency.
func LoggerMiddleware(logger *zerolog.Logger) func(next http.Handler) http.Handler {
	// resolve the fallback once; the closure below runs concurrently
	if logger == nil {
		temp := zerolog.New(os.Stdout).With().Timestamp().Logger()
		logger = &temp
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorder := &StatusRecorder{ResponseWriter: w}
			start := time.Now()

			next.ServeHTTP(recorder, r)

			event := logger.Info().
				Str("request_id", util.GetRequestIDFromContext(r.Context())).
				Str("method", r.Method).
				Str("url", r.URL.String()).
				Int("status", recorder.Status()).
				Dur("elapsed", time.Since(start))

			if payload := util.GetTokenPayloadFromContext(r.Context()); payload != nil {
				event = event.Int64("user_id", payload.UserID).Str("email", payload.Email)
			}

			event.Msg("request completed")
		})
	}
}

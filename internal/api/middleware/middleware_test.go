package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/jonier/api-store/internal/token"
	"github.com/jonier/api-store/internal/util"
	"github.com/stretchr/testify/require"
)

func newTestMaker(t *testing.T) token.Maker {
	t.Helper()
	maker, err := token.NewJWTMaker("0123456789abcdef")
	require.NoError(t, err)
	return maker
}

func TestAuthPayloadMiddleware(t *testing.T) {
	maker := newTestMaker(t)
	accessToken, _, err := maker.CreateToken(7, "jonier@gmail.com", time.Minute)
	require.NoError(t, err)

	var seen *token.Payload
	handler := AuthPayloadMiddleware(maker)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = util.GetTokenPayloadFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("authorization", "Bearer "+accessToken)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, seen)
	require.Equal(t, int64(7), seen.UserID)
	require.Equal(t, "jonier@gmail.com", seen.Email)
}

func TestAuthPayloadMiddlewarePassesThroughBadTokens(t *testing.T) {
	maker := newTestMaker(t)
	handler := AuthPayloadMiddleware(maker)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Nil(t, util.GetTokenPayloadFromContext(r.Context()))
		w.WriteHeader(http.StatusOK)
	}))

	for _, header := range []string{"", "Bearer", "Basic abc123", "Bearer not-a-jwt"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestAuthMiddlewareRejectsMissingPayload(t *testing.T) {
	handler := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token payload")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/users/1", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body struct {
		Status int `json:"status"`
		Error  struct {
			Messages []string `json:"messages"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, http.StatusUnauthorized, body.Status)
	require.Equal(t, []string{"A token is needed, it may have expired!"}, body.Error.Messages)
}

func TestAuthMiddlewareWithToken(t *testing.T) {
	maker := newTestMaker(t)
	accessToken, _, err := maker.CreateToken(7, "jonier@gmail.com", time.Minute)
	require.NoError(t, err)

	handler := AuthPayloadMiddleware(maker)(AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/1", nil)
	req.Header.Set("authorization", "Bearer "+accessToken)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequestIDMiddleware(t *testing.T) {
	var inCtx string
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inCtx = util.GetRequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, inCtx)
	require.Equal(t, inCtx, rec.Header().Get("X-Request-Id"))
}

func TestLoggerMiddlewareNilLogger(t *testing.T) {
	handler := LoggerMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
			require.Equal(t, http.StatusOK, rec.Code)
		}()
	}
	wg.Wait()
}

func TestRecoverMiddleware(t *testing.T) {
	handler := RecoverMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body struct {
		Status int `json:"status"`
		Error  struct {
			Messages []string `json:"messages"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, http.StatusInternalServerError, body.Status)
	require.Equal(t, []string{"An unknown error occurred"}, body.Error.Messages)
}

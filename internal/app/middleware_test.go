package app

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-mfg/lumina/internal/shared"
)

func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessions := shared.NewSessionManager(client, "test_session", "secret", time.Hour, false)
	csrf := shared.NewCSRFManager("csrfsecret")

	r := chi.NewRouter()
	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		SessionManager: sessions,
		CSRFManager:    csrf,
	}) {
		r.Use(mw)
	}

	r.Post("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/token", func(w http.ResponseWriter, r *http.Request) {
		sess := shared.SessionFromContext(r.Context())
		token, err := csrf.EnsureToken(r.Context(), sess)
		require.NoError(t, err)
		_, _ = w.Write([]byte(token))
	})
	r.Post("/api/inventory", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func TestCSRFBlocksMutationWithoutToken(t *testing.T) {
	router := newTestRouter(t)

	res := httptest.NewRecorder()
	router.ServeHTTP(res, httptest.NewRequest(http.MethodPost, "/api/inventory", nil))

	assert.Equal(t, http.StatusForbidden, res.Code)
}

func TestCSRFExemptsLogin(t *testing.T) {
	router := newTestRouter(t)

	res := httptest.NewRecorder()
	router.ServeHTTP(res, httptest.NewRequest(http.MethodPost, "/auth/login", nil))

	assert.Equal(t, http.StatusOK, res.Code)
}

func TestCSRFAcceptsHeaderToken(t *testing.T) {
	router := newTestRouter(t)

	tokenRes := httptest.NewRecorder()
	router.ServeHTTP(tokenRes, httptest.NewRequest(http.MethodGet, "/token", nil))
	require.Equal(t, http.StatusOK, tokenRes.Code)
	token := tokenRes.Body.String()
	require.NotEmpty(t, token)

	cookies := tokenRes.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodPost, "/api/inventory", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	req.Header.Set(shared.CSRFHeader, token)

	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	assert.Equal(t, http.StatusOK, res.Code)
}

func TestSessionCookieIssuedOnFirstResponse(t *testing.T) {
	router := newTestRouter(t)

	res := httptest.NewRecorder()
	router.ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/token", nil))

	var found bool
	for _, c := range res.Result().Cookies() {
		if c.Name == "test_session" && c.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "expected session cookie to be set")
}

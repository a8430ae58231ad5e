package inventory_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-mfg/lumina/internal/inventory"
	"github.com/lumina-mfg/lumina/internal/rbac"
	"github.com/lumina-mfg/lumina/internal/shared"
)

func newRouter(t *testing.T) (chi.Router, *shared.SessionManager) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessions := shared.NewSessionManager(client, "test_session", "secret", time.Hour, false)

	repo := inventory.NewMemoryRepository()
	repo.Seed(inventory.DemoItems())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := inventory.NewHandler(logger, inventory.NewService(repo, rbac.NewGate()))

	r := chi.NewRouter()
	r.Route("/api/inventory", handler.MountRoutes)
	return r, sessions
}

func requestAs(t *testing.T, sessions *shared.SessionManager, role string, method, target, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	sess, err := sessions.Load(context.Background(), req)
	require.NoError(t, err)
	if role != "" {
		sess.SetUser(role)
		sess.Set(rbac.SessionRoleKey, role)
	}
	return req.WithContext(shared.ContextWithSession(req.Context(), sess))
}

func TestListInventoryAttachesStatus(t *testing.T) {
	router, sessions := newRouter(t)

	req := requestAs(t, sessions, "staff", http.MethodGet, "/api/inventory", "")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusOK, res.Code)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &items))
	require.Len(t, items, 5)
	assert.Equal(t, "In Stock", items[0]["status"])
	assert.Equal(t, "Out of Stock", items[2]["status"])
}

func TestListInventoryUnauthenticated(t *testing.T) {
	router, sessions := newRouter(t)

	req := requestAs(t, sessions, "", http.MethodGet, "/api/inventory", "")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusUnauthorized, res.Code)
}

func TestCreateInventoryForbiddenForStaff(t *testing.T) {
	router, sessions := newRouter(t)

	body := `{"sku":"GEL-601","name":"Aloe Shower Gel","category":"Gels","quantity":40,"min_quantity":20,"price":9.99,"supplier":"Coast Botanics"}`
	req := requestAs(t, sessions, "staff", http.MethodPost, "/api/inventory", body)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	assert.Equal(t, http.StatusForbidden, res.Code)
}

func TestCreateInventoryAsAdmin(t *testing.T) {
	router, sessions := newRouter(t)

	body := `{"sku":"GEL-601","name":"Aloe Shower Gel","category":"Gels","quantity":40,"min_quantity":20,"price":9.99,"supplier":"Coast Botanics"}`
	req := requestAs(t, sessions, "admin", http.MethodPost, "/api/inventory", body)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusCreated, res.Code)

	var item map[string]any
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &item))
	assert.Equal(t, float64(6), item["id"])
	assert.Equal(t, float64(0), item["total_sold"])
	assert.Equal(t, "In Stock", item["status"])
}

func TestCreateInventoryTypeMismatchNamesField(t *testing.T) {
	router, sessions := newRouter(t)

	body := `{"sku":"GEL-601","name":"Aloe Shower Gel","category":"Gels","quantity":"forty","min_quantity":20,"price":9.99,"supplier":"Coast Botanics"}`
	req := requestAs(t, sessions, "admin", http.MethodPost, "/api/inventory", body)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)

	require.Equal(t, http.StatusBadRequest, res.Code)

	var problem map[string]any
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &problem))
	assert.Equal(t, "quantity", problem["field"])
}

func TestDeleteInventory(t *testing.T) {
	router, sessions := newRouter(t)

	req := requestAs(t, sessions, "admin", http.MethodDelete, "/api/inventory/2", "")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	require.Equal(t, http.StatusNoContent, res.Code)

	listReq := requestAs(t, sessions, "admin", http.MethodGet, "/api/inventory", "")
	listRes := httptest.NewRecorder()
	router.ServeHTTP(listRes, listReq)

	var items []map[string]any
	require.NoError(t, json.Unmarshal(listRes.Body.Bytes(), &items))
	assert.Len(t, items, 4)
	for _, item := range items {
		assert.NotEqual(t, float64(2), item["id"])
	}
}

package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/lumina-mfg/lumina/internal/alerts"
	"github.com/lumina-mfg/lumina/internal/auth"
	"github.com/lumina-mfg/lumina/internal/dashboard"
	"github.com/lumina-mfg/lumina/internal/inventory"
	"github.com/lumina-mfg/lumina/internal/observability"
	"github.com/lumina-mfg/lumina/internal/production"
	"github.com/lumina-mfg/lumina/internal/sales"
	"github.com/lumina-mfg/lumina/internal/shared"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger         *slog.Logger
	Config         *Config
	SessionManager *shared.SessionManager
	CSRFManager    *shared.CSRFManager

	AuthHandler       *auth.Handler
	InventoryHandler  *inventory.Handler
	ProductionHandler *production.Handler
	SalesHandler      *sales.Handler
	AlertsHandler     *alerts.Handler
	DashboardHandler  *dashboard.Handler

	Metrics *observability.Metrics
}

// NewRouter constructs the chi.Router with Lumina defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:         params.Logger,
		Config:         params.Config,
		SessionManager: params.SessionManager,
		CSRFManager:    params.CSRFManager,
		Metrics:        params.Metrics,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/auth", params.AuthHandler.MountRoutes)

	r.Route("/api", func(r chi.Router) {
		r.Route("/inventory", params.InventoryHandler.MountRoutes)
		r.Route("/production", params.ProductionHandler.MountRoutes)
		r.Route("/sales", params.SalesHandler.MountRoutes)
		r.Route("/alerts", params.AlertsHandler.MountRoutes)
		r.Route("/dashboard", params.DashboardHandler.MountRoutes)
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r
}

package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lumina-mfg/lumina/internal/platform/httpx"
	"github.com/lumina-mfg/lumina/internal/rbac"
)

// Handler wires the dashboard JSON endpoint.
type Handler struct {
	logger  *slog.Logger
	service *Service
	printer *message.Printer
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
		printer: message.NewPrinter(language.English),
	}
}

// MountRoutes registers dashboard routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.Stats)
}

type statsResponse struct {
	Stats
	TotalRevenueDisplay string `json:"total_revenue_display"`
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	role := rbac.RoleFromContext(r.Context())
	stats, err := h.service.Stats(r.Context(), role)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, statsResponse{
		Stats:               stats,
		TotalRevenueDisplay: h.printer.Sprintf("%.2f", stats.TotalRevenue),
	})
}

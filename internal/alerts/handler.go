package alerts

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/lumina-mfg/lumina/internal/platform/httpx"
	"github.com/lumina-mfg/lumina/internal/rbac"
	"github.com/lumina-mfg/lumina/internal/shared"
)

// Handler wires the alert JSON endpoints.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers alert routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/{id}/resolve", h.Resolve)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	role := rbac.RoleFromContext(r.Context())
	items, err := h.service.List(r.Context(), role)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, items)
}

func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	role := rbac.RoleFromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.RespondError(w, shared.MalformedField("id", "must be an integer"))
		return
	}

	alert, err := h.service.Resolve(r.Context(), role, id)
	if err != nil {
		h.logger.Warn("resolve alert rejected", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, alert)
}

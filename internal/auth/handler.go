package auth

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/lumina-mfg/lumina/internal/observability"
	"github.com/lumina-mfg/lumina/internal/platform/httpx"
	"github.com/lumina-mfg/lumina/internal/rbac"
	"github.com/lumina-mfg/lumina/internal/shared"
)

// Handler wires HTTP endpoints for authentication flows.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	sessions *shared.SessionManager
	csrf     *shared.CSRFManager
	metrics  *observability.Metrics
	validate *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, sessions *shared.SessionManager, csrf *shared.CSRFManager, metrics *observability.Metrics) *Handler {
	return &Handler{
		logger:   logger,
		service:  service,
		sessions: sessions,
		csrf:     csrf,
		metrics:  metrics,
		validate: shared.NewValidator(),
	}
}

// MountRoutes registers auth routes on provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Success   bool   `json:"success"`
	Role      string `json:"role"`
	CSRFToken string `json:"csrf_token"`
}

// Login authenticates the request and binds username and role to the
// session. The CSRF token for subsequent mutating calls rides along in the
// response.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}
	if err := shared.AsValidationError(h.validate.Struct(req)); err != nil {
		httpx.RespondError(w, err)
		return
	}

	user, err := h.service.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if h.logger != nil {
			h.logger.Warn("login rejected", slog.String("username", req.Username))
		}
		h.metrics.RecordLoginFailure()
		httpx.RespondError(w, err)
		return
	}

	sess := shared.SessionFromContext(r.Context())
	if sess == nil {
		httpx.RespondError(w, shared.ErrUnauthorized)
		return
	}
	sess.SetUser(user.Username)
	sess.Set(rbac.SessionRoleKey, string(user.Role))

	token, err := h.csrf.EnsureToken(r.Context(), sess)
	if err != nil && h.logger != nil {
		h.logger.Warn("issue csrf token", slog.Any("error", err))
	}

	httpx.JSON(w, http.StatusOK, loginResponse{
		Success:   true,
		Role:      string(user.Role),
		CSRFToken: token,
	})
}

// Logout destroys the session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if sess := shared.SessionFromContext(r.Context()); sess != nil {
		h.sessions.Destroy(sess)
	}
	w.WriteHeader(http.StatusNoContent)
}

package alerts

import (
	"context"

	"github.com/lumina-mfg/lumina/internal/rbac"
)

// Service is the access layer for security alerts. Every operation is
// admin-only, including reads.
type Service struct {
	repo Repository
	gate *rbac.Gate
}

// NewService constructs a Service.
func NewService(repo Repository, gate *rbac.Gate) *Service {
	return &Service{repo: repo, gate: gate}
}

// List returns all alerts.
func (s *Service) List(ctx context.Context, role rbac.Role) ([]Alert, error) {
	if err := s.gate.Authorize(role, rbac.ResourceAlerts, rbac.ActionRead); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

// Resolve marks the alert resolved. Resolving an already-resolved alert
// succeeds silently; the transition is terminal.
func (s *Service) Resolve(ctx context.Context, role rbac.Role, id int64) (Alert, error) {
	if err := s.gate.Authorize(role, rbac.ResourceAlerts, rbac.ActionWrite); err != nil {
		return Alert{}, err
	}
	alert, err := s.repo.Get(ctx, id)
	if err != nil {
		return Alert{}, err
	}
	alert.Status = StatusResolved
	return s.repo.Replace(ctx, id, alert)
}

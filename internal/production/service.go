package production

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/lumina-mfg/lumina/internal/rbac"
	"github.com/lumina-mfg/lumina/internal/shared"
)

// Service is the access layer for production lines. Writes are open to admin
// and production roles; reads to any authenticated role.
type Service struct {
	repo     Repository
	gate     *rbac.Gate
	validate *validator.Validate
}

// NewService constructs a Service.
func NewService(repo Repository, gate *rbac.Gate) *Service {
	return &Service{repo: repo, gate: gate, validate: shared.NewValidator()}
}

// List returns all production lines.
func (s *Service) List(ctx context.Context, role rbac.Role) ([]Line, error) {
	if err := s.gate.Authorize(role, rbac.ResourceProduction, rbac.ActionRead); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

// Create stores a new line. Materials default to an empty sequence.
func (s *Service) Create(ctx context.Context, role rbac.Role, req CreateLineRequest) (Line, error) {
	if err := s.gate.Authorize(role, rbac.ResourceProduction, rbac.ActionWrite); err != nil {
		return Line{}, err
	}
	if err := shared.AsValidationError(s.validate.Struct(req)); err != nil {
		return Line{}, err
	}
	materials := req.Materials
	if materials == nil {
		materials = []Material{}
	}
	return s.repo.Insert(ctx, Line{
		Name:             req.Name,
		Product:          req.Product,
		Materials:        materials,
		OutputRate:       *req.OutputRate,
		OutputUnit:       req.OutputUnit,
		Status:           req.Status,
		Efficiency:       *req.Efficiency,
		TodayProduced:    *req.TodayProduced,
		TargetProduction: *req.TargetProduction,
	})
}

// Update replaces the scalar fields of a line. The stored materials list
// carries over unchanged.
func (s *Service) Update(ctx context.Context, role rbac.Role, id int64, req UpdateLineRequest) (Line, error) {
	if err := s.gate.Authorize(role, rbac.ResourceProduction, rbac.ActionWrite); err != nil {
		return Line{}, err
	}
	if err := shared.AsValidationError(s.validate.Struct(req)); err != nil {
		return Line{}, err
	}
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return Line{}, err
	}
	return s.repo.Replace(ctx, id, Line{
		ID:               existing.ID,
		Name:             req.Name,
		Product:          req.Product,
		Materials:        existing.Materials,
		OutputRate:       *req.OutputRate,
		OutputUnit:       req.OutputUnit,
		Status:           req.Status,
		Efficiency:       *req.Efficiency,
		TodayProduced:    *req.TodayProduced,
		TargetProduction: *req.TargetProduction,
	})
}

package sales

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/lumina-mfg/lumina/internal/rbac"
	"github.com/lumina-mfg/lumina/internal/shared"
)

// Service is the access layer for sales orders. Writes are open to admin and
// sales roles; reads to any authenticated role.
type Service struct {
	repo     Repository
	gate     *rbac.Gate
	validate *validator.Validate
}

// NewService constructs a Service.
func NewService(repo Repository, gate *rbac.Gate) *Service {
	return &Service{repo: repo, gate: gate, validate: shared.NewValidator()}
}

// List returns all sales orders.
func (s *Service) List(ctx context.Context, role rbac.Role) ([]Order, error) {
	if err := s.gate.Authorize(role, rbac.ResourceSales, rbac.ActionRead); err != nil {
		return nil, err
	}
	return s.repo.List(ctx)
}

// Create stores a new order. Products default to an empty sequence.
func (s *Service) Create(ctx context.Context, role rbac.Role, req CreateOrderRequest) (Order, error) {
	if err := s.gate.Authorize(role, rbac.ResourceSales, rbac.ActionWrite); err != nil {
		return Order{}, err
	}
	if err := shared.AsValidationError(s.validate.Struct(req)); err != nil {
		return Order{}, err
	}
	products := req.Products
	if products == nil {
		products = []OrderProduct{}
	}
	return s.repo.Insert(ctx, Order{
		OrderNumber:    req.OrderNumber,
		Client:         req.Client,
		Products:       products,
		TotalAmount:    *req.TotalAmount,
		OrderDate:      req.OrderDate,
		DueDate:        req.DueDate,
		PaymentStatus:  req.PaymentStatus,
		DeliveryStatus: req.DeliveryStatus,
	})
}

// Update replaces the scalar fields of an order. The stored products list
// carries over unchanged.
func (s *Service) Update(ctx context.Context, role rbac.Role, id int64, req UpdateOrderRequest) (Order, error) {
	if err := s.gate.Authorize(role, rbac.ResourceSales, rbac.ActionWrite); err != nil {
		return Order{}, err
	}
	if err := shared.AsValidationError(s.validate.Struct(req)); err != nil {
		return Order{}, err
	}
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return Order{}, err
	}
	return s.repo.Replace(ctx, id, Order{
		ID:             existing.ID,
		OrderNumber:    req.OrderNumber,
		Client:         req.Client,
		Products:       existing.Products,
		TotalAmount:    *req.TotalAmount,
		OrderDate:      req.OrderDate,
		DueDate:        req.DueDate,
		PaymentStatus:  req.PaymentStatus,
		DeliveryStatus: req.DeliveryStatus,
	})
}

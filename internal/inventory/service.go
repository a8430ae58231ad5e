package inventory

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/lumina-mfg/lumina/internal/rbac"
	"github.com/lumina-mfg/lumina/internal/shared"
)

// Service is the access layer for inventory items: it enforces the permission
// gate, validates input, and applies the derived status on reads.
type Service struct {
	repo     Repository
	gate     *rbac.Gate
	validate *validator.Validate
}

// NewService constructs a Service.
func NewService(repo Repository, gate *rbac.Gate) *Service {
	return &Service{repo: repo, gate: gate, validate: shared.NewValidator()}
}

// List returns all items with their derived status. Any authenticated role
// may read.
func (s *Service) List(ctx context.Context, role rbac.Role) ([]ItemView, error) {
	if err := s.gate.Authorize(role, rbac.ResourceInventory, rbac.ActionRead); err != nil {
		return nil, err
	}
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, ViewOf(item))
	}
	return views, nil
}

// Create stores a new item. Admin only. TotalSold always starts at zero.
func (s *Service) Create(ctx context.Context, role rbac.Role, req CreateItemRequest) (ItemView, error) {
	if err := s.gate.Authorize(role, rbac.ResourceInventory, rbac.ActionWrite); err != nil {
		return ItemView{}, err
	}
	if err := shared.AsValidationError(s.validate.Struct(req)); err != nil {
		return ItemView{}, err
	}
	item, err := s.repo.Insert(ctx, Item{
		SKU:         req.SKU,
		Name:        req.Name,
		Category:    req.Category,
		Quantity:    *req.Quantity,
		MinQuantity: *req.MinQuantity,
		Price:       *req.Price,
		Supplier:    req.Supplier,
		ExpiryDate:  req.ExpiryDate,
		TotalSold:   0,
	})
	if err != nil {
		return ItemView{}, err
	}
	return ViewOf(item), nil
}

// Update replaces every mutable field of the item. Admin only. The id and
// the total_sold counter survive the replacement.
func (s *Service) Update(ctx context.Context, role rbac.Role, id int64, req UpdateItemRequest) (ItemView, error) {
	if err := s.gate.Authorize(role, rbac.ResourceInventory, rbac.ActionWrite); err != nil {
		return ItemView{}, err
	}
	if err := shared.AsValidationError(s.validate.Struct(req)); err != nil {
		return ItemView{}, err
	}
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return ItemView{}, err
	}
	item, err := s.repo.Replace(ctx, id, Item{
		ID:          existing.ID,
		SKU:         req.SKU,
		Name:        req.Name,
		Category:    req.Category,
		Quantity:    *req.Quantity,
		MinQuantity: *req.MinQuantity,
		Price:       *req.Price,
		Supplier:    req.Supplier,
		ExpiryDate:  req.ExpiryDate,
		TotalSold:   existing.TotalSold,
	})
	if err != nil {
		return ItemView{}, err
	}
	return ViewOf(item), nil
}

// Delete removes the item. Admin only; deleting an absent id is a no-op.
func (s *Service) Delete(ctx context.Context, role rbac.Role, id int64) error {
	if err := s.gate.Authorize(role, rbac.ResourceInventory, rbac.ActionDelete); err != nil {
		return err
	}
	return s.repo.Remove(ctx, id)
}

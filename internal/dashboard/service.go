// Package dashboard computes the landing-page summary statistics.
package dashboard

import (
	"context"

	"github.com/lumina-mfg/lumina/internal/inventory"
	"github.com/lumina-mfg/lumina/internal/production"
	"github.com/lumina-mfg/lumina/internal/rbac"
	"github.com/lumina-mfg/lumina/internal/sales"
)

// InventorySource supplies the live inventory records.
type InventorySource interface {
	List(ctx context.Context) ([]inventory.Item, error)
}

// ProductionSource supplies the live production line records.
type ProductionSource interface {
	List(ctx context.Context) ([]production.Line, error)
}

// SalesSource supplies the live sales order records.
type SalesSource interface {
	List(ctx context.Context) ([]sales.Order, error)
}

// Stats is the dashboard summary.
type Stats struct {
	TotalProducts int     `json:"total_products"`
	LowStock      int     `json:"low_stock"`
	ActiveLines   int     `json:"active_lines"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// Service recomputes Stats from live store state on every call. Nothing is
// cached, so concurrent mutations show up on the next read.
type Service struct {
	inventory  InventorySource
	production ProductionSource
	sales      SalesSource
	gate       *rbac.Gate
}

// NewService constructs a Service over the three record sources.
func NewService(inv InventorySource, prod ProductionSource, sls SalesSource, gate *rbac.Gate) *Service {
	return &Service{inventory: inv, production: prod, sales: sls, gate: gate}
}

// Stats computes the summary. Admin only, matching the dashboard page.
func (s *Service) Stats(ctx context.Context, role rbac.Role) (Stats, error) {
	if err := s.gate.Authorize(role, rbac.ResourceDashboard, rbac.ActionRead); err != nil {
		return Stats{}, err
	}

	items, err := s.inventory.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	lines, err := s.production.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	orders, err := s.sales.List(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{TotalProducts: len(items)}
	for _, item := range items {
		if inventory.StatusOf(item) == inventory.StatusLowStock {
			stats.LowStock++
		}
	}
	for _, line := range lines {
		if line.Status == production.StatusActive {
			stats.ActiveLines++
		}
	}
	for _, order := range orders {
		stats.TotalRevenue += order.TotalAmount
	}
	return stats, nil
}

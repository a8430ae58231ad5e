package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-mfg/lumina/internal/inventory"
	"github.com/lumina-mfg/lumina/internal/production"
	"github.com/lumina-mfg/lumina/internal/rbac"
	"github.com/lumina-mfg/lumina/internal/sales"
	"github.com/lumina-mfg/lumina/internal/shared"
)

func newService() (*Service, *inventory.MemoryRepository, *production.MemoryRepository, *sales.MemoryRepository) {
	inv := inventory.NewMemoryRepository()
	prod := production.NewMemoryRepository()
	sls := sales.NewMemoryRepository()
	return NewService(inv, prod, sls, rbac.NewGate()), inv, prod, sls
}

func TestStatsOverDemoData(t *testing.T) {
	svc, inv, prod, sls := newService()
	inv.Seed(inventory.DemoItems())
	prod.Seed(production.DemoLines())
	sls.Seed(sales.DemoOrders())

	stats, err := svc.Stats(context.Background(), rbac.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, 5, stats.TotalProducts)
	// Item 3 is out of stock (quantity 0), not low stock; no demo item sits
	// strictly between zero and its minimum.
	assert.Equal(t, 0, stats.LowStock)
	assert.Equal(t, 2, stats.ActiveLines)
	assert.InDelta(t, 63886.50, stats.TotalRevenue, 0.001)
}

func TestStatsRecomputeOnEveryCall(t *testing.T) {
	svc, inv, _, sls := newService()
	sls.Seed(sales.DemoOrders())

	before, err := svc.Stats(context.Background(), rbac.RoleAdmin)
	require.NoError(t, err)
	assert.InDelta(t, 63886.50, before.TotalRevenue, 0.001)

	_, err = sls.Insert(context.Background(), sales.Order{
		OrderNumber: "ORD-2025-009", Client: "New Client", TotalAmount: 100.50,
	})
	require.NoError(t, err)
	_, err = inv.Insert(context.Background(), inventory.Item{
		SKU: "MSK-701", Name: "Clay Mask", Category: "Masks",
		Quantity: 10, MinQuantity: 40,
	})
	require.NoError(t, err)

	after, err := svc.Stats(context.Background(), rbac.RoleAdmin)
	require.NoError(t, err)
	assert.InDelta(t, 63987.00, after.TotalRevenue, 0.001)
	assert.Equal(t, 1, after.TotalProducts)
	assert.Equal(t, 1, after.LowStock)
}

func TestStatsAdminOnly(t *testing.T) {
	svc, _, _, _ := newService()

	for _, role := range []rbac.Role{rbac.RoleSales, rbac.RoleProduction, rbac.RoleStaff} {
		_, err := svc.Stats(context.Background(), role)
		assert.ErrorIs(t, err, shared.ErrPermissionDenied, "role %s", role)
	}

	_, err := svc.Stats(context.Background(), "")
	assert.ErrorIs(t, err, shared.ErrUnauthorized)
}

func TestStatsEmptyStores(t *testing.T) {
	svc, _, _, _ := newService()

	stats, err := svc.Stats(context.Background(), rbac.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats)
}

package rbac

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumina-mfg/lumina/internal/shared"
)

func TestGateTable(t *testing.T) {
	gate := NewGate()

	cases := []struct {
		name     string
		role     Role
		resource Resource
		action   Action
		want     bool
	}{
		{"any role reads inventory", RoleStaff, ResourceInventory, ActionRead, true},
		{"staff cannot write inventory", RoleStaff, ResourceInventory, ActionWrite, false},
		{"sales cannot write inventory", RoleSales, ResourceInventory, ActionWrite, false},
		{"admin writes inventory", RoleAdmin, ResourceInventory, ActionWrite, true},
		{"admin deletes inventory", RoleAdmin, ResourceInventory, ActionDelete, true},
		{"production cannot delete inventory", RoleProduction, ResourceInventory, ActionDelete, false},
		{"production writes production", RoleProduction, ResourceProduction, ActionWrite, true},
		{"sales cannot write production", RoleSales, ResourceProduction, ActionWrite, false},
		{"sales writes sales", RoleSales, ResourceSales, ActionWrite, true},
		{"production cannot write sales", RoleProduction, ResourceSales, ActionWrite, false},
		{"staff cannot read alerts", RoleStaff, ResourceAlerts, ActionRead, false},
		{"admin reads alerts", RoleAdmin, ResourceAlerts, ActionRead, true},
		{"admin resolves alerts", RoleAdmin, ResourceAlerts, ActionWrite, true},
		{"sales cannot resolve alerts", RoleSales, ResourceAlerts, ActionWrite, false},
		{"admin reads dashboard", RoleAdmin, ResourceDashboard, ActionRead, true},
		{"staff cannot read dashboard", RoleStaff, ResourceDashboard, ActionRead, false},
		{"unknown role denied everywhere", Role("intern"), ResourceInventory, ActionRead, false},
		{"empty role denied everywhere", Role(""), ResourceSales, ActionRead, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, gate.Allows(tc.role, tc.resource, tc.action))
		})
	}
}

func TestAuthorizeErrorTaxonomy(t *testing.T) {
	gate := NewGate()

	assert.NoError(t, gate.Authorize(RoleAdmin, ResourceAlerts, ActionRead))
	assert.True(t, errors.Is(gate.Authorize("", ResourceInventory, ActionRead), shared.ErrUnauthorized))
	assert.True(t, errors.Is(gate.Authorize(RoleStaff, ResourceAlerts, ActionRead), shared.ErrPermissionDenied))
}

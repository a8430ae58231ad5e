// Package rbac holds the static role/resource/action grant table. The table
// is declarative and consulted by every service before a read of a restricted
// resource or any mutation; it has no transport or storage dependencies.
package rbac

import "github.com/lumina-mfg/lumina/internal/shared"

// Role identifies the acting user class. The zero value means unauthenticated
// and is denied everything.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSales      Role = "sales"
	RoleProduction Role = "production"
	RoleStaff      Role = "staff"
)

// Resource names one of the record collections.
type Resource string

const (
	ResourceInventory  Resource = "inventory"
	ResourceProduction Resource = "production"
	ResourceSales      Resource = "sales"
	ResourceAlerts     Resource = "alerts"
	ResourceDashboard  Resource = "dashboard"
)

// Action is the operation class being authorized. Write covers create,
// update, and the alert resolve transition.
type Action string

const (
	ActionRead   Action = "read"
	ActionWrite  Action = "write"
	ActionDelete Action = "delete"
)

var allRoles = []Role{RoleAdmin, RoleSales, RoleProduction, RoleStaff}

// Known reports whether the role is one of the four defined roles.
func Known(role Role) bool {
	for _, r := range allRoles {
		if r == role {
			return true
		}
	}
	return false
}

type grant struct {
	resource Resource
	action   Action
	role     Role
}

// Gate answers allow/deny for (role, resource, action) triples.
type Gate struct {
	grants map[grant]struct{}
}

// NewGate builds the gate with the application's fixed policy.
func NewGate() *Gate {
	g := &Gate{grants: make(map[grant]struct{})}

	g.allow(ResourceInventory, ActionRead, allRoles...)
	g.allow(ResourceInventory, ActionWrite, RoleAdmin)
	g.allow(ResourceInventory, ActionDelete, RoleAdmin)

	g.allow(ResourceProduction, ActionRead, allRoles...)
	g.allow(ResourceProduction, ActionWrite, RoleAdmin, RoleProduction)

	g.allow(ResourceSales, ActionRead, allRoles...)
	g.allow(ResourceSales, ActionWrite, RoleAdmin, RoleSales)

	g.allow(ResourceAlerts, ActionRead, RoleAdmin)
	g.allow(ResourceAlerts, ActionWrite, RoleAdmin)

	g.allow(ResourceDashboard, ActionRead, RoleAdmin)

	return g
}

func (g *Gate) allow(resource Resource, action Action, roles ...Role) {
	for _, role := range roles {
		g.grants[grant{resource: resource, action: action, role: role}] = struct{}{}
	}
}

// Allows reports whether the role may perform the action on the resource.
// Unknown or empty roles are always denied.
func (g *Gate) Allows(role Role, resource Resource, action Action) bool {
	if !Known(role) {
		return false
	}
	_, ok := g.grants[grant{resource: resource, action: action, role: role}]
	return ok
}

// Authorize returns the error taxonomy for a denied check: ErrUnauthorized
// when no identity is established, ErrPermissionDenied when the role is known
// but lacks the capability.
func (g *Gate) Authorize(role Role, resource Resource, action Action) error {
	if role == "" {
		return shared.ErrUnauthorized
	}
	if !g.Allows(role, resource, action) {
		return shared.ErrPermissionDenied
	}
	return nil
}

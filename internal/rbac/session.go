package rbac

import (
	"context"

	"github.com/lumina-mfg/lumina/internal/shared"
)

// SessionRoleKey is the session value under which the role is stored at login.
const SessionRoleKey = "role"

// RoleFromContext extracts the acting role from the request session. Returns
// the zero Role when no authenticated session is present.
func RoleFromContext(ctx context.Context) Role {
	sess := shared.SessionFromContext(ctx)
	if sess == nil || sess.User() == "" {
		return ""
	}
	return Role(sess.Get(SessionRoleKey))
}

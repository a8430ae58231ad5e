// Package auth authenticates the fixed operator accounts and manages the
// login session lifecycle.
package auth

import "github.com/lumina-mfg/lumina/internal/rbac"

// User is an operator account. Each account maps 1:1 to a role.
type User struct {
	Username     string
	PasswordHash string
	Role         rbac.Role
}

package auth

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/lumina-mfg/lumina/internal/rbac"
	"github.com/lumina-mfg/lumina/internal/shared"
)

// Repository resolves usernames to accounts.
type Repository interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
}

// StaticRepository holds the fixed four-account credential table. Passwords
// are hashed at construction so plaintext never sits in memory afterwards.
type StaticRepository struct {
	users map[string]*User
}

type seedAccount struct {
	username string
	password string
	role     rbac.Role
}

var defaultAccounts = []seedAccount{
	{username: "admin", password: "admin123", role: rbac.RoleAdmin},
	{username: "sales", password: "sales123", role: rbac.RoleSales},
	{username: "production", password: "production123", role: rbac.RoleProduction},
	{username: "staff", password: "staff123", role: rbac.RoleStaff},
}

// NewStaticRepository builds the credential table for the four fixed
// accounts.
func NewStaticRepository() (*StaticRepository, error) {
	users := make(map[string]*User, len(defaultAccounts))
	for _, account := range defaultAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(account.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		users[account.username] = &User{
			Username:     account.username,
			PasswordHash: string(hash),
			Role:         account.role,
		}
	}
	return &StaticRepository{users: users}, nil
}

// FindByUsername returns the account for the username.
func (r *StaticRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, shared.ErrInvalidCredentials
	}
	return user, nil
}

// Package identity exposes the read-only user facts this system consumes.
// Accounts, credentials, and sessions live in an external identity
// provider; only id, display name, and role are mirrored here.
package identity

import (
	"context"

	"ticketsystem/internal/shared/authorization"
)

type User struct {
	ID          uint
	DisplayName string
	Email       string
	Role        authorization.UserRole
}

// Directory answers identity questions for notification fan-out and
// assignment validation.
type Directory interface {
	GetByID(ctx context.Context, userID uint) (*User, error)
	Exists(ctx context.Context, userID uint) (bool, error)
	ListByRole(ctx context.Context, role authorization.UserRole) ([]*User, error)
}

// Package access holds the role-based visibility and workflow permission
// rules shared by every ticket operation. Both rule sets are plain data so
// each can be tested on its own and reused by queries, mutations, and the
// HTTP route guards alike.
package access

import "ticketsystem/internal/shared/authorization"

// Actor identifies the authenticated caller of an operation.
type Actor struct {
	UserID uint
	Role   authorization.UserRole
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

func (a Actor) IsDeveloper() bool {
	return a.Role.IsDeveloper()
}

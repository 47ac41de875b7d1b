package authorization

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleDeveloper UserRole = "developer"
	RoleUser      UserRole = "user"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsDeveloper() bool {
	return r == RoleDeveloper
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleDeveloper || r == RoleUser
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleUser
}

// ParseUserRoles maps a claim slice to valid roles, dropping unknown values.
func ParseUserRoles(ss []string) []UserRole {
	roles := make([]UserRole, 0, len(ss))
	for _, s := range ss {
		if role := UserRole(s); role.IsValid() {
			roles = append(roles, role)
		}
	}
	return roles
}

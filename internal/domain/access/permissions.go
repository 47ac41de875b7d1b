package access

import "ticketsystem/internal/shared/authorization"

// Action enumerates the gated operations of the system.
type Action string

const (
	ActionCreateTicket   Action = "ticket:create"
	ActionEditTicket     Action = "ticket:edit"
	ActionReassignTicket Action = "ticket:reassign"
	ActionCloseTicket    Action = "ticket:close"
	ActionReopenTicket   Action = "ticket:reopen"
	ActionDeleteTicket   Action = "ticket:delete"
	ActionModifyProject  Action = "project:modify"
	ActionDeleteProject  Action = "project:delete"
	ActionViewDashboard  Action = "dashboard:view"
)

// Rule is the outcome of a matrix cell.
type Rule int

const (
	Deny Rule = iota
	Allow
	// AllowIfUnassignedOrSelf allows the action only while the ticket has
	// no assignee or is assigned to the actor.
	AllowIfUnassignedOrSelf
)

// permissionMatrix is the whole workflow policy as data: action x role.
// Ownership conditions are carried as AllowIfUnassignedOrSelf and resolved
// against the target ticket in Can.
var permissionMatrix = map[Action]map[authorization.UserRole]Rule{
	ActionCreateTicket: {
		authorization.RoleAdmin:     Allow,
		authorization.RoleDeveloper: Allow,
		authorization.RoleUser:      Allow,
	},
	ActionEditTicket: {
		authorization.RoleAdmin:     Allow,
		authorization.RoleDeveloper: AllowIfUnassignedOrSelf,
		authorization.RoleUser:      Deny,
	},
	ActionReassignTicket: {
		authorization.RoleAdmin:     Allow,
		authorization.RoleDeveloper: Deny,
		authorization.RoleUser:      Deny,
	},
	ActionCloseTicket: {
		authorization.RoleAdmin:     Allow,
		authorization.RoleDeveloper: AllowIfUnassignedOrSelf,
		authorization.RoleUser:      Deny,
	},
	ActionReopenTicket: {
		authorization.RoleAdmin:     Allow,
		authorization.RoleDeveloper: AllowIfUnassignedOrSelf,
		authorization.RoleUser:      Deny,
	},
	ActionDeleteTicket: {
		authorization.RoleAdmin:     Allow,
		authorization.RoleDeveloper: Deny,
		authorization.RoleUser:      Deny,
	},
	ActionModifyProject: {
		authorization.RoleAdmin:     Allow,
		authorization.RoleDeveloper: Allow,
		authorization.RoleUser:      Deny,
	},
	ActionDeleteProject: {
		authorization.RoleAdmin:     Allow,
		authorization.RoleDeveloper: Deny,
		authorization.RoleUser:      Deny,
	},
	ActionViewDashboard: {
		authorization.RoleAdmin:     Allow,
		authorization.RoleDeveloper: Deny,
		authorization.RoleUser:      Deny,
	},
}

// RuleFor returns the matrix cell for an action and role.
func RuleFor(action Action, role authorization.UserRole) Rule {
	roles, ok := permissionMatrix[action]
	if !ok {
		return Deny
	}
	rule, ok := roles[role]
	if !ok {
		return Deny
	}
	return rule
}

// CanPerform resolves an action that does not target a specific ticket.
// Ownership-conditional cells count as allowed here; the ticket-level check
// happens in Can.
func CanPerform(actor Actor, action Action) bool {
	return RuleFor(action, actor.Role) != Deny
}

// Can resolves an action against a specific ticket's creator and assignee.
func Can(actor Actor, action Action, assigneeID *uint) bool {
	switch RuleFor(action, actor.Role) {
	case Allow:
		return true
	case AllowIfUnassignedOrSelf:
		return assigneeID == nil || *assigneeID == actor.UserID
	default:
		return false
	}
}

// Actions returns every action known to the matrix, for policy seeding.
func Actions() []Action {
	actions := make([]Action, 0, len(permissionMatrix))
	for a := range permissionMatrix {
		actions = append(actions, a)
	}
	return actions
}

// RolesAllowed returns the roles whose cell for the action is not Deny.
func RolesAllowed(action Action) []authorization.UserRole {
	var roles []authorization.UserRole
	for _, r := range []authorization.UserRole{
		authorization.RoleAdmin,
		authorization.RoleDeveloper,
		authorization.RoleUser,
	} {
		if RuleFor(action, r) != Deny {
			roles = append(roles, r)
		}
	}
	return roles
}

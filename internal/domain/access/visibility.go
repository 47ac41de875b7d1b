package access

import "ticketsystem/internal/shared/authorization"

// TicketScope is the visibility predicate for one actor, consumed by list
// queries and re-applied on single-ticket reads. Exactly one of the three
// shapes is active: everything, creator-or-assignee, or creator only.
type TicketScope struct {
	All bool
	// CreatorOrAssigneeID scopes to tickets the user created or is
	// assigned to.
	CreatorOrAssigneeID *uint
	// CreatorID scopes to tickets the user created.
	CreatorID *uint
}

// ScopeFor returns the ticket visibility scope for an actor. Unknown roles
// get the most restrictive scope.
func ScopeFor(actor Actor) TicketScope {
	switch actor.Role {
	case authorization.RoleAdmin:
		return TicketScope{All: true}
	case authorization.RoleDeveloper:
		id := actor.UserID
		return TicketScope{CreatorOrAssigneeID: &id}
	default:
		id := actor.UserID
		return TicketScope{CreatorID: &id}
	}
}

// Allows reports whether a ticket with the given creator and assignee falls
// inside the scope.
func (s TicketScope) Allows(creatorID uint, assigneeID *uint) bool {
	switch {
	case s.All:
		return true
	case s.CreatorOrAssigneeID != nil:
		if creatorID == *s.CreatorOrAssigneeID {
			return true
		}
		return assigneeID != nil && *assigneeID == *s.CreatorOrAssigneeID
	case s.CreatorID != nil:
		return creatorID == *s.CreatorID
	default:
		return false
	}
}

// CanViewTicket is the single-ticket form of the visibility predicate.
func CanViewTicket(actor Actor, creatorID uint, assigneeID *uint) bool {
	return ScopeFor(actor).Allows(creatorID, assigneeID)
}

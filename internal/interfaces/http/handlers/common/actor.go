// Package common holds helpers shared by the HTTP handler packages.
package common

import (
	"github.com/gin-gonic/gin"

	"ticketsystem/internal/domain/access"
	"ticketsystem/internal/shared/authorization"
	"ticketsystem/internal/shared/constants"
)

// ActorFromContext rebuilds the authenticated caller from the values the
// auth middleware stored. The second return is false when the request never
// passed authentication.
func ActorFromContext(c *gin.Context) (access.Actor, bool) {
	rawID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return access.Actor{}, false
	}

	userID, ok := rawID.(uint)
	if !ok || userID == 0 {
		return access.Actor{}, false
	}

	return access.Actor{
		UserID: userID,
		Role:   authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole)),
	}, true
}

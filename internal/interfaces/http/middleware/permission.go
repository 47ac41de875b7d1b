package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketsystem/internal/domain/access"
	"ticketsystem/internal/infrastructure/permission"
	"ticketsystem/internal/shared/constants"
	"ticketsystem/internal/shared/logger"
	"ticketsystem/internal/shared/utils"
)

// PermissionMiddleware is the coarse route-level gate. It only checks that
// the caller's role may attempt the action at all; ownership and assignee
// rules are enforced again inside the use cases.
type PermissionMiddleware struct {
	enforcer *permission.Enforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer *permission.Enforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

func (m *PermissionMiddleware) RequireAction(action access.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyUserRole)
		if role == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		allowed, err := m.enforcer.Enforce(role, action)
		if err != nil {
			m.logger.Errorw("permission check failed",
				"role", role, "action", action, "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied", "role", role, "action", action)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

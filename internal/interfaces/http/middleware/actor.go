package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jmbbc/bc-visitor-dashboard/internal/shared/constants"
)

// Actor copies the gateway-injected identity headers into the request
// context. The gateway authenticates callers before forwarding; this layer
// only reads what it asserted.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := c.GetHeader(constants.HeaderXActor)
		if actor == "" {
			actor = "anonymous"
		}
		c.Set(constants.ContextKeyActor, actor)

		isAdmin, _ := strconv.ParseBool(c.GetHeader(constants.HeaderXCallerIsAdmin))
		c.Set(constants.ContextKeyIsAdmin, isAdmin)

		c.Next()
	}
}

// ActorFrom returns the actor recorded by the Actor middleware.
func ActorFrom(c *gin.Context) string {
	if v, ok := c.Get(constants.ContextKeyActor); ok {
		if actor, ok := v.(string); ok {
			return actor
		}
	}
	return "anonymous"
}

// IsAdminFrom returns the admin flag recorded by the Actor middleware.
func IsAdminFrom(c *gin.Context) bool {
	if v, ok := c.Get(constants.ContextKeyIsAdmin); ok {
		if isAdmin, ok := v.(bool); ok {
			return isAdmin
		}
	}
	return false
}

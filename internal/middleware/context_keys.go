package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/somitihq/somiti-backend/internal/core/domain"
)

// contextKey is a private type for context values set by middleware.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	userIDKey    = contextKey("userID")
	actorKey     = contextKey("actor")
)

// GetLoggerFromCtx retrieves the request-scoped logger from a standard
// context. Falls back to the default logger when none was injected.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerCtxKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// GetUserIDFromContext retrieves the authenticated user ID set by
// AuthMiddleware. It returns the user ID and whether it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	return userID, ok && userID != ""
}

// GetActorFromContext retrieves the resolved Actor capability set by
// TenantMiddleware.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	actor, ok := c.Request.Context().Value(actorKey).(domain.Actor)
	return actor, ok
}

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/somitihq/somiti-backend/internal/apperrors"
	portssvc "github.com/somitihq/somiti-backend/internal/core/ports/services"
)

// ActingTenantHeader lets a super admin act on another tenant. It replaces
// the old client-side impersonation state: the claim travels with every
// request and is validated here, server-side.
const ActingTenantHeader = "X-Acting-Tenant"

// TenantMiddleware resolves the caller's membership in the :tenant_id path
// tenant into a typed Actor capability consumed by all downstream handlers.
// Non-members get 404 so tenant existence does not leak, matching the
// cross-tenant not-found behavior of the API.
func TenantMiddleware(tenantSvc portssvc.TenantSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "code": "UNAUTHORIZED"})
			return
		}

		tenantID := c.Param("tenant_id")
		if tenantID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Tenant ID required", "code": "VALIDATION_ERROR"})
			return
		}

		actingTenantID := c.GetHeader(ActingTenantHeader)

		actor, err := tenantSvc.ResolveActor(c.Request.Context(), userID, tenantID, actingTenantID)
		if err != nil {
			if errors.Is(err, apperrors.ErrForbidden) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden", "code": "FORBIDDEN"})
				return
			}
			if errors.Is(err, apperrors.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Resource not found", "code": "NOT_FOUND"})
				return
			}
			logger.Error("Failed to resolve actor", slog.String("error", err.Error()), slog.String("tenant_id", tenantID))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong", "code": "INTERNAL_ERROR"})
			return
		}

		enrichedLogger := logger.With(
			slog.String("tenant_id", actor.TenantID),
			slog.String("role", string(actor.Role)),
		)

		ctx := context.WithValue(c.Request.Context(), actorKey, *actor)
		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// SubscriptionGate blocks mutating verbs for tenants whose subscription has
// expired. Reads stay available so members can still see notices and
// balances after a lapse.
func SubscriptionGate(tenantSvc portssvc.TenantSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		default:
			c.Next()
			return
		}

		actor, ok := GetActorFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "code": "UNAUTHORIZED"})
			return
		}

		tenant, err := tenantSvc.GetTenant(c.Request.Context(), actor.TenantID)
		if err != nil {
			GetLoggerFromCtx(c.Request.Context()).Error("Failed to load tenant for subscription gate", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong", "code": "INTERNAL_ERROR"})
			return
		}

		if !tenant.WritesAllowed() {
			appErr := apperrors.NewSubscriptionExpiredError()
			c.AbortWithStatusJSON(appErr.Status, appErr)
			return
		}

		c.Next()
	}
}

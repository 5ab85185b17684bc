package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/somitihq/somiti-backend/internal/apperrors"
	"github.com/somitihq/somiti-backend/internal/core/domain"
	portssvc "github.com/somitihq/somiti-backend/internal/core/ports/services"
	"github.com/somitihq/somiti-backend/internal/dto"
	"github.com/somitihq/somiti-backend/internal/middleware"
)

// tenantHandler handles tenant resolution, settings and super-admin
// provisioning.
type tenantHandler struct {
	tenantService portssvc.TenantSvcFacade
	userService   portssvc.UserSvcFacade
}

func newTenantHandler(ts portssvc.TenantSvcFacade, us portssvc.UserSvcFacade) *tenantHandler {
	return &tenantHandler{tenantService: ts, userService: us}
}

// registerPublicTenantRoutes registers the unauthenticated subdomain
// resolution endpoint the SPA calls before login.
func registerPublicTenantRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := newTenantHandler(services.Tenant, services.User)
	r.GET("/api/v1/tenants/resolve/:subdomain", h.resolveTenant)
}

// registerTenantRoutes registers tenant-scoped routes (inside the tenant
// middleware group).
func registerTenantRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newTenantHandler(services.Tenant, services.User)

	rg.GET("", h.getTenant)
	rg.PUT("/settings", h.updateSettings)
}

// registerSuperAdminRoutes registers the hosted console's provisioning
// endpoints. These are not tenant-scoped; the service rejects callers who are
// not super admins.
func registerSuperAdminRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newTenantHandler(services.Tenant, services.User)

	admin := rg.Group("/admin")
	{
		admin.POST("/tenants", h.createTenant)
		admin.POST("/tenants/:tenant_id/admins", h.addTenantAdmin)
	}
}

// callerActor builds an Actor for routes outside the tenant middleware group
// from the authenticated user alone.
func (h *tenantHandler) callerActor(c *gin.Context) (domain.Actor, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return domain.Actor{}, false
	}
	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, apperrors.ErrUnauthorized)
		return domain.Actor{}, false
	}
	return domain.Actor{UserID: user.UserID, UserName: user.Name, IsSuperAdmin: user.IsSuperAdmin}, true
}

// resolveTenant godoc
// @Summary Resolve a subdomain to its tenant
// @Description Public endpoint used by the SPA to validate the somiti
// @Description subdomain before login.
// @Tags tenants
// @Produce json
// @Param subdomain path string true "Tenant subdomain"
// @Success 200 {object} dto.ResolveTenantResponse
// @Failure 404 {object} apperrors.AppError
// @Router /tenants/resolve/{subdomain} [get]
func (h *tenantHandler) resolveTenant(c *gin.Context) {
	subdomain := c.Param("subdomain")
	tenant, err := h.tenantService.ResolveTenantBySubdomain(c.Request.Context(), subdomain)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToResolveTenantResponse(tenant))
}

// getTenant godoc
// @Summary Get the tenant's profile
// @Tags tenants
// @Produce json
// @Success 200 {object} dto.TenantResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id} [get]
func (h *tenantHandler) getTenant(c *gin.Context) {
	actor, _ := middleware.GetActorFromContext(c)
	tenant, err := h.tenantService.GetTenant(c.Request.Context(), actor.TenantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTenantResponse(tenant))
}

// updateSettings godoc
// @Summary Update tenant organization settings
// @Tags tenants
// @Accept json
// @Produce json
// @Param settings body dto.UpdateTenantSettingsRequest true "Settings"
// @Success 200 {object} dto.TenantResponse
// @Failure 402 {object} apperrors.AppError
// @Failure 403 {object} apperrors.AppError
// @Security BearerAuth
// @Router /tenants/{tenant_id}/settings [put]
func (h *tenantHandler) updateSettings(c *gin.Context) {
	actor, _ := middleware.GetActorFromContext(c)

	var req dto.UpdateTenantSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewValidationError("Invalid request format: "+err.Error()))
		return
	}

	tenant, err := h.tenantService.UpdateSettings(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTenantResponse(tenant))
}

// createTenant godoc
// @Summary Provision a new tenant (super admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param tenant body dto.CreateTenantRequest true "Tenant details"
// @Success 201 {object} dto.TenantResponse
// @Failure 403 {object} apperrors.AppError
// @Failure 409 {object} apperrors.AppError
// @Security BearerAuth
// @Router /admin/tenants [post]
func (h *tenantHandler) createTenant(c *gin.Context) {
	actor, ok := h.callerActor(c)
	if !ok {
		return
	}

	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewValidationError("Invalid request format: "+err.Error()))
		return
	}

	tenant, err := h.tenantService.CreateTenant(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToTenantResponse(tenant))
}

// addTenantAdmin godoc
// @Summary Provision an additional admin for a tenant (super admin)
// @Tags admin
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param admin body dto.AddTenantAdminRequest true "Admin details"
// @Success 201 {object} dto.UserResponse
// @Failure 403 {object} apperrors.AppError
// @Security BearerAuth
// @Router /admin/tenants/{tenant_id}/admins [post]
func (h *tenantHandler) addTenantAdmin(c *gin.Context) {
	actor, ok := h.callerActor(c)
	if !ok {
		return
	}

	var req dto.AddTenantAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewValidationError("Invalid request format: "+err.Error()))
		return
	}

	user, err := h.tenantService.AddTenantAdmin(c.Request.Context(), actor, c.Param("tenant_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

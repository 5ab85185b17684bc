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

// planHandler exposes subscription plans and tenant limit checks.
type planHandler struct {
	planService portssvc.PlanSvcFacade
}

func newPlanHandler(ps portssvc.PlanSvcFacade) *planHandler {
	return &planHandler{planService: ps}
}

// registerPlanCatalogRoutes registers the tier catalog outside the tenant
// group; any authenticated user can browse plans.
func registerPlanCatalogRoutes(rg *gin.RouterGroup, planService portssvc.PlanSvcFacade) {
	h := newPlanHandler(planService)
	rg.GET("/plans", h.listPlans)
}

func registerPlanRoutes(rg *gin.RouterGroup, planService portssvc.PlanSvcFacade) {
	h := newPlanHandler(planService)

	rg.GET("/plan", h.getTenantPlanInfo)
	rg.GET("/limits/:action", h.checkLimit)
}

// listPlans godoc
// @Summary List subscription plans
// @Tags plans
// @Produce json
// @Success 200 {array} dto.PlanResponse
// @Security BearerAuth
// @Router /plans [get]
func (h *planHandler) listPlans(c *gin.Context) {
	plans, err := h.planService.ListPlans(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.PlanResponse, 0, len(plans))
	for i := range plans {
		resp = append(resp, dto.ToPlanResponse(&plans[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// getTenantPlanInfo godoc
// @Summary Get the tenant's plan and usage counters
// @Tags plans
// @Produce json
// @Success 200 {object} dto.TenantPlanInfoResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/plan [get]
func (h *planHandler) getTenantPlanInfo(c *gin.Context) {
	actor, _ := middleware.GetActorFromContext(c)

	info, err := h.planService.GetTenantPlanInfo(c.Request.Context(), actor.TenantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTenantPlanInfoResponse(info))
}

// checkLimit godoc
// @Summary Check whether an action is within plan quotas
// @Description The verdict is computed server-side from database counters.
// @Description Clients use it to show or hide gated features; the write paths
// @Description enforce the same check regardless.
// @Tags plans
// @Produce json
// @Param action path string true "Action" Enums(add_member, send_sms, online_payment, advanced_reports)
// @Success 200 {object} domain.LimitCheck
// @Failure 400 {object} apperrors.AppError
// @Security BearerAuth
// @Router /tenants/{tenant_id}/limits/{action} [get]
func (h *planHandler) checkLimit(c *gin.Context) {
	actor, _ := middleware.GetActorFromContext(c)

	action := domain.LimitAction(c.Param("action"))
	switch action {
	case domain.ActionAddMember, domain.ActionSendSMS, domain.ActionOnlinePayment, domain.ActionAdvancedReports:
	default:
		respondError(c, apperrors.NewValidationError("unknown limit action: "+c.Param("action")))
		return
	}

	check, err := h.planService.CheckTenantLimit(c.Request.Context(), actor.TenantID, action)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, check)
}

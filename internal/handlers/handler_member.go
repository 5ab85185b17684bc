package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/somitihq/somiti-backend/internal/apperrors"
	portssvc "github.com/somitihq/somiti-backend/internal/core/ports/services"
	"github.com/somitihq/somiti-backend/internal/dto"
	"github.com/somitihq/somiti-backend/internal/middleware"
)

// memberHandler handles the tenant roster.
type memberHandler struct {
	memberService portssvc.MemberSvcFacade
}

func newMemberHandler(ms portssvc.MemberSvcFacade) *memberHandler {
	return &memberHandler{memberService: ms}
}

func registerMemberRoutes(rg *gin.RouterGroup, memberService portssvc.MemberSvcFacade) {
	h := newMemberHandler(memberService)

	members := rg.Group("/members")
	{
		members.POST("", h.createMember)
		members.GET("", h.listMembers)
		members.GET("/:member_id", h.getMember)
		members.PUT("/:member_id", h.updateMember)
		members.DELETE("/:member_id", h.deactivateMember)
	}
}

// createMember godoc
// @Summary Add a member to the roster
// @Description Gated by the add_member plan limit.
// @Tags members
// @Accept json
// @Produce json
// @Param member body dto.CreateMemberRequest true "Member details"
// @Success 201 {object} dto.MemberResponse
// @Failure 403 {object} apperrors.AppError "Forbidden or plan limit reached"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/members [post]
func (h *memberHandler) createMember(c *gin.Context) {
	actor, _ := middleware.GetActorFromContext(c)

	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewValidationError("Invalid request format: "+err.Error()))
		return
	}

	member, err := h.memberService.CreateMember(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToMemberResponse(member))
}

func (h *memberHandler) listMembers(c *gin.Context) {
	actor, _ := middleware.GetActorFromContext(c)
	limit, offset := paginationParams(c)

	members, err := h.memberService.ListMembers(c.Request.Context(), actor, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListMembersResponse(members))
}

func (h *memberHandler) getMember(c *gin.Context) {
	actor, _ := middleware.GetActorFromContext(c)

	member, err := h.memberService.GetMember(c.Request.Context(), actor, c.Param("member_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

func (h *memberHandler) updateMember(c *gin.Context) {
	actor, _ := middleware.GetActorFromContext(c)

	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewValidationError("Invalid request format: "+err.Error()))
		return
	}

	member, err := h.memberService.UpdateMember(c.Request.Context(), actor, c.Param("member_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(member))
}

func (h *memberHandler) deactivateMember(c *gin.Context) {
	actor, _ := middleware.GetActorFromContext(c)

	if err := h.memberService.DeactivateMember(c.Request.Context(), actor, c.Param("member_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

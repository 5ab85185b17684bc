package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/somitihq/somiti-backend/internal/apperrors"
	portssvc "github.com/somitihq/somiti-backend/internal/core/ports/services"
	"github.com/somitihq/somiti-backend/internal/dto"
	"github.com/somitihq/somiti-backend/internal/middleware"
)

// noticeHandler handles notices, their decision record and the discussion
// thread.
type noticeHandler struct {
	noticeService portssvc.NoticeSvcFacade
}

func newNoticeHandler(ns portssvc.NoticeSvcFacade) *noticeHandler {
	return &noticeHandler{noticeService: ns}
}

func registerNoticeRoutes(rg *gin.RouterGroup, noticeService portssvc.NoticeSvcFacade) {
	h := newNoticeHandler(noticeService)

	notices := rg.Group("/notices")
	{
		notices.GET("", h.listNotices)
		notices.POST("", h.createNotice)
		notices.GET("/:notice_id", h.getNotice)
		notices.PUT("/:notice_id", h.updateNotice)
		notices.DELETE("/:notice_id", h.deleteNotice)

		notices.GET("/:notice_id/decision", h.getDecision)
		notices.PUT("/:notice_id/decision", h.setDecision)

		notices.GET("/:notice_id/comments", h.listComments)
		notices.POST("/:notice_id/comments", h.addComment)
	}

	comments := rg.Group("/comments")
	{
		comments.PUT("/:comment_id", h.editComment)
		comments.DELETE("/:comment_id", h.deleteComment)
	}
}

// listNotices godoc
// @Summary List notices
// @Description Members see only published notices; managers and admins also
// @Description see drafts. Pinned notices sort first.
// @Tags notices
// @Produce json
// @Success 200 {object} dto.ListNoticesResponse
// @Security BearerAuth
// @Router /tenants/{tenant_id}/notices [get]
func (h *noticeHandler) listNotices(c *gin.Context) {
	actor, _ := middleware.GetActorFromContext(c)
	limit, offset := paginationParams(c)

	notices, err := h.noticeService.ListNotices(c.Request.Context(), actor, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListNoticesResponse(notices))
}

// createNotice godoc
// @Summary Create a notice
// @Description Managers create drafts; publishing requires the admin role.
// @Tags notices
// @Accept json
// @Produce json
// @Param notice body dto.CreateNoticeRequest true "Notice details"
// @Success 201 {object} dto.NoticeResponse
// @Failure 403 {object} apperrors.AppError
// @Security BearerAuth
// @Router /tenants/{tenant_id}/notices [post]
func (h *noticeHandler) createNotice(c *gin.Context) {
	actor, _ := middleware.GetActorFromContext(c)

	var req dto.CreateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewValidationError("Invalid request format: "+err.Error()))
		return
	}

	notice, err := h.noticeService.CreateNotice(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToNoticeResponse(notice))
}

func (h *noticeHandler) getNotice(c *gin.Context) {
	actor, _ := middleware.GetActorFromContext(c)

	notice, err := h.noticeService.GetNotice(c.Request.Context(), actor, c.Param("notice_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToNoticeResponse(notice))
}

func (h *noticeHandler) updateNotice(c *gin.Context) {
	actor, _ := middleware.GetActorFromContext(c)

	var req dto.UpdateNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewValidationError("Invalid request format: "+err.Error()))
		return
	}

	notice, err := h.noticeService.UpdateNotice(c.Request.Context(), actor, c.Param("notice_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToNoticeResponse(notice))
}

func (h *noticeHandler) deleteNotice(c *gin.Context) {
	actor, _ := middleware.GetActorFromContext(c)

	if err := h.noticeService.DeleteNotice(c.Request.Context(), actor, c.Param("notice_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// getDecision godoc
// @Summary Get the notice's decision record
// @Tags notices
// @Produce json
// @Success 200 {object} dto.DecisionResponse
// @Failure 404 {object} apperrors.AppError "No decision recorded"
// @Security BearerAuth
// @Router /tenants/{tenant_id}/notices/{notice_id}/decision [get]
func (h *noticeHandler) getDecision(c *gin.Context) {
	actor, _ := middleware.GetActorFromContext(c)

	decision, err := h.noticeService.GetDecision(c.Request.Context(), actor, c.Param("notice_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDecisionResponse(decision))
}

// setDecision godoc
// @Summary Record or overwrite the notice's decision
// @Description Admin only. A notice holds at most one decision; writing
// @Description replaces any prior record.
// @Tags notices
// @Accept json
// @Produce json
// @Param decision body dto.SetDecisionRequest true "Decision"
// @Success 200 {object} dto.DecisionResponse
// @Failure 403 {object} apperrors.AppError
// @Security BearerAuth
// @Router /tenants/{tenant_id}/notices/{notice_id}/decision [put]
func (h *noticeHandler) setDecision(c *gin.Context) {
	actor, _ := middleware.GetActorFromContext(c)

	var req dto.SetDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewValidationError("Invalid request format: "+err.Error()))
		return
	}

	decision, err := h.noticeService.SetDecision(c.Request.Context(), actor, c.Param("notice_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDecisionResponse(decision))
}

func (h *noticeHandler) listComments(c *gin.Context) {
	actor, _ := middleware.GetActorFromContext(c)

	page := 1
	pageSize := 20
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(c.Query("pageSize")); err == nil && v > 0 && v <= 50 {
		pageSize = v
	}

	comments, err := h.noticeService.ListComments(c.Request.Context(), actor, c.Param("notice_id"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListCommentsResponse(comments, page, pageSize))
}

func (h *noticeHandler) addComment(c *gin.Context) {
	actor, _ := middleware.GetActorFromContext(c)

	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewValidationError("Invalid request format: "+err.Error()))
		return
	}

	comment, err := h.noticeService.AddComment(c.Request.Context(), actor, c.Param("notice_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}

// editComment godoc
// @Summary Edit a discussion comment
// @Description Author only, within five minutes of posting. Super admins
// @Description bypass the window.
// @Tags notices
// @Accept json
// @Produce json
// @Param comment body dto.EditCommentRequest true "New text"
// @Success 200 {object} dto.CommentResponse
// @Failure 403 {object} apperrors.AppError
// @Security BearerAuth
// @Router /tenants/{tenant_id}/comments/{comment_id} [put]
func (h *noticeHandler) editComment(c *gin.Context) {
	actor, _ := middleware.GetActorFromContext(c)

	var req dto.EditCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewValidationError("Invalid request format: "+err.Error()))
		return
	}

	comment, err := h.noticeService.EditComment(c.Request.Context(), actor, c.Param("comment_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}

func (h *noticeHandler) deleteComment(c *gin.Context) {
	actor, _ := middleware.GetActorFromContext(c)

	if err := h.noticeService.DeleteComment(c.Request.Context(), actor, c.Param("comment_id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

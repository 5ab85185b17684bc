package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/somitihq/somiti-backend/internal/apperrors"
	portssvc "github.com/somitihq/somiti-backend/internal/core/ports/services"
	"github.com/somitihq/somiti-backend/internal/dto"
	"github.com/somitihq/somiti-backend/internal/middleware"
)

// paymentHandler handles the member payment request / admin approval flow.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/payments")
	{
		payments.POST("/requests", h.requestPayment)
		payments.GET("/pending", h.listPendingApprovals)
		payments.GET("/members/:member_id", h.listMemberPayments)
		payments.POST("/:payment_id/approve", h.approvePayment)
		payments.POST("/:payment_id/reject", h.rejectPayment)
		payments.POST("/:payment_id/paid", h.markPaid)
	}
}

// requestPayment godoc
// @Summary Request a dues payment
// @Description Creates a member-initiated payment request in the
// @Description pending-approval queue. The tenant's yearly due cap applies.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body dto.RequestPaymentRequest true "Payment request"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} apperrors.AppError
// @Security BearerAuth
// @Router /tenants/{tenant_id}/payments/requests [post]
func (h *paymentHandler) requestPayment(c *gin.Context) {
	actor, _ := middleware.GetActorFromContext(c)

	var req dto.RequestPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewValidationError("Invalid request format: "+err.Error()))
		return
	}

	payment, err := h.paymentService.RequestPayment(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// listPendingApprovals godoc
// @Summary List payments awaiting approval
// @Description Admin only. The queue holds member-requested payments that are
// @Description still pending and not yet approved.
// @Tags payments
// @Produce json
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 403 {object} apperrors.AppError
// @Security BearerAuth
// @Router /tenants/{tenant_id}/payments/pending [get]
func (h *paymentHandler) listPendingApprovals(c *gin.Context) {
	actor, _ := middleware.GetActorFromContext(c)
	limit, offset := paginationParams(c)

	payments, err := h.paymentService.ListPendingApprovals(c.Request.Context(), actor, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListPaymentsResponse(payments))
}

func (h *paymentHandler) listMemberPayments(c *gin.Context) {
	actor, _ := middleware.GetActorFromContext(c)
	limit, offset := paginationParams(c)

	payments, err := h.paymentService.ListMemberPayments(c.Request.Context(), actor, c.Param("member_id"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListPaymentsResponse(payments))
}

// approvePayment godoc
// @Summary Approve a pending payment request
// @Description Admin only. Generates a hosted payment link via the gateway.
// @Description Link creation is single-attempt; on failure the request stays
// @Description pending and the admin retries.
// @Tags payments
// @Produce json
// @Success 200 {object} dto.PaymentResponse
// @Failure 403 {object} apperrors.AppError
// @Failure 409 {object} apperrors.AppError
// @Security BearerAuth
// @Router /tenants/{tenant_id}/payments/{payment_id}/approve [post]
func (h *paymentHandler) approvePayment(c *gin.Context) {
	actor, _ := middleware.GetActorFromContext(c)

	payment, err := h.paymentService.ApprovePayment(c.Request.Context(), actor, c.Param("payment_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

func (h *paymentHandler) rejectPayment(c *gin.Context) {
	actor, _ := middleware.GetActorFromContext(c)

	var req dto.RejectPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewValidationError("Invalid request format: "+err.Error()))
		return
	}

	payment, err := h.paymentService.RejectPayment(c.Request.Context(), actor, c.Param("payment_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// markPaid godoc
// @Summary Settle an approved payment
// @Description Admin only. Overpayment is credited to the member's advance
// @Description balance.
// @Tags payments
// @Accept json
// @Produce json
// @Param settlement body dto.MarkPaidRequest true "Settled amount"
// @Success 200 {object} dto.PaymentResponse
// @Failure 409 {object} apperrors.AppError
// @Security BearerAuth
// @Router /tenants/{tenant_id}/payments/{payment_id}/paid [post]
func (h *paymentHandler) markPaid(c *gin.Context) {
	actor, _ := middleware.GetActorFromContext(c)

	var req dto.MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewValidationError("Invalid request format: "+err.Error()))
		return
	}

	payment, err := h.paymentService.MarkPaid(c.Request.Context(), actor, c.Param("payment_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

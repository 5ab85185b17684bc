package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/somitihq/somiti-backend/internal/core/domain"
)

// --- Payment DTOs ---

// RequestPaymentRequest is a member-initiated dues payment request.
type RequestPaymentRequest struct {
	MemberID string          `json:"memberID" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Purpose  string          `json:"purpose"`
	Period   string          `json:"period"` // e.g. "2025-08"
}

// RejectPaymentRequest carries the admin's reason for rejecting a request.
type RejectPaymentRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// MarkPaidRequest records the settled amount for an approved payment.
type MarkPaidRequest struct {
	PaidAmount decimal.Decimal `json:"paidAmount" binding:"required"`
}

// PaymentResponse defines data returned for a payment.
type PaymentResponse struct {
	PaymentID       string          `json:"paymentID"`
	TenantID        string          `json:"tenantID"`
	MemberID        string          `json:"memberID"`
	Amount          decimal.Decimal `json:"amount"`
	Purpose         string          `json:"purpose,omitempty"`
	Period          string          `json:"period,omitempty"`
	Status          string          `json:"status"`
	MemberRequested bool            `json:"memberRequested"`
	AdminApproved   bool            `json:"adminApproved"`
	RejectionReason string          `json:"rejectionReason,omitempty"`
	PaymentURL      string          `json:"paymentURL,omitempty"`
	ApprovedBy      string          `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time      `json:"approvedAt,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ToPaymentResponse converts domain.Payment to DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:       p.PaymentID,
		TenantID:        p.TenantID,
		MemberID:        p.MemberID,
		Amount:          p.Amount,
		Purpose:         p.Purpose,
		Period:          p.Period,
		Status:          string(p.Status),
		MemberRequested: p.MemberRequested,
		AdminApproved:   p.AdminApproved,
		RejectionReason: p.RejectionReason,
		PaymentURL:      p.PaymentURL,
		ApprovedBy:      p.ApprovedBy,
		ApprovedAt:      p.ApprovedAt,
		CreatedAt:       p.CreatedAt,
	}
}

// ListPaymentsResponse wraps a list of payments.
type ListPaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// ToListPaymentsResponse converts a slice of domain.Payment to DTO.
func ToListPaymentsResponse(ps []domain.Payment) ListPaymentsResponse {
	list := make([]PaymentResponse, len(ps))
	for i, p := range ps {
		list[i] = ToPaymentResponse(&p)
	}
	return ListPaymentsResponse{Payments: list}
}

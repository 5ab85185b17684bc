package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the lifecycle state of a payment row.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentPaid      PaymentStatus = "PAID"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentCancelled PaymentStatus = "CANCELLED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

// Payment is a dues payment for a member. Member-initiated requests start as
// PENDING with MemberRequested set; an admin either approves (generating a
// hosted payment URL) or rejects (CANCELLED with a reason).
type Payment struct {
	PaymentID       string          `json:"paymentID"` // Primary Key (UUID)
	TenantID        string          `json:"tenantID"`
	MemberID        string          `json:"memberID"`
	Amount          decimal.Decimal `json:"amount"`
	Purpose         string          `json:"purpose"`
	Period          string          `json:"period"` // e.g. "2025-08" for a monthly due
	Status          PaymentStatus   `json:"status"`
	MemberRequested bool            `json:"memberRequested"`
	AdminApproved   bool            `json:"adminApproved"`
	RejectionReason string          `json:"rejectionReason,omitempty"`
	PaymentURL      string          `json:"paymentURL,omitempty"`
	ApprovedBy      string          `json:"approvedBy,omitempty"` // UserID
	ApprovedAt      *time.Time      `json:"approvedAt,omitempty"`
	AuditFields
}

// AwaitingApproval reports whether the payment belongs in the admin's
// pending-approval queue.
func (p *Payment) AwaitingApproval() bool {
	return p.MemberRequested && !p.AdminApproved && p.Status == PaymentPending
}

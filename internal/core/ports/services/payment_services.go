package services

import (
	"context"

	"github.com/somitihq/somiti-backend/internal/core/domain"
	"github.com/somitihq/somiti-backend/internal/dto"
)

// PaymentSvcFacade covers the member payment request / admin approval flow.
type PaymentSvcFacade interface {
	// RequestPayment creates a member-initiated dues payment request in the
	// pending-approval queue. Enforces the tenant's yearly due cap.
	RequestPayment(ctx context.Context, actor domain.Actor, req dto.RequestPaymentRequest) (*domain.Payment, error)

	// ListPendingApprovals returns payments awaiting admin approval. Admin only.
	ListPendingApprovals(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Payment, error)

	// ListMemberPayments returns a member's payment history.
	ListMemberPayments(ctx context.Context, actor domain.Actor, memberID string, limit, offset int) ([]domain.Payment, error)

	// ApprovePayment approves a pending request and generates a hosted
	// payment link via the provider. Admin only.
	ApprovePayment(ctx context.Context, actor domain.Actor, paymentID string) (*domain.Payment, error)

	// RejectPayment cancels a pending request with a reason. Admin only.
	RejectPayment(ctx context.Context, actor domain.Actor, paymentID string, req dto.RejectPaymentRequest) (*domain.Payment, error)

	// MarkPaid settles an approved payment. Overpayment is credited to the
	// member's advance balance. Admin only.
	MarkPaid(ctx context.Context, actor domain.Actor, paymentID string, req dto.MarkPaidRequest) (*domain.Payment, error)
}

// PaymentLinkProvider creates hosted payment URLs at the external payment
// gateway. Single-attempt: callers surface provider failures, no retries.
type PaymentLinkProvider interface {
	CreatePaymentLink(ctx context.Context, payment domain.Payment, tenant domain.Tenant) (string, error)
}

// Mailer sends notification email. Implementations are best-effort; callers
// log failures and move on.
type Mailer interface {
	Send(to []string, subject, htmlBody string) error
}

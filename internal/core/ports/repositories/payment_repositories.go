package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/somitihq/somiti-backend/internal/core/domain"
)

// PaymentReader defines read operations for payments.
type PaymentReader interface {
	FindPaymentByID(ctx context.Context, tenantID, paymentID string) (*domain.Payment, error)

	// ListPendingApprovals returns payments awaiting admin approval. The
	// predicate (member_requested AND NOT admin_approved AND status PENDING)
	// runs in the database against an indexed partial, not in application code.
	ListPendingApprovals(ctx context.Context, tenantID string, limit, offset int) ([]domain.Payment, error)

	ListPaymentsByMember(ctx context.Context, tenantID, memberID string, limit, offset int) ([]domain.Payment, error)

	// SumMemberDuesForYear totals the member's non-cancelled payments created
	// in the given calendar year, for yearly due cap enforcement.
	SumMemberDuesForYear(ctx context.Context, tenantID, memberID string, year int) (decimal.Decimal, error)
}

// PaymentWriter defines write operations for payments.
type PaymentWriter interface {
	SavePayment(ctx context.Context, payment domain.Payment) error
	UpdatePayment(ctx context.Context, payment domain.Payment) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces.
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/somitihq/somiti-backend/internal/apperrors"
	"github.com/somitihq/somiti-backend/internal/core/domain"
	portsrepo "github.com/somitihq/somiti-backend/internal/core/ports/repositories"
)

type paymentRepository struct {
	pool *pgxpool.Pool
}

// NewPaymentRepository creates a new repository for payments.
func NewPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &paymentRepository{pool: pool}
}

var _ portsrepo.PaymentRepositoryFacade = (*paymentRepository)(nil)

const paymentColumns = `
	payment_id, tenant_id, member_id, amount, purpose, period, status,
	member_requested, admin_approved, rejection_reason, payment_url,
	approved_by, approved_at, created_at, created_by, last_updated_at, last_updated_by`

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var p domain.Payment
	err := row.Scan(
		&p.PaymentID,
		&p.TenantID,
		&p.MemberID,
		&p.Amount,
		&p.Purpose,
		&p.Period,
		&p.Status,
		&p.MemberRequested,
		&p.AdminApproved,
		&p.RejectionReason,
		&p.PaymentURL,
		&p.ApprovedBy,
		&p.ApprovedAt,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan payment: %w", err)
	}
	return &p, nil
}

func (r *paymentRepository) FindPaymentByID(ctx context.Context, tenantID, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE tenant_id = $1 AND payment_id = $2;`
	return scanPayment(db(ctx, r.pool).QueryRow(ctx, query, tenantID, paymentID))
}

func (r *paymentRepository) ListPendingApprovals(ctx context.Context, tenantID string, limit, offset int) ([]domain.Payment, error) {
	// Matches the partial index idx_payments_pending_approval.
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE tenant_id = $1
		  AND member_requested
		  AND NOT admin_approved
		  AND status = 'PENDING'
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3;
	`
	return r.queryPayments(ctx, query, tenantID, limit, offset)
}

func (r *paymentRepository) ListPaymentsByMember(ctx context.Context, tenantID, memberID string, limit, offset int) ([]domain.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE tenant_id = $1 AND member_id = $2
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4;
	`
	return r.queryPayments(ctx, query, tenantID, memberID, limit, offset)
}

func (r *paymentRepository) queryPayments(ctx context.Context, query string, args ...any) ([]domain.Payment, error) {
	rows, err := db(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, *p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", rows.Err())
	}
	return payments, nil
}

func (r *paymentRepository) SumMemberDuesForYear(ctx context.Context, tenantID, memberID string, year int) (decimal.Decimal, error) {
	query := `
		SELECT coalesce(sum(amount), 0)
		FROM payments
		WHERE tenant_id = $1 AND member_id = $2
		  AND status NOT IN ('CANCELLED', 'FAILED', 'REFUNDED')
		  AND date_part('year', created_at) = $3;
	`
	var total decimal.Decimal
	if err := db(ctx, r.pool).QueryRow(ctx, query, tenantID, memberID, year).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum member dues: %w", err)
	}
	return total, nil
}

func (r *paymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	query := `
		INSERT INTO payments (
			payment_id, tenant_id, member_id, amount, purpose, period, status,
			member_requested, admin_approved, rejection_reason, payment_url,
			approved_by, approved_at, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := db(ctx, r.pool).Exec(ctx, query,
		payment.PaymentID,
		payment.TenantID,
		payment.MemberID,
		payment.Amount,
		payment.Purpose,
		payment.Period,
		payment.Status,
		payment.MemberRequested,
		payment.AdminApproved,
		payment.RejectionReason,
		payment.PaymentURL,
		payment.ApprovedBy,
		payment.ApprovedAt,
		payment.CreatedAt,
		payment.CreatedBy,
		payment.LastUpdatedAt,
		payment.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save payment: %w", err)
	}
	return nil
}

func (r *paymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	query := `
		UPDATE payments
		SET status = $1, member_requested = $2, admin_approved = $3,
		    rejection_reason = $4, payment_url = $5, approved_by = $6,
		    approved_at = $7, last_updated_at = $8, last_updated_by = $9
		WHERE tenant_id = $10 AND payment_id = $11;
	`
	cmdTag, err := db(ctx, r.pool).Exec(ctx, query,
		payment.Status,
		payment.MemberRequested,
		payment.AdminApproved,
		payment.RejectionReason,
		payment.PaymentURL,
		payment.ApprovedBy,
		payment.ApprovedAt,
		payment.LastUpdatedAt,
		payment.LastUpdatedBy,
		payment.TenantID,
		payment.PaymentID,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

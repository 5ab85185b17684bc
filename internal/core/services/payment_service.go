package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/somitihq/somiti-backend/internal/apperrors"
	"github.com/somitihq/somiti-backend/internal/core/domain"
	"github.com/somitihq/somiti-backend/internal/core/ports/repositories"
	portssvc "github.com/somitihq/somiti-backend/internal/core/ports/services"
	"github.com/somitihq/somiti-backend/internal/dto"
)

type paymentService struct {
	BaseService
	paymentRepo repositories.PaymentRepositoryFacade
	memberRepo  repositories.MemberRepositoryFacade
	tenantRepo  repositories.TenantRepositoryWithTx
	planSvc     portssvc.PlanSvcFacade
	paylink     portssvc.PaymentLinkProvider
	mailer      portssvc.Mailer
}

// NewPaymentService creates a new instance of paymentService.
func NewPaymentService(
	paymentRepo repositories.PaymentRepositoryFacade,
	memberRepo repositories.MemberRepositoryFacade,
	tenantRepo repositories.TenantRepositoryWithTx,
	planSvc portssvc.PlanSvcFacade,
	paylink portssvc.PaymentLinkProvider,
	mailer portssvc.Mailer,
) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo: paymentRepo,
		memberRepo:  memberRepo,
		tenantRepo:  tenantRepo,
		planSvc:     planSvc,
		paylink:     paylink,
		mailer:      mailer,
	}
}

// RequestPayment creates a member-initiated dues payment request in the
// pending-approval queue, enforcing the tenant's yearly due cap.
func (s *paymentService) RequestPayment(ctx context.Context, actor domain.Actor, req dto.RequestPaymentRequest) (*domain.Payment, error) {
	if !req.Amount.IsPositive() {
		return nil, apperrors.NewValidationError("payment amount must be positive")
	}

	member, err := s.memberRepo.FindMemberByID(ctx, actor.TenantID, req.MemberID)
	if err != nil {
		return nil, err
	}
	if !member.IsActive {
		return nil, apperrors.NewValidationError("cannot request payment for an inactive member")
	}

	tenant, err := s.tenantRepo.FindTenantByID(ctx, actor.TenantID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if tenant.Settings.YearlyDueCap.IsPositive() {
		yearTotal, err := s.paymentRepo.SumMemberDuesForYear(ctx, actor.TenantID, req.MemberID, now.Year())
		if err != nil {
			return nil, fmt.Errorf("failed to compute yearly dues: %w", err)
		}
		if yearTotal.Add(req.Amount).GreaterThan(tenant.Settings.YearlyDueCap) {
			return nil, apperrors.NewValidationError(fmt.Sprintf(
				"request exceeds the yearly due cap of %s (already requested %s this year)",
				tenant.Settings.YearlyDueCap.StringFixed(2), yearTotal.StringFixed(2)))
		}
	}

	payment := domain.Payment{
		PaymentID:       uuid.NewString(),
		TenantID:        actor.TenantID,
		MemberID:        req.MemberID,
		Amount:          req.Amount,
		Purpose:         req.Purpose,
		Period:          req.Period,
		Status:          domain.PaymentPending,
		MemberRequested: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}
	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "failed to save payment request", "tenantID", actor.TenantID)
		return nil, fmt.Errorf("failed to create payment request: %w", err)
	}

	s.notifyAdmins(ctx, actor.TenantID,
		"New payment request awaiting approval",
		fmt.Sprintf("<p>%s requested a payment of %s BDT (%s).</p>", member.Name, payment.Amount.StringFixed(2), payment.Purpose))

	return &payment, nil
}

// ListPendingApprovals returns payments awaiting admin approval. Admin only.
func (s *paymentService) ListPendingApprovals(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Payment, error) {
	if !actor.CanManage(domain.RoleAdmin) {
		return nil, apperrors.NewForbiddenError("only admins may view the approval queue")
	}
	return s.paymentRepo.ListPendingApprovals(ctx, actor.TenantID, limit, offset)
}

// ListMemberPayments returns a member's payment history.
func (s *paymentService) ListMemberPayments(ctx context.Context, actor domain.Actor, memberID string, limit, offset int) ([]domain.Payment, error) {
	return s.paymentRepo.ListPaymentsByMember(ctx, actor.TenantID, memberID, limit, offset)
}

// ApprovePayment approves a pending request and generates a hosted payment
// link. Admin only. Link creation is single-attempt; on provider failure the
// payment stays pending and the admin retries.
func (s *paymentService) ApprovePayment(ctx context.Context, actor domain.Actor, paymentID string) (*domain.Payment, error) {
	if !actor.CanManage(domain.RoleAdmin) {
		return nil, apperrors.NewForbiddenError("only admins may approve payments")
	}

	payment, err := s.paymentRepo.FindPaymentByID(ctx, actor.TenantID, paymentID)
	if err != nil {
		return nil, err
	}
	if !payment.AwaitingApproval() {
		return nil, apperrors.NewConflictError("payment is not awaiting approval")
	}

	check, err := s.planSvc.CheckTenantLimit(ctx, actor.TenantID, domain.ActionOnlinePayment)
	if err != nil {
		return nil, fmt.Errorf("failed to check online payment feature: %w", err)
	}
	if !check.Allowed {
		return nil, apperrors.NewPlanLimitError(check.Message, check.MessageBN)
	}

	tenant, err := s.tenantRepo.FindTenantByID(ctx, actor.TenantID)
	if err != nil {
		return nil, err
	}
	paymentURL, err := s.paylink.CreatePaymentLink(ctx, *payment, *tenant)
	if err != nil {
		s.LogError(ctx, err, "payment link generation failed", "paymentID", paymentID)
		return nil, fmt.Errorf("failed to generate payment link: %w", err)
	}

	now := time.Now()
	payment.AdminApproved = true
	payment.ApprovedBy = actor.UserID
	payment.ApprovedAt = &now
	payment.PaymentURL = paymentURL
	payment.LastUpdatedAt = now
	payment.LastUpdatedBy = actor.UserID
	if err := s.paymentRepo.UpdatePayment(ctx, *payment); err != nil {
		return nil, fmt.Errorf("failed to persist payment approval: %w", err)
	}

	s.LogInfo(ctx, "payment approved", "paymentID", paymentID, "approvedBy", actor.UserID)
	return payment, nil
}

// RejectPayment cancels a pending request with a reason. Admin only.
func (s *paymentService) RejectPayment(ctx context.Context, actor domain.Actor, paymentID string, req dto.RejectPaymentRequest) (*domain.Payment, error) {
	if !actor.CanManage(domain.RoleAdmin) {
		return nil, apperrors.NewForbiddenError("only admins may reject payments")
	}

	payment, err := s.paymentRepo.FindPaymentByID(ctx, actor.TenantID, paymentID)
	if err != nil {
		return nil, err
	}
	if !payment.AwaitingApproval() {
		return nil, apperrors.NewConflictError("payment is not awaiting approval")
	}

	now := time.Now()
	payment.Status = domain.PaymentCancelled
	payment.RejectionReason = req.Reason
	payment.LastUpdatedAt = now
	payment.LastUpdatedBy = actor.UserID
	if err := s.paymentRepo.UpdatePayment(ctx, *payment); err != nil {
		return nil, fmt.Errorf("failed to persist payment rejection: %w", err)
	}
	return payment, nil
}

// MarkPaid settles an approved payment. Overpayment is credited to the
// member's advance balance in the same transaction. Admin only.
func (s *paymentService) MarkPaid(ctx context.Context, actor domain.Actor, paymentID string, req dto.MarkPaidRequest) (*domain.Payment, error) {
	if !actor.CanManage(domain.RoleAdmin) {
		return nil, apperrors.NewForbiddenError("only admins may settle payments")
	}

	payment, err := s.paymentRepo.FindPaymentByID(ctx, actor.TenantID, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status != domain.PaymentPending {
		return nil, apperrors.NewConflictError("payment is not pending settlement")
	}
	if payment.MemberRequested && !payment.AdminApproved {
		return nil, apperrors.NewConflictError("payment has not been approved yet")
	}
	if req.PaidAmount.LessThan(payment.Amount) {
		return nil, apperrors.NewValidationError("paid amount is less than the requested amount")
	}

	overpayment := req.PaidAmount.Sub(payment.Amount)
	now := time.Now()
	payment.Status = domain.PaymentPaid
	payment.LastUpdatedAt = now
	payment.LastUpdatedBy = actor.UserID

	err = s.tenantRepo.WithinTx(ctx, func(txCtx context.Context) error {
		if err := s.paymentRepo.UpdatePayment(txCtx, *payment); err != nil {
			return fmt.Errorf("failed to persist payment settlement: %w", err)
		}
		if overpayment.GreaterThan(decimal.Zero) {
			if err := s.memberRepo.AdjustAdvanceBalance(txCtx, actor.TenantID, payment.MemberID, overpayment, actor.UserID); err != nil {
				return fmt.Errorf("failed to credit advance balance: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if overpayment.GreaterThan(decimal.Zero) {
		s.LogInfo(ctx, "overpayment credited to advance balance",
			"paymentID", paymentID, "memberID", payment.MemberID, "credit", overpayment.StringFixed(2))
	}
	return payment, nil
}

// notifyAdmins sends a best-effort email to the tenant's admins.
func (s *paymentService) notifyAdmins(ctx context.Context, tenantID, subject, htmlBody string) {
	emails, err := s.tenantRepo.ListAdminEmails(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "failed to list admin emails for notification", "tenantID", tenantID)
		return
	}
	if len(emails) == 0 {
		return
	}
	if err := s.mailer.Send(emails, subject, htmlBody); err != nil {
		s.LogError(ctx, err, "failed to send admin notification", "tenantID", tenantID)
	}
}

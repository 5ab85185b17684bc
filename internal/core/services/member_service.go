package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/somitihq/somiti-backend/internal/apperrors"
	"github.com/somitihq/somiti-backend/internal/core/domain"
	"github.com/somitihq/somiti-backend/internal/core/ports/repositories"
	portssvc "github.com/somitihq/somiti-backend/internal/core/ports/services"
	"github.com/somitihq/somiti-backend/internal/dto"
)

type memberService struct {
	BaseService
	memberRepo repositories.MemberRepositoryFacade
	planSvc    portssvc.PlanSvcFacade
}

// NewMemberService creates a new instance of memberService.
func NewMemberService(memberRepo repositories.MemberRepositoryFacade, planSvc portssvc.PlanSvcFacade) portssvc.MemberSvcFacade {
	return &memberService{memberRepo: memberRepo, planSvc: planSvc}
}

// CreateMember adds a roster member, gated by the add_member plan limit.
func (s *memberService) CreateMember(ctx context.Context, actor domain.Actor, req dto.CreateMemberRequest) (*domain.Member, error) {
	if !actor.CanManage(domain.RoleManager) {
		return nil, apperrors.NewForbiddenError("only managers and admins may add members")
	}

	check, err := s.planSvc.CheckTenantLimit(ctx, actor.TenantID, domain.ActionAddMember)
	if err != nil {
		return nil, fmt.Errorf("failed to check member limit: %w", err)
	}
	if !check.Allowed {
		return nil, apperrors.NewPlanLimitError(check.Message, check.MessageBN)
	}

	now := time.Now()
	member := domain.Member{
		MemberID: uuid.NewString(),
		TenantID: actor.TenantID,
		Name:     req.Name,
		NameBN:   req.NameBN,
		Phone:    req.Phone,
		Email:    req.Email,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}
	if err := s.memberRepo.SaveMember(ctx, member); err != nil {
		s.LogError(ctx, err, "failed to save member", "tenantID", actor.TenantID)
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	s.planSvc.InvalidateUsage(ctx, actor.TenantID)
	return &member, nil
}

func (s *memberService) GetMember(ctx context.Context, actor domain.Actor, memberID string) (*domain.Member, error) {
	return s.memberRepo.FindMemberByID(ctx, actor.TenantID, memberID)
}

func (s *memberService) ListMembers(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Member, error) {
	return s.memberRepo.ListMembers(ctx, actor.TenantID, limit, offset)
}

// UpdateMember applies a partial roster update. Manager and above.
func (s *memberService) UpdateMember(ctx context.Context, actor domain.Actor, memberID string, req dto.UpdateMemberRequest) (*domain.Member, error) {
	if !actor.CanManage(domain.RoleManager) {
		return nil, apperrors.NewForbiddenError("only managers and admins may update members")
	}

	member, err := s.memberRepo.FindMemberByID(ctx, actor.TenantID, memberID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.NameBN != nil {
		member.NameBN = *req.NameBN
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	member.LastUpdatedAt = time.Now()
	member.LastUpdatedBy = actor.UserID

	if err := s.memberRepo.UpdateMember(ctx, *member); err != nil {
		return nil, fmt.Errorf("failed to update member: %w", err)
	}
	return member, nil
}

// DeactivateMember removes a member from the active roster. Admin only.
func (s *memberService) DeactivateMember(ctx context.Context, actor domain.Actor, memberID string) error {
	if !actor.CanManage(domain.RoleAdmin) {
		return apperrors.NewForbiddenError("only admins may deactivate members")
	}
	if err := s.memberRepo.DeactivateMember(ctx, actor.TenantID, memberID, actor.UserID); err != nil {
		return err
	}
	s.planSvc.InvalidateUsage(ctx, actor.TenantID)
	return nil
}

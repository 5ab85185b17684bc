package services

import (
	"context"
	"fmt"

	"github.com/somitihq/somiti-backend/internal/apperrors"
	"github.com/somitihq/somiti-backend/internal/core/domain"
	"github.com/somitihq/somiti-backend/internal/core/ports/repositories"
	portssvc "github.com/somitihq/somiti-backend/internal/core/ports/services"
)

type planService struct {
	BaseService
	tenantRepo repositories.TenantReader
	memberRepo repositories.MemberReader
	planRepo   repositories.PlanReader
	cache      repositories.TenantCache
}

// NewPlanService creates a new instance of planService.
func NewPlanService(
	tenantRepo repositories.TenantReader,
	memberRepo repositories.MemberReader,
	planRepo repositories.PlanReader,
	cache repositories.TenantCache,
) portssvc.PlanSvcFacade {
	return &planService{
		tenantRepo: tenantRepo,
		memberRepo: memberRepo,
		planRepo:   planRepo,
		cache:      cache,
	}
}

// GetTenantPlanInfo returns the tenant's plan joined with its live usage
// counters, cache-accelerated.
func (s *planService) GetTenantPlanInfo(ctx context.Context, tenantID string) (*domain.TenantPlanInfo, error) {
	if info, ok := s.cache.GetPlanInfo(ctx, tenantID); ok {
		return info, nil
	}

	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	plan, err := s.planRepo.FindPlanByCode(ctx, domain.PlanCode(tenant.PlanCode))
	if err != nil {
		return nil, fmt.Errorf("failed to load plan %s: %w", tenant.PlanCode, err)
	}
	memberCount, err := s.memberRepo.CountActiveMembers(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to count members: %w", err)
	}

	info := &domain.TenantPlanInfo{
		TenantID:    tenantID,
		Plan:        *plan,
		MemberCount: memberCount,
		SMSUsed:     tenant.SMSUsed,
	}
	s.cache.SetPlanInfo(ctx, info)
	return info, nil
}

// CheckTenantLimit decides server-side whether the action is within the
// tenant's plan quotas.
func (s *planService) CheckTenantLimit(ctx context.Context, tenantID string, action domain.LimitAction) (*domain.LimitCheck, error) {
	info, err := s.GetTenantPlanInfo(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	plan := info.Plan

	check := &domain.LimitCheck{Allowed: true, LimitType: action}
	switch action {
	case domain.ActionAddMember:
		check.Current = info.MemberCount
		check.Limit = plan.MaxMembers
		if !plan.MaxMembersUnlimited && info.MemberCount >= plan.MaxMembers {
			check.Allowed = false
			check.Message = fmt.Sprintf("Member limit of %d reached. Upgrade your plan to add more members.", plan.MaxMembers)
			check.MessageBN = fmt.Sprintf("সদস্য সংখ্যার সীমা %d পূর্ণ হয়েছে। আরও সদস্য যোগ করতে প্ল্যান আপগ্রেড করুন।", plan.MaxMembers)
		}
	case domain.ActionSendSMS:
		check.Current = info.SMSUsed
		check.Limit = plan.SMSQuota
		if info.SMSUsed >= plan.SMSQuota {
			check.Allowed = false
			check.Message = fmt.Sprintf("Monthly SMS quota of %d exhausted.", plan.SMSQuota)
			check.MessageBN = fmt.Sprintf("মাসিক এসএমএস কোটা %d শেষ হয়েছে।", plan.SMSQuota)
		}
	case domain.ActionOnlinePayment:
		if !plan.OnlinePayment {
			check.Allowed = false
			check.Message = "Online payments are not included in your plan."
			check.MessageBN = "অনলাইন পেমেন্ট আপনার প্ল্যানে অন্তর্ভুক্ত নয়।"
		}
	case domain.ActionAdvancedReports:
		if !plan.AdvancedReports {
			check.Allowed = false
			check.Message = "Advanced reports are not included in your plan."
			check.MessageBN = "উন্নত রিপোর্ট আপনার প্ল্যানে অন্তর্ভুক্ত নয়।"
		}
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown limit action: %s", action))
	}

	if !check.Allowed {
		s.LogInfo(ctx, "plan limit blocked action", "tenantID", tenantID, "action", string(action), "current", check.Current, "limit", check.Limit)
	}
	return check, nil
}

func (s *planService) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	return s.planRepo.ListPlans(ctx)
}

// InvalidateUsage drops the cached plan info after a usage-changing write so
// the next limit check sees fresh counters.
func (s *planService) InvalidateUsage(ctx context.Context, tenantID string) {
	s.cache.InvalidatePlanInfo(ctx, tenantID)
}

package services

import (
	"context"

	"github.com/somitihq/somiti-backend/internal/core/domain"
)

// PlanSvcFacade computes plan limit verdicts server-side. The database-backed
// counters are the sole source of truth; clients only display the result.
type PlanSvcFacade interface {
	// GetTenantPlanInfo returns the tenant's plan joined with usage counters,
	// cache-accelerated.
	GetTenantPlanInfo(ctx context.Context, tenantID string) (*domain.TenantPlanInfo, error)

	// CheckTenantLimit decides whether the action is within plan quotas.
	CheckTenantLimit(ctx context.Context, tenantID string, action domain.LimitAction) (*domain.LimitCheck, error)

	// ListPlans returns all subscription tiers.
	ListPlans(ctx context.Context) ([]domain.Plan, error)

	// InvalidateUsage drops the cached plan info after a usage-changing write.
	InvalidateUsage(ctx context.Context, tenantID string)
}

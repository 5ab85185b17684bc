package repositories

import (
	"context"

	"github.com/somitihq/somiti-backend/internal/core/domain"
)

// PlanReader defines read operations for subscription plans. Plans are
// migration-seeded reference data; there is no writer.
type PlanReader interface {
	FindPlanByCode(ctx context.Context, code domain.PlanCode) (*domain.Plan, error)
	ListPlans(ctx context.Context) ([]domain.Plan, error)
}

package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/somitihq/somiti-backend/internal/apperrors"
	"github.com/somitihq/somiti-backend/internal/core/domain"
	portsrepo "github.com/somitihq/somiti-backend/internal/core/ports/repositories"
)

type planRepository struct {
	pool *pgxpool.Pool
}

// NewPlanRepository creates a read-only repository for migration-seeded plans.
func NewPlanRepository(pool *pgxpool.Pool) portsrepo.PlanReader {
	return &planRepository{pool: pool}
}

var _ portsrepo.PlanReader = (*planRepository)(nil)

const planColumns = `
	code, name, name_bn, max_members, max_members_unlimited, sms_quota,
	online_payment, advanced_reports, monthly_price`

func scanPlan(row pgx.Row) (*domain.Plan, error) {
	var p domain.Plan
	err := row.Scan(
		&p.Code,
		&p.Name,
		&p.NameBN,
		&p.MaxMembers,
		&p.MaxMembersUnlimited,
		&p.SMSQuota,
		&p.OnlinePayment,
		&p.AdvancedReports,
		&p.MonthlyPrice,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan plan: %w", err)
	}
	return &p, nil
}

func (r *planRepository) FindPlanByCode(ctx context.Context, code domain.PlanCode) (*domain.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans WHERE code = $1;`
	return scanPlan(db(ctx, r.pool).QueryRow(ctx, query, code))
}

func (r *planRepository) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM plans ORDER BY monthly_price ASC;`
	rows, err := db(ctx, r.pool).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query plans: %w", err)
	}
	defer rows.Close()

	plans := []domain.Plan{}
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, err
		}
		plans = append(plans, *p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating plan rows: %w", rows.Err())
	}
	return plans, nil
}

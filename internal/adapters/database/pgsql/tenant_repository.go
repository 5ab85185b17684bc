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

type tenantRepository struct {
	pool *pgxpool.Pool
}

// NewTenantRepository creates a new repository for tenant data.
func NewTenantRepository(pool *pgxpool.Pool) portsrepo.TenantRepositoryWithTx {
	return &tenantRepository{pool: pool}
}

var _ portsrepo.TenantRepositoryWithTx = (*tenantRepository)(nil)

const tenantColumns = `
	tenant_id, name, name_bn, subdomain, plan_code, subscription_status,
	subscription_expires_at, sms_used, address, contact_phone, contact_email,
	yearly_due_cap, created_at, created_by, last_updated_at, last_updated_by`

func scanTenant(row pgx.Row) (*domain.Tenant, error) {
	var t domain.Tenant
	err := row.Scan(
		&t.TenantID,
		&t.Name,
		&t.NameBN,
		&t.Subdomain,
		&t.PlanCode,
		&t.SubscriptionStatus,
		&t.SubscriptionExpiresAt,
		&t.SMSUsed,
		&t.Settings.Address,
		&t.Settings.ContactPhone,
		&t.Settings.ContactEmail,
		&t.Settings.YearlyDueCap,
		&t.CreatedAt,
		&t.CreatedBy,
		&t.LastUpdatedAt,
		&t.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan tenant: %w", err)
	}
	return &t, nil
}

func (r *tenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE tenant_id = $1;`
	return scanTenant(db(ctx, r.pool).QueryRow(ctx, query, tenantID))
}

func (r *tenantRepository) FindTenantBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, error) {
	query := `SELECT ` + tenantColumns + ` FROM tenants WHERE subdomain = $1;`
	return scanTenant(db(ctx, r.pool).QueryRow(ctx, query, subdomain))
}

func (r *tenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	query := `
		INSERT INTO tenants (
			tenant_id, name, name_bn, subdomain, plan_code, subscription_status,
			subscription_expires_at, sms_used, address, contact_phone, contact_email,
			yearly_due_cap, created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := db(ctx, r.pool).Exec(ctx, query,
		tenant.TenantID,
		tenant.Name,
		tenant.NameBN,
		tenant.Subdomain,
		tenant.PlanCode,
		tenant.SubscriptionStatus,
		tenant.SubscriptionExpiresAt,
		tenant.SMSUsed,
		tenant.Settings.Address,
		tenant.Settings.ContactPhone,
		tenant.Settings.ContactEmail,
		tenant.Settings.YearlyDueCap,
		tenant.CreatedAt,
		tenant.CreatedBy,
		tenant.LastUpdatedAt,
		tenant.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save tenant: %w", err)
	}
	return nil
}

func (r *tenantRepository) UpdateTenantSettings(ctx context.Context, tenantID string, settings domain.TenantSettings, updatedBy string) error {
	query := `
		UPDATE tenants
		SET address = $1, contact_phone = $2, contact_email = $3, yearly_due_cap = $4,
		    last_updated_at = now(), last_updated_by = $5
		WHERE tenant_id = $6;
	`
	cmdTag, err := db(ctx, r.pool).Exec(ctx, query,
		settings.Address,
		settings.ContactPhone,
		settings.ContactEmail,
		settings.YearlyDueCap,
		updatedBy,
		tenantID,
	)
	if err != nil {
		return fmt.Errorf("failed to update tenant settings: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *tenantRepository) IncrementSMSUsed(ctx context.Context, tenantID string, delta int) error {
	query := `UPDATE tenants SET sms_used = sms_used + $1, last_updated_at = now() WHERE tenant_id = $2;`
	cmdTag, err := db(ctx, r.pool).Exec(ctx, query, delta, tenantID)
	if err != nil {
		return fmt.Errorf("failed to increment sms usage: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *tenantRepository) AddMembership(ctx context.Context, membership domain.TenantMembership) error {
	query := `
		INSERT INTO tenant_memberships (user_id, user_name, tenant_id, role, joined_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, tenant_id) DO UPDATE SET
			role = EXCLUDED.role,
			user_name = EXCLUDED.user_name;
	`
	_, err := db(ctx, r.pool).Exec(ctx, query,
		membership.UserID,
		membership.UserName,
		membership.TenantID,
		membership.Role,
		membership.JoinedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to add tenant membership: %w", err)
	}
	return nil
}

func (r *tenantRepository) FindMembership(ctx context.Context, userID, tenantID string) (*domain.TenantMembership, error) {
	query := `
		SELECT user_id, user_name, tenant_id, role, joined_at
		FROM tenant_memberships
		WHERE user_id = $1 AND tenant_id = $2;
	`
	var m domain.TenantMembership
	err := db(ctx, r.pool).QueryRow(ctx, query, userID, tenantID).Scan(
		&m.UserID,
		&m.UserName,
		&m.TenantID,
		&m.Role,
		&m.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tenant membership: %w", err)
	}
	return &m, nil
}

func (r *tenantRepository) ListAdminEmails(ctx context.Context, tenantID string) ([]string, error) {
	query := `
		SELECT u.email
		FROM tenant_memberships tm
		JOIN users u ON u.user_id = tm.user_id
		WHERE tm.tenant_id = $1 AND tm.role = $2 AND u.deleted_at IS NULL;
	`
	rows, err := db(ctx, r.pool).Query(ctx, query, tenantID, domain.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to query admin emails: %w", err)
	}
	defer rows.Close()

	emails := []string{}
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("failed to scan admin email: %w", err)
		}
		emails = append(emails, email)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating admin email rows: %w", rows.Err())
	}
	return emails, nil
}

func (r *tenantRepository) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return runInTx(ctx, r.pool, fn)
}

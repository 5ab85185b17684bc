package repositories

import (
	"context"

	"github.com/somitihq/somiti-backend/internal/core/domain"
)

// TenantReader defines read operations for tenant data.
type TenantReader interface {
	// FindTenantByID retrieves a specific tenant by its ID.
	FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)

	// FindTenantBySubdomain resolves a subdomain to its tenant.
	FindTenantBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, error)
}

// TenantWriter defines write operations for tenant data.
type TenantWriter interface {
	// SaveTenant persists a new tenant.
	SaveTenant(ctx context.Context, tenant domain.Tenant) error

	// UpdateTenantSettings updates the tenant's organization settings.
	UpdateTenantSettings(ctx context.Context, tenantID string, settings domain.TenantSettings, updatedBy string) error

	// IncrementSMSUsed bumps the tenant's SMS usage counter.
	IncrementSMSUsed(ctx context.Context, tenantID string, delta int) error
}

// TenantMembershipManager defines operations for managing tenant memberships.
type TenantMembershipManager interface {
	// AddMembership adds a user to a tenant with a specific role.
	AddMembership(ctx context.Context, membership domain.TenantMembership) error

	// FindMembership retrieves the role of a user in a tenant.
	FindMembership(ctx context.Context, userID, tenantID string) (*domain.TenantMembership, error)

	// ListAdminEmails returns the login emails of a tenant's admins, used for
	// notification fan-out.
	ListAdminEmails(ctx context.Context, tenantID string) ([]string, error)
}

// TenantRepositoryFacade combines all tenant-related repository interfaces.
type TenantRepositoryFacade interface {
	TenantReader
	TenantWriter
	TenantMembershipManager
}

// TenantRepositoryWithTx extends TenantRepositoryFacade with transaction capabilities.
type TenantRepositoryWithTx interface {
	TenantRepositoryFacade
	TransactionManager
}

// TenantCache is a read-through cache over subdomain resolution and plan
// info. Misses are represented by apperrors.ErrNotFound from the repository,
// never cached.
type TenantCache interface {
	GetTenantBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, bool)
	SetTenantBySubdomain(ctx context.Context, tenant *domain.Tenant)

	GetPlanInfo(ctx context.Context, tenantID string) (*domain.TenantPlanInfo, bool)
	SetPlanInfo(ctx context.Context, info *domain.TenantPlanInfo)
	InvalidatePlanInfo(ctx context.Context, tenantID string)
}

package services

import (
	"context"

	"github.com/somitihq/somiti-backend/internal/core/domain"
	"github.com/somitihq/somiti-backend/internal/dto"
)

// TenantResolverSvc resolves public subdomains to tenants. Used by the
// public validate-tenant endpoint and the authorization middleware.
type TenantResolverSvc interface {
	// ResolveTenantBySubdomain returns the tenant for a subdomain, consulting
	// the cache first.
	ResolveTenantBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, error)

	// GetTenant fetches a tenant by ID.
	GetTenant(ctx context.Context, tenantID string) (*domain.Tenant, error)
}

// ActorResolverSvc turns an authenticated user + target tenant into the
// request-scoped Actor capability. actingTenantID is the optional
// super-admin impersonation target; non-super-admins may not set it.
type ActorResolverSvc interface {
	ResolveActor(ctx context.Context, userID, tenantID, actingTenantID string) (*domain.Actor, error)
}

// TenantAdminSvc covers tenant-admin operations.
type TenantAdminSvc interface {
	// UpdateSettings updates tenant organization info. Rejected with
	// apperrors.ErrSubscriptionExpired when the subscription has lapsed.
	UpdateSettings(ctx context.Context, actor domain.Actor, req dto.UpdateTenantSettingsRequest) (*domain.Tenant, error)
}

// TenantProvisionerSvc covers super-admin tenant provisioning.
type TenantProvisionerSvc interface {
	// CreateTenant creates a tenant on a trial subscription and provisions
	// its first admin user atomically.
	CreateTenant(ctx context.Context, actor domain.Actor, req dto.CreateTenantRequest) (*domain.Tenant, error)

	// AddTenantAdmin provisions an additional admin user for a tenant.
	AddTenantAdmin(ctx context.Context, actor domain.Actor, tenantID string, req dto.AddTenantAdminRequest) (*domain.User, error)
}

// TenantSvcFacade combines all tenant-related service interfaces.
type TenantSvcFacade interface {
	TenantResolverSvc
	ActorResolverSvc
	TenantAdminSvc
	TenantProvisionerSvc
}

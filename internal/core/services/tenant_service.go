package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/somitihq/somiti-backend/internal/apperrors"
	"github.com/somitihq/somiti-backend/internal/core/domain"
	"github.com/somitihq/somiti-backend/internal/core/ports/repositories"
	portssvc "github.com/somitihq/somiti-backend/internal/core/ports/services"
	"github.com/somitihq/somiti-backend/internal/dto"
	"github.com/somitihq/somiti-backend/internal/utils"
)

// trialPeriod is the subscription runway granted to newly provisioned tenants.
const trialPeriod = 30 * 24 * time.Hour

type tenantService struct {
	BaseService
	tenantRepo repositories.TenantRepositoryWithTx
	userRepo   repositories.UserRepositoryFacade
	planRepo   repositories.PlanReader
	cache      repositories.TenantCache
}

// NewTenantService creates a new instance of tenantService.
func NewTenantService(
	tenantRepo repositories.TenantRepositoryWithTx,
	userRepo repositories.UserRepositoryFacade,
	planRepo repositories.PlanReader,
	cache repositories.TenantCache,
) portssvc.TenantSvcFacade {
	return &tenantService{
		tenantRepo: tenantRepo,
		userRepo:   userRepo,
		planRepo:   planRepo,
		cache:      cache,
	}
}

// ResolveTenantBySubdomain returns the tenant for a subdomain, consulting the
// cache first.
func (s *tenantService) ResolveTenantBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, error) {
	if tenant, ok := s.cache.GetTenantBySubdomain(ctx, subdomain); ok {
		return tenant, nil
	}
	tenant, err := s.tenantRepo.FindTenantBySubdomain(ctx, subdomain)
	if err != nil {
		return nil, err
	}
	s.cache.SetTenantBySubdomain(ctx, tenant)
	return tenant, nil
}

func (s *tenantService) GetTenant(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	return s.tenantRepo.FindTenantByID(ctx, tenantID)
}

// ResolveActor turns the authenticated user and target tenant into the
// request-scoped Actor. Super admins act as ADMIN in any tenant, optionally
// redirected by actingTenantID; everyone else needs a membership row.
func (s *tenantService) ResolveActor(ctx context.Context, userID, tenantID, actingTenantID string) (*domain.Actor, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to resolve actor user: %w", err)
	}

	if user.IsSuperAdmin {
		effectiveTenantID := tenantID
		if actingTenantID != "" {
			effectiveTenantID = actingTenantID
		}
		if _, err := s.tenantRepo.FindTenantByID(ctx, effectiveTenantID); err != nil {
			return nil, err
		}
		return &domain.Actor{
			UserID:       user.UserID,
			UserName:     user.Name,
			TenantID:     effectiveTenantID,
			Role:         domain.RoleAdmin,
			IsSuperAdmin: true,
		}, nil
	}

	if actingTenantID != "" && actingTenantID != tenantID {
		return nil, apperrors.NewForbiddenError("only super admins may act on behalf of another tenant")
	}

	membership, err := s.tenantRepo.FindMembership(ctx, userID, tenantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewForbiddenError("user is not a member of this tenant")
		}
		return nil, fmt.Errorf("failed to resolve tenant membership: %w", err)
	}

	return &domain.Actor{
		UserID:   user.UserID,
		UserName: membership.UserName,
		TenantID: tenantID,
		Role:     membership.Role,
	}, nil
}

// UpdateSettings updates tenant organization info. Admin only.
func (s *tenantService) UpdateSettings(ctx context.Context, actor domain.Actor, req dto.UpdateTenantSettingsRequest) (*domain.Tenant, error) {
	if !actor.CanManage(domain.RoleAdmin) {
		return nil, apperrors.NewForbiddenError("only admins may update tenant settings")
	}

	tenant, err := s.tenantRepo.FindTenantByID(ctx, actor.TenantID)
	if err != nil {
		return nil, err
	}
	if !tenant.WritesAllowed() {
		return nil, apperrors.ErrSubscriptionExpired
	}

	settings := domain.TenantSettings{
		Address:      req.Address,
		ContactPhone: req.ContactPhone,
		ContactEmail: req.ContactEmail,
		YearlyDueCap: req.YearlyDueCap,
	}
	if err := s.tenantRepo.UpdateTenantSettings(ctx, actor.TenantID, settings, actor.UserID); err != nil {
		return nil, fmt.Errorf("failed to update tenant settings: %w", err)
	}

	tenant.Settings = settings
	s.cache.SetTenantBySubdomain(ctx, tenant)
	s.LogInfo(ctx, "tenant settings updated", "tenantID", actor.TenantID)
	return tenant, nil
}

// CreateTenant provisions a tenant on a trial subscription together with its
// first admin, atomically.
func (s *tenantService) CreateTenant(ctx context.Context, actor domain.Actor, req dto.CreateTenantRequest) (*domain.Tenant, error) {
	if !actor.IsSuperAdmin {
		return nil, apperrors.NewForbiddenError("only super admins may provision tenants")
	}

	if _, err := s.planRepo.FindPlanByCode(ctx, domain.PlanCode(req.PlanCode)); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("unknown plan code: %s", req.PlanCode))
		}
		return nil, fmt.Errorf("failed to look up plan: %w", err)
	}

	now := time.Now()
	trialExpiry := now.Add(trialPeriod)
	tenant := domain.Tenant{
		TenantID:              uuid.NewString(),
		Name:                  req.Name,
		NameBN:                req.NameBN,
		Subdomain:             req.Subdomain,
		PlanCode:              req.PlanCode,
		SubscriptionStatus:    domain.SubscriptionTrial,
		SubscriptionExpiresAt: &trialExpiry,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actor.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actor.UserID,
		},
	}

	err := s.tenantRepo.WithinTx(ctx, func(txCtx context.Context) error {
		if err := s.tenantRepo.SaveTenant(txCtx, tenant); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				return apperrors.NewConflictError("a tenant with this subdomain already exists")
			}
			return err
		}
		_, err := s.provisionAdmin(txCtx, actor, tenant.TenantID, req.AdminName, req.AdminEmail, req.AdminPassword)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "tenant provisioned", "tenantID", tenant.TenantID, "subdomain", tenant.Subdomain)
	return &tenant, nil
}

// AddTenantAdmin provisions an additional admin user for an existing tenant.
func (s *tenantService) AddTenantAdmin(ctx context.Context, actor domain.Actor, tenantID string, req dto.AddTenantAdminRequest) (*domain.User, error) {
	if !actor.IsSuperAdmin {
		return nil, apperrors.NewForbiddenError("only super admins may provision tenant admins")
	}
	if _, err := s.tenantRepo.FindTenantByID(ctx, tenantID); err != nil {
		return nil, err
	}

	var user *domain.User
	err := s.tenantRepo.WithinTx(ctx, func(txCtx context.Context) error {
		var err error
		user, err = s.provisionAdmin(txCtx, actor, tenantID, req.Name, req.Email, req.Password)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// provisionAdmin creates (or reuses) the user account and grants it the ADMIN
// role in the tenant.
func (s *tenantService) provisionAdmin(ctx context.Context, actor domain.Actor, tenantID, name, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if errors.Is(err, apperrors.ErrNotFound) {
		passwordHash, hashErr := utils.HashPassword(password)
		if hashErr != nil {
			return nil, fmt.Errorf("failed to hash admin password: %w", hashErr)
		}
		now := time.Now()
		newUser := domain.User{
			UserID:       uuid.NewString(),
			Name:         name,
			Email:        email,
			PasswordHash: passwordHash,
			AuthProvider: domain.ProviderLocal,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     actor.UserID,
				LastUpdatedAt: now,
				LastUpdatedBy: actor.UserID,
			},
		}
		if saveErr := s.userRepo.SaveUser(ctx, newUser); saveErr != nil {
			return nil, fmt.Errorf("failed to save admin user: %w", saveErr)
		}
		user = &newUser
	} else if err != nil {
		return nil, fmt.Errorf("failed to look up admin email: %w", err)
	}

	membership := domain.TenantMembership{
		UserID:   user.UserID,
		UserName: user.Name,
		TenantID: tenantID,
		Role:     domain.RoleAdmin,
		JoinedAt: time.Now(),
	}
	if err := s.tenantRepo.AddMembership(ctx, membership); err != nil {
		return nil, fmt.Errorf("failed to add admin membership: %w", err)
	}
	return user, nil
}

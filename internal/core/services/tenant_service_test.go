package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/somitihq/somiti-backend/internal/apperrors"
	"github.com/somitihq/somiti-backend/internal/core/domain"
	portssvc "github.com/somitihq/somiti-backend/internal/core/ports/services"
	"github.com/somitihq/somiti-backend/internal/core/services"
	"github.com/somitihq/somiti-backend/internal/dto"
)

type TenantServiceTestSuite struct {
	suite.Suite
	mockTenantRepo *MockTenantRepository
	mockUserRepo   *MockUserRepository
	mockPlanRepo   *MockPlanRepository
	mockCache      *MockTenantCache
	service        portssvc.TenantSvcFacade

	tenantID string
	userID   string
}

func (suite *TenantServiceTestSuite) SetupTest() {
	suite.mockTenantRepo = new(MockTenantRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockPlanRepo = new(MockPlanRepository)
	suite.mockCache = new(MockTenantCache)
	suite.service = services.NewTenantService(suite.mockTenantRepo, suite.mockUserRepo, suite.mockPlanRepo, suite.mockCache)

	suite.tenantID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *TenantServiceTestSuite) TestResolveTenantBySubdomain_CacheHit() {
	ctx := context.Background()
	tenant := &domain.Tenant{TenantID: suite.tenantID, Subdomain: "greenvalley"}
	suite.mockCache.On("GetTenantBySubdomain", ctx, "greenvalley").Return(tenant, true).Once()

	resolved, err := suite.service.ResolveTenantBySubdomain(ctx, "greenvalley")

	suite.Require().NoError(err)
	suite.Equal(tenant, resolved)
	suite.mockTenantRepo.AssertNotCalled(suite.T(), "FindTenantBySubdomain", mock.Anything, mock.Anything)
}

func (suite *TenantServiceTestSuite) TestResolveTenantBySubdomain_CacheMissFillsCache() {
	ctx := context.Background()
	tenant := &domain.Tenant{TenantID: suite.tenantID, Subdomain: "greenvalley"}
	suite.mockCache.On("GetTenantBySubdomain", ctx, "greenvalley").Return(nil, false).Once()
	suite.mockTenantRepo.On("FindTenantBySubdomain", ctx, "greenvalley").Return(tenant, nil).Once()
	suite.mockCache.On("SetTenantBySubdomain", ctx, tenant).Return().Once()

	resolved, err := suite.service.ResolveTenantBySubdomain(ctx, "greenvalley")

	suite.Require().NoError(err)
	suite.Equal(tenant, resolved)
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *TenantServiceTestSuite) TestResolveTenantBySubdomain_UnknownSubdomainNotCached() {
	ctx := context.Background()
	suite.mockCache.On("GetTenantBySubdomain", ctx, "nope").Return(nil, false).Once()
	suite.mockTenantRepo.On("FindTenantBySubdomain", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	resolved, err := suite.service.ResolveTenantBySubdomain(ctx, "nope")

	suite.Require().Error(err)
	suite.Nil(resolved)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockCache.AssertNotCalled(suite.T(), "SetTenantBySubdomain", mock.Anything, mock.Anything)
}

func (suite *TenantServiceTestSuite) TestResolveActor_MembershipRole() {
	ctx := context.Background()
	user := &domain.User{UserID: suite.userID, Name: "Karim"}
	membership := &domain.TenantMembership{UserID: suite.userID, UserName: "Karim", TenantID: suite.tenantID, Role: domain.RoleManager}
	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(user, nil).Once()
	suite.mockTenantRepo.On("FindMembership", ctx, suite.userID, suite.tenantID).Return(membership, nil).Once()

	actor, err := suite.service.ResolveActor(ctx, suite.userID, suite.tenantID, "")

	suite.Require().NoError(err)
	suite.Equal(domain.RoleManager, actor.Role)
	suite.False(actor.IsSuperAdmin)
	suite.Equal(suite.tenantID, actor.TenantID)
}

func (suite *TenantServiceTestSuite) TestResolveActor_NonMemberForbidden() {
	ctx := context.Background()
	user := &domain.User{UserID: suite.userID}
	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(user, nil).Once()
	suite.mockTenantRepo.On("FindMembership", ctx, suite.userID, suite.tenantID).Return(nil, apperrors.ErrNotFound).Once()

	actor, err := suite.service.ResolveActor(ctx, suite.userID, suite.tenantID, "")

	suite.Require().Error(err)
	suite.Nil(actor)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal("FORBIDDEN", appErr.Code)
}

func (suite *TenantServiceTestSuite) TestResolveActor_SuperAdminImpersonation() {
	ctx := context.Background()
	otherTenantID := uuid.NewString()
	user := &domain.User{UserID: suite.userID, Name: "Root", IsSuperAdmin: true}
	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(user, nil).Once()
	suite.mockTenantRepo.On("FindTenantByID", ctx, otherTenantID).Return(&domain.Tenant{TenantID: otherTenantID}, nil).Once()

	actor, err := suite.service.ResolveActor(ctx, suite.userID, suite.tenantID, otherTenantID)

	suite.Require().NoError(err)
	suite.True(actor.IsSuperAdmin)
	suite.Equal(otherTenantID, actor.TenantID)
	suite.Equal(domain.RoleAdmin, actor.Role)
	suite.mockTenantRepo.AssertNotCalled(suite.T(), "FindMembership", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TenantServiceTestSuite) TestResolveActor_RegularUserCannotImpersonate() {
	ctx := context.Background()
	user := &domain.User{UserID: suite.userID}
	suite.mockUserRepo.On("FindUserByID", ctx, suite.userID).Return(user, nil).Once()

	actor, err := suite.service.ResolveActor(ctx, suite.userID, suite.tenantID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(actor)
}

func (suite *TenantServiceTestSuite) TestUpdateSettings_ExpiredSubscriptionRejected() {
	ctx := context.Background()
	actor := domain.Actor{UserID: suite.userID, TenantID: suite.tenantID, Role: domain.RoleAdmin}
	expired := &domain.Tenant{TenantID: suite.tenantID, SubscriptionStatus: domain.SubscriptionExpired}
	suite.mockTenantRepo.On("FindTenantByID", ctx, suite.tenantID).Return(expired, nil).Once()

	tenant, err := suite.service.UpdateSettings(ctx, actor, dto.UpdateTenantSettingsRequest{Address: "Dhaka"})

	suite.Require().Error(err)
	suite.Nil(tenant)
	suite.ErrorIs(err, apperrors.ErrSubscriptionExpired)
}

func (suite *TenantServiceTestSuite) TestCreateTenant_SuperAdminOnly() {
	ctx := context.Background()
	actor := domain.Actor{UserID: suite.userID, TenantID: suite.tenantID, Role: domain.RoleAdmin}

	tenant, err := suite.service.CreateTenant(ctx, actor, dto.CreateTenantRequest{})

	suite.Require().Error(err)
	suite.Nil(tenant)
	suite.mockTenantRepo.AssertNotCalled(suite.T(), "SaveTenant", mock.Anything, mock.Anything)
}

func (suite *TenantServiceTestSuite) TestCreateTenant_ProvisionsTenantAndAdmin() {
	ctx := context.Background()
	actor := domain.Actor{UserID: suite.userID, IsSuperAdmin: true}
	req := dto.CreateTenantRequest{
		Name:          "Green Valley Somiti",
		Subdomain:     "greenvalley",
		PlanCode:      "starter",
		AdminName:     "Karim",
		AdminEmail:    "karim@example.com",
		AdminPassword: "supersecret",
	}

	suite.mockPlanRepo.On("FindPlanByCode", ctx, domain.PlanStarter).Return(&domain.Plan{Code: domain.PlanStarter}, nil).Once()
	suite.mockTenantRepo.On("WithinTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil).Once()
	suite.mockTenantRepo.On("SaveTenant", ctx, mock.MatchedBy(func(t domain.Tenant) bool {
		return t.Subdomain == "greenvalley" && t.SubscriptionStatus == domain.SubscriptionTrial && t.SubscriptionExpiresAt != nil
	})).Return(nil).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "karim@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "karim@example.com" && u.PasswordHash != "" && u.AuthProvider == domain.ProviderLocal
	})).Return(nil).Once()
	suite.mockTenantRepo.On("AddMembership", ctx, mock.MatchedBy(func(m domain.TenantMembership) bool {
		return m.Role == domain.RoleAdmin
	})).Return(nil).Once()

	tenant, err := suite.service.CreateTenant(ctx, actor, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(tenant)
	suite.Equal(domain.SubscriptionTrial, tenant.SubscriptionStatus)
	suite.mockTenantRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *TenantServiceTestSuite) TestCreateTenant_DuplicateSubdomainConflicts() {
	ctx := context.Background()
	actor := domain.Actor{UserID: suite.userID, IsSuperAdmin: true}
	req := dto.CreateTenantRequest{Name: "Dup", Subdomain: "taken", PlanCode: "starter", AdminName: "A", AdminEmail: "a@example.com", AdminPassword: "supersecret"}

	suite.mockPlanRepo.On("FindPlanByCode", ctx, domain.PlanStarter).Return(&domain.Plan{Code: domain.PlanStarter}, nil).Once()
	suite.mockTenantRepo.On("WithinTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil).Once()
	suite.mockTenantRepo.On("SaveTenant", ctx, mock.AnythingOfType("domain.Tenant")).Return(apperrors.ErrDuplicate).Once()

	tenant, err := suite.service.CreateTenant(ctx, actor, req)

	suite.Require().Error(err)
	suite.Nil(tenant)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal("CONFLICT", appErr.Code)
}

func TestTenantServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TenantServiceTestSuite))
}

package handlers_test

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
	googleoauth2 "google.golang.org/api/oauth2/v2"

	"github.com/somitihq/somiti-backend/internal/core/domain"
	portssvc "github.com/somitihq/somiti-backend/internal/core/ports/services"
	"github.com/somitihq/somiti-backend/internal/dto"
	"github.com/somitihq/somiti-backend/internal/handlers"
	"github.com/somitihq/somiti-backend/internal/platform/config"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

// --- Mock TenantService ---

type MockTenantService struct {
	mock.Mock
}

func (m *MockTenantService) ResolveTenantBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, error) {
	args := m.Called(ctx, subdomain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}
func (m *MockTenantService) GetTenant(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}
func (m *MockTenantService) ResolveActor(ctx context.Context, userID, tenantID, actingTenantID string) (*domain.Actor, error) {
	args := m.Called(ctx, userID, tenantID, actingTenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Actor), args.Error(1)
}
func (m *MockTenantService) UpdateSettings(ctx context.Context, actor domain.Actor, req dto.UpdateTenantSettingsRequest) (*domain.Tenant, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}
func (m *MockTenantService) CreateTenant(ctx context.Context, actor domain.Actor, req dto.CreateTenantRequest) (*domain.Tenant, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}
func (m *MockTenantService) AddTenantAdmin(ctx context.Context, actor domain.Actor, tenantID string, req dto.AddTenantAdminRequest) (*domain.User, error) {
	args := m.Called(ctx, actor, tenantID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.TenantSvcFacade = (*MockTenantService)(nil)

// --- Mock UserService ---

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) CreateOAuthUser(ctx context.Context, name, email string, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, name, email, provider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock MemberService ---

type MockMemberService struct {
	mock.Mock
}

func (m *MockMemberService) CreateMember(ctx context.Context, actor domain.Actor, req dto.CreateMemberRequest) (*domain.Member, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockMemberService) GetMember(ctx context.Context, actor domain.Actor, memberID string) (*domain.Member, error) {
	args := m.Called(ctx, actor, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockMemberService) ListMembers(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Member, error) {
	args := m.Called(ctx, actor, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}
func (m *MockMemberService) UpdateMember(ctx context.Context, actor domain.Actor, memberID string, req dto.UpdateMemberRequest) (*domain.Member, error) {
	args := m.Called(ctx, actor, memberID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockMemberService) DeactivateMember(ctx context.Context, actor domain.Actor, memberID string) error {
	args := m.Called(ctx, actor, memberID)
	return args.Error(0)
}

var _ portssvc.MemberSvcFacade = (*MockMemberService)(nil)

// --- Mock NoticeService ---

type MockNoticeService struct {
	mock.Mock
}

func (m *MockNoticeService) ListNotices(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Notice, error) {
	args := m.Called(ctx, actor, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notice), args.Error(1)
}
func (m *MockNoticeService) GetNotice(ctx context.Context, actor domain.Actor, noticeID string) (*domain.Notice, error) {
	args := m.Called(ctx, actor, noticeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notice), args.Error(1)
}
func (m *MockNoticeService) CreateNotice(ctx context.Context, actor domain.Actor, req dto.CreateNoticeRequest) (*domain.Notice, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notice), args.Error(1)
}
func (m *MockNoticeService) UpdateNotice(ctx context.Context, actor domain.Actor, noticeID string, req dto.UpdateNoticeRequest) (*domain.Notice, error) {
	args := m.Called(ctx, actor, noticeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notice), args.Error(1)
}
func (m *MockNoticeService) DeleteNotice(ctx context.Context, actor domain.Actor, noticeID string) error {
	args := m.Called(ctx, actor, noticeID)
	return args.Error(0)
}
func (m *MockNoticeService) GetDecision(ctx context.Context, actor domain.Actor, noticeID string) (*domain.NoticeDecision, error) {
	args := m.Called(ctx, actor, noticeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NoticeDecision), args.Error(1)
}
func (m *MockNoticeService) SetDecision(ctx context.Context, actor domain.Actor, noticeID string, req dto.SetDecisionRequest) (*domain.NoticeDecision, error) {
	args := m.Called(ctx, actor, noticeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NoticeDecision), args.Error(1)
}
func (m *MockNoticeService) AddComment(ctx context.Context, actor domain.Actor, noticeID string, req dto.AddCommentRequest) (*domain.NoticeComment, error) {
	args := m.Called(ctx, actor, noticeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NoticeComment), args.Error(1)
}
func (m *MockNoticeService) ListComments(ctx context.Context, actor domain.Actor, noticeID string, page, pageSize int) ([]domain.NoticeComment, error) {
	args := m.Called(ctx, actor, noticeID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NoticeComment), args.Error(1)
}
func (m *MockNoticeService) EditComment(ctx context.Context, actor domain.Actor, commentID string, req dto.EditCommentRequest) (*domain.NoticeComment, error) {
	args := m.Called(ctx, actor, commentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NoticeComment), args.Error(1)
}
func (m *MockNoticeService) DeleteComment(ctx context.Context, actor domain.Actor, commentID string) error {
	args := m.Called(ctx, actor, commentID)
	return args.Error(0)
}

var _ portssvc.NoticeSvcFacade = (*MockNoticeService)(nil)

// --- Mock PaymentService ---

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) RequestPayment(ctx context.Context, actor domain.Actor, req dto.RequestPaymentRequest) (*domain.Payment, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentService) ListPendingApprovals(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Payment, error) {
	args := m.Called(ctx, actor, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentService) ListMemberPayments(ctx context.Context, actor domain.Actor, memberID string, limit, offset int) ([]domain.Payment, error) {
	args := m.Called(ctx, actor, memberID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentService) ApprovePayment(ctx context.Context, actor domain.Actor, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, actor, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentService) RejectPayment(ctx context.Context, actor domain.Actor, paymentID string, req dto.RejectPaymentRequest) (*domain.Payment, error) {
	args := m.Called(ctx, actor, paymentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentService) MarkPaid(ctx context.Context, actor domain.Actor, paymentID string, req dto.MarkPaidRequest) (*domain.Payment, error) {
	args := m.Called(ctx, actor, paymentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

// --- Mock PlanService ---

type MockPlanService struct {
	mock.Mock
}

func (m *MockPlanService) GetTenantPlanInfo(ctx context.Context, tenantID string) (*domain.TenantPlanInfo, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TenantPlanInfo), args.Error(1)
}
func (m *MockPlanService) CheckTenantLimit(ctx context.Context, tenantID string, action domain.LimitAction) (*domain.LimitCheck, error) {
	args := m.Called(ctx, tenantID, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LimitCheck), args.Error(1)
}
func (m *MockPlanService) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Plan), args.Error(1)
}
func (m *MockPlanService) InvalidateUsage(ctx context.Context, tenantID string) {
	m.Called(ctx, tenantID)
}

var _ portssvc.PlanSvcFacade = (*MockPlanService)(nil)

// --- Mock TokenService ---

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock GoogleOAuthService ---

type MockGoogleOAuthService struct {
	mock.Mock
}

func (m *MockGoogleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}
func (m *MockGoogleOAuthService) ValidateGoogleIDToken(ctx context.Context, idToken string) (*googleoauth2.Tokeninfo, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*googleoauth2.Tokeninfo), args.Error(1)
}

var _ portssvc.GoogleOAuthSvcFacade = (*MockGoogleOAuthService)(nil)

// --- Shared test harness ---

// mockServices bundles all mocked facades behind a ServiceContainer so tests
// exercise the real routing and middleware chain.
type mockServices struct {
	Tenant      *MockTenantService
	User        *MockUserService
	Member      *MockMemberService
	Notice      *MockNoticeService
	Payment     *MockPaymentService
	Plan        *MockPlanService
	Token       *MockTokenService
	GoogleOAuth *MockGoogleOAuthService
}

func newMockServices() *mockServices {
	return &mockServices{
		Tenant:      new(MockTenantService),
		User:        new(MockUserService),
		Member:      new(MockMemberService),
		Notice:      new(MockNoticeService),
		Payment:     new(MockPaymentService),
		Plan:        new(MockPlanService),
		Token:       new(MockTokenService),
		GoogleOAuth: new(MockGoogleOAuthService),
	}
}

func (m *mockServices) container() *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Tenant:      m.Tenant,
		User:        m.User,
		Member:      m.Member,
		Notice:      m.Notice,
		Payment:     m.Payment,
		Plan:        m.Plan,
		Token:       m.Token,
		GoogleOAuth: m.GoogleOAuth,
	}
}

// newTestRouter builds a router with the full route table registered against
// the mocked services. IsProduction skips the swagger routes.
func newTestRouter(m *mockServices) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{
		JWTSecret:    testJWTSecret,
		IsProduction: true,
	}
	handlers.RegisterRoutes(r, cfg, m.container())
	return r
}

// generateTestToken creates a signed JWT for the given user ID.
func generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "somiti-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		panic(err)
	}
	return signed
}

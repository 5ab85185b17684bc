package services_test

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/somitihq/somiti-backend/internal/core/domain"
)

// --- Mock TenantRepository ---

type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindTenantBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, error) {
	args := m.Called(ctx, subdomain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) UpdateTenantSettings(ctx context.Context, tenantID string, settings domain.TenantSettings, updatedBy string) error {
	args := m.Called(ctx, tenantID, settings, updatedBy)
	return args.Error(0)
}

func (m *MockTenantRepository) IncrementSMSUsed(ctx context.Context, tenantID string, delta int) error {
	args := m.Called(ctx, tenantID, delta)
	return args.Error(0)
}

func (m *MockTenantRepository) AddMembership(ctx context.Context, membership domain.TenantMembership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockTenantRepository) FindMembership(ctx context.Context, userID, tenantID string) (*domain.TenantMembership, error) {
	args := m.Called(ctx, userID, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TenantMembership), args.Error(1)
}

func (m *MockTenantRepository) ListAdminEmails(ctx context.Context, tenantID string) ([]string, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockTenantRepository) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock MemberRepository ---

type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) FindMemberByID(ctx context.Context, tenantID, memberID string) (*domain.Member, error) {
	args := m.Called(ctx, tenantID, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}

func (m *MockMemberRepository) ListMembers(ctx context.Context, tenantID string, limit, offset int) ([]domain.Member, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}

func (m *MockMemberRepository) CountActiveMembers(ctx context.Context, tenantID string) (int, error) {
	args := m.Called(ctx, tenantID)
	return args.Int(0), args.Error(1)
}

func (m *MockMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) UpdateMember(ctx context.Context, member domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) DeactivateMember(ctx context.Context, tenantID, memberID, updatedBy string) error {
	args := m.Called(ctx, tenantID, memberID, updatedBy)
	return args.Error(0)
}

func (m *MockMemberRepository) AdjustAdvanceBalance(ctx context.Context, tenantID, memberID string, delta decimal.Decimal, updatedBy string) error {
	args := m.Called(ctx, tenantID, memberID, delta, updatedBy)
	return args.Error(0)
}

// --- Mock NoticeRepository ---

type MockNoticeRepository struct {
	mock.Mock
}

func (m *MockNoticeRepository) FindNoticeByID(ctx context.Context, tenantID, noticeID string) (*domain.Notice, error) {
	args := m.Called(ctx, tenantID, noticeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notice), args.Error(1)
}

func (m *MockNoticeRepository) ListNotices(ctx context.Context, tenantID string, publishedOnly bool, limit, offset int) ([]domain.Notice, error) {
	args := m.Called(ctx, tenantID, publishedOnly, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notice), args.Error(1)
}

func (m *MockNoticeRepository) SaveNotice(ctx context.Context, notice domain.Notice) error {
	args := m.Called(ctx, notice)
	return args.Error(0)
}

func (m *MockNoticeRepository) UpdateNotice(ctx context.Context, notice domain.Notice) error {
	args := m.Called(ctx, notice)
	return args.Error(0)
}

func (m *MockNoticeRepository) DeleteNotice(ctx context.Context, tenantID, noticeID string) error {
	args := m.Called(ctx, tenantID, noticeID)
	return args.Error(0)
}

func (m *MockNoticeRepository) FindDecisionByNoticeID(ctx context.Context, tenantID, noticeID string) (*domain.NoticeDecision, error) {
	args := m.Called(ctx, tenantID, noticeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NoticeDecision), args.Error(1)
}

func (m *MockNoticeRepository) UpsertDecision(ctx context.Context, decision domain.NoticeDecision) error {
	args := m.Called(ctx, decision)
	return args.Error(0)
}

func (m *MockNoticeRepository) SaveComment(ctx context.Context, comment domain.NoticeComment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockNoticeRepository) FindCommentByID(ctx context.Context, tenantID, commentID string) (*domain.NoticeComment, error) {
	args := m.Called(ctx, tenantID, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NoticeComment), args.Error(1)
}

func (m *MockNoticeRepository) ListComments(ctx context.Context, tenantID, noticeID string, limit, offset int) ([]domain.NoticeComment, error) {
	args := m.Called(ctx, tenantID, noticeID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NoticeComment), args.Error(1)
}

func (m *MockNoticeRepository) UpdateCommentText(ctx context.Context, tenantID, commentID, text string) error {
	args := m.Called(ctx, tenantID, commentID, text)
	return args.Error(0)
}

func (m *MockNoticeRepository) DeleteComment(ctx context.Context, tenantID, commentID string) error {
	args := m.Called(ctx, tenantID, commentID)
	return args.Error(0)
}

// --- Mock PaymentRepository ---

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, tenantID, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, tenantID, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPendingApprovals(ctx context.Context, tenantID string, limit, offset int) ([]domain.Payment, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByMember(ctx context.Context, tenantID, memberID string, limit, offset int) ([]domain.Payment, error) {
	args := m.Called(ctx, tenantID, memberID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SumMemberDuesForYear(ctx context.Context, tenantID, memberID string, year int) (decimal.Decimal, error) {
	args := m.Called(ctx, tenantID, memberID, year)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

// --- Mock PlanRepository ---

type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) FindPlanByCode(ctx context.Context, code domain.PlanCode) (*domain.Plan, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plan), args.Error(1)
}

func (m *MockPlanRepository) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Plan), args.Error(1)
}

// --- Mock TenantCache ---

type MockTenantCache struct {
	mock.Mock
}

func (m *MockTenantCache) GetTenantBySubdomain(ctx context.Context, subdomain string) (*domain.Tenant, bool) {
	args := m.Called(ctx, subdomain)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.Tenant), args.Bool(1)
}

func (m *MockTenantCache) SetTenantBySubdomain(ctx context.Context, tenant *domain.Tenant) {
	m.Called(ctx, tenant)
}

func (m *MockTenantCache) GetPlanInfo(ctx context.Context, tenantID string) (*domain.TenantPlanInfo, bool) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.TenantPlanInfo), args.Bool(1)
}

func (m *MockTenantCache) SetPlanInfo(ctx context.Context, info *domain.TenantPlanInfo) {
	m.Called(ctx, info)
}

func (m *MockTenantCache) InvalidatePlanInfo(ctx context.Context, tenantID string) {
	m.Called(ctx, tenantID)
}

// --- Mock PlanSvc ---

type MockPlanSvc struct {
	mock.Mock
}

func (m *MockPlanSvc) GetTenantPlanInfo(ctx context.Context, tenantID string) (*domain.TenantPlanInfo, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TenantPlanInfo), args.Error(1)
}

func (m *MockPlanSvc) CheckTenantLimit(ctx context.Context, tenantID string, action domain.LimitAction) (*domain.LimitCheck, error) {
	args := m.Called(ctx, tenantID, action)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LimitCheck), args.Error(1)
}

func (m *MockPlanSvc) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Plan), args.Error(1)
}

func (m *MockPlanSvc) InvalidateUsage(ctx context.Context, tenantID string) {
	m.Called(ctx, tenantID)
}

// --- Mock PaymentLinkProvider ---

type MockPaymentLinkProvider struct {
	mock.Mock
}

func (m *MockPaymentLinkProvider) CreatePaymentLink(ctx context.Context, payment domain.Payment, tenant domain.Tenant) (string, error) {
	args := m.Called(ctx, payment, tenant)
	return args.String(0), args.Error(1)
}

// --- Mock Mailer ---

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(to []string, subject, htmlBody string) error {
	args := m.Called(to, subject, htmlBody)
	return args.Error(0)
}

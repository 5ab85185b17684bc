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

type MemberServiceTestSuite struct {
	suite.Suite
	mockRepo    *MockMemberRepository
	mockPlanSvc *MockPlanSvc
	service     portssvc.MemberSvcFacade

	tenantID string
	admin    domain.Actor
	manager  domain.Actor
	member   domain.Actor
}

func (suite *MemberServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockMemberRepository)
	suite.mockPlanSvc = new(MockPlanSvc)
	suite.service = services.NewMemberService(suite.mockRepo, suite.mockPlanSvc)

	suite.tenantID = uuid.NewString()
	suite.admin = domain.Actor{UserID: uuid.NewString(), TenantID: suite.tenantID, Role: domain.RoleAdmin}
	suite.manager = domain.Actor{UserID: uuid.NewString(), TenantID: suite.tenantID, Role: domain.RoleManager}
	suite.member = domain.Actor{UserID: uuid.NewString(), TenantID: suite.tenantID, Role: domain.RoleMember}
}

func (suite *MemberServiceTestSuite) TestCreateMember_Success() {
	ctx := context.Background()
	req := dto.CreateMemberRequest{Name: "Rahim", Phone: "01712345678"}

	suite.mockPlanSvc.On("CheckTenantLimit", ctx, suite.tenantID, domain.ActionAddMember).
		Return(&domain.LimitCheck{Allowed: true, LimitType: domain.ActionAddMember}, nil).Once()
	suite.mockRepo.On("SaveMember", ctx, mock.MatchedBy(func(m domain.Member) bool {
		return m.Name == "Rahim" && m.IsActive && m.TenantID == suite.tenantID && m.CreatedBy == suite.manager.UserID
	})).Return(nil).Once()
	suite.mockPlanSvc.On("InvalidateUsage", ctx, suite.tenantID).Return().Once()

	member, err := suite.service.CreateMember(ctx, suite.manager, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(member)
	suite.True(member.IsActive)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockPlanSvc.AssertExpectations(suite.T())
}

func (suite *MemberServiceTestSuite) TestCreateMember_PlanLimitBlocked() {
	ctx := context.Background()
	req := dto.CreateMemberRequest{Name: "Rahim"}

	suite.mockPlanSvc.On("CheckTenantLimit", ctx, suite.tenantID, domain.ActionAddMember).
		Return(&domain.LimitCheck{Allowed: false, LimitType: domain.ActionAddMember, Current: 25, Limit: 25, Message: "Member limit of 25 reached."}, nil).Once()

	member, err := suite.service.CreateMember(ctx, suite.manager, req)

	suite.Require().Error(err)
	suite.Nil(member)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal("PLAN_LIMIT_REACHED", appErr.Code)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveMember", mock.Anything, mock.Anything)
}

func (suite *MemberServiceTestSuite) TestCreateMember_MemberRoleForbidden() {
	ctx := context.Background()

	member, err := suite.service.CreateMember(ctx, suite.member, dto.CreateMemberRequest{Name: "X"})

	suite.Require().Error(err)
	suite.Nil(member)
	suite.mockPlanSvc.AssertNotCalled(suite.T(), "CheckTenantLimit", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *MemberServiceTestSuite) TestUpdateMember_PartialUpdate() {
	ctx := context.Background()
	memberID := uuid.NewString()
	existing := &domain.Member{MemberID: memberID, TenantID: suite.tenantID, Name: "Rahim", Phone: "017", IsActive: true}
	newPhone := "01898765432"

	suite.mockRepo.On("FindMemberByID", ctx, suite.tenantID, memberID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateMember", ctx, mock.MatchedBy(func(m domain.Member) bool {
		return m.Phone == newPhone && m.Name == "Rahim"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateMember(ctx, suite.manager, memberID, dto.UpdateMemberRequest{Phone: &newPhone})

	suite.Require().NoError(err)
	suite.Equal(newPhone, updated.Phone)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MemberServiceTestSuite) TestDeactivateMember_AdminOnly() {
	ctx := context.Background()
	memberID := uuid.NewString()

	err := suite.service.DeactivateMember(ctx, suite.manager, memberID)
	suite.Require().Error(err)

	suite.mockRepo.On("DeactivateMember", ctx, suite.tenantID, memberID, suite.admin.UserID).Return(nil).Once()
	suite.mockPlanSvc.On("InvalidateUsage", ctx, suite.tenantID).Return().Once()
	err = suite.service.DeactivateMember(ctx, suite.admin, memberID)
	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestMemberServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MemberServiceTestSuite))
}

package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/somitihq/somiti-backend/internal/apperrors"
	"github.com/somitihq/somiti-backend/internal/core/domain"
	"github.com/somitihq/somiti-backend/internal/dto"
	"github.com/somitihq/somiti-backend/internal/utils"
)

type TenantHandlerTestSuite struct {
	suite.Suite
	services *mockServices
	userID   string
}

func (suite *TenantHandlerTestSuite) SetupTest() {
	suite.services = newMockServices()
	suite.userID = uuid.NewString()
}

func (suite *TenantHandlerTestSuite) do(method, path string, body any, authenticated bool) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, path, &buf)
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+generateTestToken(suite.userID))
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	newTestRouter(suite.services).ServeHTTP(w, req)
	return w
}

func (suite *TenantHandlerTestSuite) TestResolveTenant_Public() {
	tenant := &domain.Tenant{
		TenantID:           uuid.NewString(),
		Name:               "Green Valley Somiti",
		Subdomain:          "greenvalley",
		PlanCode:           "standard",
		SubscriptionStatus: domain.SubscriptionActive,
	}
	suite.services.Tenant.On("ResolveTenantBySubdomain", mock.Anything, "greenvalley").
		Return(tenant, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/tenants/resolve/greenvalley", nil, false)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ResolveTenantResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(tenant.TenantID, resp.TenantID)
	suite.Equal("greenvalley", resp.Subdomain)
}

func (suite *TenantHandlerTestSuite) TestResolveTenant_UnknownSubdomain() {
	suite.services.Tenant.On("ResolveTenantBySubdomain", mock.Anything, "nosuch").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/tenants/resolve/nosuch", nil, false)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TenantHandlerTestSuite) TestLogin_Success() {
	hash, err := utils.HashPassword("correct-horse")
	suite.NoError(err)
	user := &domain.User{
		UserID:       suite.userID,
		Email:        "admin@greenvalley.example",
		PasswordHash: hash,
	}
	suite.services.User.On("GetUserByEmail", mock.Anything, user.Email).
		Return(user, nil).Once()
	suite.services.Token.On("GenerateAccessToken", mock.Anything, user).
		Return("signed-token", nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login",
		dto.LoginRequest{Email: user.Email, Password: "correct-horse"}, false)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("signed-token", resp.Token)
}

func (suite *TenantHandlerTestSuite) TestLogin_WrongPassword() {
	hash, err := utils.HashPassword("correct-horse")
	suite.NoError(err)
	user := &domain.User{
		UserID:       suite.userID,
		Email:        "admin@greenvalley.example",
		PasswordHash: hash,
	}
	suite.services.User.On("GetUserByEmail", mock.Anything, user.Email).
		Return(user, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login",
		dto.LoginRequest{Email: user.Email, Password: "wrong"}, false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.services.Token.AssertNotCalled(suite.T(), "GenerateAccessToken")
}

func (suite *TenantHandlerTestSuite) TestLogin_UnknownEmailSameError() {
	suite.services.User.On("GetUserByEmail", mock.Anything, "nobody@example.com").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodPost, "/api/v1/auth/login",
		dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"}, false)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *TenantHandlerTestSuite) TestCreateTenant_SuperAdmin() {
	caller := &domain.User{UserID: suite.userID, Name: "Platform Op", IsSuperAdmin: true}
	suite.services.User.On("GetUserByID", mock.Anything, suite.userID).
		Return(caller, nil).Once()

	req := dto.CreateTenantRequest{
		Name:          "Green Valley Somiti",
		Subdomain:     "greenvalley",
		PlanCode:      "standard",
		AdminName:     "Rahim Uddin",
		AdminEmail:    "rahim@example.com",
		AdminPassword: "s3cret-pass",
	}
	created := &domain.Tenant{
		TenantID:           uuid.NewString(),
		Name:               req.Name,
		Subdomain:          req.Subdomain,
		PlanCode:           req.PlanCode,
		SubscriptionStatus: domain.SubscriptionTrial,
	}
	suite.services.Tenant.On("CreateTenant", mock.Anything,
		mock.MatchedBy(func(a domain.Actor) bool { return a.IsSuperAdmin && a.UserID == suite.userID }),
		req).Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/admin/tenants", req, true)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TenantResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.TenantID, resp.TenantID)
	suite.Equal("TRIAL", resp.SubscriptionStatus)
}

func (suite *TenantHandlerTestSuite) TestCreateTenant_InvalidSubdomainRejected() {
	caller := &domain.User{UserID: suite.userID, IsSuperAdmin: true}
	suite.services.User.On("GetUserByID", mock.Anything, suite.userID).
		Return(caller, nil).Once()

	req := dto.CreateTenantRequest{
		Name:          "Bad Subdomain Somiti",
		Subdomain:     "Has Spaces!",
		PlanCode:      "starter",
		AdminName:     "Rahim Uddin",
		AdminEmail:    "rahim@example.com",
		AdminPassword: "s3cret-pass",
	}
	w := suite.do(http.MethodPost, "/api/v1/admin/tenants", req, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.services.Tenant.AssertNotCalled(suite.T(), "CreateTenant")
}

func (suite *TenantHandlerTestSuite) TestCreateTenant_RegularUserForbidden() {
	caller := &domain.User{UserID: suite.userID, IsSuperAdmin: false}
	suite.services.User.On("GetUserByID", mock.Anything, suite.userID).
		Return(caller, nil).Once()

	req := dto.CreateTenantRequest{
		Name:          "Green Valley Somiti",
		Subdomain:     "greenvalley",
		PlanCode:      "standard",
		AdminName:     "Rahim Uddin",
		AdminEmail:    "rahim@example.com",
		AdminPassword: "s3cret-pass",
	}
	suite.services.Tenant.On("CreateTenant", mock.Anything,
		mock.MatchedBy(func(a domain.Actor) bool { return !a.IsSuperAdmin }),
		req).Return(nil, apperrors.ErrForbidden).Once()

	w := suite.do(http.MethodPost, "/api/v1/admin/tenants", req, true)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *TenantHandlerTestSuite) TestUpdateSettings_SubscriptionExpired() {
	tenantID := uuid.NewString()
	actor := domain.Actor{UserID: suite.userID, TenantID: tenantID, Role: domain.RoleAdmin}
	suite.services.Tenant.On("ResolveActor", mock.Anything, suite.userID, tenantID, "").
		Return(&actor, nil).Once()
	suite.services.Tenant.On("GetTenant", mock.Anything, tenantID).
		Return(&domain.Tenant{
			TenantID:           tenantID,
			SubscriptionStatus: domain.SubscriptionExpired,
		}, nil).Once()

	w := suite.do(http.MethodPut, fmt.Sprintf("/api/v1/tenants/%s/settings", tenantID),
		dto.UpdateTenantSettingsRequest{Address: "New office"}, true)

	suite.Equal(http.StatusPaymentRequired, w.Code)
	var body map[string]any
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("SUBSCRIPTION_EXPIRED", body["code"])
	suite.services.Tenant.AssertNotCalled(suite.T(), "UpdateSettings")
}

func TestTenantHandler(t *testing.T) {
	suite.Run(t, new(TenantHandlerTestSuite))
}

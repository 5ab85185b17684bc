package services

import (
	portsrepo "github.com/somitihq/somiti-backend/internal/core/ports/repositories"
	portssvc "github.com/somitihq/somiti-backend/internal/core/ports/services"
	"github.com/somitihq/somiti-backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	paylink portssvc.PaymentLinkProvider,
	mailer portssvc.Mailer,
) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Plan limit checks feed member and payment flows, so wire it first.
	container.Plan = NewPlanService(repos.TenantRepo, repos.MemberRepo, repos.PlanRepo, repos.TenantCache)

	container.Tenant = NewTenantService(repos.TenantRepo, repos.UserRepo, repos.PlanRepo, repos.TenantCache)
	container.User = NewUserService(repos.UserRepo)
	container.Member = NewMemberService(repos.MemberRepo, container.Plan)
	container.Notice = NewNoticeService(repos.NoticeRepo)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.MemberRepo, repos.TenantRepo, container.Plan, paylink, mailer)

	container.Token = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container
}

package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/somitihq/somiti-backend/cmd/docs"
	portssvc "github.com/somitihq/somiti-backend/internal/core/ports/services"
	"github.com/somitihq/somiti-backend/internal/middleware"
	"github.com/somitihq/somiti-backend/internal/platform/config"
)

// subdomainPattern matches DNS-label style subdomains: lowercase alphanumeric
// with interior hyphens, 3 to 63 characters.
var subdomainPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]{1,61}[a-z0-9])$`)

// RegisterRoutes sets up all application routes, injecting dependencies using
// interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerValidators()

	registerHomeRoutes(r)

	// Public routes: auth, Google sign-in and subdomain resolution.
	registerAuthRoutes(r, services, loginRateLimiter())
	registerGoogleOAuthRoutes(r, services)
	registerPublicTenantRoutes(r, services)

	setupAPIV1Routes(r, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the specific
// entity route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerSuperAdminRoutes(v1, services)
	registerPlanCatalogRoutes(v1, services.Plan)

	// Everything under /tenants/:tenant_id runs through membership resolution
	// and the subscription gate.
	tenant := v1.Group("/tenants/:tenant_id",
		middleware.TenantMiddleware(services.Tenant),
		middleware.SubscriptionGate(services.Tenant),
	)
	registerTenantRoutes(tenant, services)
	registerMemberRoutes(tenant, services.Member)
	registerNoticeRoutes(tenant, services.Notice)
	registerPaymentRoutes(tenant, services.Payment)
	registerPlanRoutes(tenant, services.Plan)
}

// loginRateLimiter builds the per-IP limiter applied to the login route.
func loginRateLimiter() gin.HandlerFunc {
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	return middleware.RateLimit(limiter.New(store, rate))
}

// registerValidators wires custom binding validators into Gin's validator
// engine.
func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("subdomain", func(fl validator.FieldLevel) bool {
			return subdomainPattern.MatchString(fl.Field().String())
		})
	}
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

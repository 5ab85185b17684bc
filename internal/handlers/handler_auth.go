package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/somitihq/somiti-backend/internal/apperrors"
	portssvc "github.com/somitihq/somiti-backend/internal/core/ports/services"
	"github.com/somitihq/somiti-backend/internal/dto"
	"github.com/somitihq/somiti-backend/internal/middleware"
	"github.com/somitihq/somiti-backend/internal/utils"
)

// authHandler handles login and registration.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
}

func newAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{userService: us, tokenService: ts}
}

// registerAuthRoutes registers the public authentication routes. The login
// route carries the rate limiter to slow down credential stuffing.
func registerAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer, loginRateLimit gin.HandlerFunc) {
	h := newAuthHandler(services.User, services.Token)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", loginRateLimit, h.login)
		auth.POST("/register", h.register)
	}
}

// login godoc
// @Summary Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} apperrors.AppError
// @Failure 401 {object} apperrors.AppError
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewValidationError("Invalid request format: "+err.Error()))
		return
	}

	user, err := h.userService.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(c, apperrors.NewUnauthorizedError("Invalid email or password"))
			return
		}
		respondError(c, err)
		return
	}

	if user.PasswordHash == "" || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		logger.Warn("Failed login attempt", slog.String("email", req.Email))
		respondError(c, apperrors.NewUnauthorizedError("Invalid email or password"))
		return
	}

	token, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}

// register godoc
// @Summary Register a user account
// @Tags auth
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} apperrors.AppError
// @Failure 409 {object} apperrors.AppError
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewValidationError("Invalid request format: "+err.Error()))
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

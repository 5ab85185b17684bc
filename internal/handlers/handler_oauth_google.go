package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/somitihq/somiti-backend/internal/apperrors"
	"github.com/somitihq/somiti-backend/internal/core/domain"
	portssvc "github.com/somitihq/somiti-backend/internal/core/ports/services"
	"github.com/somitihq/somiti-backend/internal/dto"
)

// googleOAuthHandler handles the Google sign-in flow used by the hosted
// console.
type googleOAuthHandler struct {
	oauthService portssvc.GoogleOAuthSvcFacade
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
}

func newGoogleOAuthHandler(os portssvc.GoogleOAuthSvcFacade, us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade) *googleOAuthHandler {
	return &googleOAuthHandler{oauthService: os, userService: us, tokenService: ts}
}

func registerGoogleOAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	h := newGoogleOAuthHandler(services.GoogleOAuth, services.User, services.Token)
	r.POST("/api/v1/auth/google", h.signIn)
}

type googleSignInRequest struct {
	IDToken string `json:"idToken"`
	Code    string `json:"code"`
}

// signIn godoc
// @Summary Sign in with Google
// @Description Accepts either a Google ID token or an authorization code and
// @Description returns an application access token, creating the account on
// @Description first sign-in.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body googleSignInRequest true "Google credential"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} apperrors.AppError
// @Failure 401 {object} apperrors.AppError
// @Router /auth/google [post]
func (h *googleOAuthHandler) signIn(c *gin.Context) {
	var req googleSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewValidationError("Invalid request format: "+err.Error()))
		return
	}

	idToken := req.IDToken
	if idToken == "" {
		if req.Code == "" {
			respondError(c, apperrors.NewValidationError("either idToken or code is required"))
			return
		}
		token, err := h.oauthService.ExchangeCodeForToken(c.Request.Context(), req.Code)
		if err != nil {
			respondError(c, apperrors.NewUnauthorizedError("Google sign-in failed"))
			return
		}
		extracted, ok := token.Extra("id_token").(string)
		if !ok || extracted == "" {
			respondError(c, apperrors.NewUnauthorizedError("Google did not return an ID token"))
			return
		}
		idToken = extracted
	}

	info, err := h.oauthService.ValidateGoogleIDToken(c.Request.Context(), idToken)
	if err != nil {
		respondError(c, apperrors.NewUnauthorizedError("Invalid Google ID token"))
		return
	}
	if info.Email == "" || !info.VerifiedEmail {
		respondError(c, apperrors.NewUnauthorizedError("Google account email is not verified"))
		return
	}

	user, err := h.userService.CreateOAuthUser(c.Request.Context(), info.Email, info.Email, domain.ProviderGoogle, info.UserId)
	if err != nil {
		respondError(c, err)
		return
	}

	accessToken, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{Token: accessToken})
}

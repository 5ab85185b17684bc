package services

import (
	"context"

	"golang.org/x/oauth2"
	googleoauth2 "google.golang.org/api/oauth2/v2"

	"github.com/somitihq/somiti-backend/internal/core/domain"
)

// TokenSvcFacade issues the application's access tokens.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, error)
}

// GoogleOAuthSvcFacade wraps the Google OAuth code-exchange flow used by the
// hosted console sign-in.
type GoogleOAuthSvcFacade interface {
	// ExchangeCodeForToken exchanges a frontend-supplied authorization code
	// for Google tokens.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// ValidateGoogleIDToken verifies the ID token with Google and returns its
	// token info payload.
	ValidateGoogleIDToken(ctx context.Context, idToken string) (*googleoauth2.Tokeninfo, error)
}

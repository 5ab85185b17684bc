package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	googleoauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	portssvc "github.com/somitihq/somiti-backend/internal/core/ports/services"
	"github.com/somitihq/somiti-backend/internal/platform/config"
)

// googleOAuthService implements the GoogleOAuthSvcFacade used by console
// sign-in.
type googleOAuthService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthService creates a new instance of googleOAuthService.
func NewGoogleOAuthService(cfg *config.Config) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
func (s *googleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}
	return token, nil
}

// ValidateGoogleIDToken verifies the ID token against Google's tokeninfo
// endpoint and checks the audience.
func (s *googleOAuthService) ValidateGoogleIDToken(ctx context.Context, idToken string) (*googleoauth2.Tokeninfo, error) {
	if s.cfg.GoogleClientID == "" {
		return nil, errors.New("google client ID is not configured in the application")
	}

	oauth2Service, err := googleoauth2.NewService(ctx, option.WithoutAuthentication())
	if err != nil {
		return nil, fmt.Errorf("failed to create google oauth2 service: %w", err)
	}

	info, err := oauth2Service.Tokeninfo().IdToken(idToken).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}
	if info.Audience != s.cfg.GoogleClientID {
		return nil, errors.New("google ID token audience mismatch")
	}
	return info, nil
}

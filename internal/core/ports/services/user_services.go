package services

import (
	"context"

	"github.com/somitihq/somiti-backend/internal/core/domain"
	"github.com/somitihq/somiti-backend/internal/dto"
)

// UserSvcFacade covers platform user accounts.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// CreateOAuthUser finds or creates the account backing an external
	// identity (Google sign-in).
	CreateOAuthUser(ctx context.Context, name, email string, provider domain.AuthProvider, providerUserID string) (*domain.User, error)
}

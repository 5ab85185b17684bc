package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/somitihq/somiti-backend/internal/apperrors"
	"github.com/somitihq/somiti-backend/internal/core/domain"
	"github.com/somitihq/somiti-backend/internal/core/ports/repositories"
	portssvc "github.com/somitihq/somiti-backend/internal/core/ports/services"
	"github.com/somitihq/somiti-backend/internal/dto"
	"github.com/somitihq/somiti-backend/internal/utils"
)

type userService struct {
	BaseService
	userRepo repositories.UserRepositoryFacade
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo repositories.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUserID := uuid.NewString()
	now := time.Now()
	user := domain.User{
		UserID:       newUserID,
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		AuthProvider: domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: newUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("a user with this email already exists")
		}
		s.LogError(ctx, err, "failed to save user", "email", req.Email)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.FindUserByEmail(ctx, email)
}

// CreateOAuthUser finds the user backing an external identity, creating the
// account on first sign-in. An existing local account with the same email is
// reused rather than duplicated.
func (s *userService) CreateOAuthUser(ctx context.Context, name, email string, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByProviderID(ctx, provider, providerUserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up oauth user: %w", err)
	}

	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	newUserID := uuid.NewString()
	now := time.Now()
	newUser := domain.User{
		UserID:         newUserID,
		Name:           name,
		Email:          email,
		AuthProvider:   provider,
		ProviderUserID: providerUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: newUserID,
		},
	}
	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		s.LogError(ctx, err, "failed to save oauth user", "email", email)
		return nil, fmt.Errorf("failed to create oauth user: %w", err)
	}
	s.LogInfo(ctx, "created user from oauth sign-in", "userID", newUserID, "provider", string(provider))
	return &newUser, nil
}

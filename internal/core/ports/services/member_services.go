package services

import (
	"context"

	"github.com/somitihq/somiti-backend/internal/core/domain"
	"github.com/somitihq/somiti-backend/internal/dto"
)

// MemberSvcFacade covers the tenant roster.
type MemberSvcFacade interface {
	// CreateMember adds a roster member. Manager+. Gated by the add_member
	// plan limit.
	CreateMember(ctx context.Context, actor domain.Actor, req dto.CreateMemberRequest) (*domain.Member, error)

	GetMember(ctx context.Context, actor domain.Actor, memberID string) (*domain.Member, error)
	ListMembers(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Member, error)

	// UpdateMember applies a partial roster update. Manager+.
	UpdateMember(ctx context.Context, actor domain.Actor, memberID string, req dto.UpdateMemberRequest) (*domain.Member, error)

	// DeactivateMember removes a member from the active roster. Admin only.
	DeactivateMember(ctx context.Context, actor domain.Actor, memberID string) error
}

package repositories

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/somitihq/somiti-backend/internal/core/domain"
)

// MemberReader defines read operations for roster members.
type MemberReader interface {
	FindMemberByID(ctx context.Context, tenantID, memberID string) (*domain.Member, error)
	ListMembers(ctx context.Context, tenantID string, limit, offset int) ([]domain.Member, error)

	// CountActiveMembers returns the tenant's active roster size, the
	// member_count input to plan limit checks.
	CountActiveMembers(ctx context.Context, tenantID string) (int, error)
}

// MemberWriter defines write operations for roster members.
type MemberWriter interface {
	SaveMember(ctx context.Context, member domain.Member) error
	UpdateMember(ctx context.Context, member domain.Member) error
	DeactivateMember(ctx context.Context, tenantID, memberID, updatedBy string) error

	// AdjustAdvanceBalance applies a credit (or debit, if negative) to the
	// member's advance balance.
	AdjustAdvanceBalance(ctx context.Context, tenantID, memberID string, delta decimal.Decimal, updatedBy string) error
}

// MemberRepositoryFacade combines all member-related repository interfaces.
type MemberRepositoryFacade interface {
	MemberReader
	MemberWriter
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/somitihq/somiti-backend/internal/core/domain"
)

// --- Member DTOs ---

// CreateMemberRequest adds a member to the tenant roster.
type CreateMemberRequest struct {
	Name   string `json:"name" binding:"required"`
	NameBN string `json:"nameBN"`
	Phone  string `json:"phone"`
	Email  string `json:"email" binding:"omitempty,email"`
}

// UpdateMemberRequest updates roster info. Nil fields are left unchanged.
type UpdateMemberRequest struct {
	Name   *string `json:"name"`
	NameBN *string `json:"nameBN"`
	Phone  *string `json:"phone"`
	Email  *string `json:"email" binding:"omitempty,email"`
}

// MemberResponse defines data returned for a roster member.
type MemberResponse struct {
	MemberID       string          `json:"memberID"`
	TenantID       string          `json:"tenantID"`
	Name           string          `json:"name"`
	NameBN         string          `json:"nameBN,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	Email          string          `json:"email,omitempty"`
	AdvanceBalance decimal.Decimal `json:"advanceBalance"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToMemberResponse converts domain.Member to DTO.
func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		MemberID:       m.MemberID,
		TenantID:       m.TenantID,
		Name:           m.Name,
		NameBN:         m.NameBN,
		Phone:          m.Phone,
		Email:          m.Email,
		AdvanceBalance: m.AdvanceBalance,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
	}
}

// ListMembersResponse wraps a list of members.
type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
}

// ToListMembersResponse converts a slice of domain.Member to DTO.
func ToListMembersResponse(ms []domain.Member) ListMembersResponse {
	list := make([]MemberResponse, len(ms))
	for i, m := range ms {
		list[i] = ToMemberResponse(&m)
	}
	return ListMembersResponse{Members: list}
}

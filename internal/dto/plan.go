package dto

import (
	"github.com/shopspring/decimal"
	"github.com/somitihq/somiti-backend/internal/core/domain"
)

// --- Plan DTOs ---

// PlanResponse defines data returned for a subscription plan.
type PlanResponse struct {
	Code                string          `json:"code"`
	Name                string          `json:"name"`
	NameBN              string          `json:"nameBN,omitempty"`
	MaxMembers          int             `json:"maxMembers"`
	MaxMembersUnlimited bool            `json:"maxMembersUnlimited"`
	SMSQuota            int             `json:"smsQuota"`
	OnlinePayment       bool            `json:"onlinePayment"`
	AdvancedReports     bool            `json:"advancedReports"`
	MonthlyPrice        decimal.Decimal `json:"monthlyPrice"`
}

// TenantPlanInfoResponse is the tenant's plan joined with usage counters.
type TenantPlanInfoResponse struct {
	TenantID    string       `json:"tenantID"`
	Plan        PlanResponse `json:"plan"`
	MemberCount int          `json:"memberCount"`
	SMSUsed     int          `json:"smsUsed"`
}

// ToPlanResponse converts domain.Plan to DTO.
func ToPlanResponse(p *domain.Plan) PlanResponse {
	return PlanResponse{
		Code:                string(p.Code),
		Name:                p.Name,
		NameBN:              p.NameBN,
		MaxMembers:          p.MaxMembers,
		MaxMembersUnlimited: p.MaxMembersUnlimited,
		SMSQuota:            p.SMSQuota,
		OnlinePayment:       p.OnlinePayment,
		AdvancedReports:     p.AdvancedReports,
		MonthlyPrice:        p.MonthlyPrice,
	}
}

// ToTenantPlanInfoResponse converts domain.TenantPlanInfo to DTO.
func ToTenantPlanInfoResponse(info *domain.TenantPlanInfo) TenantPlanInfoResponse {
	return TenantPlanInfoResponse{
		TenantID:    info.TenantID,
		Plan:        ToPlanResponse(&info.Plan),
		MemberCount: info.MemberCount,
		SMSUsed:     info.SMSUsed,
	}
}

package domain

import "github.com/shopspring/decimal"

// PlanCode identifies a subscription tier.
type PlanCode string

const (
	PlanStarter  PlanCode = "starter"
	PlanStandard PlanCode = "standard"
	PlanPremium  PlanCode = "premium"
	PlanCustom   PlanCode = "custom"
)

// LimitAction is a tenant action checked against plan quotas.
type LimitAction string

const (
	ActionAddMember       LimitAction = "add_member"
	ActionSendSMS         LimitAction = "send_sms"
	ActionOnlinePayment   LimitAction = "online_payment"
	ActionAdvancedReports LimitAction = "advanced_reports"
)

// Plan is a subscription tier with its quota limits and feature flags.
// Plans are seeded by migration and read-only at runtime.
type Plan struct {
	Code                PlanCode        `json:"code"` // Primary Key
	Name                string          `json:"name"`
	NameBN              string          `json:"nameBN"`
	MaxMembers          int             `json:"maxMembers"`
	MaxMembersUnlimited bool            `json:"maxMembersUnlimited"`
	SMSQuota            int             `json:"smsQuota"`
	OnlinePayment       bool            `json:"onlinePayment"`
	AdvancedReports     bool            `json:"advancedReports"`
	MonthlyPrice        decimal.Decimal `json:"monthlyPrice"`
}

// TenantPlanInfo is the derived view of a tenant's plan joined with its
// current usage counters. It is computed server-side; clients only interpret
// the result of limit checks.
type TenantPlanInfo struct {
	TenantID    string `json:"tenantID"`
	Plan        Plan   `json:"plan"`
	MemberCount int    `json:"memberCount"`
	SMSUsed     int    `json:"smsUsed"`
}

// LimitCheck is the verdict for one LimitAction against a tenant's plan.
type LimitCheck struct {
	Allowed   bool        `json:"allowed"`
	LimitType LimitAction `json:"limit_type"`
	Current   int         `json:"current"`
	Limit     int         `json:"limit"`
	Message   string      `json:"message"`
	MessageBN string      `json:"message_bn"`
}

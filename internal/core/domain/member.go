package domain

import "github.com/shopspring/decimal"

// Member is a roster entry of a somiti: the person the association collects
// dues from. Members need not have a platform login; linking a member to a
// User happens through TenantMembership separately.
type Member struct {
	MemberID       string          `json:"memberID"` // Primary Key (UUID)
	TenantID       string          `json:"tenantID"`
	Name           string          `json:"name"`
	NameBN         string          `json:"nameBN"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email"`
	AdvanceBalance decimal.Decimal `json:"advanceBalance"` // Overpayment credit against future dues
	IsActive       bool            `json:"isActive"`
	AuditFields
}

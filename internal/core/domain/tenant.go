package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubscriptionStatus is the billing state of a tenant.
type SubscriptionStatus string

const (
	SubscriptionTrial   SubscriptionStatus = "TRIAL"
	SubscriptionActive  SubscriptionStatus = "ACTIVE"
	SubscriptionExpired SubscriptionStatus = "EXPIRED"
)

// TenantSettings holds tenant-editable organization info. YearlyDueCap, when
// positive, caps the total a member may request in payment dues per calendar
// year.
type TenantSettings struct {
	Address      string          `json:"address"`
	ContactPhone string          `json:"contactPhone"`
	ContactEmail string          `json:"contactEmail"`
	YearlyDueCap decimal.Decimal `json:"yearlyDueCap"`
}

// Tenant represents one customer organization (a somiti). All business data
// is scoped by TenantID; cross-tenant access is denied except for super
// admins.
type Tenant struct {
	TenantID              string             `json:"tenantID"` // Primary Key (UUID)
	Name                  string             `json:"name"`
	NameBN                string             `json:"nameBN"`
	Subdomain             string             `json:"subdomain"` // Unique, lowercase
	PlanCode              string             `json:"planCode"`
	SubscriptionStatus    SubscriptionStatus `json:"subscriptionStatus"`
	SubscriptionExpiresAt *time.Time         `json:"subscriptionExpiresAt,omitempty"`
	SMSUsed               int                `json:"smsUsed"`
	Settings              TenantSettings     `json:"settings"`
	AuditFields
}

// WritesAllowed reports whether the tenant's subscription currently permits
// mutating operations.
func (t *Tenant) WritesAllowed() bool {
	return t.SubscriptionStatus != SubscriptionExpired
}

// TenantRole defines the possible roles a user can have within a tenant.
type TenantRole string

const (
	RoleAdmin   TenantRole = "ADMIN"
	RoleManager TenantRole = "MANAGER"
	RoleMember  TenantRole = "MEMBER"
)

// TenantMembership represents the membership of a User in a Tenant.
type TenantMembership struct {
	UserID   string     `json:"userID"`   // FK -> users.user_id
	UserName string     `json:"userName"` // Name snapshot for display
	TenantID string     `json:"tenantID"` // FK -> tenants.tenant_id
	Role     TenantRole `json:"role"`
	JoinedAt time.Time  `json:"joinedAt"`
}

// HasAtLeast reports whether role meets or exceeds required in the
// admin > manager > member hierarchy.
func (r TenantRole) HasAtLeast(required TenantRole) bool {
	rank := map[TenantRole]int{RoleMember: 1, RoleManager: 2, RoleAdmin: 3}
	return rank[r] >= rank[required]
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/somitihq/somiti-backend/internal/core/domain"
)

// --- Tenant DTOs ---

// CreateTenantRequest provisions a new tenant with its first admin
// (super_admin console only).
type CreateTenantRequest struct {
	Name          string `json:"name" binding:"required"`
	NameBN        string `json:"nameBN"`
	Subdomain     string `json:"subdomain" binding:"required,subdomain"`
	PlanCode      string `json:"planCode" binding:"required,oneof=starter standard premium custom"`
	AdminName     string `json:"adminName" binding:"required"`
	AdminEmail    string `json:"adminEmail" binding:"required,email"`
	AdminPassword string `json:"adminPassword" binding:"required,min=8"`
}

// AddTenantAdminRequest provisions an additional admin for a tenant.
type AddTenantAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// UpdateTenantSettingsRequest updates tenant organization info.
type UpdateTenantSettingsRequest struct {
	Address      string          `json:"address"`
	ContactPhone string          `json:"contactPhone"`
	ContactEmail string          `json:"contactEmail" binding:"omitempty,email"`
	YearlyDueCap decimal.Decimal `json:"yearlyDueCap"`
}

// TenantResponse defines data returned for a tenant.
type TenantResponse struct {
	TenantID              string     `json:"tenantID"`
	Name                  string     `json:"name"`
	NameBN                string     `json:"nameBN,omitempty"`
	Subdomain             string     `json:"subdomain"`
	PlanCode              string     `json:"planCode"`
	SubscriptionStatus    string     `json:"subscriptionStatus"`
	SubscriptionExpiresAt *time.Time `json:"subscriptionExpiresAt,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
}

// ToTenantResponse converts domain.Tenant to DTO.
func ToTenantResponse(t *domain.Tenant) TenantResponse {
	return TenantResponse{
		TenantID:              t.TenantID,
		Name:                  t.Name,
		NameBN:                t.NameBN,
		Subdomain:             t.Subdomain,
		PlanCode:              t.PlanCode,
		SubscriptionStatus:    string(t.SubscriptionStatus),
		SubscriptionExpiresAt: t.SubscriptionExpiresAt,
		CreatedAt:             t.CreatedAt,
	}
}

// ResolveTenantResponse is the public subdomain resolution payload.
type ResolveTenantResponse struct {
	TenantID           string `json:"tenantID"`
	Name               string `json:"name"`
	NameBN             string `json:"nameBN,omitempty"`
	Subdomain          string `json:"subdomain"`
	PlanCode           string `json:"planCode"`
	SubscriptionStatus string `json:"subscriptionStatus"`
}

// ToResolveTenantResponse converts domain.Tenant to the public DTO. Settings
// and usage counters are deliberately excluded from the public payload.
func ToResolveTenantResponse(t *domain.Tenant) ResolveTenantResponse {
	return ResolveTenantResponse{
		TenantID:           t.TenantID,
		Name:               t.Name,
		NameBN:             t.NameBN,
		Subdomain:          t.Subdomain,
		PlanCode:           t.PlanCode,
		SubscriptionStatus: string(t.SubscriptionStatus),
	}
}

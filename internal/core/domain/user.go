package domain

import "time"

// AuthProvider identifies how a user authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User represents a person who can sign in to the platform. Tenant-level
// permissions come from TenantMembership rows; IsSuperAdmin grants
// cross-tenant access to the hosted console.
type User struct {
	UserID         string       `json:"userID"` // Primary Key (UUID)
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	PasswordHash   string       `json:"-"`
	AuthProvider   AuthProvider `json:"authProvider"`
	ProviderUserID string       `json:"-"` // External subject for OAuth users
	IsSuperAdmin   bool         `json:"isSuperAdmin"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Soft delete
}

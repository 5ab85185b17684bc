package domain

// Actor is the request-scoped capability resolved by the authorization
// middleware: who is calling, which tenant they act on, and with what role.
// Super admins acting across tenants get RoleAdmin within the acting tenant.
type Actor struct {
	UserID       string
	UserName     string
	TenantID     string
	Role         TenantRole
	IsSuperAdmin bool
}

// CanManage reports whether the actor holds at least the required role in
// the tenant. Super admins always pass.
func (a Actor) CanManage(required TenantRole) bool {
	if a.IsSuperAdmin {
		return true
	}
	return a.Role.HasAtLeast(required)
}

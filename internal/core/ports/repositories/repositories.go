package repositories

// RepositoryProvider bundles all repository facades for service container
// construction.
type RepositoryProvider struct {
	TenantRepo  TenantRepositoryWithTx
	UserRepo    UserRepositoryFacade
	MemberRepo  MemberRepositoryFacade
	NoticeRepo  NoticeRepositoryFacade
	PaymentRepo PaymentRepositoryFacade
	PlanRepo    PlanReader
	TenantCache TenantCache
}

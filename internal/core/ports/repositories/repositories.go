package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo      UserRepositoryFacade
	HeaderRepo    HeaderRepositoryFacade
	ClientRepo    ClientRepositoryFacade
	MastersRepo   MastersRepositoryFacade
	BillRepo      BillRepositoryFacade
	PaymentRepo   PaymentRepositoryFacade
	ReportingRepo ReportingRepository
}

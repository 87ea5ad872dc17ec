package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	InvoiceRepo     InvoiceRepositoryFacade
	ContactRepo     ContactRepositoryFacade
	ApplicationRepo ApplicationRepositoryFacade
	BlogRepo        BlogRepositoryFacade
	ResumeFiles     FileStore
	BlogImageFiles  FileStore
	Auth            AuthGateway
}

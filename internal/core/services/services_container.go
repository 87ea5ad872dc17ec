package services

import (
	"github.com/Habib7442/apromax-admin/internal/core/domain"
	portsrepo "github.com/Habib7442/apromax-admin/internal/core/ports/repositories"
	portssvc "github.com/Habib7442/apromax-admin/internal/core/ports/services"
	"github.com/Habib7442/apromax-admin/internal/export"
	"github.com/Habib7442/apromax-admin/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	renderer := export.NewInvoicePDF(domain.DefaultCompanyInfo())

	return &portssvc.ServiceContainer{
		Invoice:     NewInvoiceService(repos.InvoiceRepo, renderer),
		Contact:     NewContactService(repos.ContactRepo),
		Application: NewApplicationService(repos.ApplicationRepo, repos.ResumeFiles),
		Blog:        NewBlogService(repos.BlogRepo, repos.BlogImageFiles),
		Auth:        NewAuthService(cfg, repos.Auth),
		Dashboard:   NewDashboardService(repos.ContactRepo, repos.ApplicationRepo, repos.BlogRepo, repos.InvoiceRepo),
	}
}

// Compile-time interface checks.
var (
	_ portssvc.InvoiceSvcFacade     = (*invoiceService)(nil)
	_ portssvc.ContactSvcFacade     = (*contactService)(nil)
	_ portssvc.ApplicationSvcFacade = (*applicationService)(nil)
	_ portssvc.BlogSvcFacade        = (*blogService)(nil)
	_ portssvc.AuthSvcFacade        = (*authService)(nil)
	_ portssvc.DashboardSvcFacade   = (*dashboardService)(nil)
)

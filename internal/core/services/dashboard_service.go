package services

import (
	"context"
	"fmt"

	portsrepo "github.com/Habib7442/apromax-admin/internal/core/ports/repositories"
	portssvc "github.com/Habib7442/apromax-admin/internal/core/ports/services"
	"github.com/Habib7442/apromax-admin/internal/dto"
)

type dashboardService struct {
	contacts     portsrepo.ContactReader
	applications portsrepo.ApplicationReader
	blogs        portsrepo.BlogReader
	invoices     portsrepo.InvoiceReader
}

// NewDashboardService creates the dashboard aggregation service.
func NewDashboardService(
	contacts portsrepo.ContactReader,
	applications portsrepo.ApplicationReader,
	blogs portsrepo.BlogReader,
	invoices portsrepo.InvoiceReader,
) portssvc.DashboardSvcFacade {
	return &dashboardService{
		contacts:     contacts,
		applications: applications,
		blogs:        blogs,
		invoices:     invoices,
	}
}

func (s *dashboardService) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	contacts, err := s.contacts.CountContacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count contacts: %w", err)
	}
	applications, err := s.applications.CountApplications(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}
	blogs, err := s.blogs.CountBlogPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count blog posts: %w", err)
	}
	invoices, err := s.invoices.CountInvoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count invoices: %w", err)
	}

	return &dto.DashboardStatsResponse{
		Contacts:     contacts,
		Applications: applications,
		Blogs:        blogs,
		Invoices:     invoices,
	}, nil
}

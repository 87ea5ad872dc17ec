package services

import (
	"context"

	"github.com/Habib7442/apromax-admin/internal/dto"
)

// DashboardSvcFacade defines the aggregate reads behind the dashboard.
type DashboardSvcFacade interface {
	// GetStats returns the document counts for the stats cards.
	GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
}

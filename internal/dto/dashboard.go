package dto

// DashboardStatsResponse holds the document counts behind the dashboard's
// stats cards.
type DashboardStatsResponse struct {
	Contacts     int64 `json:"contacts"`
	Applications int64 `json:"applications"`
	Blogs        int64 `json:"blogs"`
	Invoices     int64 `json:"invoices"`
}

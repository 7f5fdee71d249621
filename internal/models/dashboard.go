package models

// DashboardStats aggregates the counters shown on the admin dashboard.
type DashboardStats struct {
	TotalUsers          int64 `json:"totalUsers"`
	TotalHospitals      int64 `json:"totalHospitals"`
	TotalOrganisations  int64 `json:"totalOrganisations"`
	TotalDonors         int64 `json:"totalDonors"`
	TotalEvents         int64 `json:"totalEvents"`
	TotalBloodRequests  int64 `json:"totalBloodRequests"`
	ActiveBloodRequests int64 `json:"activeBloodRequests"`
	RecentUsers         int64 `json:"recentUsers"`
}

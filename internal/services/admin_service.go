package services

import (
	"context"
	"time"

	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/bloodlink/bloodlink-backend/internal/repositories"
)

// AdminService aggregates dashboard statistics
type AdminService struct {
	userRepo    repositories.UserRepository
	requestRepo repositories.BloodRequestRepository
	eventRepo   repositories.EventRepository
}

// NewAdminService creates a new AdminService
func NewAdminService(
	userRepo repositories.UserRepository,
	requestRepo repositories.BloodRequestRepository,
	eventRepo repositories.EventRepository,
) *AdminService {
	return &AdminService{
		userRepo:    userRepo,
		requestRepo: requestRepo,
		eventRepo:   eventRepo,
	}
}

// GetDashboardStats collects the counters for the admin dashboard.
// Active requests are those pending or urgent; recent users are accounts
// created in the last 30 days.
func (s *AdminService) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	var err error
	if stats.TotalUsers, err = s.userRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalHospitals, err = s.userRepo.CountByRole(ctx, models.RoleHospital); err != nil {
		return nil, err
	}
	if stats.TotalOrganisations, err = s.userRepo.CountByRole(ctx, models.RoleOrganisation); err != nil {
		return nil, err
	}
	if stats.TotalDonors, err = s.userRepo.CountByRole(ctx, models.RoleUser); err != nil {
		return nil, err
	}
	if stats.TotalEvents, err = s.eventRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalBloodRequests, err = s.requestRepo.Count(ctx); err != nil {
		return nil, err
	}
	active := []models.RequestStatus{models.RequestPending, models.RequestUrgent}
	if stats.ActiveBloodRequests, err = s.requestRepo.CountByStatuses(ctx, active); err != nil {
		return nil, err
	}
	thirtyDaysAgo := time.Now().AddDate(0, 0, -30)
	if stats.RecentUsers, err = s.userRepo.CountCreatedSince(ctx, thirtyDaysAgo); err != nil {
		return nil, err
	}

	return stats, nil
}

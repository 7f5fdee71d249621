package services

import (
	"context"
	"testing"
	"time"

	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDashboardStats(t *testing.T) {
	userRepo := newFakeUserRepo()
	requestRepo := newFakeRequestRepo()
	eventRepo := newFakeEventRepo()

	old := time.Now().AddDate(0, 0, -60)
	userRepo.add(&models.User{Role: models.RoleAdmin, CreatedAt: old})
	userRepo.add(&models.User{Role: models.RoleHospital, CreatedAt: old})
	userRepo.add(&models.User{Role: models.RoleOrganisation, CreatedAt: time.Now()})
	userRepo.add(&models.User{Role: models.RoleUser, CreatedAt: time.Now()})
	userRepo.add(&models.User{Role: models.RoleUser, CreatedAt: time.Now()})

	requestRepo.add(&models.BloodRequest{Status: models.RequestPending})
	requestRepo.add(&models.BloodRequest{Status: models.RequestUrgent})
	requestRepo.add(&models.BloodRequest{Status: models.RequestFulfilled})
	requestRepo.add(&models.BloodRequest{Status: models.RequestPending, IsDeleted: true})

	eventRepo.add(&models.Event{Title: "Drive"})

	s := NewAdminService(userRepo, requestRepo, eventRepo)
	stats, err := s.GetDashboardStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(5), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.TotalHospitals)
	assert.Equal(t, int64(1), stats.TotalOrganisations)
	assert.Equal(t, int64(2), stats.TotalDonors)
	assert.Equal(t, int64(1), stats.TotalEvents)
	assert.Equal(t, int64(4), stats.TotalBloodRequests)
	assert.Equal(t, int64(2), stats.ActiveBloodRequests)
	assert.Equal(t, int64(3), stats.RecentUsers)
}

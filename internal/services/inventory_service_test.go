package services

import (
	"context"
	"testing"

	"github.com/bloodlink/bloodlink-backend/internal/apperrors"
	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func intPtr(v int) *int { return &v }

func TestUpdateInventoryRoleCheck(t *testing.T) {
	s := NewInventoryService(newFakeInventoryRepo())

	_, err := s.UpdateInventory(context.Background(), primitive.NewObjectID(), models.RoleUser, &models.UpdateInventoryRequest{})
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
}

func TestUpdateInventoryPartialUpdate(t *testing.T) {
	s := NewInventoryService(newFakeInventoryRepo())
	userID := primitive.NewObjectID()

	inventory, err := s.UpdateInventory(context.Background(), userID, models.RoleHospital, &models.UpdateInventoryRequest{
		OPositive: intPtr(12),
		ANegative: intPtr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, 12, inventory.OPositive)
	assert.Equal(t, 3, inventory.ANegative)
	assert.Zero(t, inventory.BPositive)

	// A second update only touches the fields it carries.
	inventory, err = s.UpdateInventory(context.Background(), userID, models.RoleHospital, &models.UpdateInventoryRequest{
		BPositive: intPtr(7),
	})
	require.NoError(t, err)
	assert.Equal(t, 12, inventory.OPositive)
	assert.Equal(t, 3, inventory.ANegative)
	assert.Equal(t, 7, inventory.BPositive)

	// Negative counts are ignored.
	inventory, err = s.UpdateInventory(context.Background(), userID, models.RoleOrganisation, &models.UpdateInventoryRequest{
		OPositive: intPtr(-5),
	})
	require.NoError(t, err)
	assert.Equal(t, 12, inventory.OPositive)
}

func TestGetInventoryZeroValuedWhenAbsent(t *testing.T) {
	s := NewInventoryService(newFakeInventoryRepo())
	userID := primitive.NewObjectID()

	inventory, err := s.GetInventory(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, userID, inventory.UserID)
	assert.Zero(t, inventory.OPositive)
}

func TestGetAllInventoriesAdminOnly(t *testing.T) {
	repo := newFakeInventoryRepo()
	s := NewInventoryService(repo)

	_, err := s.GetAllInventories(context.Background(), models.RoleHospital)
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))

	_, err = s.UpdateInventory(context.Background(), primitive.NewObjectID(), models.RoleHospital, &models.UpdateInventoryRequest{OPositive: intPtr(1)})
	require.NoError(t, err)

	inventories, err := s.GetAllInventories(context.Background(), models.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, inventories, 1)
}

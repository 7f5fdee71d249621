package services

import (
	"context"
	"errors"
	"time"

	"github.com/bloodlink/bloodlink-backend/internal/apperrors"
	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/bloodlink/bloodlink-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InventoryService handles blood inventory tracking for hospitals and
// organisations
type InventoryService struct {
	inventoryRepo repositories.BloodInventoryRepository
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(inventoryRepo repositories.BloodInventoryRepository) *InventoryService {
	return &InventoryService{
		inventoryRepo: inventoryRepo,
	}
}

// UpdateInventory applies a partial unit-count update to the caller's
// inventory. Only hospitals and organisations keep an inventory. Nil
// fields keep the stored counts.
func (s *InventoryService) UpdateInventory(ctx context.Context, userID primitive.ObjectID, actorRole string, req *models.UpdateInventoryRequest) (*models.BloodInventory, error) {
	if actorRole != models.RoleHospital && actorRole != models.RoleOrganisation {
		return nil, apperrors.Forbidden("Only hospitals and organisations can update blood inventory")
	}

	inventory, err := s.inventoryRepo.FindByUser(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		inventory = &models.BloodInventory{UserID: userID}
	} else if err != nil {
		return nil, err
	}

	apply := func(dst *int, src *int) {
		if src != nil && *src >= 0 {
			*dst = *src
		}
	}
	apply(&inventory.APositive, req.APositive)
	apply(&inventory.ANegative, req.ANegative)
	apply(&inventory.BPositive, req.BPositive)
	apply(&inventory.BNegative, req.BNegative)
	apply(&inventory.ABPositive, req.ABPositive)
	apply(&inventory.ABNegative, req.ABNegative)
	apply(&inventory.OPositive, req.OPositive)
	apply(&inventory.ONegative, req.ONegative)
	inventory.LastUpdated = time.Now()

	if err := s.inventoryRepo.Upsert(ctx, inventory); err != nil {
		return nil, err
	}
	return inventory, nil
}

// GetInventory returns the caller's inventory, or a zero-valued one when
// none has been recorded yet.
func (s *InventoryService) GetInventory(ctx context.Context, userID primitive.ObjectID) (*models.BloodInventory, error) {
	inventory, err := s.inventoryRepo.FindByUser(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return &models.BloodInventory{UserID: userID, LastUpdated: time.Now()}, nil
	}
	return inventory, err
}

// GetAllInventories returns every inventory. Admin only.
func (s *InventoryService) GetAllInventories(ctx context.Context, actorRole string) ([]*models.BloodInventory, error) {
	if actorRole != models.RoleAdmin {
		return nil, apperrors.Forbidden("Only admins can view all inventories")
	}
	return s.inventoryRepo.FindAll(ctx)
}

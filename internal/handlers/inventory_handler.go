package handlers

import (
	"net/http"

	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/bloodlink/bloodlink-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// InventoryHandler handles blood inventory HTTP requests
type InventoryHandler struct {
	inventoryService *services.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler
func NewInventoryHandler(inventoryService *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
	}
}

// UpdateInventory handles PUT /inventory
func (h *InventoryHandler) UpdateInventory(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "success": false})
		return
	}

	inventory, err := h.inventoryService.UpdateInventory(c.Request.Context(), userID, role, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Blood inventory updated successfully", inventory)
}

// GetInventory handles GET /inventory
func (h *InventoryHandler) GetInventory(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	inventory, err := h.inventoryService.GetInventory(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Blood inventory retrieved successfully", inventory)
}

// GetAllInventories handles GET /inventory/all
func (h *InventoryHandler) GetAllInventories(c *gin.Context) {
	_, role, ok := currentUser(c)
	if !ok {
		return
	}

	inventories, err := h.inventoryService.GetAllInventories(c.Request.Context(), role)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Blood inventories retrieved successfully", inventories)
}

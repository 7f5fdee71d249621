package handlers

import (
	"net/http"
	"time"

	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/bloodlink/bloodlink-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// BloodRequestHandler handles blood request and response HTTP requests
type BloodRequestHandler struct {
	requestService *services.BloodRequestService
}

// NewBloodRequestHandler creates a new BloodRequestHandler
func NewBloodRequestHandler(requestService *services.BloodRequestService) *BloodRequestHandler {
	return &BloodRequestHandler{
		requestService: requestService,
	}
}

type createBloodRequestPayload struct {
	PatientName   string    `json:"patientName"`
	BloodType     string    `json:"bloodType"`
	Hospital      string    `json:"hospital"`
	Location      string    `json:"location"`
	Urgency       string    `json:"urgency"`
	UnitsRequired int       `json:"unitsRequired"`
	ContactNumber string    `json:"contactNumber"`
	Reason        string    `json:"reason"`
	RequiredBy    time.Time `json:"requiredBy"`
}

// CreateRequest handles POST /blood-requests
func (h *BloodRequestHandler) CreateRequest(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var payload createBloodRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "success": false})
		return
	}

	request := &models.BloodRequest{
		PatientName:   payload.PatientName,
		BloodType:     payload.BloodType,
		Hospital:      payload.Hospital,
		Location:      payload.Location,
		Urgency:       payload.Urgency,
		UnitsRequired: payload.UnitsRequired,
		ContactNumber: payload.ContactNumber,
		Reason:        payload.Reason,
		RequiredBy:    payload.RequiredBy,
		CreatedBy:     userID,
		RequestedBy:   userID,
	}
	if err := h.requestService.CreateRequest(c.Request.Context(), request); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, "Blood request created successfully", request)
}

// GetAllRequests handles GET /blood-requests
func (h *BloodRequestHandler) GetAllRequests(c *gin.Context) {
	requests, err := h.requestService.GetActiveRequests(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Blood requests retrieved successfully", requests)
}

// GetMyRequests handles GET /blood-requests/mine
func (h *BloodRequestHandler) GetMyRequests(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	requests, err := h.requestService.GetRequestsByCreator(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "User blood requests retrieved successfully", requests)
}

// GetMyDeletedRequests handles GET /blood-requests/mine/deleted
func (h *BloodRequestHandler) GetMyDeletedRequests(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	requests, err := h.requestService.GetDeletedRequestsByCreator(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Deleted blood requests retrieved successfully", requests)
}

// UpdateRequestStatus handles PUT /blood-requests/:requestId/status
func (h *BloodRequestHandler) UpdateRequestStatus(c *gin.Context) {
	userID, role, ok := currentUser(c)
	if !ok {
		return
	}
	requestID, ok := pathID(c, "requestId")
	if !ok {
		return
	}

	var payload struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "success": false})
		return
	}

	request, err := h.requestService.UpdateRequestStatus(c.Request.Context(), userID, role, requestID, payload.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Blood request status updated successfully", request)
}

// DeleteRequest handles DELETE /blood-requests/:requestId
func (h *BloodRequestHandler) DeleteRequest(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	requestID, ok := pathID(c, "requestId")
	if !ok {
		return
	}

	if err := h.requestService.DeleteRequest(c.Request.Context(), userID, requestID); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Blood request deleted successfully", nil)
}

// RespondToRequest handles POST /blood-requests/:requestId/respond
func (h *BloodRequestHandler) RespondToRequest(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	requestID, ok := pathID(c, "requestId")
	if !ok {
		return
	}

	var payload struct {
		ContactNumber string `json:"contactNumber"`
		Message       string `json:"message"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "success": false})
		return
	}

	response, err := h.requestService.RespondToRequest(c.Request.Context(), userID, requestID, payload.ContactNumber, payload.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Response submitted successfully", response)
}

// GetRequestResponses handles GET /blood-requests/:requestId/responses
func (h *BloodRequestHandler) GetRequestResponses(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	requestID, ok := pathID(c, "requestId")
	if !ok {
		return
	}

	responses, err := h.requestService.GetResponsesForRequest(c.Request.Context(), userID, requestID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Responses retrieved successfully", responses)
}

// GetMyResponses handles GET /blood-requests/my-responses
func (h *BloodRequestHandler) GetMyResponses(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	responses, err := h.requestService.GetResponsesByDonor(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Your responses retrieved successfully", responses)
}

// UpdateResponseStatus handles PUT /blood-requests/responses/:responseId/status
func (h *BloodRequestHandler) UpdateResponseStatus(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	responseID, ok := pathID(c, "responseId")
	if !ok {
		return
	}

	var payload struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "success": false})
		return
	}

	response, err := h.requestService.UpdateResponseStatus(c.Request.Context(), userID, responseID, payload.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Response status updated to "+payload.Status, response)
}

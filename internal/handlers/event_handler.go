package handlers

import (
	"net/http"
	"time"

	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/bloodlink/bloodlink-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// EventHandler handles event and registration HTTP requests
type EventHandler struct {
	eventService *services.EventService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

type createEventPayload struct {
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Date              time.Time `json:"date"`
	Time              string    `json:"time"`
	Venue             string    `json:"venue"`
	Image             string    `json:"image"`
	RegistrationLimit int       `json:"registrationLimit"`
}

// CreateEvent handles POST /events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var payload createEventPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "success": false})
		return
	}

	event := &models.Event{
		Title:             payload.Title,
		Description:       payload.Description,
		Date:              payload.Date,
		Time:              payload.Time,
		Venue:             payload.Venue,
		Image:             payload.Image,
		RegistrationLimit: payload.RegistrationLimit,
		CreatedBy:         userID,
	}
	if err := h.eventService.CreateEvent(c.Request.Context(), event); err != nil {
		respondError(c, err)
		return
	}

	respondOK(c, http.StatusCreated, "Event created successfully", event)
}

// GetAllEvents handles GET /events
func (h *EventHandler) GetAllEvents(c *gin.Context) {
	events, err := h.eventService.GetAllEvents(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Events retrieved successfully", events)
}

// GetEventByID handles GET /events/:eventId
func (h *EventHandler) GetEventByID(c *gin.Context) {
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}
	event, err := h.eventService.GetEventByID(c.Request.Context(), eventID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Event retrieved successfully", event)
}

// RegisterForEvent handles POST /events/:eventId/register
func (h *EventHandler) RegisterForEvent(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	registration, err := h.eventService.RegisterForEvent(c.Request.Context(), userID, eventID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusCreated, "Successfully registered for event", registration)
}

// CheckRegistration handles GET /events/:eventId/registration
func (h *EventHandler) CheckRegistration(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	registration, err := h.eventService.CheckRegistration(c.Request.Context(), userID, eventID)
	if err != nil {
		respondError(c, err)
		return
	}

	body := gin.H{"isRegistered": registration != nil}
	if registration != nil {
		body["status"] = registration.Status
		body["registrationId"] = registration.ID
	}
	respondOK(c, http.StatusOK, "Registration status retrieved", body)
}

// GetEventRegistrations handles GET /events/:eventId/registrations
func (h *EventHandler) GetEventRegistrations(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	registrations, err := h.eventService.GetEventRegistrations(c.Request.Context(), userID, eventID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Registrations retrieved successfully", registrations)
}

// GetMyRegistrations handles GET /registrations/mine
func (h *EventHandler) GetMyRegistrations(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	registrations, err := h.eventService.GetUserRegistrations(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, http.StatusOK, "Your registrations retrieved successfully", registrations)
}

// UpdateRegistrationStatus handles PUT /events/registrations/:registrationId/status
func (h *EventHandler) UpdateRegistrationStatus(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	registrationID, ok := pathID(c, "registrationId")
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

	registration, err := h.eventService.UpdateRegistrationStatus(c.Request.Context(), userID, registrationID, payload.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	if registration == nil {
		respondOK(c, http.StatusOK, "Registration rejected and removed", nil)
		return
	}
	respondOK(c, http.StatusOK, "Registration status updated to "+payload.Status, registration)
}

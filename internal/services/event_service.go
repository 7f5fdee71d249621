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

// EventService handles events and the event registration lifecycle
type EventService struct {
	eventRepo        repositories.EventRepository
	registrationRepo repositories.EventRegistrationRepository
	eligibility      EligibilityChecker
	listener         DonationListener
}

// NewEventService creates a new EventService
func NewEventService(
	eventRepo repositories.EventRepository,
	registrationRepo repositories.EventRegistrationRepository,
	eligibility EligibilityChecker,
	listener DonationListener,
) *EventService {
	return &EventService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		eligibility:      eligibility,
		listener:         listener,
	}
}

// CreateEvent validates and persists a new event
func (s *EventService) CreateEvent(ctx context.Context, event *models.Event) error {
	switch {
	case event.Title == "":
		return apperrors.Validation("Title is required")
	case event.Date.IsZero():
		return apperrors.Validation("Date is required")
	case event.Time == "":
		return apperrors.Validation("Time is required")
	case event.Venue == "":
		return apperrors.Validation("Venue is required")
	case event.RegistrationLimit < 0:
		return apperrors.Validation("Registration limit cannot be negative")
	}
	event.RegisteredCount = 0
	return s.eventRepo.Create(ctx, event)
}

// GetAllEvents returns all events sorted by date
func (s *EventService) GetAllEvents(ctx context.Context) ([]*models.Event, error) {
	return s.eventRepo.FindAll(ctx)
}

// GetEventByID returns a single event
func (s *EventService) GetEventByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.NotFound("Event not found")
	}
	return event, err
}

// RegisterForEvent creates a pending registration for a donor, gated by
// the eligibility engine, the creator check, the duplicate check and the
// capacity limit. The capacity slot is claimed with a single conditional
// update so concurrent registrations cannot oversubscribe the event.
func (s *EventService) RegisterForEvent(ctx context.Context, userID, eventID primitive.ObjectID) (*models.EventRegistration, error) {
	check, err := s.eligibility.CanUserDonate(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !check.CanDonate {
		return nil, apperrors.Ineligible("Cannot register for event: "+check.Reason, check.NextEligibleDate)
	}

	event, err := s.eventRepo.FindByID(ctx, eventID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.NotFound("Event not found")
	}
	if err != nil {
		return nil, err
	}
	if event.CreatedBy == userID {
		return nil, apperrors.Validation("You cannot register for an event that you created")
	}

	if _, err := s.registrationRepo.FindByEventAndUser(ctx, eventID, userID); err == nil {
		return nil, apperrors.Conflict("You have already registered for this event")
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	if err := s.eventRepo.ClaimSlot(ctx, eventID); err != nil {
		if errors.Is(err, repositories.ErrLimitReached) {
			return nil, apperrors.Conflict("Registration limit reached for this event")
		}
		return nil, err
	}

	registration := &models.EventRegistration{
		Event:            eventID,
		User:             userID,
		RegistrationDate: time.Now(),
		Status:           models.RegistrationPending,
	}
	err = s.registrationRepo.Create(ctx, registration)
	if errors.Is(err, repositories.ErrDuplicate) {
		// Lost the race against a concurrent registration by the same
		// user; give the claimed slot back.
		if relErr := s.eventRepo.ReleaseSlot(ctx, eventID); relErr != nil {
			return nil, relErr
		}
		return nil, apperrors.Conflict("You have already registered for this event")
	}
	if err != nil {
		return nil, err
	}
	return registration, nil
}

// CheckRegistration returns the user's registration for an event, or nil
// when none exists.
func (s *EventService) CheckRegistration(ctx context.Context, userID, eventID primitive.ObjectID) (*models.EventRegistration, error) {
	registration, err := s.registrationRepo.FindByEventAndUser(ctx, eventID, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil
	}
	return registration, err
}

// GetEventRegistrations returns all registrations for an event. Only the
// event's creator may list them.
func (s *EventService) GetEventRegistrations(ctx context.Context, actorID, eventID primitive.ObjectID) ([]*models.EventRegistration, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.NotFound("Event not found")
	}
	if err != nil {
		return nil, err
	}
	if event.CreatedBy != actorID {
		return nil, apperrors.Forbidden("You don't have permission to view these registrations")
	}
	return s.registrationRepo.FindByEvent(ctx, eventID)
}

// GetUserRegistrations returns all registrations submitted by a user
func (s *EventService) GetUserRegistrations(ctx context.Context, userID primitive.ObjectID) ([]*models.EventRegistration, error) {
	return s.registrationRepo.FindByUser(ctx, userID)
}

// UpdateRegistrationStatus transitions a registration. Only the event's
// creator may transition it. Approved is terminal and starts the donor's
// cooldown; Rejected deletes the row and vacates the capacity slot.
// The returned registration is nil when the row was deleted.
func (s *EventService) UpdateRegistrationStatus(ctx context.Context, actorID, registrationID primitive.ObjectID, rawStatus string) (*models.EventRegistration, error) {
	status, err := models.ParseRegistrationStatus(rawStatus)
	if err != nil {
		return nil, apperrors.Validation("Invalid status. Status must be 'Pending', 'Approved', or 'Rejected'")
	}

	registration, err := s.registrationRepo.FindByID(ctx, registrationID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.NotFound("Registration not found")
	}
	if err != nil {
		return nil, err
	}

	event, err := s.eventRepo.FindByID(ctx, registration.Event)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.NotFound("Event not found")
	}
	if err != nil {
		return nil, err
	}
	if event.CreatedBy != actorID {
		return nil, apperrors.Forbidden("You don't have permission to update this registration")
	}
	if !registration.Status.CanTransitionTo(status) {
		return nil, apperrors.Conflict("Cannot change status of an already approved registration")
	}

	if status == models.RegistrationRejected {
		if err := s.registrationRepo.Delete(ctx, registrationID); err != nil {
			return nil, err
		}
		if err := s.eventRepo.ReleaseSlot(ctx, registration.Event); err != nil {
			return nil, err
		}
		return nil, nil
	}

	if err := s.registrationRepo.UpdateStatus(ctx, registrationID, status); err != nil {
		return nil, err
	}
	registration.Status = status

	if status == models.RegistrationApproved {
		s.listener.RegistrationApproved(ctx, registration.User)
	}
	return registration, nil
}

package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/bloodlink/bloodlink-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sentinel errors returned by repository implementations. Services map
// these to the application error taxonomy.
var (
	// ErrNotFound is returned when no document matches.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicate is returned when an insert violates a unique index.
	ErrDuplicate = errors.New("duplicate document")
	// ErrLimitReached is returned when a conditional counter update
	// fails because the event's registration limit has been reached.
	ErrLimitReached = errors.New("registration limit reached")
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context, page, limit int) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role string) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
	// MarkDonated atomically records a completed donation: status
	// inactive, lastDonationDate and nextEligibleDate set.
	MarkDonated(ctx context.Context, id primitive.ObjectID, donatedAt, nextEligible time.Time) error
	// ClearCooldown atomically reactivates a donor: status active,
	// nextEligibleDate unset.
	ClearCooldown(ctx context.Context, id primitive.ObjectID) error
}

// BloodRequestRepository defines the interface for blood request data operations
type BloodRequestRepository interface {
	Create(ctx context.Context, request *models.BloodRequest) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.BloodRequest, error)
	// FindActive returns non-deleted requests, newest first.
	FindActive(ctx context.Context) ([]*models.BloodRequest, error)
	FindByCreator(ctx context.Context, creatorID primitive.ObjectID, deleted bool) ([]*models.BloodRequest, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.RequestStatus) error
	SoftDelete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	CountByStatuses(ctx context.Context, statuses []models.RequestStatus) (int64, error)
}

// BloodRequestResponseRepository defines the interface for donor response data operations
type BloodRequestResponseRepository interface {
	// Create inserts a response; ErrDuplicate if the donor already
	// responded to the request.
	Create(ctx context.Context, response *models.BloodRequestResponse) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.BloodRequestResponse, error)
	FindByRequest(ctx context.Context, requestID primitive.ObjectID) ([]*models.BloodRequestResponse, error)
	FindByDonor(ctx context.Context, donorID primitive.ObjectID) ([]*models.BloodRequestResponse, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.ResponseStatus) error
}

// EventRepository defines the interface for event data operations
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error)
	FindAll(ctx context.Context) ([]*models.Event, error)
	Count(ctx context.Context) (int64, error)
	// ClaimSlot atomically increments registeredCount while it is below
	// registrationLimit; ErrLimitReached when the event is full.
	ClaimSlot(ctx context.Context, id primitive.ObjectID) error
	// ReleaseSlot atomically decrements registeredCount, floored at 0.
	ReleaseSlot(ctx context.Context, id primitive.ObjectID) error
}

// EventRegistrationRepository defines the interface for event registration data operations
type EventRegistrationRepository interface {
	// Create inserts a registration; ErrDuplicate if the user already
	// registered for the event.
	Create(ctx context.Context, registration *models.EventRegistration) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.EventRegistration, error)
	FindByEventAndUser(ctx context.Context, eventID, userID primitive.ObjectID) (*models.EventRegistration, error)
	FindByEvent(ctx context.Context, eventID primitive.ObjectID) ([]*models.EventRegistration, error)
	FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.EventRegistration, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.RegistrationStatus) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// BloodInventoryRepository defines the interface for blood inventory data operations
type BloodInventoryRepository interface {
	Upsert(ctx context.Context, inventory *models.BloodInventory) error
	FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.BloodInventory, error)
	FindAll(ctx context.Context) ([]*models.BloodInventory, error)
}

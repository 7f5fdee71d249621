package mongodb

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/bloodlink/bloodlink-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure EventRegistrationRepository implements the interface
var _ repositories.EventRegistrationRepository = (*EventRegistrationRepository)(nil)

// EventRegistrationRepository handles MongoDB operations for EventRegistration
type EventRegistrationRepository struct {
	collection *mongo.Collection
}

// NewEventRegistrationRepository creates a new repository and ensures the
// unique (event, user) index.
func NewEventRegistrationRepository(db *mongo.Database) *EventRegistrationRepository {
	collection := db.Collection("eventregistrations")
	_, err := collection.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "event", Value: 1}, {Key: "user", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Printf("[WARN] eventregistrations: failed to create unique index: %v", err)
	}
	return &EventRegistrationRepository{collection: collection}
}

// Create inserts a new registration; repositories.ErrDuplicate if the
// user already registered for this event.
func (r *EventRegistrationRepository) Create(ctx context.Context, registration *models.EventRegistration) error {
	registration.ID = primitive.NewObjectID()
	registration.CreatedAt = time.Now()
	registration.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, registration)
	if mongo.IsDuplicateKeyError(err) {
		return repositories.ErrDuplicate
	}
	return err
}

// FindByID finds a registration by ID
func (r *EventRegistrationRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.EventRegistration, error) {
	var registration models.EventRegistration
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&registration)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &registration, nil
}

// FindByEventAndUser finds a user's registration for an event
func (r *EventRegistrationRepository) FindByEventAndUser(ctx context.Context, eventID, userID primitive.ObjectID) (*models.EventRegistration, error) {
	var registration models.EventRegistration
	err := r.collection.FindOne(ctx, bson.M{"event": eventID, "user": userID}).Decode(&registration)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &registration, nil
}

// FindByEvent returns all registrations for an event, newest first
func (r *EventRegistrationRepository) FindByEvent(ctx context.Context, eventID primitive.ObjectID) ([]*models.EventRegistration, error) {
	return r.find(ctx, bson.M{"event": eventID})
}

// FindByUser returns all registrations submitted by a user, newest first
func (r *EventRegistrationRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]*models.EventRegistration, error) {
	return r.find(ctx, bson.M{"user": userID})
}

func (r *EventRegistrationRepository) find(ctx context.Context, filter bson.M) ([]*models.EventRegistration, error) {
	opts := options.Find().SetSort(bson.M{"registrationDate": -1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var registrations []*models.EventRegistration
	if err = cursor.All(ctx, &registrations); err != nil {
		return nil, err
	}
	if registrations == nil {
		registrations = []*models.EventRegistration{}
	}
	return registrations, nil
}

// UpdateStatus sets the registration status
func (r *EventRegistrationRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.RegistrationStatus) error {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// Delete removes a registration row. Used when a registration is
// rejected, vacating the capacity slot.
func (r *EventRegistrationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

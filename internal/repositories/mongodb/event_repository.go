package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/bloodlink/bloodlink-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure EventRepository implements the interface
var _ repositories.EventRepository = (*EventRepository)(nil)

// EventRepository handles MongoDB operations for Event
type EventRepository struct {
	collection *mongo.Collection
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{collection: db.Collection("events")}
}

// Create inserts a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	event.ID = primitive.NewObjectID()
	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, event)
	return err
}

// FindByID finds an event by ID
func (r *EventRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	var event models.Event
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// FindAll returns all events sorted by date ascending
func (r *EventRepository) FindAll(ctx context.Context) ([]*models.Event, error) {
	opts := options.Find().SetSort(bson.M{"date": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var events []*models.Event
	if err = cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	if events == nil {
		events = []*models.Event{}
	}
	return events, nil
}

// Count returns the total number of events
func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// ClaimSlot increments registeredCount only while the event is below its
// registration limit. The filter and increment run as one update, so two
// concurrent registrations cannot both take the last slot.
func (r *EventRepository) ClaimSlot(ctx context.Context, id primitive.ObjectID) error {
	filter := bson.M{
		"_id": id,
		"$or": bson.A{
			bson.M{"registrationLimit": bson.M{"$exists": false}},
			bson.M{"registrationLimit": bson.M{"$lte": 0}},
			bson.M{"$expr": bson.M{"$lt": bson.A{"$registeredCount", "$registrationLimit"}}},
		},
	}
	update := bson.M{"$inc": bson.M{"registeredCount": 1}, "$set": bson.M{"updatedAt": time.Now()}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		// Either the event is gone or it is full; the service loads the
		// event before claiming, so treat this as a full event.
		return repositories.ErrLimitReached
	}
	return nil
}

// ReleaseSlot decrements registeredCount, never below zero.
func (r *EventRepository) ReleaseSlot(ctx context.Context, id primitive.ObjectID) error {
	filter := bson.M{"_id": id, "registeredCount": bson.M{"$gt": 0}}
	update := bson.M{"$inc": bson.M{"registeredCount": -1}, "$set": bson.M{"updatedAt": time.Now()}}
	_, err := r.collection.UpdateOne(ctx, filter, update)
	return err
}

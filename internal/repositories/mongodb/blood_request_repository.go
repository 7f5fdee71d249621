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

// Compile-time check to ensure BloodRequestRepository implements the interface
var _ repositories.BloodRequestRepository = (*BloodRequestRepository)(nil)

// BloodRequestRepository handles MongoDB operations for BloodRequest
type BloodRequestRepository struct {
	collection *mongo.Collection
}

// NewBloodRequestRepository creates a new BloodRequestRepository
func NewBloodRequestRepository(db *mongo.Database) *BloodRequestRepository {
	return &BloodRequestRepository{collection: db.Collection("bloodrequests")}
}

// Create inserts a new blood request
func (r *BloodRequestRepository) Create(ctx context.Context, request *models.BloodRequest) error {
	request.ID = primitive.NewObjectID()
	request.CreatedAt = time.Now()
	request.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, request)
	return err
}

// FindByID finds a blood request by ID, including soft-deleted ones. The
// caller decides how to treat IsDeleted.
func (r *BloodRequestRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.BloodRequest, error) {
	var request models.BloodRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// FindActive returns all non-deleted requests, newest first
func (r *BloodRequestRepository) FindActive(ctx context.Context) ([]*models.BloodRequest, error) {
	return r.find(ctx, bson.M{"isDeleted": false})
}

// FindByCreator returns requests created by a user, split by deletion flag
func (r *BloodRequestRepository) FindByCreator(ctx context.Context, creatorID primitive.ObjectID, deleted bool) ([]*models.BloodRequest, error) {
	return r.find(ctx, bson.M{"createdBy": creatorID, "isDeleted": deleted})
}

func (r *BloodRequestRepository) find(ctx context.Context, filter bson.M) ([]*models.BloodRequest, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []*models.BloodRequest
	if err = cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	if requests == nil {
		requests = []*models.BloodRequest{}
	}
	return requests, nil
}

// UpdateStatus sets the request status
func (r *BloodRequestRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.RequestStatus) error {
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

// SoftDelete marks the request deleted. Requests are never hard-deleted.
func (r *BloodRequestRepository) SoftDelete(ctx context.Context, id primitive.ObjectID) error {
	update := bson.M{"$set": bson.M{"isDeleted": true, "updatedAt": time.Now()}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// Count returns the total number of requests
func (r *BloodRequestRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// CountByStatuses returns the number of non-deleted requests in any of
// the given statuses
func (r *BloodRequestRepository) CountByStatuses(ctx context.Context, statuses []models.RequestStatus) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{
		"status":    bson.M{"$in": statuses},
		"isDeleted": false,
	})
}

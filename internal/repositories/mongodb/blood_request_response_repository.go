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

// Compile-time check to ensure BloodRequestResponseRepository implements the interface
var _ repositories.BloodRequestResponseRepository = (*BloodRequestResponseRepository)(nil)

// BloodRequestResponseRepository handles MongoDB operations for BloodRequestResponse
type BloodRequestResponseRepository struct {
	collection *mongo.Collection
}

// NewBloodRequestResponseRepository creates a new repository and ensures
// the unique (bloodRequest, donor) index. The index makes the insert
// itself the duplicate check, so concurrent responses cannot both land.
func NewBloodRequestResponseRepository(db *mongo.Database) *BloodRequestResponseRepository {
	collection := db.Collection("bloodrequestresponses")
	_, err := collection.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "bloodRequest", Value: 1}, {Key: "donor", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Printf("[WARN] bloodrequestresponses: failed to create unique index: %v", err)
	}
	return &BloodRequestResponseRepository{collection: collection}
}

// Create inserts a new response; repositories.ErrDuplicate if the donor
// already responded to this request.
func (r *BloodRequestResponseRepository) Create(ctx context.Context, response *models.BloodRequestResponse) error {
	response.ID = primitive.NewObjectID()
	response.CreatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, response)
	if mongo.IsDuplicateKeyError(err) {
		return repositories.ErrDuplicate
	}
	return err
}

// FindByID finds a response by ID
func (r *BloodRequestResponseRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.BloodRequestResponse, error) {
	var response models.BloodRequestResponse
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&response)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &response, nil
}

// FindByRequest returns all responses to a request, newest first
func (r *BloodRequestResponseRepository) FindByRequest(ctx context.Context, requestID primitive.ObjectID) ([]*models.BloodRequestResponse, error) {
	return r.find(ctx, bson.M{"bloodRequest": requestID})
}

// FindByDonor returns all responses submitted by a donor, newest first
func (r *BloodRequestResponseRepository) FindByDonor(ctx context.Context, donorID primitive.ObjectID) ([]*models.BloodRequestResponse, error) {
	return r.find(ctx, bson.M{"donor": donorID})
}

func (r *BloodRequestResponseRepository) find(ctx context.Context, filter bson.M) ([]*models.BloodRequestResponse, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var responses []*models.BloodRequestResponse
	if err = cursor.All(ctx, &responses); err != nil {
		return nil, err
	}
	if responses == nil {
		responses = []*models.BloodRequestResponse{}
	}
	return responses, nil
}

// UpdateStatus sets the response status
func (r *BloodRequestResponseRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.ResponseStatus) error {
	update := bson.M{"$set": bson.M{"status": status}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

package mongodb

import (
	"context"
	"errors"

	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/bloodlink/bloodlink-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure BloodInventoryRepository implements the interface
var _ repositories.BloodInventoryRepository = (*BloodInventoryRepository)(nil)

// BloodInventoryRepository handles MongoDB operations for BloodInventory
type BloodInventoryRepository struct {
	collection *mongo.Collection
}

// NewBloodInventoryRepository creates a new BloodInventoryRepository
func NewBloodInventoryRepository(db *mongo.Database) *BloodInventoryRepository {
	return &BloodInventoryRepository{collection: db.Collection("bloodinventories")}
}

// Upsert creates or replaces the inventory document for its owning user
func (r *BloodInventoryRepository) Upsert(ctx context.Context, inventory *models.BloodInventory) error {
	filter := bson.M{"userId": inventory.UserID}
	update := bson.M{"$set": bson.M{
		"userId":      inventory.UserID,
		"aPositive":   inventory.APositive,
		"aNegative":   inventory.ANegative,
		"bPositive":   inventory.BPositive,
		"bNegative":   inventory.BNegative,
		"abPositive":  inventory.ABPositive,
		"abNegative":  inventory.ABNegative,
		"oPositive":   inventory.OPositive,
		"oNegative":   inventory.ONegative,
		"lastUpdated": inventory.LastUpdated,
	}}
	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// FindByUser finds the inventory owned by a user
func (r *BloodInventoryRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) (*models.BloodInventory, error) {
	var inventory models.BloodInventory
	err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&inventory)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &inventory, nil
}

// FindAll returns all inventories
func (r *BloodInventoryRepository) FindAll(ctx context.Context) ([]*models.BloodInventory, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var inventories []*models.BloodInventory
	if err = cursor.All(ctx, &inventories); err != nil {
		return nil, err
	}
	if inventories == nil {
		inventories = []*models.BloodInventory{}
	}
	return inventories, nil
}

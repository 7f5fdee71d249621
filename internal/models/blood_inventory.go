package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BloodInventory holds the unit counts a hospital or organisation has on
// hand, one document per owning user.
type BloodInventory struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	APositive   int                `bson:"aPositive" json:"aPositive"`
	ANegative   int                `bson:"aNegative" json:"aNegative"`
	BPositive   int                `bson:"bPositive" json:"bPositive"`
	BNegative   int                `bson:"bNegative" json:"bNegative"`
	ABPositive  int                `bson:"abPositive" json:"abPositive"`
	ABNegative  int                `bson:"abNegative" json:"abNegative"`
	OPositive   int                `bson:"oPositive" json:"oPositive"`
	ONegative   int                `bson:"oNegative" json:"oNegative"`
	LastUpdated time.Time          `bson:"lastUpdated" json:"lastUpdated"`
}

// UpdateInventoryRequest carries a partial inventory update. Nil fields
// keep the stored value.
type UpdateInventoryRequest struct {
	APositive  *int `json:"aPositive"`
	ANegative  *int `json:"aNegative"`
	BPositive  *int `json:"bPositive"`
	BNegative  *int `json:"bNegative"`
	ABPositive *int `json:"abPositive"`
	ABNegative *int `json:"abNegative"`
	OPositive  *int `json:"oPositive"`
	ONegative  *int `json:"oNegative"`
}

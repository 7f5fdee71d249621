package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is a donation drive created by a hospital, organisation or admin.
// RegisteredCount is a derived counter maintained alongside registration
// create/reject; it never exceeds RegistrationLimit when a limit is set.
// A RegistrationLimit of zero means unlimited.
type Event struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title             string             `bson:"title" json:"title"`
	Description       string             `bson:"description,omitempty" json:"description,omitempty"`
	Date              time.Time          `bson:"date" json:"date"`
	Time              string             `bson:"time" json:"time"`
	Venue             string             `bson:"venue" json:"venue"`
	Image             string             `bson:"image,omitempty" json:"image,omitempty"`
	CreatedBy         primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	RegistrationLimit int                `bson:"registrationLimit,omitempty" json:"registrationLimit,omitempty"`
	RegisteredCount   int                `bson:"registeredCount" json:"registeredCount"`
	CreatedAt         time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt" json:"updatedAt"`
}

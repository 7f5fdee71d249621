package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RegistrationStatus is the lifecycle status of an event registration.
// Approved is terminal; a Rejected transition deletes the registration
// row entirely, vacating the capacity slot.
type RegistrationStatus string

const (
	RegistrationPending  RegistrationStatus = "Pending"
	RegistrationApproved RegistrationStatus = "Approved"
	RegistrationRejected RegistrationStatus = "Rejected"
)

// ParseRegistrationStatus validates a raw status string.
func ParseRegistrationStatus(s string) (RegistrationStatus, error) {
	switch RegistrationStatus(s) {
	case RegistrationPending, RegistrationApproved, RegistrationRejected:
		return RegistrationStatus(s), nil
	}
	return "", fmt.Errorf("invalid registration status %q", s)
}

// Terminal reports whether no further transition is permitted.
func (s RegistrationStatus) Terminal() bool {
	return s == RegistrationApproved
}

// CanTransitionTo reports whether the status may move to next.
func (s RegistrationStatus) CanTransitionTo(next RegistrationStatus) bool {
	return !s.Terminal()
}

// EventRegistration records a donor signing up for an event. Unique per
// (event, user) pair, enforced by a unique compound index. The event's
// creator cannot register for their own event.
type EventRegistration struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Event            primitive.ObjectID `bson:"event" json:"event"`
	User             primitive.ObjectID `bson:"user" json:"user"`
	RegistrationDate time.Time          `bson:"registrationDate" json:"registrationDate"`
	Status           RegistrationStatus `bson:"status" json:"status"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResponseStatus is the lifecycle status of a donor's response to a blood
// request. Completed is terminal and triggers the donor's cooldown.
type ResponseStatus string

const (
	ResponsePending   ResponseStatus = "Pending"
	ResponseAccepted  ResponseStatus = "Accepted"
	ResponseDeclined  ResponseStatus = "Declined"
	ResponseCompleted ResponseStatus = "Completed"
)

// ParseResponseStatus validates a raw status string.
func ParseResponseStatus(s string) (ResponseStatus, error) {
	switch ResponseStatus(s) {
	case ResponsePending, ResponseAccepted, ResponseDeclined, ResponseCompleted:
		return ResponseStatus(s), nil
	}
	return "", fmt.Errorf("invalid response status %q", s)
}

// Terminal reports whether no further transition is permitted.
func (s ResponseStatus) Terminal() bool {
	return s == ResponseCompleted
}

// CanTransitionTo reports whether the status may move to next.
func (s ResponseStatus) CanTransitionTo(next ResponseStatus) bool {
	return !s.Terminal()
}

// DefaultResponseMessage is used when a donor submits a response without
// a message.
const DefaultResponseMessage = "I'm available to help with this blood request. Please contact me for further details."

// BloodRequestResponse records a donor offering to fulfil a blood
// request. At most one response exists per (request, donor) pair,
// enforced by a unique compound index.
type BloodRequestResponse struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	BloodRequest  primitive.ObjectID `bson:"bloodRequest" json:"bloodRequest"`
	Donor         primitive.ObjectID `bson:"donor" json:"donor"`
	Message       string             `bson:"message" json:"message"`
	ContactNumber string             `bson:"contactNumber" json:"contactNumber"`
	ResponseTime  time.Time          `bson:"responseTime" json:"responseTime"`
	Status        ResponseStatus     `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

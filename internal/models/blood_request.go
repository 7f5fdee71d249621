package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RequestStatus is the lifecycle status of a BloodRequest. Any status may
// be set to any other by the owner or an admin, except that a fulfilled
// request is terminal.
type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestApproved  RequestStatus = "approved"
	RequestRejected  RequestStatus = "rejected"
	RequestFulfilled RequestStatus = "fulfilled"
	RequestUrgent    RequestStatus = "urgent"
	RequestCancelled RequestStatus = "cancelled"
)

// ParseRequestStatus validates a raw status string.
func ParseRequestStatus(s string) (RequestStatus, error) {
	switch RequestStatus(s) {
	case RequestPending, RequestApproved, RequestRejected, RequestFulfilled, RequestUrgent, RequestCancelled:
		return RequestStatus(s), nil
	}
	return "", fmt.Errorf("invalid blood request status %q", s)
}

// Terminal reports whether no further transition is permitted.
func (s RequestStatus) Terminal() bool {
	return s == RequestFulfilled
}

// CanTransitionTo reports whether the status may move to next.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	return !s.Terminal()
}

// Urgency levels for a blood request.
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// IsValidUrgency reports whether urgency is a known level.
func IsValidUrgency(urgency string) bool {
	switch urgency {
	case UrgencyLow, UrgencyMedium, UrgencyHigh:
		return true
	}
	return false
}

// IsValidBloodType reports whether bt is one of the eight ABO/Rh groups.
func IsValidBloodType(bt string) bool {
	switch bt {
	case "A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-":
		return true
	}
	return false
}

// BloodRequest is a request for blood units created by a hospital,
// organisation or admin. Requests are never hard-deleted; the owner sets
// IsDeleted instead, which hides the request from donor-facing listings
// and rejects new responses.
type BloodRequest struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	PatientName   string             `bson:"patientName" json:"patientName"`
	BloodType     string             `bson:"bloodType" json:"bloodType"`
	Hospital      string             `bson:"hospital" json:"hospital"`
	Location      string             `bson:"location" json:"location"`
	Urgency       string             `bson:"urgency" json:"urgency"`
	UnitsRequired int                `bson:"unitsRequired" json:"unitsRequired"`
	ContactNumber string             `bson:"contactNumber" json:"contactNumber"`
	Reason        string             `bson:"reason" json:"reason"`
	Status        RequestStatus      `bson:"status" json:"status"`
	IsDeleted     bool               `bson:"isDeleted" json:"isDeleted"`
	CreatedBy     primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	RequestedBy   primitive.ObjectID `bson:"requestedBy" json:"requestedBy"`
	RequiredBy    time.Time          `bson:"requiredBy" json:"requiredBy"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles
const (
	RoleAdmin        = "admin"
	RoleOrganisation = "organisation"
	RoleUser         = "user"
	RoleHospital     = "hospital"
)

// DonationStatus tracks whether a donor is currently allowed to donate.
type DonationStatus string

const (
	DonationActive   DonationStatus = "active"
	DonationInactive DonationStatus = "inactive"
)

// User represents an account in the system. Donors use role "user";
// hospitals, organisations and admins create requests and events but do
// not donate.
type User struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Role             string             `bson:"role" json:"role"`
	Name             string             `bson:"name,omitempty" json:"name,omitempty"`
	OrganisationName string             `bson:"organisationName,omitempty" json:"organisationName,omitempty"`
	HospitalName     string             `bson:"hospitalName,omitempty" json:"hospitalName,omitempty"`
	Email            string             `bson:"email" json:"email"`
	Password         string             `bson:"password" json:"-"`
	Phone            string             `bson:"phone" json:"phone"`
	OrganisationID   string             `bson:"organisationId,omitempty" json:"organisationId,omitempty"`
	HospitalID       string             `bson:"hospitalId,omitempty" json:"hospitalId,omitempty"`
	BloodType        string             `bson:"bloodType,omitempty" json:"bloodType,omitempty"`
	Address          string             `bson:"address,omitempty" json:"address,omitempty"`

	// Donation eligibility fields, owned by the eligibility engine.
	// NextEligibleDate set and in the future means the donor is inside
	// the cooldown window.
	DonationStatus   DonationStatus `bson:"donationStatus" json:"donationStatus"`
	LastDonationDate *time.Time     `bson:"lastDonationDate,omitempty" json:"lastDonationDate,omitempty"`
	NextEligibleDate *time.Time     `bson:"nextEligibleDate,omitempty" json:"nextEligibleDate,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsValidRole reports whether role is one of the known account roles.
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleOrganisation, RoleUser, RoleHospital:
		return true
	}
	return false
}

// DonationCheck is the eligibility engine's answer to "may this donor
// perform a donation-consuming action right now".
type DonationCheck struct {
	CanDonate        bool       `json:"canDonate"`
	Reason           string     `json:"reason"`
	NextEligibleDate *time.Time `json:"nextEligibleDate,omitempty"`
}

package models

// RegisterRequest is the payload for account registration. Which fields
// are required depends on the role: name for user/admin, organisation
// name and ID for organisations, hospital name and ID for hospitals.
type RegisterRequest struct {
	Role             string `json:"role" binding:"required"`
	Name             string `json:"name"`
	OrganisationName string `json:"organisationName"`
	HospitalName     string `json:"hospitalName"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=6"`
	Phone            string `json:"phone" binding:"required"`
	OrganisationID   string `json:"organisationId"`
	HospitalID       string `json:"hospitalId"`
	BloodType        string `json:"bloodType"`
	Address          string `json:"address"`
}

// LoginRequest is the payload for login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries a partial profile update. Empty fields
// keep the stored value.
type UpdateProfileRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	BloodType string `json:"bloodType"`
	Address   string `json:"address"`
}

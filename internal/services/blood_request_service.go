package services

import (
	"context"
	"errors"
	"time"

	"github.com/bloodlink/bloodlink-backend/internal/apperrors"
	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/bloodlink/bloodlink-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BloodRequestService handles the blood request and response lifecycles
type BloodRequestService struct {
	requestRepo  repositories.BloodRequestRepository
	responseRepo repositories.BloodRequestResponseRepository
	eligibility  EligibilityChecker
	listener     DonationListener
}

// NewBloodRequestService creates a new BloodRequestService
func NewBloodRequestService(
	requestRepo repositories.BloodRequestRepository,
	responseRepo repositories.BloodRequestResponseRepository,
	eligibility EligibilityChecker,
	listener DonationListener,
) *BloodRequestService {
	return &BloodRequestService{
		requestRepo:  requestRepo,
		responseRepo: responseRepo,
		eligibility:  eligibility,
		listener:     listener,
	}
}

// CreateRequest validates and persists a new blood request
func (s *BloodRequestService) CreateRequest(ctx context.Context, request *models.BloodRequest) error {
	switch {
	case request.PatientName == "":
		return apperrors.Validation("Patient name is required")
	case request.Hospital == "":
		return apperrors.Validation("Hospital name is required")
	case request.Location == "":
		return apperrors.Validation("Location is required")
	case request.ContactNumber == "":
		return apperrors.Validation("Contact number is required")
	case request.Reason == "":
		return apperrors.Validation("Reason for request is required")
	case request.UnitsRequired < 1:
		return apperrors.Validation("At least 1 unit is required")
	case request.RequiredBy.IsZero():
		return apperrors.Validation("Required by date is needed")
	}
	if !models.IsValidBloodType(request.BloodType) {
		return apperrors.Validation("Invalid blood type")
	}
	if request.Urgency == "" {
		request.Urgency = models.UrgencyMedium
	} else if !models.IsValidUrgency(request.Urgency) {
		return apperrors.Validation("Invalid urgency level")
	}

	request.Status = models.RequestPending
	request.IsDeleted = false
	return s.requestRepo.Create(ctx, request)
}

// GetActiveRequests returns all non-deleted requests, newest first
func (s *BloodRequestService) GetActiveRequests(ctx context.Context) ([]*models.BloodRequest, error) {
	return s.requestRepo.FindActive(ctx)
}

// GetRequestsByCreator returns a user's own non-deleted requests
func (s *BloodRequestService) GetRequestsByCreator(ctx context.Context, creatorID primitive.ObjectID) ([]*models.BloodRequest, error) {
	return s.requestRepo.FindByCreator(ctx, creatorID, false)
}

// GetDeletedRequestsByCreator returns a user's own soft-deleted requests
func (s *BloodRequestService) GetDeletedRequestsByCreator(ctx context.Context, creatorID primitive.ObjectID) ([]*models.BloodRequest, error) {
	return s.requestRepo.FindByCreator(ctx, creatorID, true)
}

// UpdateRequestStatus sets a request's status. Only the owner or an
// admin may transition a request; a fulfilled request is terminal.
func (s *BloodRequestService) UpdateRequestStatus(ctx context.Context, actorID primitive.ObjectID, actorRole string, requestID primitive.ObjectID, rawStatus string) (*models.BloodRequest, error) {
	status, err := models.ParseRequestStatus(rawStatus)
	if err != nil {
		return nil, apperrors.Validation("Invalid status value")
	}

	request, err := s.requestRepo.FindByID(ctx, requestID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.NotFound("Blood request not found")
	}
	if err != nil {
		return nil, err
	}
	if request.CreatedBy != actorID && actorRole != models.RoleAdmin {
		return nil, apperrors.Forbidden("You don't have permission to update this blood request")
	}
	if !request.Status.CanTransitionTo(status) {
		return nil, apperrors.Conflict("Cannot change status of a fulfilled blood request")
	}

	if err := s.requestRepo.UpdateStatus(ctx, requestID, status); err != nil {
		return nil, err
	}
	request.Status = status
	request.UpdatedAt = time.Now()
	return request, nil
}

// DeleteRequest soft-deletes a request. Owner only; the record is kept
// for history but hidden from donor-facing listings.
func (s *BloodRequestService) DeleteRequest(ctx context.Context, actorID, requestID primitive.ObjectID) error {
	request, err := s.requestRepo.FindByID(ctx, requestID)
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.NotFound("Blood request not found")
	}
	if err != nil {
		return err
	}
	if request.CreatedBy != actorID {
		return apperrors.Forbidden("You don't have permission to delete this blood request")
	}
	return s.requestRepo.SoftDelete(ctx, requestID)
}

// RespondToRequest creates a donor's response to a blood request, gated
// by the eligibility engine. At most one response exists per
// (request, donor) pair.
func (s *BloodRequestService) RespondToRequest(ctx context.Context, donorID, requestID primitive.ObjectID, contactNumber, message string) (*models.BloodRequestResponse, error) {
	check, err := s.eligibility.CanUserDonate(ctx, donorID)
	if err != nil {
		return nil, err
	}
	if !check.CanDonate {
		return nil, apperrors.Ineligible("Cannot respond to blood request: "+check.Reason, check.NextEligibleDate)
	}

	if contactNumber == "" {
		return nil, apperrors.Validation("Contact number is required")
	}

	request, err := s.requestRepo.FindByID(ctx, requestID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.NotFound("Blood request not found or has been deleted")
	}
	if err != nil {
		return nil, err
	}
	if request.IsDeleted {
		return nil, apperrors.NotFound("Blood request not found or has been deleted")
	}

	if message == "" {
		message = models.DefaultResponseMessage
	}

	response := &models.BloodRequestResponse{
		BloodRequest:  requestID,
		Donor:         donorID,
		Message:       message,
		ContactNumber: contactNumber,
		ResponseTime:  time.Now(),
		Status:        models.ResponsePending,
	}
	err = s.responseRepo.Create(ctx, response)
	if errors.Is(err, repositories.ErrDuplicate) {
		return nil, apperrors.Conflict("You have already responded to this blood request")
	}
	if err != nil {
		return nil, err
	}
	return response, nil
}

// GetResponsesForRequest returns all responses to a request. Only the
// request's creator may list them.
func (s *BloodRequestService) GetResponsesForRequest(ctx context.Context, actorID, requestID primitive.ObjectID) ([]*models.BloodRequestResponse, error) {
	request, err := s.requestRepo.FindByID(ctx, requestID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.NotFound("Blood request not found")
	}
	if err != nil {
		return nil, err
	}
	if request.CreatedBy != actorID {
		return nil, apperrors.Forbidden("You don't have permission to view these responses")
	}
	return s.responseRepo.FindByRequest(ctx, requestID)
}

// GetResponsesByDonor returns all responses a donor has submitted
func (s *BloodRequestService) GetResponsesByDonor(ctx context.Context, donorID primitive.ObjectID) ([]*models.BloodRequestResponse, error) {
	return s.responseRepo.FindByDonor(ctx, donorID)
}

// UpdateResponseStatus transitions a response. Only the blood request's
// creator may transition it; Completed is terminal and starts the
// donor's cooldown as a best-effort side effect.
func (s *BloodRequestService) UpdateResponseStatus(ctx context.Context, actorID, responseID primitive.ObjectID, rawStatus string) (*models.BloodRequestResponse, error) {
	status, err := models.ParseResponseStatus(rawStatus)
	if err != nil {
		return nil, apperrors.Validation("Invalid status. Status must be 'Pending', 'Accepted', 'Declined', or 'Completed'")
	}

	response, err := s.responseRepo.FindByID(ctx, responseID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.NotFound("Response not found")
	}
	if err != nil {
		return nil, err
	}

	request, err := s.requestRepo.FindByID(ctx, response.BloodRequest)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.NotFound("Blood request not found")
	}
	if err != nil {
		return nil, err
	}
	if request.CreatedBy != actorID {
		return nil, apperrors.Forbidden("You don't have permission to update this response")
	}
	if !response.Status.CanTransitionTo(status) {
		return nil, apperrors.Conflict("Cannot change status of a completed response")
	}

	if err := s.responseRepo.UpdateStatus(ctx, responseID, status); err != nil {
		return nil, err
	}
	response.Status = status

	if status == models.ResponseCompleted {
		s.listener.ResponseCompleted(ctx, response.Donor)
	}
	return response, nil
}

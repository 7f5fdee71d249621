package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/bloodlink/bloodlink-backend/internal/apperrors"
	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/bloodlink/bloodlink-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DonationCooldownDays is the calendar-day cooldown after a completed
// donation during which a donor cannot donate again.
const DonationCooldownDays = 60

// EligibilityChecker gates donation-consuming actions. The request and
// event lifecycles consult it before creating responses/registrations.
type EligibilityChecker interface {
	CanUserDonate(ctx context.Context, userID primitive.ObjectID) (*models.DonationCheck, error)
}

// DonationListener receives completed-donation events after the primary
// status transition has been persisted. Implementations must not fail
// the triggering request: the side effect is best-effort.
type DonationListener interface {
	ResponseCompleted(ctx context.Context, donorID primitive.ObjectID)
	RegistrationApproved(ctx context.Context, userID primitive.ObjectID)
}

// EligibilityService is the single source of truth for whether a donor
// may currently donate, and for advancing that state over time.
type EligibilityService struct {
	userRepo repositories.UserRepository
	now      func() time.Time
}

// NewEligibilityService creates a new EligibilityService
func NewEligibilityService(userRepo repositories.UserRepository) *EligibilityService {
	return &EligibilityService{
		userRepo: userRepo,
		now:      time.Now,
	}
}

// CanUserDonate reports whether the donor may perform a donation-consuming
// action. A donor whose cooldown window has elapsed is lazily reactivated
// as a side effect.
func (s *EligibilityService) CanUserDonate(ctx context.Context, userID primitive.ObjectID) (*models.DonationCheck, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return &models.DonationCheck{CanDonate: false, Reason: "User not found"}, nil
	}
	if err != nil {
		return nil, err
	}

	now := s.now()
	if user.DonationStatus == models.DonationInactive && user.NextEligibleDate != nil {
		if now.Before(*user.NextEligibleDate) {
			daysRemaining := int(math.Ceil(user.NextEligibleDate.Sub(now).Hours() / 24))
			return &models.DonationCheck{
				CanDonate:        false,
				Reason:           fmt.Sprintf("Cannot donate for %d more days", daysRemaining),
				NextEligibleDate: user.NextEligibleDate,
			}, nil
		}
		// Window elapsed; refresh before answering.
		if _, err := s.CheckAndUpdateEligibility(ctx, userID); err != nil {
			return nil, err
		}
	}

	return &models.DonationCheck{CanDonate: true, Reason: "Eligible to donate"}, nil
}

// CheckAndUpdateEligibility reactivates the donor if the cooldown window
// has elapsed and returns the (possibly updated) donation status. It is
// idempotent: once reactivated, further calls read without writing.
func (s *EligibilityService) CheckAndUpdateEligibility(ctx context.Context, userID primitive.ObjectID) (models.DonationStatus, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repositories.ErrNotFound) {
		return "", apperrors.NotFound("User not found")
	}
	if err != nil {
		return "", err
	}

	if user.NextEligibleDate != nil && !s.now().Before(*user.NextEligibleDate) {
		if err := s.userRepo.ClearCooldown(ctx, userID); err != nil {
			return "", err
		}
		return models.DonationActive, nil
	}

	return user.DonationStatus, nil
}

// MarkDonationCompleted starts the donor's cooldown: status inactive,
// lastDonationDate now, nextEligibleDate now plus the cooldown window.
// Called exactly once per completed donation.
func (s *EligibilityService) MarkDonationCompleted(ctx context.Context, userID primitive.ObjectID) error {
	now := s.now()
	return s.userRepo.MarkDonated(ctx, userID, now, now.AddDate(0, 0, DonationCooldownDays))
}

// ResponseCompleted implements DonationListener. The failure is logged
// and swallowed so the response transition that triggered it stands.
func (s *EligibilityService) ResponseCompleted(ctx context.Context, donorID primitive.ObjectID) {
	if err := s.MarkDonationCompleted(ctx, donorID); err != nil {
		log.Printf("[WARN] eligibility: failed to start cooldown for donor %s after completed response: %v", donorID.Hex(), err)
	}
}

// RegistrationApproved implements DonationListener.
func (s *EligibilityService) RegistrationApproved(ctx context.Context, userID primitive.ObjectID) {
	if err := s.MarkDonationCompleted(ctx, userID); err != nil {
		log.Printf("[WARN] eligibility: failed to start cooldown for user %s after approved registration: %v", userID.Hex(), err)
	}
}

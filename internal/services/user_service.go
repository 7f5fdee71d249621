package services

import (
	"context"
	"errors"

	"github.com/bloodlink/bloodlink-backend/internal/apperrors"
	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/bloodlink/bloodlink-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService handles user-related business logic
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// GetUserByID retrieves a user by ID
func (s *UserService) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.NotFound("User not found")
	}
	return user, err
}

// GetAllUsers retrieves users with pagination
func (s *UserService) GetAllUsers(ctx context.Context, page, limit int) ([]*models.User, error) {
	return s.userRepo.FindAll(ctx, page, limit)
}

// UpdateProfile applies a partial profile update to the user's own
// account. Empty fields keep the stored value.
func (s *UserService) UpdateProfile(ctx context.Context, id primitive.ObjectID, req *models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.NotFound("User not found")
	}
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.BloodType != "" {
		if !models.IsValidBloodType(req.BloodType) {
			return nil, apperrors.Validation("Invalid blood type")
		}
		user.BloodType = req.BloodType
	}
	if req.Address != "" {
		user.Address = req.Address
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes an account. Admin only.
func (s *UserService) DeleteUser(ctx context.Context, actorRole string, id primitive.ObjectID) error {
	if actorRole != models.RoleAdmin {
		return apperrors.Forbidden("Only admins can delete users")
	}
	err := s.userRepo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.NotFound("User not found")
	}
	return err
}

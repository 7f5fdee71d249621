package services

import (
	"context"
	"errors"

	"github.com/bloodlink/bloodlink-backend/internal/apperrors"
	"github.com/bloodlink/bloodlink-backend/internal/config"
	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/bloodlink/bloodlink-backend/internal/repositories"
	"github.com/bloodlink/bloodlink-backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration and login
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// Register creates a new account. Required fields depend on the role.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	if !models.IsValidRole(req.Role) {
		return nil, apperrors.Validation("Invalid role")
	}
	switch req.Role {
	case models.RoleUser, models.RoleAdmin:
		if req.Name == "" {
			return nil, apperrors.Validation("Name is required")
		}
	case models.RoleOrganisation:
		if req.OrganisationName == "" || req.OrganisationID == "" {
			return nil, apperrors.Validation("Organisation name and ID are required")
		}
	case models.RoleHospital:
		if req.HospitalName == "" || req.HospitalID == "" {
			return nil, apperrors.Validation("Hospital name and ID are required")
		}
	}
	if req.BloodType != "" && !models.IsValidBloodType(req.BloodType) {
		return nil, apperrors.Validation("Invalid blood type")
	}

	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.Conflict("User with this email already exists")
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Role:             req.Role,
		Name:             req.Name,
		OrganisationName: req.OrganisationName,
		HospitalName:     req.HospitalName,
		Email:            req.Email,
		Password:         string(hashedPassword),
		Phone:            req.Phone,
		OrganisationID:   req.OrganisationID,
		HospitalID:       req.HospitalID,
		BloodType:        req.BloodType,
		Address:          req.Address,
		DonationStatus:   models.DonationActive,
	}
	err = s.userRepo.Create(ctx, user)
	if errors.Is(err, repositories.ErrDuplicate) {
		return nil, apperrors.Conflict("User with this email already exists")
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and returns a signed JWT plus the account.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (string, *models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if errors.Is(err, repositories.ErrNotFound) {
		return "", nil, apperrors.Unauthorized("Invalid email or password")
	}
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", nil, apperrors.Unauthorized("Invalid email or password")
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Role, s.cfg)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

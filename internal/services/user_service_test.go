package services

import (
	"context"
	"testing"

	"github.com/bloodlink/bloodlink-backend/internal/apperrors"
	"github.com/bloodlink/bloodlink-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGetUserByIDNotFound(t *testing.T) {
	s := NewUserService(newFakeUserRepo())

	_, err := s.GetUserByID(context.Background(), primitive.NewObjectID())
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

func TestUpdateProfilePartial(t *testing.T) {
	userRepo := newFakeUserRepo()
	id := userRepo.add(&models.User{
		Role:      models.RoleUser,
		Name:      "Ada",
		Phone:     "08030000000",
		BloodType: "O+",
		Address:   "Lagos",
	})
	s := NewUserService(userRepo)

	user, err := s.UpdateProfile(context.Background(), id, &models.UpdateProfileRequest{Phone: "08039999999"})
	require.NoError(t, err)
	assert.Equal(t, "08039999999", user.Phone)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "O+", user.BloodType)

	_, err = s.UpdateProfile(context.Background(), id, &models.UpdateProfileRequest{BloodType: "Z+"})
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
}

func TestDeleteUserAdminOnly(t *testing.T) {
	userRepo := newFakeUserRepo()
	id := userRepo.add(&models.User{Role: models.RoleUser, Name: "Ada"})
	s := NewUserService(userRepo)

	err := s.DeleteUser(context.Background(), models.RoleHospital, id)
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))

	require.NoError(t, s.DeleteUser(context.Background(), models.RoleAdmin, id))

	err = s.DeleteUser(context.Background(), models.RoleAdmin, id)
	assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
}

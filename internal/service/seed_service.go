package service

import (
	"context"
	"fmt"
	"strings"

	"hospital-emr-backend/internal/apperr"
	"hospital-emr-backend/internal/models"
	"hospital-emr-backend/pkg/utils"

	"go.uber.org/zap"
)

// SeedUserInput describes a user created by the operator CLI.
type SeedUserInput struct {
	HospitalID uint
	Name       string
	Email      string
	Role       models.Role
	Password   string
}

type SeedService struct {
	users     UserStore
	hospitals HospitalStore
	log       *zap.Logger
}

func NewSeedService(users UserStore, hospitals HospitalStore, log *zap.Logger) *SeedService {
	return &SeedService{
		users:     users,
		hospitals: hospitals,
		log:       log,
	}
}

// SeedUser hashes the password and upserts the user keyed by email.
func (s *SeedService) SeedUser(ctx context.Context, in SeedUserInput) (*models.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Name = strings.TrimSpace(in.Name)

	switch {
	case in.Email == "":
		return nil, apperr.Validation("email is required")
	case in.Name == "":
		return nil, apperr.Validation("name is required")
	case !in.Role.Valid():
		return nil, apperr.Validation(fmt.Sprintf("invalid role %q", in.Role))
	}
	if err := utils.ValidatePassword(in.Password); err != nil {
		return nil, apperr.Validation(err.Error())
	}

	if _, err := s.hospitals.GetHospitalByID(ctx, in.HospitalID); err != nil {
		return nil, err
	}

	s.log.Info("hashing password", zap.String("email", in.Email))
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		HospitalID:   in.HospitalID,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
		Active:       true,
	}
	if err := s.users.UpsertUserByEmail(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("user upserted",
		zap.Uint("hospital_id", in.HospitalID),
		zap.String("email", in.Email),
		zap.String("role", string(in.Role)),
	)
	return user, nil
}

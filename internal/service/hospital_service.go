package service

import (
	"context"

	"hospital-emr-backend/internal/models"
)

type HospitalService struct {
	hospitals HospitalStore
}

func NewHospitalService(hospitals HospitalStore) *HospitalService {
	return &HospitalService{hospitals: hospitals}
}

// GetTheme returns the branding of a hospital. Callers enforce tenant access.
func (s *HospitalService) GetTheme(ctx context.Context, hospitalID uint) (*models.HospitalTheme, error) {
	return s.hospitals.GetTheme(ctx, hospitalID)
}

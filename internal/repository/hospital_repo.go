package repository

import (
	"context"
	"errors"

	"hospital-emr-backend/internal/apperr"
	"hospital-emr-backend/internal/models"

	"gorm.io/gorm"
)

type HospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepo(db *gorm.DB) *HospitalRepository {
	return &HospitalRepository{db: db}
}

// GetHospitalByID retrieves an active hospital by ID
func (r *HospitalRepository) GetHospitalByID(ctx context.Context, id uint) (*models.Hospital, error) {
	var hospital models.Hospital
	err := r.db.WithContext(ctx).Where("id = ? AND is_active = ?", id, true).First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("hospital not found")
		}
		return nil, apperr.Upstream("find hospital", err)
	}
	return &hospital, nil
}

// GetTheme selects only the branding columns of an active hospital.
func (r *HospitalRepository) GetTheme(ctx context.Context, id uint) (*models.HospitalTheme, error) {
	var theme models.HospitalTheme
	err := r.db.WithContext(ctx).
		Model(&models.Hospital{}).
		Select("id", "name", "logo_url", "primary_color", "secondary_color", "tagline").
		Where("id = ? AND is_active = ?", id, true).
		Take(&theme).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("hospital not found")
		}
		return nil, apperr.Upstream("find hospital theme", err)
	}
	return &theme, nil
}

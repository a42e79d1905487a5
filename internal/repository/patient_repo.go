package repository

import (
	"context"
	"errors"

	"hospital-emr-backend/internal/apperr"
	"hospital-emr-backend/internal/models"

	"gorm.io/gorm"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepo(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// GetPatientByUserID loads the patient record linked to a user, with HMO and
// corporate client.
func (r *PatientRepository) GetPatientByUserID(ctx context.Context, hospitalID, userID uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND hospital_id = ?", userID, hospitalID).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "hospital_id", "name", "email", "role", "active")
		}).
		Preload("HMO").
		Preload("CorporateClient").
		First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("patient record not found")
		}
		return nil, apperr.Upstream("find patient", err)
	}
	return &patient, nil
}

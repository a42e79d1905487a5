package repository

import (
	"context"
	"errors"

	"hospital-emr-backend/internal/apperr"
	"hospital-emr-backend/internal/models"

	"gorm.io/gorm"
)

type AdmissionRepository struct {
	db *gorm.DB
}

func NewAdmissionRepo(db *gorm.DB) *AdmissionRepository {
	return &AdmissionRepository{db: db}
}

// GetAdmission retrieves an admission of a hospital by ID
func (r *AdmissionRepository) GetAdmission(ctx context.Context, hospitalID, id uint) (*models.Admission, error) {
	var admission models.Admission
	err := r.db.WithContext(ctx).
		Where("id = ? AND hospital_id = ?", id, hospitalID).
		First(&admission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("admission not found")
		}
		return nil, apperr.Upstream("find admission", err)
	}
	return &admission, nil
}

// SaveDischarge writes the discharge fields of admission if its stored
// version still equals admission.Version, then bumps the version in place.
// It returns false when another writer got there first.
func (r *AdmissionRepository) SaveDischarge(ctx context.Context, admission *models.Admission) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Admission{}).
		Where("id = ? AND hospital_id = ? AND version = ?", admission.ID, admission.HospitalID, admission.Version).
		Updates(map[string]interface{}{
			"status":                 admission.Status,
			"discharge_date":         admission.DischargeDate,
			"discharge_summary":      admission.DischargeSummary,
			"follow_up_instructions": admission.FollowUpInstructions,
			"discharged_by":          admission.DischargedBy,
			"version":                gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return false, apperr.Upstream("update admission", res.Error)
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	admission.Version++
	return true, nil
}

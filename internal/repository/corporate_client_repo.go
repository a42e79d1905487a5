package repository

import (
	"context"

	"hospital-emr-backend/internal/apperr"
	"hospital-emr-backend/internal/models"

	"gorm.io/gorm"
)

type CorporateClientRepository struct {
	db *gorm.DB
}

func NewCorporateClientRepo(db *gorm.DB) *CorporateClientRepository {
	return &CorporateClientRepository{db: db}
}

// ListActive retrieves active corporate clients of a hospital by name
func (r *CorporateClientRepository) ListActive(ctx context.Context, hospitalID uint) ([]models.CorporateClient, error) {
	clients := []models.CorporateClient{}
	err := r.db.WithContext(ctx).
		Where("hospital_id = ? AND active = ?", hospitalID, true).
		Order("name ASC").
		Find(&clients).Error
	if err != nil {
		return nil, apperr.Upstream("list corporate clients", err)
	}
	return clients, nil
}

package repository

import (
	"context"

	"hospital-emr-backend/internal/models"

	"gorm.io/gorm"
)

type SurveyRepository struct {
	db *gorm.DB
}

func NewSurveyRepo(db *gorm.DB) *SurveyRepository {
	return &SurveyRepository{db: db}
}

// TablesPresent probes the schema for each survey table.
func (r *SurveyRepository) TablesPresent(ctx context.Context) map[string]bool {
	migrator := r.db.WithContext(ctx).Migrator()
	return map[string]bool{
		models.Survey{}.TableName():         migrator.HasTable(&models.Survey{}),
		models.SurveyQuestion{}.TableName(): migrator.HasTable(&models.SurveyQuestion{}),
		models.SurveyResponse{}.TableName(): migrator.HasTable(&models.SurveyResponse{}),
		models.SurveyAnswer{}.TableName():   migrator.HasTable(&models.SurveyAnswer{}),
	}
}

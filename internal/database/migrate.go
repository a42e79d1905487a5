package database

import (
	"fmt"

	"hospital-emr-backend/internal/models"

	"gorm.io/gorm"
)

// coreModels are migrated in every deployment.
var coreModels = []interface{}{
	&models.Hospital{},
	&models.User{},
	&models.RefreshToken{},
	&models.HMO{},
	&models.CorporateClient{},
	&models.Patient{},
	&models.Admission{},
	&models.ChatMessage{},
	&models.ChatAttachment{},
	&models.AuditLog{},
}

// surveyModels are optional; some deployments never create them.
var surveyModels = []interface{}{
	&models.Survey{},
	&models.SurveyQuestion{},
	&models.SurveyResponse{},
	&models.SurveyAnswer{},
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB, withSurveys bool) error {
	set := coreModels
	if withSurveys {
		set = append(append([]interface{}{}, coreModels...), surveyModels...)
	}
	if err := db.AutoMigrate(set...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

package service

import (
	"context"

	"hospital-emr-backend/internal/models"
)

type SurveyService struct {
	surveys SurveyStore
}

func NewSurveyService(surveys SurveyStore) *SurveyService {
	return &SurveyService{surveys: surveys}
}

// CheckTables reports whether the survey feature's tables are installed.
func (s *SurveyService) CheckTables(ctx context.Context) models.SurveyTableStatus {
	tables := s.surveys.TablesPresent(ctx)
	status := models.SurveyTableStatus{Exists: len(tables) > 0, Tables: tables}
	for _, present := range tables {
		if !present {
			status.Exists = false
		}
	}
	return status
}

package handler

import (
	"hospital-emr-backend/internal/service"
	"hospital-emr-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type SurveyHandler struct {
	surveyService *service.SurveyService
}

func NewSurveyHandler(surveyService *service.SurveyService) *SurveyHandler {
	return &SurveyHandler{surveyService: surveyService}
}

// CheckTables handles GET /api/surveys/tables
func (h *SurveyHandler) CheckTables(c *gin.Context) {
	utils.SuccessResponse(c, h.surveyService.CheckTables(c.Request.Context()))
}

package handler

import (
	"hospital-emr-backend/internal/service"
	"hospital-emr-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PatientHandler struct {
	patientService *service.PatientService
	log            *zap.Logger
}

func NewPatientHandler(patientService *service.PatientService, log *zap.Logger) *PatientHandler {
	return &PatientHandler{
		patientService: patientService,
		log:            log,
	}
}

// Me handles GET /api/patients/me
func (h *PatientHandler) Me(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	patient, err := h.patientService.Current(c.Request.Context(), session)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	utils.SuccessResponse(c, patient)
}

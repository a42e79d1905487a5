package handler

import (
	"hospital-emr-backend/internal/service"
	"hospital-emr-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HospitalHandler struct {
	hospitalService *service.HospitalService
	log             *zap.Logger
}

func NewHospitalHandler(hospitalService *service.HospitalService, log *zap.Logger) *HospitalHandler {
	return &HospitalHandler{
		hospitalService: hospitalService,
		log:             log,
	}
}

// GetTheme handles GET /api/hospitals/:id/theme. Tenant access is checked
// by middleware.RequireOwnHospital before this runs.
func (h *HospitalHandler) GetTheme(c *gin.Context) {
	id, ok := parseID(c, "id", "hospital")
	if !ok {
		return
	}

	theme, err := h.hospitalService.GetTheme(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	utils.SuccessResponse(c, theme)
}

package handler

import (
	"net/http"
	"strings"
	"time"

	"hospital-emr-backend/internal/service"
	"hospital-emr-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdmissionHandler struct {
	admissionService *service.AdmissionService
	log              *zap.Logger
}

func NewAdmissionHandler(admissionService *service.AdmissionService, log *zap.Logger) *AdmissionHandler {
	return &AdmissionHandler{
		admissionService: admissionService,
		log:              log,
	}
}

type DischargeRequest struct {
	DischargeSummary     string `json:"dischargeSummary"`
	FollowUpInstructions string `json:"followUpInstructions"`
	DischargeDate        string `json:"dischargeDate"`
}

const dateOnlyLayout = "2006-01-02"

// dischargeDateLayouts are tried in order for dischargeDate.
var dischargeDateLayouts = []string{time.RFC3339, "2006-01-02T15:04", dateOnlyLayout}

// parseDischargeDate reports the parsed time and whether value carried a
// calendar day only.
func parseDischargeDate(value string) (date *time.Time, dateOnly bool, ok bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, false, true
	}
	for _, layout := range dischargeDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, layout == dateOnlyLayout, true
		}
	}
	return nil, false, false
}

// Discharge handles PUT /api/admissions/:id/discharge
func (h *AdmissionHandler) Discharge(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "admission")
	if !ok {
		return
	}

	var req DischargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	date, dateOnly, ok := parseDischargeDate(req.DischargeDate)
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "dischargeDate must be an ISO 8601 date")
		return
	}

	admission, err := h.admissionService.Discharge(c.Request.Context(), session, id, service.DischargeInput{
		Summary:              req.DischargeSummary,
		FollowUpInstructions: req.FollowUpInstructions,
		Date:                 date,
		DateOnly:             dateOnly,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	utils.SuccessResponse(c, admission)
}

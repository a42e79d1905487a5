package handler

import (
	"hospital-emr-backend/internal/service"
	"hospital-emr-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DirectoryHandler struct {
	directoryService *service.DirectoryService
	log              *zap.Logger
}

func NewDirectoryHandler(directoryService *service.DirectoryService, log *zap.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		directoryService: directoryService,
		log:              log,
	}
}

// ListStaff handles GET /api/staff?role=&search=
func (h *DirectoryHandler) ListStaff(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	staff, err := h.directoryService.ListStaff(c.Request.Context(), session, c.Query("role"), c.Query("search"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	utils.SuccessResponse(c, staff)
}

// ListDoctors handles GET /api/users/doctors
func (h *DirectoryHandler) ListDoctors(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	doctors, err := h.directoryService.ListDoctors(c.Request.Context(), session)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	utils.SuccessResponse(c, doctors)
}

// ListLabScientists handles GET /api/users/lab-scientists
func (h *DirectoryHandler) ListLabScientists(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	scientists, err := h.directoryService.ListLabScientists(c.Request.Context(), session)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	utils.SuccessResponse(c, scientists)
}

// Deactivate handles PATCH /api/users/:id/deactivate
func (h *DirectoryHandler) Deactivate(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "user")
	if !ok {
		return
	}

	if err := h.directoryService.Deactivate(c.Request.Context(), session, id); err != nil {
		writeError(c, h.log, err)
		return
	}

	utils.MessageResponse(c, "User deactivated")
}

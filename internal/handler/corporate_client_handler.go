package handler

import (
	"hospital-emr-backend/internal/service"
	"hospital-emr-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CorporateClientHandler struct {
	clientService *service.CorporateClientService
	log           *zap.Logger
}

func NewCorporateClientHandler(clientService *service.CorporateClientService, log *zap.Logger) *CorporateClientHandler {
	return &CorporateClientHandler{
		clientService: clientService,
		log:           log,
	}
}

// List handles GET /api/corporate-clients
func (h *CorporateClientHandler) List(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	clients, err := h.clientService.ListActive(c.Request.Context(), session)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	utils.SuccessResponse(c, clients)
}

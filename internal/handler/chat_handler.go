package handler

import (
	"net/http"

	"hospital-emr-backend/internal/service"
	"hospital-emr-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chatService *service.ChatService
	log         *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, log *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		log:         log,
	}
}

type LinkAttachmentRequest struct {
	MessageID uint `json:"messageId"`
}

// LinkAttachment handles PATCH /api/chat/attachments/:id
func (h *ChatHandler) LinkAttachment(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id", "attachment")
	if !ok {
		return
	}

	var req LinkAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	attachment, err := h.chatService.LinkAttachment(c.Request.Context(), session, id, req.MessageID)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	utils.SuccessResponse(c, attachment)
}

// ListUsers handles GET /api/chat/users
func (h *ChatHandler) ListUsers(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}

	users, err := h.chatService.ListUsers(c.Request.Context(), session, c.Query("search"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	utils.SuccessResponse(c, users)
}

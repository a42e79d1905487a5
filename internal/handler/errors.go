package handler

import (
	"net/http"
	"strconv"

	"hospital-emr-backend/internal/apperr"
	"hospital-emr-backend/internal/middleware"
	"hospital-emr-backend/internal/models"
	"hospital-emr-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeError maps err onto the JSON error envelope. Unclassified and
// upstream failures are logged and reported without detail.
func writeError(c *gin.Context, log *zap.Logger, err error) {
	status, message := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	utils.ErrorResponse(c, status, message)
}

// sessionOrAbort returns the session set by the auth middleware.
func sessionOrAbort(c *gin.Context) (models.Session, bool) {
	session, ok := middleware.GetSession(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return models.Session{}, false
	}
	return session, true
}

// parseID reads a positive numeric path parameter.
func parseID(c *gin.Context, param, label string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid "+label+" ID")
		return 0, false
	}
	return uint(id), true
}

package middleware

import (
	"context"
	"net/http"

	"hospital-emr-backend/internal/apperr"
	"hospital-emr-backend/internal/models"
	"hospital-emr-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AccountChecker confirms that the account behind a session may still act.
type AccountChecker interface {
	EnsureActive(ctx context.Context, session models.Session) error
}

// RequireActiveAccount re-reads the caller's account so a deactivated user
// cannot write with an access token issued before deactivation. Must run
// after AuthMiddleware.
func RequireActiveAccount(checker AccountChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSession(c)
		if !ok {
			utils.AbortWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		if err := checker.EnsureActive(c.Request.Context(), session); err != nil {
			status, msg := apperr.HTTPStatus(err)
			utils.AbortWithError(c, status, msg)
			return
		}

		c.Next()
	}
}

package middleware

import (
	"net/http"
	"strings"

	"hospital-emr-backend/internal/models"
	"hospital-emr-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

const (
	// ContextKeySession holds the models.Session of the caller.
	ContextKeySession = "session"

	// AccessTokenCookie carries the access token for browser pages.
	AccessTokenCookie = "access_token"
)

// ResolveSession reads the access token from the Authorization header, or
// from the access token cookie when no header is sent, and validates it.
func ResolveSession(c *gin.Context) (models.Session, bool) {
	token := ""
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return models.Session{}, false
		}
		token = strings.TrimSpace(parts[1])
	} else if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
		token = cookie
	}
	if token == "" {
		return models.Session{}, false
	}

	claims, err := utils.ValidateAccessToken(token)
	if err != nil {
		return models.Session{}, false
	}
	session := claims.Session()
	if session.UserID == 0 || !session.Role.Valid() {
		return models.Session{}, false
	}
	return session, true
}

// AuthMiddleware rejects requests without a valid session and stores the
// session for the handlers after it.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := ResolveSession(c)
		if !ok {
			utils.AbortWithError(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		c.Set(ContextKeySession, session)
		c.Next()
	}
}

// GetSession returns the session stored by AuthMiddleware.
func GetSession(c *gin.Context) (models.Session, bool) {
	val, exists := c.Get(ContextKeySession)
	if !exists {
		return models.Session{}, false
	}
	session, ok := val.(models.Session)
	return session, ok
}

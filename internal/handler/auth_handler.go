package handler

import (
	"net/http"

	"hospital-emr-backend/internal/middleware"
	"hospital-emr-backend/internal/service"
	"hospital-emr-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const refreshTokenCookie = "refresh_token"

type AuthHandler struct {
	authService  *service.AuthService
	secureCookie bool
	log          *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, secureCookie bool, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		secureCookie: secureCookie,
		log:          log,
	}
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// setSessionCookies stores both tokens as HttpOnly cookies. The access token
// cookie is what the dashboard reads.
func (h *AuthHandler) setSessionCookies(c *gin.Context, res *service.LoginResult) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.AccessTokenCookie,
		res.AccessToken,
		int(utils.GetAccessTokenExpiry().Seconds()),
		"/",
		"",
		h.secureCookie,
		true,
	)
	if res.RefreshToken != "" {
		c.SetCookie(
			refreshTokenCookie,
			res.RefreshToken,
			int(utils.GetRefreshTokenExpiry().Seconds()),
			"/",
			"",
			h.secureCookie,
			true,
		)
	}
}

func (h *AuthHandler) clearSessionCookies(c *gin.Context) {
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", h.secureCookie, true)
	c.SetCookie(refreshTokenCookie, "", -1, "/", "", h.secureCookie, true)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "email and password are required")
		return
	}

	res, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	h.setSessionCookies(c, res)
	utils.SuccessResponse(c, res)
}

// Refresh handles POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshTokenCookie)
	if err != nil || refreshToken == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Refresh token not found")
		return
	}

	res, err := h.authService.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	// The refresh cookie keeps its original expiry.
	res.RefreshToken = ""
	h.setSessionCookies(c, res)
	utils.SuccessResponse(c, res)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshTokenCookie)
	if err == nil && refreshToken != "" {
		if err := h.authService.Logout(c.Request.Context(), refreshToken); err != nil {
			writeError(c, h.log, err)
			return
		}
	}

	h.clearSessionCookies(c)
	utils.MessageResponse(c, "Logged out successfully")
}

// Session handles GET /api/auth/session
func (h *AuthHandler) Session(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	utils.SuccessResponse(c, gin.H{"user": session})
}

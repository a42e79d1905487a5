package handler

import (
	"net/http"

	"hospital-emr-backend/internal/apperr"
	"hospital-emr-backend/internal/middleware"
	"hospital-emr-backend/internal/models"
	"hospital-emr-backend/internal/service"
	"hospital-emr-backend/internal/web"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PageHandler serves the server-rendered login form and dashboard shell.
type PageHandler struct {
	auth            *AuthHandler
	hospitalService *service.HospitalService
	log             *zap.Logger
}

func NewPageHandler(auth *AuthHandler, hospitalService *service.HospitalService, log *zap.Logger) *PageHandler {
	return &PageHandler{
		auth:            auth,
		hospitalService: hospitalService,
		log:             log,
	}
}

// LoginForm handles GET /login
func (h *PageHandler) LoginForm(c *gin.Context) {
	if _, ok := middleware.ResolveSession(c); ok {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "login.html", web.NewLoginPage("", ""))
}

// Login handles POST /login
func (h *PageHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", web.NewLoginPage(c.PostForm("email"), "Email and password are required"))
		return
	}

	res, err := h.auth.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		status, message := apperr.HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			h.log.Error("page login failed", zap.Error(err))
			message = "Sign in is unavailable, try again later"
		} else {
			message = "Invalid email or password"
		}
		c.HTML(status, "login.html", web.NewLoginPage(req.Email, message))
		return
	}

	h.auth.setSessionCookies(c, res)
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout handles POST /logout
func (h *PageHandler) Logout(c *gin.Context) {
	if refreshToken, err := c.Cookie(refreshTokenCookie); err == nil && refreshToken != "" {
		if err := h.auth.authService.Logout(c.Request.Context(), refreshToken); err != nil {
			h.log.Warn("revoke refresh token on page logout", zap.Error(err))
		}
	}
	h.auth.clearSessionCookies(c)
	c.Redirect(http.StatusFound, "/login")
}

// Dashboard handles GET /dashboard. Callers without a session are sent to
// the login page and nothing else runs.
func (h *PageHandler) Dashboard(c *gin.Context) {
	session, ok := middleware.ResolveSession(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", h.dashboardPage(c, session))
}

func (h *PageHandler) dashboardPage(c *gin.Context, session models.Session) web.DashboardPage {
	theme := models.HospitalTheme{ID: session.HospitalID, Name: session.HospitalName}
	if found, err := h.hospitalService.GetTheme(c.Request.Context(), session.HospitalID); err == nil {
		theme = *found
	} else {
		h.log.Warn("dashboard theme lookup failed",
			zap.Uint("hospital_id", session.HospitalID),
			zap.Error(err),
		)
	}

	return web.DashboardPage{
		Session:    web.DashboardUser{Name: session.Name, Role: string(session.Role)},
		Hospital:   theme.Name,
		LogoURL:    theme.LogoURL,
		Tagline:    theme.Tagline,
		Navigation: web.NavigationFor(session.Role),
		Palette:    web.ThemeColors(theme),
	}
}

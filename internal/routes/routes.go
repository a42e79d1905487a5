// Package routes wires middleware and handlers onto the gin engine.
package routes

import (
	"net/http"

	"hospital-emr-backend/internal/authz"
	"hospital-emr-backend/internal/config"
	"hospital-emr-backend/internal/handler"
	"hospital-emr-backend/internal/middleware"
	"hospital-emr-backend/internal/realtime"
	"hospital-emr-backend/internal/service"
	"hospital-emr-backend/internal/web"
	"hospital-emr-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Services are the application services the routes dispatch to.
type Services struct {
	Auth            *service.AuthService
	Admission       *service.AdmissionService
	Chat            *service.ChatService
	Directory       *service.DirectoryService
	Hospital        *service.HospitalService
	Patient         *service.PatientService
	CorporateClient *service.CorporateClientService
	Survey          *service.SurveyService

	// Events enables the chat websocket stream when set.
	Events *realtime.Hub
}

// Options carries the cross-cutting settings of the router.
type Options struct {
	Log          *zap.Logger
	CORS         config.CORSConfig
	SecureCookie bool
	LoginLimiter *middleware.IPRateLimiter
}

// Setup registers every page and API route on r.
func Setup(r *gin.Engine, svc Services, opts Options) error {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	if err := web.Install(r); err != nil {
		return err
	}

	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS(opts.CORS))

	authHandler := handler.NewAuthHandler(svc.Auth, opts.SecureCookie, log)
	pageHandler := handler.NewPageHandler(authHandler, svc.Hospital, log)
	admissionHandler := handler.NewAdmissionHandler(svc.Admission, log)
	chatHandler := handler.NewChatHandler(svc.Chat, log)
	directoryHandler := handler.NewDirectoryHandler(svc.Directory, log)
	hospitalHandler := handler.NewHospitalHandler(svc.Hospital, log)
	patientHandler := handler.NewPatientHandler(svc.Patient, log)
	clientHandler := handler.NewCorporateClientHandler(svc.CorporateClient, log)
	surveyHandler := handler.NewSurveyHandler(svc.Survey)

	loginGuard := func(c *gin.Context) { c.Next() }
	if opts.LoginLimiter != nil {
		loginGuard = middleware.RateLimitMiddleware(opts.LoginLimiter)
	}

	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "hospital-emr-backend",
		})
	})

	// Pages
	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/dashboard") })
	r.GET("/login", pageHandler.LoginForm)
	r.POST("/login", loginGuard, pageHandler.Login)
	r.POST("/logout", pageHandler.Logout)
	r.GET("/dashboard", pageHandler.Dashboard)

	api := r.Group("/api")

	// Auth routes (public)
	auth := api.Group("/auth")
	{
		auth.POST("/login", loginGuard, authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/session", middleware.AuthMiddleware(), authHandler.Session)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	activeAccount := middleware.RequireActiveAccount(svc.Auth)
	{
		protected.PUT("/admissions/:id/discharge", middleware.RequireCapability(authz.DischargeAdmission), activeAccount, admissionHandler.Discharge)

		protected.PATCH("/chat/attachments/:id", middleware.RequireCapability(authz.LinkChatAttachment), activeAccount, chatHandler.LinkAttachment)
		protected.GET("/chat/users", middleware.RequireCapability(authz.ListChatUsers), chatHandler.ListUsers)
		if svc.Events != nil {
			streamHandler := handler.NewChatStreamHandler(svc.Events, opts.CORS.AllowedOrigins, log)
			protected.GET("/chat/ws", middleware.RequireCapability(authz.ListChatUsers), activeAccount, streamHandler.Stream)
		}

		protected.GET("/corporate-clients", middleware.RequireCapability(authz.ListCorporateClients), clientHandler.List)

		protected.GET("/hospitals/:id/theme",
			middleware.RequireCapability(authz.ViewHospitalTheme),
			middleware.RequireOwnHospital("id"),
			hospitalHandler.GetTheme,
		)

		protected.GET("/patients/me", middleware.RequireCapability(authz.ViewOwnPatient), patientHandler.Me)

		protected.GET("/staff", middleware.RequireCapability(authz.ListStaff), directoryHandler.ListStaff)

		protected.GET("/surveys/tables", middleware.RequireCapability(authz.CheckSurveyTables), surveyHandler.CheckTables)

		protected.GET("/users/doctors", middleware.RequireCapability(authz.ListDoctors), directoryHandler.ListDoctors)
		protected.GET("/users/lab-scientists", middleware.RequireCapability(authz.ListLabScientists), directoryHandler.ListLabScientists)
		protected.PATCH("/users/:id/deactivate", middleware.RequireCapability(authz.DeactivateUser), activeAccount, directoryHandler.Deactivate)

		protected.GET("/subscription-plans", middleware.RequireCapability(authz.ListPlans), handler.ListPlans)
	}

	return nil
}

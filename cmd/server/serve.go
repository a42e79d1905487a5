package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"hospital-emr-backend/internal/database"
	"hospital-emr-backend/internal/middleware"
	"hospital-emr-backend/internal/realtime"
	"hospital-emr-backend/internal/repository"
	"hospital-emr-backend/internal/routes"
	"hospital-emr-backend/internal/service"
	"hospital-emr-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	db, err := database.Connect(cfg, log)
	if err != nil {
		return err
	}
	defer database.Close(db, log)

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db, cfg.Database.SurveysEnabled); err != nil {
			return err
		}
		log.Info("database migrated", zap.Bool("surveys", cfg.Database.SurveysEnabled))
	}

	userRepo := repository.NewUserRepo(db)
	auditRepo := repository.NewAuditRepo(db)
	hospitalRepo := repository.NewHospitalRepo(db)
	hub := realtime.NewHub(log)

	svc := routes.Services{
		Auth:            service.NewAuthService(userRepo, auditRepo, log),
		Admission:       service.NewAdmissionService(repository.NewAdmissionRepo(db), log),
		Chat:            service.NewChatService(repository.NewChatRepo(db), userRepo, hub, log),
		Directory:       service.NewDirectoryService(userRepo, auditRepo, log),
		Hospital:        service.NewHospitalService(hospitalRepo),
		Patient:         service.NewPatientService(repository.NewPatientRepo(db)),
		CorporateClient: service.NewCorporateClientService(repository.NewCorporateClientRepo(db)),
		Survey:          service.NewSurveyService(repository.NewSurveyRepo(db)),
		Events:          hub,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimit.LoginRPS), cfg.RateLimit.LoginBurst)
	go limiter.Run(ctx)

	gin.SetMode(cfg.Server.GinMode)
	r := gin.New()
	if err := routes.Setup(r, svc, routes.Options{
		Log:          log,
		CORS:         cfg.CORS,
		SecureCookie: cfg.Server.SecureCookie,
		LoginLimiter: limiter,
	}); err != nil {
		return fmt.Errorf("setup routes: %w", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", zap.String("port", cfg.Server.Port), zap.String("env", cfg.Server.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}

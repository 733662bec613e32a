// Package main provides the main entry point for the call plan review system
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/digitally-distinct/call-plan-system/app/handlers"
	"github.com/digitally-distinct/call-plan-system/app/middleware"
	"github.com/digitally-distinct/call-plan-system/app/router"
	"github.com/digitally-distinct/call-plan-system/app/services"
	businessflow "github.com/digitally-distinct/call-plan-system/business_flow"
	"github.com/digitally-distinct/call-plan-system/config"
	"github.com/digitally-distinct/call-plan-system/repository"
)

// Application represents the main application structure
type Application struct {
	router *router.FiberRouter
	config *config.ProductionConfig
	server *fiber.App
}

func main() {
	log.Println("Starting call plan system...")

	// Load production configuration
	cfg, err := config.LoadProductionConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogging(cfg.Logging)

	// Initialize application
	app, err := initializeApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	// Setup routes
	app.router.SetupRoutes()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start server in goroutine
	go func() {
		address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		log.Printf("Server starting on %s", address)

		if err := app.server.Listen(address); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-sigChan
	log.Println("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := app.server.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server stopped")
}

// setupLogging directs the standard logger to stdout, a rotating file, or both
func setupLogging(cfg config.LoggingConfig) {
	if cfg.Output == "stdout" || cfg.FilePath == "" {
		return
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}

	switch cfg.Output {
	case "file":
		log.SetOutput(rotator)
	case "both":
		log.SetOutput(io.MultiWriter(os.Stdout, rotator))
	}
}

// initializeApplication initializes the main application components
func initializeApplication(cfg *config.ProductionConfig) (*Application, error) {
	// Initialize repositories with the built-in demo dataset
	userRepo := repository.NewUserRepository(repository.SeedUsers())
	sessionRepo := repository.NewUserSessionRepository()
	auditRepo := repository.NewAuditLogRepository()
	referenceRepo := repository.NewReferenceRepository(repository.SeedReferenceRecords())
	workspaceRepo := repository.NewWorkspaceRepository(repository.SeedCustomerRecords)

	// Initialize token service
	tokenService, err := services.NewTokenService(
		cfg.JWT.AccessTokenTTL,
		cfg.JWT.RefreshTokenTTL,
		cfg.JWT.Issuer,
		cfg.JWT.Audience,
		cfg.JWT.UseRSAKeys,
		cfg.JWT.PrivateKey,
		cfg.JWT.PublicKey,
		cfg.JWT.SecretKey,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}

	log.Printf("Token service initialized with issuer: %s, audience: %s", cfg.JWT.Issuer, cfg.JWT.Audience)

	// Initialize flows
	signupFlow := businessflow.NewSignupFlow(userRepo, auditRepo)

	loginFlow := businessflow.NewLoginFlow(
		userRepo,
		sessionRepo,
		auditRepo,
		workspaceRepo,
		tokenService,
	)

	planFlow := businessflow.NewPlanFlow(workspaceRepo, referenceRepo, auditRepo)
	summaryFlow := businessflow.NewSummaryFlow(workspaceRepo)
	referenceFlow := businessflow.NewReferenceFlow(referenceRepo, workspaceRepo)
	exportFlow := businessflow.NewExportFlow(workspaceRepo, auditRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(signupFlow, loginFlow)
	planHandler := handlers.NewPlanHandler(planFlow, summaryFlow, referenceFlow, exportFlow)

	// Initialize auth middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Initialize router
	appRouter := router.NewFiberRouter(authHandler, planHandler, authMiddleware)

	fiberRouter := appRouter.(*router.FiberRouter)
	application := &Application{
		router: fiberRouter,
		config: cfg,
		server: fiberRouter.GetApp(),
	}

	return application, nil
}

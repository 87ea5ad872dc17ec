package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Habib7442/apromax-admin/internal/adapters/appwrite"
	portsrepo "github.com/Habib7442/apromax-admin/internal/core/ports/repositories"
	"github.com/Habib7442/apromax-admin/internal/core/services"
	"github.com/Habib7442/apromax-admin/internal/handlers"
	"github.com/Habib7442/apromax-admin/internal/middleware"
	"github.com/Habib7442/apromax-admin/internal/platform/config"
)

// @title AproMax Admin API
// @version 1.0
// @description Administration backend for the AproMax Engineering site: invoices, blogs, careers and contact submissions.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Appwrite backend wiring. The client is constructed once here and
	// injected into everything that talks to the backend.
	client := appwrite.NewClient(cfg.AppwriteEndpoint, cfg.AppwriteProjectID, cfg.AppwriteAPIKey)
	databases := appwrite.NewDatabases(client, cfg.AppwriteDatabase)
	storage := appwrite.NewStorage(client)
	account := appwrite.NewAccount(client)
	users := appwrite.NewUsers(client)

	repos := portsrepo.RepositoryProvider{
		InvoiceRepo:     appwrite.NewInvoiceRepository(databases, cfg.InvoiceCollectionID),
		ContactRepo:     appwrite.NewContactRepository(databases, cfg.ContactCollectionID),
		ApplicationRepo: appwrite.NewApplicationRepository(databases, cfg.ApplicationCollectionID),
		BlogRepo:        appwrite.NewBlogRepository(databases, cfg.BlogCollectionID),
		ResumeFiles:     appwrite.NewBucketFiles(storage, cfg.ResumesBucketID),
		BlogImageFiles:  appwrite.NewBucketFiles(storage, cfg.BlogImagesBucketID),
		Auth:            appwrite.NewAuthGateway(account, users),
	}

	serviceContainer := services.NewServiceContainer(cfg, repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

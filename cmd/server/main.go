package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Titanium1971/artimon-backend/internal/auth"
	"github.com/Titanium1971/artimon-backend/internal/config"
	"github.com/Titanium1971/artimon-backend/internal/handler"
	"github.com/Titanium1971/artimon-backend/internal/infrastructure/database"
	"github.com/Titanium1971/artimon-backend/internal/logger"
	"github.com/Titanium1971/artimon-backend/internal/mailer"
	"github.com/Titanium1971/artimon-backend/internal/metrics"
	"github.com/Titanium1971/artimon-backend/internal/middleware"
	"github.com/Titanium1971/artimon-backend/internal/repository"
	"github.com/Titanium1971/artimon-backend/internal/service"
	"github.com/Titanium1971/artimon-backend/internal/storage"
	"github.com/Titanium1971/artimon-backend/internal/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repositories
	articleRepo := repository.NewPostgresArticleRepository(pool)
	categoryRepo := repository.NewPostgresCategoryRepository(pool)
	reviewRepo := repository.NewPostgresReviewRepository(pool)
	contactRepo := repository.NewPostgresContactRepository(pool)
	statusRepo := repository.NewPostgresStatusCheckRepository(pool)

	// Initialize validator
	v := validator.NewValidator()

	// Initialize upload storage
	uploadStorage, err := newStorage(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize upload storage",
			slog.String("backend", cfg.UploadBackend),
			slog.String("error", err.Error()))
	}

	// Initialize contact mailer. Without SMTP settings the contact form
	// still persists messages, it just sends nothing.
	var contactMailer mailer.Mailer = mailer.Noop{}
	if cfg.SMTPHost != "" {
		contactMailer = mailer.NewSMTPMailer(mailer.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Password: cfg.SMTPPassword,
			From:     cfg.ContactFrom,
			To:       cfg.ContactTo,
		})
	} else {
		logger.Warn("SMTP_HOST not set, contact notifications disabled")
	}

	// Initialize services
	articleService := service.NewArticleService(articleRepo)
	categoryService := service.NewCategoryService(categoryRepo, articleRepo)
	reviewService := service.NewReviewService(reviewRepo)
	contactService := service.NewContactService(contactRepo, contactMailer)
	statsService := service.NewStatsService(articleRepo, categoryRepo)

	authService, err := auth.NewService(auth.NewMemoryTokenStore(), cfg.AdminEmail, cfg.AdminPassword, cfg.TokenTTL)
	if err != nil {
		logger.Fatal("Failed to create auth service",
			slog.String("error", err.Error()))
	}

	// Seed default categories
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := categoryService.Seed(seedCtx); err != nil {
		logger.Error("Failed to seed default categories",
			slog.String("error", err.Error()))
	}
	seedCancel()

	// Evict expired sessions periodically
	sweepDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if removed := authService.SweepExpired(); removed > 0 {
					logger.Info("Evicted expired sessions",
						slog.Int("count", removed))
				}
			case <-sweepDone:
				return
			}
		}
	}()
	defer close(sweepDone)

	// Initialize handlers
	articleHandler := handler.NewArticleHandler(articleService, v)
	categoryHandler := handler.NewCategoryHandler(categoryService, v)
	reviewHandler := handler.NewReviewHandler(reviewService, v)
	contactHandler := handler.NewContactHandler(contactService, v)
	authHandler := handler.NewAuthHandler(authService, v)
	uploadHandler := handler.NewUploadHandler(uploadStorage)
	statsHandler := handler.NewStatsHandler(statsService)
	statusHandler := handler.NewStatusHandler(statusRepo)
	healthHandler := handler.NewHealthHandler(pool)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())
	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Uploaded images are served directly when stored on disk
	if cfg.UploadBackend == "local" {
		router.Static(cfg.UploadBaseURL, cfg.UploadDir)
	}

	api := router.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Hello World"})
		})
		api.GET("/status", statusHandler.List)
		api.POST("/status", statusHandler.Create)

		// Public blog routes
		blog := api.Group("/blog")
		{
			blog.GET("/articles", articleHandler.ListPublished)
			blog.GET("/articles/:slug", articleHandler.GetBySlug)
			blog.GET("/recent", articleHandler.Recent)
			blog.GET("/categories", categoryHandler.ListWithCounts)
			blog.GET("/reviews", reviewHandler.List)
			blog.POST("/reviews", reviewHandler.Create)
			blog.POST("/contact", contactHandler.Submit)
		}

		// Admin routes
		admin := api.Group("/admin")
		{
			admin.POST("/login", authHandler.Login)

			protected := admin.Group("")
			protected.Use(middleware.RequireAuth(authService))
			{
				protected.GET("/verify", authHandler.Verify)
				protected.GET("/articles", articleHandler.AdminList)
				protected.POST("/articles", articleHandler.Create)
				protected.GET("/articles/:id", articleHandler.AdminGet)
				protected.PUT("/articles/:id", articleHandler.Update)
				protected.DELETE("/articles/:id", articleHandler.Delete)
				protected.GET("/categories", categoryHandler.AdminList)
				protected.POST("/categories", categoryHandler.Create)
				protected.DELETE("/categories/:id", categoryHandler.Delete)
				protected.DELETE("/reviews/:id", reviewHandler.Delete)
				protected.GET("/contact", contactHandler.AdminList)
				protected.POST("/upload", uploadHandler.Upload)
				protected.GET("/stats", statsHandler.Stats)
			}
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}

// newStorage builds the upload backend selected by configuration.
func newStorage(cfg *config.Config) (storage.Storage, error) {
	if cfg.UploadBackend == "s3" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return storage.NewMinioStorage(ctx, storage.MinioConfig{
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			BaseURL:   cfg.UploadBaseURL,
		})
	}
	return storage.NewLocalStorage(cfg.UploadDir, cfg.UploadBaseURL)
}

// corsConfig allows the configured frontend origins; "*" opens the API up
// entirely, which is the development default.
func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	if len(origins) == 1 && origins[0] == "*" {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	return c
}

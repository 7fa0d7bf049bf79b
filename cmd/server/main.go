package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/job-coordination-api/internal/authz"
	"github.com/yukikurage/job-coordination-api/internal/config"
	"github.com/yukikurage/job-coordination-api/internal/database"
	"github.com/yukikurage/job-coordination-api/internal/handlers"
	"github.com/yukikurage/job-coordination-api/internal/logging"
	"github.com/yukikurage/job-coordination-api/internal/middleware"
	"github.com/yukikurage/job-coordination-api/internal/reference"
	"github.com/yukikurage/job-coordination-api/internal/repository"
	"github.com/yukikurage/job-coordination-api/internal/services"
	"github.com/yukikurage/job-coordination-api/internal/token"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	logger, err := logging.New(cfg.GinMode)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	if cfg.SeedData {
		if err := database.Seed(database.GetDB(), logger); err != nil {
			logger.Fatal("failed to seed data", zap.Error(err))
		}
	}

	// Reference data is immutable after startup and shared by all requests.
	refData := reference.NewData(cfg.Materials, cfg.Equipment)
	tokens := token.NewService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)

	userRepo := repository.NewUserRepository(database.GetDB())
	jobRepo := repository.NewJobRepository(database.GetDB())

	authService := services.NewAuthService(userRepo, tokens)
	jobService := services.NewJobService(jobRepo, userRepo, refData)
	referenceService := services.NewReferenceService(refData, userRepo)

	authHandler := handlers.NewAuthHandler(authService)
	jobHandler := handlers.NewJobHandler(jobService)
	referenceHandler := handlers.NewReferenceHandler(referenceService)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Job Coordination API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Job routes (protected)
		jobs := api.Group("/jobs")
		jobs.Use(middleware.RequireAuth(tokens))
		{
			jobs.POST("", middleware.RequireCapability(authz.OpCreateJob), jobHandler.Create)
			jobs.GET("", middleware.RequireCapability(authz.OpListAllJobs), jobHandler.ListAll)
			jobs.GET("/mine", middleware.RequireCapability(authz.OpListAssignedJobs), jobHandler.ListMine)
			jobs.GET("/:id", middleware.RequireCapability(authz.OpGetJob), jobHandler.GetByID)
			jobs.PATCH("/:id/status", middleware.RequireCapability(authz.OpUpdateJobStatus), jobHandler.UpdateStatus)
		}

		// Reference data routes (protected)
		ref := api.Group("/reference")
		ref.Use(middleware.RequireAuth(tokens), middleware.RequireCapability(authz.OpReadReferenceData))
		{
			ref.GET("/materials", referenceHandler.Materials)
			ref.GET("/equipment", referenceHandler.Equipment)
		}

		// User reference routes (protected)
		users := api.Group("/users")
		users.Use(middleware.RequireAuth(tokens), middleware.RequireCapability(authz.OpListAvailableUsers))
		{
			users.GET("/available", referenceHandler.AvailableUsers)
		}
	}

	// Start server
	logger.Info("server starting", zap.String("addr", cfg.ListenAddr))
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

package routes

import (
	"maintenance-tracker/internal/config"
	"maintenance-tracker/internal/delivery/http/handler"
	"maintenance-tracker/internal/infrastructure/database/postgres"
	"maintenance-tracker/internal/infrastructure/sentiment"
	"maintenance-tracker/internal/logger"
	"maintenance-tracker/internal/middleware"
	"maintenance-tracker/internal/usecase/device"
	"maintenance-tracker/internal/usecase/employee"
	"maintenance-tracker/internal/usecase/feedback"
	"maintenance-tracker/internal/usecase/maintenance"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(cfg *config.Config, db *postgres.DB) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware order: recovery, request ID, logging, security headers,
	// CORS, request size limit, general rate limit
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(10 << 20))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	employeeRepository := postgres.NewEmployeeRepository(db)
	employeeService := employee.NewService(employeeRepository, cfg)
	employeeHandler := handler.NewEmployeeHandler(employeeService)

	deviceRepository := postgres.NewDeviceRepository(db)
	checkRepository := postgres.NewCheckRepository(db)
	deviceService := device.NewService(deviceRepository)
	deviceHandler := handler.NewDeviceHandler(deviceService)

	maintenanceService := maintenance.NewService(deviceRepository, checkRepository, employeeRepository)
	maintenanceHandler := handler.NewMaintenanceHandler(maintenanceService)

	feedbackRepository := postgres.NewFeedbackRepository(db)
	analyzer := sentiment.NewClient(cfg.Sentiment)
	feedbackService := feedback.NewService(feedbackRepository, analyzer)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)

	v1 := router.Group("/api/v1")
	{
		employeeHandler.RegisterRoutes(v1)
		feedbackHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			employeeHandler.RegisterProtectedRoutes(protected)
			deviceHandler.RegisterRoutes(protected)
			maintenanceHandler.RegisterRoutes(protected)
			feedbackHandler.RegisterRoutes(protected)

			admin := protected.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				deviceHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	logger.Info("All routes initialized")
	return router
}

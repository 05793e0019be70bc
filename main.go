package main

import (
	"log"
	"net/http"
	"time"

	"cohort-tools-be/internal/cache"
	"cohort-tools-be/internal/config"
	"cohort-tools-be/internal/controllers"
	"cohort-tools-be/internal/database"
	"cohort-tools-be/internal/jwt"
	"cohort-tools-be/internal/middleware"
	"cohort-tools-be/internal/repository"
	"cohort-tools-be/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
		cacheClient = nil
	} else {
		log.Println("Connected to Redis cache")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	cohortRepo := repository.NewCohortRepository(db)
	studentRepo := repository.NewStudentRepository(db)

	// Initialize JWT service
	jwtService, err := jwt.NewJWTService(
		cfg.TokenSecret,
		time.Duration(cfg.TokenTTLHours)*time.Hour,
	)
	if err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	cohortService := service.NewCohortService(cohortRepo, cacheClient)
	studentService := service.NewStudentService(studentRepo, cohortRepo, cacheClient)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	cohortController := controllers.NewCohortController(cohortService)
	studentController := controllers.NewStudentController(studentService)
	qrcodeController := controllers.NewQRCodeController(cfg.FrontendURL)

	// Initialize rate limiters
	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)

	// Create a Gin router
	router := gin.Default()

	// CORS for the frontend origin
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// Auth routes with stricter rate limiting
	auth := router.Group("/auth")
	auth.Use(authRateLimiter.LimitMiddleware())
	{
		auth.POST("/signup", authController.Signup)
		auth.POST("/login", authController.Login)
		auth.GET("/verify", middleware.AuthMiddleware(jwtService), authController.Verify)
	}

	// Entity routes - all require a bearer token
	api := router.Group("/api")
	api.Use(generalRateLimiter.LimitMiddleware())
	api.Use(middleware.AuthMiddleware(jwtService))
	{
		api.GET("/cohorts", cohortController.ListCohorts)
		api.GET("/cohorts/:id", cohortController.GetCohort)
		api.GET("/cohorts/:id/qrcode", qrcodeController.GenerateCohortQRCode)
		api.POST("/cohorts", cohortController.CreateCohort)
		api.PUT("/cohorts/:id", cohortController.UpdateCohort)
		api.DELETE("/cohorts/:id", cohortController.DeleteCohort)

		api.GET("/students", studentController.ListStudents)
		api.GET("/students/cohort/:cohortId", studentController.ListStudentsByCohort)
		api.GET("/students/:id", studentController.GetStudent)
		api.POST("/students", studentController.CreateStudent)
		api.PUT("/students/:id", studentController.UpdateStudent)
		api.DELETE("/students/:id", studentController.DeleteStudent)
	}

	// Catch-all for unmatched routes
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	router.Run(":" + cfg.Port)
}

package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"hospital-prototype-backend/internal/config"
	"hospital-prototype-backend/internal/database"
	"hospital-prototype-backend/internal/handler"
	"hospital-prototype-backend/internal/middleware"
	"hospital-prototype-backend/internal/repository"
	"hospital-prototype-backend/internal/service"
	"hospital-prototype-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(cfg.JWT.Secret, cfg.JWT.TokenExpiry)

	// 3. Initialize database connection
	db := database.Connect(cfg)

	// 4. Initialize repositories
	patientRepo := repository.NewPatientRepo(db)
	scannerEventRepo := repository.NewScannerEventRepo(db)
	adminRepo := repository.NewAdminRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 5. Initialize services
	authService := service.NewAuthService(adminRepo, patientRepo, auditRepo)
	patientService := service.NewPatientService(patientRepo, auditRepo)
	scannerService := service.NewScannerService(patientRepo, scannerEventRepo, auditRepo)

	// 6. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 7. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 8. Register handlers
	authHandler := handler.NewAuthHandler(authService, cfg)
	patientHandler := handler.NewPatientHandler(patientService)
	scannerHandler := handler.NewScannerHandler(scannerService)

	// 9. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "hospital-prototype-backend",
		})
	})

	// Auth routes (public)
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/whoami", authHandler.Whoami)
	}

	// Patient routes; mutations require an admin session
	patient := r.Group("/api/patient")
	{
		patient.POST("", middleware.AuthMiddleware(), middleware.RequireAdmin(), patientHandler.CreatePatient)
		patient.GET("/:serialNumber", patientHandler.GetPatient)
		patient.PUT("/:serialNumber", middleware.AuthMiddleware(), middleware.RequireAdmin(), patientHandler.UpdatePatient)
		patient.POST("/:serialNumber/scan", middleware.AuthMiddleware(), middleware.RequireAdmin(), scannerHandler.RecordScan)
		patient.GET("/:serialNumber/scans", scannerHandler.ListScans)
	}

	// Listing endpoint (plural form)
	r.GET("/api/patients", patientHandler.ListPatients)

	// 10. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}

package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/magnolias-hr/magnolias-api/internal/auth"
	"github.com/magnolias-hr/magnolias-api/internal/clients"
	"github.com/magnolias-hr/magnolias-api/internal/config"
	"github.com/magnolias-hr/magnolias-api/internal/database"
	"github.com/magnolias-hr/magnolias-api/internal/handlers"
	"github.com/magnolias-hr/magnolias-api/internal/middleware"
	"github.com/magnolias-hr/magnolias-api/internal/repository"
	"github.com/magnolias-hr/magnolias-api/internal/services"
)

func main() {
	// 1. Environment & configuration
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
	cfg := config.Load()

	// 2. Database connection
	db := database.Connect(cfg.DatabaseURL)

	// 3. Repositories
	companyRepo := repository.NewCompanyRepository(db)
	applicantRepo := repository.NewApplicantRepository(db)
	postingRepo := repository.NewPostingRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)

	// 4. Outbound clients
	workflowClient := clients.NewWorkflowClient(cfg.N8NWebhookURL)
	evaluatorClient := clients.NewEvaluatorClient(cfg.AIServiceURL)
	storageClient := clients.NewSupabaseStorage(cfg.SupabaseURL, cfg.SupabaseServiceKey)

	// 5. Services
	tokens := auth.NewTokenProvider(cfg.JWTSecret, cfg.JWTExpires)
	authService := services.NewAuthService(companyRepo, applicantRepo, tokens)
	companyService := services.NewCompanyService(companyRepo)
	applicantService := services.NewApplicantService(applicantRepo)
	postingService := services.NewPostingService(postingRepo)
	applicationService := services.NewApplicationService(applicationRepo, postingRepo, workflowClient, evaluatorClient)

	// 6. Handlers
	healthHandler := handlers.NewHealthHandler(cfg.Environment)
	authHandler := handlers.NewAuthHandler(authService)
	companyHandler := handlers.NewCompanyHandler(companyService)
	applicantHandler := handlers.NewApplicantHandler(applicantService)
	postingHandler := handlers.NewPostingHandler(postingService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	storageHandler := handlers.NewStorageHandler(storageClient, applicantService)

	// 7. Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendURL}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))
	r.Use(middleware.RequestID())

	authRequired := middleware.AuthRequired(tokens)

	// 8. Routes
	r.GET("/health", healthHandler.Check)

	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/login/company", authHandler.LoginCompany)
		authRoutes.POST("/login/applicant", authHandler.LoginApplicant)
	}

	companies := r.Group("/companies")
	{
		companies.POST("", companyHandler.Create)
		companies.GET("", companyHandler.List)
		companies.GET("/:id", companyHandler.Get)
		companies.PATCH("/:id", authRequired, companyHandler.Update)
		companies.DELETE("/:id", authRequired, companyHandler.Delete)
	}

	applicants := r.Group("/applicants")
	{
		applicants.POST("", applicantHandler.Create)
		applicants.GET("", applicantHandler.List)
		applicants.GET("/:id", applicantHandler.Get)
		applicants.PATCH("/:id", authRequired, applicantHandler.Update)
		applicants.DELETE("/:id", authRequired, applicantHandler.Delete)
	}

	postings := r.Group("/postings")
	{
		postings.POST("", authRequired, postingHandler.Create)
		postings.GET("", postingHandler.List)
		postings.GET("/company/:id", authRequired, postingHandler.ListByCompany)
		postings.GET("/:id", postingHandler.Get)
		postings.PATCH("/:id", authRequired, postingHandler.Update)
		postings.DELETE("/:id", authRequired, postingHandler.Delete)
	}

	applications := r.Group("/applications")
	{
		applications.POST("", authRequired, applicationHandler.Create)
		applications.GET("/posting/:id", authRequired, applicationHandler.ListByPosting)
		applications.GET("/applicant/:id", authRequired, applicationHandler.ListByApplicant)
		applications.GET("/company/:id", authRequired, applicationHandler.ListByCompany)
		applications.GET("/:id", applicationHandler.Get)
		// No auth: the n8n callback patches evaluation results here.
		applications.PATCH("/:id", applicationHandler.Update)
		applications.PATCH("/:id/status", authRequired, applicationHandler.UpdateStatus)
	}

	storage := r.Group("/storage")
	{
		storage.POST("/upload-cv", authRequired, storageHandler.UploadCV)
	}

	log.Printf("🚀 Server starting on port %s...", cfg.HTTPPort)
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}

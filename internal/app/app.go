package app

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"jobport/internal/config"
	"jobport/internal/handlers"
	"jobport/internal/pdf"
	"jobport/internal/repositories"
	"jobport/internal/routes"
	"jobport/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "jobport/docs"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("database connection failed: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("database close failed: %v", err)
		}
	}()

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	businessRepo := repositories.NewBusinessRepository(db)
	verifyCodeRepo := repositories.NewVerifyCodeRepository(db)
	verifyBlockRepo := repositories.NewVerifyBlockRepository(db)
	blacklistRepo := repositories.NewBlacklistRepository(db)
	companyRepo := repositories.NewCompanyRepository(db)
	campaignRepo := repositories.NewCampaignRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	locationRepo := repositories.NewLocationRepository(db)
	catalogRepo := repositories.NewCatalogRepository(db)
	passwordResetRepo := repositories.NewPasswordResetRepository(db)

	// === Services ===
	tokenService := services.NewTokenService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		time.Duration(cfg.JWT.AccessExpireMin)*time.Minute,
		time.Duration(cfg.JWT.RefreshExpireMin)*time.Minute,
	)
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)

	authService := services.NewAuthService(userRepo, businessRepo, blacklistRepo, tokenService)
	userService := services.NewUserService(userRepo, authService)
	businessService := services.NewBusinessService(businessRepo, locationRepo, authService)
	verifyService := services.NewVerifyService(verifyCodeRepo, verifyBlockRepo, businessRepo, emailService,
		services.VerifyOptions{
			CodeLength:       cfg.Verify.CodeLength,
			FreshnessMinutes: cfg.Verify.FreshnessMinutes,
			BlockMinutes:     cfg.Verify.BlockMinutes,
			MaxFailedBefore:  cfg.Verify.MaxFailedBefore,
		})
	taxonomyService := services.NewTaxonomyService(locationRepo, catalogRepo)
	companyService := services.NewCompanyService(companyRepo)
	campaignService := services.NewCampaignService(campaignRepo)
	jobService := services.NewJobService(jobRepo, campaignRepo)
	passwordResetService := services.NewPasswordResetService(userRepo, passwordResetRepo, emailService, authService)

	pdfGen := pdf.NewSummaryGenerator()

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService, passwordResetService)
	businessHandler := handlers.NewBusinessHandler(businessService)
	verifyHandler := handlers.NewVerifyHandler(verifyService)
	companyHandler := handlers.NewCompanyHandler(companyService)
	campaignHandler := handlers.NewCampaignHandler(campaignService)
	jobHandler := handlers.NewJobHandler(jobService, companyService, pdfGen)
	taxonomyHandler := handlers.NewTaxonomyHandler(taxonomyService)

	// blacklist rows expire with the tokens they hold; prune hourly
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if n, err := blacklistRepo.DeleteExpired(time.Now()); err != nil {
				log.Printf("[blacklist][prune] failed: %v", err)
			} else if n > 0 {
				log.Printf("[blacklist][prune] removed %d expired tokens", n)
			}
		}
	}()

	// === Gin ===
	router := gin.Default()
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		authHandler,
		userHandler,
		businessHandler,
		verifyHandler,
		companyHandler,
		campaignHandler,
		jobHandler,
		taxonomyHandler,
		authService,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("server failed: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

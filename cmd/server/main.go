package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yogeshwar16/realestatehousing/internal/config"
	"github.com/yogeshwar16/realestatehousing/internal/infrastructure/jobs"
	"github.com/yogeshwar16/realestatehousing/internal/infrastructure/models"
	"github.com/yogeshwar16/realestatehousing/internal/infrastructure/repositories"
	"github.com/yogeshwar16/realestatehousing/internal/interfaces/http/handlers"
	"github.com/yogeshwar16/realestatehousing/internal/interfaces/http/middleware"
	"github.com/yogeshwar16/realestatehousing/internal/usecases"
	"github.com/yogeshwar16/realestatehousing/pkg/logger"
	"github.com/yogeshwar16/realestatehousing/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(cfg *config.Config) (*gorm.DB, error) {
		gormCfg := &gorm.Config{TranslateError: true}
		if cfg.Database.Driver == "postgres" {
			return gorm.Open(postgres.New(postgres.Config{
				DSN:                  cfg.Database.URL(),
				PreferSimpleProtocol: true,
			}), gormCfg)
		}
		return gorm.Open(sqlite.Open(cfg.Database.Path), gormCfg)
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(&models.User{}, &models.Property{}, &models.Inquiry{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	propertyRepo := repositories.NewPropertyRepository(db)
	inquiryRepo := repositories.NewInquiryRepository(db)

	// Initialize usecases
	otpStore := redis.NewOTPStore(cfg.OTP.Expiry)
	authUsecase := usecases.NewAuthUsecase(userRepo, otpStore, cfg.OTP.Length)
	propertyUsecase := usecases.NewPropertyUsecase(propertyRepo, userRepo)
	inquiryUsecase := usecases.NewInquiryUsecase(inquiryRepo, propertyRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	propertyHandler := handlers.NewPropertyHandler(propertyUsecase)
	inquiryHandler := handlers.NewInquiryHandler(inquiryUsecase)

	authMiddleware := middleware.AuthMiddleware(authUsecase)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiryJob := jobs.NewInquiryExpiryJob(inquiryUsecase, cfg.Jobs.InquiryExpiryInterval)
	go expiryJob.Start(ctx)
	defer expiryJob.Stop()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	registerHealthRoute(r)
	registerRoutes(r, routeDeps{
		authHandler:     authHandler,
		propertyHandler: propertyHandler,
		inquiryHandler:  inquiryHandler,
		authMiddleware:  authMiddleware,
	})

	logger.Info(ctx, "Server starting", zap.String("port", cfg.Server.Port))
	return runServer(r, cfg.Server.Port)
}

package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"growcore.backend/internal/config"
	"growcore.backend/internal/infrastructure/notify"
	"growcore.backend/internal/infrastructure/repositories"
	"growcore.backend/internal/interfaces/http/handlers"
	"growcore.backend/internal/usecases"
	"growcore.backend/pkg/jwt"
	"growcore.backend/pkg/logger"
	"growcore.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt:    false,
			TranslateError: true,
		})
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

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("connected to PostgreSQL via GORM")
	}

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewUserProfileRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	assessmentRepo := repositories.NewAssessmentRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	userAssessmentRepo := repositories.NewUserAssessmentRepository(db)
	certificationRepo := repositories.NewCertificationRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	workSessionRepo := repositories.NewWorkSessionRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Event delivery
	sink := notify.NewStoreSink(notificationRepo)
	dispatcher := usecases.NewDispatcher(sink)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go dispatcher.Start(ctx)

	// Usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, profileRepo, jwtService, uow)
	userUsecase := usecases.NewUserUsecase(userRepo, profileRepo, uow)
	certificationUsecase := usecases.NewCertificationUsecase(certificationRepo)
	assessmentUsecase := usecases.NewAssessmentUsecase(assessmentRepo, userAssessmentRepo, projectRepo, certificationUsecase, uow)
	projectUsecase := usecases.NewProjectUsecase(projectRepo, applicationRepo, profileRepo, assessmentUsecase)
	notificationUsecase := usecases.NewNotificationUsecase(notificationRepo)
	workSessionUsecase := usecases.NewWorkSessionUsecase(workSessionRepo, applicationRepo)
	dashboardUsecase := usecases.NewDashboardUsecase(applicationRepo, userAssessmentRepo, certificationRepo, notificationRepo, workSessionRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUsecase, dispatcher)
	userHandler := handlers.NewUserHandler(userUsecase)
	projectHandler := handlers.NewProjectHandler(projectUsecase, dispatcher)
	assessmentHandler := handlers.NewAssessmentHandler(assessmentUsecase, dispatcher)
	certificationHandler := handlers.NewCertificationHandler(certificationUsecase)
	notificationHandler := handlers.NewNotificationHandler(notificationUsecase)
	workSessionHandler := handlers.NewWorkSessionHandler(workSessionUsecase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUsecase)

	r := newRouter(routeDeps{
		jwtService:           jwtService,
		authHandler:          authHandler,
		userHandler:          userHandler,
		projectHandler:       projectHandler,
		assessmentHandler:    assessmentHandler,
		certificationHandler: certificationHandler,
		notificationHandler:  notificationHandler,
		workSessionHandler:   workSessionHandler,
		dashboardHandler:     dashboardHandler,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("shutting down server...")
		dispatcher.Stop()
		cancel()
	}()

	log.Printf("Grow Core Hub backend starting on port %s", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

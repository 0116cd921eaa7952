package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medflow-server/config"
	deliveryHttp "medflow-server/internal/delivery/http"
	"medflow-server/internal/delivery/http/handler"
	"medflow-server/internal/delivery/http/middleware"
	"medflow-server/internal/infrastructure/cache"
	"medflow-server/internal/infrastructure/database"
	"medflow-server/internal/repository"
	"medflow-server/internal/service"
	"medflow-server/internal/usecase"
	"medflow-server/pkg/jwt"
	"medflow-server/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	clinicRepo := repository.NewClinicRepository()
	patientRepo := repository.NewPatientRepository()
	doctorRepo := repository.NewDoctorRepository()
	receptionistRepo := repository.NewReceptionistRepository()
	serviceRepo := repository.NewServiceRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	conversationRepo := repository.NewConversationRepository()
	messageRepo := repository.NewMessageRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize shared services
	auditService := service.NewAuditService(db, log, auditLogRepo)
	actorResolver := usecase.NewActorResolver(db, log, userRepo, patientRepo, doctorRepo, receptionistRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, patientRepo, clinicRepo, auditService, jwtService, redisClient)
	userUsecase := usecase.NewUserUsecase(db, log, userRepo, roleRepo, clinicRepo, patientRepo, doctorRepo, receptionistRepo, serviceRepo, auditService, authUsecase)
	clinicUsecase := usecase.NewClinicUsecase(db, log, clinicRepo, auditService)
	serviceUsecase := usecase.NewServiceUsecase(db, log, serviceRepo, clinicRepo, actorResolver, auditService)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, appointmentRepo, actorResolver, auditService)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, actorResolver, auditService)
	receptionistUsecase := usecase.NewReceptionistUsecase(db, log, receptionistRepo, serviceRepo, actorResolver, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, cfg.Scheduling, appointmentRepo, patientRepo, doctorRepo, serviceRepo, actorResolver, auditService)
	conversationUsecase := usecase.NewConversationUsecase(db, log, conversationRepo, messageRepo, userRepo, clinicRepo, actorResolver, auditService)
	messageUsecase := usecase.NewMessageUsecase(db, log, messageRepo, conversationRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	userHandler := handler.NewUserHandler(userUsecase, customValidator)
	clinicHandler := handler.NewClinicHandler(clinicUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	receptionistHandler := handler.NewReceptionistHandler(receptionistUsecase, customValidator)
	serviceHandler := handler.NewServiceHandler(serviceUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	conversationHandler := handler.NewConversationHandler(conversationUsecase, customValidator)
	messageHandler := handler.NewMessageHandler(messageUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		userHandler,
		clinicHandler,
		patientHandler,
		doctorHandler,
		receptionistHandler,
		serviceHandler,
		appointmentHandler,
		conversationHandler,
		messageHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}

package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/kumpulapp/kumpul/internal/pkg/config"
	"github.com/kumpulapp/kumpul/internal/pkg/database"
	"github.com/kumpulapp/kumpul/internal/pkg/health"
	"github.com/kumpulapp/kumpul/internal/pkg/logger"
	"github.com/kumpulapp/kumpul/internal/pkg/middleware"
	"github.com/kumpulapp/kumpul/internal/pkg/ratelimit"
	"github.com/kumpulapp/kumpul/internal/pkg/server"
	"github.com/kumpulapp/kumpul/services/auth"
	"github.com/kumpulapp/kumpul/services/auth/gateway/sms"
	authhandler "github.com/kumpulapp/kumpul/services/auth/handler"
	authrepo "github.com/kumpulapp/kumpul/services/auth/repository"
	authusecase "github.com/kumpulapp/kumpul/services/auth/usecase"
	"github.com/kumpulapp/kumpul/services/events"
	eventshandler "github.com/kumpulapp/kumpul/services/events/handler"
	eventsrepo "github.com/kumpulapp/kumpul/services/events/repository"
	eventsusecase "github.com/kumpulapp/kumpul/services/events/usecase"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const appName = "kumpul-api"

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
		zap.String("store_backend", configs.Store.Backend),
	)

	healthService := health.NewHealthService(zapLogger)
	shutdownManager := server.NewShutdownManager(zapLogger)

	// Backing stores, selected per deployment
	var (
		challengeRepo auth.ChallengeRepo
		userRepo      auth.UserRepo
		limiterStore  ratelimit.Store
		stateStore    events.StateStore
	)
	if configs.Store.Backend == "postgres" {
		postgresClient, err := database.NewPostgresClient(configs.Database)
		if err != nil {
			zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		shutdownManager.Register(func(ctx context.Context) error {
			return postgresClient.Close()
		})

		redisClient, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		shutdownManager.Register(func(ctx context.Context) error {
			return redisClient.Close()
		})

		challengeRepo = authrepo.NewRedisChallengeRepo(redisClient)
		userRepo = authrepo.NewPostgresUserRepo(postgresClient.GetDB())
		limiterStore = ratelimit.NewRedisStore(redisClient.GetClient())
		stateStore = eventsrepo.NewPostgresStateStore(postgresClient.GetDB())

		healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
		healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	} else {
		challengeRepo = authrepo.NewMemoryChallengeRepo()
		userRepo = authrepo.NewMemoryUserRepo()
		limiterStore = ratelimit.NewMemoryStore()
		stateStore = eventsrepo.NewMemoryStateStore()
	}

	// SMS gateway, selected per deployment
	var smsGW auth.SMSGateway
	if configs.SMS.Provider == "http" {
		smsGW = sms.NewHTTPGateway(configs.SMS, zapLogger)
	} else {
		smsGW = sms.NewMockGateway(zapLogger)
	}

	limiter := ratelimit.New(limiterStore)

	// Usecases
	authUC := authusecase.NewAuthUsecase(challengeRepo, userRepo, smsGW, limiter, configs)
	eventUC := eventsusecase.NewEventUsecase(stateStore, configs)

	// Handlers
	authHandler := authhandler.NewHandler(authUC, healthService, appName, configs.App.Version)
	eventHandler := eventshandler.NewHandler(eventUC)

	// Echo router and middleware
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	authHandler.RegisterRoutes(e)
	eventHandler.RegisterRoutes(e, middleware.SessionAuthMiddleware(configs.Auth.SessionSecret))

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server shutdown failed", zap.Error(err))
	}

	// Close backing connections after the server stops accepting requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Component shutdown failed", zap.Error(err))
	}
}

package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Kael08/JOB-PORTAL/internal/pkg/config"
	"github.com/Kael08/JOB-PORTAL/internal/pkg/database"
	"github.com/Kael08/JOB-PORTAL/internal/pkg/health"
	"github.com/Kael08/JOB-PORTAL/internal/pkg/jwt"
	"github.com/Kael08/JOB-PORTAL/internal/pkg/logger"
	"github.com/Kael08/JOB-PORTAL/internal/pkg/middleware"
	natspkg "github.com/Kael08/JOB-PORTAL/internal/pkg/nats"
	"github.com/Kael08/JOB-PORTAL/internal/pkg/server"
	"github.com/Kael08/JOB-PORTAL/services/auth"
	"github.com/Kael08/JOB-PORTAL/services/auth/gateway"
	"github.com/Kael08/JOB-PORTAL/services/auth/handler"
	"github.com/Kael08/JOB-PORTAL/services/auth/repository"
	"github.com/Kael08/JOB-PORTAL/services/auth/usecase"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = ".env"
	}
	configs := config.InitConfig(configPath)
	appName := configs.App.Name

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.String("db_driver", configs.Database.Driver),
	)

	issuer, err := jwt.NewIssuer(configs.JWT)
	if err != nil {
		zapLogger.Fatal("Invalid JWT configuration", logger.Err(err))
	}

	shutdownManager := server.NewShutdownManager(zapLogger)
	healthService := health.NewHealthService(zapLogger)

	// Identity store and job listings
	var (
		accountRepo auth.AccountRepo
		jobsGW      auth.JobsGW
	)
	switch configs.Database.Driver {
	case "memory":
		zapLogger.Warn("Using in-memory account store, data is lost on restart and not shared between instances")
		accountRepo = repository.NewMemoryAccountRepo()
		jobsGW = gateway.NoopJobsGateway{}
	default:
		postgresClient, err := database.NewPostgresClient(configs.Database)
		if err != nil {
			zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
		}
		shutdownManager.Register("postgres", func(context.Context) error {
			return postgresClient.Close()
		})

		schemaCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err = postgresClient.EnsureSchema(schemaCtx)
		cancel()
		if err != nil {
			zapLogger.Fatal("Failed to prepare database schema", logger.Err(err))
		}

		healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
		accountRepo = repository.NewAccountRepo(postgresClient.GetDB())
		jobsGW = gateway.NewJobsGateway(postgresClient.GetDB())
	}

	// Throttling
	var (
		throttle auth.SendThrottle = gateway.NoopThrottle{}
		limiters []echo.MiddlewareFunc
	)
	if configs.Redis.Host != "" {
		redisClient, err := database.NewRedisClient(configs.Redis)
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		shutdownManager.Register("redis", func(context.Context) error {
			return redisClient.Close()
		})

		healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
		throttle = gateway.NewRedisThrottle(redisClient, configs.RateLimit.SendCodeLimit, configs.RateLimit.SendCodeWindow)
		if configs.RateLimit.IPLimit > 0 {
			limiters = append(limiters, middleware.IPRateLimiter(configs.RateLimit.IPLimit, configs.RateLimit.IPWindow, redisClient))
		}
	} else {
		zapLogger.Warn("Redis is not configured, request throttling is disabled")
	}

	// Auth events
	var eventGW auth.EventGW = gateway.NoopEventGateway{}
	if configs.NATS.URL != "" {
		natsClient, err := natspkg.NewClient(configs.NATS.URL, appName)
		if err != nil {
			zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
		}
		shutdownManager.Register("nats", func(context.Context) error {
			natsClient.Close()
			return nil
		})

		healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
		eventGW = gateway.NewNATSGateway(natsClient)
	}

	authUC := usecase.NewAuthUC(configs, usecase.Dependencies{
		Repo:     accountRepo,
		Sender:   gateway.NewOTPSender(configs.SMS, zapLogger),
		JobsGW:   jobsGW,
		EventGW:  eventGW,
		Throttle: throttle,
		Issuer:   issuer,
	}, usecase.WithLogger(zapLogger))

	authHandler := handler.NewHandler(authUC, issuer, limiters...)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)
	authHandler.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Error("Server stopped with error", logger.Err(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(ctx); err != nil {
		zapLogger.Error("Shutdown finished with errors", logger.Err(err))
	}
}

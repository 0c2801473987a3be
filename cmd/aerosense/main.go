package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/aerosenselabs/aerosense/internal/api"
	"github.com/aerosenselabs/aerosense/internal/cache"
	"github.com/aerosenselabs/aerosense/internal/config"
	"github.com/aerosenselabs/aerosense/internal/db"
	"github.com/aerosenselabs/aerosense/internal/logging"
	"github.com/aerosenselabs/aerosense/internal/metrics"
	"github.com/aerosenselabs/aerosense/internal/services"
	"github.com/aerosenselabs/aerosense/internal/weather"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := logging.NewLogger(cfg.Env)
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	metrics.Register()

	database, err := db.OpenSQLite(cfg.DatabasePath)
	if err != nil {
		logger.Fatal("database init failed", zap.Error(err))
	}

	var readingCache *cache.Cache
	if cfg.RedisAddr != "" {
		readingCache, err = cache.Connect(context.Background(), cfg.RedisAddr)
		if err != nil {
			logger.Warn("redis unavailable, weather cache disabled", zap.Error(err))
			readingCache = nil
		} else {
			defer readingCache.Close()
		}
	}

	credentials := services.NewCredentialService(cfg.SecretKey, cfg.TokenTTL)
	weatherClient := weather.NewClient(cfg.NasaPowerURL, readingCache, logger)
	handler := api.NewHandler(database, credentials, weatherClient, logger)

	// Seeding must finish before the listener opens so seeded-dependent
	// reads never race the bootstrap.
	bootstrap := services.NewBootstrapService(handler.AuthService(), handler.CatalogService(), logger)
	if err := bootstrap.Run(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logger.Fatal("bootstrap failed", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		AppName:               "AeroSense",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(api.RequestObserver(logger))
	app.Use(cors.New(corsConfig(cfg)))

	api.RegisterRoutes(app, handler)

	go func() {
		if err := metrics.Serve(cfg.MetricsAddr); err != nil {
			logger.Warn("metrics listener exited", zap.Error(err))
		}
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("aerosense listening",
		zap.String("port", cfg.ServerPort),
		zap.String("db", cfg.DatabasePath),
		zap.String("env", cfg.Env),
	)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

// corsConfig keeps the browser clients working in both modes: production
// serves any origin without credentials, everything else allows the local
// dev servers with credentials on.
func corsConfig(cfg *config.Config) cors.Config {
	if cfg.IsProd() {
		return cors.Config{
			AllowOrigins:     "*",
			AllowCredentials: false,
			AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		}
	}
	return cors.Config{
		AllowOrigins:     "http://localhost:5000, http://localhost:5173, http://0.0.0.0:5000",
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}
}

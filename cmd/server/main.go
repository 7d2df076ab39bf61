// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"marketing-asset-backend/internal/config"
	"marketing-asset-backend/internal/database"
	"marketing-asset-backend/internal/generator"
	"marketing-asset-backend/internal/handlers"
	"marketing-asset-backend/internal/models"
	"marketing-asset-backend/internal/repository"
	"marketing-asset-backend/internal/repository/memory"
	"marketing-asset-backend/internal/routes"
	"marketing-asset-backend/internal/services"
)

func initLogger(env string) *zap.Logger {
	var config zap.Config

	if env == "production" {
		config = zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		config = zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	return logger
}

// store bundles the repositories of one storage driver.
type store struct {
	users  repository.UserRepository
	assets repository.AssetRepository
	usage  repository.CreditUsageRepository
	pinger handlers.Pinger
	close  func(ctx context.Context) error
}

func openStore(cfg *config.Config) (*store, error) {
	switch cfg.Database.Driver {
	case config.StoreMemory:
		mem := memory.New()
		return &store{
			users:  mem.Users(),
			assets: mem.Assets(),
			usage:  mem.CreditUsage(),
			pinger: mem,
			close:  func(context.Context) error { return nil },
		}, nil
	default:
		db, err := database.NewMongoDB(cfg)
		if err != nil {
			return nil, err
		}
		return &store{
			users:  repository.NewUserRepository(db.GetCollection(database.UsersCollection)),
			assets: repository.NewAssetRepository(db.GetCollection(database.AssetsCollection)),
			usage:  repository.NewCreditUsageRepository(db.GetCollection(database.CreditUsageCollection)),
			pinger: db,
			close:  db.Close,
		}, nil
	}
}

func main() {
	logger := initLogger(os.Getenv("ENV"))
	defer logger.Sync() // Flush any buffered log entries

	zap.ReplaceGlobals(logger)

	logger.Info("Starting marketing asset backend")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully",
		zap.String("env", cfg.Env),
		zap.String("address", cfg.Addr()),
		zap.String("store_driver", cfg.Database.Driver),
		zap.String("model", cfg.AI.Model),
		zap.Bool("refund_on_failure", cfg.Generation.RefundOnFailure))

	st, err := openStore(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := st.close(ctx); err != nil {
			logger.Error("Error closing storage", zap.Error(err))
		}
	}()

	logger.Info("Storage ready", zap.String("driver", cfg.Database.Driver))

	gen := generator.NewOpenAIGenerator(generator.Config{
		APIKey:    cfg.AI.APIKey,
		BaseURL:   cfg.AI.BaseURL,
		Model:     cfg.AI.Model,
		MaxTokens: cfg.AI.MaxTokens,
		Timeout:   cfg.AI.Timeout,
	})

	logger.Debug("Initializing services")
	userService := services.NewUserService(st.users)
	creditsService := services.NewCreditsService(st.users)
	assetService := services.NewAssetService(userService, creditsService, st.assets, st.usage, gen, services.AssetServiceOptions{
		RefundOnFailure: cfg.Generation.RefundOnFailure,
	})
	usageService := services.NewUsageService(userService, st.assets, st.usage)

	h := &routes.Handlers{
		Health: handlers.NewHealthHandler(st.pinger),
		User:   handlers.NewUserHandler(userService),
		Asset:  handlers.NewAssetHandler(assetService),
		Usage:  handlers.NewUsageHandler(usageService),
	}

	router := routes.SetupRoutes(h, routes.Options{
		Logger:         logger,
		RequestTimeout: cfg.Server.RequestTimeout,
		AllowedOrigins: cfg.AllowedOrigins(),
		Identity: models.Identity{
			Email: cfg.Identity.DemoEmail,
			Name:  cfg.Identity.DemoName,
		},
	})

	// Write deadline must outlast the request timeout.
	writeTimeout := cfg.Server.RequestTimeout + 10*time.Second
	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting HTTP server",
			zap.String("address", server.Addr),
			zap.Duration("read_timeout", server.ReadTimeout),
			zap.Duration("write_timeout", server.WriteTimeout),
			zap.Duration("request_timeout", cfg.Server.RequestTimeout))

		endpoints := []struct {
			method      string
			path        string
			description string
		}{
			{"GET", "/health", "Health check"},
			{"GET", "/api/", "API root"},
			{"GET", "/api/user/profile", "Current user profile"},
			{"POST", "/api/assets/generate", "Generate a marketing asset (1 credit)"},
			{"GET", "/api/assets", "List the current user's assets"},
			{"GET", "/api/assets/{assetId}", "Get an asset"},
			{"DELETE", "/api/assets/{assetId}", "Delete an asset"},
			{"GET", "/api/dashboard/stats", "Dashboard statistics"},
		}

		logger.Info("Available endpoints", zap.Int("count", len(endpoints)))
		for _, endpoint := range endpoints {
			logger.Debug("Endpoint registered",
				zap.String("method", endpoint.method),
				zap.String("path", endpoint.path),
				zap.String("description", endpoint.description))
		}

		logger.Info("CORS configured", zap.Strings("allowed_origins", cfg.AllowedOrigins()))

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Received shutdown signal, shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

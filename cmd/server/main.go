package main

import (
	"context"
	"log"

	"fedfilter-backend/config"
	"fedfilter-backend/handlers"
	"fedfilter-backend/repository"
	"fedfilter-backend/service"
	"fedfilter-backend/storage"
	"fedfilter-backend/validation"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	// Audit logging is optional; the extraction pipeline runs without it.
	var logRepo *repository.ExtractionLogRepository
	if cfg.Database.AuditEnabled && cfg.Database.URL != "" {
		db, err := initPostgres(cfg.Database.URL)
		if err != nil {
			logger.Fatal("Failed to initialize Postgres", zap.Error(err))
		}
		defer db.Close()
		logRepo = repository.NewExtractionLogRepository(db)
		logger.Info("Postgres connection established")
	} else {
		logger.Info("extraction audit logging disabled")
	}

	// Artifact archival is optional as well.
	var archive storage.Storage
	if cfg.Storage.Type != "" {
		archive, err = storage.New(storage.Config{
			Type:         storage.Type(cfg.Storage.Type),
			LocalPath:    cfg.Storage.LocalPath,
			S3Bucket:     cfg.Storage.S3Bucket,
			S3Region:     cfg.Storage.S3Region,
			AWSAccessKey: cfg.Storage.AWSAccessKey,
			AWSSecretKey: cfg.Storage.AWSSecretKey,
		})
		if err != nil {
			logger.Fatal("Failed to initialize storage", zap.Error(err))
		}
		logger.Info("Artifact storage initialized", zap.String("type", cfg.Storage.Type))
	}

	generator := service.NewGeminiGenerator(cfg.Gemini.APIKey, cfg.Gemini.Model)

	validator, err := validation.New()
	if err != nil {
		logger.Fatal("Failed to compile response schema", zap.Error(err))
	}

	extractionService := service.NewExtractionService(
		service.WithGenerator(generator),
		service.WithValidator(validator),
		service.WithLogger(logger),
		service.WithExtractionLogRepository(logRepo),
		service.WithArchive(archive),
		service.WithDefaultTemperature(cfg.Extraction.Temperature),
		service.WithRecentWindow(cfg.Extraction.RecentDays),
	)

	extractHandler := handlers.NewExtractHandler(extractionService, logRepo, logger, cfg.APIVersion)

	r := gin.Default()

	r.GET("/health", extractHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/extract", extractHandler.Extract)
		api.GET("/extractions", extractHandler.ListExtractionLogs)
		api.GET("/extractions/:id", extractHandler.GetExtractionLog)
	}

	logger.Info("Server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

func initLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	return zapCfg.Build()
}

func initPostgres(connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(context.Background(), connString)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, err
	}

	return pool, nil
}

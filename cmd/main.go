package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/fatal_force/internal/config"
	"github.com/shenikar/fatal_force/internal/dataset"
	v1 "github.com/shenikar/fatal_force/internal/handler/http/v1"
	"github.com/shenikar/fatal_force/internal/models"
	"github.com/shenikar/fatal_force/internal/render"
	"github.com/shenikar/fatal_force/internal/repository"
	"github.com/shenikar/fatal_force/internal/service"
	"github.com/shenikar/fatal_force/pkg/logger"
	"github.com/shenikar/fatal_force/pkg/postgres"
	redisclient "github.com/shenikar/fatal_force/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/fatal_force/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Fatal Force Dashboard API
// @version 1.0
// @description Charts of fatal police shootings in the U.S., 2000-2021.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
		migrationURL = strings.Replace(migrationURL, "postgresql://", "pgx5://", 1)
	}

	m, err := migrate.New(
		cfg.MigrationsPath,
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// loadStateShapes читает границы штатов; без shapefile карта будет пустой
func loadStateShapes(cfg *config.Config, log *logrus.Logger) []models.StateShape {
	if cfg.ShapefilePath == "" {
		log.Warn("SHAPEFILE_PATH is not set, map charts will have no regions")
		return nil
	}
	shapes, err := dataset.LoadStateShapes(cfg.ShapefilePath, dataset.ShapefileOptions{
		StateField: cfg.ShapefileStateField,
		NameField:  cfg.ShapefileNameField,
	})
	if err != nil {
		log.Fatalf("Failed to load state shapes: %v", err)
	}
	log.WithField("regions", len(shapes)).Info("State shapes loaded")
	return shapes
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Необязательное хранилище записей в PostgreSQL
	var store dataset.RecordStore
	if cfg.DatabaseURL != "" {
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")

		store = repository.NewRecordRepository(dbpool)
	}

	// Источник CSV, при наличии Redis - с кэшем
	source := dataset.NewSource(cfg.DatasetURL, cfg.DatasetTimeout)
	if cfg.RedisAddr != "" {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		source = dataset.NewCachedSource(source, repository.NewSourceCache(redisClient), cfg.DatasetCacheTTL, log)
	}

	// Загрузка данных
	loadCtx, loadCancel := context.WithTimeout(ctx, cfg.DatasetTimeout+time.Minute)
	records, info, err := dataset.NewLoader(source, store, dataset.DecodeOptions{ForceFilter: cfg.DatasetForceFilter}, log).Load(loadCtx)
	loadCancel()
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}
	log.WithFields(logrus.Fields{
		"records": info.Records,
		"origin":  info.Origin,
	}).Info("Dataset loaded")

	shapes := loadStateShapes(cfg, log)

	// Инициализация репозиториев
	dashboardRepo := repository.NewDashboardRepository(records, shapes, *info)

	// Инициализация сервисов
	dashboardService := service.NewDashboardService(dashboardRepo, log, cfg.TopCitiesLimit)

	// Инициализация хэндлеров
	handler, err := v1.NewHandler(dashboardService, render.NewRenderer(cfg.ChartWidth, cfg.ChartHeight), log, cfg)
	if err != nil {
		log.Fatalf("Failed to create HTTP handler: %v", err)
	}

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery(), v1.RequestIDMiddleware(), v1.AccessLogMiddleware(log))
	handler.RegisterPage(router)
	api := router.Group(v1.BasePath)
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}

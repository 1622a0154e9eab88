package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort  string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Dataset Config
	DatasetURL         string        `env:"DATASET_URL"`
	DatasetForceFilter string        `env:"DATASET_FORCE_FILTER" envDefault:"Gunshot"`
	DatasetTimeout     time.Duration `env:"DATASET_TIMEOUT" envDefault:"30s"`
	DatasetCacheTTL    time.Duration `env:"DATASET_CACHE_TTL" envDefault:"24h"`

	// Shapefile Config
	ShapefilePath       string `env:"SHAPEFILE_PATH"`
	ShapefileStateField string `env:"SHAPEFILE_STATE_FIELD" envDefault:"STUSPS"`
	ShapefileNameField  string `env:"SHAPEFILE_NAME_FIELD" envDefault:"NAME"`

	// Postgres Config, пустой DATABASE_URL отключает хранилище
	DatabaseURL    string `env:"DATABASE_URL"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`

	// Redis Config, пустой REDIS_ADDR отключает кэш
	RedisAddr string `env:"REDIS_ADDR"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Chart Config
	ChartWidth     int `env:"CHART_WIDTH" envDefault:"1024"`
	ChartHeight    int `env:"CHART_HEIGHT" envDefault:"600"`
	TopCitiesLimit int `env:"TOP_CITIES_LIMIT" envDefault:"10"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "json"),
		DatasetURL:          os.Getenv("DATASET_URL"),
		DatasetForceFilter:  getEnv("DATASET_FORCE_FILTER", "Gunshot"),
		DatasetTimeout:      getEnvAsDuration("DATASET_TIMEOUT", 30*time.Second),
		DatasetCacheTTL:     getEnvAsDuration("DATASET_CACHE_TTL", 24*time.Hour),
		ShapefilePath:       os.Getenv("SHAPEFILE_PATH"),
		ShapefileStateField: getEnv("SHAPEFILE_STATE_FIELD", "STUSPS"),
		ShapefileNameField:  getEnv("SHAPEFILE_NAME_FIELD", "NAME"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		MigrationsPath:      getEnv("MIGRATIONS_PATH", "file://migrations"),
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		RedisPass:           os.Getenv("REDIS_PASSWORD"),
		RedisDB:             getEnvAsInt("REDIS_DB", 0),
		ChartWidth:          getEnvAsInt("CHART_WIDTH", 1024),
		ChartHeight:         getEnvAsInt("CHART_HEIGHT", 600),
		TopCitiesLimit:      getEnvAsInt("TOP_CITIES_LIMIT", 10),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		for _, key := range strings.Split(apiKeysStr, ",") {
			if key = strings.TrimSpace(key); key != "" {
				cfg.APIKeys = append(cfg.APIKeys, key)
			}
		}
	}

	if cfg.DatasetURL == "" {
		return nil, fmt.Errorf("DATASET_URL environment variable is required")
	}
	if cfg.ChartWidth <= 0 || cfg.ChartHeight <= 0 {
		return nil, fmt.Errorf("CHART_WIDTH and CHART_HEIGHT must be positive, got %dx%d", cfg.ChartWidth, cfg.ChartHeight)
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"yakjeong/core/constants"
	"yakjeong/core/logger"
)

type Config struct {
	ServerPort int
	LogLevel   string
	LogPretty  bool

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	CacheTTLSeconds   int
	RoomRetentionDays int
	WorkerConcurrency int
}

// Load reads configuration from the environment, with a .env file as a
// convenience for local development.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using environment only")
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", 7070)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "yakjeong")
	v.SetDefault("DB_SSL_MODE", constants.DatabaseSSLMode)

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("CACHE_TTL_SECONDS", constants.OptimalTimesCacheTTL)
	v.SetDefault("ROOM_RETENTION_DAYS", constants.RoomRetentionDays)
	v.SetDefault("WORKER_CONCURRENCY", 5)

	cfg := &Config{
		ServerPort: v.GetInt("SERVER_PORT"),
		LogLevel:   v.GetString("LOG_LEVEL"),
		LogPretty:  v.GetBool("LOG_PRETTY"),

		DBHost:     v.GetString("DB_HOST"),
		DBPort:     v.GetInt("DB_PORT"),
		DBUser:     v.GetString("DB_USER"),
		DBPassword: v.GetString("DB_PASSWORD"),
		DBName:     v.GetString("DB_NAME"),
		DBSSLMode:  v.GetString("DB_SSL_MODE"),

		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisPassword: v.GetString("REDIS_PASSWORD"),
		RedisDB:       v.GetInt("REDIS_DB"),

		CacheTTLSeconds:   v.GetInt("CACHE_TTL_SECONDS"),
		RoomRetentionDays: v.GetInt("ROOM_RETENTION_DAYS"),
		WorkerConcurrency: v.GetInt("WORKER_CONCURRENCY"),
	}

	return cfg, nil
}

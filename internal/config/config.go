package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	Environment string

	// Database
	DatabaseURL string

	// Redis
	RedisURL string

	// Server
	Port        string
	FrontendURL string

	// Matchmaking
	MatchPollIntervalMS int
	MatchPollBudgetSecs int
	GameAwaitBudgetSecs int

	// Queue maintenance
	QueueSweepIntervalSecs int
	QueueRetentionMinutes  int
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		// Environment
		Environment: getEnv("APP_ENV", "development"),

		// Database
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/wordhunt?sslmode=disable"),

		// Redis
		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379/0"),

		// Server
		Port:        getEnv("APP_PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),

		// Matchmaking: how often a waiting session re-checks its queue
		// entry, and how long a single /match call may block overall.
		MatchPollIntervalMS: getEnvInt("MATCH_POLL_INTERVAL_MS", 100),
		MatchPollBudgetSecs: getEnvInt("MATCH_POLL_BUDGET_SECS", 25),
		GameAwaitBudgetSecs: getEnvInt("GAME_AWAIT_BUDGET_SECS", 10),

		// Queue maintenance
		QueueSweepIntervalSecs: getEnvInt("QUEUE_SWEEP_INTERVAL_SECS", 60),
		QueueRetentionMinutes:  getEnvInt("QUEUE_RETENTION_MINUTES", 60),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

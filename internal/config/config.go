package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	RateAPI RateAPIConfig
	Data    DataConfig
	History HistoryConfig
	Cache   CacheConfig
	CORS    CORSConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// RateAPIConfig holds rate provider configuration
type RateAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// DataConfig holds paths to local data resources
type DataConfig struct {
	CuriosityFile string
	RatesCSVPath  string
}

// HistoryConfig holds the conversion ledger retention bound
type HistoryConfig struct {
	Limit int
}

// CacheConfig holds the daily flush schedule for the result cache.
// The provider refreshes its rates once a day at 16:00 CET.
type CacheConfig struct {
	FlushCron string
	Location  string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	timeout, err := getEnvDuration("RATE_API_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}

	historyLimit, err := getEnvInt("HISTORY_LIMIT", 50)
	if err != nil {
		return nil, err
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		RateAPI: RateAPIConfig{
			BaseURL: getEnv("RATE_API_URL", "https://api.frankfurter.app"),
			Timeout: timeout,
		},
		Data: DataConfig{
			CuriosityFile: getEnv("CURIOSITY_FILE", "./data/curiosidades_moedas.txt"),
			RatesCSVPath:  getEnv("RATES_CSV_PATH", "./data/tasas.csv"),
		},
		History: HistoryConfig{
			Limit: historyLimit,
		},
		Cache: CacheConfig{
			FlushCron: getEnv("CACHE_FLUSH_CRON", "0 16 * * *"),
			Location:  getEnv("CACHE_FLUSH_TZ", "Europe/Paris"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

// getEnvDuration gets a duration environment variable or returns a default value
func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

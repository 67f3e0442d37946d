package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Admin  AdminConfig
	App    AppConfig
}

type ServerConfig struct {
	Port        string
	CORSOrigins []string
}

type StoreConfig struct {
	// Backend selects where the project list lives: file, redis,
	// postgres or memory.
	Backend   string
	Key       string
	FilePath  string
	RedisAddr string
	BackupDir string
}

type AdminConfig struct {
	Username string
	Password string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			CORSOrigins: splitEnv("CORS_ORIGINS"),
		},
		Store: StoreConfig{
			Backend:   getEnv("STORE_BACKEND", "file"),
			Key:       getEnv("STORE_KEY", "admin-projects"),
			FilePath:  getEnv("STORE_FILE", "data/admin-projects.json"),
			RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
			BackupDir: getEnv("BACKUP_DIR", ""),
		},
		Admin: AdminConfig{
			Username: getEnv("ADMIN_USERNAME", "Bokyaa"),
			Password: getEnv("ADMIN_PASSWORD", "Dhruv@1246"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.Store.Backend {
	case "file", "redis", "postgres", "memory":
	default:
		return fmt.Errorf("STORE_BACKEND must be file, redis, postgres or memory")
	}

	if c.Store.Backend == "file" && c.Store.FilePath == "" {
		return fmt.Errorf("STORE_FILE is required for the file backend")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitEnv(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port           int
	Environment    string
	LogLevel       string
	LogFormat      string
	DBUser         string
	DBPassword     string
	DBHost         string
	DBPort         string
	DBName         string
	APIKey         string   // API key for authentication
	ContentDir     string   // Directory holding gamification content JSON
	TrustedProxies []string // Proxy IPs whose X-Forwarded-For is honored
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment: getEnv(EnvKeyEnvironment, DefaultEnvironment),
		LogLevel:    getEnv(EnvKeyLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvKeyLogFormat, DefaultLogFormat),
		DBUser:      getEnv(EnvKeyDBUser, DefaultDBUser),
		DBPassword:  getEnv(EnvKeyDBPassword, DefaultDBPassword),
		DBHost:      getEnv(EnvKeyDBHost, DefaultDBHost),
		DBPort:      getEnv(EnvKeyDBPort, DefaultDBPort),
		DBName:      getEnv(EnvKeyDBName, DefaultDBName),
		APIKey:      getEnv(EnvKeyAPIKey, ""),
		ContentDir:  getEnv(EnvKeyContentDir, DefaultContentDir),
	}

	if proxies := getEnv(EnvKeyTrustedProxies, ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, trimmed)
			}
		}
	}

	portStr := getEnv(EnvKeyPort, DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

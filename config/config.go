package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/Govind-619/Shelfnotes/utils"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	DatabaseURL string
	Port        string
	Env         string
	LogDir      string
	LogLevel    string
	StaticDir   string
	AutoMigrate bool
}

// LoadConfig loads configuration from a .env file, if one exists, and the
// process environment. Unset keys fall back to the defaults in utils.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	autoMigrate := false
	if v := os.Getenv("AUTO_MIGRATE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid AUTO_MIGRATE value %q: %w", v, err)
		}
		autoMigrate = b
	}

	config := &Config{
		DBHost:      getEnv("DB_HOST", utils.DefaultDBHost),
		DBPort:      getEnv("DB_PORT", utils.DefaultDBPort),
		DBUser:      getEnv("DB_USER", utils.DefaultDBUser),
		DBPassword:  getEnv("DB_PASSWORD", utils.DefaultDBPassword),
		DBName:      getEnv("DB_NAME", utils.DefaultDBName),
		DBSSLMode:   getEnv("DB_SSLMODE", utils.DefaultDBSSLMode),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Port:        getEnv("PORT", utils.DefaultPort),
		Env:         getEnv("ENV", "development"),
		LogDir:      getEnv("LOG_DIR", utils.DefaultLogDir),
		LogLevel:    getEnv("LOG_LEVEL", utils.DefaultLogLevel),
		StaticDir:   getEnv("STATIC_DIR", utils.DefaultStaticDir),
		AutoMigrate: autoMigrate,
	}

	return config, nil
}

// IsProduction reports whether ENV is production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// DSN returns the postgres connection string. DATABASE_URL wins over the
// discrete DB_* settings.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

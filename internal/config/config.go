package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every environment-derived setting, read once at startup and
// passed by reference to the components that need it.
type Config struct {
	AppPort     string
	SecurityKey string
	LogLevel    string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	QueryTimeout    time.Duration
}

// Load builds the configuration from environment variables.
func Load() *Config {
	viper.SetDefault("PORT", "3000")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "3306")
	viper.SetDefault("DB_USER", "root")
	viper.SetDefault("DB_NAME", "inventory_db")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DB_MAX_OPEN_CONNS", 10)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("DB_QUERY_TIMEOUT", "5s")
	viper.AutomaticEnv() // Load environment variables

	port := viper.GetString("PORT")
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	return &Config{
		AppPort:     port,
		SecurityKey: viper.GetString("SECURITY_KEY"),
		LogLevel:    viper.GetString("LOG_LEVEL"),

		DBHost: viper.GetString("DB_HOST"),
		DBPort: viper.GetString("DB_PORT"),
		DBUser: viper.GetString("DB_USER"),
		// No default: an empty password is passed through as-is.
		DBPassword: viper.GetString("DB_PASSWORD"),
		DBName:     viper.GetString("DB_NAME"),

		MaxOpenConns:    viper.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: viper.GetDuration("DB_CONN_MAX_LIFETIME"),
		QueryTimeout:    viper.GetDuration("DB_QUERY_TIMEOUT"),
	}
}

/**
 * @description
 * This package handles the configuration management for the service. It uses
 * the Viper library to read configuration from environment variables, with an
 * optional .env file, providing a centralized and straightforward way to
 * manage application settings.
 *
 * The Redis connection string is passed through to the client as-is; the
 * remaining Redis options (timeouts, retry count, pool sizing, keep-alive)
 * are applied on top of whatever the URL itself carries.
 *
 * @dependencies
 * - github.com/spf13/viper: A popular library for Go application configuration.
 */

package config

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all the configuration variables for the payment-api.
// These values are loaded from environment variables.
type Config struct {
	ServerPort          string `mapstructure:"SERVER_PORT"`
	RedisURL            string `mapstructure:"REDIS_URL"`
	RedisDialTimeoutMs  int    `mapstructure:"REDIS_DIAL_TIMEOUT_MS"`
	RedisReadTimeoutMs  int    `mapstructure:"REDIS_READ_TIMEOUT_MS"`
	RedisWriteTimeoutMs int    `mapstructure:"REDIS_WRITE_TIMEOUT_MS"`
	RedisMaxRetries     int    `mapstructure:"REDIS_MAX_RETRIES"`
	RedisPoolSize       int    `mapstructure:"REDIS_POOL_SIZE"`
	RedisKeepAliveSec   int    `mapstructure:"REDIS_KEEP_ALIVE_SECONDS"`
	EnableAPIDocs       bool   `mapstructure:"ENABLE_API_DOCS"`
}

// LoadConfig reads configuration from environment variables from the given
// path. It uses Viper to automatically bind environment variables to the
// Config struct.
func LoadConfig(path string) (config Config, err error) {
	// Tell viper the path to look for the optional .env file.
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	// Enable automatic binding of environment variables.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values. The Redis defaults mirror the connection profile
	// the service has always run with: short command timeouts, three retries,
	// and a three-minute keep-alive.
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("REDIS_DIAL_TIMEOUT_MS", 5000)
	viper.SetDefault("REDIS_READ_TIMEOUT_MS", 250)
	viper.SetDefault("REDIS_WRITE_TIMEOUT_MS", 250)
	viper.SetDefault("REDIS_MAX_RETRIES", 3)
	viper.SetDefault("REDIS_POOL_SIZE", 0) // 0 keeps the client default
	viper.SetDefault("REDIS_KEEP_ALIVE_SECONDS", 180)
	viper.SetDefault("ENABLE_API_DOCS", false)

	// Bind environment variables explicitly to ensure they appear in Unmarshal.
	_ = viper.BindEnv("SERVER_PORT")
	_ = viper.BindEnv("PORT")
	_ = viper.BindEnv("REDIS_URL", "REDIS_URL", "PAYMENT_REDIS_URL")
	_ = viper.BindEnv("REDIS_DIAL_TIMEOUT_MS")
	_ = viper.BindEnv("REDIS_READ_TIMEOUT_MS")
	_ = viper.BindEnv("REDIS_WRITE_TIMEOUT_MS")
	_ = viper.BindEnv("REDIS_MAX_RETRIES")
	_ = viper.BindEnv("REDIS_POOL_SIZE")
	_ = viper.BindEnv("REDIS_KEEP_ALIVE_SECONDS")
	_ = viper.BindEnv("ENABLE_API_DOCS")

	// Attempt to read the config file. It's okay if it doesn't exist.
	if err = viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("level=warn component=config msg=\"failed to read config file; using environment values\" err=%v", err)
		}
	}

	// Unmarshal the configuration into the Config struct.
	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		config.ServerPort = port
	}
	config.RedisURL = strings.TrimSpace(config.RedisURL)
	if config.RedisURL == "" {
		config.RedisURL = "redis://localhost:6379/0"
	}

	if config.RedisMaxRetries < 0 {
		log.Printf("level=warn component=config msg=\"negative redis retry count configured; coercing to zero\" retries=%d", config.RedisMaxRetries)
		config.RedisMaxRetries = 0
	}
	if config.RedisPoolSize < 0 {
		config.RedisPoolSize = 0
	}

	return
}

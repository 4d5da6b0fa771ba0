package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/kumpulapp/kumpul/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "kumpul-api")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")
	configs.App.BaseURL = GetEnv("APP_BASE_URL", "http://localhost:3000")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// Store config
	configs.Store.Backend = GetEnv("STORE_BACKEND", "memory")

	// Auth config
	configs.Auth.SessionSecret = GetEnv("AUTH_SESSION_SECRET", "")
	configs.Auth.OTPSecret = GetEnv("AUTH_OTP_SECRET", "")
	configs.Auth.SessionTTLMinutes = GetEnvAsInt("AUTH_SESSION_TTL_MINUTES", 7*24*60)
	configs.Auth.OTPTTLSeconds = GetEnvAsInt("AUTH_OTP_TTL_SECONDS", 300)
	configs.Auth.ResendCooldownSecs = GetEnvAsInt("AUTH_RESEND_COOLDOWN_SECONDS", 60)
	configs.Auth.VerifyAttemptsMax = GetEnvAsInt("AUTH_VERIFY_ATTEMPTS_MAX", 5)
	configs.Auth.LockWindowSecs = GetEnvAsInt("AUTH_LOCK_WINDOW_SECONDS", 900)
	configs.Auth.DefaultCountryCode = GetEnv("AUTH_DEFAULT_COUNTRY_CODE", "+49")
	configs.Auth.ExposeDebugCode = GetEnvAsBool("AUTH_EXPOSE_DEBUG_CODE", false)
	if configs.App.Environment == "production" {
		// Debug codes must never be exposed in production
		configs.Auth.ExposeDebugCode = false
	}

	// Invite config
	configs.Invite.Secret = GetEnv("INVITE_SECRET", "")
	configs.Invite.LinkTTLDays = GetEnvAsInt("INVITE_LINK_TTL_DAYS", 14)

	// Rate limit config
	configs.RateLimit.WindowSecs = GetEnvAsInt("RATE_LIMIT_WINDOW_SECONDS", 3600)
	configs.RateLimit.SendPerIP = GetEnvAsInt("RATE_LIMIT_SEND_PER_IP", 10)
	configs.RateLimit.SendPerPhone = GetEnvAsInt("RATE_LIMIT_SEND_PER_PHONE", 5)
	configs.RateLimit.VerifyPerIP = GetEnvAsInt("RATE_LIMIT_VERIFY_PER_IP", 30)
	configs.RateLimit.VerifyPerPhone = GetEnvAsInt("RATE_LIMIT_VERIFY_PER_PHONE", 10)

	// SMS config
	configs.SMS.Provider = GetEnv("SMS_PROVIDER", "mock")
	configs.SMS.ProviderURL = GetEnv("SMS_PROVIDER_URL", "")
	configs.SMS.APIKey = GetEnv("SMS_API_KEY", "")
	configs.SMS.SenderID = GetEnv("SMS_SENDER_ID", "kumpul")
	configs.SMS.MaxRetries = GetEnvAsInt("SMS_MAX_RETRIES", 3)
	configs.SMS.TimeoutSeconds = GetEnvAsInt("SMS_TIMEOUT_SECONDS", 10)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

package models

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Store     StoreConfig
	Auth      AuthConfig
	Invite    InviteConfig
	RateLimit RateLimitConfig
	SMS       SMSConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
	BaseURL     string // public base URL used when building invitation links
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// StoreConfig selects the backing store implementation.
// Backend is either "memory" (single process, mutex serialized) or
// "postgres" (advisory-lock serialized, Redis for counters/challenges).
type StoreConfig struct {
	Backend string
}

// AuthConfig contains OTP and session token configuration
type AuthConfig struct {
	SessionSecret      string
	OTPSecret          string
	SessionTTLMinutes  int // session token validity, default 7 days
	OTPTTLSeconds      int // code validity after send
	ResendCooldownSecs int // minimum delay between sends to one phone
	VerifyAttemptsMax  int // wrong codes before lockout
	LockWindowSecs     int // lockout duration after too many wrong codes
	DefaultCountryCode string
	ExposeDebugCode    bool // include the OTP code in send responses; never in production
}

// InviteConfig contains invitation token configuration
type InviteConfig struct {
	Secret      string
	LinkTTLDays int
}

// RateLimitConfig contains per-operation rate limit thresholds.
// Limits are counted per sliding window of WindowSecs seconds.
type RateLimitConfig struct {
	WindowSecs     int
	SendPerIP      int
	SendPerPhone   int
	VerifyPerIP    int
	VerifyPerPhone int
}

// SMSConfig contains SMS provider selection and credentials
type SMSConfig struct {
	Provider       string // "mock" or "http"
	ProviderURL    string
	APIKey         string
	SenderID       string
	MaxRetries     int
	TimeoutSeconds int
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

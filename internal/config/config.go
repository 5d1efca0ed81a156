package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort string
	GinMode    string

	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	DbSSLMode      string
	DbMaxOpenConns int
	DbMaxIdleConns int

	LogLevel  string
	LogFormat string

	// Origin prefixes accepted by the CORS middleware.
	AllowedOrigins []string

	// How long the client should wait before moving to the celebration screen.
	CelebrationDelay time.Duration
	ShutdownTimeout  time.Duration
}

// Load reads .env (when present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "release"),

		DbHost:         getEnv("DB_HOST", "localhost"),
		DbPort:         getEnv("DB_PORT", "5432"),
		DbUser:         getEnv("DB_USER", "postgres"),
		DbPassword:     getEnv("DB_PASSWORD", "password"),
		DbName:         getEnv("DB_NAME", "lovecontract"),
		DbSSLMode:      getEnv("DB_SSLMODE", "disable"),
		DbMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 15),
		DbMaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),

		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:")),

		CelebrationDelay: getEnvDuration("CELEBRATION_DELAY", 1500*time.Millisecond),
		ShutdownTimeout:  getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func (c *Config) Addr() string {
	return ":" + c.ServerPort
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
